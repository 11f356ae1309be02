package market

// FeeRateDenominator scales fee rates: a rate of 1000 is 1%.
const FeeRateDenominator = 100000

// FeeTier routes a cut of every settlement to a receiver.
type FeeTier struct {
	Receiver Account
	Rate     int64 // per FeeRateDenominator, in [0, FeeRateDenominator)
}

// FeeSchedule maps tier ids to fee configurations. Tier 0 is always
// defined and is the fallback for unknown tiers, so fee lookup never
// fails.
type FeeSchedule struct {
	tiers map[uint32]FeeTier
}

func NewFeeSchedule(def FeeTier) *FeeSchedule {
	return &FeeSchedule{
		tiers: map[uint32]FeeTier{0: def},
	}
}

// Define installs or replaces a tier. Rates at or above the denominator
// would consume the whole settlement and are rejected.
func (s *FeeSchedule) Define(tier uint32, ft FeeTier) error {
	if ft.Rate < 0 || ft.Rate >= FeeRateDenominator {
		return ErrBadFeeRate
	}
	s.tiers[tier] = ft
	return nil
}

// Defined reports whether a tier id has an explicit configuration.
func (s *FeeSchedule) Defined(tier uint32) bool {
	_, ok := s.tiers[tier]
	return ok
}

// Tier resolves a tier id, falling back to tier 0.
func (s *FeeSchedule) Tier(tier uint32) FeeTier {
	if ft, ok := s.tiers[tier]; ok {
		return ft
	}
	return s.tiers[0]
}

// feeAmount truncates amount*rate/denominator without overflowing int64.
// The quotient/remainder split is exact: for a = q*D + r,
// floor(a*rate/D) == q*rate + floor(r*rate/D).
func feeAmount(amount, rate int64) int64 {
	q := amount / FeeRateDenominator
	r := amount % FeeRateDenominator
	return q*rate + r*rate/FeeRateDenominator
}
