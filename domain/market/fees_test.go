package market

import (
	"errors"
	"testing"
)

func TestFeeAmountTruncates(t *testing.T) {
	cases := []struct {
		amount, rate, want int64
	}{
		{100, 1000, 1},        // 1% of 100
		{99, 1000, 0},         // truncation, not rounding
		{100_000, 1, 1},       // minimum non-zero cut
		{99_999, 1, 0},        // just under
		{1, 99_999, 0},        // rate near the cap on a tiny amount
		{100_000, 99_999, 99_999},
		{0, 50_000, 0},
	}
	for _, c := range cases {
		if got := feeAmount(c.amount, c.rate); got != c.want {
			t.Errorf("feeAmount(%d, %d) = %d, want %d", c.amount, c.rate, got, c.want)
		}
	}
}

// The split form must match plain amount*rate/100000 where the latter
// does not overflow, and stay exact where it would.
func TestFeeAmountOverflowSafe(t *testing.T) {
	const big = int64(1) << 50
	naive := big * 1000 / FeeRateDenominator // product still in range at 2^50
	if got := feeAmount(big, 1000); got != naive {
		t.Errorf("split form diverged: %d vs %d", got, naive)
	}

	// Near max int64 the naive product would wrap; the split must not.
	huge := int64(1)<<62 + 12345
	got := feeAmount(huge, 99_999)
	if got < 0 || got >= huge {
		t.Errorf("feeAmount(%d) = %d out of range", huge, got)
	}
}

func TestFeeScheduleFallback(t *testing.T) {
	s := NewFeeSchedule(FeeTier{Receiver: feeRcv, Rate: 1000})

	if ft := s.Tier(42); ft.Rate != 1000 || ft.Receiver != feeRcv {
		t.Errorf("unknown tier must fall back to tier 0, got %+v", ft)
	}
	if err := s.Define(2, FeeTier{Receiver: 5, Rate: 2500}); err != nil {
		t.Fatal(err)
	}
	if ft := s.Tier(2); ft.Rate != 2500 {
		t.Errorf("tier 2 = %+v", ft)
	}
}

func TestFeeScheduleRejectsBadRates(t *testing.T) {
	s := NewFeeSchedule(FeeTier{Receiver: feeRcv, Rate: 1000})

	if err := s.Define(1, FeeTier{Rate: FeeRateDenominator}); !errors.Is(err, ErrBadFeeRate) {
		t.Errorf("rate == denominator: got %v", err)
	}
	if err := s.Define(1, FeeTier{Rate: -1}); !errors.Is(err, ErrBadFeeRate) {
		t.Errorf("negative rate: got %v", err)
	}
}
