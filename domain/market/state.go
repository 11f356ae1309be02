package market

// State is the full serializable market state, used by the snapshotter.
// Holdings are derived on restore rather than persisted.
type State struct {
	Items  map[uint64]ItemState
	Funds  map[uint64]int64
	Tiers  map[uint32]FeeTier
	Escrow int64
	Sunk   int64
}

// ItemState flattens Item for encoding; the bid pointer becomes HasBid.
type ItemState struct {
	Owner     uint64
	Ask       int64
	HasBid    bool
	Bidder    uint64
	BidAmount int64
	BidTime   int64
	FeeTier   uint32
}

// Export copies the complete state. The caller must hold the service
// mutex; the market itself is single-writer.
func (m *Market) Export() State {
	s := State{
		Items:  make(map[uint64]ItemState, len(m.items)),
		Funds:  make(map[uint64]int64, len(m.ledger.funds)),
		Tiers:  make(map[uint32]FeeTier, len(m.fees.tiers)),
		Escrow: m.ledger.escrow,
		Sunk:   m.ledger.sunk,
	}
	for id, it := range m.items {
		e := ItemState{
			Owner:   uint64(it.Owner),
			Ask:     it.Ask,
			FeeTier: it.FeeTier,
		}
		if it.Bid != nil {
			e.HasBid = true
			e.Bidder = uint64(it.Bid.Bidder)
			e.BidAmount = it.Bid.Amount
			e.BidTime = it.Bid.Time
		}
		s.Items[id] = e
	}
	for a, f := range m.ledger.funds {
		s.Funds[uint64(a)] = f
	}
	for t, ft := range m.fees.tiers {
		s.Tiers[t] = ft
	}
	return s
}

// Restore replaces the market state wholesale. Boot path only, before
// any traffic; hooks are re-registered separately by wiring.
func (m *Market) Restore(s State) {
	m.items = make(map[uint64]*Item, len(s.Items))
	m.holdings = make(map[Account]int)
	for id, e := range s.Items {
		it := &Item{
			Owner:   Account(e.Owner),
			Ask:     e.Ask,
			FeeTier: e.FeeTier,
		}
		if e.HasBid {
			it.Bid = &Bid{
				Bidder: Account(e.Bidder),
				Amount: e.BidAmount,
				Time:   e.BidTime,
			}
		}
		m.items[id] = it
		m.holdings[it.Owner]++
	}

	m.ledger.funds = make(map[Account]int64, len(s.Funds))
	for a, f := range s.Funds {
		m.ledger.funds[Account(a)] = f
	}
	m.ledger.escrow = s.Escrow
	m.ledger.sunk = s.Sunk

	for t, ft := range s.Tiers {
		m.fees.tiers[t] = ft
	}
}
