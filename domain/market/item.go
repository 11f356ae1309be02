package market

// Bid is an escrow-backed offer on a single item. The escrowed funds are
// held by the market and equal Amount exactly until refunded or consumed
// by settlement.
type Bid struct {
	Bidder Account
	Amount int64
	Time   int64 // unix seconds, starts the withdrawal lock
}

// Item is the per-item record: owner, ask, pending bid, fee tier.
// Ask == 0 means not listed. Bid == nil means no pending offer.
type Item struct {
	Owner   Account
	Ask     int64
	Bid     *Bid
	FeeTier uint32
}

// Listed reports whether the item is currently for sale.
func (it *Item) Listed() bool {
	return it.Ask > 0
}

// crossed is the settlement trigger: a listed item whose bid meets the ask.
func (it *Item) crossed() bool {
	return it.Ask > 0 && it.Bid != nil && it.Ask <= it.Bid.Amount
}
