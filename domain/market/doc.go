// Package market is the pure trading core: an ownership registry for
// uniquely identified items with an embedded ask/bid market.
//
// Owners list an ask price, third parties place escrow-backed bids, and
// the moment a bid crosses the ask the trade settles in place: fee split,
// seller payout, state clear, and ownership transfer happen as one unit
// before the triggering call returns.
//
// The package is deterministic and single-writer. It has no knowledge of
// transports, journals, or brokers; coordination lives in the service
// layer.
package market
