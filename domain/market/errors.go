package market

import "errors"

var (
	// ErrUnauthorized: caller is not the item owner, not the current
	// bidder, or lacks the required role.
	ErrUnauthorized = errors.New("market: unauthorized")

	// ErrNonexistentItem: the id was never minted or has been burned.
	ErrNonexistentItem = errors.New("market: nonexistent item")

	// ErrBidTooLow: a new bid must strictly exceed the current escrow.
	ErrBidTooLow = errors.New("market: bid too low")

	// ErrBidLocked: withdrawal attempted before the cooldown elapsed.
	ErrBidLocked = errors.New("market: bid locked")

	// ErrZeroAddress: transfer or mint target is the zero account.
	ErrZeroAddress = errors.New("market: zero address")

	// ErrReentrant: a mutating call was made while another one was
	// already executing. Fatal to the nested call only.
	ErrReentrant = errors.New("market: reentrant call")

	// ErrInsufficientFunds: a value-bearing call exceeds the caller's
	// ledger balance.
	ErrInsufficientFunds = errors.New("market: insufficient funds")

	// ErrExists: mint of an id that is already live.
	ErrExists = errors.New("market: item exists")

	// ErrBadFeeRate: a tier rate outside [0, FeeRateDenominator).
	ErrBadFeeRate = errors.New("market: bad fee rate")

	// ErrBadAmount: a negative ask or non-positive value amount.
	ErrBadAmount = errors.New("market: bad amount")
)
