package market

// Account identifies a fund-holding participant.
type Account uint64

// ZeroAccount is never a valid transfer target or owner.
const ZeroAccount Account = 0

// AccessController answers role questions for gated operations.
// Role storage belongs to an external collaborator, not the core.
type AccessController interface {
	IsAuthorizedMinter(caller Account) bool
	IsAuthorizedAdmin(caller Account) bool
}

// ReceiverHook marks an account as contract-like. Hooked accounts get a
// callback on incoming payments and incoming items, and may reject the
// former. Hook code is untrusted: it can attempt to re-enter the market,
// which the reentry guard rejects.
type ReceiverHook interface {
	// OnPayment is consulted before crediting funds. A non-nil error
	// rejects the payment; the amount is then sunk, not rolled back.
	OnPayment(amount int64) error

	// OnItemReceived acknowledges an incoming item. The returned ack is
	// not validated against an expected value.
	OnItemReceived(operator, from Account, itemID uint64, data []byte) []byte
}
