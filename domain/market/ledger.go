package market

// PayOutcome is the result of a best-effort payout. Callers on the
// settlement and refund paths deliberately ignore it: a rejecting payee
// must not be able to block trading. The amount of a rejected payout is
// added to the sunk counter instead of being rolled back.
type PayOutcome struct {
	Rejected bool
	Err      error
}

// Ledger tracks fund balances for all accounts plus the escrow pot the
// market holds against pending bids.
type Ledger struct {
	funds  map[Account]int64
	hooks  map[Account]ReceiverHook
	escrow int64
	sunk   int64
}

func NewLedger() *Ledger {
	return &Ledger{
		funds: make(map[Account]int64),
		hooks: make(map[Account]ReceiverHook),
	}
}

// Deposit credits an account unconditionally. Funding path only; payouts
// go through PayBestEffort.
func (l *Ledger) Deposit(a Account, amount int64) {
	l.funds[a] += amount
}

// Debit removes funds from an account, failing if it cannot cover.
func (l *Ledger) Debit(a Account, amount int64) error {
	if l.funds[a] < amount {
		return ErrInsufficientFunds
	}
	l.funds[a] -= amount
	return nil
}

// PayBestEffort credits an account, consulting its receiver hook first if
// one is registered. Rejected amounts are sunk: the funds stay with the
// market and are unreachable. See the escrow notes in DESIGN.md before
// changing this.
func (l *Ledger) PayBestEffort(a Account, amount int64) PayOutcome {
	if amount == 0 {
		return PayOutcome{}
	}
	if h, ok := l.hooks[a]; ok {
		if err := h.OnPayment(amount); err != nil {
			l.sunk += amount
			return PayOutcome{Rejected: true, Err: err}
		}
	}
	l.funds[a] += amount
	return PayOutcome{}
}

// Escrow moves already-debited funds into the escrow pot.
func (l *Ledger) Escrow(amount int64) {
	l.escrow += amount
}

// ReleaseEscrow takes funds back out of the pot before paying them.
func (l *Ledger) ReleaseEscrow(amount int64) {
	l.escrow -= amount
}

// Sink moves already-released funds straight to the sunk counter.
// Used when an item dies with an outstanding bid.
func (l *Ledger) Sink(amount int64) {
	l.sunk += amount
}

// RegisterHook marks an account contract-like.
func (l *Ledger) RegisterHook(a Account, h ReceiverHook) {
	l.hooks[a] = h
}

// Hook returns the receiver hook for an account, if any.
func (l *Ledger) Hook(a Account) (ReceiverHook, bool) {
	h, ok := l.hooks[a]
	return h, ok
}

// FundsOf returns an account's spendable balance.
func (l *Ledger) FundsOf(a Account) int64 {
	return l.funds[a]
}

// Escrowed returns the total held against pending bids.
func (l *Ledger) Escrowed() int64 {
	return l.escrow
}

// Sunk returns the total lost to rejected payouts and dead escrow.
func (l *Ledger) Sunk() int64 {
	return l.sunk
}
