package market

import "time"

// DefaultBidLock is the withdrawal cooldown in seconds. A bid younger
// than this cannot be withdrawn, so a bidder cannot front-run an imminent
// settlement by pulling funds mid-negotiation.
const DefaultBidLock int64 = 86400

// Market is the single-writer trading core. Every mutating method holds
// the reentry guard for its whole duration; a hook that calls back in
// fails with ErrReentrant. Cross-goroutine serialization is the caller's
// job (the service layer holds one mutex over all mutations and reads).
type Market struct {
	items    map[uint64]*Item
	holdings map[Account]int

	fees   *FeeSchedule
	ledger *Ledger
	access AccessController
	sink   Sink

	// BidLock is the withdrawal cooldown in seconds.
	BidLock int64

	// Now supplies timestamps. Replaced during WAL replay so restored
	// bids keep their original lock window.
	Now func() int64

	busy bool
}

// New wires a market. The fee schedule must already carry tier 0.
func New(fees *FeeSchedule, ledger *Ledger, access AccessController, sink Sink) *Market {
	return &Market{
		items:    make(map[uint64]*Item),
		holdings: make(map[Account]int),
		fees:     fees,
		ledger:   ledger,
		access:   access,
		sink:     sink,
		BidLock:  DefaultBidLock,
		Now:      func() int64 { return time.Now().Unix() },
	}
}

// Ledger exposes the fund ledger for wiring and inspection.
func (m *Market) Ledger() *Ledger {
	return m.ledger
}

// SetSink swaps the event sink. Used by replay to silence re-emission.
func (m *Market) SetSink(s Sink) {
	m.sink = s
}

// RegisterHook marks an account contract-like. Wiring-time only.
func (m *Market) RegisterHook(a Account, h ReceiverHook) {
	m.ledger.RegisterHook(a, h)
}

func (m *Market) enter() error {
	if m.busy {
		return ErrReentrant
	}
	m.busy = true
	return nil
}

func (m *Market) exit() {
	m.busy = false
}

// item resolves an id exactly once per operation.
func (m *Market) item(id uint64) (*Item, error) {
	it, ok := m.items[id]
	if !ok {
		return nil, ErrNonexistentItem
	}
	return it, nil
}

//
// -------------------- Lifecycle (catalog collaborator) --------------------
//

// Mint creates an item: Unlisted, no bid, fee tier 0.
func (m *Market) Mint(id uint64, owner, caller Account) error {
	if err := m.enter(); err != nil {
		return err
	}
	defer m.exit()

	if !m.access.IsAuthorizedMinter(caller) {
		return ErrUnauthorized
	}
	if owner == ZeroAccount {
		return ErrZeroAddress
	}
	if _, ok := m.items[id]; ok {
		return ErrExists
	}

	m.items[id] = &Item{Owner: owner}
	m.holdings[owner]++
	return nil
}

// Burn destroys an item. An outstanding bid is NOT refunded: the escrow
// moves to the sunk counter. The burn/escrow interaction is an open policy
// question; see DESIGN.md before changing.
func (m *Market) Burn(id uint64, caller Account) error {
	if err := m.enter(); err != nil {
		return err
	}
	defer m.exit()

	if !m.access.IsAuthorizedMinter(caller) {
		return ErrUnauthorized
	}
	it, err := m.item(id)
	if err != nil {
		return err
	}

	if it.Bid != nil {
		m.ledger.ReleaseEscrow(it.Bid.Amount)
		m.ledger.Sink(it.Bid.Amount)
	}
	m.holdings[it.Owner]--
	if m.holdings[it.Owner] == 0 {
		delete(m.holdings, it.Owner)
	}
	delete(m.items, id)
	return nil
}

//
// -------------------- Trading --------------------
//

// SetPrice lists the item at amount (0 delists). Owner only. The crossing
// condition is re-checked before return: a listed price at or below the
// pending bid settles immediately.
func (m *Market) SetPrice(id uint64, amount int64, caller Account, data []byte) error {
	if err := m.enter(); err != nil {
		return err
	}
	defer m.exit()

	it, err := m.item(id)
	if err != nil {
		return err
	}
	if caller != it.Owner {
		return ErrUnauthorized
	}
	if amount < 0 {
		return ErrBadAmount
	}

	it.Ask = amount
	m.settle(id, it, caller, data)
	return nil
}

// SetBid places an escrow-backed bid. fundsSent must strictly exceed the
// current escrow; a previous bid is refunded in full first. When the item
// is listed and fundsSent exceeds the ask, only the ask is consumed and
// the difference goes straight back to the caller.
func (m *Market) SetBid(id uint64, caller Account, fundsSent int64, data []byte) error {
	if err := m.enter(); err != nil {
		return err
	}
	defer m.exit()

	it, err := m.item(id)
	if err != nil {
		return err
	}

	var prev int64
	if it.Bid != nil {
		prev = it.Bid.Amount
	}
	if fundsSent <= prev {
		return ErrBidTooLow
	}
	if err := m.ledger.Debit(caller, fundsSent); err != nil {
		return err
	}

	// Return the displaced bid in full. Best effort: a rejecting
	// previous bidder must not block the new bid.
	if it.Bid != nil {
		m.ledger.ReleaseEscrow(it.Bid.Amount)
		_ = m.ledger.PayBestEffort(it.Bid.Bidder, it.Bid.Amount)
	}

	consumed := fundsSent
	if it.Ask > 0 && fundsSent > it.Ask {
		consumed = it.Ask
	}
	if over := fundsSent - consumed; over > 0 {
		_ = m.ledger.PayBestEffort(caller, over)
	}

	m.ledger.Escrow(consumed)
	it.Bid = &Bid{Bidder: caller, Amount: consumed, Time: m.Now()}
	m.emit(Event{Type: EventBidPlaced, Item: id, Amount: consumed, Data: data})

	m.settle(id, it, caller, data)
	return nil
}

// WithdrawBid refunds the escrow to the bidder once the lock has expired.
func (m *Market) WithdrawBid(id uint64, caller Account) error {
	if err := m.enter(); err != nil {
		return err
	}
	defer m.exit()

	it, err := m.item(id)
	if err != nil {
		return err
	}
	if it.Bid == nil || caller != it.Bid.Bidder {
		return ErrUnauthorized
	}
	if m.Now() <= it.Bid.Time+m.BidLock {
		return ErrBidLocked
	}

	amount := it.Bid.Amount
	it.Bid = nil
	m.ledger.ReleaseEscrow(amount)
	_ = m.ledger.PayBestEffort(caller, amount)
	return nil
}

// Transfer moves ownership and forwards data to the recipient.
func (m *Market) Transfer(id uint64, caller, to Account, data []byte) error {
	if err := m.enter(); err != nil {
		return err
	}
	defer m.exit()
	return m.transferChecked(id, caller, to, data, true)
}

// SilentTransfer moves ownership without a data payload.
func (m *Market) SilentTransfer(id uint64, caller, to Account) error {
	if err := m.enter(); err != nil {
		return err
	}
	defer m.exit()
	return m.transferChecked(id, caller, to, nil, false)
}

func (m *Market) transferChecked(id uint64, caller, to Account, data []byte, withData bool) error {
	it, err := m.item(id)
	if err != nil {
		return err
	}
	if caller != it.Owner {
		return ErrUnauthorized
	}
	if to == ZeroAccount {
		return ErrZeroAddress
	}
	m.moveOwnership(id, it, caller, to, data, withData)
	return nil
}

// moveOwnership is the transfer engine: zeroes the ask (price intent does
// not survive a change of owner), leaves any bid in place (buyer intent is
// independent of the seller), fixes up holdings, and notifies the
// recipient. The recipient's ack is not validated.
func (m *Market) moveOwnership(id uint64, it *Item, operator, to Account, data []byte, withData bool) {
	from := it.Owner

	it.Ask = 0
	m.holdings[from]--
	if m.holdings[from] == 0 {
		delete(m.holdings, from)
	}
	m.holdings[to]++
	it.Owner = to

	m.emit(Event{Type: EventOwnershipChanged, Item: id, From: uint64(from), To: uint64(to)})
	if withData {
		m.emit(Event{Type: EventDataPayload, Data: data})
	}

	if h, ok := m.ledger.Hook(to); ok {
		_ = h.OnItemReceived(operator, from, id, data)
	}
}

// settle is the mandatory post-condition of SetPrice and SetBid. If the
// bid meets the ask it executes the whole trade (fee claim, payout,
// state clear, ownership transfer) before the triggering call returns.
// Nothing here can fail: payouts are fire-and-forget.
func (m *Market) settle(id uint64, it *Item, operator Account, data []byte) {
	if !it.crossed() {
		return
	}

	bid := *it.Bid
	prev := it.Owner

	m.ledger.ReleaseEscrow(bid.Amount)
	fee := m.claimFee(bid.Amount, it.FeeTier)
	net := bid.Amount - fee
	_ = m.ledger.PayBestEffort(prev, net)

	m.emit(Event{Type: EventTradeExecuted, Item: id, To: uint64(bid.Bidder), From: uint64(prev), Amount: net})

	it.Bid = nil
	it.Ask = 0
	m.moveOwnership(id, it, operator, bid.Bidder, data, true)
}

// claimFee computes the tier cut and pays the tier receiver. Unknown
// tiers fall back to tier 0, so this never fails.
func (m *Market) claimFee(amount int64, tier uint32) int64 {
	ft := m.fees.Tier(tier)
	fee := feeAmount(amount, ft.Rate)
	_ = m.ledger.PayBestEffort(ft.Receiver, fee)
	return fee
}

//
// -------------------- Administration --------------------
//

// DefineFeeTier installs a tier. Admin only.
func (m *Market) DefineFeeTier(tier uint32, receiver Account, rate int64, caller Account) error {
	if err := m.enter(); err != nil {
		return err
	}
	defer m.exit()

	if !m.access.IsAuthorizedAdmin(caller) {
		return ErrUnauthorized
	}
	return m.fees.Define(tier, FeeTier{Receiver: receiver, Rate: rate})
}

// AssignFeeTier binds an item to a tier. Undefined tiers are legal and
// resolve to tier 0 at claim time. Admin only.
func (m *Market) AssignFeeTier(id uint64, tier uint32, caller Account) error {
	if err := m.enter(); err != nil {
		return err
	}
	defer m.exit()

	if !m.access.IsAuthorizedAdmin(caller) {
		return ErrUnauthorized
	}
	it, err := m.item(id)
	if err != nil {
		return err
	}
	it.FeeTier = tier
	return nil
}

// Deposit funds an account so it can place value-bearing bids. Admin only.
func (m *Market) Deposit(a Account, amount int64, caller Account) error {
	if err := m.enter(); err != nil {
		return err
	}
	defer m.exit()

	if !m.access.IsAuthorizedAdmin(caller) {
		return ErrUnauthorized
	}
	if a == ZeroAccount {
		return ErrZeroAddress
	}
	if amount <= 0 {
		return ErrBadAmount
	}
	m.ledger.Deposit(a, amount)
	return nil
}

//
// -------------------- Queries --------------------
//

// PriceOf returns the current ask; 0 means not listed.
func (m *Market) PriceOf(id uint64) (int64, error) {
	it, err := m.item(id)
	if err != nil {
		return 0, err
	}
	return it.Ask, nil
}

// BidOf returns a copy of the pending bid; the zero Bid means none.
func (m *Market) BidOf(id uint64) (Bid, error) {
	it, err := m.item(id)
	if err != nil {
		return Bid{}, err
	}
	if it.Bid == nil {
		return Bid{}, nil
	}
	return *it.Bid, nil
}

// OwnerOf returns the current owner.
func (m *Market) OwnerOf(id uint64) (Account, error) {
	it, err := m.item(id)
	if err != nil {
		return ZeroAccount, err
	}
	return it.Owner, nil
}

// BalanceOf returns how many live items an account owns.
func (m *Market) BalanceOf(a Account) int {
	return m.holdings[a]
}

// FeeTierOf returns the tier id bound to an item.
func (m *Market) FeeTierOf(id uint64) (uint32, error) {
	it, err := m.item(id)
	if err != nil {
		return 0, err
	}
	return it.FeeTier, nil
}
