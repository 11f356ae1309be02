package market

import (
	"errors"
	"testing"
)

type allowAll struct{}

func (allowAll) IsAuthorizedMinter(Account) bool { return true }
func (allowAll) IsAuthorizedAdmin(Account) bool  { return true }

type recSink struct {
	events []Event
}

func (s *recSink) Emit(e Event) { s.events = append(s.events, e) }

func (s *recSink) ofType(t string) []Event {
	var out []Event
	for _, e := range s.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

const (
	admin  Account = 1
	seller Account = 10
	alice  Account = 20
	bob    Account = 30
	feeRcv Account = 90
)

type env struct {
	m    *Market
	sink *recSink
	now  int64
}

// newEnv builds a market with a 1% default fee tier, a controllable
// clock, and funded bidder accounts.
func newEnv(t *testing.T) *env {
	t.Helper()
	sink := &recSink{}
	m := New(
		NewFeeSchedule(FeeTier{Receiver: feeRcv, Rate: 1000}), // 1%
		NewLedger(),
		allowAll{},
		sink,
	)
	e := &env{m: m, sink: sink, now: 1_000_000}
	m.Now = func() int64 { return e.now }

	if err := m.Deposit(alice, 10_000, admin); err != nil {
		t.Fatalf("deposit alice: %v", err)
	}
	if err := m.Deposit(bob, 10_000, admin); err != nil {
		t.Fatalf("deposit bob: %v", err)
	}
	return e
}

func (e *env) mint(t *testing.T, id uint64, owner Account) {
	t.Helper()
	if err := e.m.Mint(id, owner, admin); err != nil {
		t.Fatalf("mint %d: %v", id, err)
	}
}

func TestMintInitialState(t *testing.T) {
	e := newEnv(t)
	e.mint(t, 1, seller)

	if p, _ := e.m.PriceOf(1); p != 0 {
		t.Errorf("fresh item should be unlisted, ask=%d", p)
	}
	if b, _ := e.m.BidOf(1); b != (Bid{}) {
		t.Errorf("fresh item should have no bid: %+v", b)
	}
	if e.m.BalanceOf(seller) != 1 {
		t.Error("mint should increment owner holdings")
	}
}

func TestMintValidation(t *testing.T) {
	e := newEnv(t)
	e.mint(t, 1, seller)

	if err := e.m.Mint(1, alice, admin); !errors.Is(err, ErrExists) {
		t.Errorf("double mint: got %v", err)
	}
	if err := e.m.Mint(2, ZeroAccount, admin); !errors.Is(err, ErrZeroAddress) {
		t.Errorf("zero owner: got %v", err)
	}
}

func TestNonexistentItemFailsEverywhere(t *testing.T) {
	e := newEnv(t)

	if _, err := e.m.PriceOf(7); !errors.Is(err, ErrNonexistentItem) {
		t.Errorf("PriceOf: got %v", err)
	}
	if _, err := e.m.OwnerOf(7); !errors.Is(err, ErrNonexistentItem) {
		t.Errorf("OwnerOf: got %v", err)
	}
	if err := e.m.SetPrice(7, 100, seller, nil); !errors.Is(err, ErrNonexistentItem) {
		t.Errorf("SetPrice: got %v", err)
	}
	if err := e.m.SetBid(7, alice, 10, nil); !errors.Is(err, ErrNonexistentItem) {
		t.Errorf("SetBid: got %v", err)
	}
}

func TestSetPriceOwnerOnly(t *testing.T) {
	e := newEnv(t)
	e.mint(t, 1, seller)

	if err := e.m.SetPrice(1, 100, alice, nil); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("non-owner setPrice: got %v", err)
	}
	if err := e.m.SetPrice(1, 100, seller, nil); err != nil {
		t.Fatalf("owner setPrice: %v", err)
	}
	if p, _ := e.m.PriceOf(1); p != 100 {
		t.Errorf("ask = %d, want 100", p)
	}
	// 0 delists.
	if err := e.m.SetPrice(1, 0, seller, nil); err != nil {
		t.Fatalf("delist: %v", err)
	}
	if p, _ := e.m.PriceOf(1); p != 0 {
		t.Error("ask should be cleared")
	}
}

func TestMonotonicBidding(t *testing.T) {
	e := newEnv(t)
	e.mint(t, 1, seller)

	if err := e.m.SetBid(1, alice, 50, nil); err != nil {
		t.Fatalf("first bid: %v", err)
	}
	if err := e.m.SetBid(1, bob, 50, nil); !errors.Is(err, ErrBidTooLow) {
		t.Errorf("equal bid should fail: got %v", err)
	}
	if err := e.m.SetBid(1, bob, 49, nil); !errors.Is(err, ErrBidTooLow) {
		t.Errorf("lower bid should fail: got %v", err)
	}
	if err := e.m.SetBid(1, bob, 51, nil); err != nil {
		t.Fatalf("higher bid: %v", err)
	}
	b, _ := e.m.BidOf(1)
	if b.Bidder != bob || b.Amount != 51 {
		t.Errorf("bid = %+v, want bob/51", b)
	}
}

func TestEscrowConservation(t *testing.T) {
	e := newEnv(t)
	e.mint(t, 1, seller)
	led := e.m.Ledger()

	if err := e.m.SetBid(1, alice, 60, nil); err != nil {
		t.Fatal(err)
	}
	if led.Escrowed() != 60 {
		t.Errorf("escrow = %d, want 60", led.Escrowed())
	}
	if led.FundsOf(alice) != 10_000-60 {
		t.Errorf("alice funds = %d", led.FundsOf(alice))
	}

	// Displacing bid refunds the previous one in full.
	if err := e.m.SetBid(1, bob, 80, nil); err != nil {
		t.Fatal(err)
	}
	if led.Escrowed() != 80 {
		t.Errorf("escrow = %d, want 80", led.Escrowed())
	}
	if led.FundsOf(alice) != 10_000 {
		t.Errorf("alice should be made whole, funds = %d", led.FundsOf(alice))
	}
	b, _ := e.m.BidOf(1)
	if b.Amount != led.Escrowed() {
		t.Errorf("escrow %d != recorded bid %d", led.Escrowed(), b.Amount)
	}
}

func TestOverpaymentRefund(t *testing.T) {
	e := newEnv(t)
	e.mint(t, 1, seller)

	if err := e.m.SetPrice(1, 100, seller, nil); err != nil {
		t.Fatal(err)
	}
	// Bid above the ask: only the ask is consumed, the rest comes back.
	if err := e.m.SetBid(1, bob, 150, nil); err != nil {
		t.Fatal(err)
	}
	if got := e.m.Ledger().FundsOf(bob); got != 10_000-100 {
		t.Errorf("bob funds = %d, want %d (only ask consumed)", got, 10_000-100)
	}
}

// Canonical flow: ask=100, A bids 60 (no crossing), B bids 150
// (consumed=100, 50 refunded, settlement fires at 1% fee).
func TestSettlementScenario(t *testing.T) {
	e := newEnv(t)
	e.mint(t, 1, seller)
	led := e.m.Ledger()

	if err := e.m.SetPrice(1, 100, seller, nil); err != nil {
		t.Fatal(err)
	}
	if err := e.m.SetBid(1, alice, 60, nil); err != nil {
		t.Fatal(err)
	}
	if o, _ := e.m.OwnerOf(1); o != seller {
		t.Fatal("60 < 100 must not settle")
	}

	if err := e.m.SetBid(1, bob, 150, nil); err != nil {
		t.Fatal(err)
	}

	if o, _ := e.m.OwnerOf(1); o != bob {
		t.Errorf("owner = %d, want bob", o)
	}
	if p, _ := e.m.PriceOf(1); p != 0 {
		t.Error("ask must be cleared after settlement")
	}
	if b, _ := e.m.BidOf(1); b != (Bid{}) {
		t.Error("bid must be cleared after settlement")
	}
	if led.FundsOf(seller) != 99 {
		t.Errorf("seller got %d, want 99 (100 - 1%% fee)", led.FundsOf(seller))
	}
	if led.FundsOf(feeRcv) != 1 {
		t.Errorf("fee receiver got %d, want 1", led.FundsOf(feeRcv))
	}
	if led.FundsOf(bob) != 10_000-100 {
		t.Errorf("bob paid %d, want 100", 10_000-led.FundsOf(bob))
	}
	if led.FundsOf(alice) != 10_000 {
		t.Errorf("alice must be refunded, funds = %d", led.FundsOf(alice))
	}
	if led.Escrowed() != 0 {
		t.Errorf("escrow = %d, want 0", led.Escrowed())
	}
	if e.m.BalanceOf(bob) != 1 || e.m.BalanceOf(seller) != 0 {
		t.Error("holdings not moved")
	}

	trades := e.sink.ofType(EventTradeExecuted)
	if len(trades) != 1 {
		t.Fatalf("trade events = %d, want 1", len(trades))
	}
	tr := trades[0]
	if tr.To != uint64(bob) || tr.From != uint64(seller) || tr.Amount != 99 {
		t.Errorf("trade event = %+v", tr)
	}
}

// Listing at or below a pending bid must settle inside SetPrice.
func TestSetPriceCrossesPendingBid(t *testing.T) {
	e := newEnv(t)
	e.mint(t, 1, seller)

	if err := e.m.SetBid(1, alice, 80, nil); err != nil {
		t.Fatal(err)
	}
	if err := e.m.SetPrice(1, 80, seller, nil); err != nil {
		t.Fatal(err)
	}
	if o, _ := e.m.OwnerOf(1); o != alice {
		t.Error("setPrice at the bid must settle before returning")
	}
	if p, _ := e.m.PriceOf(1); p != 0 {
		t.Error("crossing condition must never survive a mutating call")
	}
}

func TestUnlistedNeverCrosses(t *testing.T) {
	e := newEnv(t)
	e.mint(t, 1, seller)

	if err := e.m.SetBid(1, alice, 9_999, nil); err != nil {
		t.Fatal(err)
	}
	if o, _ := e.m.OwnerOf(1); o != seller {
		t.Error("ask=0 means not for sale, regardless of bid size")
	}

	e.now += e.m.BidLock + 1
	if err := e.m.WithdrawBid(1, alice); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if got := e.m.Ledger().FundsOf(alice); got != 10_000 {
		t.Errorf("alice funds = %d, want full refund", got)
	}
	if b, _ := e.m.BidOf(1); b != (Bid{}) {
		t.Error("bid should be cleared after withdrawal")
	}
}

func TestBidLockBoundary(t *testing.T) {
	e := newEnv(t)
	e.mint(t, 1, seller)

	placed := e.now
	if err := e.m.SetBid(1, alice, 100, nil); err != nil {
		t.Fatal(err)
	}

	e.now = placed + e.m.BidLock - 1
	if err := e.m.WithdrawBid(1, alice); !errors.Is(err, ErrBidLocked) {
		t.Errorf("lock-1: got %v, want ErrBidLocked", err)
	}
	e.now = placed + e.m.BidLock
	if err := e.m.WithdrawBid(1, alice); !errors.Is(err, ErrBidLocked) {
		t.Errorf("exactly lock: got %v, want ErrBidLocked", err)
	}
	e.now = placed + e.m.BidLock + 1
	if err := e.m.WithdrawBid(1, alice); err != nil {
		t.Errorf("lock+1: got %v, want success", err)
	}
}

func TestWithdrawBidderOnly(t *testing.T) {
	e := newEnv(t)
	e.mint(t, 1, seller)

	if err := e.m.WithdrawBid(1, alice); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("no bid: got %v", err)
	}
	if err := e.m.SetBid(1, alice, 100, nil); err != nil {
		t.Fatal(err)
	}
	e.now += e.m.BidLock + 1
	if err := e.m.WithdrawBid(1, bob); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("wrong caller: got %v", err)
	}
}

func TestTransferResetsAskKeepsBid(t *testing.T) {
	e := newEnv(t)
	e.mint(t, 1, seller)

	if err := e.m.SetPrice(1, 500, seller, nil); err != nil {
		t.Fatal(err)
	}
	if err := e.m.SetBid(1, alice, 100, nil); err != nil {
		t.Fatal(err)
	}
	if err := e.m.Transfer(1, seller, bob, []byte("gift")); err != nil {
		t.Fatal(err)
	}

	if o, _ := e.m.OwnerOf(1); o != bob {
		t.Error("ownership not moved")
	}
	if p, _ := e.m.PriceOf(1); p != 0 {
		t.Error("ask must reset on transfer")
	}
	b, _ := e.m.BidOf(1)
	if b.Bidder != alice || b.Amount != 100 {
		t.Errorf("bid must survive transfer, got %+v", b)
	}
	if e.m.BalanceOf(seller) != 0 || e.m.BalanceOf(bob) != 1 {
		t.Error("holdings wrong after transfer")
	}

	if len(e.sink.ofType(EventOwnershipChanged)) != 1 {
		t.Error("missing ownership event")
	}
	if len(e.sink.ofType(EventDataPayload)) != 1 {
		t.Error("Transfer must emit the data payload")
	}
}

func TestSilentTransferOmitsDataPayload(t *testing.T) {
	e := newEnv(t)
	e.mint(t, 1, seller)

	if err := e.m.SilentTransfer(1, seller, bob); err != nil {
		t.Fatal(err)
	}
	if len(e.sink.ofType(EventDataPayload)) != 0 {
		t.Error("silent transfer must not emit a data payload")
	}
	if len(e.sink.ofType(EventOwnershipChanged)) != 1 {
		t.Error("missing ownership event")
	}
}

func TestTransferValidation(t *testing.T) {
	e := newEnv(t)
	e.mint(t, 1, seller)

	if err := e.m.Transfer(1, alice, bob, nil); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("non-owner: got %v", err)
	}
	if err := e.m.Transfer(1, seller, ZeroAccount, nil); !errors.Is(err, ErrZeroAddress) {
		t.Errorf("zero target: got %v", err)
	}
}

func TestBidWithoutFunds(t *testing.T) {
	e := newEnv(t)
	e.mint(t, 1, seller)

	if err := e.m.SetBid(1, Account(99), 10, nil); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("unfunded bid: got %v", err)
	}
}

func TestBurnLeavesEscrowUnrefunded(t *testing.T) {
	e := newEnv(t)
	e.mint(t, 1, seller)
	led := e.m.Ledger()

	if err := e.m.SetBid(1, alice, 100, nil); err != nil {
		t.Fatal(err)
	}
	if err := e.m.Burn(1, admin); err != nil {
		t.Fatal(err)
	}

	// Unresolved lifecycle gap, preserved deliberately: the escrow is
	// sunk, not refunded. See DESIGN.md.
	if led.FundsOf(alice) != 10_000-100 {
		t.Errorf("alice funds = %d; burn must not refund", led.FundsOf(alice))
	}
	if led.Sunk() != 100 {
		t.Errorf("sunk = %d, want 100", led.Sunk())
	}
	if led.Escrowed() != 0 {
		t.Errorf("escrow = %d, want 0", led.Escrowed())
	}
	if _, err := e.m.OwnerOf(1); !errors.Is(err, ErrNonexistentItem) {
		t.Error("burned item must not resolve")
	}
}

func TestFeeTierAssignment(t *testing.T) {
	e := newEnv(t)
	e.mint(t, 1, seller)

	// 10% tier.
	if err := e.m.DefineFeeTier(3, feeRcv, 10_000, admin); err != nil {
		t.Fatal(err)
	}
	if err := e.m.AssignFeeTier(1, 3, admin); err != nil {
		t.Fatal(err)
	}
	if err := e.m.SetPrice(1, 100, seller, nil); err != nil {
		t.Fatal(err)
	}
	if err := e.m.SetBid(1, bob, 100, nil); err != nil {
		t.Fatal(err)
	}
	if got := e.m.Ledger().FundsOf(seller); got != 90 {
		t.Errorf("seller got %d, want 90 under the 10%% tier", got)
	}
	if got := e.m.Ledger().FundsOf(feeRcv); got != 10 {
		t.Errorf("fee receiver got %d, want 10", got)
	}
}

// -------------------- hostile recipients --------------------

// reentrantHook tries to call back into the market from inside a
// payment/item callback and records what it got.
type reentrantHook struct {
	m    *Market
	errs []error
}

func (h *reentrantHook) OnPayment(int64) error {
	h.errs = append(h.errs, h.m.SetPrice(1, 1, alice, nil))
	return nil
}

func (h *reentrantHook) OnItemReceived(operator, from Account, itemID uint64, data []byte) []byte {
	h.errs = append(h.errs, h.m.WithdrawBid(itemID, alice))
	return nil
}

func TestReentrancyRejected(t *testing.T) {
	e := newEnv(t)
	e.mint(t, 1, seller)

	hook := &reentrantHook{m: e.m}
	e.m.RegisterHook(bob, hook)

	if err := e.m.SetPrice(1, 100, seller, nil); err != nil {
		t.Fatal(err)
	}
	// Bob's hook fires twice during settlement: once for the item
	// callback; the nested calls must all fail.
	if err := e.m.SetBid(1, bob, 100, nil); err != nil {
		t.Fatalf("outer call must succeed: %v", err)
	}

	if len(hook.errs) == 0 {
		t.Fatal("hook never fired")
	}
	for i, err := range hook.errs {
		if !errors.Is(err, ErrReentrant) {
			t.Errorf("nested call %d: got %v, want ErrReentrant", i, err)
		}
	}
	if o, _ := e.m.OwnerOf(1); o != bob {
		t.Error("settlement must still complete")
	}
}

// rejectingHook refuses every payment.
type rejectingHook struct{ rejected int64 }

func (h *rejectingHook) OnPayment(amount int64) error {
	h.rejected += amount
	return errors.New("not accepting")
}

func (h *rejectingHook) OnItemReceived(_, _ Account, _ uint64, _ []byte) []byte { return nil }

func TestFireAndForgetRefund(t *testing.T) {
	e := newEnv(t)
	e.mint(t, 1, seller)
	led := e.m.Ledger()

	hook := &rejectingHook{}
	e.m.RegisterHook(alice, hook)

	if err := e.m.SetBid(1, alice, 60, nil); err != nil {
		t.Fatal(err)
	}
	// Alice rejects her refund; Bob's bid must commit anyway.
	if err := e.m.SetBid(1, bob, 80, nil); err != nil {
		t.Fatalf("rejecting payee blocked a bid: %v", err)
	}

	if hook.rejected != 60 {
		t.Errorf("rejected = %d, want 60", hook.rejected)
	}
	if led.Sunk() != 60 {
		t.Errorf("sunk = %d, want 60", led.Sunk())
	}
	b, _ := e.m.BidOf(1)
	if b.Bidder != bob || b.Amount != 80 {
		t.Errorf("new bid not recorded: %+v", b)
	}
}

func TestRoleGating(t *testing.T) {
	sink := &recSink{}
	m := New(
		NewFeeSchedule(FeeTier{Receiver: feeRcv, Rate: 1000}),
		NewLedger(),
		denyAll{},
		sink,
	)

	if err := m.Mint(1, seller, alice); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("mint: got %v", err)
	}
	if err := m.Deposit(alice, 10, admin); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("deposit: got %v", err)
	}
	if err := m.DefineFeeTier(1, feeRcv, 100, admin); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("define tier: got %v", err)
	}
}

type denyAll struct{}

func (denyAll) IsAuthorizedMinter(Account) bool { return false }
func (denyAll) IsAuthorizedAdmin(Account) bool  { return false }

func TestExportRestoreRoundTrip(t *testing.T) {
	e := newEnv(t)
	e.mint(t, 1, seller)
	e.mint(t, 2, seller)

	if err := e.m.SetPrice(1, 500, seller, nil); err != nil {
		t.Fatal(err)
	}
	if err := e.m.SetBid(1, alice, 100, nil); err != nil {
		t.Fatal(err)
	}

	st := e.m.Export()

	m2 := New(
		NewFeeSchedule(FeeTier{Receiver: feeRcv, Rate: 1000}),
		NewLedger(),
		allowAll{},
		&recSink{},
	)
	m2.Restore(st)

	if o, _ := m2.OwnerOf(1); o != seller {
		t.Error("owner lost in round trip")
	}
	if p, _ := m2.PriceOf(1); p != 500 {
		t.Error("ask lost in round trip")
	}
	b, _ := m2.BidOf(1)
	if b.Bidder != alice || b.Amount != 100 {
		t.Errorf("bid lost in round trip: %+v", b)
	}
	if m2.BalanceOf(seller) != 2 {
		t.Error("holdings not rebuilt")
	}
	if m2.Ledger().Escrowed() != 100 {
		t.Error("escrow lost in round trip")
	}
}
