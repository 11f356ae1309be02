package market

import (
	"errors"
	"testing"
)

func TestLedgerDebitBounds(t *testing.T) {
	l := NewLedger()
	l.Deposit(alice, 100)

	if err := l.Debit(alice, 101); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("overdraft: got %v", err)
	}
	if err := l.Debit(alice, 100); err != nil {
		t.Fatalf("exact debit: %v", err)
	}
	if l.FundsOf(alice) != 0 {
		t.Errorf("funds = %d, want 0", l.FundsOf(alice))
	}
	if err := l.Debit(bob, 1); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("unknown account: got %v", err)
	}
}

func TestPayBestEffortPlain(t *testing.T) {
	l := NewLedger()

	if out := l.PayBestEffort(alice, 50); out.Rejected {
		t.Error("unhooked account must accept")
	}
	if l.FundsOf(alice) != 50 {
		t.Errorf("funds = %d, want 50", l.FundsOf(alice))
	}
	// Zero payouts are a no-op, not a hook invocation.
	h := &rejectingHook{}
	l.RegisterHook(bob, h)
	if out := l.PayBestEffort(bob, 0); out.Rejected || h.rejected != 0 {
		t.Error("zero payout must not touch the hook")
	}
}

func TestPayBestEffortRejectedIsSunk(t *testing.T) {
	l := NewLedger()
	l.RegisterHook(bob, &rejectingHook{})

	out := l.PayBestEffort(bob, 75)
	if !out.Rejected || out.Err == nil {
		t.Fatalf("outcome = %+v, want rejection", out)
	}
	if l.FundsOf(bob) != 0 {
		t.Error("rejected payment must not credit")
	}
	if l.Sunk() != 75 {
		t.Errorf("sunk = %d, want 75", l.Sunk())
	}
}

func TestEscrowPot(t *testing.T) {
	l := NewLedger()
	l.Escrow(100)
	l.Escrow(40)
	l.ReleaseEscrow(100)
	if l.Escrowed() != 40 {
		t.Errorf("escrow = %d, want 40", l.Escrowed())
	}
	l.ReleaseEscrow(40)
	l.Sink(40)
	if l.Escrowed() != 0 || l.Sunk() != 40 {
		t.Errorf("escrow=%d sunk=%d", l.Escrowed(), l.Sunk())
	}
}
