package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"callistonft/domain/market"
	"callistonft/infra/sequence"
	"callistonft/infra/wal"
	"callistonft/snapshot"
)

func openWAL(t *testing.T, dir string) *wal.WAL {
	t.Helper()
	w, err := wal.Open(wal.Config{Dir: dir, SegmentSize: 1 << 20})
	require.NoError(t, err)
	return w
}

func TestReplayRebuildsState(t *testing.T) {
	dir := t.TempDir()
	w := openWAL(t, dir)

	s := NewTradeService(newTestMarket(), sequence.New(0), w, nil, zerolog.Nop())
	_, err := s.Deposit(market.Account(alice), 10_000, market.Account(admin))
	require.NoError(t, err)
	_, err = s.Mint(1, market.Account(seller), market.Account(admin))
	require.NoError(t, err)
	_, err = s.SetPrice(1, 100, market.Account(seller), nil)
	require.NoError(t, err)
	_, err = s.SetBid(1, market.Account(alice), 60, []byte{0xde, 0xad})
	require.NoError(t, err)
	// A rejected intent lands in the journal too; replay must shrug it off.
	_, err = s.SetBid(1, market.Account(alice), 60, nil)
	require.ErrorIs(t, err, market.ErrBidTooLow)
	require.NoError(t, w.Close())

	m2 := newTestMarket()
	seq2 := sequence.New(0)
	require.NoError(t, ReplayFromWAL(dir, 0, m2, seq2, zerolog.Nop()))

	owner, err := m2.OwnerOf(1)
	require.NoError(t, err)
	require.EqualValues(t, seller, owner)
	ask, err := m2.PriceOf(1)
	require.NoError(t, err)
	require.EqualValues(t, 100, ask)
	bid, err := m2.BidOf(1)
	require.NoError(t, err)
	require.EqualValues(t, alice, bid.Bidder)
	require.EqualValues(t, 60, bid.Amount)
	require.EqualValues(t, 10_000-60, m2.Ledger().FundsOf(market.Account(alice)))
	require.EqualValues(t, 60, m2.Ledger().Escrowed())

	// Five intents were journaled, including the rejected one.
	require.EqualValues(t, 5, seq2.Current())

	// The restored bid keeps its original timestamp: the lock is
	// still in force right after replay.
	err = m2.WithdrawBid(1, market.Account(alice))
	require.ErrorIs(t, err, market.ErrBidLocked)
}

func TestReplaySkipsSnapshotCoveredRecords(t *testing.T) {
	walDir := t.TempDir()
	snapDir := t.TempDir()
	w := openWAL(t, walDir)

	s := NewTradeService(newTestMarket(), sequence.New(0), w, nil, zerolog.Nop())
	_, err := s.Deposit(market.Account(alice), 500, market.Account(admin))
	require.NoError(t, err)

	// Snapshot covers the deposit.
	s.snapshotOnce(&snapshot.Writer{Dir: snapDir})

	_, err = s.Deposit(market.Account(alice), 250, market.Account(admin))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	// Boot path: load snapshot, then replay only what it missed.
	m2 := newTestMarket()
	snapSeq, err := snapshot.Load(snapDir, m2)
	require.NoError(t, err)
	require.EqualValues(t, 1, snapSeq)

	seq2 := sequence.New(snapSeq)
	require.NoError(t, ReplayFromWAL(walDir, snapSeq, m2, seq2, zerolog.Nop()))

	// 500 from the snapshot + 250 replayed once, not twice.
	require.EqualValues(t, 750, m2.Ledger().FundsOf(market.Account(alice)))
	require.EqualValues(t, 2, seq2.Current())
}

func TestSnapshotRoundTripThroughService(t *testing.T) {
	snapDir := t.TempDir()

	s := newTestService(t, nil)
	_, err := s.Deposit(market.Account(bob), 1_000, market.Account(admin))
	require.NoError(t, err)
	_, err = s.Mint(7, market.Account(seller), market.Account(admin))
	require.NoError(t, err)
	_, err = s.SetBid(7, market.Account(bob), 40, nil)
	require.NoError(t, err)

	s.snapshotOnce(&snapshot.Writer{Dir: snapDir})

	m2 := newTestMarket()
	seq, err := snapshot.Load(snapDir, m2)
	require.NoError(t, err)
	require.EqualValues(t, 3, seq)

	owner, err := m2.OwnerOf(7)
	require.NoError(t, err)
	require.EqualValues(t, seller, owner)
	bid, err := m2.BidOf(7)
	require.NoError(t, err)
	require.EqualValues(t, 40, bid.Amount)
	require.EqualValues(t, 40, m2.Ledger().Escrowed())
	require.Equal(t, 1, m2.BalanceOf(market.Account(seller)))
}

func TestReplayAbortsOnCorruptPayload(t *testing.T) {
	dir := t.TempDir()
	w := openWAL(t, dir)
	require.NoError(t, w.Append(wal.NewRecord(wal.RecordSetPrice, 1, []byte("not|a|number|zz"))))
	require.NoError(t, w.Close())

	err := ReplayFromWAL(dir, 0, newTestMarket(), sequence.New(0), zerolog.Nop())
	require.Error(t, err)
}
