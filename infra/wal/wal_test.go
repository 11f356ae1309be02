package wal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T, dir string) *WAL {
	t.Helper()
	w, err := Open(Config{
		Dir:         dir,
		SegmentSize: 1 << 20,
	})
	require.NoError(t, err)
	return w
}

func TestAppendReplayRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := openTest(t, dir)

	require.NoError(t, w.Append(NewRecord(RecordMint, 1, []byte("1|10"))))
	require.NoError(t, w.Append(NewRecord(RecordSetPrice, 2, []byte("1|100|10"))))
	require.NoError(t, w.Append(NewRecord(RecordSetBid, 3, []byte("1|20|60|"))))
	require.NoError(t, w.Close())

	var got []*Record
	last, err := Replay(dir, func(r *Record) error {
		got = append(got, r)
		return nil
	})
	require.NoError(t, err)
	require.EqualValues(t, 3, last)
	require.Len(t, got, 3)
	require.Equal(t, RecordSetPrice, got[1].Type)
	require.Equal(t, []byte("1|100|10"), got[1].Data)
}

func TestReplayRejectsNonMonotonicSeq(t *testing.T) {
	dir := t.TempDir()
	w := openTest(t, dir)

	require.NoError(t, w.Append(NewRecord(RecordMint, 5, nil)))
	require.NoError(t, w.Append(NewRecord(RecordMint, 5, nil)))
	require.NoError(t, w.Close())

	_, err := Replay(dir, func(*Record) error { return nil })
	require.Error(t, err)
}

func TestSegmentRotationAndReopen(t *testing.T) {
	dir := t.TempDir()
	w, err := Open(Config{Dir: dir, SegmentSize: 64}) // force rotation
	require.NoError(t, err)

	for seq := uint64(1); seq <= 10; seq++ {
		require.NoError(t, w.Append(NewRecord(RecordDeposit, seq, []byte("20|1000|1"))))
	}
	require.NoError(t, w.Close())

	segs, err := filepath.Glob(filepath.Join(dir, "segment-*.wal"))
	require.NoError(t, err)
	require.Greater(t, len(segs), 1, "tiny segment size must rotate")

	// Reopen appends to the newest segment, not segment zero.
	w2, err := Open(Config{Dir: dir, SegmentSize: 1 << 20})
	require.NoError(t, err)
	require.NoError(t, w2.Append(NewRecord(RecordDeposit, 11, []byte("20|1|1"))))
	require.NoError(t, w2.Close())

	last, err := Replay(dir, func(*Record) error { return nil })
	require.NoError(t, err)
	require.EqualValues(t, 11, last)
}

func TestTruncateBeforeKeepsTail(t *testing.T) {
	dir := t.TempDir()
	w, err := Open(Config{Dir: dir, SegmentSize: 64})
	require.NoError(t, err)

	for seq := uint64(1); seq <= 10; seq++ {
		require.NoError(t, w.Append(NewRecord(RecordDeposit, seq, []byte("20|1000|1"))))
	}
	require.NoError(t, w.TruncateBefore(5))
	require.NoError(t, w.Close())

	var seqs []uint64
	_, err = Replay(dir, func(r *Record) error {
		seqs = append(seqs, r.Seq)
		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, seqs)
	// Everything after the cutoff must survive.
	require.Contains(t, seqs, uint64(10))
	for i := 1; i < len(seqs); i++ {
		require.Greater(t, seqs[i], seqs[i-1])
	}
}

func TestAgeBasedRotation(t *testing.T) {
	dir := t.TempDir()
	w, err := Open(Config{
		Dir:             dir,
		SegmentSize:     1 << 20,
		SegmentDuration: time.Nanosecond,
	})
	require.NoError(t, err)

	require.NoError(t, w.Append(NewRecord(RecordMint, 1, nil)))
	time.Sleep(time.Millisecond)
	require.NoError(t, w.Append(NewRecord(RecordMint, 2, nil)))
	require.NoError(t, w.Close())

	segs, err := filepath.Glob(filepath.Join(dir, "segment-*.wal"))
	require.NoError(t, err)
	require.Greater(t, len(segs), 1)
}
