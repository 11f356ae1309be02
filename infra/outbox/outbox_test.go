package outbox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Outbox {
	t.Helper()
	o, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = o.Close() })
	return o
}

func TestRecordCodec(t *testing.T) {
	in := Record{State: StateSent, Retries: 3, LastAttempt: 42, Payload: []byte(`{"v":1}`)}
	out, err := decodeRecord(encodeRecord(in))
	require.NoError(t, err)
	require.Equal(t, in, out)

	_, err = decodeRecord([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestLifecycle(t *testing.T) {
	o := openTest(t)

	require.NoError(t, o.PutNew(7, 0, []byte("a")))
	require.NoError(t, o.PutNew(7, 1, []byte("b")))
	require.NoError(t, o.PutNew(9, 0, []byte("c")))

	var seen []uint64
	require.NoError(t, o.ScanPending(func(seq uint64, sub uint32, rec Record) error {
		seen = append(seen, seq)
		return nil
	}))
	require.Equal(t, []uint64{7, 7, 9}, seen, "pending scan is key-ordered")

	require.NoError(t, o.MarkSent(7, 0))
	require.NoError(t, o.MarkAcked(7, 0))

	seen = seen[:0]
	require.NoError(t, o.ScanPending(func(seq uint64, sub uint32, rec Record) error {
		seen = append(seen, seq)
		return nil
	}))
	require.Equal(t, []uint64{7, 9}, seen, "acked records drop out of the scan")
}

func TestSentIsStillPending(t *testing.T) {
	o := openTest(t)

	require.NoError(t, o.PutNew(1, 0, []byte("x")))
	require.NoError(t, o.MarkSent(1, 0))

	// Crash between publish and ack: the record must be retried.
	var n int
	require.NoError(t, o.ScanPending(func(uint64, uint32, Record) error {
		n++
		return nil
	}))
	require.Equal(t, 1, n)
}

func TestDeleteAckedUpTo(t *testing.T) {
	o := openTest(t)

	require.NoError(t, o.PutNew(1, 0, []byte("a")))
	require.NoError(t, o.PutNew(2, 0, []byte("b")))
	require.NoError(t, o.PutNew(3, 0, []byte("c")))
	require.NoError(t, o.MarkAcked(1, 0))
	require.NoError(t, o.MarkAcked(3, 0))

	require.NoError(t, o.DeleteAckedUpTo(2))

	// 1 is gone (acked, covered), 2 survives (not acked), 3 survives
	// (acked but beyond the cutoff).
	var pending int
	require.NoError(t, o.ScanPending(func(seq uint64, _ uint32, _ Record) error {
		pending++
		require.EqualValues(t, 2, seq)
		return nil
	}))
	require.Equal(t, 1, pending)

	_, err := o.get(3, 0)
	require.NoError(t, err)
	_, err = o.get(1, 0)
	require.Error(t, err)
}
