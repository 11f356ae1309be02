// Package outbox is the durable event outbox. Mutations append their
// notifications here in the same breath as the state change; the
// broadcaster drains pending records to Kafka and marks them acked.
// Pebble gives us durable keyed state with ordered scans.
package outbox

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
)

// -------------------- State --------------------

type State uint8

const (
	StateNew State = iota
	StateSent
	StateAcked
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateAcked:
		return "ACKED"
	case StateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// -------------------- Record --------------------

type Record struct {
	Seq         uint64
	State       State
	Retries     uint32
	LastAttempt int64
	Payload     []byte
}

// binary encoding: [state:1][retries:4][lastAttempt:8][len:4][payload]
func encodeRecord(r Record) []byte {
	buf := make([]byte, 1+4+8+4+len(r.Payload))
	buf[0] = byte(r.State)
	binary.BigEndian.PutUint32(buf[1:5], r.Retries)
	binary.BigEndian.PutUint64(buf[5:13], uint64(r.LastAttempt))
	binary.BigEndian.PutUint32(buf[13:17], uint32(len(r.Payload)))
	copy(buf[17:], r.Payload)
	return buf
}

func decodeRecord(b []byte) (Record, error) {
	if len(b) < 17 {
		return Record{}, errors.New("outbox: short record")
	}
	l := binary.BigEndian.Uint32(b[13:17])
	if uint32(len(b)-17) != l {
		return Record{}, errors.New("outbox: payload length mismatch")
	}
	payload := make([]byte, l)
	copy(payload, b[17:])
	return Record{
		State:       State(b[0]),
		Retries:     binary.BigEndian.Uint32(b[1:5]),
		LastAttempt: int64(binary.BigEndian.Uint64(b[5:13])),
		Payload:     payload,
	}, nil
}

// -------------------- Outbox --------------------

type Outbox struct {
	db *pebble.DB
}

func Open(dir string) (*Outbox, error) {
	db, err := pebble.Open(dir, &pebble.Options{
		DisableWAL: false, // we WANT durability
	})
	if err != nil {
		return nil, err
	}
	return &Outbox{db: db}, nil
}

func (o *Outbox) Close() error {
	return o.db.Close()
}

// -------------------- API --------------------

// PutNew stores a fresh event payload under its mutation seq. Multiple
// events from one mutation use sub-ids via PutNewAt.
func (o *Outbox) PutNew(seq uint64, sub uint32, payload []byte) error {
	rec := Record{
		State:   StateNew,
		Payload: payload,
	}
	return o.db.Set(keyFor(seq, sub), encodeRecord(rec), pebble.Sync)
}

// MarkSent flips a record to SENT before the publish attempt and counts
// the attempt.
func (o *Outbox) MarkSent(seq uint64, sub uint32) error {
	return o.transition(seq, sub, StateSent, true)
}

// MarkAcked flips a record to ACKED after the broker confirmed it.
func (o *Outbox) MarkAcked(seq uint64, sub uint32) error {
	return o.transition(seq, sub, StateAcked, false)
}

func (o *Outbox) transition(seq uint64, sub uint32, s State, attempt bool) error {
	rec, err := o.get(seq, sub)
	if err != nil {
		return err
	}
	rec.State = s
	if attempt {
		rec.Retries++
	}
	rec.LastAttempt = time.Now().UnixNano()
	return o.db.Set(keyFor(seq, sub), encodeRecord(rec), pebble.Sync)
}

func (o *Outbox) get(seq uint64, sub uint32) (Record, error) {
	val, closer, err := o.db.Get(keyFor(seq, sub))
	if err != nil {
		return Record{}, err
	}
	defer closer.Close()
	rec, err := decodeRecord(val)
	if err != nil {
		return Record{}, err
	}
	rec.Seq = seq
	return rec, nil
}

// ScanPending iterates NEW and SENT records in key order. SENT records
// are included because a crash between publish and ack must be retried
// (at-least-once delivery).
func (o *Outbox) ScanPending(fn func(seq uint64, sub uint32, rec Record) error) error {
	iter, err := o.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("event/"),
		UpperBound: []byte("event/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		rec, err := decodeRecord(iter.Value())
		if err != nil {
			return err
		}
		if rec.State != StateNew && rec.State != StateSent {
			continue
		}

		seq, sub, err := parseKey(iter.Key())
		if err != nil {
			return err
		}
		rec.Seq = seq

		if err := fn(seq, sub, rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// DeleteAckedUpTo garbage-collects ACKED records at or below seq.
// Called after a snapshot covers them.
func (o *Outbox) DeleteAckedUpTo(seq uint64) error {
	iter, err := o.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("event/"),
		UpperBound: []byte("event/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		rec, err := decodeRecord(iter.Value())
		if err != nil {
			return err
		}
		s, _, err := parseKey(iter.Key())
		if err != nil {
			return err
		}
		if s > seq || rec.State != StateAcked {
			continue
		}
		key := append([]byte(nil), iter.Key()...)
		if err := o.db.Delete(key, pebble.Sync); err != nil {
			return err
		}
	}
	return iter.Error()
}

// -------------------- Helpers --------------------

func keyFor(seq uint64, sub uint32) []byte {
	return []byte(fmt.Sprintf("event/%020d/%04d", seq, sub))
}

func parseKey(b []byte) (uint64, uint32, error) {
	var seq uint64
	var sub uint32
	_, err := fmt.Sscanf(string(bytes.TrimPrefix(b, []byte("event/"))), "%d/%d", &seq, &sub)
	return seq, sub, err
}
