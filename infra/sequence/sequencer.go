package sequence

import "sync/atomic"

// Sequencer hands out strictly monotonic mutation ids. Every accepted
// write gets one; WAL records and outbox keys share the same space.
type Sequencer struct {
	next atomic.Uint64
}

// New creates a sequencer. Fresh start → 0; after replay → last seq.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.next.Store(start)
	return s
}

// Next returns the next id.
func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Current returns the last issued id.
func (s *Sequencer) Current() uint64 {
	return s.next.Load()
}

// Reset jumps the sequencer forward. Only valid after WAL replay.
func (s *Sequencer) Reset(v uint64) {
	s.next.Store(v)
}
