package service

import (
	"context"
	"time"

	"callistonft/snapshot"
)

// StartSnapshotJob periodically persists the full market state, then
// truncates the entry WAL and garbage-collects acked outbox records the
// snapshot now covers.
func (s *TradeService) StartSnapshotJob(ctx context.Context, dir string, interval time.Duration) {
	w := &snapshot.Writer{Dir: dir}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.snapshotOnce(w)
			}
		}
	}()
}

func (s *TradeService) snapshotOnce(w *snapshot.Writer) {
	s.mu.Lock()
	seq := s.seq.Current()
	st := s.market.Export()
	s.mu.Unlock()

	if err := w.Write(seq, st); err != nil {
		s.log.Error().Err(err).Uint64("seq", seq).Msg("snapshot write failed")
		return
	}

	if s.wal != nil {
		_ = s.wal.TruncateBefore(seq)
	}
	if s.outbox != nil {
		_ = s.outbox.DeleteAckedUpTo(seq)
	}
	s.log.Info().Uint64("seq", seq).Msg("snapshot written")
}
