// Package snapshot persists and restores the full market state so the
// entry WAL can be truncated. One gob file, replaced atomically; loading
// is optional; a missing snapshot just means full replay.
package snapshot

import (
	"time"

	"callistonft/domain/market"
)

type Snapshot struct {
	Seq     uint64
	Created time.Time
	State   market.State
}
