package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"

	"callistonft/domain/market"
)

// Load restores a snapshot into the market and returns its seq.
// A missing file is not an error: the WAL replays from zero.
func Load(dir string, m *market.Market) (uint64, error) {
	f, err := os.Open(filepath.Join(dir, "snapshot.bin"))
	if err != nil {
		return 0, nil // snapshot optional
	}
	defer f.Close()

	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return 0, err
	}

	m.Restore(s.State)
	return s.Seq, nil
}
