package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"time"

	"callistonft/domain/market"
)

type Writer struct {
	Dir string
}

// Write persists the state under seq. Written to a temp file and
// renamed so a crash mid-write never destroys the previous snapshot.
func (w *Writer) Write(seq uint64, st market.State) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}

	tmp := filepath.Join(w.Dir, "snapshot.bin.tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	s := Snapshot{
		Seq:     seq,
		Created: time.Now(),
		State:   st,
	}
	if err := gob.NewEncoder(f).Encode(&s); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, filepath.Join(w.Dir, "snapshot.bin"))
}
