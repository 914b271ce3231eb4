package briefs

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// DumpVersion is the format version written by Dump.
const DumpVersion = "1"

// DumpData is the full serializable dump of a store.
type DumpData struct {
	Version    string       `json:"version"`
	ExportedAt time.Time    `json:"exportedAt"`
	Briefs     []SavedBrief `json:"briefs"`
}

// Dump captures every brief in the store, newest first.
func Dump(s Store, now time.Time) (*DumpData, error) {
	list, err := s.List()
	if err != nil {
		return nil, fmt.Errorf("briefs: dump: %w", err)
	}
	return &DumpData{
		Version:    DumpVersion,
		ExportedAt: now.UTC(),
		Briefs:     list,
	}, nil
}

// Restore saves every brief of a dump, replacing ids that already exist.
// Briefs are saved oldest first so the store ends up in dump order.
func Restore(s Store, data *DumpData) (int, error) {
	n := 0
	for i := len(data.Briefs) - 1; i >= 0; i-- {
		b := data.Briefs[i]
		if err := s.Save(b); err != nil {
			return n, fmt.Errorf("briefs: restore %s: %w", b.ID, err)
		}
		n++
	}
	return n, nil
}

// SafeList lists the store, treating any failure as an empty store.
// The error is logged, never returned.
func SafeList(s Store, log zerolog.Logger) []SavedBrief {
	if s == nil {
		return []SavedBrief{}
	}
	list, err := s.List()
	if err != nil {
		log.Warn().Err(err).Msg("saved briefs unreadable, showing empty list")
		return []SavedBrief{}
	}
	return list
}
