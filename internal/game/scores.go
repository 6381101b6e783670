package game

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/yafb/internal/core"
)

// ScoreStore persists the whole high-score table.
// Save always receives the full ordered table and replaces what was stored.
type ScoreStore interface {
	Load() ([]core.ScoreEntry, error)
	Save(entries []core.ScoreEntry) error
}

// Ledger keeps the ordered top-N table in memory and mirrors it to a store.
type Ledger struct {
	entries  []core.ScoreEntry
	capacity int
	store    ScoreStore
	logger   *log.Logger
}

// NewLedger creates a ledger and loads the table from store once.
// A nil store keeps scores in memory only. Load failures leave the table empty.
func NewLedger(store ScoreStore, capacity int, logger *log.Logger) *Ledger {
	l := &Ledger{
		entries:  make([]core.ScoreEntry, 0, capacity+1),
		capacity: capacity,
		store:    store,
		logger:   orDiscard(logger),
	}
	l.load()
	return l
}

func (l *Ledger) load() {
	if l.store == nil {
		return
	}
	entries, err := l.store.Load()
	if err != nil {
		l.logger.Warn("could not load high scores, starting with an empty table", "error", err)
		return
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > l.capacity {
		entries = entries[:l.capacity]
	}
	l.entries = append(l.entries[:0], entries...)
	l.logger.Debug("loaded high scores", "count", len(l.entries))
}

// Insert places e in the table keeping it sorted by score, highest first.
// Equal scores keep their arrival order. The lowest entry is dropped once the
// table is over capacity. Returns the rank (0-based) or -1 if e was dropped.
func (l *Ledger) Insert(e core.ScoreEntry) int {
	pos := len(l.entries)
	for pos > 0 && e.Score > l.entries[pos-1].Score {
		pos--
	}

	l.entries = append(l.entries, core.ScoreEntry{})
	copy(l.entries[pos+1:], l.entries[pos:])
	l.entries[pos] = e

	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}
	if pos >= l.capacity {
		return -1
	}
	return pos
}

// Record inserts e and writes the full table to the store.
// The in-memory table is updated even when the write fails.
func (l *Ledger) Record(e core.ScoreEntry) (int, error) {
	rank := l.Insert(e)
	if l.store == nil {
		return rank, nil
	}
	if err := l.store.Save(l.Entries()); err != nil {
		return rank, err
	}
	return rank, nil
}

// Rename changes the name of the entry at rank and writes the full table.
func (l *Ledger) Rename(rank int, name string) error {
	if rank < 0 || rank >= len(l.entries) {
		return fmt.Errorf("scores: rank %d out of range [0, %d)", rank, len(l.entries))
	}
	l.entries[rank].Name = name
	if l.store == nil {
		return nil
	}
	return l.store.Save(l.Entries())
}

// Entries returns a copy of the table, highest score first.
func (l *Ledger) Entries() []core.ScoreEntry {
	out := make([]core.ScoreEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Capacity returns the maximum table size.
func (l *Ledger) Capacity() int {
	return l.capacity
}
