package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/yafb/internal/core"
	"github.com/vovakirdan/yafb/internal/registry"
)

func init() {
	registry.Register(TextBackend, DefaultTextPath, func(path string, logger *log.Logger) (registry.Store, error) {
		s, err := OpenText(path, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}

// TextStore keeps the table in a plain text file, one "NAME SCORE" per line.
type TextStore struct {
	path   string
	logger *log.Logger
}

// OpenText prepares a text store at path. The file itself is created on
// the first Save.
func OpenText(path string, logger *log.Logger) (*TextStore, error) {
	p, err := PreparePath(path)
	if err != nil {
		return nil, err
	}
	return &TextStore{path: p, logger: orDiscard(logger)}, nil
}

// Path returns the resolved file path.
func (s *TextStore) Path() string {
	return s.path
}

// Load reads the whole file. A missing file is an empty table.
// Malformed lines are skipped with a warning.
func (s *TextStore) Load() ([]core.ScoreEntry, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open score file: %w", err)
	}
	defer f.Close()

	entries, err := ReadScores(f, s.logger)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read score file: %w", err)
	}
	return entries, nil
}

// Save rewrites the whole file. The table is written to a temporary file
// in the same directory and renamed over the old one, so a failed write
// leaves the previous file intact.
func (s *TextStore) Save(entries []core.ScoreEntry) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".highscores-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := WriteScores(tmp, entries); err != nil {
		tmp.Close()
		os.Remove(tmpName) //nolint:errcheck
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return fmt.Errorf("storage: cannot replace score file: %w", err)
	}
	return nil
}

// Close is a no-op; the file is only open during Load and Save.
func (s *TextStore) Close() error {
	return nil
}

// ReadScores parses "NAME SCORE" lines from r in file order.
// Blank lines are ignored and malformed lines are logged and skipped.
func ReadScores(r io.Reader, logger *log.Logger) ([]core.ScoreEntry, error) {
	logger = orDiscard(logger)

	var entries []core.ScoreEntry
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		e, err := ParseLine(text)
		if err != nil {
			logger.Warn("skipping malformed score line", "line", line, "error", err)
			continue
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ParseLine parses a single "NAME SCORE" record.
func ParseLine(text string) (core.ScoreEntry, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return core.ScoreEntry{}, fmt.Errorf("expected NAME SCORE, got %d fields", len(fields))
	}
	score, err := strconv.Atoi(fields[1])
	if err != nil {
		return core.ScoreEntry{}, fmt.Errorf("bad score %q: %w", fields[1], err)
	}
	if score < 0 {
		return core.ScoreEntry{}, fmt.Errorf("negative score %d", score)
	}
	return core.ScoreEntry{Name: fields[0], Score: score}, nil
}

// WriteScores writes one "NAME SCORE" line per entry.
func WriteScores(w io.Writer, entries []core.ScoreEntry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s %d\n", e.Name, e.Score); err != nil {
			return err
		}
	}
	return bw.Flush()
}

var _ registry.Store = (*TextStore)(nil)
