// Package storage provides persistence backends for the high-score table.
// The text backend keeps one "NAME SCORE" pair per line; the sqlite backend
// uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Both register themselves with the registry under their backend name.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

const (
	// TextBackend is the registry name of the line-oriented text store.
	TextBackend = "text"

	// SQLiteBackend is the registry name of the SQLite store.
	SQLiteBackend = "sqlite"

	// DefaultTextPath is where the text store lives unless overridden.
	DefaultTextPath = "~/.yafb/highscores.txt"

	// DefaultSQLitePath is where the SQLite store lives unless overridden.
	DefaultSQLitePath = "~/.yafb/scores.db"
)

// PreparePath expands a leading ~ and creates the parent directories.
func PreparePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("storage: empty path")
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	return path, nil
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger != nil {
		return logger
	}
	return log.New(io.Discard)
}
