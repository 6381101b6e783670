package storage

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/yafb/internal/core"
	"github.com/vovakirdan/yafb/internal/registry"
)

func init() {
	registry.Register(SQLiteBackend, DefaultSQLitePath, func(path string, logger *log.Logger) (registry.Store, error) {
		s, err := OpenSQLite(path, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}

// SQLiteStore manages the SQLite database connection for score persistence.
type SQLiteStore struct {
	db     *sql.DB
	logger *log.Logger
}

// OpenSQLite creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string, logger *log.Logger) (*SQLiteStore, error) {
	dbPath, err := PreparePath(dbPath)
	if err != nil {
		return nil, err
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &SQLiteStore{db: db, logger: orDiscard(logger)}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			rank INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s != nil && s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns the stored table in rank order.
func (s *SQLiteStore) Load() ([]core.ScoreEntry, error) {
	rows, err := s.db.Query(`SELECT name, score FROM high_scores ORDER BY rank`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []core.ScoreEntry
	for rows.Next() {
		var e core.ScoreEntry
		if err := rows.Scan(&e.Name, &e.Score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Save replaces the whole table inside one transaction.
func (s *SQLiteStore) Save(entries []core.ScoreEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec(`DELETE FROM high_scores`); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	for i, e := range entries {
		if _, err := tx.Exec(
			`INSERT INTO high_scores (rank, name, score) VALUES (?, ?, ?)`,
			i+1, e.Name, e.Score,
		); err != nil {
			return fmt.Errorf("storage: cannot save score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit scores: %w", err)
	}
	s.logger.Debug("scores written", "backend", SQLiteBackend, "entries", len(entries))
	return nil
}

var _ registry.Store = (*SQLiteStore)(nil)
