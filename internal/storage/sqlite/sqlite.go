package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mongle/monglectl/internal/entry"
	"github.com/mongle/monglectl/internal/storage"
	_ "github.com/tursodatabase/go-libsql"
)

// Store implements storage.Store using SQLite via Turso/libSQL.
// Save keeps the same replace-all contract as the JSON blob backend: the
// whole collection is rewritten in one transaction.
type Store struct {
	db *sql.DB
}

// New creates a new SQLite storage backend.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", storage.ErrStorage, err)
	}

	dbPath := filepath.Join(dataDir, "monglectl.db")
	db, err := sql.Open("libsql", "file:"+dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", storage.ErrStorage, err)
	}

	// Enable WAL mode. The pragma returns a result row, so it must go
	// through Query: the libsql driver rejects row-returning statements
	// issued via Exec.
	if rows, err := db.Query("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: enabling WAL mode: %v", storage.ErrStorage, err)
	} else {
		rows.Close()
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS diaries (
			position INTEGER PRIMARY KEY,
			id       TEXT NOT NULL UNIQUE,
			text     TEXT NOT NULL CHECK(length(trim(text)) > 0),
			date     TEXT NOT NULL,
			locked   INTEGER NOT NULL DEFAULT 0,
			emotion  TEXT
		);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("%w: creating schema: %v", storage.ErrStorage, err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the persisted collection in stored order.
func (s *Store) Load() ([]entry.Entry, error) {
	rows, err := s.db.Query(
		"SELECT id, text, date, locked, emotion FROM diaries ORDER BY position ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("%w: querying diaries: %v", storage.ErrStorage, err)
	}
	defer rows.Close()

	entries := []entry.Entry{}
	for rows.Next() {
		var e entry.Entry
		var dateStr string
		var locked int
		var emotion sql.NullString
		if err := rows.Scan(&e.ID, &e.Text, &dateStr, &locked, &emotion); err != nil {
			return nil, fmt.Errorf("%w: scanning row: %v", storage.ErrStorage, err)
		}
		e.Date, err = time.Parse(time.RFC3339, dateStr)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing date: %v", storage.ErrStorage, err)
		}
		e.Locked = locked != 0
		if emotion.Valid {
			e.Emotion = entry.Emotion(emotion.String)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading rows: %v", storage.ErrStorage, err)
	}

	return entries, nil
}

// Save replaces the stored collection with the given one atomically.
func (s *Store) Save(entries []entry.Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", storage.ErrStorage, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM diaries"); err != nil {
		return fmt.Errorf("%w: clearing diaries: %v", storage.ErrStorage, err)
	}

	for i, e := range entries {
		var emotion interface{}
		if e.Emotion != "" {
			emotion = string(e.Emotion)
		}
		locked := 0
		if e.Locked {
			locked = 1
		}
		_, err := tx.Exec(
			"INSERT INTO diaries (position, id, text, date, locked, emotion) VALUES (?, ?, ?, ?, ?, ?)",
			i, e.ID, e.Text, e.Date.UTC().Format(time.RFC3339), locked, emotion,
		)
		if err != nil {
			return fmt.Errorf("%w: inserting entry %s: %v", storage.ErrStorage, e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing: %v", storage.ErrStorage, err)
	}
	return nil
}
