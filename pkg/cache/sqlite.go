package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS translations (
	key         TEXT PRIMARY KEY,
	model       TEXT NOT NULL,
	source_lang TEXT NOT NULL,
	target_lang TEXT NOT NULL,
	input       TEXT NOT NULL,
	translated  TEXT NOT NULL,
	created_at  TIMESTAMP NOT NULL
);
`

// SQLiteStore is a Store backed by a SQLite database file.
// Use ":memory:" for an in-memory database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and ensures the
// schema exists.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Put(ctx context.Context, entry *Entry) error {
	// INSERT OR IGNORE keeps Put idempotent by key.
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO translations
			(key, model, source_lang, target_lang, input, translated, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.Key, entry.Model, entry.SourceLang, entry.TargetLang,
		entry.Input, entry.Translated, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT key, model, source_lang, target_lang, input, translated, created_at
		 FROM translations WHERE key = ?`, key)

	var entry Entry
	err := row.Scan(&entry.Key, &entry.Model, &entry.SourceLang, &entry.TargetLang,
		&entry.Input, &entry.Translated, &entry.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound{Key: key}
	}
	if err != nil {
		return nil, fmt.Errorf("scan entry: %w", err)
	}

	return &entry, nil
}

func (s *SQLiteStore) Has(ctx context.Context, key string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM translations WHERE key = ?`, key).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query entry: %w", err)
	}

	return true, nil
}

func (s *SQLiteStore) Len(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM translations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}

	return count, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
