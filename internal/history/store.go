// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a log of completed searches in SQLite.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const dbFile = "history.db"

// Entry is one completed search.
type Entry struct {
	ID             string    `json:"id"`
	Topic          string    `json:"topic"`
	Mode           string    `json:"mode"`
	RankFilter     string    `json:"rank_filter,omitempty"`
	SourcesQueried int       `json:"sources_queried"`
	ResultCount    int       `json:"result_count"`
	TopScore       int       `json:"top_score"`
	CreatedAt      time.Time `json:"created_at"`
}

// Store manages the search history SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the history database at dir/history.db,
// creating the schema if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS searches (
		id TEXT PRIMARY KEY,
		topic TEXT NOT NULL,
		mode TEXT NOT NULL,
		rank_filter TEXT,
		sources_queried INTEGER NOT NULL,
		result_count INTEGER NOT NULL,
		top_score INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`)
	return err
}

// Record inserts one entry. A missing ID gets a fresh UUID; a zero
// CreatedAt gets the current time. Returns the stored entry.
func (s *Store) Record(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO searches (id, topic, mode, rank_filter, sources_queried, result_count, top_score, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Topic, e.Mode, e.RankFilter, e.SourcesQueried, e.ResultCount, e.TopScore,
		e.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return Entry{}, fmt.Errorf("recording search: %w", err)
	}
	return e, nil
}

// Recent returns up to limit entries, newest first. A limit of 0 or less
// defaults to 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, topic, mode, rank_filter, sources_queried, result_count, top_score, created_at
		 FROM searches ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Topic, &e.Mode, &e.RankFilter,
			&e.SourcesQueried, &e.ResultCount, &e.TopScore, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
