// Package storage provides SQLite-based persistence for match history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// End reasons recorded with a match.
const (
	EndCompleted  = "completed" // Someone reached the win score
	EndQuit       = "quit"      // Player left an endless or unfinished match
	EndDisconnect = "disconnect"
)

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchRecord is one finished (or abandoned) match.
type MatchRecord struct {
	ID           int64
	MatchID      string // UUID, generated on save when empty
	Host         string // "terminal", "window" or "ssh"
	PlayerScore  int
	AIScore      int
	Winner       string // "player", "cpu" or "none"
	EndReason    string
	Ticks        int64
	Hits         int
	LongestRally int
	Duration     time.Duration
	CreatedAt    time.Time
}

// Summary aggregates all recorded matches.
type Summary struct {
	Matches      int
	PlayerWins   int
	AIWins       int
	Draws        int
	PlayerPoints int
	AIPoints     int
	BestRally    int
	LastPlayed   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			host TEXT NOT NULL DEFAULT '',
			player_score INTEGER NOT NULL DEFAULT 0,
			ai_score INTEGER NOT NULL DEFAULT 0,
			winner TEXT NOT NULL DEFAULT 'none',
			end_reason TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			hits INTEGER NOT NULL DEFAULT 0,
			longest_rally INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_matches_rally ON matches(longest_rally DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records a match. A missing MatchID is filled with a new UUID.
// Returns the row ID of the inserted record.
func (s *Store) SaveMatch(rec MatchRecord) (int64, error) {
	if rec.MatchID == "" {
		rec.MatchID = uuid.NewString()
	}
	if rec.Winner == "" {
		rec.Winner = "none"
	}
	if rec.EndReason == "" {
		rec.EndReason = EndQuit
	}

	res, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, host, player_score, ai_score, winner, end_reason, ticks, hits, longest_rally, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.MatchID,
		rec.Host,
		rec.PlayerScore,
		rec.AIScore,
		rec.Winner,
		rec.EndReason,
		rec.Ticks,
		rec.Hits,
		rec.LongestRally,
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const matchColumns = `id, match_id, host, player_score, ai_score, winner, end_reason,
		        ticks, hits, longest_rally, duration_ms, created_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (MatchRecord, error) {
	var rec MatchRecord
	var durationMS int64
	var createdAt any

	err := row.Scan(
		&rec.ID,
		&rec.MatchID,
		&rec.Host,
		&rec.PlayerScore,
		&rec.AIScore,
		&rec.Winner,
		&rec.EndReason,
		&rec.Ticks,
		&rec.Hits,
		&rec.LongestRally,
		&durationMS,
		&createdAt,
	)
	if err != nil {
		return rec, err
	}

	rec.Duration = time.Duration(durationMS) * time.Millisecond
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
}

// parseTime handles both driver-decoded and raw DATETIME values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// MatchByID retrieves a match by its UUID. Returns nil when not found.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	row := s.db.QueryRow(
		`SELECT `+matchColumns+`
		 FROM matches
		 WHERE match_id = ?`,
		matchID,
	)

	rec, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}

	return &rec, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchRecord
	for rows.Next() {
		rec, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Summary aggregates every recorded match.
func (s *Store) Summary() (*Summary, error) {
	sum := &Summary{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 'player' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 'cpu' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(player_score), 0),
		        COALESCE(SUM(ai_score), 0),
		        COALESCE(MAX(longest_rally), 0)
		 FROM matches`,
	).Scan(&sum.Matches, &sum.PlayerWins, &sum.AIWins, &sum.PlayerPoints, &sum.AIPoints, &sum.BestRally)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get summary: %w", err)
	}
	sum.Draws = sum.Matches - sum.PlayerWins - sum.AIWins

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM matches ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		sum.LastPlayed = parseTime(lastPlayed)
	}

	return sum, nil
}

// ClearMatches deletes all recorded matches.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}
