// Package storage provides SQLite-based persistence for the high-score table
// and the history of finished games.
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

	"github.com/vovakirdan/shipshoot/internal/highscore"
)

// GameID tags history rows written by this binary.
const GameID = "shipshoot"

// Store manages the SQLite database connection.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// GameRecord is one finished game.
type GameRecord struct {
	ID        int64
	RunID     string
	GameID    string
	Name      string
	Score     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := highscore.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
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

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS highscores (
			rank INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			score INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_games_top ON games(game_id, score DESC);
		CREATE INDEX IF NOT EXISTS idx_games_recent ON games(created_at DESC);
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

// Load returns the persisted table, highest first.
func (s *Store) Load() ([]highscore.Entry, error) {
	rows, err := s.db.Query(`SELECT name, score FROM highscores ORDER BY rank`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query high scores: %w", err)
	}
	defer rows.Close()

	var entries []highscore.Entry
	for rows.Next() {
		var e highscore.Entry
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

// Save replaces the whole table in one transaction.
func (s *Store) Save(entries []highscore.Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(`DELETE FROM highscores`); err != nil {
		return fmt.Errorf("storage: cannot clear high scores: %w", err)
	}
	for i, e := range entries {
		if _, err := tx.Exec(
			`INSERT INTO highscores (rank, name, score) VALUES (?, ?, ?)`,
			i, e.Name, e.Score,
		); err != nil {
			return fmt.Errorf("storage: cannot save high score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit high scores: %w", err)
	}
	return nil
}

// RecordGame appends a finished game to the history under a fresh run id.
func (s *Store) RecordGame(name string, score int) error {
	_, err := s.SaveGame(GameRecord{Name: name, Score: score})
	return err
}

// SaveGame inserts a history row, filling in RunID, GameID and CreatedAt when empty.
// Returns the ID of the inserted record.
func (s *Store) SaveGame(rec GameRecord) (int64, error) {
	if rec.RunID == "" {
		rec.RunID = uuid.NewString()
	}
	if rec.GameID == "" {
		rec.GameID = GameID
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now()
	}

	result, err := s.db.Exec(
		`INSERT INTO games (run_id, game_id, name, score, created_at) VALUES (?, ?, ?, ?, ?)`,
		rec.RunID, rec.GameID, rec.Name, rec.Score, rec.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentGames retrieves the most recent games, newest first.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, game_id, name, score, created_at
		 FROM games
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var rec GameRecord
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.RunID, &rec.GameID, &rec.Name, &rec.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.CreatedAt = parseTime(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// ClearHistory deletes all recorded games. The high-score table is kept.
func (s *Store) ClearHistory() error {
	if _, err := s.db.Exec(`DELETE FROM games`); err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics over the history.
type GameStats struct {
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics over every recorded game.
func (s *Store) Stats() (*GameStats, error) {
	stats := &GameStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM games WHERE game_id = ?`,
		GameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM games WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		GameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

const timeLayout = "2006-01-02 15:04:05"

// parseTime handles both time.Time and string values from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

var (
	_ highscore.Store    = (*Store)(nil)
	_ highscore.Recorder = (*Store)(nil)
)
