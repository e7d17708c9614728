// Package storage provides SQLite-based persistence for best move counts
// and the solve log.
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

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// BestEntry is the best move count recorded for one level.
type BestEntry struct {
	GameID    string
	Level     int
	Moves     int
	UpdatedAt time.Time
}

// SolveEntry is a single completed level.
type SolveEntry struct {
	ID        string
	GameID    string
	Level     int
	Moves     int
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID       string
	Solves       int
	LevelsSolved int
	TotalMoves   int64
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
		CREATE TABLE IF NOT EXISTS best_moves (
			game_id TEXT NOT NULL,
			level INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (game_id, level)
		);

		CREATE TABLE IF NOT EXISTS solves (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			level INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_game_id ON solves(game_id);
		CREATE INDEX IF NOT EXISTS idx_solves_recent ON solves(game_id, created_at DESC);
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

// Best returns the best move count for a level. Returns 0 if unsolved.
func (s *Store) Best(gameID string, level int) (int, error) {
	var moves int
	err := s.db.QueryRow(
		"SELECT moves FROM best_moves WHERE game_id = ? AND level = ?",
		gameID, level,
	).Scan(&moves)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best: %w", err)
	}
	return moves, nil
}

// SetBest stores moves for a level unless a lower or equal count exists.
// Reports whether the stored best changed.
func (s *Store) SetBest(gameID string, level, moves int) (bool, error) {
	if moves <= 0 {
		return false, nil
	}

	result, err := s.db.Exec(
		`INSERT INTO best_moves (game_id, level, moves, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (game_id, level) DO UPDATE
		 SET moves = excluded.moves, updated_at = excluded.updated_at
		 WHERE excluded.moves < best_moves.moves`,
		gameID, level, moves,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save best: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	return n > 0, nil
}

// AllBests returns the best move counts of a game ordered by level.
func (s *Store) AllBests(gameID string) ([]BestEntry, error) {
	rows, err := s.db.Query(
		`SELECT game_id, level, moves, updated_at
		 FROM best_moves
		 WHERE game_id = ?
		 ORDER BY level`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query bests: %w", err)
	}
	defer rows.Close()

	var entries []BestEntry
	for rows.Next() {
		var e BestEntry
		var updatedAt any
		if err := rows.Scan(&e.GameID, &e.Level, &e.Moves, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearBests deletes the best move counts and solve log of a game.
func (s *Store) ClearBests(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM best_moves WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear bests: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM solves WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// RecordSolve appends a completed level to the solve log.
// Returns the ID of the inserted record.
func (s *Store) RecordSolve(gameID string, level, moves int) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO solves (id, game_id, level, moves) VALUES (?, ?, ?, ?)",
		id, gameID, level, moves,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot record solve: %w", err)
	}
	return id, nil
}

// RecentSolves returns the latest solves of a game, newest first.
func (s *Store) RecentSolves(gameID string, limit int) ([]SolveEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, level, moves, created_at
		 FROM solves
		 WHERE game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var entries []SolveEntry
	for rows.Next() {
		var e SolveEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Level, &e.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT level), COALESCE(SUM(moves), 0), MAX(created_at)
		 FROM solves WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Solves, &stats.LevelsSolved, &stats.TotalMoves, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
