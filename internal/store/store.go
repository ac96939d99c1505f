// Package store archives completed puzzles in Postgres. It has no notion
// of users, rooms, or solving state — a puzzle row exists once, written at
// generation time, and is read back by ID or listed for an operator console.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/crossgen/fillengine/pkg/output"
)

// Store is a Postgres-backed archive of generated puzzles.
type Store struct {
	db *sql.DB
}

// Open connects to postgresURL and configures the connection pool.
func Open(postgresURL string) (*Store, error) {
	db, err := sql.Open("postgres", postgresURL)
	if err != nil {
		return nil, fmt.Errorf("store: connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("store: ping postgres: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// InitSchema creates the puzzles table if it does not already exist.
func (s *Store) InitSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS puzzles (
			id VARCHAR(36) PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			author VARCHAR(255),
			difficulty VARCHAR(20) NOT NULL,
			theme VARCHAR(255),
			grid JSONB NOT NULL,
			entries_across JSONB NOT NULL,
			entries_down JSONB NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("store: init schema: %w", err)
	}
	return nil
}

// CreatePuzzle archives a generated puzzle.
func (s *Store) CreatePuzzle(p *output.PuzzleJSON) error {
	gridJSON, err := json.Marshal(p.Grid)
	if err != nil {
		return fmt.Errorf("store: marshal grid: %w", err)
	}
	acrossJSON, err := json.Marshal(p.Across)
	if err != nil {
		return fmt.Errorf("store: marshal across entries: %w", err)
	}
	downJSON, err := json.Marshal(p.Down)
	if err != nil {
		return fmt.Errorf("store: marshal down entries: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO puzzles (id, title, author, difficulty, theme, grid, entries_across, entries_down, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, p.ID, p.Title, p.Author, p.Difficulty, p.Theme, gridJSON, acrossJSON, downJSON, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("store: insert puzzle %s: %w", p.ID, err)
	}
	return nil
}

// GetPuzzle returns the puzzle archived under id, or nil if none exists.
func (s *Store) GetPuzzle(id string) (*output.PuzzleJSON, error) {
	p := &output.PuzzleJSON{}
	var gridJSON, acrossJSON, downJSON []byte

	err := s.db.QueryRow(`
		SELECT id, title, author, difficulty, theme, grid, entries_across, entries_down, created_at
		FROM puzzles WHERE id = $1
	`, id).Scan(&p.ID, &p.Title, &p.Author, &p.Difficulty, &p.Theme, &gridJSON, &acrossJSON, &downJSON, &p.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: get puzzle %s: %w", id, err)
	}

	if err := json.Unmarshal(gridJSON, &p.Grid); err != nil {
		return nil, fmt.Errorf("store: unmarshal grid: %w", err)
	}
	if err := json.Unmarshal(acrossJSON, &p.Across); err != nil {
		return nil, fmt.Errorf("store: unmarshal across entries: %w", err)
	}
	if err := json.Unmarshal(downJSON, &p.Down); err != nil {
		return nil, fmt.Errorf("store: unmarshal down entries: %w", err)
	}

	return p, nil
}

// ListPuzzles returns up to limit archived puzzles, most recent first,
// starting after offset rows.
func (s *Store) ListPuzzles(limit, offset int) ([]*output.PuzzleJSON, error) {
	rows, err := s.db.Query(`
		SELECT id, title, author, difficulty, theme, grid, entries_across, entries_down, created_at
		FROM puzzles ORDER BY created_at DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("store: list puzzles: %w", err)
	}
	defer rows.Close()

	var puzzles []*output.PuzzleJSON
	for rows.Next() {
		p := &output.PuzzleJSON{}
		var gridJSON, acrossJSON, downJSON []byte

		if err := rows.Scan(&p.ID, &p.Title, &p.Author, &p.Difficulty, &p.Theme, &gridJSON, &acrossJSON, &downJSON, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("store: scan puzzle row: %w", err)
		}
		if err := json.Unmarshal(gridJSON, &p.Grid); err != nil {
			return nil, fmt.Errorf("store: unmarshal grid: %w", err)
		}
		if err := json.Unmarshal(acrossJSON, &p.Across); err != nil {
			return nil, fmt.Errorf("store: unmarshal across entries: %w", err)
		}
		if err := json.Unmarshal(downJSON, &p.Down); err != nil {
			return nil, fmt.Errorf("store: unmarshal down entries: %w", err)
		}

		puzzles = append(puzzles, p)
	}

	return puzzles, rows.Err()
}
