// Package history provides SQLite-backed logging of completed solve runs.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"svw.info/sudoku-solve/internal/domain"
)

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the history database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS solves (
		id TEXT PRIMARY KEY,
		puzzle TEXT NOT NULL,
		solver TEXT NOT NULL,
		solutions INTEGER NOT NULL,
		nodes INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_solves_created ON solves(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Record(ctx context.Context, rec *domain.SolveRecord) error {
	if rec == nil || rec.ID == "" {
		return errors.New("invalid solve record: missing ID")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO solves (id, puzzle, solver, solutions, nodes, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Puzzle, rec.Solver, rec.Solutions, rec.Nodes, rec.DurMillis, rec.CreatedAt)
	return err
}

func (s *Store) List(ctx context.Context, limit int) ([]domain.SolveRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, puzzle, solver, solutions, nodes, duration_ms, created_at
		 FROM solves ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SolveRecord
	for rows.Next() {
		var rec domain.SolveRecord
		if err := rows.Scan(&rec.ID, &rec.Puzzle, &rec.Solver, &rec.Solutions,
			&rec.Nodes, &rec.DurMillis, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *Store) Close() error { return s.db.Close() }
