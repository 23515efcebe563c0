package ports

import (
	"context"
	"time"

	"svw.info/sudoku-solve/internal/domain"
)

// Stats captures performance characteristics of a search.
type Stats struct {
	Nodes     int
	Solutions int
	Duration  time.Duration
}

// Sink receives each complete solution as the search finds it. Returning
// false stops the enumeration; no further solutions are reported.
type Sink func(*domain.Board) bool

// Solver enumerates the completions of a board.
type Solver interface {
	// Enumerate emits every solution to emit until the search space is
	// exhausted, emit returns false, or ctx is done.
	Enumerate(ctx context.Context, b *domain.Board, emit Sink) (Stats, error)
	// Solve returns the first solution found, or an error when none exists.
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
	// Unique reports whether the board has exactly one solution.
	Unique(ctx context.Context, b *domain.Board) (bool, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// History records completed solve runs.
type History interface {
	Record(ctx context.Context, rec *domain.SolveRecord) error
	List(ctx context.Context, limit int) ([]domain.SolveRecord, error)
	Close() error
}
