// Package solver implements the search engines that enumerate sudoku
// solutions: an MRV backtracking engine with candidate propagation, and a
// Dancing Links exact-cover engine. Both emit solutions through a ports.Sink
// and honor early termination and context cancellation.
package solver

import (
	"context"
	"errors"

	"svw.info/sudoku-solve/internal/domain"
	"svw.info/sudoku-solve/internal/ports"
)

// ErrNoSolution is returned by Solve when the search space is exhausted
// without a solution. Enumerate never returns it: zero emissions is a normal
// terminal outcome there.
var ErrNoSolution = errors.New("no solution")

type enumerateFunc func(ctx context.Context, b *domain.Board, emit ports.Sink) (ports.Stats, error)

// firstOf adapts an Enumerate implementation to the first-solution call.
func firstOf(ctx context.Context, b *domain.Board, enum enumerateFunc) (*domain.Board, ports.Stats, error) {
	var out *domain.Board
	st, err := enum(ctx, b, func(sol *domain.Board) bool {
		out = sol
		return false
	})
	if err != nil {
		return nil, st, err
	}
	if out == nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, st, ctxErr
		}
		return nil, st, ErrNoSolution
	}
	return out, st, nil
}

// uniqueOf counts solutions up to 2 and reports whether exactly one exists.
func uniqueOf(ctx context.Context, b *domain.Board, enum enumerateFunc) (bool, ports.Stats, error) {
	n := 0
	st, err := enum(ctx, b, func(*domain.Board) bool {
		n++
		return n < 2
	})
	if err != nil {
		return false, st, err
	}
	return n == 1, st, nil
}
