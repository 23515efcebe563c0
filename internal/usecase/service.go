package usecase

import (
	"context"
	"errors"

	"svw.info/sudoku-solve/internal/domain"
	"svw.info/sudoku-solve/internal/parse"
	"svw.info/sudoku-solve/internal/ports"
)

// Service wires the solver, validator, and optional history store behind one
// entry point for the CLI and HTTP adapters.
type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	History   ports.History // nil when history is disabled
}

func NewService(s ports.Solver, v ports.Validator, h ports.History) *Service {
	return &Service{Solver: s, Validator: v, History: h}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// SolveText parses puzzle text and collects up to max solutions (max <= 0
// collects all). The parsed puzzle board is returned alongside the solutions.
func (u *Service) SolveText(ctx context.Context, text string, max int) (*domain.Board, []*domain.Board, ports.Stats, error) {
	if u.Solver == nil {
		return nil, nil, ports.Stats{}, errNotConfigured
	}
	b, err := parse.Grid(text)
	if err != nil {
		return nil, nil, ports.Stats{}, err
	}
	var sols []*domain.Board
	st, err := u.Solver.Enumerate(ctx, b, func(sol *domain.Board) bool {
		sols = append(sols, sol)
		return max <= 0 || len(sols) < max
	})
	if err != nil {
		return b, nil, st, err
	}
	return b, sols, st, nil
}

func (u *Service) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, b)
}

func (u *Service) Enumerate(ctx context.Context, b *domain.Board, emit ports.Sink) (ports.Stats, error) {
	if u.Solver == nil {
		return ports.Stats{}, errNotConfigured
	}
	return u.Solver.Enumerate(ctx, b, emit)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

// History
func (u *Service) RecordSolve(ctx context.Context, rec *domain.SolveRecord) error {
	if u.History == nil {
		return errNotConfigured
	}
	return u.History.Record(ctx, rec)
}

func (u *Service) ListSolves(ctx context.Context, limit int) ([]domain.SolveRecord, error) {
	if u.History == nil {
		return nil, errNotConfigured
	}
	return u.History.List(ctx, limit)
}
