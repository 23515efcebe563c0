package solver

import (
	"context"
	"math/bits"
	"time"

	"svw.info/sudoku-solve/internal/domain"
	"svw.info/sudoku-solve/internal/ports"
)

// Enumerate runs the depth-first search and hands every complete assignment
// to emit. The input board is never mutated; each emitted board is a fresh
// copy the sink may keep. Candidate state is restored exactly on every
// backtrack, including early-termination unwinds.
func (s *BacktrackingSolver) Enumerate(ctx context.Context, b *domain.Board, emit ports.Sink) (ports.Stats, error) {
	start := time.Now()
	st, err := newState(b)
	if err != nil {
		return ports.Stats{Duration: time.Since(start)}, err
	}

	found := 0
	var dfs func() bool // true requests the search to stop unwinding
	dfs = func() bool {
		if ctx.Err() != nil {
			return true
		}
		trail, ok := st.propagate(nil)
		stop := false
		switch {
		case !ok:
			// dead branch, fail locally
		case st.empty == 0:
			found++
			stop = !emit(&domain.Board{Values: st.grid, Fixed: b.Fixed})
		default:
			r, c := st.pick()
			for cand := st.candidates(r, c); cand != 0 && !stop; cand &= cand - 1 {
				v := uint8(bits.TrailingZeros16(cand))
				st.nodes++
				st.assign(r, c, v)
				stop = dfs()
				st.unassign(r, c, v)
			}
		}
		st.undo(trail)
		return stop
	}
	_ = dfs()

	return ports.Stats{Nodes: st.nodes, Solutions: found, Duration: time.Since(start)}, nil
}

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	return firstOf(ctx, b, s.Enumerate)
}

func (s *BacktrackingSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	return uniqueOf(ctx, b, s.Enumerate)
}
