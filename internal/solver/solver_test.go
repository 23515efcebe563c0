package solver

import (
	"context"
	"testing"

	"svw.info/sudoku-solve/internal/domain"
	"svw.info/sudoku-solve/internal/parse"
	"svw.info/sudoku-solve/internal/ports"
	"svw.info/sudoku-solve/internal/validator"
)

// A classic, solvable sudoku with a unique solution.
const classic = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

// Worked example: unique solution whose first row is 7 4 8 6 1 3 9 2 5.
const example = "040610925051000746926000813080050071090100032013470598000000189162800357809001264"

var exampleSolution = [9][9]uint8{
	{7, 4, 8, 6, 1, 3, 9, 2, 5},
	{3, 5, 1, 9, 2, 8, 7, 4, 6},
	{9, 2, 6, 7, 4, 5, 8, 1, 3},
	{2, 8, 4, 3, 5, 9, 6, 7, 1},
	{5, 9, 7, 1, 8, 6, 4, 3, 2},
	{6, 1, 3, 4, 7, 2, 5, 9, 8},
	{4, 3, 5, 2, 6, 7, 1, 8, 9},
	{1, 6, 2, 8, 9, 4, 3, 5, 7},
	{8, 7, 9, 5, 3, 1, 2, 6, 4},
}

// The example solution with the unavoidable 3/5 rectangle at rows 0 and 2,
// columns 5 and 8, blanked out: exactly two completions exist.
const twoWays = "748610920" + "351928746" + "926740810" +
	"284359671" + "597186432" + "613472598" +
	"435267189" + "162894357" + "879531264"

// Row 0 pins every digit but 1 and column 0 pins the 1, so (0,0) has no
// candidates. No given repeats within any group.
const deadCell = "023456789" + "100000000" + "000000000" +
	"000000000" + "000000000" + "000000000" +
	"000000000" + "000000000" + "000000000"

const blank = "000000000000000000000000000000000000000000000000000000000000000000000000000000000"

func backends() []struct {
	name string
	s    ports.Solver
} {
	return []struct {
		name string
		s    ports.Solver
	}{
		{"backtrack", NewBacktrackingSolver()},
		{"dlx", NewDLXSolver()},
	}
}

func mustBoard(t *testing.T, text string) *domain.Board {
	t.Helper()
	b, err := parse.Grid(text)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return b
}

// checkSolution verifies that sol is complete, satisfies every constraint
// group, and agrees with the givens of in.
func checkSolution(t *testing.T, in, sol *domain.Board) {
	t.Helper()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if sol.Values[r][c] < 1 || sol.Values[r][c] > 9 {
				t.Fatalf("cell (%d,%d) not solved: %d", r, c, sol.Values[r][c])
			}
			if in.Values[r][c] != 0 && sol.Values[r][c] != in.Values[r][c] {
				t.Fatalf("given at (%d,%d) changed: %d -> %d", r, c, in.Values[r][c], sol.Values[r][c])
			}
		}
	}
	ok, conf, err := validator.New().Validate(context.Background(), sol)
	if err != nil || !ok {
		t.Fatalf("invalid solution: err=%v conflicts=%v", err, conf)
	}
}

func collectAll(t *testing.T, s ports.Solver, b *domain.Board, max int) ([]*domain.Board, ports.Stats) {
	t.Helper()
	var sols []*domain.Board
	st, err := s.Enumerate(context.Background(), b, func(sol *domain.Board) bool {
		sols = append(sols, sol)
		return max <= 0 || len(sols) < max
	})
	if err != nil {
		t.Fatalf("Enumerate failed: %v", err)
	}
	return sols, st
}
