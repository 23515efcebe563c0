package solver

import (
	"sort"
	"testing"

	"svw.info/sudoku-solve/internal/domain"
	"svw.info/sudoku-solve/internal/render"
)

func solutionSet(sols []*domain.Board) []string {
	out := make([]string, 0, len(sols))
	for _, sol := range sols {
		out = append(out, render.Line(sol))
	}
	sort.Strings(out)
	return out
}

// Both engines must discover the same solution set for any puzzle,
// independent of branching order and propagation policy.
func TestBackendsAgreeOnSolutionSets(t *testing.T) {
	cases := []struct {
		name   string
		puzzle string
	}{
		{"classic", classic},
		{"example", example},
		{"twoWays", twoWays},
		{"deadCell", deadCell},
	}
	bt := NewBacktrackingSolver()
	dl := NewDLXSolver()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := mustBoard(t, tc.puzzle)
			a, _ := collectAll(t, bt, in, 0)
			b, _ := collectAll(t, dl, in, 0)
			as, bs := solutionSet(a), solutionSet(b)
			if len(as) != len(bs) {
				t.Fatalf("backtrack found %d, dlx found %d", len(as), len(bs))
			}
			for i := range as {
				if as[i] != bs[i] {
					t.Fatalf("solution sets differ at %d:\nbacktrack %s\ndlx       %s", i, as[i], bs[i])
				}
			}
		})
	}
}
