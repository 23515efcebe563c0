package solver

import (
	"math/bits"

	"svw.info/sudoku-solve/internal/domain"
)

// step records one propagated assignment so it can be undone on backtrack.
type step struct {
	r, c int
	v    uint8
}

// propagate repeatedly fills forced cells: naked singles (a cell down to one
// candidate) and hidden singles (a digit with one remaining home in a group).
// Every assignment is appended to trail. It reports false on a contradiction
// (a cell or group digit with nowhere to go); the caller must undo the
// returned trail in both cases.
func (st *state) propagate(trail []step) ([]step, bool) {
	for changed := true; changed; {
		changed = false

		// naked singles
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				if st.grid[r][c] != 0 {
					continue
				}
				cand := st.candidates(r, c)
				if cand == 0 {
					return trail, false
				}
				if cand&(cand-1) == 0 {
					v := uint8(bits.TrailingZeros16(cand))
					st.assign(r, c, v)
					trail = append(trail, step{r, c, v})
					changed = true
				}
			}
		}

		// hidden singles, per constraint group
		for gi := range domain.Groups {
			grp := &domain.Groups[gi]
			var present uint16
			for _, cc := range grp {
				if v := st.grid[cc.Row][cc.Col]; v != 0 {
					present |= uint16(1) << v
				}
			}
			for v := uint8(1); v <= 9; v++ {
				bit := uint16(1) << v
				if present&bit != 0 {
					continue
				}
				homes, hr, hc := 0, 0, 0
				for _, cc := range grp {
					if st.grid[cc.Row][cc.Col] != 0 {
						continue
					}
					if st.candidates(cc.Row, cc.Col)&bit != 0 {
						homes++
						if homes > 1 {
							break
						}
						hr, hc = cc.Row, cc.Col
					}
				}
				if homes == 0 {
					return trail, false
				}
				if homes == 1 {
					st.assign(hr, hc, v)
					trail = append(trail, step{hr, hc, v})
					present |= bit
					changed = true
				}
			}
		}
	}
	return trail, true
}

// undo reverses a propagation trail, newest assignment first.
func (st *state) undo(trail []step) {
	for i := len(trail) - 1; i >= 0; i-- {
		s := trail[i]
		st.unassign(s.r, s.c, s.v)
	}
}
