package solver

import (
	"fmt"
	"math/bits"

	"svw.info/sudoku-solve/internal/domain"
)

// allDigits has bits 1..9 set; bit v stands for digit v.
const allDigits = 0x3FE

// BacktrackingSolver is a depth-first engine that branches on the empty cell
// with the fewest remaining candidates and propagates forced cells between
// branches. Candidate sets are derived from per-row/col/box bitmasks, so
// undoing an assignment restores them exactly.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// state is the mutable search state of a single Enumerate call.
type state struct {
	grid  [9][9]uint8
	rows  [9]uint16 // digits already used per row
	cols  [9]uint16
	boxes [9]uint16
	empty int
	nodes int
}

// newState loads the board into masks, rejecting out-of-range values and
// duplicated givens before any search runs.
func newState(b *domain.Board) (*state, error) {
	st := &state{grid: b.Values, empty: 81}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := b.Values[r][c]
			if v == 0 {
				continue
			}
			if v > 9 {
				return nil, fmt.Errorf("%w: cell (%d,%d) holds %d", domain.ErrMalformedInput, r, c, v)
			}
			bit := uint16(1) << v
			bx := domain.BoxOf(r, c)
			if st.rows[r]&bit != 0 || st.cols[c]&bit != 0 || st.boxes[bx]&bit != 0 {
				return nil, fmt.Errorf("%w: %d repeats at row %d col %d", domain.ErrContradictoryGivens, v, r, c)
			}
			st.rows[r] |= bit
			st.cols[c] |= bit
			st.boxes[bx] |= bit
			st.empty--
		}
	}
	return st, nil
}

// candidates returns the bitmask of digits still legal at (r,c).
func (st *state) candidates(r, c int) uint16 {
	return ^(st.rows[r] | st.cols[c] | st.boxes[domain.BoxOf(r, c)]) & allDigits
}

func (st *state) assign(r, c int, v uint8) {
	bit := uint16(1) << v
	st.grid[r][c] = v
	st.rows[r] |= bit
	st.cols[c] |= bit
	st.boxes[domain.BoxOf(r, c)] |= bit
	st.empty--
}

func (st *state) unassign(r, c int, v uint8) {
	bit := uint16(1) << v
	st.grid[r][c] = 0
	st.rows[r] &^= bit
	st.cols[c] &^= bit
	st.boxes[domain.BoxOf(r, c)] &^= bit
	st.empty++
}

// pick selects the empty cell with the fewest candidates, row-major on ties.
// Only called when at least one cell is empty.
func (st *state) pick() (pr, pc int) {
	best := 10
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if st.grid[r][c] != 0 {
				continue
			}
			n := bits.OnesCount16(st.candidates(r, c))
			if n < best {
				pr, pc, best = r, c, n
				if best <= 1 {
					return
				}
			}
		}
	}
	return
}
