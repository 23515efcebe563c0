package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudoku-solve/internal/domain"
	"svw.info/sudoku-solve/internal/ports"
)

// DLXSolver implements Algorithm X / Dancing Links for sudoku, exposed
// through the same enumeration contract as the backtracking engine.
// Exact-cover mapping: 324 columns (constraints), 729 rows (r,c,v candidates).
// Columns: 0..80   -> cell (r,c) is filled
//          81..161 -> row r has digit v
//          162..242-> col c has digit v
//          243..323-> box b has digit v, b = (r/3)*3 + (c/3)
type DLXSolver struct{}

func NewDLXSolver() *DLXSolver { return &DLXSolver{} }

const (
	dlxCols   = 4 * 81 // 324
	dlxRows   = 81 * 9 // 729 (r,c,v)
	colCell   = 0
	colRowNum = 81
	colColNum = 162
	colBoxNum = 243
)

type dlxNode struct {
	left, right, up, down *dlxNode
	col                   *dlxColumn
	rowIdx                int // 0..728 identifies (r,c,v)
}

type dlxColumn struct {
	dlxNode
	size   int
	active bool // constraint column currently uncovered
}

type dlx struct {
	cols      [dlxCols]*dlxColumn
	rowHead   [dlxRows]*dlxNode
	chosen    [dlxRows]*dlxNode
	nodes     int
	found     int
	activeCnt int
}

func newDLX() *dlx {
	d := &dlx{activeCnt: dlxCols}
	for i := 0; i < dlxCols; i++ {
		c := &dlxColumn{active: true}
		c.up = &c.dlxNode
		c.down = &c.dlxNode
		d.cols[i] = c
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for v := 1; v <= 9; v++ {
				row := rowIndex(r, c, v)
				var first, prev *dlxNode
				for _, colID := range rowColumns(r, c, v) {
					col := d.cols[colID]
					n := &dlxNode{col: col, rowIdx: row}
					// vertical insert at the bottom of the column
					n.down = &col.dlxNode
					n.up = col.dlxNode.up
					col.dlxNode.up.down = n
					col.dlxNode.up = n
					col.size++
					// horizontal ring over the 4 nodes of the row
					if first == nil {
						first = n
						n.left, n.right = n, n
					} else {
						n.left = prev
						n.right = prev.right
						prev.right.left = n
						prev.right = n
					}
					prev = n
				}
				d.rowHead[row] = first
			}
		}
	}
	return d
}

func rowIndex(r, c, v int) int { return (r*9+c)*9 + (v - 1) }

func rowColumns(r, c, v int) [4]int {
	return [4]int{
		colCell + r*9 + c,
		colRowNum + r*9 + (v - 1),
		colColNum + c*9 + (v - 1),
		colBoxNum + domain.BoxOf(r, c)*9 + (v - 1),
	}
}

func (d *dlx) cover(col *dlxColumn) {
	if col.active {
		col.active = false
		d.activeCnt--
	}
	for i := col.down; i != &col.dlxNode; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

func (d *dlx) uncover(col *dlxColumn) {
	for i := col.up; i != &col.dlxNode; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if !col.active {
		col.active = true
		d.activeCnt++
	}
}

// chooseColumn picks the active column with the fewest remaining rows.
func (d *dlx) chooseColumn() *dlxColumn {
	var best *dlxColumn
	for _, c := range d.cols {
		if !c.active {
			continue
		}
		if best == nil || c.size < best.size {
			best = c
			if best.size == 0 {
				break
			}
		}
	}
	return best
}

// applyGiven selects the (r,c,v) row at the top level by covering its columns.
func (d *dlx) applyGiven(r, c, v int) error {
	head := d.rowHead[rowIndex(r, c, v)]
	if head == nil {
		return errors.New("invalid row mapping")
	}
	for j := head; ; j = j.right {
		d.cover(j.col)
		if j.right == head {
			break
		}
	}
	return nil
}

// search explores the exact-cover space, emitting a board per solution.
// Returns true when the search should stop unwinding.
func (d *dlx) search(ctx context.Context, k int, b *domain.Board, emit ports.Sink) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}
	if d.activeCnt == 0 {
		out := &domain.Board{Values: b.Values, Fixed: b.Fixed}
		for i := 0; i < k; i++ {
			r, c, v := decodeRow(d.chosen[i].rowIdx)
			out.Values[r][c] = uint8(v)
		}
		d.found++
		return !emit(out)
	}

	c := d.chooseColumn()
	if c == nil || c.size == 0 {
		return false
	}
	d.cover(c)
	for r := c.down; r != &c.dlxNode; r = r.down {
		d.nodes++
		d.chosen[k] = r
		for j := r.right; j != r; j = j.right {
			if j.col.active {
				d.cover(j.col)
			}
		}
		stop := d.search(ctx, k+1, b, emit)
		// uncover this row's columns in reverse order before moving on
		for j := r.left; j != r; j = j.left {
			d.uncover(j.col)
		}
		if stop {
			d.uncover(c)
			return true
		}
	}
	d.uncover(c)
	return false
}

func decodeRow(row int) (r, c, v int) {
	cell := row / 9 // 0..80
	v = row%9 + 1
	r = cell / 9
	c = cell % 9
	return
}

func (s *DLXSolver) Enumerate(ctx context.Context, b *domain.Board, emit ports.Sink) (ports.Stats, error) {
	start := time.Now()
	// same eager given validation as the backtracking path
	if _, err := newState(b); err != nil {
		return ports.Stats{Duration: time.Since(start)}, err
	}
	d := newDLX()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := int(b.Values[r][c]); v > 0 {
				if err := d.applyGiven(r, c, v); err != nil {
					return ports.Stats{Duration: time.Since(start)}, err
				}
			}
		}
	}
	_ = d.search(ctx, 0, b, emit)
	return ports.Stats{Nodes: d.nodes, Solutions: d.found, Duration: time.Since(start)}, nil
}

func (s *DLXSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	return firstOf(ctx, b, s.Enumerate)
}

func (s *DLXSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	return uniqueOf(ctx, b, s.Enumerate)
}
