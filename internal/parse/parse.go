// Package parse turns puzzle text into a domain.Board.
package parse

import (
	"fmt"
	"unicode"

	"svw.info/sudoku-solve/internal/domain"
)

// Grid reads exactly 81 digit characters (0 = blank) in row-major order.
// Whitespace is layout only; any arrangement of the 81 digits is accepted.
// Anything else is domain.ErrMalformedInput.
func Grid(text string) (*domain.Board, error) {
	var b domain.Board
	n := 0
	for i, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", domain.ErrMalformedInput, r, i)
		}
		if n == 81 {
			return nil, fmt.Errorf("%w: more than 81 cells", domain.ErrMalformedInput)
		}
		v := uint8(r - '0')
		b.Values[n/9][n%9] = v
		b.Fixed[n/9][n%9] = v != 0
		n++
	}
	if n != 81 {
		return nil, fmt.Errorf("%w: got %d cells, want 81", domain.ErrMalformedInput, n)
	}
	return &b, nil
}
