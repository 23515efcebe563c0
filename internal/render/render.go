// Package render formats boards for the CLI and the history store.
package render

import (
	"strings"

	"svw.info/sudoku-solve/internal/domain"
)

// Board renders nine lines of nine space-separated digits; blanks print as 0.
func Board(b *domain.Board) string {
	var sb strings.Builder
	sb.Grow(9 * 18)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('0' + b.Values[r][c])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Line renders the board as its 81-character row-major digit string.
func Line(b *domain.Board) string {
	var sb strings.Builder
	sb.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			sb.WriteByte('0' + b.Values[r][c])
		}
	}
	return sb.String()
}
