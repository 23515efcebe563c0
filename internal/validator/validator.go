package validator

import (
	"context"

	"svw.info/sudoku-solve/internal/domain"
)

// FastValidator reports cells that repeat a digit within any of the 27
// constraint groups. Blank cells never conflict.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	for gi := range domain.Groups {
		seen := 0
		for _, cc := range domain.Groups[gi] {
			val := b.Values[cc.Row][cc.Col]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if seen&bit != 0 {
				conf = append(conf, cc)
			}
			seen |= bit
		}
	}
	return len(conf) == 0, conf, nil
}
