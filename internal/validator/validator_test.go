package validator

import (
	"context"
	"testing"

	"svw.info/sudoku-solve/internal/domain"
)

func TestValidateCleanPartialBoard(t *testing.T) {
	var b domain.Board
	b.Values[0][0] = 5
	b.Values[0][8] = 3
	b.Values[8][0] = 3
	ok, conf, err := New().Validate(context.Background(), &b)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !ok || len(conf) != 0 {
		t.Fatalf("clean board reported conflicts: %v", conf)
	}
}

func TestValidateDetectsDuplicates(t *testing.T) {
	cases := []struct {
		name string
		set  func(b *domain.Board)
	}{
		{"row", func(b *domain.Board) { b.Values[3][1], b.Values[3][7] = 9, 9 }},
		{"col", func(b *domain.Board) { b.Values[0][4], b.Values[8][4] = 2, 2 }},
		{"box", func(b *domain.Board) { b.Values[0][0], b.Values[2][2] = 7, 7 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var b domain.Board
			tc.set(&b)
			ok, conf, err := New().Validate(context.Background(), &b)
			if err != nil {
				t.Fatalf("Validate failed: %v", err)
			}
			if ok || len(conf) == 0 {
				t.Fatalf("duplicate in %s not detected", tc.name)
			}
		})
	}
}
