package history

import (
	"context"
	"path/filepath"
	"testing"

	"svw.info/sudoku-solve/internal/domain"
)

func TestRecordAndList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	recs := []domain.SolveRecord{
		{ID: "a", Puzzle: "000", Solver: "backtrack", Solutions: 1, Nodes: 42, DurMillis: 3, CreatedAt: 100},
		{ID: "b", Puzzle: "111", Solver: "dlx", Solutions: 0, Nodes: 7, DurMillis: 1, CreatedAt: 200},
	}
	for i := range recs {
		if err := s.Record(ctx, &recs[i]); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	got, err := s.List(ctx, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	// newest first
	if got[0] != recs[1] || got[1] != recs[0] {
		t.Fatalf("wrong order or fields: %+v", got)
	}
}

func TestRecordRejectsMissingID(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()
	if err := s.Record(context.Background(), &domain.SolveRecord{}); err == nil {
		t.Fatalf("expected error for missing ID")
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s1, err := Open(path)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	if err := s1.Record(context.Background(), &domain.SolveRecord{ID: "x", CreatedAt: 1}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	s1.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()
	got, err := s2.List(context.Background(), 10)
	if err != nil || len(got) != 1 {
		t.Fatalf("List after reopen: %v, %d records", err, len(got))
	}
}
