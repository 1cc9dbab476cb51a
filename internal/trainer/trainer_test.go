package trainer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/abhisek/tactix/internal/adaptive"
	"github.com/abhisek/tactix/internal/progress"
	"github.com/abhisek/tactix/internal/puzzle"
	"github.com/abhisek/tactix/internal/rating"
	"github.com/abhisek/tactix/internal/storage"
)

func evenPuzzles(n, ratingVal int) []puzzle.Puzzle {
	puzzles := make([]puzzle.Puzzle, n)
	for i := range puzzles {
		puzzles[i] = puzzle.Puzzle{
			ID:     fmt.Sprintf("p%d", i),
			FEN:    "8/8/8/8/8/8/8/K1k5 w - - 0 1",
			Moves:  []string{"a1a2"},
			Rating: ratingVal,
		}
	}
	return puzzles
}

func newTestSession(t *testing.T, puzzles []puzzle.Puzzle) (*Session, *progress.Store) {
	t.Helper()
	store := progress.NewStore(storage.NewMemory())
	repo := puzzle.NewMemoryRepository("test.csv", puzzles)
	return NewSession(repo, store, DefaultConfig()), store
}

func TestSession_Defaults(t *testing.T) {
	s, _ := newTestSession(t, nil)

	if got := s.Rating(); got != 1500 {
		t.Errorf("Rating() = %d, want 1500", got)
	}
	if got := s.Window(); got != adaptive.Normal {
		t.Errorf("Window() = %+v, want Normal", got)
	}
	if got, want := s.Band(), (rating.Band{Lower: 1430, Upper: 1570}); got != want {
		t.Errorf("Band() = %+v, want %+v", got, want)
	}
	if s.ID() == uuid.Nil {
		t.Error("ID() is zero, want a generated UUID")
	}
}

func TestSession_NextStaysInBand(t *testing.T) {
	ctx := context.Background()
	pool := append(evenPuzzles(5, 1500), evenPuzzles(5, 2500)...)
	s, _ := newTestSession(t, pool)

	for range 20 {
		p, err := s.Next(ctx)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		band := s.Band()
		if p.Rating < band.Lower || p.Rating > band.Upper {
			t.Fatalf("Next returned rating %d outside band %+v", p.Rating, band)
		}
	}
}

func TestSession_NextNoPuzzles(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t, evenPuzzles(3, 3000))

	_, err := s.Next(ctx)
	if !errors.Is(err, ErrNoPuzzles) {
		t.Errorf("Next = %v, want ErrNoPuzzles", err)
	}
}

func TestSession_NextPrefersUnsolved(t *testing.T) {
	ctx := context.Background()
	s, store := newTestSession(t, evenPuzzles(3, 1500))

	// Mark all but index 1 solved.
	store.RecordSolved(ctx, "test.csv", 0)
	store.RecordSolved(ctx, "test.csv", 2)

	for range 10 {
		p, err := s.Next(ctx)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if p.Index != 1 {
			t.Fatalf("Next returned solved puzzle %d, want unsolved index 1", p.Index)
		}
	}
}

func TestSession_NextFallsBackToSolved(t *testing.T) {
	ctx := context.Background()
	s, store := newTestSession(t, evenPuzzles(2, 1500))

	store.RecordSolved(ctx, "test.csv", 0)
	store.RecordSolved(ctx, "test.csv", 1)

	if _, err := s.Next(ctx); err != nil {
		t.Errorf("Next with everything solved = %v, want a repeat puzzle", err)
	}
}

func TestSession_SubmitUpdatesRating(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t, nil)
	p := puzzle.Puzzle{Collection: "test.csv", Index: 0, Rating: 1500}

	if got := s.Submit(ctx, p, adaptive.Correct); got != 1520 {
		t.Errorf("Submit(correct) = %d, want 1520", got)
	}
	if got := s.Rating(); got != 1520 {
		t.Errorf("Rating() after win = %d, want 1520", got)
	}

	s2, _ := newTestSession(t, nil)
	if got := s2.Submit(ctx, p, adaptive.Incorrect); got != 1480 {
		t.Errorf("Submit(incorrect) = %d, want 1480", got)
	}
}

func TestSession_SubmitRecordsSolve(t *testing.T) {
	ctx := context.Background()
	s, store := newTestSession(t, nil)
	p := puzzle.Puzzle{Collection: "test.csv", Index: 4, Rating: 1500}

	s.Submit(ctx, p, adaptive.Correct)
	if !store.IsSolved(ctx, "test.csv", 4) {
		t.Error("correct attempt was not recorded solved")
	}

	s.Submit(ctx, puzzle.Puzzle{Collection: "test.csv", Index: 5, Rating: 1500}, adaptive.Incorrect)
	if store.IsSolved(ctx, "test.csv", 5) {
		t.Error("incorrect attempt was recorded solved")
	}

	if s.Attempts() != 2 || s.Solved() != 1 {
		t.Errorf("Attempts/Solved = %d/%d, want 2/1", s.Attempts(), s.Solved())
	}
}

func TestSession_LosingStreakEasesBand(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t, nil)
	p := puzzle.Puzzle{Collection: "test.csv", Index: 0, Rating: 1500}

	for range 3 {
		s.Submit(ctx, p, adaptive.Incorrect)
	}

	if got := s.Window(); got != adaptive.Eased {
		t.Errorf("Window() after 3 losses = %+v, want Eased", got)
	}
	// A win flips the controller straight back to the normal window.
	s.Submit(ctx, p, adaptive.Correct)
	if got := s.Window(); got != adaptive.Normal {
		t.Errorf("Window() after win = %+v, want Normal", got)
	}
}

func TestSession_HistoryWindowBounded(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultConfig()
	cfg.HistorySize = 3
	store := progress.NewStore(storage.NewMemory())
	s := NewSession(puzzle.NewMemoryRepository("test.csv", nil), store, cfg)
	p := puzzle.Puzzle{Collection: "test.csv", Index: 0, Rating: 1500}

	// An old correct outcome must scroll out of the bounded window.
	s.Submit(ctx, p, adaptive.Correct)
	for range 3 {
		s.Submit(ctx, p, adaptive.Incorrect)
	}

	if got := s.Window(); got != adaptive.Eased {
		t.Errorf("Window() = %+v, want Eased once the correct outcome left the window", got)
	}
}
