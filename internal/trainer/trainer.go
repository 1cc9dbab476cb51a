// Package trainer ties the selection engine together: it asks the adaptive
// controller for a rating band, pulls a puzzle from the repository, updates
// the player rating after each attempt, and records solves in the progress
// store.
package trainer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/abhisek/tactix/internal/adaptive"
	"github.com/abhisek/tactix/internal/progress"
	"github.com/abhisek/tactix/internal/puzzle"
	"github.com/abhisek/tactix/internal/rating"
)

// ErrNoPuzzles is returned when the collection has no puzzle inside the
// current rating band.
var ErrNoPuzzles = errors.New("trainer: no puzzles in rating band")

// Config holds the tunable session parameters.
type Config struct {
	// KFactor is the rating volatility per attempt.
	KFactor float64

	// InitialRating seeds the session skill estimate.
	InitialRating float64

	// HistorySize bounds the recent-outcomes window the adaptive controller
	// reads.
	HistorySize int
}

// DefaultConfig returns the standard session parameters.
func DefaultConfig() Config {
	return Config{
		KFactor:       rating.DefaultKFactor,
		InitialRating: 1500,
		HistorySize:   10,
	}
}

// Session is one training run against a single collection. The skill rating
// lives here for the lifetime of the session; only solved identities are
// persisted.
type Session struct {
	id       uuid.UUID
	cfg      Config
	repo     puzzle.Repository
	progress *progress.Store

	playerRating float64
	recent       []adaptive.Outcome
	attempts     int
	solved       int
}

// NewSession creates a session over repo, recording solves into store.
func NewSession(repo puzzle.Repository, store *progress.Store, cfg Config) *Session {
	if cfg.KFactor == 0 {
		cfg.KFactor = rating.DefaultKFactor
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = DefaultConfig().HistorySize
	}
	if cfg.InitialRating == 0 {
		cfg.InitialRating = DefaultConfig().InitialRating
	}
	return &Session{
		id:           uuid.New(),
		cfg:          cfg,
		repo:         repo,
		progress:     store,
		playerRating: cfg.InitialRating,
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Rating returns the current skill estimate, rounded for display.
func (s *Session) Rating() int {
	return int(math.Round(s.playerRating))
}

// Band returns the puzzle-rating band the next pick will come from.
func (s *Session) Band() rating.Band {
	return adaptive.SelectBand(s.playerRating, s.recent)
}

// Window returns the current probability window (normal or eased).
func (s *Session) Window() adaptive.Window {
	return adaptive.SelectWindow(s.recent)
}

// Attempts returns the number of submitted attempts this session.
func (s *Session) Attempts() int {
	return s.attempts
}

// Solved returns the number of correct attempts this session.
func (s *Session) Solved() int {
	return s.solved
}

// Next picks the next puzzle: puzzles inside the adaptive band, unsolved ones
// preferred, chosen uniformly at random.
func (s *Session) Next(ctx context.Context) (puzzle.Puzzle, error) {
	band := s.Band()
	candidates, err := s.repo.Query(ctx, band.Lower, band.Upper)
	if err != nil {
		return puzzle.Puzzle{}, fmt.Errorf("query band [%d, %d]: %w", band.Lower, band.Upper, err)
	}
	if len(candidates) == 0 {
		return puzzle.Puzzle{}, ErrNoPuzzles
	}

	var fresh []puzzle.Puzzle
	for _, p := range candidates {
		if !s.progress.IsSolved(ctx, p.Collection, p.Index) {
			fresh = append(fresh, p)
		}
	}
	if len(fresh) > 0 {
		candidates = fresh
	}

	return candidates[rand.IntN(len(candidates))], nil
}

// Submit records one attempt: the outcome joins the recent window, the skill
// rating moves by the Elo rule, and a correct attempt is persisted as solved.
// Returns the new display rating.
func (s *Session) Submit(ctx context.Context, p puzzle.Puzzle, outcome adaptive.Outcome) int {
	s.recent = append(s.recent, outcome)
	if len(s.recent) > s.cfg.HistorySize {
		s.recent = s.recent[len(s.recent)-s.cfg.HistorySize:]
	}

	s.attempts++
	newRating := rating.UpdateRating(s.playerRating, float64(p.Rating), outcome.Solved(), s.cfg.KFactor)
	s.playerRating = float64(newRating)

	if outcome.Solved() {
		s.solved++
		s.progress.RecordSolved(ctx, p.Collection, p.Index)
	}

	return newRating
}
