// Package puzzle defines the rated tactics exercises the trainer consumes and
// the repository contract for fetching them by rating band or index.
package puzzle

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no puzzle exists at the requested index.
var ErrNotFound = errors.New("puzzle: not found")

// Puzzle is one rated tactics exercise. Immutable once loaded; the engine
// only reads it.
type Puzzle struct {
	// ID is the upstream puzzle identifier.
	ID string

	// FEN describes the starting position.
	FEN string

	// Moves is the solution sequence in UCI notation, engine reply first.
	Moves []string

	// Rating is the puzzle difficulty on the same scale as player ratings.
	Rating int

	// RatingDeviation is the uncertainty of Rating.
	RatingDeviation int

	Popularity int
	Plays      int
	Themes     []string

	// Collection is the source file the puzzle was loaded from and Index its
	// position within that file. Together they identify the puzzle in the
	// progress store.
	Collection string
	Index      int
}

// Repository supplies puzzles from one collection. Implementations own file
// I/O and storage format; the selection engine only hands them rating bands.
type Repository interface {
	// Query returns the puzzles whose rating falls within [lower, upper].
	Query(ctx context.Context, lower, upper int) ([]Puzzle, error)

	// ByIndex returns the puzzle at the given position in the collection.
	ByIndex(ctx context.Context, index int) (Puzzle, error)

	// Count returns the number of puzzles in the collection.
	Count(ctx context.Context) (int, error)

	// Collection returns the collection key puzzles are recorded under.
	Collection() string
}
