package puzzle

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// csv column layout: PuzzleId,FEN,Moves,Rating,RatingDeviation,Popularity,
// NbPlays,Themes,GameUrl. An optional header row is skipped.
const minPuzzleFields = 7

// FileRepository loads a CSV puzzle collection lazily on first use and serves
// all queries from memory afterwards.
type FileRepository struct {
	path string

	once    sync.Once
	loadErr error
	puzzles []Puzzle
}

var _ Repository = (*FileRepository)(nil)

// NewFileRepository creates a repository for the collection file at path.
// The file is not touched until the first query.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Collection returns the source file path.
func (r *FileRepository) Collection() string {
	return r.path
}

// Query returns the puzzles rated within [lower, upper].
func (r *FileRepository) Query(ctx context.Context, lower, upper int) ([]Puzzle, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	var out []Puzzle
	for _, p := range r.puzzles {
		if p.Rating >= lower && p.Rating <= upper {
			out = append(out, p)
		}
	}
	return out, nil
}

// ByIndex returns the puzzle at position index in the file.
func (r *FileRepository) ByIndex(ctx context.Context, index int) (Puzzle, error) {
	if err := r.load(); err != nil {
		return Puzzle{}, err
	}
	if index < 0 || index >= len(r.puzzles) {
		return Puzzle{}, fmt.Errorf("%w: index %d in %s", ErrNotFound, index, r.path)
	}
	return r.puzzles[index], nil
}

// Count returns the number of puzzles in the file.
func (r *FileRepository) Count(ctx context.Context) (int, error) {
	if err := r.load(); err != nil {
		return 0, err
	}
	return len(r.puzzles), nil
}

func (r *FileRepository) load() error {
	r.once.Do(func() {
		f, err := os.Open(r.path)
		if err != nil {
			r.loadErr = fmt.Errorf("open collection: %w", err)
			return
		}
		defer f.Close()

		reader := csv.NewReader(f)
		reader.FieldsPerRecord = -1

		rows, err := reader.ReadAll()
		if err != nil {
			r.loadErr = fmt.Errorf("read collection %s: %w", r.path, err)
			return
		}

		index := 0
		for i, row := range rows {
			if i == 0 && isHeader(row) {
				continue
			}
			p, err := parseRow(row)
			if err != nil {
				r.loadErr = fmt.Errorf("collection %s row %d: %w", r.path, i+1, err)
				return
			}
			p.Collection = r.path
			p.Index = index
			index++
			r.puzzles = append(r.puzzles, p)
		}
	})
	return r.loadErr
}

func isHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(row[0], "PuzzleId")
}

func parseRow(row []string) (Puzzle, error) {
	if len(row) < minPuzzleFields {
		return Puzzle{}, fmt.Errorf("expected at least %d fields, got %d", minPuzzleFields, len(row))
	}

	rating, err := strconv.Atoi(row[3])
	if err != nil {
		return Puzzle{}, fmt.Errorf("rating: %w", err)
	}
	deviation, err := strconv.Atoi(row[4])
	if err != nil {
		return Puzzle{}, fmt.Errorf("rating deviation: %w", err)
	}
	popularity, err := strconv.Atoi(row[5])
	if err != nil {
		return Puzzle{}, fmt.Errorf("popularity: %w", err)
	}
	plays, err := strconv.Atoi(row[6])
	if err != nil {
		return Puzzle{}, fmt.Errorf("play count: %w", err)
	}

	p := Puzzle{
		ID:              row[0],
		FEN:             row[1],
		Moves:           strings.Fields(row[2]),
		Rating:          rating,
		RatingDeviation: deviation,
		Popularity:      popularity,
		Plays:           plays,
	}
	if len(row) > 7 && row[7] != "" {
		p.Themes = strings.Fields(row[7])
	}
	return p, nil
}
