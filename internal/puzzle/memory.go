package puzzle

import "context"

// MemoryRepository serves puzzles from a slice. Used in tests and anywhere a
// collection is assembled programmatically.
type MemoryRepository struct {
	collection string
	puzzles    []Puzzle
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository creates a repository over the given puzzles, stamping
// each with the collection key and its slice index.
func NewMemoryRepository(collection string, puzzles []Puzzle) *MemoryRepository {
	stamped := make([]Puzzle, len(puzzles))
	for i, p := range puzzles {
		p.Collection = collection
		p.Index = i
		stamped[i] = p
	}
	return &MemoryRepository{collection: collection, puzzles: stamped}
}

func (r *MemoryRepository) Collection() string {
	return r.collection
}

func (r *MemoryRepository) Query(ctx context.Context, lower, upper int) ([]Puzzle, error) {
	var out []Puzzle
	for _, p := range r.puzzles {
		if p.Rating >= lower && p.Rating <= upper {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *MemoryRepository) ByIndex(ctx context.Context, index int) (Puzzle, error) {
	if index < 0 || index >= len(r.puzzles) {
		return Puzzle{}, ErrNotFound
	}
	return r.puzzles[index], nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	return len(r.puzzles), nil
}
