// Package progress durably tracks which puzzles have been solved, keyed by
// collection file and puzzle index. Records are monotonic: once a pair is
// marked solved there is no unsolve operation. All storage failures degrade
// to "no data" or "write skipped" — nothing here ever surfaces an error.
package progress

import (
	"context"
	"sort"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/abhisek/tactix/internal/storage"
)

// Storage keys. The store was renamed historically; reads fall back to the
// legacy key and every write lands on both, so older builds reading only the
// legacy key still observe updates.
const (
	storeKey       = "tactix/progress"
	legacyStoreKey = "solvedPuzzles"
)

// Record maps a collection key to the set of solved indices, indices encoded
// as decimal text with a boolean presence marker.
type Record map[string]map[string]bool

// Store persists solved-puzzle identities on an injected KV substrate.
type Store struct {
	kv       storage.KV
	notifier *Notifier
}

// NewStore creates a Store on top of kv.
func NewStore(kv storage.KV) *Store {
	return &Store{kv: kv, notifier: NewNotifier()}
}

// Notifier returns the change notifier for this store.
func (s *Store) Notifier() *Notifier {
	return s.notifier
}

// read loads the current record: current key first, then the legacy key.
// Missing keys, read errors, and mis-shaped content all yield an empty record.
func (s *Store) read(ctx context.Context) Record {
	for _, key := range [2]string{storeKey, legacyStoreKey} {
		raw, err := s.kv.Get(ctx, key)
		if err != nil {
			continue
		}
		rec, err := decodeRecord(raw)
		if err != nil {
			continue
		}
		return rec
	}
	return Record{}
}

// RecordSolved marks (collection, index) solved. Empty collections and
// negative indices are ignored. Re-recording an already-solved pair is a
// no-op: no write, no signal. Otherwise the full record is written to both
// storage keys and the change signal fires exactly once. Write failures are
// swallowed and suppress the signal.
func (s *Store) RecordSolved(ctx context.Context, collection string, index int) {
	if collection == "" || index < 0 {
		return
	}

	rec := s.read(ctx)
	idx := strconv.Itoa(index)
	if rec[collection][idx] {
		return
	}

	if rec[collection] == nil {
		rec[collection] = make(map[string]bool)
	}
	rec[collection][idx] = true

	data, err := json.Marshal(rec)
	if err != nil {
		return
	}
	if err := s.kv.Set(ctx, storeKey, data); err != nil {
		return
	}
	if err := s.kv.Set(ctx, legacyStoreKey, data); err != nil {
		return
	}

	s.notifier.broadcast(SignalSolvedChanged)
}

// IsSolved reports whether (collection, index) has been recorded solved.
func (s *Store) IsSolved(ctx context.Context, collection string, index int) bool {
	return s.read(ctx)[collection][strconv.Itoa(index)]
}

// SolvedCount returns the number of distinct solved indices for collection.
// Entries stored with a false marker do not count.
func (s *Store) SolvedCount(ctx context.Context, collection string) int {
	count := 0
	for _, solved := range s.read(ctx)[collection] {
		if solved {
			count++
		}
	}
	return count
}

// SolvedIndexes returns the solved indices for collection in ascending order.
// Stored keys that do not parse as integers are discarded.
func (s *Store) SolvedIndexes(ctx context.Context, collection string) []int {
	marked := s.read(ctx)[collection]
	indexes := make([]int, 0, len(marked))
	for key, solved := range marked {
		if !solved {
			continue
		}
		n, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		indexes = append(indexes, n)
	}
	sort.Ints(indexes)
	return indexes
}
