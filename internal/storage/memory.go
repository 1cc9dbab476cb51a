package storage

import (
	"context"
	"sync"
)

// MemoryKV is an in-process KV. It backs deterministic tests and the
// throwaway "memory" backend; nothing survives the process.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte

	// SetErr, when non-nil, is returned by every Set. Lets tests simulate a
	// full or unavailable substrate.
	SetErr error
}

// NewMemory creates an empty MemoryKV.
func NewMemory() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

// Get returns the value stored under key.
func (m *MemoryKV) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Set stores value under key.
func (m *MemoryKV) Set(ctx context.Context, key string, value []byte) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

// Close is a no-op.
func (m *MemoryKV) Close() error {
	return nil
}
