// Package storage provides the string-keyed persisted substrate the progress
// tracker builds on. The substrate is a narrow get/set capability so callers
// inject it rather than reach for a global, and tests can use the in-memory
// backend.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by Get when no value exists under the key.
var ErrNotFound = errors.New("storage: key not found")

// KV is a string-keyed byte store. Implementations are local to one runtime
// instance; no cross-process consistency is promised.
type KV interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Close releases the underlying resources.
	Close() error
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendMemory = "memory"
)

// Open creates a KV for the named backend rooted at path. The memory backend
// ignores path.
func Open(backend, path string) (KV, error) {
	switch backend {
	case BackendSQLite, "":
		return OpenSQLite(path)
	case BackendBadger:
		return OpenBadger(path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// DefaultDataDir resolves the data directory in priority order:
// 1. TACTIX_DATA environment variable
// 2. $XDG_DATA_HOME/tactix
// 3. ~/.local/share/tactix
func DefaultDataDir() (string, error) {
	if p := os.Getenv("TACTIX_DATA"); p != "" {
		return p, os.MkdirAll(p, 0o755)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "tactix")
	return p, os.MkdirAll(p, 0o755)
}
