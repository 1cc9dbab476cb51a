package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kvContract exercises the behavior every backend must share.
func kvContract(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	_, err := kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Set(ctx, "a", []byte("one")))
	got, err := kv.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), got)

	// Overwrite replaces the value.
	require.NoError(t, kv.Set(ctx, "a", []byte("two")))
	got, err = kv.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), got)

	// Empty value is a value, not absence.
	require.NoError(t, kv.Set(ctx, "empty", []byte{}))
	got, err = kv.Get(ctx, "empty")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryKV(t *testing.T) {
	kvContract(t, NewMemory())
}

func TestSQLiteKV(t *testing.T) {
	kv, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	defer kv.Close()

	kvContract(t, kv)
}

func TestSQLiteKV_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")

	kv, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "k", []byte("v")))
	require.NoError(t, kv.Close())

	kv, err = OpenSQLite(path)
	require.NoError(t, err)
	defer kv.Close()

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestBadgerKV(t *testing.T) {
	kv, err := OpenBadger(t.TempDir())
	require.NoError(t, err)
	defer kv.Close()

	kvContract(t, kv)
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open("bolt", "")
	assert.Error(t, err)
}

func TestOpen_DefaultsToSQLite(t *testing.T) {
	kv, err := Open("", filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	defer kv.Close()

	_, ok := kv.(*SQLiteKV)
	assert.True(t, ok)
}
