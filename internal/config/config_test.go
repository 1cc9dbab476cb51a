package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, 40.0, cfg.Rating.KFactor)
	assert.Equal(t, 1500.0, cfg.Rating.Initial)
	assert.Equal(t, 10, cfg.Rating.History)
	assert.Equal(t, []string{"puzzles.csv"}, cfg.Puzzles.Files)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
storage:
  backend: badger
rating:
  kfactor: 24
puzzles:
  files:
    - openings.csv
    - endgames.csv
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "badger", cfg.Storage.Backend)
	assert.Equal(t, 24.0, cfg.Rating.KFactor)
	assert.Equal(t, 1500.0, cfg.Rating.Initial, "unset keys keep defaults")
	assert.Equal(t, []string{"openings.csv", "endgames.csv"}, cfg.Puzzles.Files)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: badger\n"), 0o644))

	t.Setenv("TACTIX_STORAGE_BACKEND", "memory")
	t.Setenv("TACTIX_RATING_HISTORY", "5")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, 5, cfg.Rating.History)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestStoragePath_ResolutionOrder(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	dataDir := t.TempDir()
	cfg.DataDir = dataDir
	path, err := cfg.StoragePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "tactix.db"), path)

	// An explicit storage path wins over the data dir.
	explicit := filepath.Join(t.TempDir(), "custom.db")
	cfg.Storage.Path = explicit
	path, err = cfg.StoragePath()
	require.NoError(t, err)
	assert.Equal(t, explicit, path)
}

func TestTrainerConfig(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	tc := cfg.TrainerConfig()
	assert.Equal(t, 40.0, tc.KFactor)
	assert.Equal(t, 1500.0, tc.InitialRating)
	assert.Equal(t, 10, tc.HistorySize)
}
