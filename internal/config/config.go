// Package config loads layered configuration: built-in defaults, then an
// optional YAML file, then TACTIX_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/abhisek/tactix/internal/storage"
	"github.com/abhisek/tactix/internal/trainer"
)

// envPrefix is stripped from environment variables before mapping them to
// config paths: TACTIX_STORAGE_BACKEND -> storage.backend.
const envPrefix = "TACTIX_"

// Config is the full application configuration.
type Config struct {
	Storage StorageConfig `koanf:"storage"`
	Rating  RatingConfig  `koanf:"rating"`
	Puzzles PuzzlesConfig `koanf:"puzzles"`

	// DataDir overrides the default data directory. Set from the --data CLI
	// flag only, never from file or environment.
	DataDir string `koanf:"-"`
}

// StorageConfig selects and locates the persisted substrate.
type StorageConfig struct {
	// Backend is one of "sqlite", "badger", or "memory".
	Backend string `koanf:"backend"`

	// Path is the database file (sqlite) or directory (badger). Empty means
	// the default data dir.
	Path string `koanf:"path"`
}

// RatingConfig tunes the session rating parameters.
type RatingConfig struct {
	KFactor float64 `koanf:"kfactor"`
	Initial float64 `koanf:"initial"`
	History int     `koanf:"history"`
}

// PuzzlesConfig lists the puzzle collection files.
type PuzzlesConfig struct {
	Files []string `koanf:"files"`
}

func defaults() *Config {
	tc := trainer.DefaultConfig()
	return &Config{
		Storage: StorageConfig{Backend: storage.BackendSQLite},
		Rating: RatingConfig{
			KFactor: tc.KFactor,
			Initial: tc.InitialRating,
			History: tc.HistorySize,
		},
		Puzzles: PuzzlesConfig{Files: []string{"puzzles.csv"}},
	}
}

// Load builds the configuration. path may be empty, in which case only the
// defaults-plus-env layers apply (a missing explicit file is an error).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// TrainerConfig converts the rating section into session parameters.
func (c *Config) TrainerConfig() trainer.Config {
	return trainer.Config{
		KFactor:       c.Rating.KFactor,
		InitialRating: c.Rating.Initial,
		HistorySize:   c.Rating.History,
	}
}

// StoragePath resolves the substrate location. An explicit storage path wins,
// then the --data directory, then the default data dir.
func (c *Config) StoragePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, os.MkdirAll(filepath.Dir(c.Storage.Path), 0o755)
	}
	dir := c.DataDir
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	} else {
		var err error
		dir, err = storage.DefaultDataDir()
		if err != nil {
			return "", err
		}
	}
	switch c.Storage.Backend {
	case storage.BackendBadger:
		return filepath.Join(dir, "progress"), nil
	default:
		return filepath.Join(dir, "tactix.db"), nil
	}
}
