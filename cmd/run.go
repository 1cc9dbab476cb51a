package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/tactix/internal/app"
	"github.com/abhisek/tactix/internal/config"
	"github.com/abhisek/tactix/internal/progress"
	"github.com/abhisek/tactix/internal/puzzle"
	"github.com/abhisek/tactix/internal/storage"
	"github.com/abhisek/tactix/internal/trainer"
)

// loadConfig reads the --config flag and builds the layered configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if dataDir, _ := cmd.Flags().GetString("data"); dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg, nil
}

// openStorage resolves the substrate location and opens the configured
// backend.
func openStorage(cfg *config.Config) (storage.KV, error) {
	path, err := cfg.StoragePath()
	if err != nil {
		return nil, fmt.Errorf("resolve storage path: %w", err)
	}
	kv, err := storage.Open(cfg.Storage.Backend, path)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return kv, nil
}

// runApp wires storage, progress, puzzle collections, and a session, then
// launches the TUI. Training runs against the first configured collection;
// the progress screen covers them all.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	kv, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	if len(cfg.Puzzles.Files) == 0 {
		return fmt.Errorf("no puzzle collections configured")
	}

	repos := make([]puzzle.Repository, 0, len(cfg.Puzzles.Files))
	for _, f := range cfg.Puzzles.Files {
		repos = append(repos, puzzle.NewFileRepository(f))
	}

	store := progress.NewStore(kv)
	session := trainer.NewSession(repos[0], store, cfg.TrainerConfig())

	return app.Run(app.Options{
		Session:  session,
		Repos:    repos,
		Progress: store,
	})
}
