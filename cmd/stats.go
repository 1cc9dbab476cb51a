package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/tactix/internal/progress"
	"github.com/abhisek/tactix/internal/puzzle"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show solved-puzzle counts per collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		kv, err := openStorage(cfg)
		if err != nil {
			return err
		}
		defer kv.Close()

		store := progress.NewStore(kv)

		totalSolved := 0
		for _, f := range cfg.Puzzles.Files {
			repo := puzzle.NewFileRepository(f)
			solved := store.SolvedCount(ctx, f)
			totalSolved += solved

			if count, err := repo.Count(ctx); err == nil {
				fmt.Printf("%-40s %d/%d solved\n", f, solved, count)
			} else {
				fmt.Printf("%-40s %d solved (collection unavailable)\n", f, solved)
			}
		}
		fmt.Printf("total: %d solved\n", totalSolved)
		return nil
	},
}
