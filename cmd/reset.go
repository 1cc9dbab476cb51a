package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// reset removes the whole store. Individual solves are never unmarked — the
// progress record is monotonic — so the only reset is deleting the substrate.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Println("This deletes all solved-puzzle records. Re-run with --force to confirm.")
			return nil
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		path, err := cfg.StoragePath()
		if err != nil {
			return fmt.Errorf("resolve storage path: %w", err)
		}

		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("remove %s: %w", path, err)
		}
		fmt.Println("Progress deleted:", path)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Actually delete the progress store")
}
