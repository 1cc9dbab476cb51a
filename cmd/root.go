package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tactix",
	Short: "Adaptive chess tactics trainer",
	Long:  "Tactix — terminal tactics trainer that adapts puzzle difficulty to your rating and tracks solved puzzles across sessions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (defaults plus TACTIX_* env vars apply without one)")
	rootCmd.PersistentFlags().String("data", "", "Data directory for the progress store (overrides the default location)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}
