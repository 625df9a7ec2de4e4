package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/sankeyfmt/am"
	"github.com/teranos/sankeyfmt/cmd/sankeyfmt/commands"
	"github.com/teranos/sankeyfmt/logger"
)

var rootCmd = &cobra.Command{
	Use:   "sankeyfmt",
	Short: "sankeyfmt - Sankey diagram formatting model inspector",
	Long: `sankeyfmt - Inspect the formatting-settings model of a Sankey diagram visual.

Loads a dataset of flows, builds the diagram, refreshes the formatting model and prints
the card tree the host pane would render together with the resolved link colors.

Available commands:
  render  - Refresh the formatting model against a dataset and print it
  am      - Manage sankeyfmt configuration ("I am")
  version - Show build information

Examples:
  sankeyfmt render flows.yaml                  # Default settings, match node colors
  sankeyfmt render flows.yaml --mode uniform   # One rule-based link color
  sankeyfmt am show --format json              # Show current configuration`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json")

		// Config problems surface through 'am validate'; logging falls back to flags
		if cfg, err := am.Load(); err == nil {
			jsonLogs = jsonLogs || cfg.Log.JSON
			if cfg.Log.Verbosity > verbosity {
				verbosity = cfg.Log.Verbosity
			}
		}

		if err := logger.InitializeWithVerbosity(jsonLogs, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.Debugw("Logger initialized",
			"verbosity", logger.LevelName(verbosity),
			"shows", logger.VerbosityDescription(verbosity))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v to -vvvv)")
	rootCmd.PersistentFlags().Bool("json", false, "Emit logs as JSON")

	rootCmd.AddCommand(commands.RenderCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
