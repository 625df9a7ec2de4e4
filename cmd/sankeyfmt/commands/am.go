package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/sankeyfmt/am"
	"github.com/teranos/sankeyfmt/display"
	"github.com/teranos/sankeyfmt/errors"
)

// AmCmd represents the am (configuration) command
var AmCmd = &cobra.Command{
	Use:   "am",
	Short: "Manage sankeyfmt configuration",
	Long: `am - Manage sankeyfmt configuration ("I am")

Display and manage the defaults applied to a fresh formatting model.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (SANKEYFMT_* prefix)
3. Project config (sankeyfmt.toml, searched upward from the working directory)
4. User config (~/.sankeyfmt/am.toml)
5. Default values

Examples:
  sankeyfmt am show                        # Show current configuration
  sankeyfmt am show --format json          # Show configuration in JSON format
  sankeyfmt am show --sources              # Show where every value came from
  sankeyfmt am get format.font_size        # Get specific config value
  sankeyfmt am set format.node_width 20    # Write to the user config
  sankeyfmt am validate                    # Validate current configuration`,
}

var amShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the current sankeyfmt configuration merged from all sources",
	RunE:  runAmShow,
}

var amGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long:  "Get a specific configuration value using dot notation (e.g., format.font_size, log.verbosity)",
	Args:  cobra.ExactArgs(1),
	RunE:  runAmGet,
}

var amSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value in the user config",
	Long: `Write a value to ~/.sankeyfmt/am.toml. The result is validated before it is written and
the previous file is kept as a rotating backup (.back1 to .back3).`,
	Args: cobra.ExactArgs(2),
	RunE: runAmSet,
}

var amValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	Long:  "Validate that the current sankeyfmt configuration is valid",
	RunE:  runAmValidate,
}

var (
	configFormat  string
	configSources bool
)

func init() {
	amShowCmd.Flags().StringVar(&configFormat, "format", display.FormatTOML, "Output format: toml, json, yaml")
	amShowCmd.Flags().BoolVar(&configSources, "sources", false, "List every setting with the source it came from")

	AmCmd.AddCommand(amShowCmd)
	AmCmd.AddCommand(amGetCmd)
	AmCmd.AddCommand(amSetCmd)
	AmCmd.AddCommand(amValidateCmd)
}

func runAmShow(cmd *cobra.Command, args []string) error {
	if configSources {
		introspection, err := am.GetConfigIntrospection()
		if err != nil {
			return err
		}
		return display.Output(cmd.OutOrStdout(), introspection, configFormat, "sankeyfmt configuration sources")
	}

	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	return display.Output(cmd.OutOrStdout(), cfg, configFormat, "sankeyfmt configuration")
}

func runAmGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	v := am.GetViper()
	if !v.IsSet(key) {
		return errors.Newf("configuration key %q not found", key)
	}

	fmt.Fprintln(cmd.OutOrStdout(), v.Get(key))
	return nil
}

func runAmSet(cmd *cobra.Command, args []string) error {
	if err := am.SetUserValue(args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s = %s written to %s\n", args[0], args[1], am.UserConfigPath())
	return nil
}

func runAmValidate(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	if err := cfg.Validate(); err != nil {
		if hints := errors.FlattenHints(err); hints != "" {
			return errors.Wrapf(err, "configuration validation failed (hint: %s)", hints)
		}
		return errors.Wrap(err, "configuration validation failed")
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration is valid")
	return nil
}
