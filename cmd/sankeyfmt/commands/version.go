package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/sankeyfmt/display"
	"github.com/teranos/sankeyfmt/version"
)

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show sankeyfmt version information",
	Long:  `Display version, build time, commit hash, and platform information for the sankeyfmt binary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		out := cmd.OutOrStdout()

		if display.ShouldOutputJSON(cmd) {
			return display.Output(out, info, display.FormatJSON, "")
		}
		fmt.Fprintln(out, info.String())
		fmt.Fprintf(out, "Platform: %s\n", info.Platform)
		fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
		return nil
	},
}

func init() {
	VersionCmd.Flags().BoolP("json", "j", false, "Output version info as JSON")
}
