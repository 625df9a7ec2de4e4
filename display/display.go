// Package display renders command output as JSON, YAML or TOML.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/sankeyfmt/errors"
)

// Output formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Formats lists the supported output formats
var Formats = []string{FormatJSON, FormatYAML, FormatTOML}

// Marshal encodes v in the given format. JSON is indented for human consumption.
func Marshal(v interface{}, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return json.MarshalIndent(v, "", "  ")
	case FormatYAML:
		return yaml.Marshal(v)
	case FormatTOML:
		return toml.Marshal(v)
	default:
		return nil, errors.WithHint(
			errors.Newf("unsupported format: %s", format),
			fmt.Sprintf("supported: %s", strings.Join(Formats, ", ")),
		)
	}
}

// Output writes v to w in the given format, preceded by a comment header for the formats
// that have comments
func Output(w io.Writer, v interface{}, format, header string) error {
	data, err := Marshal(v, format)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", format)
	}
	if header != "" && strings.ToLower(format) != FormatJSON {
		fmt.Fprintf(w, "# %s\n", header)
	}
	w.Write(data)
	if len(data) > 0 && data[len(data)-1] != '\n' {
		fmt.Fprintln(w)
	}
	return nil
}

// ShouldOutputJSON determines if a command should output JSON based on its own or the
// global --json flag
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}

	if cmd.Flags().Lookup("json") != nil && cmd.Flags().Changed("json") {
		jsonFlag, _ := cmd.Flags().GetBool("json")
		return jsonFlag
	}

	if globalFlag, err := cmd.Root().PersistentFlags().GetBool("json"); err == nil {
		return globalFlag
	}
	return false
}
