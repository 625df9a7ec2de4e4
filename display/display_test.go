package display

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string  `json:"name" yaml:"name" toml:"name"`
	Width float64 `json:"width" yaml:"width" toml:"width"`
}

func TestMarshal(t *testing.T) {
	v := sample{Name: "nodes", Width: 10}

	tests := []struct {
		format string
		want   string
	}{
		{FormatJSON, "{\n  \"name\": \"nodes\",\n  \"width\": 10\n}"},
		{FormatYAML, "name: nodes\nwidth: 10\n"},
		{FormatTOML, "name = 'nodes'\nwidth = 10.0\n"},
		{"YAML", "name: nodes\nwidth: 10\n"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			data, err := Marshal(v, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}

	_, err := Marshal(v, "xml")
	assert.ErrorContains(t, err, "unsupported format: xml")
}

func TestOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Output(&buf, sample{Name: "a"}, FormatYAML, "sankeyfmt configuration"))
	assert.Equal(t, "# sankeyfmt configuration\nname: a\nwidth: 0\n", buf.String())

	buf.Reset()
	require.NoError(t, Output(&buf, sample{Name: "a"}, FormatJSON, "ignored for json"))
	assert.Equal(t, "{\n  \"name\": \"a\",\n  \"width\": 0\n}\n", buf.String())
}

func TestShouldOutputJSON(t *testing.T) {
	assert.False(t, ShouldOutputJSON(nil))

	root := &cobra.Command{Use: "root"}
	root.PersistentFlags().Bool("json", false, "")
	child := &cobra.Command{Use: "child", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(child)

	assert.False(t, ShouldOutputJSON(child))
	require.NoError(t, root.PersistentFlags().Set("json", "true"))
	assert.True(t, ShouldOutputJSON(child))
}
