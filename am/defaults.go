package am

import (
	"fmt"

	"github.com/spf13/viper"
)

// Default values, mirrored by the sankey package constructors
const (
	DefaultFontSize          = 12.0
	DefaultLinkLabelFontSize = 9.0
	DefaultFontFamily        = "Arial, sans-serif"
	DefaultNodeWidth         = 10.0
	DefaultFallbackLinkColor = "#000000"
	DefaultMatchTarget       = "source"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Format defaults
	v.SetDefault("format.font_size", DefaultFontSize)
	v.SetDefault("format.link_label_font_size", DefaultLinkLabelFontSize)
	v.SetDefault("format.font_family", DefaultFontFamily)
	v.SetDefault("format.node_width", DefaultNodeWidth)
	v.SetDefault("format.fallback_link_color", DefaultFallbackLinkColor)
	v.SetDefault("format.show_all_nodes", false)
	v.SetDefault("format.match_node_colors", true) // links follow node colors out of the box
	v.SetDefault("format.individual_colors", false)
	v.SetDefault("format.match_target", DefaultMatchTarget)

	// Log defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
}

// BindEnvVars explicitly binds settings whose environment names differ from the dotted key
func BindEnvVars(v *viper.Viper) {
	v.BindEnv("log.json", EnvPrefix+"_LOG_JSON")
	v.BindEnv("log.verbosity", EnvPrefix+"_LOG_VERBOSITY", EnvPrefix+"_VERBOSITY")
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Format: {FontSize: %g, NodeWidth: %g, MatchTarget: %s}, Log: {JSON: %t, Verbosity: %d}}",
		c.Format.FontSize, c.Format.NodeWidth, c.Format.MatchTarget, c.Log.JSON, c.Log.Verbosity)
}
