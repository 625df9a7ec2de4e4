// Package am loads sankeyfmt configuration: formatting defaults applied to fresh settings
// models and logging options for the developer CLI.
package am

// Config represents the sankeyfmt configuration
type Config struct {
	Format FormatConfig `mapstructure:"format" json:"format" yaml:"format" toml:"format"`
	Log    LogConfig    `mapstructure:"log" json:"log" yaml:"log" toml:"log"`
}

// FormatConfig holds the initial values of a fresh formatting model
type FormatConfig struct {
	FontSize          float64 `mapstructure:"font_size" json:"font_size" yaml:"font_size" toml:"font_size" validate:"gte=8,lte=60"`
	LinkLabelFontSize float64 `mapstructure:"link_label_font_size" json:"link_label_font_size" yaml:"link_label_font_size" toml:"link_label_font_size" validate:"gte=8,lte=60"`
	FontFamily        string  `mapstructure:"font_family" json:"font_family" yaml:"font_family" toml:"font_family" validate:"required"`
	NodeWidth         float64 `mapstructure:"node_width" json:"node_width" yaml:"node_width" toml:"node_width" validate:"gte=10,lte=30"`
	FallbackLinkColor string  `mapstructure:"fallback_link_color" json:"fallback_link_color" yaml:"fallback_link_color" toml:"fallback_link_color" validate:"required,hexcolor"`
	ShowAllNodes      bool    `mapstructure:"show_all_nodes" json:"show_all_nodes" yaml:"show_all_nodes" toml:"show_all_nodes"`
	MatchNodeColors   bool    `mapstructure:"match_node_colors" json:"match_node_colors" yaml:"match_node_colors" toml:"match_node_colors"`
	IndividualColors  bool    `mapstructure:"individual_colors" json:"individual_colors" yaml:"individual_colors" toml:"individual_colors"`
	MatchTarget       string  `mapstructure:"match_target" json:"match_target" yaml:"match_target" toml:"match_target" validate:"oneof=source destination"`
}

// LogConfig configures the CLI logger
type LogConfig struct {
	JSON      bool `mapstructure:"json" json:"json" yaml:"json" toml:"json"`
	Verbosity int  `mapstructure:"verbosity" json:"verbosity" yaml:"verbosity" toml:"verbosity" validate:"gte=0,lte=4"`
}

// Config file names
const (
	ProjectConfigName = "sankeyfmt.toml"
	UserConfigDir     = ".sankeyfmt"
	UserConfigName    = "am.toml"
	EnvPrefix         = "SANKEYFMT"
)

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
