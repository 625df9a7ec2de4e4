package sankey

import (
	"github.com/teranos/sankeyfmt/format"
)

// Font defaults and bounds shared by every text card
const (
	DefaultFontSize   = 12.0
	MinFontSize       = 8.0
	MaxFontSize       = 60.0
	DefaultFontFamily = "Arial, sans-serif"
	DefaultFontColor  = "#000000"
)

// FontBounds is the inclusive text size range
var FontBounds = format.Bounds{Min: MinFontSize, Max: MaxFontSize}

// FontGroup is the text formatting block (show toggle, family, size, style, color) that
// text cards compose. Each owning card gets its own instance; behavior is identical.
type FontGroup struct {
	Show       *format.ToggleSwitch
	FontFamily *format.FontPicker
	FontSize   *format.NumUpDown
	Bold       *format.ToggleSwitch
	Italic     *format.ToggleSwitch
	Underline  *format.ToggleSwitch
	Fill       *format.ColorPicker

	control *format.FontControl
	values  *format.Group
}

// NewFontGroup creates the font block for the card named cardName.
// The values group is named "<cardName>Values".
func NewFontGroup(cardName string, fontSize float64) *FontGroup {
	f := &FontGroup{
		Show: &format.ToggleSwitch{
			Properties: format.Properties{Name: "show", DisplayNameKey: "Visual_Show"},
			Value:      true,
		},
		FontFamily: &format.FontPicker{
			Properties: format.Properties{Name: "fontFamily"},
			Value:      DefaultFontFamily,
		},
		FontSize: format.NewNumUpDown(format.Properties{
			Name:           "fontSize",
			DisplayName:    "Text Size",
			DisplayNameKey: "Visual_TextSize",
		}, fontSize, FontBounds),
		Bold:      &format.ToggleSwitch{Properties: format.Properties{Name: "fontBold"}},
		Italic:    &format.ToggleSwitch{Properties: format.Properties{Name: "fontItalic"}},
		Underline: &format.ToggleSwitch{Properties: format.Properties{Name: "fontUnderline"}},
		Fill: &format.ColorPicker{
			Properties: format.Properties{Name: "fill", DisplayNameKey: "Visual_Color"},
			Value:      DefaultFontColor,
		},
	}

	f.control = &format.FontControl{
		Properties: format.Properties{Name: "font", DisplayName: "Font", DisplayNameKey: "Visual_Font"},
		FontFamily: f.FontFamily,
		FontSize:   f.FontSize,
		Bold:       f.Bold,
		Italic:     f.Italic,
		Underline:  f.Underline,
	}
	f.values = &format.Group{
		Name:           cardName + "Values",
		DisplayNameKey: "Visual_Values",
		Slices:         []format.Slice{f.control, f.Fill},
	}
	return f
}

// Values returns the group the owning card lists; cards may append their own slices to it
func (f *FontGroup) Values() *format.Group {
	return f.values
}

// Style summarizes the font block for the renderer
type Style struct {
	Show       bool    `json:"show" yaml:"show" toml:"show"`
	FontFamily string  `json:"font_family" yaml:"font_family" toml:"font_family"`
	FontSize   float64 `json:"font_size" yaml:"font_size" toml:"font_size"`
	Bold       bool    `json:"bold" yaml:"bold" toml:"bold"`
	Italic     bool    `json:"italic" yaml:"italic" toml:"italic"`
	Underline  bool    `json:"underline" yaml:"underline" toml:"underline"`
	Color      string  `json:"color" yaml:"color" toml:"color"`
}

// Style returns the current font settings
func (f *FontGroup) Style() Style {
	return Style{
		Show:       f.Show.Value,
		FontFamily: f.FontFamily.Value,
		FontSize:   f.FontSize.Value(),
		Bold:       f.Bold.Value,
		Italic:     f.Italic.Value,
		Underline:  f.Underline.Value,
		Color:      f.Fill.Value,
	}
}

// CSSWeight returns the CSS font-weight for the current bold setting
func (s Style) CSSWeight() string {
	if s.Bold {
		return "bold"
	}
	return "normal"
}

// CSSStyle returns the CSS font-style for the current italic setting
func (s Style) CSSStyle() string {
	if s.Italic {
		return "italic"
	}
	return "normal"
}

// CSSDecoration returns the CSS text-decoration for the current underline setting
func (s Style) CSSDecoration() string {
	if s.Underline {
		return "underline"
	}
	return "none"
}
