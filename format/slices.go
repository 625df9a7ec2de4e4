package format

import (
	"github.com/teranos/sankeyfmt/errors"
)

// ToggleSwitch is a boolean control
type ToggleSwitch struct {
	Properties
	Value bool
}

func (s *ToggleSwitch) Kind() Kind   { return KindToggleSwitch }
func (s *ToggleSwitch) Current() any { return s.Value }

func (s *ToggleSwitch) Assign(value any) error {
	v, ok := value.(bool)
	if !ok {
		return errors.NewInvalidRequestError("slice %q wants bool, got %T", s.Name, value)
	}
	s.Value = v
	return nil
}

// NumUpDown is a bounded numeric control.
// The value always lies within the declared bounds; out-of-range values are clamped.
type NumUpDown struct {
	Properties
	value  float64
	bounds Bounds
}

// NewNumUpDown creates a bounded numeric slice, clamping value into bounds.
// Empty bounds are a declaration bug and panic.
func NewNumUpDown(props Properties, value float64, bounds Bounds) *NumUpDown {
	if err := bounds.validate(props.Name); err != nil {
		panic(err)
	}
	return &NumUpDown{
		Properties: props,
		value:      bounds.Clamp(value),
		bounds:     bounds,
	}
}

func (s *NumUpDown) Kind() Kind   { return KindNumUpDown }
func (s *NumUpDown) Current() any { return s.value }

// Value returns the current (always in-bounds) value
func (s *NumUpDown) Value() float64 { return s.value }

// Bounds returns the declared inclusive range
func (s *NumUpDown) Bounds() Bounds { return s.bounds }

// SetValue clamps v into bounds, stores it and returns the stored value
func (s *NumUpDown) SetValue(v float64) float64 {
	s.value = s.bounds.Clamp(v)
	return s.value
}

func (s *NumUpDown) Assign(value any) error {
	v, ok := toFloat(value)
	if !ok {
		return errors.NewInvalidRequestError("slice %q wants a number, got %T", s.Name, value)
	}
	s.SetValue(v)
	return nil
}

// Item is one option of a dropdown
type Item struct {
	Value          string `json:"value" yaml:"value" toml:"value"`
	DisplayName    string `json:"display_name,omitempty" yaml:"display_name,omitempty" toml:"display_name,omitempty"`
	DisplayNameKey string `json:"display_name_key,omitempty" yaml:"display_name_key,omitempty" toml:"display_name_key,omitempty"`
}

// ItemDropdown is a choice among a fixed list of items
type ItemDropdown struct {
	Properties
	Items []Item
	Value Item
}

func (s *ItemDropdown) Kind() Kind   { return KindItemDropdown }
func (s *ItemDropdown) Current() any { return s.Value.Value }

// Select sets the value to the item whose Value equals v
func (s *ItemDropdown) Select(v string) error {
	for _, item := range s.Items {
		if item.Value == v {
			s.Value = item
			return nil
		}
	}
	return errors.NewInvalidRequestError("slice %q has no item %q", s.Name, v)
}

func (s *ItemDropdown) Assign(value any) error {
	switch v := value.(type) {
	case string:
		return s.Select(v)
	case Item:
		return s.Select(v.Value)
	default:
		return errors.NewInvalidRequestError("slice %q wants an item value, got %T", s.Name, value)
	}
}

// AutoDropdown is an enumeration whose items the host fills in (display units)
type AutoDropdown struct {
	Properties
	Value float64
}

func (s *AutoDropdown) Kind() Kind   { return KindAutoDropdown }
func (s *AutoDropdown) Current() any { return s.Value }

func (s *AutoDropdown) Assign(value any) error {
	v, ok := toFloat(value)
	if !ok {
		return errors.NewInvalidRequestError("slice %q wants a number, got %T", s.Name, value)
	}
	s.Value = v
	return nil
}

// InstanceKind tells the host how a color control may be bound
type InstanceKind string

const (
	InstanceConstant       InstanceKind = "Constant"
	InstanceRule           InstanceKind = "Rule"
	InstanceConstantOrRule InstanceKind = "ConstantOrRule"
)

// ColorPicker is a color control. An empty Value means "no color chosen".
type ColorPicker struct {
	Properties
	Value        string
	InstanceKind InstanceKind
}

func (s *ColorPicker) Kind() Kind   { return KindColorPicker }
func (s *ColorPicker) Current() any { return s.Value }

func (s *ColorPicker) Assign(value any) error {
	v, ok := value.(string)
	if !ok {
		return errors.NewInvalidRequestError("slice %q wants a color string, got %T", s.Name, value)
	}
	s.Value = v
	return nil
}

// FontPicker selects a font family
type FontPicker struct {
	Properties
	Value string
}

func (s *FontPicker) Kind() Kind   { return KindFontPicker }
func (s *FontPicker) Current() any { return s.Value }

func (s *FontPicker) Assign(value any) error {
	v, ok := value.(string)
	if !ok {
		return errors.NewInvalidRequestError("slice %q wants a font family, got %T", s.Name, value)
	}
	s.Value = v
	return nil
}

// ReadOnlyText is a text value the user cannot edit. Hidden instances double as a
// host-managed persistence channel.
type ReadOnlyText struct {
	Properties
	Value string
}

func (s *ReadOnlyText) Kind() Kind   { return KindReadOnlyText }
func (s *ReadOnlyText) Current() any { return s.Value }

func (s *ReadOnlyText) Assign(value any) error {
	v, ok := value.(string)
	if !ok {
		return errors.NewInvalidRequestError("slice %q wants text, got %T", s.Name, value)
	}
	s.Value = v
	return nil
}

// FontControl bundles family, size and style toggles into one pane control
type FontControl struct {
	Properties
	FontFamily *FontPicker
	FontSize   *NumUpDown
	Bold       *ToggleSwitch
	Italic     *ToggleSwitch
	Underline  *ToggleSwitch
}

func (s *FontControl) Kind() Kind { return KindFontControl }

func (s *FontControl) Current() any {
	values := make(map[string]any)
	for _, child := range s.Children() {
		values[child.Props().Name] = child.Current()
	}
	return values
}

// Assign accepts a map of child name to value and applies every entry.
// Nothing is applied if any entry is invalid.
func (s *FontControl) Assign(value any) error {
	values, ok := value.(map[string]any)
	if !ok {
		return errors.NewInvalidRequestError("slice %q wants a map of font properties, got %T", s.Name, value)
	}

	children := make(map[string]Slice)
	for _, child := range s.Children() {
		children[child.Props().Name] = child
	}
	for name := range values {
		if _, exists := children[name]; !exists {
			return errors.NewNotFoundError("font control %q has no property %q", s.Name, name)
		}
	}

	// Validate against copies first so a bad entry leaves the control untouched
	for name, v := range values {
		if err := dryRunAssign(children[name], v); err != nil {
			return err
		}
	}
	for name, v := range values {
		if err := children[name].Assign(v); err != nil {
			return errors.Wrapf(err, "font control %q partially applied", s.Name)
		}
	}
	return nil
}

// Children returns the non-nil parts of the font control in display order
func (s *FontControl) Children() []Slice {
	var children []Slice
	if s.FontFamily != nil {
		children = append(children, s.FontFamily)
	}
	if s.FontSize != nil {
		children = append(children, s.FontSize)
	}
	if s.Bold != nil {
		children = append(children, s.Bold)
	}
	if s.Italic != nil {
		children = append(children, s.Italic)
	}
	if s.Underline != nil {
		children = append(children, s.Underline)
	}
	return children
}

// dryRunAssign checks that value would be accepted by slice without mutating it
func dryRunAssign(slice Slice, value any) error {
	switch s := slice.(type) {
	case *ToggleSwitch:
		trial := *s
		return trial.Assign(value)
	case *NumUpDown:
		trial := *s
		return trial.Assign(value)
	case *FontPicker:
		trial := *s
		return trial.Assign(value)
	default:
		return errors.AssertionFailedf("no dry-run assignment for slice %q of kind %s", slice.Props().Name, slice.Kind())
	}
}

type float64er interface {
	Float64() (float64, error)
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case float64er:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
