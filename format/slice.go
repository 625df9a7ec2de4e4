// Package format declares the formatting-pane schema: slices (single controls), groups,
// cards and the root model exchanged with the host.
//
// The schema is plain data. Cards own their slice lists; dynamic cards append to or
// rebuild those lists at refresh time, static cards never change shape after construction.
package format

import (
	"github.com/teranos/sankeyfmt/graph"
)

// Kind names the control a slice renders as in the host pane
type Kind string

const (
	KindToggleSwitch Kind = "ToggleSwitch"
	KindNumUpDown    Kind = "NumUpDown"
	KindItemDropdown Kind = "ItemDropdown"
	KindAutoDropdown Kind = "AutoDropdown"
	KindColorPicker  Kind = "ColorPicker"
	KindFontPicker   Kind = "FontPicker"
	KindReadOnlyText Kind = "ReadOnlyText"
	KindFontControl  Kind = "FontControl"
)

// Properties are shared by every slice kind.
// Name is the stable id the host persists values under; Selector is the owner reference of
// dynamically generated slices (nil for static ones).
type Properties struct {
	Name           string
	DisplayName    string
	DisplayNameKey string
	Description    string
	DescriptionKey string
	Selector       *graph.Selector
	Hidden         bool
}

// Props returns the slice's shared properties
func (p *Properties) Props() *Properties { return p }

// Visible reports the slice's own visibility flag
func (p *Properties) Visible() bool { return !p.Hidden }

// SetVisible sets the slice's own visibility flag
func (p *Properties) SetVisible(visible bool) { p.Hidden = !visible }

// Owner returns the entity a dynamically generated slice belongs to.
// Static slices and rule-based (wildcard) slices have no owner.
func (p *Properties) Owner() (graph.SelectionID, bool) {
	if p.Selector == nil || p.Selector.IsWildcard() || p.Selector.ID.IsZero() {
		return "", false
	}
	return p.Selector.ID, true
}

// Slice is a single configurable control
type Slice interface {
	Props() *Properties
	Kind() Kind
	// Current returns the slice value as exposed to the host
	Current() any
	// Assign applies a host edit, converting and validating the value for the slice kind
	Assign(value any) error
}

// Container is a slice made of other slices (the font control)
type Container interface {
	Slice
	Children() []Slice
}
