package format

import (
	"github.com/teranos/sankeyfmt/graph"
)

// Descriptor is the outbound tree handed to the host pane renderer
type Descriptor struct {
	Cards []CardDescriptor `json:"cards" yaml:"cards" toml:"cards"`
}

// CardDescriptor describes one top-level card
type CardDescriptor struct {
	Name           string            `json:"name" yaml:"name" toml:"name"`
	DisplayName    string            `json:"display_name,omitempty" yaml:"display_name,omitempty" toml:"display_name,omitempty"`
	DisplayNameKey string            `json:"display_name_key,omitempty" yaml:"display_name_key,omitempty" toml:"display_name_key,omitempty"`
	DescriptionKey string            `json:"description_key,omitempty" yaml:"description_key,omitempty" toml:"description_key,omitempty"`
	Visible        bool              `json:"visible" yaml:"visible" toml:"visible"`
	TopLevel       *SliceDescriptor  `json:"top_level,omitempty" yaml:"top_level,omitempty" toml:"top_level,omitempty"`
	Slices         []SliceDescriptor `json:"slices,omitempty" yaml:"slices,omitempty" toml:"slices,omitempty"`
	Groups         []GroupDescriptor `json:"groups,omitempty" yaml:"groups,omitempty" toml:"groups,omitempty"`
}

// GroupDescriptor describes a group or nested card inside a composite card
type GroupDescriptor struct {
	Name           string            `json:"name" yaml:"name" toml:"name"`
	DisplayName    string            `json:"display_name,omitempty" yaml:"display_name,omitempty" toml:"display_name,omitempty"`
	DisplayNameKey string            `json:"display_name_key,omitempty" yaml:"display_name_key,omitempty" toml:"display_name_key,omitempty"`
	Visible        bool              `json:"visible" yaml:"visible" toml:"visible"`
	TopLevel       *SliceDescriptor  `json:"top_level,omitempty" yaml:"top_level,omitempty" toml:"top_level,omitempty"`
	Slices         []SliceDescriptor `json:"slices,omitempty" yaml:"slices,omitempty" toml:"slices,omitempty"`
}

// SliceDescriptor describes one control
type SliceDescriptor struct {
	Kind           Kind              `json:"kind" yaml:"kind" toml:"kind"`
	Name           string            `json:"name" yaml:"name" toml:"name"`
	DisplayName    string            `json:"display_name,omitempty" yaml:"display_name,omitempty" toml:"display_name,omitempty"`
	DisplayNameKey string            `json:"display_name_key,omitempty" yaml:"display_name_key,omitempty" toml:"display_name_key,omitempty"`
	Description    string            `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	DescriptionKey string            `json:"description_key,omitempty" yaml:"description_key,omitempty" toml:"description_key,omitempty"`
	Value          any               `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	Visible        bool              `json:"visible" yaml:"visible" toml:"visible"`
	Bounds         *Bounds           `json:"bounds,omitempty" yaml:"bounds,omitempty" toml:"bounds,omitempty"`
	Items          []Item            `json:"items,omitempty" yaml:"items,omitempty" toml:"items,omitempty"`
	InstanceKind   InstanceKind      `json:"instance_kind,omitempty" yaml:"instance_kind,omitempty" toml:"instance_kind,omitempty"`
	Selector       *graph.Selector   `json:"selector,omitempty" yaml:"selector,omitempty" toml:"selector,omitempty"`
	Slices         []SliceDescriptor `json:"slices,omitempty" yaml:"slices,omitempty" toml:"slices,omitempty"`
}

// ExportSlice describes a single slice. enabled is the state of the owning card's
// enabling toggle; a disabled card hides the slice regardless of its own flag.
func ExportSlice(s Slice, enabled bool) SliceDescriptor {
	props := s.Props()
	d := SliceDescriptor{
		Kind:           s.Kind(),
		Name:           props.Name,
		DisplayName:    props.DisplayName,
		DisplayNameKey: props.DisplayNameKey,
		Description:    props.Description,
		DescriptionKey: props.DescriptionKey,
		Visible:        enabled && props.Visible(),
		Selector:       props.Selector,
	}

	switch v := s.(type) {
	case *NumUpDown:
		b := v.Bounds()
		d.Bounds = &b
		d.Value = v.Value()
	case *ItemDropdown:
		d.Items = v.Items
		d.Value = v.Value.Value
	case *ColorPicker:
		d.InstanceKind = v.InstanceKind
		d.Value = v.Value
	case Container:
		d.Slices = exportSlices(v.Children(), d.Visible)
	default:
		d.Value = s.Current()
	}
	return d
}

func exportSlices(slices []Slice, enabled bool) []SliceDescriptor {
	if len(slices) == 0 {
		return nil
	}
	out := make([]SliceDescriptor, 0, len(slices))
	for _, s := range slices {
		out = append(out, ExportSlice(s, enabled))
	}
	return out
}

func exportTopLevel(toggle *ToggleSwitch) *SliceDescriptor {
	if toggle == nil {
		return nil
	}
	d := ExportSlice(toggle, true)
	return &d
}
