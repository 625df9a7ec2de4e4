package format

import (
	"github.com/teranos/sankeyfmt/graph"
)

// Card is a top-level entry of the formatting pane
type Card interface {
	CardName() string
	Export() CardDescriptor
	// Find returns the slice addressed by group/slice name within the card.
	// An empty group searches the card's own slices.
	Find(group, slice string, owner graph.SelectionID) (Slice, bool)
}

// Section is a child of a composite card: a plain group or a nested simple card
type Section interface {
	SectionName() string
	ExportSection(enabled bool) GroupDescriptor
	SectionSlices() []Slice
}

// Group is a named, ordered collection of slices inside a composite card
type Group struct {
	Name           string
	DisplayName    string
	DisplayNameKey string
	Slices         []Slice
	Hidden         bool
}

func (g *Group) SectionName() string    { return g.Name }
func (g *Group) SectionSlices() []Slice { return g.Slices }

func (g *Group) ExportSection(enabled bool) GroupDescriptor {
	return GroupDescriptor{
		Name:           g.Name,
		DisplayName:    g.DisplayName,
		DisplayNameKey: g.DisplayNameKey,
		Visible:        enabled && !g.Hidden,
		Slices:         exportSlices(g.Slices, enabled),
	}
}

// SimpleCard is a flat card: an optional enabling toggle plus an ordered slice list.
// When the enabling toggle is off every other slice is reported hidden.
type SimpleCard struct {
	Name           string
	DisplayName    string
	DisplayNameKey string
	DescriptionKey string
	TopLevelSlice  *ToggleSwitch
	Slices         []Slice
	Hidden         bool
}

func (c *SimpleCard) CardName() string       { return c.Name }
func (c *SimpleCard) SectionName() string    { return c.Name }
func (c *SimpleCard) SectionSlices() []Slice { return c.allSlices() }

// Enabled reports whether the card's enabling toggle (if any) is on
func (c *SimpleCard) Enabled() bool {
	return c.TopLevelSlice == nil || c.TopLevelSlice.Value
}

func (c *SimpleCard) Export() CardDescriptor {
	enabled := c.Enabled()
	return CardDescriptor{
		Name:           c.Name,
		DisplayName:    c.DisplayName,
		DisplayNameKey: c.DisplayNameKey,
		DescriptionKey: c.DescriptionKey,
		Visible:        !c.Hidden,
		TopLevel:       exportTopLevel(c.TopLevelSlice),
		Slices:         exportSlices(c.Slices, enabled),
	}
}

func (c *SimpleCard) ExportSection(enabled bool) GroupDescriptor {
	own := c.Enabled()
	return GroupDescriptor{
		Name:           c.Name,
		DisplayName:    c.DisplayName,
		DisplayNameKey: c.DisplayNameKey,
		Visible:        enabled && !c.Hidden,
		TopLevel:       exportTopLevel(c.TopLevelSlice),
		Slices:         exportSlices(c.Slices, enabled && own),
	}
}

func (c *SimpleCard) Find(group, slice string, owner graph.SelectionID) (Slice, bool) {
	if group != "" && group != c.Name {
		return nil, false
	}
	return findSlice(c.allSlices(), slice, owner)
}

func (c *SimpleCard) allSlices() []Slice {
	if c.TopLevelSlice == nil {
		return c.Slices
	}
	return append([]Slice{c.TopLevelSlice}, c.Slices...)
}

// CompositeCard is a card made of groups and nested simple cards.
// When the enabling toggle is off every section is reported hidden.
type CompositeCard struct {
	Name           string
	DisplayName    string
	DisplayNameKey string
	DescriptionKey string
	TopLevelSlice  *ToggleSwitch
	Groups         []Section
	Hidden         bool
}

func (c *CompositeCard) CardName() string { return c.Name }

// Enabled reports whether the card's enabling toggle (if any) is on
func (c *CompositeCard) Enabled() bool {
	return c.TopLevelSlice == nil || c.TopLevelSlice.Value
}

func (c *CompositeCard) Export() CardDescriptor {
	enabled := c.Enabled()
	groups := make([]GroupDescriptor, 0, len(c.Groups))
	for _, section := range c.Groups {
		groups = append(groups, section.ExportSection(enabled))
	}
	return CardDescriptor{
		Name:           c.Name,
		DisplayName:    c.DisplayName,
		DisplayNameKey: c.DisplayNameKey,
		DescriptionKey: c.DescriptionKey,
		Visible:        !c.Hidden,
		TopLevel:       exportTopLevel(c.TopLevelSlice),
		Groups:         groups,
	}
}

func (c *CompositeCard) Find(group, slice string, owner graph.SelectionID) (Slice, bool) {
	if group == "" {
		if c.TopLevelSlice != nil && c.TopLevelSlice.Name == slice && owner == "" {
			return c.TopLevelSlice, true
		}
		for _, section := range c.Groups {
			if found, ok := findSlice(section.SectionSlices(), slice, owner); ok {
				return found, true
			}
		}
		return nil, false
	}
	for _, section := range c.Groups {
		if section.SectionName() == group {
			return findSlice(section.SectionSlices(), slice, owner)
		}
	}
	return nil, false
}

// findSlice searches slices (descending into containers) for name.
// A non-empty owner only matches slices generated for that entity; an empty owner
// only matches slices with no owner.
func findSlice(slices []Slice, name string, owner graph.SelectionID) (Slice, bool) {
	for _, s := range slices {
		props := s.Props()
		if props.Name == name {
			id, owned := props.Owner()
			if (owner == "" && !owned) || (owned && id == owner) {
				return s, true
			}
		}
		if container, ok := s.(Container); ok {
			if found, ok := findSlice(container.Children(), name, owner); ok {
				return found, true
			}
		}
	}
	return nil, false
}
