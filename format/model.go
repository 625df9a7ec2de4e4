package format

import (
	"fmt"

	"github.com/teranos/sankeyfmt/errors"
	"github.com/teranos/sankeyfmt/graph"
)

// Model is the root of the formatting schema: the ordered top-level cards
type Model struct {
	Cards []Card
}

// Path addresses a slice: card name, optional group (or nested card) name, slice name and,
// for dynamically generated slices, the owning entity.
type Path struct {
	Card  string            `json:"card" yaml:"card"`
	Group string            `json:"group,omitempty" yaml:"group,omitempty"`
	Slice string            `json:"slice" yaml:"slice"`
	Owner graph.SelectionID `json:"owner,omitempty" yaml:"owner,omitempty"`
}

func (p Path) String() string {
	s := p.Card
	if p.Group != "" {
		s += "/" + p.Group
	}
	s += "/" + p.Slice
	if p.Owner != "" {
		s += fmt.Sprintf("[%s]", p.Owner)
	}
	return s
}

// Card returns the top-level card with the given name
func (m *Model) Card(name string) (Card, bool) {
	for _, c := range m.Cards {
		if c.CardName() == name {
			return c, true
		}
	}
	return nil, false
}

// Lookup returns the slice at path
func (m *Model) Lookup(path Path) (Slice, error) {
	card, ok := m.Card(path.Card)
	if !ok {
		return nil, errors.NewNotFoundError("card %q", path.Card)
	}
	slice, ok := card.Find(path.Group, path.Slice, path.Owner)
	if !ok {
		return nil, errors.NewNotFoundError("slice %s", path)
	}
	return slice, nil
}

// SetValue applies a host edit to the slice at path.
// Numeric values are clamped into the slice's declared bounds.
func (m *Model) SetValue(path Path, value any) error {
	slice, err := m.Lookup(path)
	if err != nil {
		return err
	}
	if err := slice.Assign(value); err != nil {
		return errors.Wrapf(err, "set %s", path)
	}
	return nil
}

// Export builds the outbound card tree
func (m *Model) Export() Descriptor {
	d := Descriptor{Cards: make([]CardDescriptor, 0, len(m.Cards))}
	for _, c := range m.Cards {
		d.Cards = append(d.Cards, c.Export())
	}
	return d
}
