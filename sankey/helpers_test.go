package sankey

import (
	"testing"

	"github.com/teranos/sankeyfmt/format"
	"github.com/teranos/sankeyfmt/graph"
)

func node(label, color string) *graph.Node {
	return &graph.Node{
		ID:          label,
		Label:       graph.Label{Name: label, FormattedName: label},
		FillColor:   color,
		SelectionID: graph.NewSelectionID(graph.KindNode, label),
	}
}

func link(src, dst *graph.Node, color string) *graph.Link {
	l := &graph.Link{Source: src, Destination: dst, Weight: 1, FillColor: color}
	l.SelectionID = graph.NewSelectionID(graph.KindLink, l.Label())
	return l
}

func dynamicColorPickers(t *testing.T, c *LinkColorSettings) []*format.ColorPicker {
	t.Helper()
	var pickers []*format.ColorPicker
	for _, s := range c.DynamicSlices() {
		picker, ok := s.(*format.ColorPicker)
		if !ok {
			t.Fatalf("dynamic slice %q is %T, want *format.ColorPicker", s.Props().Name, s)
		}
		pickers = append(pickers, picker)
	}
	return pickers
}
