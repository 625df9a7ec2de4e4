package sankey

import (
	"github.com/teranos/sankeyfmt/format"
	"github.com/teranos/sankeyfmt/graph"
)

// Node width defaults and bounds
const (
	DefaultNodeWidth = 10.0
	MinNodeWidth     = 10.0
	MaxNodeWidth     = 30.0
)

// NodesSettings holds node sizing and coloring. With "show all" on, one color control per
// distinct node is appended after the static controls.
type NodesSettings struct {
	format.SimpleCard
	NodeWidth    *format.NumUpDown
	DefaultColor *format.ColorPicker
	ShowAll      *format.ToggleSwitch
}

// NewNodesSettings creates the nodes card
func NewNodesSettings(width float64) *NodesSettings {
	c := &NodesSettings{
		NodeWidth: format.NewNumUpDown(format.Properties{
			Name:           "nodesWidth",
			DisplayName:    "Width",
			DisplayNameKey: "Visual_Width",
		}, width, format.Bounds{Min: MinNodeWidth, Max: MaxNodeWidth}),
		DefaultColor: &format.ColorPicker{
			Properties: format.Properties{
				Name:           "defaultColor",
				DisplayName:    "Default color",
				DisplayNameKey: "Visual_NodeDefaultColor",
			},
		},
		ShowAll: &format.ToggleSwitch{
			Properties: format.Properties{
				Name:           "showAll",
				DisplayName:    "Show all",
				DisplayNameKey: "Visual_NodesShowAll",
			},
		},
	}
	c.SimpleCard = format.SimpleCard{
		Name:           "nodes",
		DisplayName:    "Nodes",
		DisplayNameKey: "Visual_Nodes",
		Slices:         []format.Slice{c.NodeWidth, c.DefaultColor, c.ShowAll},
	}
	return c
}

// PopulateNodeColorOverrides appends a color control for every node not yet represented,
// gated by the card's "show all" toggle. Returns the number of controls added.
func (c *NodesSettings) PopulateNodeColorOverrides(nodes []*graph.Node) int {
	return c.populateNodeColorOverrides(nodes, c.ShowAll.Value)
}

// populateNodeColorOverrides is append-only: controls for nodes that disappear from the data
// are kept, so turning "show all" off and on again never loses a per-node edit.
// A node is already represented when a generated control carries its formatted name.
func (c *NodesSettings) populateNodeColorOverrides(nodes []*graph.Node, showAll bool) int {
	if !showAll || len(nodes) == 0 {
		return 0
	}

	seen := make(map[string]struct{})
	for _, s := range c.Slices {
		if _, owned := s.Props().Owner(); owned {
			seen[s.Props().DisplayName] = struct{}{}
		}
	}

	added := 0
	for _, node := range nodes {
		if node == nil {
			continue
		}
		label := node.Label.FormattedName
		if _, exists := seen[label]; exists {
			continue
		}
		seen[label] = struct{}{}
		owner := node.SelectionID
		if owner.IsZero() {
			owner = graph.NewSelectionID(graph.KindNode, label)
		}
		c.Slices = append(c.Slices, &format.ColorPicker{
			Properties: format.Properties{
				Name:        "fill",
				DisplayName: label,
				Selector:    graph.NormalizeSelector(owner),
			},
			Value: node.FillColor,
		})
		added++
	}
	return added
}

// NodeColorOverrides returns the generated per-node color controls in creation order
func (c *NodesSettings) NodeColorOverrides() []*format.ColorPicker {
	var overrides []*format.ColorPicker
	for _, s := range c.Slices {
		picker, ok := s.(*format.ColorPicker)
		if !ok {
			continue
		}
		if _, owned := picker.Owner(); owned {
			overrides = append(overrides, picker)
		}
	}
	return overrides
}
