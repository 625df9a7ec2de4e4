package graph

import (
	"strings"
	"time"
)

// Flow is one data-bound row: a weighted movement from a source category to a destination
type Flow struct {
	Source      string  `json:"source" yaml:"source"`
	Destination string  `json:"destination" yaml:"destination"`
	Weight      float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
	Color       string  `json:"color,omitempty" yaml:"color,omitempty"`
}

// Build converts flow rows into a diagram.
// Nodes are created once per normalized name in first-seen order, so the node list is stable
// for identical input. Repeated source/destination pairs accumulate into a single link.
// nodeColors maps a node name to an explicit fill color; other nodes cycle through the palette.
func (b *Builder) Build(flows []Flow, nodeColors map[string]string) *Diagram {
	diagram := &Diagram{
		Nodes: []*Node{},
		Links: []*Link{},
		Meta: Meta{
			GeneratedAt: time.Now(),
		},
	}

	nodeMap := make(map[string]*Node)
	linkMap := make(map[string]*Link)

	nodeFor := func(name string) *Node {
		id := normalizeNodeID(name)
		if node, exists := nodeMap[id]; exists {
			return node
		}
		color, ok := nodeColors[name]
		if !ok || color == "" {
			color = b.palette[len(diagram.Nodes)%len(b.palette)]
		}
		node := &Node{
			ID: id,
			Label: Label{
				Name:          name,
				FormattedName: strings.TrimSpace(name),
			},
			FillColor:   color,
			SelectionID: NewSelectionID(KindNode, id),
		}
		nodeMap[id] = node
		diagram.Nodes = append(diagram.Nodes, node)
		return node
	}

	for _, flow := range flows {
		if flow.Source == "" || flow.Destination == "" {
			b.logger.Debugw("Skipping flow with missing endpoint",
				"source", flow.Source,
				"destination", flow.Destination)
			continue
		}

		source := nodeFor(flow.Source)
		destination := nodeFor(flow.Destination)

		linkID := source.ID + "->" + destination.ID
		if link, exists := linkMap[linkID]; exists {
			if flow.Weight > 0 {
				link.Weight += flow.Weight
			} else {
				link.Weight += linkWeightIncrement
			}
			continue
		}

		weight := flow.Weight
		if weight <= 0 {
			weight = defaultLinkWeight
		}
		color := flow.Color
		if color == "" {
			color = DefaultLinkColor
		}

		link := &Link{
			Source:      source,
			Destination: destination,
			Weight:      weight,
			FillColor:   color,
			SelectionID: NewSelectionID(KindLink, linkID),
		}
		linkMap[linkID] = link
		diagram.Links = append(diagram.Links, link)
	}

	for _, link := range diagram.Links {
		diagram.Meta.Stats.TotalFlow += link.Weight
		if link.Source == link.Destination {
			diagram.Meta.Stats.SelfLinks++
		}
	}
	diagram.Meta.Stats.TotalNodes = len(diagram.Nodes)
	diagram.Meta.Stats.TotalLinks = len(diagram.Links)

	b.logger.Debugw("Built diagram",
		"flows", len(flows),
		"node_count", diagram.Meta.Stats.TotalNodes,
		"link_count", diagram.Meta.Stats.TotalLinks)

	return diagram
}
