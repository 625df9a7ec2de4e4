package graph

import (
	"time"
)

// Diagram is the data-bound entity set for one refresh cycle.
// Entities are created fresh on every data refresh and borrowed by the formatting model.
type Diagram struct {
	Nodes []*Node `json:"nodes" yaml:"nodes"`
	Links []*Link `json:"links" yaml:"links"`
	Meta  Meta    `json:"meta" yaml:"meta"`
}

// Node is a diagram node (a Sankey category value)
type Node struct {
	ID          string      `json:"id" yaml:"id"`
	Label       Label       `json:"label" yaml:"label"`
	FillColor   string      `json:"fill_color" yaml:"fill_color"`
	SelectionID SelectionID `json:"selection_id" yaml:"selection_id"`
}

// Label holds the display text of a node
type Label struct {
	Name          string `json:"name" yaml:"name"`
	FormattedName string `json:"formatted_name" yaml:"formatted_name"`
}

// Link is a weighted flow between two nodes.
// FillColor is the only field written by the formatting model.
type Link struct {
	Source      *Node       `json:"-" yaml:"-"`
	Destination *Node       `json:"-" yaml:"-"`
	Weight      float64     `json:"weight" yaml:"weight"`
	FillColor   string      `json:"fill_color" yaml:"fill_color"`
	SelectionID SelectionID `json:"selection_id" yaml:"selection_id"`
}

// Label returns the "<source> - <destination>" display text used by per-link controls
func (l *Link) Label() string {
	return endpointName(l.Source) + " - " + endpointName(l.Destination)
}

func endpointName(n *Node) string {
	if n == nil {
		return ""
	}
	return n.Label.FormattedName
}

// Meta contains metadata about the diagram
type Meta struct {
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Stats       Stats     `json:"stats" yaml:"stats"`
}

// Stats provides diagram statistics
type Stats struct {
	TotalNodes int     `json:"total_nodes,omitempty" yaml:"total_nodes,omitempty"`
	TotalLinks int     `json:"total_links,omitempty" yaml:"total_links,omitempty"`
	SelfLinks  int     `json:"self_links,omitempty" yaml:"self_links,omitempty"`
	TotalFlow  float64 `json:"total_flow,omitempty" yaml:"total_flow,omitempty"`
}
