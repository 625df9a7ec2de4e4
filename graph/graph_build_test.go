package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDeduplicatesNodesInFirstSeenOrder(t *testing.T) {
	builder := NewBuilder(nil, nil)

	diagram := builder.Build([]Flow{
		{Source: "Coal", Destination: "Electricity", Weight: 10},
		{Source: "Gas", Destination: "Electricity", Weight: 5},
		{Source: "Electricity", Destination: "Homes", Weight: 12},
	}, nil)

	require.Len(t, diagram.Nodes, 4)
	names := []string{}
	for _, n := range diagram.Nodes {
		names = append(names, n.Label.FormattedName)
	}
	assert.Equal(t, []string{"Coal", "Electricity", "Gas", "Homes"}, names)
	assert.Len(t, diagram.Links, 3)
	assert.Equal(t, 4, diagram.Meta.Stats.TotalNodes)
	assert.Equal(t, 3, diagram.Meta.Stats.TotalLinks)
	assert.InDelta(t, 27.0, diagram.Meta.Stats.TotalFlow, 1e-9)

	// Links share node pointers so a node color change is visible through the link
	assert.Same(t, diagram.Nodes[1], diagram.Links[0].Destination)
	assert.Same(t, diagram.Nodes[1], diagram.Links[2].Source)
}

func TestBuildAccumulatesRepeatedFlows(t *testing.T) {
	builder := NewBuilder(nil, nil)

	diagram := builder.Build([]Flow{
		{Source: "A", Destination: "B", Weight: 2},
		{Source: "A", Destination: "B", Weight: 3},
		{Source: "A", Destination: "B"},
		{Source: "", Destination: "B", Weight: 100},
	}, nil)

	require.Len(t, diagram.Links, 1)
	assert.InDelta(t, 6.0, diagram.Links[0].Weight, 1e-9)
}

func TestBuildColors(t *testing.T) {
	builder := NewBuilder([]string{"#111111", "#222222"}, nil)

	diagram := builder.Build([]Flow{
		{Source: "A", Destination: "B", Color: "#abcdef"},
		{Source: "C", Destination: "A"},
		{Source: "C", Destination: "C"},
	}, map[string]string{"B": "#ff0000"})

	require.Len(t, diagram.Nodes, 3)
	assert.Equal(t, "#111111", diagram.Nodes[0].FillColor, "A takes palette slot 0")
	assert.Equal(t, "#ff0000", diagram.Nodes[1].FillColor, "B uses explicit color")
	assert.Equal(t, "#111111", diagram.Nodes[2].FillColor, "C wraps around the palette")

	assert.Equal(t, "#abcdef", diagram.Links[0].FillColor)
	assert.Equal(t, DefaultLinkColor, diagram.Links[1].FillColor)
	assert.Equal(t, 1, diagram.Meta.Stats.SelfLinks)
}

func TestBuildSelectionIDsAreStableAcrossBuilds(t *testing.T) {
	flows := []Flow{{Source: "A", Destination: "B"}}

	first := NewBuilder(nil, nil).Build(flows, nil)
	second := NewBuilder(nil, nil).Build(flows, nil)

	assert.Equal(t, first.Nodes[0].SelectionID, second.Nodes[0].SelectionID)
	assert.Equal(t, first.Links[0].SelectionID, second.Links[0].SelectionID)
	assert.NotEqual(t, first.Nodes[0].SelectionID, first.Nodes[1].SelectionID)
}
