package sankey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/sankeyfmt/errors"
	"github.com/teranos/sankeyfmt/format"
	"github.com/teranos/sankeyfmt/graph"
)

func TestLinkColorMode(t *testing.T) {
	c := NewLinkColorSettings()
	assert.Equal(t, ModeMatchNodeColors, c.Mode(), "match node colors is on by default")
	assert.Equal(t, MatchSource, c.Target())

	tests := []struct {
		match, individual bool
		want              LinkColorMode
	}{
		{true, true, ModeMatchNodeColors},
		{true, false, ModeMatchNodeColors},
		{false, true, ModeIndividualColors},
		{false, false, ModeUniform},
	}
	for _, tt := range tests {
		c.MatchNodeColors.Value = tt.match
		c.SetIndividualColors.Value = tt.individual
		if got := c.Mode(); got != tt.want {
			t.Errorf("Mode() with match=%t individual=%t = %s, want %s", tt.match, tt.individual, got, tt.want)
		}
	}

	for _, m := range []LinkColorMode{ModeUniform, ModeIndividualColors, ModeMatchNodeColors} {
		c.SetMode(m)
		assert.Equal(t, m, c.Mode())
		parsed, ok := ParseLinkColorMode(m.String())
		assert.True(t, ok)
		assert.Equal(t, m, parsed)
	}
	_, ok := ParseLinkColorMode("rainbow")
	assert.False(t, ok)
}

func TestResolveMatchMode(t *testing.T) {
	red, blue := node("A", "#FF0000"), node("B", "#0000FF")

	t.Run("source", func(t *testing.T) {
		c := NewLinkColorSettings()
		l := link(red, blue, "#999999")
		require.NoError(t, c.ResolveLinkColors([]*graph.Link{l}, ""))

		assert.Equal(t, "#FF0000", l.FillColor)
		assert.Empty(t, c.DynamicSlices())
		assert.True(t, c.MatchSourceOrDestination.Visible())
		assert.False(t, c.SetIndividualColors.Visible())
	})

	t.Run("destination", func(t *testing.T) {
		c := NewLinkColorSettings()
		require.NoError(t, c.MatchSourceOrDestination.Select(string(MatchDestination)))
		l := link(red, blue, "#999999")
		require.NoError(t, c.ResolveLinkColors([]*graph.Link{l}, ""))
		assert.Equal(t, "#0000FF", l.FillColor)
	})

	t.Run("missing endpoint keeps prior color", func(t *testing.T) {
		c := NewLinkColorSettings()
		orphan := link(nil, blue, "#999999")
		uncolored := link(node("C", ""), blue, "#888888")
		require.NoError(t, c.ResolveLinkColors([]*graph.Link{orphan, uncolored, nil}, ""))
		assert.Equal(t, "#999999", orphan.FillColor)
		assert.Equal(t, "#888888", uncolored.FillColor)
	})

	t.Run("unknown target is a contract violation", func(t *testing.T) {
		c := NewLinkColorSettings()
		c.MatchSourceOrDestination.Value = format.Item{Value: "middle"}
		l := link(red, blue, "#999999")

		err := c.ResolveLinkColors([]*graph.Link{l}, "")
		require.Error(t, err)
		assert.True(t, errors.HasAssertionFailure(err))
		assert.Equal(t, "#999999", l.FillColor, "links are left untouched")
	})
}

func TestResolveIndividualMode(t *testing.T) {
	a, b, x := node("A", "#FF0000"), node("B", "#0000FF"), node("X", "#00FF00")
	c := NewLinkColorSettings()
	c.SetMode(ModeIndividualColors)

	ab, bx := link(a, b, "#111111"), link(b, x, "#222222")
	require.NoError(t, c.ResolveLinkColors([]*graph.Link{ab, bx}, ""))

	pickers := dynamicColorPickers(t, c)
	require.Len(t, pickers, 2)
	assert.Equal(t, "A - B", pickers[0].DisplayName)
	assert.Equal(t, "#111111", pickers[0].Value)
	owner, owned := pickers[0].Owner()
	assert.True(t, owned)
	assert.Equal(t, ab.SelectionID, owner)
	assert.Equal(t, "B - X", pickers[1].DisplayName)

	assert.Equal(t, "#111111", ab.FillColor, "individual mode never writes entity colors")
	assert.False(t, c.MatchSourceOrDestination.Visible())
	assert.True(t, c.SetIndividualColors.Visible())

	// Rebuild: no accumulation across refreshes, stale links drop out
	require.NoError(t, c.ResolveLinkColors([]*graph.Link{bx}, ""))
	pickers = dynamicColorPickers(t, c)
	require.Len(t, pickers, 1)
	assert.Equal(t, "B - X", pickers[0].DisplayName)
}

func TestResolveUniformMode(t *testing.T) {
	a, b := node("A", "#FF0000"), node("B", "#0000FF")

	t.Run("seeded from the first link", func(t *testing.T) {
		c := NewLinkColorSettings()
		c.SetMode(ModeUniform)
		require.NoError(t, c.ResolveLinkColors([]*graph.Link{link(a, b, "#ABCDEF"), link(b, a, "#000001")}, "#FFFFFF"))

		pickers := dynamicColorPickers(t, c)
		require.Len(t, pickers, 1)
		p := pickers[0]
		assert.Equal(t, "fill", p.Name)
		assert.Equal(t, "Visual_LinkColor", p.DisplayNameKey)
		assert.Equal(t, "#ABCDEF", p.Value)
		assert.Equal(t, format.InstanceConstantOrRule, p.InstanceKind)
		require.NotNil(t, p.Selector)
		assert.True(t, p.Selector.IsWildcard())
		_, owned := p.Owner()
		assert.False(t, owned)
	})

	t.Run("fallback without links", func(t *testing.T) {
		c := NewLinkColorSettings()
		c.SetMode(ModeUniform)
		require.NoError(t, c.ResolveLinkColors(nil, ""))
		pickers := dynamicColorPickers(t, c)
		require.Len(t, pickers, 1)
		assert.Equal(t, "#000000", pickers[0].Value)

		require.NoError(t, c.ResolveLinkColors(nil, "#777777"))
		assert.Equal(t, "#777777", dynamicColorPickers(t, c)[0].Value)
	})

	t.Run("first link without a color", func(t *testing.T) {
		c := NewLinkColorSettings()
		c.SetMode(ModeUniform)
		require.NoError(t, c.ResolveLinkColors([]*graph.Link{link(a, b, ""), link(b, a, "#222222")}, "#777777"))
		pickers := dynamicColorPickers(t, c)
		require.Len(t, pickers, 1)
		assert.Equal(t, "", pickers[0].Value, "seeded from the first link as is")
	})
}

func TestModeExclusivity(t *testing.T) {
	a, b := node("A", "#FF0000"), node("B", "#0000FF")
	links := []*graph.Link{link(a, b, "#111111"), link(b, a, "#222222")}
	c := NewLinkColorSettings()

	// Walk every transition between modes; after each call exactly one mode's controls exist
	sequence := []LinkColorMode{
		ModeUniform, ModeIndividualColors, ModeMatchNodeColors,
		ModeIndividualColors, ModeUniform, ModeMatchNodeColors, ModeUniform,
	}
	for _, m := range sequence {
		c.SetMode(m)
		require.NoError(t, c.ResolveLinkColors(links, ""))

		var uniform, individual int
		for _, p := range dynamicColorPickers(t, c) {
			if p.Selector != nil && p.Selector.IsWildcard() {
				uniform++
			} else {
				individual++
			}
		}
		matchVisible := c.MatchSourceOrDestination.Visible()

		switch m {
		case ModeUniform:
			assert.Equal(t, 1, uniform, m.String())
			assert.Zero(t, individual, m.String())
			assert.False(t, matchVisible, m.String())
		case ModeIndividualColors:
			assert.Zero(t, uniform, m.String())
			assert.Equal(t, len(links), individual, m.String())
			assert.False(t, matchVisible, m.String())
		case ModeMatchNodeColors:
			assert.Zero(t, uniform+individual, m.String())
			assert.True(t, matchVisible, m.String())
		}
		assert.Len(t, c.Slices, 3+uniform+individual, "base controls are always present")
	}
}

func TestResolveUnknownMode(t *testing.T) {
	c := NewLinkColorSettings()
	err := c.resolveLinkColors(nil, LinkColorMode(42), MatchSource, "")
	require.Error(t, err)
	assert.True(t, errors.HasAssertionFailure(err))
}
