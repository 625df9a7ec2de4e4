package graph

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectionID(t *testing.T) {
	id := NewSelectionID(KindNode, "coal")

	parsed, err := uuid.Parse(string(id))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), parsed.Version(), "SHA-1 namespace UUID")

	assert.Equal(t, id, NewSelectionID(KindNode, "coal"), "deterministic")
	assert.NotEqual(t, id, NewSelectionID(KindLink, "coal"), "kind scopes the id")
}

func TestNormalizeSelector(t *testing.T) {
	assert.Nil(t, NormalizeSelector(""))

	id := NewSelectionID(KindLink, "a->b")
	sel := NormalizeSelector(id)
	require.NotNil(t, sel)
	assert.Equal(t, id, sel.ID)
	assert.False(t, sel.IsWildcard())
	assert.True(t, sel.Matches(id))
	assert.False(t, sel.Matches(NewSelectionID(KindLink, "b->a")))
}

func TestWildcardSelector(t *testing.T) {
	sel := WildcardSelector(MatchInstancesAndTotals)
	assert.True(t, sel.IsWildcard())
	assert.True(t, sel.Matches(NewSelectionID(KindLink, "anything")))

	var none *Selector
	assert.False(t, none.IsWildcard())
	assert.False(t, none.Matches("x"))
}
