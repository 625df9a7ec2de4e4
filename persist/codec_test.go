package persist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/teranos/sankeyfmt/errors"
	"github.com/teranos/sankeyfmt/internal/util"
)

func TestEncodeNodePositions(t *testing.T) {
	assert.Equal(t, "[]", EncodeNodePositions(nil))
	assert.Equal(t, "[]", EncodeNodePositions([]NodePosition{}))
	assert.Equal(t,
		`[{"name":"A","x":"10","y":"20"},{"name":"B","x":"12.5","y":"-3"}]`,
		EncodeNodePositions([]NodePosition{{Name: "A", X: 10, Y: 20}, {Name: "B", X: 12.5, Y: -3}}),
	)
}

func TestNodePositionsRoundTrip(t *testing.T) {
	positions := []NodePosition{
		{Name: "Coal", X: 0, Y: 0},
		{Name: "Electricity grid", X: 312.25, Y: 80},
	}
	decoded, err := ParseNodePositions(EncodeNodePositions(positions))
	require.NoError(t, err)
	assert.Equal(t, positions, decoded)
}

func TestParseNodePositionsAcceptsNumbers(t *testing.T) {
	decoded, err := ParseNodePositions(`[{"name":"A","x":10,"y":"20"}]`)
	require.NoError(t, err)
	assert.Equal(t, []NodePosition{{Name: "A", X: 10, Y: 20}}, decoded)
}

func TestParseNodePositionsMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"not json", "not json"},
		{"object instead of list", `{"name":"A"}`},
		{"non numeric coordinate", `[{"name":"A","x":"left","y":"0"}]`},
		{"truncated", `[{"name":"A",`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNodePositions(tt.text)
			require.Error(t, err)
			assert.True(t, errors.IsMalformedStateError(err))
		})
	}
}

func TestViewportSize(t *testing.T) {
	assert.Equal(t, "{}", EncodeViewportSize(ViewportSize{}))

	size := ViewportSize{Height: util.Ptr("400"), Width: util.Ptr("600")}
	text := EncodeViewportSize(size)
	assert.Equal(t, `{"height":"400","width":"600"}`, text)

	decoded, err := ParseViewportSize(text)
	require.NoError(t, err)
	assert.Equal(t, size, decoded)

	partial, err := ParseViewportSize(`{"width":"600"}`)
	require.NoError(t, err)
	assert.Nil(t, partial.Height)
	require.NotNil(t, partial.Width)
	assert.Equal(t, "600", *partial.Width)
	assert.Equal(t, `{"width":"600"}`, EncodeViewportSize(partial))
}

func TestViewportSizeRoundTripsAnyText(t *testing.T) {
	tests := []struct {
		name string
		size ViewportSize
	}{
		{"empty height", ViewportSize{Height: util.Ptr(""), Width: util.Ptr("600")}},
		{"keyword", ViewportSize{Height: util.Ptr("auto"), Width: util.Ptr("600")}},
		{"leading zero", ViewportSize{Height: util.Ptr("010")}},
		{"width only", ViewportSize{Width: util.Ptr("600")}},
		{"height only", ViewportSize{Height: util.Ptr("400.5")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := ParseViewportSize(EncodeViewportSize(tt.size))
			require.NoError(t, err)
			assert.Equal(t, tt.size, decoded)
		})
	}
}

func TestParseViewportSizeMembers(t *testing.T) {
	numbers, err := ParseViewportSize(`{"height":400,"width":null}`)
	require.NoError(t, err)
	require.NotNil(t, numbers.Height)
	assert.Equal(t, "400", *numbers.Height)
	assert.Nil(t, numbers.Width)

	// A bad member does not take the valid one down with it
	partial, err := ParseViewportSize(`{"height":true,"width":"600"}`)
	require.Error(t, err)
	assert.True(t, errors.IsMalformedStateError(err))
	assert.Nil(t, partial.Height)
	require.NotNil(t, partial.Width)
	assert.Equal(t, "600", *partial.Width)

	core, logs := observer.New(zap.WarnLevel)
	kept := NewCodec(zap.New(core).Sugar()).DecodeViewportSize(`{"height":{},"width":"600"}`)
	assert.Equal(t, ViewportSize{Width: util.Ptr("600")}, kept)
	assert.Equal(t, 1, logs.Len())
}

func TestCodecRecoversFromMalformedText(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	codec := NewCodec(zap.New(core).Sugar())

	assert.Empty(t, codec.DecodeNodePositions("not json"))
	assert.True(t, codec.DecodeViewportSize("[1,2]").IsZero())
	assert.Equal(t, 2, logs.Len())

	assert.Empty(t, codec.DecodeNodePositions(""))
	assert.True(t, codec.DecodeViewportSize("").IsZero())
	assert.Equal(t, 2, logs.Len(), "empty text is not malformed")

	entry := logs.All()[0]
	assert.Equal(t, "nodePositions", entry.ContextMap()["field"])
}

func TestNewCodecNilLogger(t *testing.T) {
	codec := NewCodec(nil)
	assert.NotPanics(t, func() {
		codec.DecodeNodePositions("{")
	})
}
