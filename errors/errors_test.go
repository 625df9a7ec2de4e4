package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewf(t *testing.T) {
	err := Newf("card %s slice %d", "nodes", 3)
	require.NotNil(t, err)
	assert.Equal(t, "card nodes slice 3", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWithHint(t *testing.T) {
	err := WithHint(New("bad font size"), "font size must be between 8 and 60")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "font size must be between 8 and 60", hints[0])
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsInvalidRequestError(nil))
	assert.False(t, IsMalformedStateError(nil))
}

func TestSentinelHelpers(t *testing.T) {
	notFound := NewNotFoundError("slice %s/%s", "nodes", "missing")
	assert.True(t, IsNotFoundError(notFound))
	assert.False(t, IsInvalidRequestError(notFound))
	assert.Contains(t, notFound.Error(), "nodes/missing")

	invalid := NewInvalidRequestError("want bool, got %T", 3)
	assert.True(t, IsInvalidRequestError(invalid))
	assert.Contains(t, invalid.Error(), "want bool, got int")

	malformed := WrapMalformedState(New("unexpected end of JSON input"), "nodePositions")
	assert.True(t, IsMalformedStateError(malformed))
	assert.Contains(t, malformed.Error(), "decode nodePositions")
}

func TestAssertionFailure(t *testing.T) {
	err := AssertionFailedf("unknown match target %q", "middle")
	assert.True(t, HasAssertionFailure(err))
	assert.True(t, HasAssertionFailure(Wrap(err, "resolve link colors")))
	assert.False(t, HasAssertionFailure(New("plain")))
}

func ExampleWrap() {
	base := New("unexpected end of JSON input")
	err := Wrap(base, "failed to decode viewport size")
	fmt.Println(err)
	// Output: failed to decode viewport size: unexpected end of JSON input
}
