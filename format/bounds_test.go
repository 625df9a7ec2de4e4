package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/teranos/sankeyfmt/errors"
)

func TestNumUpDownClampsAtConstruction(t *testing.T) {
	fontBounds := Bounds{Min: 8, Max: 60}

	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"far above max", 100, 60},
		{"just above max", 61, 60},
		{"at max", 60, 60},
		{"inside", 12, 12},
		{"at min", 8, 8},
		{"just below min", 7, 8},
		{"negative", -3, 8},
		{"NaN", math.NaN(), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewNumUpDown(Properties{Name: "fontSize"}, tt.value, fontBounds)
			assert.Equal(t, tt.want, s.Value())
		})
	}
}

func TestNumUpDownClampsEdits(t *testing.T) {
	s := NewNumUpDown(Properties{Name: "nodesWidth"}, 10, Bounds{Min: 10, Max: 30})

	assert.Equal(t, 30.0, s.SetValue(31))
	assert.Equal(t, 10.0, s.SetValue(9.5))
	assert.Equal(t, 17.5, s.SetValue(17.5))

	assert.NoError(t, s.Assign(45))
	assert.Equal(t, 30.0, s.Value())

	err := s.Assign("wide")
	assert.True(t, errors.IsInvalidRequestError(err))
	assert.Equal(t, 30.0, s.Value(), "rejected edit leaves value unchanged")
}

func TestNumUpDownRejectsEmptyBounds(t *testing.T) {
	assert.Panics(t, func() {
		NewNumUpDown(Properties{Name: "broken"}, 1, Bounds{Min: 5, Max: 1})
	})

	defer func() {
		r := recover()
		err, ok := r.(error)
		assert.True(t, ok)
		assert.True(t, errors.HasAssertionFailure(err))
	}()
	NewNumUpDown(Properties{Name: "broken"}, 1, Bounds{Min: math.NaN(), Max: 1})
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{Min: 8, Max: 60}
	assert.True(t, b.Contains(8))
	assert.True(t, b.Contains(60))
	assert.False(t, b.Contains(7.999))
	assert.False(t, b.Contains(60.001))
}
