package format

import (
	"math"

	"github.com/teranos/sankeyfmt/errors"
)

// Bounds is an inclusive numeric range
type Bounds struct {
	Min float64 `json:"min" yaml:"min" toml:"min"`
	Max float64 `json:"max" yaml:"max" toml:"max"`
}

// Clamp pins v into the range. NaN clamps to Min.
func (b Bounds) Clamp(v float64) float64 {
	if math.IsNaN(v) || v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// Contains reports whether v lies in the range
func (b Bounds) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

func (b Bounds) validate(name string) error {
	if math.IsNaN(b.Min) || math.IsNaN(b.Max) || b.Min > b.Max {
		return errors.AssertionFailedf("slice %q declares empty bounds [%v, %v]", name, b.Min, b.Max)
	}
	return nil
}
