package sankey

import (
	"github.com/teranos/sankeyfmt/format"
)

// ScaleSettings controls how link weights map to node heights
type ScaleSettings struct {
	format.SimpleCard
	ProvideMinHeight *format.ToggleSwitch
	LogScale         *format.ToggleSwitch
}

// NewScaleSettings creates the scale card
func NewScaleSettings() *ScaleSettings {
	c := &ScaleSettings{
		ProvideMinHeight: &format.ToggleSwitch{
			Properties: format.Properties{
				Name:           "provideMinHeight",
				DisplayName:    "Provide min optimal height of node",
				DisplayNameKey: "Visual_ProvideMinHeight",
			},
			Value: true,
		},
		LogScale: &format.ToggleSwitch{
			Properties: format.Properties{
				Name:           "lnScale",
				DisplayName:    "Enable logarithmic scale",
				DisplayNameKey: "Visual_EnableLogarithmicScale",
			},
		},
	}
	c.SimpleCard = format.SimpleCard{
		Name:           "scaleSettings",
		DisplayName:    "Scale settings",
		DisplayNameKey: "Visual_ScaleSettings",
		Slices:         []format.Slice{c.ProvideMinHeight, c.LogScale},
	}
	return c
}
