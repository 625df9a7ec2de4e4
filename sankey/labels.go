package sankey

import (
	"github.com/teranos/sankeyfmt/format"
)

// DefaultLinkLabelFontSize is the text size of link labels
const DefaultLinkLabelFontSize = 9.0

// DataLabelsSettings formats node labels
type DataLabelsSettings struct {
	format.CompositeCard
	Font         *FontGroup
	Unit         *format.AutoDropdown
	ForceDisplay *format.ToggleSwitch
}

// NewDataLabelsSettings creates the node label card
func NewDataLabelsSettings(fontSize float64) *DataLabelsSettings {
	c := &DataLabelsSettings{
		Font: NewFontGroup("labels", fontSize),
		Unit: &format.AutoDropdown{
			Properties: format.Properties{
				Name:           "unit",
				DisplayName:    "Display units",
				DisplayNameKey: "Visual_Display_Units",
			},
		},
		ForceDisplay: &format.ToggleSwitch{
			Properties: format.Properties{
				Name:           "forceDisplay",
				DisplayName:    "Force display",
				DisplayNameKey: "Visual_Force_Display",
				Description:    "Display all labels anyway",
				DescriptionKey: "Visual_Description_Force_Display",
			},
		},
	}

	values := c.Font.Values()
	values.Slices = append(values.Slices, c.Unit, c.ForceDisplay)

	c.CompositeCard = format.CompositeCard{
		Name:           "labels",
		DisplayNameKey: "Visual_DataPointsLabels",
		TopLevelSlice:  c.Font.Show,
		Groups:         []format.Section{values},
	}
	return c
}

// LinkLabelsSettings formats the labels drawn on links. Hidden by default.
type LinkLabelsSettings struct {
	format.CompositeCard
	Font *FontGroup
}

// NewLinkLabelsSettings creates the link label card
func NewLinkLabelsSettings(fontSize float64) *LinkLabelsSettings {
	c := &LinkLabelsSettings{
		Font: NewFontGroup("linkLabels", fontSize),
	}
	c.Font.Show.Value = false

	c.CompositeCard = format.CompositeCard{
		Name:           "linkLabels",
		DisplayNameKey: "Visual_DataPointsLinkLabels",
		TopLevelSlice:  c.Font.Show,
		Groups:         []format.Section{c.Font.Values()},
	}
	return c
}
