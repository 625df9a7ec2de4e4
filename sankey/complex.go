package sankey

import (
	"github.com/teranos/sankeyfmt/format"
)

// ButtonPosition is where the reset button is drawn
type ButtonPosition string

const (
	ButtonTop          ButtonPosition = "Top"
	ButtonTopCenter    ButtonPosition = "TopCenter"
	ButtonTopRight     ButtonPosition = "TopRight"
	ButtonBottom       ButtonPosition = "Bottom"
	ButtonBottomCenter ButtonPosition = "BottomCenter"
	ButtonBottomRight  ButtonPosition = "BottomRight"
)

var buttonPositionItems = []format.Item{
	{Value: string(ButtonTop), DisplayName: "Top", DisplayNameKey: "Visual_Top"},
	{Value: string(ButtonTopCenter), DisplayName: "Top center", DisplayNameKey: "Visual_TopCenter"},
	{Value: string(ButtonTopRight), DisplayName: "Top right", DisplayNameKey: "Visual_TopRight"},
	{Value: string(ButtonBottom), DisplayName: "Bottom", DisplayNameKey: "Visual_Bottom"},
	{Value: string(ButtonBottomCenter), DisplayName: "Bottom center", DisplayNameKey: "Visual_BottomCenter"},
	{Value: string(ButtonBottomRight), DisplayName: "Bottom right", DisplayNameKey: "Visual_BottomRight"},
}

// ButtonStyle holds the fixed drawing attributes of the reset button
type ButtonStyle struct {
	Fill     string
	Stroke   string
	TextFill string
	Text     string
	Width    float64
	Height   float64
}

// DefaultButtonStyle is how the reset button is drawn
var DefaultButtonStyle = ButtonStyle{
	Fill:     "#DCDCDC",
	Stroke:   "#A9A9A9",
	TextFill: "#333",
	Text:     "Reset",
	Width:    40,
	Height:   15,
}

// PersistPropertiesGroup stores layout state as hidden text controls.
// The values are encoded by the persist package.
type PersistPropertiesGroup struct {
	format.SimpleCard
	NodePositions *format.ReadOnlyText
	ViewportSize  *format.ReadOnlyText
}

// NewPersistPropertiesGroup creates the persisted layout group
func NewPersistPropertiesGroup() *PersistPropertiesGroup {
	c := &PersistPropertiesGroup{
		NodePositions: &format.ReadOnlyText{
			Properties: format.Properties{Name: "nodePositions", Hidden: true},
			Value:      "[]",
		},
		ViewportSize: &format.ReadOnlyText{
			Properties: format.Properties{Name: "viewportSize", Hidden: true},
			Value:      "{}",
		},
	}
	c.SimpleCard = format.SimpleCard{
		Name:   "persistProperties",
		Slices: []format.Slice{c.NodePositions, c.ViewportSize},
		Hidden: true,
	}
	return c
}

// ButtonSettings controls the reset button
type ButtonSettings struct {
	format.SimpleCard
	Show     *format.ToggleSwitch
	Position *format.ItemDropdown
	Style    ButtonStyle
}

// NewButtonSettings creates the reset button card, hidden by default
func NewButtonSettings() *ButtonSettings {
	c := &ButtonSettings{
		Show: &format.ToggleSwitch{
			Properties: format.Properties{Name: "showResetButon", DisplayNameKey: "Visual_Show"},
		},
		Position: &format.ItemDropdown{
			Properties: format.Properties{
				Name:           "position",
				DisplayName:    "Position",
				DisplayNameKey: "Visual_Position",
			},
			Items: buttonPositionItems,
			Value: buttonPositionItems[len(buttonPositionItems)-1],
		},
		Style: DefaultButtonStyle,
	}
	c.SimpleCard = format.SimpleCard{
		Name:           "button",
		DisplayName:    "Reset button",
		DisplayNameKey: "Visual_ResetButton",
		DescriptionKey: "Visual_ResetButonDescription",
		TopLevelSlice:  c.Show,
		Slices:         []format.Slice{c.Position},
	}
	return c
}

// Placement returns the selected button position
func (c *ButtonSettings) Placement() ButtonPosition {
	return ButtonPosition(c.Position.Value.Value)
}

// NodeComplexSettings groups persisted layout state and the reset button
type NodeComplexSettings struct {
	format.CompositeCard
	Persist *PersistPropertiesGroup
	Button  *ButtonSettings
}

// NewNodeComplexSettings creates the node layout card
func NewNodeComplexSettings() *NodeComplexSettings {
	c := &NodeComplexSettings{
		Persist: NewPersistPropertiesGroup(),
		Button:  NewButtonSettings(),
	}
	c.CompositeCard = format.CompositeCard{
		Name:           "nodeComplexSettings",
		DisplayName:    "Sorting",
		DisplayNameKey: "Visual_Sorting",
		Groups:         []format.Section{c.Persist, c.Button},
	}
	return c
}
