package sankey

import (
	"github.com/teranos/sankeyfmt/format"
)

// CycleDisplay is how links closing a cycle are drawn
type CycleDisplay string

const (
	CycleDuplicate          CycleDisplay = "duplicate"
	CycleBackward           CycleDisplay = "backward"
	CycleDuplicateOptimized CycleDisplay = "duplicateOptimized"
)

var cycleDisplayItems = []format.Item{
	{Value: string(CycleDuplicate), DisplayName: "Duplicate", DisplayNameKey: "Visual_Duplicate"},
	{Value: string(CycleBackward), DisplayName: "Draw backward link", DisplayNameKey: "Visual_DrawBackwardLink"},
	{Value: string(CycleDuplicateOptimized), DisplayName: "Duplicate optimized", DisplayNameKey: "Visual_DuplicateOptimized"},
}

// CyclesLinkSettings controls cycle and self-link rendering
type CyclesLinkSettings struct {
	format.SimpleCard
	DrawCycles      *format.ItemDropdown
	SelfLinksWeight *format.ToggleSwitch
}

// NewCyclesLinkSettings creates the cycles card
func NewCyclesLinkSettings() *CyclesLinkSettings {
	c := &CyclesLinkSettings{
		DrawCycles: &format.ItemDropdown{
			Properties: format.Properties{
				Name:           "drawCycles",
				DisplayName:    "Duplicate links",
				DisplayNameKey: "Visual_DuplicateLinks",
			},
			Items: cycleDisplayItems,
			Value: cycleDisplayItems[0],
		},
		SelfLinksWeight: &format.ToggleSwitch{
			Properties: format.Properties{
				Name:           "selfLinksWeight",
				DisplayName:    "Ignore self link weight",
				DisplayNameKey: "Visual_SelfLinksWeight",
			},
		},
	}
	c.SimpleCard = format.SimpleCard{
		Name:           "cyclesLinks",
		DisplayName:    "Cycles displaying",
		DisplayNameKey: "Visual_CyclesDisplaying",
		Slices:         []format.Slice{c.DrawCycles, c.SelfLinksWeight},
	}
	return c
}

// Display returns the selected cycle rendering
func (c *CyclesLinkSettings) Display() CycleDisplay {
	return CycleDisplay(c.DrawCycles.Value.Value)
}
