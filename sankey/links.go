package sankey

import (
	"github.com/teranos/sankeyfmt/format"
)

// MatchTarget picks which endpoint a link copies its color from in match mode
type MatchTarget string

const (
	MatchSource      MatchTarget = "source"
	MatchDestination MatchTarget = "destination"
)

// LinkColorMode is the active link-coloring strategy
type LinkColorMode int

const (
	// ModeUniform colors every link through one rule-based control
	ModeUniform LinkColorMode = iota
	// ModeIndividualColors exposes one color control per link
	ModeIndividualColors
	// ModeMatchNodeColors copies each link's color from its source or destination node
	ModeMatchNodeColors
)

func (m LinkColorMode) String() string {
	switch m {
	case ModeUniform:
		return "uniform"
	case ModeIndividualColors:
		return "individual"
	case ModeMatchNodeColors:
		return "match"
	default:
		return "unknown"
	}
}

// ParseLinkColorMode parses the names returned by LinkColorMode.String
func ParseLinkColorMode(s string) (LinkColorMode, bool) {
	switch s {
	case "uniform":
		return ModeUniform, true
	case "individual":
		return ModeIndividualColors, true
	case "match":
		return ModeMatchNodeColors, true
	default:
		return ModeUniform, false
	}
}

var matchTargetItems = []format.Item{
	{Value: string(MatchSource), DisplayName: "Source", DisplayNameKey: "Visual_MatchColorTo_Source"},
	{Value: string(MatchDestination), DisplayName: "Destination", DisplayNameKey: "Visual_MatchColorTo_Destination"},
}

// LinkColorSettings holds the link coloring controls. Its slice list is rebuilt on every
// refresh: the three base controls followed by the controls of the active mode.
type LinkColorSettings struct {
	format.SimpleCard
	MatchNodeColors          *format.ToggleSwitch
	MatchSourceOrDestination *format.ItemDropdown
	SetIndividualColors      *format.ToggleSwitch
}

// NewLinkColorSettings creates the link color card
func NewLinkColorSettings() *LinkColorSettings {
	c := &LinkColorSettings{
		MatchNodeColors: &format.ToggleSwitch{
			Properties: format.Properties{
				Name:           "matchNodeColors",
				DisplayName:    "Match Node Colors",
				DisplayNameKey: "Visual_LinkMatchNodeColors",
			},
			Value: true,
		},
		MatchSourceOrDestination: &format.ItemDropdown{
			Properties: format.Properties{
				Name:           "matchSourceOrDestination",
				DisplayName:    "Match Color To",
				DisplayNameKey: "Visual_MatchColorTo",
			},
			Items: matchTargetItems,
			Value: matchTargetItems[0],
		},
		SetIndividualColors: &format.ToggleSwitch{
			Properties: format.Properties{
				Name:           "setIndividualColors",
				DisplayName:    "Set Individual Colors",
				DisplayNameKey: "Visual_SetIndividualColors",
			},
		},
	}
	c.SimpleCard = format.SimpleCard{
		Name:           "linkColors",
		DisplayName:    "Fill",
		DisplayNameKey: "Visual_LinkColors",
		Slices:         c.baseSlices(),
	}
	return c
}

func (c *LinkColorSettings) baseSlices() []format.Slice {
	return []format.Slice{c.MatchNodeColors, c.MatchSourceOrDestination, c.SetIndividualColors}
}

// Mode returns the active mode. Match node colors wins over individual colors,
// which wins over the uniform default.
func (c *LinkColorSettings) Mode() LinkColorMode {
	switch {
	case c.MatchNodeColors.Value:
		return ModeMatchNodeColors
	case c.SetIndividualColors.Value:
		return ModeIndividualColors
	default:
		return ModeUniform
	}
}

// SetMode switches the toggles so that Mode() returns m
func (c *LinkColorSettings) SetMode(m LinkColorMode) {
	c.MatchNodeColors.Value = m == ModeMatchNodeColors
	c.SetIndividualColors.Value = m == ModeIndividualColors
}

// Target returns the endpoint links match in match mode
func (c *LinkColorSettings) Target() MatchTarget {
	return MatchTarget(c.MatchSourceOrDestination.Value.Value)
}

// DynamicSlices returns the controls generated by the last resolution
func (c *LinkColorSettings) DynamicSlices() []format.Slice {
	base := len(c.baseSlices())
	if len(c.Slices) <= base {
		return nil
	}
	return c.Slices[base:]
}

// LinkOutlineSettings toggles the link outline
type LinkOutlineSettings struct {
	format.SimpleCard
	Draw *format.ToggleSwitch
}

// NewLinkOutlineSettings creates the link outline card
func NewLinkOutlineSettings() *LinkOutlineSettings {
	c := &LinkOutlineSettings{
		Draw: &format.ToggleSwitch{
			Properties: format.Properties{Name: "showLinkOutine", DisplayNameKey: "Visual_ShowLinkOutline"},
			Value:      true,
		},
	}
	c.SimpleCard = format.SimpleCard{
		Name:           "linkOutline",
		DisplayName:    "Outline",
		DisplayNameKey: "Visual_LinkOutline",
		TopLevelSlice:  c.Draw,
	}
	return c
}

// LinksSettings groups the link color and outline cards
type LinksSettings struct {
	format.CompositeCard
	Colors  *LinkColorSettings
	Outline *LinkOutlineSettings
}

// NewLinksSettings creates the links card
func NewLinksSettings() *LinksSettings {
	c := &LinksSettings{
		Colors:  NewLinkColorSettings(),
		Outline: NewLinkOutlineSettings(),
	}
	c.CompositeCard = format.CompositeCard{
		Name:           "links",
		DisplayName:    "Links",
		DisplayNameKey: "Visual_Links",
		Groups:         []format.Section{c.Colors, c.Outline},
	}
	return c
}
