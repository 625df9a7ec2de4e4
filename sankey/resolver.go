package sankey

import (
	"github.com/teranos/sankeyfmt/errors"
	"github.com/teranos/sankeyfmt/format"
	"github.com/teranos/sankeyfmt/graph"
)

// ResolveLinkColors rebuilds the card's controls for the current mode and, in match mode,
// writes each link's fill color from its chosen endpoint.
// fallbackColor seeds the uniform control when there are no links.
func (c *LinkColorSettings) ResolveLinkColors(links []*graph.Link, fallbackColor string) error {
	return c.resolveLinkColors(links, c.Mode(), c.Target(), fallbackColor)
}

// resolveLinkColors always discards the previously generated controls before applying the
// mode, so per-link or per-match controls never survive a mode change. Entity colors are only
// written in match mode; other modes leave them to the edit write-back pass.
func (c *LinkColorSettings) resolveLinkColors(links []*graph.Link, mode LinkColorMode, target MatchTarget, fallbackColor string) error {
	c.Slices = c.baseSlices()
	c.MatchSourceOrDestination.SetVisible(false)
	c.SetIndividualColors.SetVisible(true)

	switch mode {
	case ModeMatchNodeColors:
		if target != MatchSource && target != MatchDestination {
			return errors.AssertionFailedf("match node colors with unknown target %q", target)
		}
		c.SetIndividualColors.SetVisible(false)
		c.MatchSourceOrDestination.SetVisible(true)
		for _, link := range links {
			matchEndpointColor(link, target)
		}

	case ModeIndividualColors:
		for _, link := range links {
			if link == nil {
				continue
			}
			owner := link.SelectionID
			if owner.IsZero() {
				owner = graph.NewSelectionID(graph.KindLink, link.Label())
			}
			c.Slices = append(c.Slices, &format.ColorPicker{
				Properties: format.Properties{
					Name:        "fill",
					DisplayName: link.Label(),
					Selector:    graph.NormalizeSelector(owner),
				},
				Value: link.FillColor,
			})
		}

	case ModeUniform:
		c.Slices = append(c.Slices, &format.ColorPicker{
			Properties: format.Properties{
				Name:           "fill",
				DisplayName:    "Link Color",
				DisplayNameKey: "Visual_LinkColor",
				Selector:       graph.WildcardSelector(graph.MatchInstancesAndTotals),
			},
			Value:        uniformSeedColor(links, fallbackColor),
			InstanceKind: format.InstanceConstantOrRule,
		})

	default:
		return errors.AssertionFailedf("unknown link color mode %d", int(mode))
	}
	return nil
}

// matchEndpointColor copies the target endpoint's color onto link.
// A missing endpoint or an endpoint without a color leaves the link's prior color.
func matchEndpointColor(link *graph.Link, target MatchTarget) {
	if link == nil {
		return
	}
	endpoint := link.Source
	if target == MatchDestination {
		endpoint = link.Destination
	}
	if endpoint == nil || endpoint.FillColor == "" {
		return
	}
	link.FillColor = endpoint.FillColor
}

// uniformSeedColor is the first link's current color, even when that color is empty.
// The fallback only applies when there is no first link.
func uniformSeedColor(links []*graph.Link, fallbackColor string) string {
	if len(links) > 0 && links[0] != nil {
		return links[0].FillColor
	}
	if fallbackColor == "" {
		return graph.DefaultLinkColor
	}
	return fallbackColor
}
