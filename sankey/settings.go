// Package sankey is the formatting-settings model of a Sankey diagram visual.
//
// Settings owns the cards shown in the host's formatting pane. Refresh is the single
// mutation entry point: it derives the per-node and per-link controls from the current data
// and, when links match node colors, writes the resolved colors onto the links.
package sankey

import (
	"go.uber.org/zap"

	"github.com/teranos/sankeyfmt/am"
	"github.com/teranos/sankeyfmt/errors"
	"github.com/teranos/sankeyfmt/format"
	"github.com/teranos/sankeyfmt/graph"
	"github.com/teranos/sankeyfmt/logger"
	"github.com/teranos/sankeyfmt/persist"
)

// Scale is the zoom applied to the diagram; not shown in the pane
type Scale struct {
	X float64 `json:"x" yaml:"x" toml:"x"`
	Y float64 `json:"y" yaml:"y" toml:"y"`
}

// Settings is the complete formatting model. Not safe for concurrent use; the host
// serializes refreshes and edits.
type Settings struct {
	format.Model

	Labels        *DataLabelsSettings
	LinkLabels    *LinkLabelsSettings
	Links         *LinksSettings
	Nodes         *NodesSettings
	ScaleSettings *ScaleSettings
	Cycles        *CyclesLinkSettings
	NodeComplex   *NodeComplexSettings

	Scale Scale
	Sort  string

	fallbackLinkColor string
	codec             *persist.Codec
	logger            *zap.SugaredLogger
}

// NewSettings creates a model holding the default value of every control
func NewSettings(log *zap.SugaredLogger) *Settings {
	if log == nil {
		log = logger.ComponentLogger("sankey")
	}
	s := &Settings{
		Labels:            NewDataLabelsSettings(DefaultFontSize),
		LinkLabels:        NewLinkLabelsSettings(DefaultLinkLabelFontSize),
		Links:             NewLinksSettings(),
		Nodes:             NewNodesSettings(DefaultNodeWidth),
		ScaleSettings:     NewScaleSettings(),
		Cycles:            NewCyclesLinkSettings(),
		NodeComplex:       NewNodeComplexSettings(),
		Scale:             Scale{X: 1, Y: 1},
		fallbackLinkColor: graph.DefaultLinkColor,
		logger:            log.Named("sankey.settings"),
	}
	s.codec = persist.NewCodec(s.logger.Named("persist"))
	s.Model = format.Model{Cards: []format.Card{
		s.Labels,
		s.LinkLabels,
		s.Links,
		s.Nodes,
		s.ScaleSettings,
		s.Cycles,
		s.NodeComplex,
	}}
	return s
}

// NewSettingsFromConfig creates a model whose initial values come from cfg.
// Out-of-range numbers are clamped; an unknown match target is an error.
func NewSettingsFromConfig(cfg am.FormatConfig, log *zap.SugaredLogger) (*Settings, error) {
	s := NewSettings(log)

	s.Labels.Font.FontSize.SetValue(cfg.FontSize)
	s.LinkLabels.Font.FontSize.SetValue(cfg.LinkLabelFontSize)
	if cfg.FontFamily != "" {
		s.Labels.Font.FontFamily.Value = cfg.FontFamily
		s.LinkLabels.Font.FontFamily.Value = cfg.FontFamily
	}
	s.Nodes.NodeWidth.SetValue(cfg.NodeWidth)
	s.Nodes.ShowAll.Value = cfg.ShowAllNodes
	s.Links.Colors.MatchNodeColors.Value = cfg.MatchNodeColors
	s.Links.Colors.SetIndividualColors.Value = cfg.IndividualColors
	if cfg.MatchTarget != "" {
		if err := s.Links.Colors.MatchSourceOrDestination.Select(cfg.MatchTarget); err != nil {
			return nil, errors.Wrap(err, "format.match_target")
		}
	}
	if cfg.FallbackLinkColor != "" {
		s.fallbackLinkColor = cfg.FallbackLinkColor
	}

	s.logger.Debugw("settings created from config",
		logger.FieldMode, s.Links.Colors.Mode().String(),
		logger.FieldTarget, s.Links.Colors.Target(),
	)
	return s, nil
}

// FallbackLinkColor is the uniform link color used when there are no links to seed it
func (s *Settings) FallbackLinkColor() string {
	return s.fallbackLinkColor
}

// Refresh regenerates the data-driven controls: node color overrides first, then link
// colors. In match mode the links' FillColor is overwritten from their endpoints.
// An error means a contract violation; the node overrides are still applied.
func (s *Settings) Refresh(nodes []*graph.Node, links []*graph.Link) error {
	added := s.Nodes.PopulateNodeColorOverrides(nodes)

	colors := s.Links.Colors
	mode := colors.Mode()
	if err := colors.ResolveLinkColors(links, s.fallbackLinkColor); err != nil {
		s.logger.Errorw("link color resolution failed",
			logger.FieldMode, mode.String(),
			logger.FieldTarget, colors.Target(),
			logger.FieldError, err,
		)
		return errors.Wrap(err, "resolve link colors")
	}

	s.logger.Debugw("settings refreshed",
		logger.FieldNodeCount, len(nodes),
		logger.FieldLinkCount, len(links),
		logger.FieldAdded, added,
		logger.FieldMode, mode.String(),
		logger.FieldSliceCount, len(colors.DynamicSlices()),
	)
	return nil
}

// LabelStyle returns the node label font settings
func (s *Settings) LabelStyle() Style {
	return s.Labels.Font.Style()
}

// LinkLabelStyle returns the link label font settings
func (s *Settings) LinkLabelStyle() Style {
	return s.LinkLabels.Font.Style()
}

// NodePositions decodes the persisted node positions. Malformed state yields an empty list.
func (s *Settings) NodePositions() []persist.NodePosition {
	return s.codec.DecodeNodePositions(s.NodeComplex.Persist.NodePositions.Value)
}

// SetNodePositions persists positions
func (s *Settings) SetNodePositions(positions []persist.NodePosition) {
	s.NodeComplex.Persist.NodePositions.Value = persist.EncodeNodePositions(positions)
}

// ViewportSize decodes the persisted viewport. Malformed state yields the zero value.
func (s *Settings) ViewportSize() persist.ViewportSize {
	return s.codec.DecodeViewportSize(s.NodeComplex.Persist.ViewportSize.Value)
}

// SetViewportSize persists the viewport
func (s *Settings) SetViewportSize(size persist.ViewportSize) {
	s.NodeComplex.Persist.ViewportSize.Value = persist.EncodeViewportSize(size)
}

// ResetLayout discards user-dragged node positions, as the reset button does
func (s *Settings) ResetLayout() {
	s.SetNodePositions(nil)
	s.SetViewportSize(persist.ViewportSize{})
	s.Scale = Scale{X: 1, Y: 1}
	s.logger.Debugw("layout reset")
}
