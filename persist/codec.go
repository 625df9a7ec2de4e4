// Package persist encodes the layout state a Sankey visual keeps between sessions.
//
// Both blobs are JSON stored in hidden text settings. Coordinates and sizes are written as
// decimal strings, which is how saved reports carry them; numbers are accepted on decode.
package persist

import (
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/sankeyfmt/errors"
	"github.com/teranos/sankeyfmt/internal/util"
	"github.com/teranos/sankeyfmt/logger"
)

const (
	emptyPositions = "[]"
	emptyViewport  = "{}"
)

// NodePosition is the saved location of a node the user dragged
type NodePosition struct {
	Name string  `json:"name"`
	X    float64 `json:"x,string"`
	Y    float64 `json:"y,string"`
}

// ViewportSize is the visual's size when positions were saved. Absent members stay nil.
// Members are kept as the text the host wrote, so any string round-trips.
type ViewportSize struct {
	Height *string `json:"height,omitempty"`
	Width  *string `json:"width,omitempty"`
}

// IsZero reports whether neither dimension is set
func (v ViewportSize) IsZero() bool {
	return v.Height == nil && v.Width == nil
}

type positionWire struct {
	Name string      `json:"name"`
	X    json.Number `json:"x"`
	Y    json.Number `json:"y"`
}

type viewportWire struct {
	Height json.RawMessage `json:"height"`
	Width  json.RawMessage `json:"width"`
}

// EncodeNodePositions renders positions in the persisted form. Nil or empty yields "[]".
func EncodeNodePositions(positions []NodePosition) string {
	if len(positions) == 0 {
		return emptyPositions
	}
	data, err := json.Marshal(positions)
	if err != nil {
		// Only non-finite coordinates reach here
		return emptyPositions
	}
	return string(data)
}

// ParseNodePositions decodes persisted positions. Empty text is an empty list.
func ParseNodePositions(text string) ([]NodePosition, error) {
	if strings.TrimSpace(text) == "" {
		return []NodePosition{}, nil
	}
	var wire []positionWire
	if err := json.Unmarshal([]byte(text), &wire); err != nil {
		return nil, errors.WrapMalformedState(err, "nodePositions")
	}
	positions := make([]NodePosition, 0, len(wire))
	for i, w := range wire {
		x, err := w.X.Float64()
		if err != nil {
			return nil, errors.Wrapf(errors.WrapMalformedState(err, "nodePositions"), "position %d x", i)
		}
		y, err := w.Y.Float64()
		if err != nil {
			return nil, errors.Wrapf(errors.WrapMalformedState(err, "nodePositions"), "position %d y", i)
		}
		positions = append(positions, NodePosition{Name: w.Name, X: x, Y: y})
	}
	return positions, nil
}

// EncodeViewportSize renders the viewport in the persisted form. The zero value yields "{}".
func EncodeViewportSize(size ViewportSize) string {
	if size.IsZero() {
		return emptyViewport
	}
	data, err := json.Marshal(size)
	if err != nil {
		return emptyViewport
	}
	return string(data)
}

// ParseViewportSize decodes a persisted viewport. Empty text is the zero value.
// Each member is a string or a number and decodes on its own: a bad member is reported
// as malformed while the other member is still returned.
func ParseViewportSize(text string) (ViewportSize, error) {
	if strings.TrimSpace(text) == "" {
		return ViewportSize{}, nil
	}
	var wire viewportWire
	if err := json.Unmarshal([]byte(text), &wire); err != nil {
		return ViewportSize{}, errors.WrapMalformedState(err, "viewportSize")
	}

	var size ViewportSize
	var firstErr error
	height, err := decodeDimension(wire.Height)
	if err != nil {
		firstErr = errors.Wrap(errors.WrapMalformedState(err, "viewportSize"), "height")
	}
	size.Height = height
	width, err := decodeDimension(wire.Width)
	if err != nil && firstErr == nil {
		firstErr = errors.Wrap(errors.WrapMalformedState(err, "viewportSize"), "width")
	}
	size.Width = width
	return size, firstErr
}

// decodeDimension reads one viewport member. Strings are kept verbatim, numbers keep
// their literal text, and an absent or null member is nil.
func decodeDimension(raw json.RawMessage) (*string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return &text, nil
	}
	var number json.Number
	if err := json.Unmarshal(raw, &number); err != nil {
		return nil, err
	}
	return util.Ptr(number.String()), nil
}

// Codec decodes persisted state leniently: malformed text is logged and treated as empty
// so a corrupt saved report never blocks rendering.
type Codec struct {
	logger *zap.SugaredLogger
}

// NewCodec creates a codec logging through log (or the persist component logger if nil)
func NewCodec(log *zap.SugaredLogger) *Codec {
	if log == nil {
		log = logger.ComponentLogger("persist")
	}
	return &Codec{logger: log}
}

// DecodeNodePositions returns the saved positions, or an empty list if text is malformed
func (c *Codec) DecodeNodePositions(text string) []NodePosition {
	positions, err := ParseNodePositions(text)
	if err != nil {
		c.logger.Warnw("discarding malformed persisted state",
			logger.FieldField, "nodePositions",
			logger.FieldSize, len(text),
			logger.FieldError, err,
		)
		return []NodePosition{}
	}
	return positions
}

// DecodeViewportSize returns the saved viewport. A malformed member is logged and dropped;
// text that is not an object yields the zero value.
func (c *Codec) DecodeViewportSize(text string) ViewportSize {
	size, err := ParseViewportSize(text)
	if err != nil {
		c.logger.Warnw("discarding malformed persisted state",
			logger.FieldField, "viewportSize",
			logger.FieldSize, len(text),
			logger.FieldError, err,
		)
	}
	return size
}
