package graph

import (
	"go.uber.org/zap"
)

// Builder builds diagrams from flow records
type Builder struct {
	palette []string
	logger  *zap.SugaredLogger
}

// NewBuilder creates a new diagram builder.
// An empty palette falls back to the default node palette.
func NewBuilder(palette []string, logger *zap.SugaredLogger) *Builder {
	if len(palette) == 0 {
		palette = defaultPalette
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Builder{
		palette: palette,
		logger:  logger.Named("graph.builder"),
	}
}
