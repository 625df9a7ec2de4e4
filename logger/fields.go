package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across sankeyfmt.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"
	FieldOperation = "operation"

	// Formatting model
	FieldCard     = "card"
	FieldGroup    = "group"
	FieldSlice    = "slice"
	FieldMode     = "mode"
	FieldTarget   = "match_target"
	FieldSelector = "selector"
	FieldValue    = "value"

	// Entities
	FieldNodeCount  = "node_count"
	FieldLinkCount  = "link_count"
	FieldSliceCount = "slice_count"
	FieldAdded      = "added"

	// Persisted state
	FieldField = "field"
	FieldSize  = "size"

	// Errors
	FieldError = "error"

	// Files
	FieldFile = "file"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	settings := &Settings{
//	    logger: logger.ComponentLogger("sankey.settings"),
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	if Logger == nil {
		return zap.NewNop().Sugar().Named(name)
	}
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
// Example:
//
//	cardLogger := logger.ChildLogger(baseLogger, logger.FieldCard, "linkColors")
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
