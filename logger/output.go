package logger

// Output controls what categories of information the CLI shows at each verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
//
// Verbosity Levels:
//
//	0 (default) - User-facing output only: rendered model, errors with hints
//	1 (-v)      - + Refresh summaries, watched paths
//	2 (-vv)     - + Config sources, resolved link color mode
//	3 (-vvv)    - + Per-entity override decisions
//	4 (-vvvv)   - + Full exported card tree dumps

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults OutputCategory = iota // Rendered model, config values
	OutputErrors                        // Errors with hints

	// Level 1 (-v) - Informational
	OutputRefreshSummary // Node, link and generated control counts
	OutputWatch          // Watched paths and reloads

	// Level 2 (-vv) - Detailed
	OutputConfig    // Config values and where they came from
	OutputColorMode // Resolved link color mode and match target

	// Level 3 (-vvv) - Debug
	OutputOverrides // Per-node and per-link control decisions

	// Level 4 (-vvvv) - Full dump
	OutputCardTree // Full exported card tree
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults: VerbosityUser,
	OutputErrors:  VerbosityUser,

	OutputRefreshSummary: VerbosityInfo,
	OutputWatch:          VerbosityInfo,

	OutputConfig:    VerbosityDebug,
	OutputColorMode: VerbosityDebug,

	OutputOverrides: VerbosityTrace,

	OutputCardTree: VerbosityAll,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, default to highest verbosity required
		return verbosity >= VerbosityAll
	}
	return verbosity >= minLevel
}

// categoryNames provides human-readable names for output categories
var categoryNames = map[OutputCategory]string{
	OutputResults:        "results",
	OutputErrors:         "errors",
	OutputRefreshSummary: "refresh-summary",
	OutputWatch:          "watch",
	OutputConfig:         "config",
	OutputColorMode:      "color-mode",
	OutputOverrides:      "overrides",
	OutputCardTree:       "card-tree",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}

// VerbosityDescription returns a description of what's shown at each level
func VerbosityDescription(verbosity int) string {
	switch verbosity {
	case VerbosityUser:
		return "results and errors only"
	case VerbosityInfo:
		return "results, errors and refresh summaries"
	case VerbosityDebug:
		return "above + config sources and color modes"
	case VerbosityTrace:
		return "above + per-entity control decisions"
	case VerbosityAll:
		return "full output including card tree dumps"
	default:
		if verbosity > VerbosityAll {
			return "maximum verbosity"
		}
		return "unknown verbosity level"
	}
}
