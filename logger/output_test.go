package logger

import "testing"

func TestShouldOutput(t *testing.T) {
	tests := []struct {
		verbosity int
		category  OutputCategory
		want      bool
	}{
		{VerbosityUser, OutputResults, true},
		{VerbosityUser, OutputRefreshSummary, false},
		{VerbosityInfo, OutputRefreshSummary, true},
		{VerbosityInfo, OutputConfig, false},
		{VerbosityDebug, OutputColorMode, true},
		{VerbosityTrace, OutputCardTree, false},
		{VerbosityAll, OutputCardTree, true},
		{VerbosityTrace, OutputCategory(99), false},
	}
	for _, tt := range tests {
		if got := ShouldOutput(tt.verbosity, tt.category); got != tt.want {
			t.Errorf("ShouldOutput(%d, %s) = %t, want %t", tt.verbosity, CategoryName(tt.category), got, tt.want)
		}
	}
}

func TestVerbosityDescription(t *testing.T) {
	if got := VerbosityDescription(9); got != "maximum verbosity" {
		t.Errorf("VerbosityDescription(9) = %q", got)
	}
	if got := CategoryName(OutputCardTree); got != "card-tree" {
		t.Errorf("CategoryName = %q", got)
	}
}
