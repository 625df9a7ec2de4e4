package version

import (
	"strings"
	"testing"
)

func TestInfoString(t *testing.T) {
	info := Info{CommitHash: "abc1234def", BuildTime: "2026-01-01", Version: "dev"}
	if got := info.String(); !strings.HasPrefix(got, "sankeyfmt dev (commit abc1234def") {
		t.Errorf("String() = %q", got)
	}

	info.Version = "v0.3.0"
	if got := info.String(); !strings.HasPrefix(got, "sankeyfmt v0.3.0") {
		t.Errorf("String() = %q", got)
	}

	if got := info.Short(); got != "abc1234" {
		t.Errorf("Short() = %q, want abc1234", got)
	}
	if got := (Info{CommitHash: "dev"}).Short(); got != "dev" {
		t.Errorf("Short() = %q, want dev", got)
	}
}

func TestGet(t *testing.T) {
	info := Get()
	if info.GoVersion == "" || !strings.Contains(info.Platform, "/") {
		t.Errorf("Get() missing runtime details: %+v", info)
	}
}
