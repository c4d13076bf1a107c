package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFillUsesToolchainInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}
	got := fill(Info{Version: "dev", Commit: "none", Date: "unknown"}, bi)
	want := Info{Version: "v0.3.0", Commit: "abc123", Date: "2026-01-02T03:04:05Z"}
	if got != want {
		t.Errorf("fill() = %+v, want %+v", got, want)
	}
}

func TestFillKeepsStampedValues(t *testing.T) {
	bi := &debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	}
	stamped := Info{Version: "v1.0.0", Commit: "deadbeef", Date: "2026-05-01"}
	if got := fill(stamped, bi); got != stamped {
		t.Errorf("fill() = %+v, want %+v", got, stamped)
	}

	dev := fill(Info{Version: "dev", Commit: "none", Date: "unknown"}, bi)
	if dev.Version != "dev" {
		t.Errorf("(devel) main module should keep dev, got %q", dev.Version)
	}
}

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version {{.Version}}") {
		t.Errorf("Template() = %q", tmpl)
	}
	if !strings.Contains(tmpl, "commit: "+Current().Commit) {
		t.Errorf("Template() missing commit: %q", tmpl)
	}
}
