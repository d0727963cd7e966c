package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"Warning", LevelWarn},
		{"error", LevelError},
		{" error ", LevelError},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn)
	l.SetOutput(&buf)

	l.Debug("hidden %d", 1)
	l.Info("hidden %d", 2)
	l.Warn("shown %d", 3)
	l.Error("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered lines: %q", out)
	}
	if !strings.Contains(out, "[WARN] shown 3") || !strings.Contains(out, "[ERROR] shown 4") {
		t.Errorf("output missing lines: %q", out)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	root := New(LevelDebug)
	root.SetOutput(&buf)

	sim := root.With("sim")
	sim.Info("stepped %d planets", 7)
	sim.With("events").Debug("periapsis")

	out := buf.String()
	if !strings.Contains(out, "[INFO] sim: stepped 7 planets") {
		t.Errorf("missing scoped line: %q", out)
	}
	if !strings.Contains(out, "[DEBUG] sim.events: periapsis") {
		t.Errorf("missing nested scope: %q", out)
	}

	// Scopes share the parent's level.
	root.SetLevel(LevelError)
	if sim.Enabled(LevelInfo) {
		t.Error("child scope ignored parent level change")
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	for _, lvl := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		if l.Enabled(lvl) {
			t.Errorf("Discard logger enabled at %v", lvl)
		}
	}
	l.Error("nothing %s", "happens")
	l.With("x").Info("still nothing")
}

func TestLevelString(t *testing.T) {
	if got := Level(42).String(); got != "UNKNOWN" {
		t.Errorf("Level(42).String() = %q", got)
	}
}
