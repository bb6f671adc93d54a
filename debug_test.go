package reveal

import (
	"bytes"
	"strings"
	"testing"
)

func TestDebugLogsTickStats(t *testing.T) {
	a := NewAnimator()
	var buf bytes.Buffer
	a.SetDebugOutput(&buf)
	a.SetDebugMode(true)

	mustElement(t, a, "el", FadeUp, OnMount())
	_ = a.Observe("el", nil)
	a.Tick(0.1)

	out := buf.String()
	if !strings.HasPrefix(out, "[reveal] ") {
		t.Fatalf("output = %q, want [reveal] prefix", out)
	}
	if !strings.Contains(out, "fired: 1") || !strings.Contains(out, "active: 1") {
		t.Errorf("output = %q, want fired and active counts", out)
	}
}

func TestDebugReportsDroppedEvents(t *testing.T) {
	a := NewAnimator()
	var buf bytes.Buffer
	a.SetDebugOutput(&buf)
	a.SetDebugMode(true)

	a.ReportIntersection("gone", 1)
	a.Tick(0)
	if !strings.Contains(buf.String(), `dropped event for node "gone"`) {
		t.Errorf("output = %q", buf.String())
	}
}

func TestDebugSilentByDefault(t *testing.T) {
	a := NewAnimator()
	var buf bytes.Buffer
	a.SetDebugOutput(&buf)
	a.ReportIntersection("gone", 1)
	a.Tick(1)
	if buf.Len() != 0 {
		t.Errorf("debug output without debug mode: %q", buf.String())
	}
}
