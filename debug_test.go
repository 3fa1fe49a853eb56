package viewstate

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected and returns what was written.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_StaleResume(t *testing.T) {
	c := New(Config{Debug: true})
	c.AddWidget(WidgetConfig{ID: "model", OptionCount: 1})

	output := captureStderr(t, func() {
		c.RegisterInteraction("model")
		c.RegisterInteraction("model")
		c.OnResumeTimeout("model", 1)
	})

	if !strings.Contains(output, "[viewstate]") {
		t.Errorf("expected [viewstate] prefix, got: %q", output)
	}
	if !strings.Contains(output, "dropped stale resume, generation 1") {
		t.Errorf("expected stale resume line, got: %q", output)
	}
	c.Close()
}

func TestDebugMode_InvalidSelection(t *testing.T) {
	c := New(Config{})
	c.SetDebugMode(true)
	c.AddWidget(WidgetConfig{ID: "color", OptionCount: 4})

	output := captureStderr(t, func() {
		c.SelectIndex("color", 9)
	})
	if !strings.Contains(output, "invalid selection 9") {
		t.Errorf("expected invalid selection line, got: %q", output)
	}
	c.Close()
}

func TestDebugMode_Teardown(t *testing.T) {
	c := New(Config{Debug: true})
	c.AddWidget(WidgetConfig{ID: "color", OptionCount: 4})
	c.OnEvent(EventSelect, func(Event) {})

	output := captureStderr(t, c.Close)
	if !strings.Contains(output, "closed, released 3 resources") {
		t.Errorf("expected teardown line, got: %q", output)
	}
	if !strings.Contains(output, "handler:select") || !strings.Contains(output, "widget:color") {
		t.Errorf("expected released resource names, got: %q", output)
	}
}

func TestDebugMode_Disabled(t *testing.T) {
	c := New(Config{})
	c.AddWidget(WidgetConfig{ID: "color", OptionCount: 4})

	output := captureStderr(t, func() {
		c.SelectIndex("color", 9)
		c.RegisterInteraction("color")
		c.Close()
	})
	if output != "" {
		t.Errorf("expected no output with debug disabled, got: %q", output)
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		t    EventType
		want string
	}{
		{EventSelect, "select"},
		{EventRotate, "rotate"},
		{EventSuspend, "suspend"},
		{EventResume, "resume"},
		{EventRegionEnter, "region-enter"},
		{EventHover, "hover"},
		{EventUnhover, "unhover"},
		{EventToggle, "toggle"},
		{eventTypeCount, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.t, got, tt.want)
		}
	}
	if Left.String() != "left" || Right.String() != "right" {
		t.Errorf("Direction strings = %q, %q", Left, Right)
	}
}

func TestSelectionErrorMessage(t *testing.T) {
	err := &SelectionError{Widget: "color", Index: -1, Count: 4}
	want := `viewstate: invalid selection -1 for widget "color" (options: 4)`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
