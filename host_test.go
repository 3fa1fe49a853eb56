package viewstate

import (
	"math"
	"testing"
	"time"
)

// fakeHost records what a model binding pushes.
type fakeHost struct {
	sources   []string
	rotations []float64
	scales    []float64
}

func (h *fakeHost) SetModelSource(src string) { h.sources = append(h.sources, src) }
func (h *fakeHost) SetRotation(yaw float64)   { h.rotations = append(h.rotations, yaw) }
func (h *fakeHost) SetScale(s float64)        { h.scales = append(h.scales, s) }

func (h *fakeHost) lastRotation() float64 {
	if len(h.rotations) == 0 {
		return math.NaN()
	}
	return h.rotations[len(h.rotations)-1]
}

func TestResponsiveScale(t *testing.T) {
	tests := []struct {
		width float64
		want  float64
	}{
		{320, 1},
		{1023, 1},
		{1024, 3},
		{1920, 3},
	}
	for _, tt := range tests {
		if got := DefaultResponsiveScale.For(tt.width); got != tt.want {
			t.Errorf("For(%v) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestBindModelPushesSelection(t *testing.T) {
	c, _ := newTestController(t)
	addColorWidget(t, c)
	host := &fakeHost{}
	b, err := c.BindModel("color", host, ModelConfig{
		Sources: []string{"red.glb", "blue.glb", "green.glb", "black.glb"},
		Scale:   DefaultResponsiveScale,
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(host.sources) != 1 || host.sources[0] != "red.glb" {
		t.Errorf("initial sources = %v", host.sources)
	}
	if len(host.scales) != 1 || host.scales[0] != 3 {
		t.Errorf("initial scales = %v", host.scales)
	}

	c.SelectIndex("color", 2)
	if host.sources[len(host.sources)-1] != "green.glb" {
		t.Errorf("sources = %v", host.sources)
	}

	c.Rotate("color", Right)
	if got := host.lastRotation(); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Errorf("yaw = %v, want π/2", got)
	}
	if b.Yaw() != host.lastRotation() {
		t.Errorf("Yaw() = %v, host has %v", b.Yaw(), host.lastRotation())
	}

	c.Resize(800, 600)
	if host.scales[len(host.scales)-1] != 1 {
		t.Errorf("scales = %v", host.scales)
	}

	// Nothing changed, nothing pushed.
	n := len(host.sources) + len(host.rotations) + len(host.scales)
	c.Update(16 * time.Millisecond)
	if m := len(host.sources) + len(host.rotations) + len(host.scales); m != n {
		t.Errorf("idle frame pushed %d updates", m-n)
	}
}

func TestBindModelAutoRotatePausesWhileSuspended(t *testing.T) {
	c, _ := newTestController(t)
	addColorWidget(t, c)
	host := &fakeHost{}
	b, _ := c.BindModel("color", host, ModelConfig{AutoRotateSpeed: 1})

	c.Update(time.Second)
	if math.Abs(b.AutoYaw()-1) > 1e-9 {
		t.Fatalf("AutoYaw = %v, want 1", b.AutoYaw())
	}

	c.RegisterInteraction("color")
	c.Update(2 * time.Second)
	if math.Abs(b.AutoYaw()-1) > 1e-9 {
		t.Errorf("AutoYaw while suspended = %v, want 1", b.AutoYaw())
	}

	c.Update(3*time.Second - time.Millisecond) // t=5.999s
	if math.Abs(b.AutoYaw()-1) > 1e-9 {
		t.Errorf("AutoYaw before resume = %v, want 1", b.AutoYaw())
	}

	c.Update(time.Millisecond) // resume fires at t=6s
	c.Update(time.Second)
	if math.Abs(b.AutoYaw()-2.001) > 1e-9 {
		t.Errorf("AutoYaw after resume = %v, want 2.001", b.AutoYaw())
	}
	if math.Abs(host.lastRotation()-b.AutoYaw()) > 1e-9 {
		t.Errorf("host yaw = %v, want %v", host.lastRotation(), b.AutoYaw())
	}
}

func TestBindModelUnknownWidget(t *testing.T) {
	c, _ := newTestController(t)
	if _, err := c.BindModel("missing", &fakeHost{}, ModelConfig{}); err == nil {
		t.Error("expected error")
	}
}

func TestBindModelReleasedOnClose(t *testing.T) {
	c := New(Config{})
	c.AddWidget(WidgetConfig{ID: "m", OptionCount: 2})
	host := &fakeHost{}
	c.BindModel("m", host, ModelConfig{Sources: []string{"a", "b"}})
	c.Close()

	n := len(host.sources)
	c.SelectIndex("m", 1)
	if len(host.sources) != n {
		t.Error("host updated after Close")
	}
}
