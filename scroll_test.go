package viewstate

import (
	"math"
	"testing"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		name            string
		top, start, end float64
		want            float64
	}{
		{"before start", 0, 100, 300, 0},
		{"at start", 100, 100, 300, 0},
		{"middle", 200, 100, 300, 0.5},
		{"at end", 300, 100, 300, 1},
		{"past end", 1000, 100, 300, 1},
		{"zero length before", 50, 100, 100, 0},
		{"zero length after", 150, 100, 100, 0},
		{"reversed range", 200, 300, 100, 0.5},
		{"infinite top", math.Inf(1), 0, 100, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.top, tt.start, tt.end); got != tt.want {
				t.Errorf("Progress(%v, %v, %v) = %v, want %v", tt.top, tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestProgressAlwaysInRange(t *testing.T) {
	for top := -500.0; top <= 1500; top += 37 {
		for _, r := range []TriggerRegion{{0, 1000}, {200, 200}, {800, 100}, {-50, 50}} {
			p := Progress(top, r.Start, r.End)
			if p < 0 || p > 1 || math.IsNaN(p) {
				t.Fatalf("Progress(%v, %v, %v) = %v", top, r.Start, r.End, p)
			}
		}
	}
}

func TestRegionOnScrollTickIdempotent(t *testing.T) {
	r := &Region{Trigger: TriggerRegion{Start: 100, End: 500}}
	m := ViewportMetrics{ScrollY: 333, Width: 800, Height: 600}
	a := r.OnScrollTick(m)
	b := r.OnScrollTick(m)
	if a != b || r.Progress() != a {
		t.Errorf("first %v, second %v, stored %v", a, b, r.Progress())
	}
}

func TestParseTriggerPosition(t *testing.T) {
	tests := []struct {
		in   string
		want TriggerPosition
	}{
		{"top bottom", TopBottom},
		{"bottom top", BottomTop},
		{"top top", TopTop},
		{"top", TopTop},
		{"top 80%", TriggerPosition{Element: 0, Viewport: 0.8}},
		{"center center", TriggerPosition{Element: 0.5, Viewport: 0.5}},
		{"25% 100px", TriggerPosition{Element: 0.25, ViewportPx: 100}},
		{"-50px  bottom", TriggerPosition{ElementPx: -50, Viewport: 1}},
		{"20 top", TriggerPosition{ElementPx: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTriggerPosition(tt.in)
			if err != nil {
				t.Fatalf("ParseTriggerPosition(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseTriggerPosition(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTriggerPositionErrors(t *testing.T) {
	for _, in := range []string{"", "   ", "top bottom center", "middle", "top x%", "abcpx"} {
		if _, err := ParseTriggerPosition(in); err == nil {
			t.Errorf("ParseTriggerPosition(%q) should fail", in)
		}
	}
}

func TestRegionFromElement(t *testing.T) {
	const viewportH = 1000
	tests := []struct {
		name       string
		start, end TriggerPosition
		want       TriggerRegion
	}{
		// Element at 2000..2500.
		{"parallax", TopBottom, BottomTop, TriggerRegion{Start: 1000, End: 2500}},
		{"pinned", TopTop, BottomTop, TriggerRegion{Start: 2000, End: 2500}},
		{"reveal", TriggerPosition{Viewport: 0.8}, TriggerPosition{Viewport: 0.8}, TriggerRegion{Start: 1200, End: 1200}},
		{"pixel offsets", TriggerPosition{ElementPx: 100, Viewport: 1}, TriggerPosition{Element: 1, ViewportPx: -100}, TriggerRegion{Start: 1100, End: 2600}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RegionFromElement(2000, 500, viewportH, tt.start, tt.end)
			if got != tt.want {
				t.Errorf("RegionFromElement = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRegionOnEnterAfterEntered(t *testing.T) {
	r := &Region{Trigger: TriggerRegion{Start: 0, End: 100}}
	if !r.tick(ViewportMetrics{ScrollY: 10}) {
		t.Fatal("first tick past start should report entered")
	}
	if r.tick(ViewportMetrics{ScrollY: 20}) {
		t.Error("second tick should not report entered again")
	}

	var v float64
	tl := NewTimeline().FromTo(&v, 0, 1, 1, nil)
	r.OnEnter(tl)
	if !tl.Playing() {
		t.Error("OnEnter on an entered region should play immediately")
	}
}

func TestRegionScrubFollowsProgress(t *testing.T) {
	r := &Region{Trigger: TriggerRegion{Start: 0, End: 200}}
	var x float64
	tl := NewTimeline().FromTo(&x, 0, 10, 2, nil)
	tl.Play()
	r.Scrub(tl)
	if tl.Playing() {
		t.Error("Scrub should pause the timeline")
	}

	for _, tt := range []struct{ scroll, want float64 }{{50, 2.5}, {200, 10}, {0, 0}, {-100, 0}, {400, 10}} {
		r.tick(ViewportMetrics{ScrollY: tt.scroll})
		if x != tt.want {
			t.Errorf("scroll %v: x = %v, want %v", tt.scroll, x, tt.want)
		}
	}
}
