package viewstate

import (
	"testing"

	"github.com/tanema/gween/ease"
)

// --- HitShape tests ---

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 25}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"on circumference", 75, 50, true},
		{"inside", 60, 50, true},
		{"outside", 80, 50, false},
		{"outside diagonal", 70, 70, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitCircle.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitPolygonContains(t *testing.T) {
	// Diamond: (50,0), (100,50), (50,100), (0,50)
	p := HitPolygon{Points: []Vec2{
		{50, 0}, {100, 50}, {50, 100}, {0, 50},
	}}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"vertex", 50, 0, true},
		{"near corner of bounds", 5, 5, false},
		{"outside", 101, 50, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitPolygon.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitPolygonContains_ReversedWinding(t *testing.T) {
	p := HitPolygon{Points: []Vec2{
		{0, 100}, {100, 100}, {100, 0}, {0, 0},
	}}
	if !p.Contains(50, 50) {
		t.Error("reversed winding should still contain center")
	}
	if p.Contains(150, 50) {
		t.Error("reversed winding should not contain outside point")
	}
}

func TestHitPolygonTooFewPoints(t *testing.T) {
	p := HitPolygon{Points: []Vec2{{0, 0}, {10, 10}}}
	if p.Contains(5, 5) {
		t.Error("a polygon with two points contains nothing")
	}
}

func TestHotspotContains(t *testing.T) {
	shape := HitRect{X: 0, Y: 1000, Width: 200, Height: 100}
	tests := []struct {
		name    string
		fixed   bool
		sx, sy  float64
		scrollY float64
		want    bool
	}{
		{"scrolled into view", false, 10, 50, 1000, true},
		{"not scrolled", false, 10, 50, 0, false},
		{"fixed ignores scroll", true, 10, 1050, 900, true},
		{"fixed miss", true, 10, 50, 1000, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Hotspot{Shape: shape, Fixed: tt.fixed}
			if got := h.contains(tt.sx, tt.sy, tt.scrollY); got != tt.want {
				t.Errorf("contains = %v, want %v", got, tt.want)
			}
		})
	}

	if (&Hotspot{}).contains(0, 0, 0) {
		t.Error("hotspot without a shape contains nothing")
	}
}

// --- Cursor state ---

func TestCursorScale(t *testing.T) {
	tests := []struct {
		name  string
		state InteractionState
		want  float64
	}{
		{"idle", InteractionState{}, 1},
		{"pressed", InteractionState{Down: true}, 0.75},
		{"hover", InteractionState{HoveringInteractive: true}, 1.5},
		{"hover wins", InteractionState{Down: true, HoveringInteractive: true}, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.CursorScale(); got != tt.want {
				t.Errorf("CursorScale = %v, want %v", got, tt.want)
			}
		})
	}
}

// --- Followers ---

func TestFollowerReachesTarget(t *testing.T) {
	f := NewFollower(0.5, ease.Linear)
	f.Retarget(100, 50)
	if f.Settled() {
		t.Fatal("settled right after Retarget")
	}

	f.Update(0.25)
	if f.X != 50 || f.Y != 25 {
		t.Errorf("halfway = (%v, %v), want (50, 25)", f.X, f.Y)
	}
	f.Update(0.25)
	if f.X != 100 || f.Y != 50 || !f.Settled() {
		t.Errorf("end = (%v, %v) settled=%v", f.X, f.Y, f.Settled())
	}
}

func TestFollowerRetargetFromCurrent(t *testing.T) {
	f := NewFollower(1, ease.Linear)
	f.Retarget(100, 0)
	f.Update(0.5) // x = 50
	f.Retarget(0, 0)
	f.Update(0.5)
	if f.X != 25 {
		t.Errorf("X = %v, want 25 (halfway from 50 back to 0)", f.X)
	}
}

func TestFollowerSnapAndZeroDuration(t *testing.T) {
	f := NewFollower(1, nil)
	f.Retarget(10, 10)
	f.Snap(3, 4)
	if f.X != 3 || f.Y != 4 || !f.Settled() {
		t.Errorf("after Snap: (%v, %v) settled=%v", f.X, f.Y, f.Settled())
	}

	z := NewFollower(0, nil)
	z.Retarget(7, 8)
	if z.X != 7 || z.Y != 8 || !z.Settled() {
		t.Errorf("zero duration: (%v, %v) settled=%v", z.X, z.Y, z.Settled())
	}
}
