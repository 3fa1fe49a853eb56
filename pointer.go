package viewstate

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// InteractionState is the pointer-derived cursor state.
type InteractionState struct {
	Position            Vec2
	Down                bool
	HoveringInteractive bool
	Visible             bool
}

// Cursor scale factors applied by CursorScale.
const (
	cursorScalePressed = 0.75
	cursorScaleHover   = 1.5
)

// CursorScale returns the cursor scale for the state: 1.5 while hovering an
// interactive hotspot, 0.75 while pressed, 1 otherwise. Hover wins when both
// apply.
func (s InteractionState) CursorScale() float64 {
	switch {
	case s.HoveringInteractive:
		return cursorScaleHover
	case s.Down:
		return cursorScalePressed
	default:
		return 1
	}
}

// --- Built-in HitShape types ---

// HitShape is a hit area in document coordinates (screen position plus
// scroll offset).
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	var positive, negative bool
	for i := 0; i < n; i++ {
		x1 := p.Points[i].X
		y1 := p.Points[i].Y
		j := (i + 1) % n
		x2 := p.Points[j].X
		y2 := p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- Hotspots ---

// Hotspot is an interactive area (a link, a button, a hover card). While the
// pointer is over any hotspot the cursor is hovering interactive.
type Hotspot struct {
	Name  string
	Shape HitShape
	// Fixed hotspots are tested in screen coordinates and ignore scroll.
	Fixed bool

	// OnEnter and OnLeave fire when the pointer enters or leaves this hotspot.
	OnEnter func()
	OnLeave func()

	hovered  bool
	removed  bool
	scopeKey uint64
}

// contains tests the hotspot against a screen point at the given scroll offset.
func (h *Hotspot) contains(sx, sy, scrollY float64) bool {
	if h.Shape == nil {
		return false
	}
	if h.Fixed {
		return h.Shape.Contains(sx, sy)
	}
	return h.Shape.Contains(sx, sy+scrollY)
}

// --- Cursor followers ---

// Follower durations, in seconds: the cursor dot and the trailing ring.
const (
	DotFollowDuration  float32 = 0.15
	RingFollowDuration float32 = 0.5
)

// Follower eases a drawn position toward the pointer. Every retarget starts
// a fresh tween from the current drawn position.
type Follower struct {
	X, Y     float64
	duration float32
	easeFn   ease.TweenFunc
	tweenX   *gween.Tween
	tweenY   *gween.Tween
}

// NewFollower creates a follower that reaches a new target in duration
// seconds using easeFn. A nil easeFn uses ease.OutCubic.
func NewFollower(duration float32, easeFn ease.TweenFunc) *Follower {
	if easeFn == nil {
		easeFn = ease.OutCubic
	}
	return &Follower{duration: duration, easeFn: easeFn}
}

// Retarget starts easing toward (x, y).
func (f *Follower) Retarget(x, y float64) {
	if f.duration <= 0 {
		f.X, f.Y = x, y
		f.tweenX, f.tweenY = nil, nil
		return
	}
	f.tweenX = gween.New(float32(f.X), float32(x), f.duration, f.easeFn)
	f.tweenY = gween.New(float32(f.Y), float32(y), f.duration, f.easeFn)
}

// Snap moves the follower to (x, y) with no easing.
func (f *Follower) Snap(x, y float64) {
	f.X, f.Y = x, y
	f.tweenX, f.tweenY = nil, nil
}

// Settled reports whether the follower has reached its target.
func (f *Follower) Settled() bool {
	return f.tweenX == nil
}

// Update advances the follower by dt seconds.
func (f *Follower) Update(dt float32) {
	if f.tweenX == nil {
		return
	}
	x, doneX := f.tweenX.Update(dt)
	y, doneY := f.tweenY.Update(dt)
	f.X, f.Y = float64(x), float64(y)
	if doneX && doneY {
		f.tweenX, f.tweenY = nil, nil
	}
}
