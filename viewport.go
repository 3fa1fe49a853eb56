package viewstate

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Viewport is the scrollable window onto the page. ScrollY is clamped to
// [0, PageHeight-Height] whenever PageHeight is set.
type Viewport struct {
	ScrollY float64
	Width   float64
	Height  float64
	// PageHeight is the full document height. Zero disables clamping.
	PageHeight float64

	scrollTween *gween.Tween
}

// Metrics returns the viewport as ViewportMetrics.
func (v *Viewport) Metrics() ViewportMetrics {
	return ViewportMetrics{ScrollY: v.ScrollY, Width: v.Width, Height: v.Height}
}

// MaxScroll returns the largest valid ScrollY.
func (v *Viewport) MaxScroll() float64 {
	if v.PageHeight <= 0 {
		return math.Inf(1)
	}
	return math.Max(0, v.PageHeight-v.Height)
}

// ScrollTo animates ScrollY to y over duration seconds. A non-positive
// duration jumps immediately.
func (v *Viewport) ScrollTo(y float64, duration float32, easeFn ease.TweenFunc) {
	y = v.clamp(y)
	if duration <= 0 {
		v.scrollTween = nil
		v.ScrollY = y
		return
	}
	if easeFn == nil {
		easeFn = ease.InOutCubic
	}
	v.scrollTween = gween.New(float32(v.ScrollY), float32(y), duration, easeFn)
}

// ScrollBy moves ScrollY by dy immediately and cancels any scroll animation.
func (v *Viewport) ScrollBy(dy float64) {
	v.scrollTween = nil
	v.ScrollY = v.clamp(v.ScrollY + dy)
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil
}

// Resize sets the viewport size and re-clamps ScrollY.
func (v *Viewport) Resize(width, height float64) {
	v.Width, v.Height = width, height
	v.ScrollY = v.clamp(v.ScrollY)
}

// update advances the scroll animation. Reports whether ScrollY changed.
func (v *Viewport) update(dt float32) bool {
	if v.scrollTween == nil {
		return false
	}
	prev := v.ScrollY
	val, done := v.scrollTween.Update(dt)
	v.ScrollY = v.clamp(float64(val))
	if done {
		v.scrollTween = nil
	}
	return v.ScrollY != prev
}

func (v *Viewport) clamp(y float64) float64 {
	return math.Max(0, math.Min(y, v.MaxScroll()))
}
