package viewstate

import "math"

// SceneHost is the 3D viewer a model binding drives. The controller never
// touches mesh data; it only tells the host which model to show and how to
// orient and scale it.
type SceneHost interface {
	SetModelSource(src string)
	SetRotation(yaw float64) // radians
	SetScale(s float64)
}

// ResponsiveScale picks a model scale from the viewport width.
type ResponsiveScale struct {
	// Breakpoint is the width below which Narrow is used.
	Breakpoint float64
	Narrow     float64
	Wide       float64
}

// DefaultResponsiveScale is 1 below 1024 pixels wide and 3 otherwise.
var DefaultResponsiveScale = ResponsiveScale{Breakpoint: 1024, Narrow: 1, Wide: 3}

// For returns the scale for a viewport width.
func (r ResponsiveScale) For(width float64) float64 {
	if width < r.Breakpoint {
		return r.Narrow
	}
	return r.Wide
}

// DefaultAutoRotateSpeed matches an orbit control autoRotateSpeed of 2:
// one turn every 30 seconds.
const DefaultAutoRotateSpeed = 2 * math.Pi / 30 // radians per second

// ModelConfig describes a model binding created with Controller.BindModel.
type ModelConfig struct {
	// Sources maps option indexes to model sources. An index without a
	// source leaves the current model in place.
	Sources []string
	// AutoRotateSpeed is the auto-rotation rate in radians per second while
	// the widget's auto-behavior is Active. Zero disables auto-rotation.
	AutoRotateSpeed float64
	// Scale picks the model scale on resize. The zero value leaves scale alone.
	Scale ResponsiveScale
}

// ModelBinding pushes a widget's selection to a SceneHost: the active option's
// model source, DerivedAngle plus accumulated auto-rotation as yaw, and a
// responsive scale.
type ModelBinding struct {
	widget *Widget
	host   SceneHost
	cfg    ModelConfig

	autoYaw    float64
	lastSource string
	lastYaw    float64
	lastScale  float64
	pushed     bool
	released   bool
}

// Yaw returns the yaw last pushed to the host, in radians.
func (b *ModelBinding) Yaw() float64 {
	return b.lastYaw
}

// AutoYaw returns the accumulated auto-rotation in radians.
func (b *ModelBinding) AutoYaw() float64 {
	return b.autoYaw
}

// sync pushes any changed value to the host.
func (b *ModelBinding) sync(width float64) {
	if b.released {
		return
	}
	sel := b.widget.sel
	if sel.ActiveIndex < len(b.cfg.Sources) {
		if src := b.cfg.Sources[sel.ActiveIndex]; src != "" && (!b.pushed || src != b.lastSource) {
			b.host.SetModelSource(src)
			b.lastSource = src
		}
	}
	yaw := sel.Radians() + b.autoYaw
	if !b.pushed || yaw != b.lastYaw {
		b.host.SetRotation(yaw)
		b.lastYaw = yaw
	}
	if b.cfg.Scale.Breakpoint > 0 && width > 0 {
		if s := b.cfg.Scale.For(width); !b.pushed || s != b.lastScale {
			b.host.SetScale(s)
			b.lastScale = s
		}
	}
	b.pushed = true
}

// update advances auto-rotation while auto-behavior is Active.
func (b *ModelBinding) update(dt float64) {
	if b.released || b.cfg.AutoRotateSpeed == 0 || b.widget.auto.suspended {
		return
	}
	b.autoYaw += b.cfg.AutoRotateSpeed * dt
}
