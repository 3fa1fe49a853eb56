package viewstate

import "github.com/hajimehoshi/ebiten/v2"

// defaultWheelStep is how many pixels one wheel notch scrolls.
const defaultWheelStep = 60.0

// InputFrame is one frame of raw input. ReadEbitenInput fills it from
// Ebitengine; tests and scripts build it directly.
type InputFrame struct {
	CursorX, CursorY float64
	// InWindow is false when the cursor is outside the window or the window
	// has lost focus.
	InWindow bool
	Pressed  bool
	// WheelY is the vertical wheel offset this frame; positive scrolls up.
	WheelY float64
	// Width and Height are the window's logical size. Zero leaves the
	// viewport size unchanged.
	Width, Height float64
}

// ReadEbitenInput reads the mouse and window state from Ebitengine. Call it
// from Game.Update.
func ReadEbitenInput() InputFrame {
	mx, my := ebiten.CursorPosition()
	w, h := ebiten.WindowSize()
	_, wy := ebiten.Wheel()
	f := InputFrame{
		CursorX: float64(mx),
		CursorY: float64(my),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
			ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) ||
			ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		WheelY: wy,
		Width:  float64(w),
		Height: float64(h),
	}
	f.InWindow = ebiten.IsFocused() &&
		mx >= 0 && my >= 0 && (w == 0 || mx < w) && (h == 0 || my < h)
	return f
}

// ApplyInput feeds one input frame to the controller: resize, wheel scroll,
// pointer enter/leave/move and press state. Only changes are applied, so a
// still pointer does not retarget the cursor followers.
func (c *Controller) ApplyInput(f InputFrame) {
	if c.closed {
		return
	}
	if f.Width > 0 && f.Height > 0 && (f.Width != c.viewport.Width || f.Height != c.viewport.Height) {
		c.Resize(f.Width, f.Height)
	}
	if f.WheelY != 0 {
		c.ScrollBy(-f.WheelY * defaultWheelStep)
	}
	if !f.InWindow {
		if c.pointer.Visible {
			c.PointerLeave()
		}
		return
	}
	if !c.pointer.Visible || f.CursorX != c.pointer.Position.X || f.CursorY != c.pointer.Position.Y {
		c.UpdatePointer(f.CursorX, f.CursorY)
	}
	if f.Pressed != c.pointer.Down {
		c.SetPointerDown(f.Pressed)
	}
}
