package viewstate

import (
	"encoding/json"
	"fmt"
	"time"
)

// scriptStep is a single action in an interaction script.
type scriptStep struct {
	Action string  `json:"action"`
	Widget string  `json:"widget,omitempty"`
	Index  int     `json:"index,omitempty"`
	Dir    string  `json:"dir,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	// Ms is the wait length for "wait" and the frame length for "frames".
	Ms     int `json:"ms,omitempty"`
	Frames int `json:"frames,omitempty"`
	// Toggle names the toggle for "toggle"; a missing Open flips it.
	Toggle string `json:"toggle,omitempty"`
	Open   *bool  `json:"open,omitempty"`
}

// scriptFile is the top-level JSON structure for a script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script replays recorded interactions against a Controller. Supported
// actions: move (x, y), down, up, enter, leave, hover, unhover,
// scroll (y, optional width/height), select (widget, index),
// rotate (widget, dir "left"|"right"), interact (widget),
// toggle (toggle, optional open), wait (ms) and frames (frames, ms per frame).
type Script struct {
	steps []scriptStep
}

// LoadScript parses a JSON script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Len returns the number of steps.
func (s *Script) Len() int {
	return len(s.steps)
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "move", "down", "up", "enter", "leave", "hover", "unhover", "scroll":
		return nil
	case "select", "interact":
		if st.Widget == "" {
			return fmt.Errorf("%s: missing widget", st.Action)
		}
		return nil
	case "toggle":
		if st.Toggle == "" {
			return fmt.Errorf("toggle: missing toggle name")
		}
		return nil
	case "rotate":
		if st.Widget == "" {
			return fmt.Errorf("rotate: missing widget")
		}
		if st.Dir != "left" && st.Dir != "right" {
			return fmt.Errorf("rotate: dir %q is not left or right", st.Dir)
		}
		return nil
	case "wait":
		if st.Ms < 0 {
			return fmt.Errorf("wait: negative ms")
		}
		return nil
	case "frames":
		if st.Frames <= 0 || st.Ms <= 0 {
			return fmt.Errorf("frames: frames and ms must be positive")
		}
		return nil
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
}

// Run executes every step against c. Rejected operations (an invalid
// selection, an unknown widget) do not stop the script; their errors are
// returned in step order.
func (s *Script) Run(c *Controller) []error {
	var errs []error
	for i, st := range s.steps {
		if err := st.apply(c); err != nil {
			errs = append(errs, fmt.Errorf("step %d (%s): %w", i, st.Action, err))
		}
	}
	return errs
}

func (st scriptStep) apply(c *Controller) error {
	switch st.Action {
	case "move":
		c.UpdatePointer(st.X, st.Y)
	case "down":
		c.SetPointerDown(true)
	case "up":
		c.SetPointerDown(false)
	case "enter":
		c.PointerEnter()
	case "leave":
		c.PointerLeave()
	case "hover":
		c.SetHover(true)
	case "unhover":
		c.SetHover(false)
	case "scroll":
		m := c.Viewport()
		m.ScrollY = st.Y
		if st.Width > 0 {
			m.Width = st.Width
		}
		if st.Height > 0 {
			m.Height = st.Height
		}
		c.OnScrollTick(m)
	case "select":
		return c.SelectIndex(WidgetID(st.Widget), st.Index)
	case "rotate":
		dir := Right
		if st.Dir == "left" {
			dir = Left
		}
		_, err := c.Rotate(WidgetID(st.Widget), dir)
		return err
	case "interact":
		return c.RegisterInteraction(WidgetID(st.Widget))
	case "toggle":
		t, err := c.toggle(st.Toggle)
		if err != nil {
			return err
		}
		if st.Open == nil {
			t.Flip()
		} else {
			t.Set(*st.Open)
		}
	case "wait":
		c.Update(time.Duration(st.Ms) * time.Millisecond)
	case "frames":
		for i := 0; i < st.Frames; i++ {
			c.Update(time.Duration(st.Ms) * time.Millisecond)
		}
	}
	return nil
}
