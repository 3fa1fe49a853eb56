package viewstate

import "fmt"

// Toggle is an open/closed flag owned by a controller, such as a mobile
// navigation menu or a chat panel. A new toggle is closed.
type Toggle struct {
	name string
	open bool
	c    *Controller
}

// AddToggle registers a toggle under name. Adding a taken name returns the
// existing toggle.
func (c *Controller) AddToggle(name string) *Toggle {
	if t, ok := c.toggles[name]; ok {
		return t
	}
	t := &Toggle{name: name, c: c}
	if c.closed {
		return t
	}
	c.toggles[name] = t
	c.toggleOrder = append(c.toggleOrder, t)
	return t
}

// Toggle returns the toggle registered under name.
func (c *Controller) Toggle(name string) (*Toggle, bool) {
	t, ok := c.toggles[name]
	return t, ok
}

func (c *Controller) toggle(name string) (*Toggle, error) {
	if c.closed {
		return nil, ErrClosed
	}
	t, ok := c.toggles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownToggle, name)
	}
	return t, nil
}

// Name returns the name the toggle was added under.
func (t *Toggle) Name() string { return t.name }

// Open reports whether the toggle is open.
func (t *Toggle) Open() bool { return t.open }

// Set opens or closes the toggle. Only a change emits EventToggle; after the
// owning controller closes, Set does nothing.
func (t *Toggle) Set(open bool) {
	if t.c.closed || t.open == open {
		return
	}
	t.open = open
	t.c.debugf("toggle %q open=%v", t.name, open)
	t.c.emit(Event{Type: EventToggle, Toggle: t.name, Open: open})
}

// Flip inverts the toggle and returns the new state.
func (t *Toggle) Flip() bool {
	t.Set(!t.open)
	return t.open
}

// ToggleSnapshot is one toggle's state in a Snapshot.
type ToggleSnapshot struct {
	Name string
	Open bool
}
