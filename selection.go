package viewstate

import (
	"math"
	"time"
)

// SelectionState is a widget's user-selected state.
type SelectionState struct {
	// ActiveIndex is the selected option, in [0, option count).
	ActiveIndex int
	// DerivedAngle is the accumulated rotation in degrees. It is always a
	// multiple of 90 and is never wrapped: two full turns read 720.
	DerivedAngle int
}

// Radians returns DerivedAngle in radians.
func (s SelectionState) Radians() float64 {
	return float64(s.DerivedAngle) * math.Pi / 180
}

// WidgetConfig describes a widget added with Controller.AddWidget.
type WidgetConfig struct {
	ID WidgetID
	// Options labels each selectable option. If empty, OptionCount is used.
	Options []string
	// OptionCount is the number of options when Options is empty.
	OptionCount int
	// InitialIndex is the starting ActiveIndex.
	InitialIndex int
	// ResumeDelay overrides the controller's resume delay for this widget
	// when positive.
	ResumeDelay time.Duration
}

// Widget is an independently selectable widget: a color picker, a category
// filter, a rotatable model. Each widget has its own selection and
// auto-behavior state and shares nothing with other widgets.
type Widget struct {
	id      WidgetID
	options []string
	count   int
	sel     SelectionState
	auto    autoBehavior
}

// ID returns the widget's ID.
func (w *Widget) ID() WidgetID { return w.id }

// OptionCount returns the number of selectable options.
func (w *Widget) OptionCount() int { return w.count }

// Selection returns the widget's current selection state.
func (w *Widget) Selection() SelectionState { return w.sel }

// AutoBehavior returns the widget's current auto-behavior state.
func (w *Widget) AutoBehavior() AutoBehaviorState { return w.auto.state() }

// ActiveOption returns the label of the active option, or "" when the widget
// has no labels.
func (w *Widget) ActiveOption() string {
	if w.sel.ActiveIndex < len(w.options) {
		return w.options[w.sel.ActiveIndex]
	}
	return ""
}

// selectIndex validates and applies index. On error the state is untouched.
func (w *Widget) selectIndex(index int) (changed bool, err error) {
	if index < 0 || index >= w.count {
		return false, &SelectionError{Widget: w.id, Index: index, Count: w.count}
	}
	if w.sel.ActiveIndex == index {
		return false, nil
	}
	w.sel.ActiveIndex = index
	return true, nil
}

// rotate applies one 90 degree step and returns the new angle.
func (w *Widget) rotate(dir Direction) int {
	if dir == Left {
		w.sel.DerivedAngle -= rotationStep
	} else {
		w.sel.DerivedAngle += rotationStep
	}
	return w.sel.DerivedAngle
}
