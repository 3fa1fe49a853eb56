package viewstate

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSelection is reported when a selection index is outside
	// [0, optionCount). The widget's state is left unchanged.
	ErrInvalidSelection = errors.New("viewstate: invalid selection")

	// ErrUnknownWidget is reported for operations on a widget ID that was
	// never added to the controller.
	ErrUnknownWidget = errors.New("viewstate: unknown widget")

	// ErrUnknownToggle is reported for a toggle name that was never added.
	ErrUnknownToggle = errors.New("viewstate: unknown toggle")

	// ErrDuplicateWidget is reported by AddWidget when the ID is already taken.
	ErrDuplicateWidget = errors.New("viewstate: duplicate widget")

	// ErrNoOptions is reported by AddWidget when the widget would have no
	// selectable option, so no active index could be valid.
	ErrNoOptions = errors.New("viewstate: widget has no options")

	// ErrClosed is reported for mutating operations after Close.
	ErrClosed = errors.New("viewstate: controller closed")
)

// SelectionError describes a rejected SelectIndex call. It matches
// ErrInvalidSelection with errors.Is.
type SelectionError struct {
	Widget WidgetID
	Index  int
	Count  int
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("viewstate: invalid selection %d for widget %q (options: %d)", e.Index, e.Widget, e.Count)
}

// Is reports whether target is ErrInvalidSelection.
func (e *SelectionError) Is(target error) bool {
	return target == ErrInvalidSelection
}
