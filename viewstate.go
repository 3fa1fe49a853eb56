package viewstate

import "time"

// DefaultResumeDelay is how long auto-behavior stays suspended after the most
// recent interaction.
const DefaultResumeDelay = 5000 * time.Millisecond

// defaultScrolledThreshold is the scrollY past which Snapshot.Scrolled is set.
const defaultScrolledThreshold = 10.0

// Vec2 is a 2D vector used for pointer positions and offsets.
type Vec2 struct {
	X, Y float64
}

// WidgetID names an independently selectable widget (a color picker, a
// category filter, a rotatable model).
type WidgetID string

// Direction is a rotation direction for Rotate.
type Direction uint8

const (
	Left  Direction = iota // counter-clockwise, -90 degrees
	Right                  // clockwise, +90 degrees
)

// String returns "left" or "right".
func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// rotationStep is the angle applied by a single Rotate call, in degrees.
const rotationStep = 90

// EventType identifies a kind of controller event.
type EventType uint8

const (
	EventSelect      EventType = iota // a widget's active index changed
	EventRotate                       // a widget's derived angle changed
	EventSuspend                      // auto-behavior went from Active to Suspended
	EventResume                       // auto-behavior went from Suspended to Active
	EventRegionEnter                  // the viewport passed a region's start for the first time
	EventHover                        // the pointer entered an interactive hotspot
	EventUnhover                      // the pointer left every interactive hotspot
	EventToggle                       // a toggle opened or closed

	eventTypeCount
)

var eventTypeNames = [eventTypeCount]string{
	"select", "rotate", "suspend", "resume", "region-enter", "hover", "unhover",
	"toggle",
}

// String returns a short lowercase name for the event type.
func (t EventType) String() string {
	if t < eventTypeCount {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event carries a state transition to handlers and to the optional EventSink.
// Fields that do not apply to Type are zero.
type Event struct {
	Type   EventType
	Widget WidgetID
	Region string
	// Index is the active index (EventSelect).
	Index int
	// Angle is the derived angle in degrees (EventRotate).
	Angle int
	// Generation is the auto-behavior timer generation (EventSuspend, EventResume).
	Generation uint64
	// Progress is the region progress at the time of the event (EventRegionEnter).
	Progress float64
	// Toggle and Open name the toggle and its new state (EventToggle).
	Toggle string
	Open   bool
}

// EventSink is the interface for optional event forwarding, e.g. into an ECS
// world. When set on a Controller, every Event is also passed to EmitEvent.
type EventSink interface {
	EmitEvent(event Event)
}
