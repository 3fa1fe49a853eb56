package ecs

import (
	"github.com/phanxgames/viewstate"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ViewEventType is the Donburi event type for viewstate controller events.
var ViewEventType = events.NewEventType[viewstate.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on ViewEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) viewstate.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event viewstate.Event) {
	ViewEventType.Publish(s.world, event)
}
