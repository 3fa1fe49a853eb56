package ecs

import (
	"github.com/phanxgames/viewstate"

	"github.com/yohamta/donburi"
)

// WidgetData mirrors one controller widget inside a Donburi world.
type WidgetData struct {
	ID         viewstate.WidgetID
	Index      int
	Angle      int
	Suspended  bool
	Generation uint64
}

// Widget holds the mirrored state of a selectable widget. One entity exists
// per widget ID once SyncWidgets has seen an event for it.
var Widget = donburi.NewComponentType[WidgetData]()

// SubscribeType subscribes fn to controller events of type t only.
func SubscribeType(world donburi.World, t viewstate.EventType, fn func(donburi.World, viewstate.Event)) {
	ViewEventType.Subscribe(world, func(w donburi.World, e viewstate.Event) {
		if e.Type == t {
			fn(w, e)
		}
	})
}

// SyncWidgets keeps a Widget entity per widget ID up to date from selection,
// rotation and auto-behavior events. Systems can then query Widget instead
// of subscribing themselves.
func SyncWidgets(world donburi.World) {
	ViewEventType.Subscribe(world, syncWidget)
}

func syncWidget(w donburi.World, e viewstate.Event) {
	if e.Widget == "" {
		return
	}
	entry, ok := FindWidget(w, e.Widget)
	if !ok {
		entry = w.Entry(w.Create(Widget))
		Widget.SetValue(entry, WidgetData{ID: e.Widget})
	}
	d := Widget.Get(entry)
	switch e.Type {
	case viewstate.EventSelect:
		d.Index = e.Index
	case viewstate.EventRotate:
		d.Angle = e.Angle
	case viewstate.EventSuspend:
		d.Suspended = true
		d.Generation = e.Generation
	case viewstate.EventResume:
		d.Suspended = false
		d.Generation = e.Generation
	}
}

// FindWidget returns the entity mirroring widget id.
func FindWidget(w donburi.World, id viewstate.WidgetID) (*donburi.Entry, bool) {
	for entry := range Widget.Iter(w) {
		if Widget.Get(entry).ID == id {
			return entry, true
		}
	}
	return nil, false
}
