// Package ecs bridges viewstate controller events into a [Donburi] world.
//
// [NewDonburiSink] queues every controller event (selection, rotation,
// auto-behavior suspend/resume, region entry, hover) on [ViewEventType].
// [SubscribeType] narrows a subscriber to one event type, and [SyncWidgets]
// mirrors each widget's selection, angle and suspension into a [Widget]
// component so systems can query it like any other entity.
//
// Usage:
//
//	ctrl.SetEventSink(ecs.NewDonburiSink(world))
//	ecs.SyncWidgets(world)
//	ecs.SubscribeType(world, viewstate.EventRegionEnter, playReveal)
//
//	// each frame
//	events.ProcessAllEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
