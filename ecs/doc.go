// Package ecs provides ECS adapters for tilewall's event stream.
//
// [NewDonburiSink] publishes every [tilewall.WallEvent] (tile added, moved,
// swapped, removed, drop reverted, focus and shape changes, camera settled)
// into a [Donburi] world as typed events on [WallEventType].
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	eng.AddSink(sink)
//
//	ecs.WallEventType.Subscribe(world, func(w donburi.World, e tilewall.WallEvent) {
//		// react
//	})
//	// once per frame:
//	ecs.WallEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
