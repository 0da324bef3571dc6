package ecs

import (
	"github.com/phanxgames/tilewall"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// WallEventType is the Donburi event type for tilewall events. Subscribe to
// it in your ECS systems to react to placement, drops, focus and camera
// changes.
var WallEventType = events.NewEventType[tilewall.WallEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on WallEventType and delivered by ProcessEvents or
// events.ProcessAllEvents.
func NewDonburiSink(world donburi.World) tilewall.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event tilewall.WallEvent) {
	WallEventType.Publish(s.world, event)
}

// Attach wires a new Donburi sink into eng and returns it.
func Attach(eng *tilewall.Engine, world donburi.World) tilewall.EventSink {
	sink := NewDonburiSink(world)
	eng.AddSink(sink)
	return sink
}
