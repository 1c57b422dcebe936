// Package ecs provides ECS adapters for bounce.
package ecs

import (
	"github.com/phanxgames/bounce"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EventType is the Donburi event type for bounce physics events.
// Subscribe to this in your ECS systems to receive wall bounces, collisions
// and separations.
var EventType = events.NewEventType[bounce.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Events are published to EventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) bounce.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event bounce.Event) {
	EventType.Publish(s.world, event)
}
