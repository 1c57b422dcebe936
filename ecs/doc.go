// Package ecs bridges bounce physics events into a [Donburi] world.
//
// [NewDonburiSink] publishes every event emitted by World.Step as a typed
// Donburi event. Subscribe to [EventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	physics.SetEventSink(sink)
//
// Events are queued until ProcessEvents runs, usually once per frame after
// the physics step.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
