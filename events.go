package bounce

// EventType identifies a kind of simulation event.
type EventType uint8

const (
	EventWallBounce EventType = iota // a body reflected off a wall on one axis
	EventCollision                   // two bodies exchanged momentum
	EventSeparation                  // two coincident bodies were nudged apart
)

func (t EventType) String() string {
	switch t {
	case EventWallBounce:
		return "wall-bounce"
	case EventCollision:
		return "collision"
	case EventSeparation:
		return "separation"
	default:
		return "unknown"
	}
}

// Event carries one simulation event to an EventSink.
type Event struct {
	Type EventType
	A    int  // index of the first body
	B    int  // index of the second body, -1 for wall bounces
	Axis Axis // valid for EventWallBounce

	// Position is the contact midpoint for body pairs and the body center
	// for wall bounces.
	Position Vec2
	// Speed is the closing speed along the normal for collisions and the
	// absolute reflected velocity component for wall bounces.
	Speed float64
}

// EventSink is the interface for optional event consumers (sound, ECS).
// Events are delivered synchronously from World.Step in the order they occur.
type EventSink interface {
	EmitEvent(event Event)
}

// EventSinkFunc adapts a plain function to EventSink.
type EventSinkFunc func(Event)

// EmitEvent calls f(event).
func (f EventSinkFunc) EmitEvent(event Event) { f(event) }

// MultiSink fans events out to every sink in order.
type MultiSink []EventSink

// EmitEvent forwards event to each non-nil sink.
func (m MultiSink) EmitEvent(event Event) {
	for _, s := range m {
		if s != nil {
			s.EmitEvent(event)
		}
	}
}
