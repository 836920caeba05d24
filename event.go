package backdrop

// EventType identifies a kind of field interaction event.
type EventType uint8

const (
	EventHover   EventType = iota // pointer entered a point, which froze
	EventUnhover                  // pointer left for empty space, the point resumed
	EventPress                    // drag began on a point
	EventDrag                     // dragged point moved
	EventRelease                  // drag ended
)

func (t EventType) String() string {
	switch t {
	case EventHover:
		return "hover"
	case EventUnhover:
		return "unhover"
	case EventPress:
		return "press"
	case EventDrag:
		return "drag"
	case EventRelease:
		return "release"
	default:
		return "unknown"
	}
}

// EventStore is the interface for optional event forwarding. When set on a
// Field, interaction events are passed to it as they happen.
type EventStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries one field interaction.
type InteractionEvent struct {
	Type EventType
	// Index is the point's position in Field.Points.
	Index int
	// X, Y is the pointer position.
	X, Y float64
	// PointX, PointY is the point position after the event.
	PointX, PointY float64
}
