package ecs

import (
	"github.com/phanxgames/backdrop"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for field interaction events.
var InteractionEventType = events.NewEventType[backdrop.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Events are
// queued; consume them with ProcessEvents.
func NewDonburiStore(world donburi.World) backdrop.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event backdrop.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
