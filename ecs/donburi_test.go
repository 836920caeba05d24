package ecs

import (
	"testing"

	"github.com/phanxgames/backdrop"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []backdrop.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e backdrop.InteractionEvent) {
		received = append(received, e)
	})

	store.EmitEvent(backdrop.InteractionEvent{Type: backdrop.EventPress, Index: 3, X: 100, Y: 200})
	store.EmitEvent(backdrop.InteractionEvent{Type: backdrop.EventRelease, Index: 3})

	// Events are queued until processed.
	InteractionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != backdrop.EventPress || e.Index != 3 || e.X != 100 || e.Y != 200 {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != backdrop.EventRelease {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiStore_FieldDrag(t *testing.T) {
	world := donburi.NewWorld()
	rec := backdrop.NewRecorder(200, 200)
	field, err := backdrop.NewField(rec, backdrop.FieldConfig{Threshold: 50, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	field.AddPoint(backdrop.NewPoint(50, 50, backdrop.CapAll, nil))
	field.Render()
	field.SetEventStore(NewDonburiStore(world))

	var types []backdrop.EventType
	var drag backdrop.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e backdrop.InteractionEvent) {
		types = append(types, e.Type)
		if e.Type == backdrop.EventDrag {
			drag = e
		}
	})

	field.HandleMove(50, 50)
	field.HandlePress(50, 50)
	field.HandleMove(80, 90)
	field.HandleRelease(80, 90)
	events.ProcessAllEvents(world)

	want := []backdrop.EventType{backdrop.EventHover, backdrop.EventPress, backdrop.EventDrag, backdrop.EventRelease}
	if len(types) != len(want) {
		t.Fatalf("events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
	if drag.Index != 0 || drag.PointX != 80 || drag.PointY != 90 {
		t.Errorf("drag payload = %+v, want index 0 at (80, 90)", drag)
	}
}

func TestDonburiStore_ImplementsEventStore(t *testing.T) {
	world := donburi.NewWorld()
	var store backdrop.EventStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}
