// Package ecs bridges backdrop field interactions into a [Donburi] world.
//
// [NewDonburiStore] returns a backdrop.EventStore that publishes every
// hover, press, drag and release on a Field as an [InteractionEventType]
// event. Each event carries the interaction Type (hover, unhover, press, drag,
// release), the point's Index in Field.Points, the pointer position X/Y and
// the point position PointX/PointY after the interaction. A drag event's
// PointX/PointY equal X/Y; a hover reports where the frozen point sits.
//
// Subscribe to it in your ECS systems:
//
//	store := ecs.NewDonburiStore(world)
//	field.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
