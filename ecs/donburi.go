// Package ecs provides ECS adapters for sapling.
package ecs

import (
	"github.com/phanxgames/sapling"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CameraEventType is the Donburi event type for sapling camera events.
// Subscribe to this in your ECS systems to react to state changes and
// shake/push start and stop.
var CameraEventType = events.NewEventType[sapling.CameraEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Camera events are published to CameraEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) sapling.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event sapling.CameraEvent) {
	CameraEventType.Publish(s.world, event)
}
