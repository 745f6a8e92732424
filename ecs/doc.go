// Package ecs provides ECS adapters for sapling's camera event system.
//
// The primary adapter is [NewDonburiStore], which bridges camera events
// (state changes, shake and push start/stop) into a [Donburi] world as
// typed events. Subscribe to [CameraEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
