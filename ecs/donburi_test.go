package ecs

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/phanxgames/sapling"

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

	var received []sapling.CameraEvent
	CameraEventType.Subscribe(world, func(w donburi.World, e sapling.CameraEvent) {
		received = append(received, e)
	})

	store.EmitEvent(sapling.CameraEvent{
		Type:     sapling.CameraEventShakeStart,
		Camera:   "camera3d",
		State:    sapling.CameraShake,
		Position: mgl64.Vec3{1, 2, 3},
	})
	store.EmitEvent(sapling.CameraEvent{
		Type:   sapling.CameraEventPushStop,
		Camera: "camera2d",
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	CameraEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != sapling.CameraEventShakeStart || e0.Camera != "camera3d" {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Position != (mgl64.Vec3{1, 2, 3}) {
		t.Errorf("event 0 position: %v", e0.Position)
	}
	if received[1].Type != sapling.CameraEventPushStop {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiStore_SceneCameraEvents(t *testing.T) {
	world := donburi.NewWorld()
	scene := sapling.NewScene(nil)
	scene.SetEntityStore(NewDonburiStore(world))

	var types []sapling.CameraEventType
	CameraEventType.Subscribe(world, func(w donburi.World, e sapling.CameraEvent) {
		types = append(types, e.Type)
	})

	cam := scene.Camera3D()
	cam.AddCameraShake(0, 1, 1, 1, sapling.ShakeSquare)
	for range 5 {
		scene.Update(sapling.DefaultFixedStep)
	}
	events.ProcessAllEvents(world)

	want := []sapling.CameraEventType{
		sapling.CameraEventStateChanged, sapling.CameraEventShakeStart,
		sapling.CameraEventStateChanged, sapling.CameraEventShakeStop,
	}
	if len(types) != len(want) {
		t.Fatalf("events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	CameraEventType.Subscribe(world, func(w donburi.World, e sapling.CameraEvent) {
		count1++
	})
	CameraEventType.Subscribe(world, func(w donburi.World, e sapling.CameraEvent) {
		count2++
	})

	store.EmitEvent(sapling.CameraEvent{Type: sapling.CameraEventStateChanged})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
