// Package sapling is the camera and scene-update core of a 3D game runtime.
//
// Sapling maintains the state a renderer reads each frame: a node tree with
// hierarchical transforms, two shared cameras (2D and 3D), and the shake
// and push effects layered on top of them. Procedural geometry lives in the
// pcg subpackage; ECS integration lives in sapling/ecs.
//
// # Quick start
//
//	scene := sapling.NewScene(nil)
//	cam := sapling.NewCamera3D("player_cam")
//	cam.SetPosition(mgl64.Vec3{0, 2, 10})
//	scene.Root().AddChild(cam)
//
//	// each frame
//	scene.Update(dt)
//	view := scene.Camera3D().Camera().ViewMatrix()
//
// Use [Run] to drive a scene from an ebiten window, or call
// [Scene.Update] from your own loop.
//
// # Cameras
//
// A [CameraMain] composes its final position from a base position plus a
// shake offset and a push offset. Pose setters are silently ignored while
// the camera is animating ([CameraAnima]) or locked ([CameraLock]).
//
// Camera nodes ([NewCamera2D], [NewCamera3D]) copy their world pose into
// the scene's shared cameras once per [Scene.Update] when
// [Config.GameMode] is set. In editor mode the shared cameras are left
// alone.
//
// # Effects
//
// [CameraMain.AddCameraShake] and [CameraMain.AddCameraPush] start
// effects that advance on a fixed ~30Hz sub-step independent of the frame
// rate. A new request replaces the active one only when it lasts longer.
//
//	cam := scene.Camera3D()
//	cam.AddCameraShake(0, 10, 1.0, 3, sapling.ShakeSquare)
//
// Cinematic moves use tweens (via [gween]):
//
//	cam.PlayAnimation(mgl64.Vec3{0, 5, 20}, 2, ease.InOutQuad)
//
// # Configuration
//
// [LoadConfig] reads YAML settings (game mode, sub-step, shake extents,
// input tuning). Camera scripts ([LoadScript]) sequence effects and
// injected input across frames for demos and tests.
//
// [gween]: https://github.com/tanema/gween
package sapling
