package sapling

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, camera events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event CameraEvent)
}

// CameraEvent carries a camera state change or effect start/stop.
type CameraEvent struct {
	Type     CameraEventType
	Camera   string
	State    CameraState
	Position mgl64.Vec3 // final camera position when the event fired
	Offset   mgl64.Vec3 // shake or push offset, for effect events
}

// Scene owns the node tree and the two shared cameras the renderer reads.
// Camera nodes in the tree write into the shared cameras once per Update.
//
// A Scene is the context passed to everything that needs the shared
// cameras; create one per world (or per test).
type Scene struct {
	root   *Node
	config *Config
	store  EntityStore
	debug  bool

	camera2D *CameraMain
	camera3D *CameraMain

	script *ScriptRunner
}

// NewScene creates a scene with a root container. A nil cfg uses
// DefaultConfig.
func NewScene(cfg *Config) *Scene {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	s := &Scene{root: NewContainer("root"), config: cfg}
	if cfg.Debug {
		s.SetDebugMode(true)
	}
	return s
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Config returns the scene configuration. Changes take effect on the next Update.
func (s *Scene) Config() *Config {
	return s.config
}

// Camera2D returns the shared orthographic camera, creating it on first use.
func (s *Scene) Camera2D() *CameraMain {
	if s.camera2D == nil {
		s.camera2D = NewCameraMain("camera2d", Orthographic, s.config)
		s.camera2D.SetEventSink(s.store)
	}
	return s.camera2D
}

// Camera3D returns the shared perspective camera, creating it on first use.
func (s *Scene) Camera3D() *CameraMain {
	if s.camera3D == nil {
		s.camera3D = NewCameraMain("camera3d", Perspective, s.config)
		s.camera3D.SetEventSink(s.store)
	}
	return s.camera3D
}

// Update advances one frame: refreshes world transforms, lets camera nodes
// write into the shared cameras (game mode only), then ticks both cameras.
func (s *Scene) Update(dt float64) {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.script != nil {
		s.script.step(s)
	}

	updateWorldTransform(s.root, IdentityTransform, false)

	if s.debug {
		stats.transformTime = time.Since(t0)
		t0 = time.Now()
	}

	if s.config.GameMode {
		stats.nodeCount = s.updateNodes(s.root)
	}

	if s.debug {
		stats.nodeTime = time.Since(t0)
		t0 = time.Now()
	}

	if s.camera2D != nil {
		s.camera2D.FrameMove(dt)
	}
	if s.camera3D != nil {
		s.camera3D.FrameMove(dt)
	}

	if s.debug {
		stats.cameraTime = time.Since(t0)
		s.debugLog(stats)
	}
}

// updateNodes runs per-node behavior over enabled nodes in tree order and
// returns the number of nodes visited.
func (s *Scene) updateNodes(n *Node) int {
	if !n.Enabled {
		return 0
	}
	switch n.Type {
	case NodeTypeCamera2D:
		syncCamera2D(n, s.Camera2D())
	case NodeTypeCamera3D:
		syncCamera3D(n, s.Camera3D())
	}
	count := 1
	for _, child := range n.children {
		count += s.updateNodes(child)
	}
	return count
}

// SetEntityStore sets the optional ECS bridge on the scene and its cameras.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
	if s.camera2D != nil {
		s.camera2D.SetEventSink(store)
	}
	if s.camera3D != nil {
		s.camera3D.SetEventSink(store)
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, camera transitions are logged and per-frame timing stats
// are written to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// SetScriptRunner attaches a script runner, stepped at the start of each
// Update. Pass nil to detach.
func (s *Scene) SetScriptRunner(r *ScriptRunner) {
	s.script = r
}
