package sapling

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

func testInputConfig() InputConfig {
	return DefaultConfig().Input
}

func TestInputKeyboardMove(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want mgl64.Vec2
	}{
		{"none", nil, mgl64.Vec2{}},
		{"right", []ebiten.Key{ebiten.KeyD}, mgl64.Vec2{100, 0}},
		{"up arrow", []ebiten.Key{ebiten.KeyArrowUp}, mgl64.Vec2{0, 100}},
		{"left", []ebiten.Key{ebiten.KeyA}, mgl64.Vec2{-100, 0}},
		{"down", []ebiten.Key{ebiten.KeyS}, mgl64.Vec2{0, -100}},
		{"diagonal normalized", []ebiten.Key{ebiten.KeyW, ebiten.KeyD}, mgl64.Vec2{100 / math.Sqrt2, 100 / math.Sqrt2}},
		{"opposites cancel", []ebiten.Key{ebiten.KeyA, ebiten.KeyD}, mgl64.Vec2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewInjectedInput()
			for _, k := range tt.keys {
				src.HoldKey(k, 1)
			}
			c := NewInputController2d(testInputConfig())
			in := c.Update(src, 0.5) // 200 units/s * 0.5s
			if !in.Move.ApproxEqualThreshold(tt.want, 1e-9) {
				t.Errorf("Move = %v, want %v", in.Move, tt.want)
			}
		})
	}
}

func TestInputWheelZoom(t *testing.T) {
	src := NewInjectedInput()
	src.InjectWheel(2)
	c := NewInputController2d(testInputConfig())
	in := c.Update(src, 1.0/60)
	assertNear(t, "Zoom", in.Zoom, 0.2)

	in = c.Update(src, 1.0/60)
	if in.Zoom != 0 {
		t.Errorf("wheel should last one frame, got %v", in.Zoom)
	}
}

func TestInputDragPan(t *testing.T) {
	src := NewInjectedInput()
	src.InjectDrag(MouseButtonMiddle, 10, 10, 50, 30, 3)
	c := NewInputController2d(testInputConfig())

	// Press frame: no delta yet.
	if in := c.Update(src, 0); !in.IsZero() {
		t.Errorf("press frame intent = %+v, want zero", in)
	}
	// Cursor moved (+20, +10) on screen: view pans left and up.
	in := c.Update(src, 0)
	if in.Pan != (mgl64.Vec2{-20, 10}) {
		t.Errorf("Pan = %v, want (-20, 10)", in.Pan)
	}
	// Release frame.
	if in := c.Update(src, 0); !in.IsZero() {
		t.Errorf("release frame intent = %+v, want zero", in)
	}
}

func TestInputDragWrongButton(t *testing.T) {
	src := NewInjectedInput()
	src.InjectDrag(MouseButtonLeft, 0, 0, 100, 100, 3)
	c := NewInputController2d(testInputConfig())
	for i := 0; i < 3; i++ {
		if in := c.Update(src, 0); in.Pan != (mgl64.Vec2{}) {
			t.Errorf("frame %d: Pan = %v, want zero", i, in.Pan)
		}
	}
}

func TestInputApplyToNode(t *testing.T) {
	c := NewInputController2d(testInputConfig())
	n := NewCamera2D("cam")
	n.Zoom = 2

	c.Apply(Intent{Move: mgl64.Vec2{1, 2}, Pan: mgl64.Vec2{-20, 10}}, n)
	assertVec3(t, "pos", n.Transform().Pos, mgl64.Vec3{-9, 7, 0})

	c.Apply(Intent{Zoom: 100}, n)
	if n.Zoom != c.cfg.MaxZoom {
		t.Errorf("Zoom = %v, want clamped to %v", n.Zoom, c.cfg.MaxZoom)
	}
	c.Apply(Intent{Zoom: -100}, n)
	if n.Zoom != c.cfg.MinZoom {
		t.Errorf("Zoom = %v, want clamped to %v", n.Zoom, c.cfg.MinZoom)
	}
}

func TestInputApplyToCameraGated(t *testing.T) {
	c := NewInputController2d(testInputConfig())
	cam := NewCameraMain("cam", Orthographic, nil)

	c.ApplyToCamera(Intent{Move: mgl64.Vec2{1, 0}}, cam)
	assertVec3(t, "moved", cam.BasePosition(), mgl64.Vec3{1, 0, 0})

	cam.Lock()
	c.ApplyToCamera(Intent{Move: mgl64.Vec2{1, 0}, Zoom: 1}, cam)
	assertVec3(t, "locked", cam.BasePosition(), mgl64.Vec3{1, 0, 0})
	if cam.Zoom() != 1 {
		t.Errorf("Zoom = %v, locked camera should not zoom", cam.Zoom())
	}
}

func TestInputKeyboardDrivesSceneCamera(t *testing.T) {
	s := NewScene(nil)
	node := NewCamera2D("cam")
	s.Root().AddChild(node)

	src := NewInjectedInput()
	src.HoldKey(ebiten.KeyD, 3)
	c := NewInputController2d(testInputConfig())
	for i := 0; i < 4; i++ {
		c.Apply(c.Update(src, 0.1), node)
		s.Update(0.1)
	}
	// 3 frames * 200 units/s * 0.1s
	assertVec3(t, "camera", s.Camera2D().Position(), mgl64.Vec3{60, 0, 0})
}
