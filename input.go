package sapling

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputSource is the raw input read by InputController2d.
type InputSource interface {
	IsKeyPressed(key ebiten.Key) bool
	IsMouseButtonPressed(button MouseButton) bool
	CursorPosition() (x, y int)
	Wheel() (xoff, yoff float64)
}

// Poller is implemented by sources that must be advanced once per frame
// before they are read. InputController2d.Update calls Poll when present.
type Poller interface {
	Poll()
}

// EbitenInput reads input from the running ebiten game.
type EbitenInput struct{}

// IsKeyPressed reports whether key is held.
func (EbitenInput) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// IsMouseButtonPressed reports whether button is held.
func (EbitenInput) IsMouseButtonPressed(button MouseButton) bool {
	switch button {
	case MouseButtonLeft:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	case MouseButtonRight:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	default:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	}
}

// CursorPosition returns the cursor position in screen pixels.
func (EbitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

// Wheel returns this frame's scroll offsets.
func (EbitenInput) Wheel() (float64, float64) {
	return ebiten.Wheel()
}

// Intent is the camera movement requested by one frame of input.
type Intent struct {
	// Move is a world-space translation from keyboard input, already
	// scaled by speed and frame time.
	Move mgl64.Vec2
	// Pan is the drag delta in screen pixels, X right and Y up. It is
	// divided by the camera zoom when applied.
	Pan mgl64.Vec2
	// Zoom is the additive zoom change from the wheel.
	Zoom float64
}

// IsZero reports whether the intent requests nothing.
func (i Intent) IsZero() bool {
	return i.Move == (mgl64.Vec2{}) && i.Pan == (mgl64.Vec2{}) && i.Zoom == 0
}

// InputController2d turns keyboard, wheel and drag input into 2D camera
// movement. WASD and the arrow keys move, the wheel zooms and dragging
// with the configured button pans.
type InputController2d struct {
	cfg        InputConfig
	dragButton MouseButton

	dragging     bool
	lastX, lastY int
}

// NewInputController2d creates a controller with the given tuning.
func NewInputController2d(cfg InputConfig) *InputController2d {
	btn, _ := parseMouseButton(cfg.DragButton)
	return &InputController2d{cfg: cfg, dragButton: btn}
}

// Update reads src for one frame of dt seconds and returns the resulting
// intent.
func (c *InputController2d) Update(src InputSource, dt float64) Intent {
	if p, ok := src.(Poller); ok {
		p.Poll()
	}

	var in Intent

	var dir mgl64.Vec2
	if src.IsKeyPressed(ebiten.KeyW) || src.IsKeyPressed(ebiten.KeyArrowUp) {
		dir[1]++
	}
	if src.IsKeyPressed(ebiten.KeyS) || src.IsKeyPressed(ebiten.KeyArrowDown) {
		dir[1]--
	}
	if src.IsKeyPressed(ebiten.KeyD) || src.IsKeyPressed(ebiten.KeyArrowRight) {
		dir[0]++
	}
	if src.IsKeyPressed(ebiten.KeyA) || src.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir[0]--
	}
	if dir.Len() > 0 {
		in.Move = dir.Normalize().Mul(c.cfg.MoveSpeed * dt)
	}

	if _, wy := src.Wheel(); wy != 0 {
		in.Zoom = wy * c.cfg.ZoomStep
	}

	x, y := src.CursorPosition()
	if src.IsMouseButtonPressed(c.dragButton) {
		if c.dragging {
			// Screen Y grows downward; world Y grows upward. Dragging moves
			// the view opposite to the cursor.
			in.Pan = mgl64.Vec2{float64(c.lastX - x), float64(y - c.lastY)}
		}
		c.dragging = true
	} else {
		c.dragging = false
	}
	c.lastX, c.lastY = x, y

	return in
}

// Apply moves a 2D camera node by the intent and clamps its zoom.
func (c *InputController2d) Apply(in Intent, node *Node) {
	if in.IsZero() {
		return
	}
	node.Translate(c.offset(in, node.Zoom))
	node.Zoom = c.clampZoom(node.Zoom + in.Zoom)
}

// ApplyToCamera moves a camera directly. The move is gated like any other
// pose mutation, so a locked or animating camera ignores input.
func (c *InputController2d) ApplyToCamera(in Intent, cam *CameraMain) {
	if in.IsZero() || !cam.State().movable() {
		return
	}
	cam.Move(c.offset(in, cam.Zoom()))
	cam.SetZoom(c.clampZoom(cam.Zoom() + in.Zoom))
}

func (c *InputController2d) offset(in Intent, zoom float64) mgl64.Vec3 {
	if zoom <= 0 {
		zoom = 1
	}
	return mgl64.Vec3{in.Move[0] + in.Pan[0]/zoom, in.Move[1] + in.Pan[1]/zoom, 0}
}

func (c *InputController2d) clampZoom(z float64) float64 {
	return clamp(z, c.cfg.MinZoom, c.cfg.MaxZoom)
}
