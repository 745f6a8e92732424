package sapling

import "github.com/go-gl/mathgl/mgl64"

// Common axis vectors. Cameras look down -Z with +Y up by default.
var (
	AxisX   = mgl64.Vec3{1, 0, 0}
	AxisY   = mgl64.Vec3{0, 1, 0}
	AxisZ   = mgl64.Vec3{0, 0, 1}
	Forward = mgl64.Vec3{0, 0, -1}
)

// CameraState gates which callers may move a CameraMain.
type CameraState uint8

const (
	CameraNormal CameraState = iota // free; gameplay code may move the camera
	CameraShake                     // free, with shake and/or push offsets active
	CameraAnima                     // driven by a cinematic animation; external moves ignored
	CameraLock                      // locked; external moves ignored
)

// String returns the state name.
func (s CameraState) String() string {
	switch s {
	case CameraNormal:
		return "normal"
	case CameraShake:
		return "shake"
	case CameraAnima:
		return "anima"
	case CameraLock:
		return "lock"
	default:
		return "unknown"
	}
}

// movable reports whether direct pose mutation is allowed in this state.
func (s CameraState) movable() bool {
	return s == CameraNormal || s == CameraShake
}

// ShakeType selects the offset pattern of a camera shake.
type ShakeType uint8

const (
	ShakeOld     ShakeType = iota // legacy decaying bounce along the view axis
	ShakeSquare                   // 4-point square wave table
	ShakeRhombus                  // 4-point rhombus (diagonal) wave table
	ShakeLinear                   // 2-point back-and-forth wave table
)

// String returns the shake type name as used in scripts.
func (t ShakeType) String() string {
	switch t {
	case ShakeOld:
		return "old"
	case ShakeSquare:
		return "square"
	case ShakeRhombus:
		return "rhombus"
	case ShakeLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// ParseShakeType maps a script name to a ShakeType.
func ParseShakeType(name string) (ShakeType, bool) {
	switch name {
	case "old", "default", "":
		return ShakeOld, true
	case "square":
		return ShakeSquare, true
	case "rhombus":
		return ShakeRhombus, true
	case "linear":
		return ShakeLinear, true
	}
	return ShakeOld, false
}

// Projection distinguishes the two shared cameras of a Scene.
type Projection uint8

const (
	Perspective  Projection = iota // 3D camera
	Orthographic                   // 2D camera
)

// NodeType distinguishes update behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no behavior of its own
	NodeTypeCamera2D                  // syncs its world pose into the scene's 2D camera
	NodeTypeCamera3D                  // syncs its world pose into the scene's 3D camera
)

// CameraEventType identifies a kind of camera event.
type CameraEventType uint8

const (
	CameraEventStateChanged CameraEventType = iota // fires when CameraMain.State changes
	CameraEventShakeStart                          // fires when a shake request is accepted
	CameraEventShakeStop                           // fires when a shake ends or is stopped
	CameraEventPushStart                           // fires when a push request is accepted
	CameraEventPushStop                            // fires when a push ends or is stopped
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// mulEach multiplies two vectors component-wise.
func mulEach(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
