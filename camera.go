package sapling

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultFOV is the vertical field of view of a new camera, in radians.
const DefaultFOV = math.Pi / 4

// Camera is the plain camera pose read by the renderer: a position, a view
// direction and an up vector. It performs no gating of its own; see
// CameraMain for the gated variant used by the scene.
type Camera struct {
	// Position is the world-space eye position.
	Position mgl64.Vec3
	// Direction is the normalized view direction.
	Direction mgl64.Vec3
	// Up is the normalized up vector, kept orthogonal to Direction.
	Up mgl64.Vec3
	// FOV is the vertical field of view in radians.
	FOV float64
	// Zoom scales the orthographic view (1.0 = no zoom, >1 = zoom in).
	Zoom float64
	// Projection selects perspective or orthographic rendering.
	Projection Projection
}

// newCamera creates a camera at the origin looking down -Z.
func newCamera(proj Projection) *Camera {
	return &Camera{
		Direction:  Forward,
		Up:         AxisY,
		FOV:        DefaultFOV,
		Zoom:       1,
		Projection: proj,
	}
}

// SetPosition sets the eye position.
func (c *Camera) SetPosition(pos mgl64.Vec3) {
	c.Position = pos
}

// SetDirection sets the view direction and re-orthogonalizes Up.
// A zero vector is ignored.
func (c *Camera) SetDirection(dir mgl64.Vec3) {
	if dir.Len() == 0 {
		return
	}
	c.Direction = dir.Normalize()
	c.orthogonalize()
}

// SetUp sets the up vector and re-orthogonalizes it against Direction.
// A zero vector is ignored.
func (c *Camera) SetUp(up mgl64.Vec3) {
	if up.Len() == 0 {
		return
	}
	c.Up = up.Normalize()
	c.orthogonalize()
}

// Yaw turns the camera around the world Y axis by angle radians.
func (c *Camera) Yaw(angle float64) {
	c.Rotate(AxisY, angle)
}

// Pitch turns the camera around its right axis by angle radians.
func (c *Camera) Pitch(angle float64) {
	c.Rotate(c.Right(), angle)
}

// Roll turns the camera around its view direction by angle radians.
func (c *Camera) Roll(angle float64) {
	c.Rotate(c.Direction, angle)
}

// Rotate turns the camera around an arbitrary world axis.
func (c *Camera) Rotate(axis mgl64.Vec3, angle float64) {
	if axis.Len() == 0 || angle == 0 {
		return
	}
	q := mgl64.QuatRotate(angle, axis.Normalize())
	c.Direction = q.Rotate(c.Direction).Normalize()
	c.Up = q.Rotate(c.Up).Normalize()
	c.orthogonalize()
}

// Move translates the camera by a world-space offset.
func (c *Camera) Move(offset mgl64.Vec3) {
	c.Position = c.Position.Add(offset)
}

// Right returns the camera's right vector (Direction x Up).
func (c *Camera) Right() mgl64.Vec3 {
	r := c.Direction.Cross(c.Up)
	if r.Len() == 0 {
		return AxisX
	}
	return r.Normalize()
}

// Forward returns the normalized view direction.
func (c *Camera) Forward() mgl64.Vec3 {
	return c.Direction
}

// FlatForward returns Direction projected onto the XZ plane (Y = 0) and
// normalized. Looking straight up or down yields -Z.
func (c *Camera) FlatForward() mgl64.Vec3 {
	f := mgl64.Vec3{c.Direction[0], 0, c.Direction[2]}
	if f.Len() < 1e-9 {
		return Forward
	}
	return f.Normalize()
}

// FlatRight returns the right vector matching FlatForward.
func (c *Camera) FlatRight() mgl64.Vec3 {
	return c.FlatForward().Cross(AxisY).Normalize()
}

// Orientation returns the camera rotation: local -Z maps to Direction and
// local +Y maps to Up.
func (c *Camera) Orientation() mgl64.Quat {
	var t Transform
	t.SetRotationFromAxes(c.Right(), c.Up, c.Direction.Mul(-1))
	return t.Rot
}

// Pose returns the camera's world transform.
func (c *Camera) Pose() Transform {
	return Transform{Pos: c.Position, Scale: mgl64.Vec3{1, 1, 1}, Rot: c.Orientation()}
}

// ViewMatrix returns the world-to-camera matrix.
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return c.Pose().BuildInvMatrix()
}

// ViewTransform returns the inverse of the camera pose.
func (c *Camera) ViewTransform() Transform {
	return c.Pose().Inverse()
}

// WorldToView converts a world-space point into camera space.
func (c *Camera) WorldToView(p mgl64.Vec3) mgl64.Vec3 {
	return c.Pose().InverseTransformVec3(p)
}

// orthogonalize re-derives Up so it is perpendicular to Direction. If Up
// became parallel to Direction, a fallback axis is chosen.
func (c *Camera) orthogonalize() {
	right := c.Direction.Cross(c.Up)
	if right.Len() < 1e-9 {
		fallback := AxisY
		if math.Abs(c.Direction.Dot(AxisY)) > 0.99 {
			fallback = AxisZ
		}
		right = c.Direction.Cross(fallback)
	}
	c.Up = right.Normalize().Cross(c.Direction).Normalize()
}
