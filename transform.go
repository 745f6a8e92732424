package sapling

import "github.com/go-gl/mathgl/mgl64"

// Transform is a position, scale and rotation triple. It is a value type;
// copy it freely.
//
// Composition order:
//
//	Scale -> Rotate -> Translate
type Transform struct {
	Pos   mgl64.Vec3
	Scale mgl64.Vec3
	Rot   mgl64.Quat
}

// IdentityTransform is the transform that maps every point to itself.
var IdentityTransform = Transform{
	Scale: mgl64.Vec3{1, 1, 1},
	Rot:   mgl64.QuatIdent(),
}

// NewTransform returns an identity transform.
func NewTransform() Transform {
	return IdentityTransform
}

// Reset restores the identity: zero position, unit scale, identity rotation.
func (t *Transform) Reset() {
	*t = IdentityTransform
}

// SetRotation sets the rotation, normalizing q. A zero quaternion resets
// the rotation to identity.
func (t *Transform) SetRotation(q mgl64.Quat) {
	if q.Len() == 0 {
		t.Rot = mgl64.QuatIdent()
		return
	}
	t.Rot = q.Normalize()
}

// SetRotationFromAxes builds the rotation from three orthonormal basis
// vectors (the local X, Y and Z axes expressed in parent space).
func (t *Transform) SetRotationFromAxes(x, y, z mgl64.Vec3) {
	m := mgl64.Mat3FromCols(x.Normalize(), y.Normalize(), z.Normalize())
	t.SetRotation(mgl64.Mat4ToQuat(m.Mat4()))
}

// Rotate composes r on top of the current rotation (r applied in parent
// space) and renormalizes.
func (t *Transform) Rotate(r mgl64.Quat) {
	t.SetRotation(r.Mul(t.Rot))
}

// TransformVec3 maps a local-space point into parent space:
// Pos + Rot*(v*Scale).
func (t Transform) TransformVec3(v mgl64.Vec3) mgl64.Vec3 {
	return t.Pos.Add(t.Rot.Rotate(mulEach(v, t.Scale)))
}

// InverseTransformVec3 maps a parent-space point back into local space.
func (t Transform) InverseTransformVec3(v mgl64.Vec3) mgl64.Vec3 {
	local := t.Rot.Conjugate().Rotate(v.Sub(t.Pos))
	return mgl64.Vec3{local[0] / t.Scale[0], local[1] / t.Scale[1], local[2] / t.Scale[2]}
}

// Mul composes t (parent) with b (child) and returns parent*child:
//
//	rot   = t.Rot * b.Rot
//	scale = t.Scale * b.Scale (component-wise)
//	pos   = t.Pos + t.Rot*(t.Scale*b.Pos)
func (t Transform) Mul(b Transform) Transform {
	return Transform{
		Pos:   t.Pos.Add(t.Rot.Rotate(mulEach(t.Scale, b.Pos))),
		Scale: mulEach(t.Scale, b.Scale),
		Rot:   t.Rot.Mul(b.Rot).Normalize(),
	}
}

// BuildMatrix returns the 4x4 matrix T*R*S.
func (t Transform) BuildMatrix() mgl64.Mat4 {
	tr := mgl64.Translate3D(t.Pos[0], t.Pos[1], t.Pos[2])
	sc := mgl64.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2])
	return tr.Mul4(t.Rot.Mat4()).Mul4(sc)
}

// BuildInvMatrix returns the inverse of BuildMatrix without a general
// matrix inversion: S^-1 * R^-1 * T^-1. Scale components must be nonzero.
func (t Transform) BuildInvMatrix() mgl64.Mat4 {
	tr := mgl64.Translate3D(-t.Pos[0], -t.Pos[1], -t.Pos[2])
	sc := mgl64.Scale3D(1/t.Scale[0], 1/t.Scale[1], 1/t.Scale[2])
	return sc.Mul4(t.Rot.Conjugate().Mat4()).Mul4(tr)
}

// Inverse returns the transform that undoes t. Exact for uniform scale;
// with non-uniform scale and rotation the result is the closest
// scale/rotate/translate triple, use BuildInvMatrix for exact math.
func (t Transform) Inverse() Transform {
	inv := Transform{
		Scale: mgl64.Vec3{1 / t.Scale[0], 1 / t.Scale[1], 1 / t.Scale[2]},
		Rot:   t.Rot.Conjugate(),
	}
	inv.Pos = inv.Rot.Rotate(mulEach(inv.Scale, t.Pos)).Mul(-1)
	return inv
}
