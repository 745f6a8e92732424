package sapling

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestCameraDefaults(t *testing.T) {
	cam := newCamera(Perspective)
	if cam.Direction != Forward {
		t.Errorf("Direction = %v, want %v", cam.Direction, Forward)
	}
	if cam.Up != AxisY {
		t.Errorf("Up = %v, want %v", cam.Up, AxisY)
	}
	if cam.Zoom != 1 {
		t.Errorf("Zoom = %v, want 1", cam.Zoom)
	}
	assertNear(t, "FOV", cam.FOV, DefaultFOV)
	assertVec3(t, "Right", cam.Right(), AxisX)
}

func TestCameraYaw(t *testing.T) {
	cam := newCamera(Perspective)
	cam.Yaw(math.Pi / 2)
	assertVec3(t, "Direction", cam.Direction, mgl64.Vec3{-1, 0, 0})
	assertVec3(t, "Up", cam.Up, AxisY)
}

func TestCameraPitch(t *testing.T) {
	cam := newCamera(Perspective)
	cam.Pitch(math.Pi / 2)
	assertVec3(t, "Direction", cam.Direction, AxisY)
	assertVec3(t, "Up", cam.Up, AxisZ)
}

func TestCameraRoll(t *testing.T) {
	cam := newCamera(Perspective)
	cam.Roll(math.Pi / 2)
	assertVec3(t, "Direction", cam.Direction, Forward)
	assertNear(t, "Up.Direction", cam.Up.Dot(cam.Direction), 0)
	assertNear(t, "Up.Y", cam.Up[1], 0)
}

func TestCameraSetDirectionIgnoresZero(t *testing.T) {
	cam := newCamera(Perspective)
	cam.SetDirection(mgl64.Vec3{})
	if cam.Direction != Forward {
		t.Errorf("Direction = %v, want unchanged", cam.Direction)
	}
	cam.SetUp(mgl64.Vec3{})
	if cam.Up != AxisY {
		t.Errorf("Up = %v, want unchanged", cam.Up)
	}
}

func TestCameraOrthogonalizeParallelUp(t *testing.T) {
	cam := newCamera(Perspective)
	cam.SetDirection(AxisY)
	assertNear(t, "Up.Direction", cam.Up.Dot(cam.Direction), 0)
	assertNear(t, "|Up|", cam.Up.Len(), 1)
}

func TestCameraSetDirectionNormalizes(t *testing.T) {
	cam := newCamera(Perspective)
	cam.SetDirection(mgl64.Vec3{3, 0, -4})
	assertVec3(t, "Direction", cam.Direction, mgl64.Vec3{0.6, 0, -0.8})
	assertNear(t, "Up.Direction", cam.Up.Dot(cam.Direction), 0)
}

func TestCameraFlatAxes(t *testing.T) {
	cam := newCamera(Perspective)
	cam.SetDirection(mgl64.Vec3{0, -1, -1})
	assertVec3(t, "FlatForward", cam.FlatForward(), Forward)
	assertVec3(t, "FlatRight", cam.FlatRight(), AxisX)

	cam.SetDirection(mgl64.Vec3{0, -1, 0})
	assertVec3(t, "FlatForward straight down", cam.FlatForward(), Forward)
}

func TestCameraMove(t *testing.T) {
	cam := newCamera(Perspective)
	cam.SetPosition(mgl64.Vec3{1, 2, 3})
	cam.Move(mgl64.Vec3{1, 1, 1})
	assertVec3(t, "Position", cam.Position, mgl64.Vec3{2, 3, 4})
}

func TestCameraWorldToView(t *testing.T) {
	cam := newCamera(Perspective)
	cam.SetPosition(mgl64.Vec3{0, 0, 10})
	assertVec3(t, "origin", cam.WorldToView(mgl64.Vec3{}), mgl64.Vec3{0, 0, -10})

	cam.SetPosition(mgl64.Vec3{})
	cam.Yaw(math.Pi / 2)
	// Looking down -X: a point ahead lands on the view -Z axis.
	assertVec3(t, "ahead", cam.WorldToView(mgl64.Vec3{-5, 0, 0}), mgl64.Vec3{0, 0, -5})
}

func TestCameraViewMatrix(t *testing.T) {
	cam := newCamera(Perspective)
	cam.SetPosition(mgl64.Vec3{1, 2, 3})
	cam.SetDirection(mgl64.Vec3{1, -1, -1})
	p := mgl64.Vec3{4, -2, 7}
	got := cam.ViewMatrix().Mul4x1(p.Vec4(1)).Vec3()
	assertVec3(t, "view matrix", got, cam.WorldToView(p))
}

func TestCameraViewTransform(t *testing.T) {
	cam := newCamera(Perspective)
	cam.SetPosition(mgl64.Vec3{-3, 1, 2})
	cam.Yaw(0.7)
	p := mgl64.Vec3{2, 5, -1}
	assertVec3(t, "view transform", cam.ViewTransform().TransformVec3(p), cam.WorldToView(p))
	assertVec3(t, "Forward", cam.Forward(), cam.Direction)
}
