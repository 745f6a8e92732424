package sapling

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// cameraAnim holds the active cinematic tweens for the base position.
type cameraAnim struct {
	tweens [3]*gween.Tween
	done   [3]bool
}

func (a *cameraAnim) clone() *cameraAnim {
	cp := &cameraAnim{done: a.done}
	for i, tw := range a.tweens {
		t := *tw
		cp.tweens[i] = &t
	}
	return cp
}

// CameraMain is a camera with gated pose mutation and an owned shake
// module. Its rendered position is always the base position plus the
// shake and push offsets.
//
// Pose setters are silently ignored unless the state is CameraNormal or
// CameraShake, so gameplay code can keep calling them while a cinematic
// holds the camera.
type CameraMain struct {
	Name string

	pose  Camera
	state CameraState

	base        mgl64.Vec3
	shakeOffset mgl64.Vec3
	pushOffset  mgl64.Vec3

	shake *CameraShakeModule
	anim  *cameraAnim
	store EntityStore
}

// NewCameraMain creates a camera looking down -Z from the origin. A nil
// cfg uses DefaultConfig.
func NewCameraMain(name string, proj Projection, cfg *Config) *CameraMain {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := &CameraMain{Name: name, pose: *newCamera(proj)}
	c.shake = newCameraShakeModule(c, cfg)
	return c
}

// Camera returns a copy of the final camera pose, as read by a renderer.
func (c *CameraMain) Camera() Camera {
	return c.pose
}

// State returns the current camera state.
func (c *CameraMain) State() CameraState {
	return c.state
}

// ShakeModule returns the owned shake module.
func (c *CameraMain) ShakeModule() *CameraShakeModule {
	return c.shake
}

// Position returns the final position: base + shake offset + push offset.
func (c *CameraMain) Position() mgl64.Vec3 { return c.pose.Position }

// BasePosition returns the position before offsets are applied.
func (c *CameraMain) BasePosition() mgl64.Vec3 { return c.base }

// Direction returns the normalized view direction.
func (c *CameraMain) Direction() mgl64.Vec3 { return c.pose.Direction }

// Up returns the normalized up vector.
func (c *CameraMain) Up() mgl64.Vec3 { return c.pose.Up }

// ShakeOffset returns the current shake offset.
func (c *CameraMain) ShakeOffset() mgl64.Vec3 { return c.shakeOffset }

// PushOffset returns the current push offset.
func (c *CameraMain) PushOffset() mgl64.Vec3 { return c.pushOffset }

// FOV returns the vertical field of view in radians.
func (c *CameraMain) FOV() float64 { return c.pose.FOV }

// SetFOV sets the vertical field of view in radians. Effects already
// running keep the normalization they started with.
func (c *CameraMain) SetFOV(fov float64) { c.pose.FOV = fov }

// Zoom returns the orthographic zoom factor.
func (c *CameraMain) Zoom() float64 { return c.pose.Zoom }

// SetZoom sets the orthographic zoom factor. Non-positive values are ignored.
func (c *CameraMain) SetZoom(z float64) {
	if z > 0 {
		c.pose.Zoom = z
	}
}

// --- Gated pose mutation ---

// SetPosition sets the base position.
func (c *CameraMain) SetPosition(pos mgl64.Vec3) {
	if !c.state.movable() {
		return
	}
	c.base = pos
	c.applyOffsets()
}

// SetDirection sets the view direction.
func (c *CameraMain) SetDirection(dir mgl64.Vec3) {
	if !c.state.movable() {
		return
	}
	c.pose.SetDirection(dir)
}

// SetUp sets the up vector.
func (c *CameraMain) SetUp(up mgl64.Vec3) {
	if !c.state.movable() {
		return
	}
	c.pose.SetUp(up)
}

// Yaw turns the camera around the world Y axis.
func (c *CameraMain) Yaw(angle float64) {
	if !c.state.movable() {
		return
	}
	c.pose.Yaw(angle)
}

// Pitch turns the camera around its right axis.
func (c *CameraMain) Pitch(angle float64) {
	if !c.state.movable() {
		return
	}
	c.pose.Pitch(angle)
}

// Roll turns the camera around its view direction.
func (c *CameraMain) Roll(angle float64) {
	if !c.state.movable() {
		return
	}
	c.pose.Roll(angle)
}

// Rotate turns the camera around a world axis.
func (c *CameraMain) Rotate(axis mgl64.Vec3, angle float64) {
	if !c.state.movable() {
		return
	}
	c.pose.Rotate(axis, angle)
}

// Move translates the base position.
func (c *CameraMain) Move(offset mgl64.Vec3) {
	if !c.state.movable() {
		return
	}
	c.base = c.base.Add(offset)
	c.applyOffsets()
}

// --- Offsets (written by the shake module, never gated) ---

// SetShakeOffset replaces the shake offset and recomputes the position.
func (c *CameraMain) SetShakeOffset(v mgl64.Vec3) {
	c.shakeOffset = v
	c.applyOffsets()
}

// SetPushOffset replaces the push offset and recomputes the position.
func (c *CameraMain) SetPushOffset(v mgl64.Vec3) {
	c.pushOffset = v
	c.applyOffsets()
}

func (c *CameraMain) applyOffsets() {
	c.pose.Position = c.base.Add(c.shakeOffset).Add(c.pushOffset)
}

// --- Effects ---

// FrameMove advances the cinematic animation, if any, then the shake module.
func (c *CameraMain) FrameMove(elapsed float64) {
	c.updateAnimation(float32(elapsed))
	c.shake.FrameMove(elapsed)
}

// AddCameraShake forwards to the shake module.
func (c *CameraMain) AddCameraShake(beginTime, scale, duration float64, shakeTimes int, typ ShakeType) bool {
	return c.shake.AddCameraShake(beginTime, scale, duration, shakeTimes, typ)
}

// AddCameraPush forwards to the shake module.
func (c *CameraMain) AddCameraPush(p CameraPush) bool {
	return c.shake.AddCameraPush(p)
}

// StopShake forwards to the shake module.
func (c *CameraMain) StopShake() { c.shake.StopShake() }

// StopPush forwards to the shake module.
func (c *CameraMain) StopPush() { c.shake.StopPush() }

// Stop ends shake and push.
func (c *CameraMain) Stop() { c.shake.Stop() }

// IsCameraShake reports whether a shake is active.
func (c *CameraMain) IsCameraShake() bool { return c.shake.IsCameraShake() }

// IsCameraPush reports whether a push is active.
func (c *CameraMain) IsCameraPush() bool { return c.shake.IsCameraPush() }

// fov returns the field of view used to normalize effect speeds.
func (c *CameraMain) fov() float64 {
	if c.pose.FOV <= 0 {
		return DefaultFOV
	}
	return c.pose.FOV
}

// effectStarted moves a free camera into CameraShake. Cinematic and locked
// states are left alone; the offsets still apply.
func (c *CameraMain) effectStarted() {
	if c.state.movable() {
		c.setState(CameraShake)
	}
}

// effectsEnded returns a shaking camera to CameraNormal. Callers check that
// neither effect is still active.
func (c *CameraMain) effectsEnded() {
	if c.state == CameraShake {
		c.setState(CameraNormal)
	}
}

// restState is the state a camera settles into when released from a
// cinematic or lock.
func (c *CameraMain) restState() CameraState {
	if c.shake.IsCameraShake() || c.shake.IsCameraPush() {
		return CameraShake
	}
	return CameraNormal
}

func (c *CameraMain) setState(s CameraState) {
	if c.state == s {
		return
	}
	debugLogf("camera %q: %s -> %s", c.Name, c.state, s)
	c.state = s
	c.emit(CameraEventStateChanged, c.pose.Position)
}

// --- Lock and cinematic animation ---

// Lock freezes the camera against pose mutation and stops any animation.
func (c *CameraMain) Lock() {
	c.anim = nil
	c.setState(CameraLock)
}

// Unlock releases a locked camera. No-op unless the camera is locked.
func (c *CameraMain) Unlock() {
	if c.state != CameraLock {
		return
	}
	c.setState(c.restState())
}

// PlayAnimation moves the base position to target over duration seconds
// and holds the camera in CameraAnima until it arrives. A locked camera
// ignores the request. Returns whether the animation started.
func (c *CameraMain) PlayAnimation(target mgl64.Vec3, duration float32, easeFn ease.TweenFunc) bool {
	if c.state == CameraLock {
		return false
	}
	if easeFn == nil {
		easeFn = ease.Linear
	}
	a := &cameraAnim{}
	for i := range a.tweens {
		a.tweens[i] = gween.New(float32(c.base[i]), float32(target[i]), duration, easeFn)
	}
	c.anim = a
	c.setState(CameraAnima)
	return true
}

// IsAnimating reports whether a cinematic animation is running.
func (c *CameraMain) IsAnimating() bool {
	return c.anim != nil
}

// StopAnimation ends the cinematic animation where it is.
func (c *CameraMain) StopAnimation() {
	if c.anim == nil {
		return
	}
	c.anim = nil
	if c.state == CameraAnima {
		c.setState(c.restState())
	}
}

func (c *CameraMain) updateAnimation(dt float32) {
	a := c.anim
	if a == nil {
		return
	}
	allDone := true
	for i, tw := range a.tweens {
		if a.done[i] {
			continue
		}
		val, done := tw.Update(dt)
		c.base[i] = float64(val)
		a.done[i] = done
		if !done {
			allDone = false
		}
	}
	c.applyOffsets()
	if allDone {
		c.StopAnimation()
	}
}

// --- Clone and events ---

// Clone returns an independent copy of the camera: pose, state, offsets,
// a deep copy of the shake module and of any running animation. The clone
// has no event sink.
func (c *CameraMain) Clone() *CameraMain {
	cp := *c
	cp.store = nil
	cp.shake = c.shake.clone(&cp)
	if c.anim != nil {
		cp.anim = c.anim.clone()
	}
	return &cp
}

// SetEventSink sets the store that receives this camera's events.
func (c *CameraMain) SetEventSink(store EntityStore) {
	c.store = store
}

func (c *CameraMain) emit(typ CameraEventType, offset mgl64.Vec3) {
	if c.store == nil {
		return
	}
	c.store.EmitEvent(CameraEvent{
		Type:     typ,
		Camera:   c.Name,
		State:    c.state,
		Position: c.pose.Position,
		Offset:   offset,
	})
}
