package sapling

import "github.com/go-gl/mathgl/mgl64"

// CameraPush is a dolly request: move along the view axis for CloseTime,
// hold for StopTime, then move back for FarawayTime. Speeds are in world
// units per second before field-of-view normalization. IsInversion pulls
// out first and pushes back in afterwards.
type CameraPush struct {
	BeginTime    float64
	CloseTime    float64
	CloseSpeed   float64
	StopTime     float64
	FarawayTime  float64
	FarawaySpeed float64
	IsInversion  bool
}

// CameraPushEvent is the running state of an accepted push.
// DurationTime < 0 means no push.
type CameraPushEvent struct {
	CameraPush
	DurationTime float64
	Elapsed      float64
	CurScale     float64 // accumulated offset along the view axis
}

func inactivePush() CameraPushEvent {
	return CameraPushEvent{DurationTime: -1}
}

// IsCameraPush reports whether a push is active (possibly still delayed).
func (m *CameraShakeModule) IsCameraPush() bool {
	return m.push.DurationTime >= 0
}

// Push returns a copy of the running push state.
func (m *CameraShakeModule) Push() CameraPushEvent {
	return m.push
}

// AddCameraPush starts a push if its total duration is longer than the
// active push's; shorter or equal requests are ignored. Speeds are divided
// by fov*10 so the apparent motion matches across fields of view.
// Returns whether the request was accepted.
func (m *CameraShakeModule) AddCameraPush(p CameraPush) bool {
	duration := p.CloseTime + p.StopTime + p.FarawayTime
	if duration <= 0 || duration <= m.push.DurationTime {
		debugLogf("camera %q: push rejected (duration %.3f <= active %.3f)", m.camera.Name, duration, m.push.DurationTime)
		return false
	}
	m.StopPush()
	norm := m.camera.fov() * 10
	p.CloseSpeed /= norm
	p.FarawaySpeed /= norm
	m.push = CameraPushEvent{CameraPush: p, DurationTime: duration}
	m.camera.effectStarted()
	debugLogf("camera %q: push close=%.3f stop=%.3f away=%.3f inverted=%v",
		m.camera.Name, p.CloseTime, p.StopTime, p.FarawayTime, p.IsInversion)
	m.camera.emit(CameraEventPushStart, m.camera.pushOffset)
	return true
}

// StopPush ends the active push, zeroes the push offset and returns the
// camera to normal unless a shake is still active.
func (m *CameraShakeModule) StopPush() {
	wasActive := m.IsCameraPush()
	m.push = inactivePush()
	m.pushClock.Reset()
	m.camera.SetPushOffset(mgl64.Vec3{})
	if !m.IsCameraShake() {
		m.camera.effectsEnded()
	}
	if wasActive {
		m.camera.emit(CameraEventPushStop, mgl64.Vec3{})
	}
}

func (m *CameraShakeModule) updatePush(dt float64) {
	if m.push.DurationTime < 0 {
		return
	}
	m.push.BeginTime -= dt
	if m.push.BeginTime > 0 {
		return
	}
	m.pushClock.Advance(dt, m.pushTick)
}

func (m *CameraShakeModule) pushTick() {
	p := &m.push
	if p.DurationTime < 0 {
		return
	}
	step := m.pushClock.Step
	p.Elapsed += step

	switch {
	case p.Elapsed <= p.CloseTime:
		if p.IsInversion {
			p.CurScale -= p.FarawaySpeed * step
		} else {
			p.CurScale += p.CloseSpeed * step
		}
	case p.Elapsed <= p.CloseTime+p.StopTime:
		// dwell
	case p.Elapsed <= p.DurationTime:
		if p.IsInversion {
			p.CurScale += p.CloseSpeed * step
		} else {
			p.CurScale -= p.FarawaySpeed * step
		}
	default:
		m.StopPush()
		return
	}
	m.camera.SetPushOffset(m.camera.pose.Direction.Mul(p.CurScale))
}
