package sapling

import "github.com/go-gl/mathgl/mgl64"

// Default extent clamp for the legacy shake, in world units along the view axis.
const (
	DefaultMinShakeExtent = -10.0
	DefaultMaxShakeExtent = 10.0
)

// Legacy shake phase boundaries as fractions of the shake duration.
const (
	shakeKickPhase    = 0.6
	shakeReboundPhase = 0.4
)

// CameraShakeInfo describes the active shake. Duration < 0 means no shake.
type CameraShakeInfo struct {
	BeginTime  float64 // delay before the shake starts, counts down
	Scale      float64
	TimeLast   float64 // time remaining in the current cycle
	Duration   float64
	Speed      float64 // per-step extent, normalized by field of view
	ShakeTimes int     // cycles (legacy) or wave steps (wave tables)
	Type       ShakeType
}

func inactiveShake() CameraShakeInfo {
	return CameraShakeInfo{Duration: -1}
}

// CameraShakeModule perturbs one CameraMain with shake and push offsets.
// It is ticked once per frame by CameraMain.FrameMove and advances both
// effects on a fixed sub-step.
type CameraShakeModule struct {
	camera *CameraMain

	shake       CameraShakeInfo
	shakeClock  FixedStep
	step1       int
	step2       int
	bounce      float64 // sign of the next corrective bounce
	extent      float64 // legacy offset along the view axis
	shakeArray  []mgl64.Vec2
	shakedTimes int

	push      CameraPushEvent
	pushClock FixedStep

	minExtent float64
	maxExtent float64
}

// newCameraShakeModule creates an inert module bound to cam.
func newCameraShakeModule(cam *CameraMain, cfg *Config) *CameraShakeModule {
	return &CameraShakeModule{
		camera:     cam,
		shake:      inactiveShake(),
		push:       inactivePush(),
		shakeClock: NewFixedStep(cfg.FixedStep, cfg.MaxCatchUpSteps),
		pushClock:  NewFixedStep(cfg.FixedStep, cfg.MaxCatchUpSteps),
		minExtent:  cfg.Shake.MinExtent,
		maxExtent:  cfg.Shake.MaxExtent,
		bounce:     1,
	}
}

// clone returns an independent copy of the module bound to cam.
func (m *CameraShakeModule) clone(cam *CameraMain) *CameraShakeModule {
	cp := *m
	cp.camera = cam
	if m.shakeArray != nil {
		cp.shakeArray = append([]mgl64.Vec2(nil), m.shakeArray...)
	}
	return &cp
}

// FrameMove advances shake then push. The two effects are independent.
func (m *CameraShakeModule) FrameMove(dt float64) {
	m.updateShake(dt)
	m.updatePush(dt)
}

// Stop ends both effects.
func (m *CameraShakeModule) Stop() {
	m.StopShake()
	m.StopPush()
}

// IsCameraShake reports whether a shake is active (possibly still delayed).
func (m *CameraShakeModule) IsCameraShake() bool {
	return m.shake.Duration >= 0
}

// Shake returns a copy of the active shake parameters.
func (m *CameraShakeModule) Shake() CameraShakeInfo {
	return m.shake
}

// Steps returns the legacy shake step counters.
func (m *CameraShakeModule) Steps() (step1, step2 int) {
	return m.step1, m.step2
}

// ShakedTimes returns the number of wave-table steps taken by the active shake.
func (m *CameraShakeModule) ShakedTimes() int {
	return m.shakedTimes
}

// ShakeArray returns the wave table of the active shake. The returned
// slice MUST NOT be mutated.
func (m *CameraShakeModule) ShakeArray() []mgl64.Vec2 {
	return m.shakeArray
}

// AddCameraShake starts a shake if duration is longer than the active
// shake's duration; shorter or equal requests are ignored so a minor shake
// never truncates a larger one. Returns whether the request was accepted.
func (m *CameraShakeModule) AddCameraShake(beginTime, scale, duration float64, shakeTimes int, typ ShakeType) bool {
	if duration <= 0 || duration <= m.shake.Duration {
		debugLogf("camera %q: shake rejected (duration %.3f <= active %.3f)", m.camera.Name, duration, m.shake.Duration)
		return false
	}
	m.StopShake()
	if shakeTimes < 1 {
		shakeTimes = 1
	}
	m.shake = CameraShakeInfo{
		BeginTime:  beginTime,
		Scale:      scale,
		TimeLast:   duration,
		Duration:   duration,
		Speed:      scale / duration / (m.camera.fov() * 10),
		ShakeTimes: shakeTimes,
		Type:       typ,
	}
	m.camera.effectStarted()
	m.start()
	debugLogf("camera %q: shake %s scale=%.3f duration=%.3f times=%d", m.camera.Name, typ, scale, duration, shakeTimes)
	m.camera.emit(CameraEventShakeStart, m.camera.shakeOffset)
	return true
}

// StopShake ends the active shake, zeroes the shake offset and returns the
// camera to normal unless a push is still active.
func (m *CameraShakeModule) StopShake() {
	wasActive := m.IsCameraShake()
	m.shake = inactiveShake()
	m.shakeClock.Reset()
	m.step1, m.step2 = 0, 0
	m.bounce = 1
	m.extent = 0
	m.shakedTimes = 0
	m.shakeArray = nil
	m.camera.SetShakeOffset(mgl64.Vec3{})
	if !m.IsCameraPush() {
		m.camera.effectsEnded()
	}
	if wasActive {
		m.camera.emit(CameraEventShakeStop, mgl64.Vec3{})
	}
}

// start builds the wave table for the table-driven shake types.
func (m *CameraShakeModule) start() {
	s := m.shake.Scale
	switch m.shake.Type {
	case ShakeSquare:
		m.shakeArray = []mgl64.Vec2{{s, s}, {s, -s}, {-s, -s}, {-s, s}}
	case ShakeRhombus:
		m.shakeArray = []mgl64.Vec2{{s, 0}, {0, -s}, {-s, 0}, {0, s}}
	case ShakeLinear:
		m.shakeArray = []mgl64.Vec2{{s, 0}, {-s, 0}}
	default:
		m.shakeArray = nil
	}
}

func (m *CameraShakeModule) updateShake(dt float64) {
	if m.shake.Duration < 0 {
		return
	}
	m.shake.BeginTime -= dt
	if m.shake.BeginTime > 0 {
		return
	}
	m.shakeClock.Advance(dt, m.shakeTick)
}

func (m *CameraShakeModule) shakeTick() {
	if m.shake.Duration < 0 {
		return
	}
	switch m.shake.Type {
	case ShakeOld:
		m.updateDefaultShake()
	default:
		m.updateSquareShake()
	}
}

// updateDefaultShake runs one step of the legacy bounce. The cycle has
// four phases keyed on the time remaining:
//
//	TimeLast > 60%  kick forward, step1 grows
//	TimeLast > 40%  rebound past rest, step2 grows
//	TimeLast > 0    alternating bounces shrinking with step1 and time
//	TimeLast == 0   counters unwind to zero, then the cycle is consumed
func (m *CameraShakeModule) updateDefaultShake() {
	s := &m.shake
	s.TimeLast -= m.shakeClock.Step
	if s.TimeLast < 0 {
		s.TimeLast = 0
	}

	switch {
	case s.TimeLast > s.Duration*shakeKickPhase:
		m.step1++
		m.extent = s.Speed * float64(m.step1)
	case s.TimeLast > s.Duration*shakeReboundPhase:
		m.step2++
		m.extent = s.Speed * float64(m.step1-2*m.step2)
	case s.TimeLast > 0:
		if m.step1 > 0 {
			m.step1--
		}
		m.bounce = -m.bounce
		decay := s.TimeLast / (s.Duration * shakeReboundPhase)
		m.extent = m.bounce * s.Speed * float64(m.step1+m.step2) * decay
	default:
		if m.step1 > 0 {
			m.step1--
		} else if m.step2 > 0 {
			m.step2--
		}
		m.extent = s.Speed * float64(m.step1-m.step2) * 0.5
	}

	if s.TimeLast == 0 && m.step1 == 0 && m.step2 == 0 {
		s.ShakeTimes--
		if s.ShakeTimes <= 0 {
			m.StopShake()
			return
		}
		s.TimeLast = s.Duration
		m.bounce = 1
		m.extent = 0
	}

	m.extent = clamp(m.extent, m.minExtent, m.maxExtent)
	m.camera.SetShakeOffset(m.camera.pose.Direction.Mul(m.extent))
}

// updateSquareShake runs one step of a wave-table shake. x offsets along
// the camera's flat right axis, y along its flat forward axis.
func (m *CameraShakeModule) updateSquareShake() {
	if m.shakedTimes >= m.shake.ShakeTimes || len(m.shakeArray) == 0 {
		m.StopShake()
		return
	}
	m.shakedTimes++
	m.shake.TimeLast -= m.shakeClock.Step
	v := m.shakeArray[m.shakedTimes%len(m.shakeArray)]
	cam := &m.camera.pose
	offset := cam.FlatRight().Mul(v[0]).Add(cam.FlatForward().Mul(v[1]))
	m.camera.SetShakeOffset(offset)
}
