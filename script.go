package sapling

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in a camera script.
type scriptStep struct {
	Action string `yaml:"action"`
	Camera string `yaml:"camera,omitempty"` // "2d" or "3d" (default)

	// shake
	Begin    float64 `yaml:"begin,omitempty"`
	Scale    float64 `yaml:"scale,omitempty"`
	Duration float64 `yaml:"duration,omitempty"`
	Times    int     `yaml:"times,omitempty"`
	Type     string  `yaml:"type,omitempty"`

	// push
	CloseTime    float64 `yaml:"close_time,omitempty"`
	CloseSpeed   float64 `yaml:"close_speed,omitempty"`
	StopTime     float64 `yaml:"stop_time,omitempty"`
	FarawayTime  float64 `yaml:"faraway_time,omitempty"`
	FarawaySpeed float64 `yaml:"faraway_speed,omitempty"`
	Inversion    bool    `yaml:"inversion,omitempty"`

	// animate
	To []float64 `yaml:"to,omitempty"`

	// key, wait
	Key    string `yaml:"key,omitempty"`
	Frames int    `yaml:"frames,omitempty"`
}

// script is the top-level YAML structure of a camera script.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner sequences camera effects and injected input across frames.
// Attach it to a Scene via SetScriptRunner; it is stepped at the start of
// every Scene.Update.
//
// Actions: shake, push, stop, lock, unlock, animate, key, wait.
type ScriptRunner struct {
	// Input receives "key" steps. Must be set if the script holds keys.
	Input *InjectedInput

	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

var scriptKeys = map[string]ebiten.Key{
	"w": ebiten.KeyW, "a": ebiten.KeyA, "s": ebiten.KeyS, "d": ebiten.KeyD,
	"up": ebiten.KeyArrowUp, "down": ebiten.KeyArrowDown,
	"left": ebiten.KeyArrowLeft, "right": ebiten.KeyArrowRight,
}

// LoadScript parses and checks a YAML camera script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse camera script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse camera script: no steps")
	}
	for i, st := range sc.Steps {
		if err := st.check(); err != nil {
			return nil, fmt.Errorf("parse camera script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

func (st scriptStep) check() error {
	switch st.Action {
	case "shake":
		if _, ok := ParseShakeType(st.Type); !ok {
			return fmt.Errorf("unknown shake type %q", st.Type)
		}
	case "push", "stop", "lock", "unlock", "wait":
	case "animate":
		if len(st.To) != 3 {
			return fmt.Errorf("animate needs a 3-element target, got %d", len(st.To))
		}
	case "key":
		if _, ok := scriptKeys[strings.ToLower(st.Key)]; !ok {
			return fmt.Errorf("unknown key %q", st.Key)
		}
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	switch st.Camera {
	case "", "2d", "3d":
	default:
		return fmt.Errorf("unknown camera %q", st.Camera)
	}
	return nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Scene.Update.
func (r *ScriptRunner) step(s *Scene) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	// Run every non-wait step up to the next wait in this frame.
	for r.cursor < len(r.steps) {
		st := r.steps[r.cursor]
		r.cursor++
		if st.Action == "wait" {
			if st.Frames > 0 {
				r.waitCount = st.Frames - 1 // this frame counts as one
			}
			break
		}
		r.run(s, st)
	}
	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

func (r *ScriptRunner) run(s *Scene, st scriptStep) {
	cam := s.Camera3D()
	if st.Camera == "2d" {
		cam = s.Camera2D()
	}
	switch st.Action {
	case "shake":
		typ, _ := ParseShakeType(st.Type)
		cam.AddCameraShake(st.Begin, st.Scale, st.Duration, st.Times, typ)
	case "push":
		cam.AddCameraPush(CameraPush{
			BeginTime:    st.Begin,
			CloseTime:    st.CloseTime,
			CloseSpeed:   st.CloseSpeed,
			StopTime:     st.StopTime,
			FarawayTime:  st.FarawayTime,
			FarawaySpeed: st.FarawaySpeed,
			IsInversion:  st.Inversion,
		})
	case "stop":
		cam.Stop()
	case "lock":
		cam.Lock()
	case "unlock":
		cam.Unlock()
	case "animate":
		cam.PlayAnimation(mgl64.Vec3{st.To[0], st.To[1], st.To[2]}, float32(st.Duration), ease.InOutQuad)
	case "key":
		if r.Input != nil {
			r.Input.HoldKey(scriptKeys[strings.ToLower(st.Key)], st.Frames)
		}
	}
}
