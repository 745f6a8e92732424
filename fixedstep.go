package sapling

// DefaultFixedStep is the shake and push sub-step in seconds (~30Hz).
const DefaultFixedStep = 0.033

// DefaultMaxCatchUpSteps caps the sub-steps run for one frame.
const DefaultMaxCatchUpSteps = 8

// FixedStep decouples a fixed-cadence effect from the variable frame
// delta. Time is accumulated and consumed in whole steps; the fractional
// remainder always carries over to the next frame.
type FixedStep struct {
	Step     float64
	MaxSteps int // 0 means unlimited

	acc float64
}

// NewFixedStep returns an accumulator with the given step and catch-up cap.
func NewFixedStep(step float64, maxSteps int) FixedStep {
	return FixedStep{Step: step, MaxSteps: maxSteps}
}

// Advance adds dt to the accumulator and calls fn once per whole step.
// Negative deltas are ignored. When more than MaxSteps steps are pending,
// the excess whole steps are dropped; the remainder is kept.
// Returns the number of steps run.
func (f *FixedStep) Advance(dt float64, fn func()) int {
	if dt > 0 {
		f.acc += dt
	}
	if f.Step <= 0 {
		return 0
	}
	n := 0
	for f.acc >= f.Step {
		if f.MaxSteps > 0 && n >= f.MaxSteps {
			whole := float64(int(f.acc / f.Step))
			f.acc -= whole * f.Step
			break
		}
		fn()
		f.acc -= f.Step
		n++
	}
	return n
}

// Pending returns the accumulated time not yet consumed.
func (f *FixedStep) Pending() float64 {
	return f.acc
}

// Reset clears the accumulator.
func (f *FixedStep) Reset() {
	f.acc = 0
}
