package sapling

import "github.com/hajimehoshi/ebiten/v2"

// inputFrame is the input state for one injected frame.
type inputFrame struct {
	keys    []ebiten.Key
	buttons [3]bool
	cursor  bool // x, y set for this frame
	x, y    int
	wheelY  float64
}

// InjectedInput is a scripted InputSource. Events are queued per frame and
// consumed one frame per Poll, so a test or replay can drive an
// InputController2d without a window.
type InjectedInput struct {
	queue []inputFrame
	cur   inputFrame
	x, y  int
}

// NewInjectedInput returns an idle source.
func NewInjectedInput() *InjectedInput {
	return &InjectedInput{}
}

// frameAt returns queued frame i, growing the queue as needed.
func (in *InjectedInput) frameAt(i int) *inputFrame {
	for len(in.queue) <= i {
		in.queue = append(in.queue, inputFrame{})
	}
	return &in.queue[i]
}

// HoldKey queues key as held for the next frames frames.
func (in *InjectedInput) HoldKey(key ebiten.Key, frames int) {
	for i := 0; i < frames; i++ {
		f := in.frameAt(i)
		f.keys = append(f.keys, key)
	}
}

// InjectWheel queues a vertical scroll on the next frame.
func (in *InjectedInput) InjectWheel(yoff float64) {
	in.frameAt(0).wheelY += yoff
}

// InjectDrag queues a drag with button: press at (fromX, fromY),
// linearly interpolated moves, and release at (toX, toY). The sequence
// consumes frames frames; minimum is 2 (press + release). A button the
// source does not track moves only the cursor.
func (in *InjectedInput) InjectDrag(button MouseButton, fromX, fromY, toX, toY, frames int) {
	if frames < 2 {
		frames = 2
	}
	held := int(button) < len(inputFrame{}.buttons)
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		f := in.frameAt(i)
		f.cursor = true
		f.x = fromX + int(float64(toX-fromX)*t)
		f.y = fromY + int(float64(toY-fromY)*t)
		if held {
			f.buttons[button] = i < frames-1
		}
	}
}

// Pending returns the number of queued frames not yet polled.
func (in *InjectedInput) Pending() int {
	return len(in.queue)
}

// Poll advances to the next queued frame. With an empty queue the source
// goes idle; the cursor stays where it was.
func (in *InjectedInput) Poll() {
	if len(in.queue) == 0 {
		in.cur = inputFrame{}
		return
	}
	in.cur = in.queue[0]
	copy(in.queue, in.queue[1:])
	in.queue = in.queue[:len(in.queue)-1]
	if in.cur.cursor {
		in.x, in.y = in.cur.x, in.cur.y
	}
}

// IsKeyPressed reports whether key is held this frame.
func (in *InjectedInput) IsKeyPressed(key ebiten.Key) bool {
	for _, k := range in.cur.keys {
		if k == key {
			return true
		}
	}
	return false
}

// IsMouseButtonPressed reports whether button is held this frame.
func (in *InjectedInput) IsMouseButtonPressed(button MouseButton) bool {
	if int(button) >= len(in.cur.buttons) {
		return false
	}
	return in.cur.buttons[button]
}

// CursorPosition returns the last injected cursor position.
func (in *InjectedInput) CursorPosition() (int, int) {
	return in.x, in.y
}

// Wheel returns this frame's injected scroll.
func (in *InjectedInput) Wheel() (float64, float64) {
	return 0, in.cur.wheelY
}
