package app

import "rangeslider/internal/slider"

// pointerState is the last mouse position the terminal reported and whether
// the left button is held.
type pointerState struct {
	x       int
	y       int
	known   bool
	pressed bool
}

// hitRegion measures the pointer against a region's current position, so a
// handle that catches up with the pointer sees its offset shrink to 0.
type hitRegion struct {
	m    *Model
	kind slider.Kind
}

func (r hitRegion) PointerOffset() (float64, bool) {
	if !r.m.pointer.known {
		return 0, false
	}
	x, ok := r.m.layout().origin(r.kind)
	if !ok {
		return 0, false
	}
	return float64(r.m.pointer.x - x), true
}

func (r hitRegion) Pressed() bool {
	return r.m.pointer.pressed
}

type pointerCapture struct {
	held bool
}

func (c *pointerCapture) CapturePointer() bool {
	if c.held {
		return false
	}
	c.held = true
	return true
}

func (c *pointerCapture) ReleasePointer() {
	c.held = false
}
