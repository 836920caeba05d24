package backdrop

// PointerHandler receives pointer phases. Field implements it.
type PointerHandler interface {
	HandleMove(x, y float64)
	HandlePress(x, y float64)
	HandleRelease(x, y float64)
}

// Pointer turns sampled pointer state into Move, Press and Release calls.
// Hosts call Update once per frame (or per input event) with the current
// position and button state. Injected events take priority over real input.
type Pointer struct {
	handler PointerHandler

	down  bool
	seen  bool
	lastX float64
	lastY float64
	queue []syntheticPointerEvent
}

// NewPointer creates a pointer that forwards to h.
func NewPointer(h PointerHandler) *Pointer {
	return &Pointer{handler: h}
}

// Down reports whether the button is held.
func (p *Pointer) Down() bool { return p.down }

// Position returns the last known position.
func (p *Pointer) Position() (x, y float64) { return p.lastX, p.lastY }

// Update processes one sample. If an injected event is queued, it is used in
// place of (x, y, pressed).
func (p *Pointer) Update(x, y float64, pressed bool) {
	if evt, ok := p.popInjected(); ok {
		x, y, pressed = evt.x, evt.y, evt.pressed
	}
	p.process(x, y, pressed)
}

// process runs the pointer state machine for a single sample. A position
// change is reported before a press or release on the same sample, the order
// in which a browser delivers mousemove and mousedown.
func (p *Pointer) process(x, y float64, pressed bool) {
	if !p.seen || x != p.lastX || y != p.lastY {
		p.seen = true
		p.lastX = x
		p.lastY = y
		p.handler.HandleMove(x, y)
	}

	switch {
	case pressed && !p.down:
		p.down = true
		p.handler.HandlePress(x, y)
	case !pressed && p.down:
		p.down = false
		p.handler.HandleRelease(x, y)
	}
}
