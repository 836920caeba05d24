package backdrop

// syntheticPointerEvent represents a single injected pointer sample.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a press at (x, y). The event is consumed by the next
// Update call.
func (p *Pointer) InjectPress(x, y float64) {
	p.queue = append(p.queue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a move to (x, y) with the button held. Use this between
// InjectPress and InjectRelease to simulate a drag.
func (p *Pointer) InjectMove(x, y float64) {
	p.queue = append(p.queue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectHover queues a move to (x, y) with the button up.
func (p *Pointer) InjectHover(x, y float64) {
	p.queue = append(p.queue, syntheticPointerEvent{x: x, y: y})
}

// InjectRelease queues a release at (x, y).
func (p *Pointer) InjectRelease(x, y float64) {
	p.queue = append(p.queue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same position.
// Consumes two updates.
func (p *Pointer) InjectClick(x, y float64) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves, and a release at (toX, toY). The sequence consumes
// `frames` updates; the minimum is 2 (press + release).
func (p *Pointer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		p.InjectMove(x, y)
	}
	p.InjectRelease(toX, toY)
}

// Pending returns the number of queued injected events.
func (p *Pointer) Pending() int {
	return len(p.queue)
}

// popInjected removes and returns the oldest queued event.
func (p *Pointer) popInjected() (syntheticPointerEvent, bool) {
	if len(p.queue) == 0 {
		return syntheticPointerEvent{}, false
	}
	evt := p.queue[0]
	copy(p.queue, p.queue[1:])
	p.queue = p.queue[:len(p.queue)-1]
	return evt, true
}
