package backdrop

import "math/rand/v2"

// Capability is a bitmask of the behaviors a Point takes part in.
type Capability uint8

const (
	// CapMove lets the point wander on its own, bouncing off the surface edges.
	CapMove Capability = 1 << iota
	// CapDrag lets the pointer focus and reposition the point.
	CapDrag

	// CapAll is the set used by Field points.
	CapAll = CapMove | CapDrag
)

// Direction is a unit step per axis; each component is -1, 0 or 1.
type Direction struct {
	DX, DY int
}

// RandomDirection draws each axis independently and uniformly from {-1, 0, 1}.
func RandomDirection(rng *rand.Rand) Direction {
	return Direction{DX: rng.IntN(3) - 1, DY: rng.IntN(3) - 1}
}

// Point is a small filled circle. A single flat type covers every kind of
// point; Caps selects which of motion and dragging apply.
type Point struct {
	X, Y   float64
	Radius float64
	Dir    Direction

	caps    Capability
	frozen  bool
	focused bool

	shape Circle
	drawn bool
}

// NewPoint creates a point at (x, y) with the default radius. Movable points
// get a random direction from rng; rng may be nil for points without CapMove.
func NewPoint(x, y float64, caps Capability, rng *rand.Rand) *Point {
	p := &Point{X: x, Y: y, Radius: DefaultPointRadius, caps: caps}
	if caps&CapMove != 0 && rng != nil {
		p.Dir = RandomDirection(rng)
	}
	return p
}

// Has reports whether the point has every capability in c.
func (p *Point) Has(c Capability) bool {
	return p.caps&c == c
}

// Draw fills the point's circle in c, or in focus when the point is a
// focused draggable point, and records the circle for hit-testing.
func (p *Point) Draw(s Surface, c, focus Color) {
	if p.focused && p.Has(CapDrag) {
		c = focus
	}
	p.shape = Circle{X: p.X, Y: p.Y, Radius: p.Radius}
	p.drawn = true
	s.FillCircle(p.shape, c)
}

// Shape returns the circle recorded by the most recent Draw. ok is false if
// the point has never been drawn.
func (p *Point) Shape() (c Circle, ok bool) {
	return p.shape, p.drawn
}

// Contains hit-tests (x, y) against the last drawn circle, which lags the
// current position if the point moved since it was drawn.
func (p *Point) Contains(x, y float64) bool {
	return p.drawn && p.shape.Contains(x, y)
}

// Step advances a movable, unfrozen point by one unit along its direction.
// An edge within reach of the radius forces the matching component to point
// inward before the move, whatever its current sign.
func (p *Point) Step(width, height float64) {
	if p.frozen || !p.Has(CapMove) {
		return
	}
	if p.X-p.Radius <= 0 {
		p.Dir.DX = 1
	}
	if p.X+p.Radius >= width {
		p.Dir.DX = -1
	}
	if p.Y-p.Radius <= 0 {
		p.Dir.DY = 1
	}
	if p.Y+p.Radius >= height {
		p.Dir.DY = -1
	}
	p.X += float64(p.Dir.DX)
	p.Y += float64(p.Dir.DY)
}

// MoveTo places the point at (x, y).
func (p *Point) MoveTo(x, y float64) {
	p.X = x
	p.Y = y
}

// SetFrozen suspends (true) or resumes (false) autonomous motion.
func (p *Point) SetFrozen(frozen bool) { p.frozen = frozen }

// Frozen reports whether autonomous motion is suspended.
func (p *Point) Frozen() bool { return p.frozen }

// Focused reports whether the point is highlighted.
func (p *Point) Focused() bool { return p.focused }

// Focus highlights a draggable point and repaints its recorded circle in c
// right away, without waiting for the next render.
func (p *Point) Focus(s Surface, c Color) {
	if !p.Has(CapDrag) {
		return
	}
	p.focused = true
	if p.drawn {
		s.FillCircle(p.shape, c)
	}
}

// Blur clears the highlight and repaints the recorded circle in c.
func (p *Point) Blur(s Surface, c Color) {
	if !p.Has(CapDrag) {
		return
	}
	p.focused = false
	if p.drawn {
		s.FillCircle(p.shape, c)
	}
}
