package backdrop

import (
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// Field is a set of wandering points joined by lines whose opacity fades with
// distance. The pointer can freeze a point by hovering it and drag it by
// pressing on it.
type Field struct {
	surface Surface
	cfg     FieldConfig
	rng     *rand.Rand
	points  []*Point

	interval *Interval

	// Interaction state. At most one drag target and one hover-frozen point.
	dragging bool
	target   *Point
	frozen   *Point

	store EventStore
	debug bool
	stats Stats
}

// NewField creates cfg.Count points at random positions. Motion is not
// started; call StartMotion.
func NewField(s Surface, cfg FieldConfig) (*Field, error) {
	if s == nil {
		return nil, ErrNilSurface
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	f := &Field{
		surface: s,
		cfg:     cfg,
		rng:     newRand(cfg.Seed),
	}
	f.interval = NewInterval(PeriodFor(cfg.TicksPerSecond), f.tick)
	f.CreatePoints(cfg.Count)

	logger.Info("field created",
		zap.Int("points", len(f.points)),
		zap.Float64("threshold", cfg.Threshold),
		zap.Float64("ticksPerSecond", cfg.TicksPerSecond))
	return f, nil
}

// CreatePoints appends n movable, draggable points placed uniformly at
// random within the surface and returns them.
func (f *Field) CreatePoints(n int) []*Point {
	w, h := float64(f.surface.Width()), float64(f.surface.Height())
	start := len(f.points)
	for i := 0; i < n; i++ {
		p := NewPoint(f.rng.Float64()*w, f.rng.Float64()*h, CapAll, f.rng)
		f.points = append(f.points, p)
	}
	return f.points[start:]
}

// AddPoint appends p to the field.
func (f *Field) AddPoint(p *Point) {
	f.points = append(f.points, p)
}

// Points returns the field's points. The returned slice MUST NOT be mutated.
func (f *Field) Points() []*Point {
	return f.points
}

// Threshold returns the line distance threshold.
func (f *Field) Threshold() float64 { return f.cfg.Threshold }

// Distance returns the Euclidean distance between a and b.
func Distance(a, b *Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// LineOpacity returns the stroke opacity of a line of length d under
// threshold t: 1 at distance 0, falling linearly to 0 at the threshold.
// ok is false when the points are too far apart to be joined.
func LineOpacity(d, t float64) (opacity float64, ok bool) {
	if d > t {
		return 0, false
	}
	if t == 0 {
		return 1, true
	}
	return clamp01(1 - d/t), true
}

// Render clears the surface, paints the background and draws every line and
// point. Lines are stroked for every ordered pair (i, j) within the threshold,
// so each pair is stroked once from each end. Points are repainted every
// frame on top of the lines; nothing is tracked between frames.
func (f *Field) Render() {
	var t0 time.Time
	if f.debug {
		t0 = time.Now()
	}

	w, h := float64(f.surface.Width()), float64(f.surface.Height())
	f.surface.Clear()
	f.surface.FillRect(Rect{Width: w, Height: h}, f.cfg.Background)

	lines := 0
	for i, a := range f.points {
		for j, b := range f.points {
			// A point's line to itself has zero length and draws nothing.
			// Points go on top afterwards rather than between lines.
			if i == j {
				continue
			}
			opacity, ok := LineOpacity(Distance(a, b), f.cfg.Threshold)
			if !ok {
				continue
			}
			f.surface.StrokeLine(a.X, a.Y, b.X, b.Y, f.cfg.LineColor.WithAlpha(opacity))
			lines++
		}
	}
	for _, p := range f.points {
		p.Draw(f.surface, f.cfg.PointColor, f.cfg.FocusColor)
	}

	f.stats.Renders++
	f.stats.Lines = lines
	if f.debug {
		f.stats.RenderTime = time.Since(t0)
		f.debugLog()
	}
}

// HitTest returns the first point whose last drawn circle contains (x, y),
// or nil.
func (f *Field) HitTest(x, y float64) *Point {
	for _, p := range f.points {
		if p.Contains(x, y) {
			return p
		}
	}
	return nil
}

// tick steps every point and re-renders.
func (f *Field) tick() {
	w, h := float64(f.surface.Width()), float64(f.surface.Height())
	for _, p := range f.points {
		p.Step(w, h)
	}
	f.stats.Ticks++
	f.Render()
}

// StartMotion starts the motion schedule at 1000 / TicksPerSecond
// milliseconds. With a zero rate the points never move on their own.
func (f *Field) StartMotion() {
	if f.cfg.TicksPerSecond == 0 || f.interval.Running() {
		return
	}
	f.interval.Start()
	logger.Info("field motion started", zap.Duration("period", f.interval.Period()))
}

// StopMotion cancels the motion schedule.
func (f *Field) StopMotion() {
	if !f.interval.Running() {
		return
	}
	f.interval.Stop()
	logger.Info("field motion stopped")
}

// Moving reports whether the motion schedule is running.
func (f *Field) Moving() bool { return f.interval.Running() }

// Advance feeds dt of host time to the motion schedule.
func (f *Field) Advance(dt time.Duration) {
	f.interval.Advance(dt)
}

// --- Pointer input ---

// HandleMove reacts to the pointer moving to (x, y).
//
// While dragging, the target follows the pointer, but only when both x and y
// differ from the target's position: a purely horizontal or vertical move
// leaves it in place.
//
// Otherwise hovering a point freezes it and shows the pointer cursor, and
// moving over empty space restores the cursor and unfreezes it.
func (f *Field) HandleMove(x, y float64) {
	hit := f.HitTest(x, y)

	if f.dragging {
		if f.target.X != x && f.target.Y != y {
			f.target.MoveTo(x, y)
			f.Render()
			f.emit(EventDrag, f.target, x, y)
		}
		return
	}

	if hit != nil {
		if f.frozen != nil && f.frozen != hit {
			f.frozen.SetFrozen(false)
		}
		changed := f.frozen != hit
		f.frozen = hit
		hit.SetFrozen(true)
		f.surface.SetCursor(CursorPointer)
		if changed {
			f.emit(EventHover, hit, x, y)
		}
		return
	}

	f.surface.SetCursor(CursorDefault)
	if f.frozen != nil {
		prev := f.frozen
		prev.SetFrozen(false)
		f.frozen = nil
		f.emit(EventUnhover, prev, x, y)
	}
}

// HandlePress starts dragging the point under (x, y), if any. The point is
// frozen for the duration of the drag and highlighted.
func (f *Field) HandlePress(x, y float64) {
	hit := f.HitTest(x, y)
	if hit == nil || !hit.Has(CapDrag) {
		return
	}
	if f.frozen != nil && f.frozen != hit {
		f.frozen.SetFrozen(false)
	}
	f.frozen = hit
	hit.SetFrozen(true)

	f.dragging = true
	f.target = hit
	hit.Focus(f.surface, f.cfg.FocusColor)

	logger.Debug("drag start", zap.Float64("x", hit.X), zap.Float64("y", hit.Y))
	f.emit(EventPress, hit, x, y)
}

// HandleRelease ends a drag and removes the highlight. Releasing without an
// active drag does nothing.
func (f *Field) HandleRelease(x, y float64) {
	if f.target == nil {
		f.dragging = false
		return
	}
	p := f.target
	p.Blur(f.surface, f.cfg.PointColor)
	f.dragging = false
	f.target = nil

	logger.Debug("drag end", zap.Float64("x", p.X), zap.Float64("y", p.Y))
	f.emit(EventRelease, p, x, y)
}

// Dragging returns the point being dragged, or nil.
func (f *Field) Dragging() *Point {
	if !f.dragging {
		return nil
	}
	return f.target
}

// Hovered returns the point frozen by hover, or nil.
func (f *Field) Hovered() *Point { return f.frozen }

// SetEventStore sets the optional event sink.
func (f *Field) SetEventStore(store EventStore) {
	f.store = store
}

func (f *Field) emit(t EventType, p *Point, x, y float64) {
	if f.store == nil {
		return
	}
	f.store.EmitEvent(InteractionEvent{
		Type:   t,
		Index:  f.indexOf(p),
		X:      x,
		Y:      y,
		PointX: p.X,
		PointY: p.Y,
	})
}

func (f *Field) indexOf(p *Point) int {
	for i, q := range f.points {
		if q == p {
			return i
		}
	}
	return -1
}
