package backdrop

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// Rain draws columns of random glyphs that fall one row per tick and leave a
// fading trail. Each tick paints a translucent black veil over the whole
// surface, so older glyphs darken until they vanish.
type Rain struct {
	surface Surface
	cfg     RainConfig
	rng     *rand.Rand
	glyphs  []rune

	positions []int
	rows      int
	fade      Color

	interval *Interval
	ticks    int
}

// NewRain paints the surface black and lays out one column per glyph width.
// Every column starts at row 0.
func NewRain(s Surface, cfg RainConfig) (*Rain, error) {
	if s == nil {
		return nil, ErrNilSurface
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Rain{
		surface: s,
		cfg:     cfg,
		rng:     newRand(cfg.Seed),
		glyphs:  []rune(cfg.Glyphs),
	}
	r.interval = NewInterval(PeriodFor(cfg.TicksPerSecond), r.Tick)

	w, h := s.Width(), s.Height()
	if float64(max(w, h))/cfg.GlyphSize > maxCells {
		return nil, fmt.Errorf("%w (got %v for a %dx%d surface)", ErrInvalidGlyphSize, cfg.GlyphSize, w, h)
	}
	s.FillRect(Rect{Width: float64(w), Height: float64(h)}, ColorBlack)

	cols := cellCount(w, cfg.GlyphSize)
	r.positions = make([]int, cols)
	r.rows = cellCount(h, cfg.GlyphSize)
	if r.rows > 0 {
		r.fade = ColorBlack.WithAlpha(DefaultTrailIntensity / float64(r.rows))
	}

	logger.Info("rain created",
		zap.Int("width", w), zap.Int("height", h),
		zap.Int("columns", cols), zap.Int("rows", r.rows),
		zap.Float64("glyphSize", cfg.GlyphSize))
	return r, nil
}

// maxCells caps the columns or rows a glyph size may lay out.
const maxCells = 1 << 20

// cellCount returns floor(extent / size), or 0 for a non-positive extent.
func cellCount(extent int, size float64) int {
	if extent <= 0 {
		return 0
	}
	return int(math.Floor(float64(extent) / size))
}

// Tick paints the trail veil, draws one glyph per column and advances every
// column by a row. A column already past the visible rows keeps falling until
// a random reset sends it back to the top.
func (r *Rain) Tick() {
	if len(r.positions) == 0 || r.rows == 0 {
		return
	}
	r.ticks++

	w, h := r.surface.Width(), r.surface.Height()
	r.surface.FillRect(Rect{Width: float64(w), Height: float64(h)}, r.fade)

	g := r.cfg.GlyphSize
	for col, row := range r.positions {
		glyph := string(r.glyphs[r.rng.IntN(len(r.glyphs))])
		r.surface.FillText(glyph, float64(col)*g, float64(row)*g, g, r.cfg.Color)
	}

	for col, row := range r.positions {
		if row >= r.rows && r.rng.Float64() < r.cfg.ResetChance {
			r.positions[col] = 0
			continue
		}
		r.positions[col] = row + 1
	}
}

// Start begins ticking every 1000 / TicksPerSecond milliseconds of host time.
// The rain runs until the host stops advancing it.
func (r *Rain) Start() {
	r.interval.Start()
	logger.Info("rain started", zap.Duration("period", r.interval.Period()))
}

// Advance feeds dt of host time to the tick schedule.
func (r *Rain) Advance(dt time.Duration) {
	r.interval.Advance(dt)
}

// Columns returns a copy of the current row position of every column.
func (r *Rain) Columns() []int {
	out := make([]int, len(r.positions))
	copy(out, r.positions)
	return out
}

// Rows returns the number of fully visible rows, floor(height / glyph size).
func (r *Rain) Rows() int { return r.rows }

// Ticks returns how many ticks have drawn so far.
func (r *Rain) Ticks() int { return r.ticks }

// Config returns the effective configuration, defaults applied.
func (r *Rain) Config() RainConfig { return r.cfg }

func (r *Rain) String() string {
	return fmt.Sprintf("rain(%d cols, %d rows, glyph %v)", len(r.positions), r.rows, r.cfg.GlyphSize)
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
