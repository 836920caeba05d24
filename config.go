package backdrop

import (
	"errors"
	"fmt"
	"math"
)

// Construction errors. Constructors wrap these with the offending value, so
// match them with errors.Is.
var (
	ErrNilSurface       = errors.New("backdrop: nil surface")
	ErrInvalidGlyphSize = errors.New("backdrop: glyph size must be positive and finite")
	ErrInvalidTickRate  = errors.New("backdrop: ticks per second must be a non-negative number")
	ErrInvalidThreshold = errors.New("backdrop: distance threshold must be a non-negative number")
	ErrInvalidCount     = errors.New("backdrop: point count must not be negative")
	ErrEmptyGlyphSet    = errors.New("backdrop: glyph set is empty")
)

// Rain defaults.
const (
	DefaultGlyphSize      = 20
	DefaultRainTicks      = 20
	DefaultResetChance    = 0.01
	DefaultTrailIntensity = 3
	Alphanumerics         = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Field defaults.
const (
	DefaultPointRadius = 5
	DefaultFieldCount  = 100
	DefaultThreshold   = 400
	DefaultFieldTicks  = 30
)

// RainConfig configures a Rain. Zero fields take their defaults.
type RainConfig struct {
	// GlyphSize is both the font size and the cell pitch in pixels. Default 20.
	GlyphSize float64
	// TicksPerSecond is the tick rate. Default 20.
	TicksPerSecond float64
	// Glyphs is the set random glyphs are drawn from. Default A–Z, a–z, 0–9.
	Glyphs string
	// Color is the glyph color. Default #0f0.
	Color Color
	// ResetChance is the per-tick probability that a column past the bottom
	// row restarts at the top. Zero takes the default 0.01; a negative value
	// means columns never restart.
	ResetChance float64
	// Seed seeds the glyph and reset random source. Zero picks a random seed.
	Seed uint64
}

func (c RainConfig) withDefaults() RainConfig {
	if c.GlyphSize == 0 {
		c.GlyphSize = DefaultGlyphSize
	}
	if c.TicksPerSecond == 0 {
		c.TicksPerSecond = DefaultRainTicks
	}
	if c.Glyphs == "" {
		c.Glyphs = Alphanumerics
	}
	if c.Color == (Color{}) {
		c.Color = ColorGreen
	}
	if c.ResetChance == 0 {
		c.ResetChance = DefaultResetChance
	}
	return c
}

// Validate reports the first invalid field of an already defaulted config.
func (c RainConfig) Validate() error {
	if !(c.GlyphSize > 0) || math.IsInf(c.GlyphSize, 1) {
		return fmt.Errorf("%w (got %v)", ErrInvalidGlyphSize, c.GlyphSize)
	}
	if !(c.TicksPerSecond >= 0) {
		return fmt.Errorf("%w (got %v)", ErrInvalidTickRate, c.TicksPerSecond)
	}
	if len(c.Glyphs) == 0 {
		return ErrEmptyGlyphSet
	}
	return nil
}

// FieldConfig configures a Field. Unlike RainConfig, a zero TicksPerSecond is
// meaningful: the field renders but its points never move on their own.
type FieldConfig struct {
	// Count is the number of random points created up front.
	Count int
	// Threshold is the maximum distance at which two points are joined.
	Threshold float64
	// TicksPerSecond is the motion rate; 0 disables autonomous motion.
	TicksPerSecond float64

	// Colors. Zero values take #000, #FFF, #46d5f5 and rgb(200,200,200).
	Background Color
	PointColor Color
	FocusColor Color
	LineColor  Color

	// Seed seeds point placement and directions. Zero picks a random seed.
	Seed uint64
}

func (c FieldConfig) withDefaults() FieldConfig {
	if c.Background == (Color{}) {
		c.Background = ColorBlack
	}
	if c.PointColor == (Color{}) {
		c.PointColor = ColorWhite
	}
	if c.FocusColor == (Color{}) {
		c.FocusColor = ColorHighlight
	}
	if c.LineColor == (Color{}) {
		c.LineColor = ColorLine
	}
	return c
}

// Validate reports the first invalid field.
func (c FieldConfig) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidCount, c.Count)
	}
	if !(c.Threshold >= 0) {
		return fmt.Errorf("%w (got %v)", ErrInvalidThreshold, c.Threshold)
	}
	if !(c.TicksPerSecond >= 0) {
		return fmt.Errorf("%w (got %v)", ErrInvalidTickRate, c.TicksPerSecond)
	}
	return nil
}
