package backdrop

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a surface converts it with RGBA.
type Color struct {
	R, G, B, A float64
}

// Colors used by the effects.
var (
	ColorBlack     = Color{0, 0, 0, 1}
	ColorWhite     = Color{1, 1, 1, 1}
	ColorGreen     = MustParseHex("#0f0")
	ColorHighlight = MustParseHex("#46d5f5")
	ColorLine      = Color{200.0 / 255, 200.0 / 255, 200.0 / 255, 1}
)

// WithAlpha returns c with its alpha replaced by a, clamped to [0, 1].
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// ParseHex parses a CSS-style hex color: #rgb, #rgba, #rrggbb or #rrggbbaa.
// The leading '#' is optional.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3, 4:
		var sb strings.Builder
		for _, r := range h {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		h = sb.String()
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("backdrop: invalid hex color %q", s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("backdrop: invalid hex color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Circle is a filled circle as drawn on a surface. Points record the last
// circle they drew and hit-test against it.
type Circle struct {
	X, Y, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c Circle) Contains(x, y float64) bool {
	dx := x - c.X
	dy := y - c.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// CursorShape selects the pointer cursor shown over a surface.
type CursorShape uint8

const (
	CursorDefault CursorShape = iota // host default arrow
	CursorPointer                    // hand shown while hovering a point
)

func (c CursorShape) String() string {
	switch c {
	case CursorPointer:
		return "pointer"
	default:
		return "default"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
