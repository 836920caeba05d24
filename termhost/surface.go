// Package termhost runs backdrop effects in a terminal through tcell.
//
// The terminal is treated as a coarse raster: every cell covers CellWidth ×
// CellHeight surface units, so effects keep working in the same coordinates
// they use on a pixel canvas. Cells keep straight RGB colors and blend
// translucent fills, which is enough for the rain's fading trails and the
// field's faded lines.
package termhost

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/backdrop"
)

// Glyphs used for field shapes.
const (
	pointRune = '●'
	lineRune  = '·'
	blankRune = ' '
)

type rgb struct{ r, g, b float64 }

func (c rgb) blend(to backdrop.Color) rgb {
	a := to.A
	return rgb{
		r: c.r*(1-a) + to.R*a,
		g: c.g*(1-a) + to.G*a,
		b: c.b*(1-a) + to.B*a,
	}
}

func (c rgb) tcell() tcell.Color {
	return tcell.NewRGBColor(to255(c.r), to255(c.g), to255(c.b))
}

func to255(v float64) int32 {
	return int32(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// Cell is one terminal cell of a Surface.
type Cell struct {
	Rune rune
	fg   rgb
	bg   rgb
}

// Foreground returns the cell's glyph color as 0-255 components.
func (c Cell) Foreground() (r, g, b int32) {
	return to255(c.fg.r), to255(c.fg.g), to255(c.fg.b)
}

// Background returns the cell's background color as 0-255 components.
func (c Cell) Background() (r, g, b int32) {
	return to255(c.bg.r), to255(c.bg.g), to255(c.bg.b)
}

// Surface is a backdrop.Surface over a grid of terminal cells.
type Surface struct {
	cols, rows int
	cellW      float64
	cellH      float64
	cells      []Cell
	cursor     backdrop.CursorShape
}

// NewSurface creates a cols×rows cell grid where each cell spans cellW × cellH
// surface units.
func NewSurface(cols, rows int, cellW, cellH float64) *Surface {
	s := &Surface{cols: cols, rows: rows, cellW: cellW, cellH: cellH}
	s.cells = make([]Cell, max(cols, 0)*max(rows, 0))
	s.Clear()
	return s
}

// Width returns the surface width in units.
func (s *Surface) Width() int { return int(float64(s.cols) * s.cellW) }

// Height returns the surface height in units.
func (s *Surface) Height() int { return int(float64(s.rows) * s.cellH) }

// Cols returns the grid width in cells.
func (s *Surface) Cols() int { return s.cols }

// Rows returns the grid height in cells.
func (s *Surface) Rows() int { return s.rows }

// Cell returns the cell at column x, row y.
func (s *Surface) Cell(x, y int) Cell {
	return s.cells[y*s.cols+x]
}

// Cursor returns the last cursor shape requested by the effect.
func (s *Surface) Cursor() backdrop.CursorShape { return s.cursor }

// ToUnits converts a cell position to the surface units at the cell center.
func (s *Surface) ToUnits(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * s.cellW, (float64(y) + 0.5) * s.cellH
}

func (s *Surface) Clear() {
	for i := range s.cells {
		s.cells[i] = Cell{Rune: blankRune}
	}
}

// FillRect blends c over every cell covered by r. An opaque
// fill also erases the glyph.
func (s *Surface) FillRect(r backdrop.Rect, c backdrop.Color) {
	x0, y0 := s.toCell(r.X, r.Y)
	x1, y1 := s.toCell(r.X+r.Width, r.Y+r.Height)
	for y := max(y0, 0); y < min(y1, s.rows); y++ {
		for x := max(x0, 0); x < min(x1, s.cols); x++ {
			cell := &s.cells[y*s.cols+x]
			cell.bg = cell.bg.blend(c)
			cell.fg = cell.fg.blend(c)
			if c.A >= 1 {
				cell.Rune = blankRune
			}
		}
	}
}

// FillText writes one rune per cell, advancing size units per rune.
func (s *Surface) FillText(str string, x, y, size float64, c backdrop.Color) {
	for i, r := range []rune(str) {
		cx, cy := s.toCell(x+float64(i)*size, y)
		if !s.inside(cx, cy) {
			continue
		}
		cell := &s.cells[cy*s.cols+cx]
		cell.Rune = r
		cell.fg = cell.fg.blend(c)
	}
}

// FillCircle marks every cell whose center lies in the circle, and always the
// cell holding the center, so small circles stay visible.
func (s *Surface) FillCircle(circle backdrop.Circle, c backdrop.Color) {
	cx, cy := s.toCell(circle.X, circle.Y)
	s.plot(cx, cy, pointRune, c)

	x0, y0 := s.toCell(circle.X-circle.Radius, circle.Y-circle.Radius)
	x1, y1 := s.toCell(circle.X+circle.Radius, circle.Y+circle.Radius)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			ux, uy := s.ToUnits(x, y)
			if circle.Contains(ux, uy) {
				s.plot(x, y, pointRune, c)
			}
		}
	}
}

// StrokeLine walks the cells between the endpoints with a DDA. Cells already
// holding a glyph keep it and only take the color.
func (s *Surface) StrokeLine(x1, y1, x2, y2 float64, c backdrop.Color) {
	ax, ay := s.toCell(x1, y1)
	bx, by := s.toCell(x2, y2)
	steps := max(abs(bx-ax), abs(by-ay))
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		x := ax + int(math.Round(t*float64(bx-ax)))
		y := ay + int(math.Round(t*float64(by-ay)))
		if !s.inside(x, y) {
			continue
		}
		cell := &s.cells[y*s.cols+x]
		if cell.Rune == blankRune {
			cell.Rune = lineRune
		}
		cell.fg = cell.fg.blend(c)
	}
}

// SetCursor records the shape; terminals keep their own pointer.
func (s *Surface) SetCursor(shape backdrop.CursorShape) { s.cursor = shape }

// Show copies the grid to the screen and flushes it.
func (s *Surface) Show(screen tcell.Screen) {
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			cell := s.cells[y*s.cols+x]
			style := tcell.StyleDefault.Foreground(cell.fg.tcell()).Background(cell.bg.tcell())
			screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	screen.Show()
}

func (s *Surface) plot(x, y int, r rune, c backdrop.Color) {
	if !s.inside(x, y) {
		return
	}
	cell := &s.cells[y*s.cols+x]
	cell.Rune = r
	cell.fg = cell.fg.blend(c)
}

func (s *Surface) toCell(x, y float64) (int, int) {
	return int(math.Floor(x / s.cellW)), int(math.Floor(y / s.cellH))
}

func (s *Surface) inside(x, y int) bool {
	return x >= 0 && x < s.cols && y >= 0 && y < s.rows
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
