// Package ggsurface renders backdrop effects headlessly into an in-memory
// raster with gogpu/gg, for snapshots and tests without a window.
package ggsurface

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/phanxgames/backdrop"
)

// lineWidth is the stroke width of field lines, in pixels.
const lineWidth = 1

// Surface is a backdrop.Surface backed by a gg.Context. Cursor changes are
// ignored.
type Surface struct {
	dc     *gg.Context
	source *text.FontSource
	faces  map[float64]text.Face
}

// New creates a w×h transparent raster and loads the Go Mono glyph face.
func New(w, h int) (*Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("ggsurface: invalid size %dx%d", w, h)
	}
	source, err := text.NewFontSource(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("ggsurface: failed to parse font: %w", err)
	}
	return &Surface{
		dc:     gg.NewContext(w, h),
		source: source,
		faces:  make(map[float64]text.Face),
	}, nil
}

// Close releases the context and the font source.
func (s *Surface) Close() error {
	return errors.Join(s.dc.Close(), s.source.Close())
}

func (s *Surface) Width() int  { return s.dc.Width() }
func (s *Surface) Height() int { return s.dc.Height() }

func (s *Surface) Clear() { s.dc.Clear() }

func (s *Surface) FillRect(r backdrop.Rect, c backdrop.Color) {
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	s.fill()
}

// FillText draws str with its top edge at y. gg positions text on the
// baseline, so the face ascent is added.
func (s *Surface) FillText(str string, x, y, size float64, c backdrop.Color) {
	face := s.face(size)
	s.dc.SetFont(face)
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.DrawString(str, x, y+face.Metrics().Ascent)
}

func (s *Surface) FillCircle(circle backdrop.Circle, c backdrop.Color) {
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.DrawCircle(circle.X, circle.Y, circle.Radius)
	s.fill()
}

func (s *Surface) StrokeLine(x1, y1, x2, y2 float64, c backdrop.Color) {
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.SetLineWidth(lineWidth)
	s.dc.DrawLine(x1, y1, x2, y2)
	if err := s.dc.Stroke(); err != nil {
		backdrop.Logger().Warn("ggsurface: stroke failed", zap.Error(err))
	}
}

func (s *Surface) SetCursor(backdrop.CursorShape) {}

// Image returns a copy of the rendered raster.
func (s *Surface) Image() image.Image {
	if err := s.dc.FlushGPU(); err != nil {
		backdrop.Logger().Warn("ggsurface: flush failed", zap.Error(err))
	}
	return s.dc.Image()
}

// SavePNG writes the raster to path.
func (s *Surface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("ggsurface: save %s: %w", path, err)
	}
	return nil
}

func (s *Surface) fill() {
	if err := s.dc.Fill(); err != nil {
		backdrop.Logger().Warn("ggsurface: fill failed", zap.Error(err))
	}
}

// face returns the cached face of the given size.
func (s *Surface) face(size float64) text.Face {
	f, ok := s.faces[size]
	if !ok {
		f = s.source.Face(size)
		s.faces[size] = f
	}
	return f
}
