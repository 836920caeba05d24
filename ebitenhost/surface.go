package ebitenhost

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/phanxgames/backdrop"
)

// lineWidth is the stroke width of field lines, in pixels.
const lineWidth = 1

// Surface is a backdrop.Surface over a persistent offscreen image. It is not
// cleared between frames, which is what lets the rain leave trails.
type Surface struct {
	img    *ebiten.Image
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
	cursor backdrop.CursorShape
}

// NewSurface allocates a w×h canvas and loads the Go Mono face used for glyphs.
func NewSurface(w, h int) (*Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("ebitenhost: invalid canvas size %dx%d", w, h)
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebitenhost: failed to parse font: %w", err)
	}
	return &Surface{
		img:    ebiten.NewImage(w, h),
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

// Image returns the canvas.
func (s *Surface) Image() *ebiten.Image { return s.img }

func (s *Surface) Width() int  { return s.img.Bounds().Dx() }
func (s *Surface) Height() int { return s.img.Bounds().Dy() }

func (s *Surface) Clear() { s.img.Clear() }

func (s *Surface) FillRect(r backdrop.Rect, c backdrop.Color) {
	vector.DrawFilledRect(s.img, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c.RGBA(), false)
}

func (s *Surface) FillText(str string, x, y, size float64, c backdrop.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.RGBA())
	text.Draw(s.img, str, s.face(size), op)
}

func (s *Surface) FillCircle(circle backdrop.Circle, c backdrop.Color) {
	vector.DrawFilledCircle(s.img, float32(circle.X), float32(circle.Y), float32(circle.Radius), c.RGBA(), true)
}

func (s *Surface) StrokeLine(x1, y1, x2, y2 float64, c backdrop.Color) {
	vector.StrokeLine(s.img, float32(x1), float32(y1), float32(x2), float32(y2), lineWidth, c.RGBA(), true)
}

// SetCursor switches the window cursor between the arrow and the hand.
func (s *Surface) SetCursor(shape backdrop.CursorShape) {
	if shape == s.cursor {
		return
	}
	s.cursor = shape
	switch shape {
	case backdrop.CursorPointer:
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	default:
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// face returns the cached face of the given size.
func (s *Surface) face(size float64) *text.GoTextFace {
	f, ok := s.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: s.source, Size: size}
		s.faces[size] = f
	}
	return f
}
