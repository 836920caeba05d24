package termhost

import (
	"bytes"
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/backdrop"
)

// lines renders the surface's runes row by row.
func lines(s *Surface) []string {
	out := make([]string, 0, s.Rows())
	for y := 0; y < s.Rows(); y++ {
		var buf bytes.Buffer
		for x := 0; x < s.Cols(); x++ {
			buf.WriteRune(s.Cell(x, y).Rune)
		}
		out = append(out, buf.String())
	}
	return out
}

func TestSurfaceSize(t *testing.T) {
	s := NewSurface(80, 24, 4, 8)
	assert.Equal(t, 320, s.Width())
	assert.Equal(t, 192, s.Height())

	x, y := s.ToUnits(2, 3)
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 28.0, y)
}

func TestSurfaceDraw(t *testing.T) {
	for _, tc := range []struct {
		name     string
		draw     func(s *Surface)
		expected []string
	}{
		{
			name: "text",
			draw: func(s *Surface) {
				s.FillText("AB", 4, 8, 4, backdrop.ColorGreen)
			},
			expected: []string{
				"        ",
				" AB     ",
				"        ",
				"        ",
			},
		},
		{
			name: "circle",
			draw: func(s *Surface) {
				s.FillCircle(backdrop.Circle{X: 14, Y: 12, Radius: 5}, backdrop.ColorWhite)
			},
			expected: []string{
				"        ",
				"  ●●●   ",
				"        ",
				"        ",
			},
		},
		{
			name: "line",
			draw: func(s *Surface) {
				s.StrokeLine(2, 4, 30, 4, backdrop.ColorLine)
			},
			expected: []string{
				"········",
				"        ",
				"        ",
				"        ",
			},
		},
		{
			name: "line keeps glyphs",
			draw: func(s *Surface) {
				s.FillText("X", 8, 12, 4, backdrop.ColorGreen)
				s.StrokeLine(0, 12, 31, 12, backdrop.ColorLine)
			},
			expected: []string{
				"        ",
				"··X·····",
				"        ",
				"        ",
			},
		},
		{
			name: "opaque fill erases",
			draw: func(s *Surface) {
				s.FillText("ABCD", 0, 0, 4, backdrop.ColorGreen)
				s.FillRect(backdrop.Rect{X: 4, Width: 8, Height: 8}, backdrop.ColorBlack)
			},
			expected: []string{
				"A  D    ",
				"        ",
				"        ",
				"        ",
			},
		},
		{
			name: "translucent fill keeps glyphs",
			draw: func(s *Surface) {
				s.FillText("ABCD", 0, 0, 4, backdrop.ColorGreen)
				s.FillRect(backdrop.Rect{Width: 32, Height: 32}, backdrop.ColorBlack.WithAlpha(0.5))
			},
			expected: []string{
				"ABCD    ",
				"        ",
				"        ",
				"        ",
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSurface(8, 4, 4, 8)
			tc.draw(s)
			assert.Equal(t, tc.expected, lines(s))
		})
	}
}

func TestSurfaceBlend(t *testing.T) {
	s := NewSurface(2, 1, 4, 8)
	s.FillRect(backdrop.Rect{Width: 8, Height: 8}, backdrop.ColorWhite)
	s.FillRect(backdrop.Rect{Width: 4, Height: 8}, backdrop.ColorBlack.WithAlpha(0.5))

	r, g, b := s.Cell(0, 0).Background()
	assert.Equal(t, [3]int32{128, 128, 128}, [3]int32{r, g, b})
	r, g, b = s.Cell(1, 0).Background()
	assert.Equal(t, [3]int32{255, 255, 255}, [3]int32{r, g, b})

	s.FillText("x", 0, 0, 4, backdrop.ColorGreen)
	r, g, b = s.Cell(0, 0).Foreground()
	assert.Equal(t, [3]int32{0, 255, 0}, [3]int32{r, g, b})
}

func TestSurfaceClipsOutOfBounds(t *testing.T) {
	s := NewSurface(4, 2, 4, 8)
	assert.NotPanics(t, func() {
		s.FillText("Z", -10, -10, 4, backdrop.ColorGreen)
		s.FillText("Z", 100, 100, 4, backdrop.ColorGreen)
		s.FillCircle(backdrop.Circle{X: 0, Y: 0, Radius: 20}, backdrop.ColorWhite)
		s.StrokeLine(-50, -50, 500, 500, backdrop.ColorLine)
		s.FillRect(backdrop.Rect{X: -100, Y: -100, Width: 1000, Height: 1000}, backdrop.ColorBlack)
	})
}

func TestSurfaceShow(t *testing.T) {
	scr := tcell.NewSimulationScreen("")
	require.NoError(t, scr.Init())
	defer scr.Fini()
	scr.SetSize(6, 2)

	s := NewSurface(6, 2, 4, 8)
	s.FillText("rain", 4, 8, 4, backdrop.ColorGreen)
	s.Show(scr)

	cells, width, height := scr.GetContents()
	require.Equal(t, 6, width)
	require.Equal(t, 2, height)
	var buf bytes.Buffer
	for _, c := range cells[width:] {
		buf.Write(c.Bytes)
	}
	assert.Equal(t, " rain ", buf.String())
}

func TestRunDragsPoint(t *testing.T) {
	scr := tcell.NewSimulationScreen("")
	require.NoError(t, scr.Init())
	defer scr.Fini()
	scr.SetSize(40, 20)

	var field *backdrop.Field
	build := func(s backdrop.Surface) (backdrop.Effect, error) {
		f, err := backdrop.NewField(s, backdrop.FieldConfig{Threshold: 50})
		if err != nil {
			return nil, err
		}
		// Centered on cell (10, 5).
		f.AddPoint(backdrop.NewPoint(42, 44, backdrop.CapAll, nil))
		f.Render()
		field = f
		return f, nil
	}

	scr.InjectMouse(10, 5, tcell.Button1, tcell.ModNone)
	scr.InjectMouse(20, 10, tcell.Button1, tcell.ModNone)
	scr.InjectMouse(20, 10, tcell.ButtonNone, tcell.ModNone)
	scr.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	require.NoError(t, Run(context.Background(), scr, Config{}, build))

	pt := field.Points()[0]
	assert.Equal(t, 82.0, pt.X)
	assert.Equal(t, 84.0, pt.Y)
	assert.Nil(t, field.Dragging())
}

func TestRunStopsOnCancel(t *testing.T) {
	scr := tcell.NewSimulationScreen("")
	require.NoError(t, scr.Init())
	defer scr.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, scr, Config{}, func(s backdrop.Surface) (backdrop.Effect, error) {
		return backdrop.NewRain(s, backdrop.RainConfig{GlyphSize: 8})
	})
	assert.NoError(t, err)
}

func TestRunRejectsNilEffect(t *testing.T) {
	scr := tcell.NewSimulationScreen("")
	require.NoError(t, scr.Init())
	defer scr.Fini()

	err := Run(context.Background(), scr, Config{}, func(backdrop.Surface) (backdrop.Effect, error) {
		return nil, nil
	})
	assert.Error(t, err)
}
