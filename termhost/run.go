package termhost

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/phanxgames/backdrop"
)

// Builder constructs the effect once the surface exists.
type Builder func(s backdrop.Surface) (backdrop.Effect, error)

// Config configures the terminal loop.
type Config struct {
	// FrameRate is how often the loop advances the effect and repaints.
	// Default 60.
	FrameRate int
	// CellWidth and CellHeight are the surface units covered by one cell.
	// Default 4 × 8, about the aspect of a terminal cell.
	CellWidth, CellHeight float64
}

func (c Config) withDefaults() Config {
	if c.FrameRate <= 0 {
		c.FrameRate = 60
	}
	if c.CellWidth <= 0 {
		c.CellWidth = 4
	}
	if c.CellHeight <= 0 {
		c.CellHeight = 8
	}
	return c
}

// Run sizes a Surface to the screen, builds the effect and drives it until ctx
// is done or the user presses Escape, Ctrl-C or q. The screen must already be
// initialized; Run does not finalize it.
//
// Terminal events and frame ticks are serialized through one select loop, so
// the effect only ever runs on the calling goroutine.
func Run(ctx context.Context, screen tcell.Screen, cfg Config, build Builder) error {
	cfg = cfg.withDefaults()
	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	surface := NewSurface(cols, rows, cfg.CellWidth, cfg.CellHeight)
	effect, err := build(surface)
	if err != nil {
		return err
	}
	if effect == nil {
		return fmt.Errorf("termhost: builder returned a nil effect")
	}

	var pointer *backdrop.Pointer
	if h, ok := effect.(backdrop.PointerHandler); ok {
		pointer = backdrop.NewPointer(h)
	}

	backdrop.Logger().Info("terminal opened",
		zap.Int("cols", cols), zap.Int("rows", rows),
		zap.Int("width", surface.Width()), zap.Int("height", surface.Height()))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FrameRate))
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !handleEvent(ev, surface, pointer, screen) {
				return nil
			}

		case now := <-ticker.C:
			effect.Advance(now.Sub(last))
			last = now
			surface.Show(screen)
		}
	}
}

// handleEvent applies one terminal event. It returns false when the user asked
// to quit.
func handleEvent(ev tcell.Event, surface *Surface, pointer *backdrop.Pointer, screen tcell.Screen) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventMouse:
		if pointer == nil {
			return true
		}
		cx, cy := ev.Position()
		x, y := surface.ToUnits(cx, cy)
		pointer.Update(x, y, ev.Buttons()&tcell.Button1 != 0)
	case *tcell.EventResize:
		// The effect keeps its startup size; repaint whatever still fits.
		screen.Sync()
	}
	return true
}
