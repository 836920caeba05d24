// Package ebitenhost runs backdrop effects in an Ebitengine window.
package ebitenhost

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/phanxgames/backdrop"
)

// Builder constructs the effect once the canvas exists. It usually also
// starts the effect's schedule.
type Builder func(s backdrop.Surface) (backdrop.Effect, error)

// RunConfig configures the window and game loop.
type RunConfig struct {
	Title string
	// Width and Height size both the window and the canvas. With Fullscreen
	// they are ignored and the monitor size is used. Default 800×600.
	Width, Height int
	Fullscreen    bool
	// TPS is Ebitengine's update rate. Default 60.
	TPS int
	// ShowFPS prints FPS and TPS in the top-left corner.
	ShowFPS bool
	// Script optionally drives pointer input and snapshots.
	Script *backdrop.Script
	// SnapshotDir receives script snapshots. Default "snapshots".
	SnapshotDir string
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Fullscreen {
		c.Width, c.Height = ebiten.Monitor().Size()
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.SnapshotDir == "" {
		c.SnapshotDir = backdrop.DefaultSnapshotDir
	}
	return c
}

// Game implements ebiten.Game around a single effect. Effects draw onto a
// persistent canvas during Update; Draw copies the canvas to the screen.
type Game struct {
	cfg     RunConfig
	canvas  *Surface
	effect  backdrop.Effect
	pointer *backdrop.Pointer

	snapshotQueue []string
}

// NewGame allocates the canvas and builds the effect on it.
func NewGame(cfg RunConfig, build Builder) (*Game, error) {
	cfg = cfg.withDefaults()
	canvas, err := NewSurface(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	effect, err := build(canvas)
	if err != nil {
		return nil, err
	}
	if effect == nil {
		return nil, errors.New("ebitenhost: builder returned a nil effect")
	}

	var handler backdrop.PointerHandler = nopHandler{}
	if h, ok := effect.(backdrop.PointerHandler); ok {
		handler = h
	}
	return &Game{
		cfg:     cfg,
		canvas:  canvas,
		effect:  effect,
		pointer: backdrop.NewPointer(handler),
	}, nil
}

// Canvas returns the effect's surface.
func (g *Game) Canvas() *Surface { return g.canvas }

// Pointer returns the pointer fed from the mouse.
func (g *Game) Pointer() *backdrop.Pointer { return g.pointer }

// Update runs the script, forwards mouse input and advances the effect by one
// update period. Escape quits.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.cfg.Script != nil {
		g.cfg.Script.Step(g.pointer, g.Snapshot)
	}

	mx, my := ebiten.CursorPosition()
	g.pointer.Update(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	g.effect.Advance(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// Draw copies the canvas to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.Image(), nil)
	g.flushSnapshots()
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout keeps the canvas size regardless of the window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(cfg RunConfig, build Builder) error {
	cfg = cfg.withDefaults()
	g, err := NewGame(cfg, build)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetTPS(cfg.TPS)

	backdrop.Logger().Info("window opened",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width), zap.Int("height", cfg.Height),
		zap.Int("tps", cfg.TPS))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebitenhost: %w", err)
	}
	return nil
}

type nopHandler struct{}

func (nopHandler) HandleMove(x, y float64)    {}
func (nopHandler) HandlePress(x, y float64)   {}
func (nopHandler) HandleRelease(x, y float64) {}
