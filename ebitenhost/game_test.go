package ebitenhost

import (
	"errors"
	"testing"
	"time"

	"github.com/phanxgames/backdrop"
)

func TestRunConfigDefaults(t *testing.T) {
	cfg := RunConfig{}.withDefaults()
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
	if cfg.TPS != 60 {
		t.Errorf("TPS = %d, want 60", cfg.TPS)
	}
	if cfg.SnapshotDir != backdrop.DefaultSnapshotDir {
		t.Errorf("SnapshotDir = %q", cfg.SnapshotDir)
	}
}

func TestNewSurfaceInvalidSize(t *testing.T) {
	if _, err := NewSurface(0, 10); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestSurfaceFaceCache(t *testing.T) {
	s, err := NewSurface(64, 32)
	if err != nil {
		t.Fatal(err)
	}
	if s.Width() != 64 || s.Height() != 32 {
		t.Errorf("size = %dx%d", s.Width(), s.Height())
	}
	if s.face(20) != s.face(20) {
		t.Error("faces of one size should be cached")
	}
	if s.face(20) == s.face(12) {
		t.Error("faces of different sizes should differ")
	}
}

func TestNewGameBuildsOnCanvas(t *testing.T) {
	var got backdrop.Surface
	g, err := NewGame(RunConfig{Width: 320, Height: 200}, func(s backdrop.Surface) (backdrop.Effect, error) {
		got = s
		return backdrop.NewField(s, backdrop.FieldConfig{Threshold: 100, Seed: 1})
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != backdrop.Surface(g.Canvas()) {
		t.Error("builder did not receive the canvas")
	}
	if w, h := g.Layout(1920, 1080); w != 320 || h != 200 {
		t.Errorf("Layout = %dx%d, want 320x200", w, h)
	}
}

func TestNewGameRoutesPointerToField(t *testing.T) {
	var field *backdrop.Field
	g, err := NewGame(RunConfig{Width: 200, Height: 200}, func(s backdrop.Surface) (backdrop.Effect, error) {
		f, err := backdrop.NewField(s, backdrop.FieldConfig{Threshold: 100})
		if err != nil {
			return nil, err
		}
		f.AddPoint(backdrop.NewPoint(50, 50, backdrop.CapAll, nil))
		f.Render()
		field = f
		return f, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	p := g.Pointer()
	p.InjectDrag(50, 50, 120, 90, 3)
	for p.Pending() > 0 {
		p.Update(0, 0, false)
	}
	pt := field.Points()[0]
	if pt.X != 120 || pt.Y != 90 {
		t.Errorf("point at (%v, %v), want (120, 90)", pt.X, pt.Y)
	}
}

func TestNewGameWithoutPointerInput(t *testing.T) {
	g, err := NewGame(RunConfig{Width: 100, Height: 100}, func(s backdrop.Surface) (backdrop.Effect, error) {
		return backdrop.NewRain(s, backdrop.RainConfig{Seed: 1})
	})
	if err != nil {
		t.Fatal(err)
	}
	// Rain takes no pointer input; events are swallowed.
	g.Pointer().InjectClick(10, 10)
	g.Pointer().Update(0, 0, false)
	g.effect.Advance(time.Second)
}

func TestNewGameErrors(t *testing.T) {
	errBuild := errors.New("boom")
	if _, err := NewGame(RunConfig{}, func(backdrop.Surface) (backdrop.Effect, error) {
		return nil, errBuild
	}); !errors.Is(err, errBuild) {
		t.Errorf("err = %v, want %v", err, errBuild)
	}
	if _, err := NewGame(RunConfig{}, func(backdrop.Surface) (backdrop.Effect, error) {
		return nil, nil
	}); err == nil {
		t.Error("expected error for nil effect")
	}
}

func TestSnapshotQueue(t *testing.T) {
	g := &Game{}
	g.Snapshot("a")
	g.Snapshot("b")
	if len(g.snapshotQueue) != 2 || g.snapshotQueue[0] != "a" || g.snapshotQueue[1] != "b" {
		t.Errorf("queue = %v", g.snapshotQueue)
	}
}
