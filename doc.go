// Package backdrop implements two canvas background effects for
// [Ebitengine], terminals and headless rasters.
//
// [Rain] draws columns of random glyphs falling down the surface, each tick
// veiling the previous frames with translucent black so the glyphs leave
// fading trails. [Field] scatters points that wander and bounce off the edges,
// joining every pair closer than a threshold with a line that fades with
// distance. Hovering a point freezes it; pressing on it starts a drag.
//
// # Surfaces and hosts
//
// Effects draw through the [Surface] interface and never read a clock. A host
// owns the surface, feeds elapsed time to [Effect.Advance] and pointer samples
// to a [Pointer]. Three hosts ship with the module:
//
//   - ebitenhost: a desktop window
//   - termhost: a terminal, via tcell
//   - ggsurface: an in-memory raster that writes PNG files
//
// A minimal window:
//
//	err := ebitenhost.Run(ebitenhost.RunConfig{Title: "rain", Width: 800, Height: 600},
//		func(s backdrop.Surface) (backdrop.Effect, error) {
//			r, err := backdrop.NewRain(s, backdrop.RainConfig{GlyphSize: 20})
//			if err != nil {
//				return nil, err
//			}
//			r.Start()
//			return r, nil
//		})
//
// # Timing
//
// Effects tick on an [Interval] of 1000 / TicksPerSecond milliseconds of host
// time. Late ticks are delayed, never dropped.
//
// # Logging
//
// The package logs through [go.uber.org/zap]. It is silent until [SetLogger]
// installs a logger; [NewLogger] builds one that writes to a rolling file.
//
// [Ebitengine]: https://ebitengine.org
package backdrop
