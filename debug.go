package backdrop

import (
	"time"

	"go.uber.org/zap"
)

// Stats holds per-field frame counters.
type Stats struct {
	Ticks   int // motion ticks fired
	Renders int // full renders, from ticks and drags
	Lines   int // lines stroked by the last render
	// RenderTime is the duration of the last render. Only measured in debug
	// mode.
	RenderTime time.Duration
}

// Stats returns a snapshot of the field's counters.
func (f *Field) Stats() Stats {
	return f.stats
}

// SetDebugMode enables or disables debug mode. When enabled, every render is
// timed and its stats are logged at debug level.
func (f *Field) SetDebugMode(enabled bool) {
	f.debug = enabled
}

// debugLog logs the stats of the render that just finished.
func (f *Field) debugLog() {
	if !f.debug {
		return
	}
	logger.Debug("render",
		zap.Int("tick", f.stats.Ticks),
		zap.Int("points", len(f.points)),
		zap.Int("lines", f.stats.Lines),
		zap.Duration("elapsed", f.stats.RenderTime))
}
