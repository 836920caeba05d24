package backdrop

import "time"

// Interval calls a function once per fixed period of host time. It never
// reads a clock: hosts feed elapsed time through Advance, which keeps effects
// deterministic under test and lets every host drive them the same way.
//
// A stopped Interval ignores Advance. Ticks that fall due during one long
// Advance all fire, in order; none are dropped or coalesced.
type Interval struct {
	period  time.Duration
	fn      func()
	elapsed time.Duration
	running bool
}

// NewInterval creates a stopped interval. A non-positive period yields an
// interval that never fires.
func NewInterval(period time.Duration, fn func()) *Interval {
	return &Interval{period: period, fn: fn}
}

// PeriodFor returns the period of a schedule running ticksPerSecond times per
// second, i.e. 1000 / ticksPerSecond milliseconds. Zero or negative rates
// return 0.
func PeriodFor(ticksPerSecond float64) time.Duration {
	if ticksPerSecond <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / ticksPerSecond)
}

// Period returns the configured period.
func (iv *Interval) Period() time.Duration { return iv.period }

// Running reports whether the interval is started.
func (iv *Interval) Running() bool { return iv.running }

// Start begins the schedule. The first tick fires one full period later.
// Starting a running interval is a no-op.
func (iv *Interval) Start() {
	if iv.running || iv.period <= 0 {
		return
	}
	iv.running = true
	iv.elapsed = 0
}

// Stop cancels the schedule and discards any partially elapsed period.
func (iv *Interval) Stop() {
	iv.running = false
	iv.elapsed = 0
}

// Advance adds dt of host time and fires every tick that fell due. It returns
// the number of ticks fired. The callback may call Stop, which ends the
// current Advance.
func (iv *Interval) Advance(dt time.Duration) int {
	if !iv.running || dt <= 0 {
		return 0
	}
	iv.elapsed += dt
	fired := 0
	for iv.running && iv.elapsed >= iv.period {
		iv.elapsed -= iv.period
		fired++
		if iv.fn != nil {
			iv.fn()
		}
	}
	return fired
}

// Effect is an animation driven by host time. Rain and Field implement it.
type Effect interface {
	Advance(dt time.Duration)
}
