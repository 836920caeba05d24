package backdrop

import (
	"fmt"
	"testing"
)

// callLog records pointer phases as strings like "move 1,2".
type callLog []string

func (l *callLog) HandleMove(x, y float64)    { *l = append(*l, fmt.Sprintf("move %v,%v", x, y)) }
func (l *callLog) HandlePress(x, y float64)   { *l = append(*l, fmt.Sprintf("press %v,%v", x, y)) }
func (l *callLog) HandleRelease(x, y float64) { *l = append(*l, fmt.Sprintf("release %v,%v", x, y)) }

func assertCalls(t *testing.T, got callLog, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("calls = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPointerPhases(t *testing.T) {
	var log callLog
	p := NewPointer(&log)

	p.Update(10, 10, false) // first sample reports a move
	p.Update(10, 10, false) // unchanged, nothing
	p.Update(20, 10, true)  // move, then press
	p.Update(20, 10, true)  // held in place, nothing
	p.Update(25, 15, true)  // drag move
	p.Update(25, 15, false) // release

	assertCalls(t, log,
		"move 10,10",
		"move 20,10",
		"press 20,10",
		"move 25,15",
		"release 25,15",
	)
	if p.Down() {
		t.Error("pointer should be up")
	}
	if x, y := p.Position(); x != 25 || y != 15 {
		t.Errorf("position = (%v, %v)", x, y)
	}
}

func TestPointerInjectedEventsWin(t *testing.T) {
	var log callLog
	p := NewPointer(&log)
	p.InjectClick(50, 60)

	p.Update(0, 0, false)
	p.Update(0, 0, false)
	p.Update(0, 0, false)

	assertCalls(t, log,
		"move 50,60",
		"press 50,60",
		"release 50,60",
		"move 0,0",
	)
}

func TestPointerWithField(t *testing.T) {
	f, _ := newTestField(t, 400, [2]float64{100, 100})
	pt := f.Points()[0]
	p := NewPointer(f)

	p.InjectDrag(100, 100, 300, 200, 5)
	for p.Pending() > 0 {
		x, y := p.Position()
		p.Update(x, y, p.Down())
	}
	if f.Dragging() != nil {
		t.Error("drag still active after release")
	}
	if pt.X != 300 || pt.Y != 200 {
		t.Errorf("point at (%v, %v), want (300, 200)", pt.X, pt.Y)
	}
}
