package backdrop

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure of an input script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected pointer events and snapshots across frames, for
// reproducible captures and automated checks. Call Step once per frame.
//
// Actions: press, move, hover, release, click (x, y); drag (fromX, fromY,
// toX, toY, frames); wait (frames); snapshot (label).
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("backdrop: parse script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("backdrop: parse script: no steps")
	}
	for i, st := range file.Steps {
		switch st.Action {
		case "press", "move", "hover", "release", "click", "drag", "wait", "snapshot":
		default:
			return nil, fmt.Errorf("backdrop: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: file.Steps}, nil
}

// Done reports whether every step has run and its injected events drained.
func (s *Script) Done() bool {
	return s.done
}

// Step advances the script by one frame. Injected events go to p; snapshot
// steps call snapshot with their label (snapshot may be nil).
func (s *Script) Step(p *Pointer, snapshot func(label string)) {
	if s.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if p.Pending() > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "snapshot":
		if snapshot != nil {
			snapshot(st.Label)
		}
	case "press":
		p.InjectPress(st.X, st.Y)
	case "move":
		p.InjectMove(st.X, st.Y)
	case "hover":
		p.InjectHover(st.X, st.Y)
	case "release":
		p.InjectRelease(st.X, st.Y)
	case "click":
		p.InjectClick(st.X, st.Y)
	case "drag":
		p.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && p.Pending() == 0 {
		s.done = true
	}
}
