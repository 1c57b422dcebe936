package bounce

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a replay script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	DT     float64 `json:"dt,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Body   int     `json:"body,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
}

// scriptFile is the top-level JSON structure for a replay script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Snapshot is a labelled copy of the body list taken during a script run.
type Snapshot struct {
	Label  string
	Frame  uint64
	Bodies []Body
}

// Script replays a fixed sequence of frame steps, velocity impulses and
// snapshots against a World. Runs are deterministic for a given world.
//
// Actions:
//
//	step      advance "frames" frames (default 1) of "dt" seconds each
//	impulse   add ("x", "y") to the velocity of body "body"
//	snapshot  record the body list under "label"
type Script struct {
	steps []scriptStep
}

// LoadScript parses a JSON replay script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "step":
			if st.DT < 0 || !isFinite(st.DT) {
				return nil, fmt.Errorf("parse script: step %d: dt %v", i, st.DT)
			}
			if st.Frames < 0 {
				return nil, fmt.Errorf("parse script: step %d: frames %d", i, st.Frames)
			}
		case "impulse", "snapshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Len returns the number of steps in the script.
func (s *Script) Len() int { return len(s.steps) }

// Run executes every step against w in order and returns the snapshots.
// Frames advance through World.Advance, so MaxStep applies.
func (s *Script) Run(w *World) ([]Snapshot, error) {
	var shots []Snapshot
	for i, st := range s.steps {
		switch st.Action {
		case "step":
			frames := st.Frames
			if frames == 0 {
				frames = 1
			}
			for range frames {
				w.Advance(st.DT)
			}
		case "impulse":
			if st.Body < 0 || st.Body >= w.Len() {
				return shots, fmt.Errorf("run script: step %d: body %d of %d", i, st.Body, w.Len())
			}
			b := w.Body(st.Body)
			b.Velocity = b.Velocity.Add(Vec2{st.X, st.Y})
		case "snapshot":
			shots = append(shots, Snapshot{Label: st.Label, Frame: w.Frame(), Bodies: w.Snapshot()})
		}
	}
	return shots, nil
}
