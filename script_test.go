package bounce

import (
	"math"
	"testing"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "snapshot", "label": "initial"},
			{"action": "step", "dt": 0.5, "frames": 2},
			{"action": "impulse", "body": 0, "x": 10, "y": -5},
			{"action": "snapshot", "label": "after"}
		]
	}`)

	s, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 4 {
		t.Fatalf("expected 4 steps, got %d", s.Len())
	}
	if s.steps[1].Action != "step" || s.steps[1].DT != 0.5 || s.steps[1].Frames != 2 {
		t.Error("step 1 mismatch")
	}
	if s.steps[2].Body != 0 || s.steps[2].X != 10 || s.steps[2].Y != -5 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "click"}]}`},
		{"negative dt", `{"steps": [{"action": "step", "dt": -1}]}`},
		{"negative frames", `{"steps": [{"action": "step", "dt": 1, "frames": -2}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestScriptRun(t *testing.T) {
	w := newTestWorld(t, true, BodySpec{Position: Vec2{100, 100}, Velocity: Vec2{20, 0}})
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "snapshot", "label": "start"},
		{"action": "step", "dt": 0.5, "frames": 2},
		{"action": "impulse", "body": 0, "x": 0, "y": 40},
		{"action": "step", "dt": 1},
		{"action": "snapshot", "label": "end"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	shots, err := s.Run(w)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(shots) != 2 {
		t.Fatalf("snapshots = %d, want 2", len(shots))
	}
	if shots[0].Label != "start" || shots[0].Frame != 0 || shots[0].Bodies[0].Position != (Vec2{100, 100}) {
		t.Errorf("start snapshot = %+v", shots[0])
	}
	end := shots[1]
	if end.Frame != 3 {
		t.Errorf("end frame = %d, want 3", end.Frame)
	}
	p := end.Bodies[0].Position
	if math.Abs(p.X-140) > tol || math.Abs(p.Y-140) > tol {
		t.Errorf("end position = %v, want (140, 140)", p)
	}
}

func TestScriptRunBadBody(t *testing.T) {
	w := newTestWorld(t, true, BodySpec{Position: Vec2{100, 100}})
	s, err := LoadScript([]byte(`{"steps": [{"action": "impulse", "body": 3, "x": 1}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Run(w); err == nil {
		t.Error("expected error for out-of-range body")
	}
}

func TestScriptReplayIsDeterministic(t *testing.T) {
	script := []byte(`{"steps": [{"action": "step", "dt": 0.016, "frames": 600}, {"action": "snapshot", "label": "x"}]}`)
	run := func() []Body {
		cfg := DefaultConfig()
		NewSpawner(11).Populate(&cfg, CornerPositions(cfg.Width, cfg.Height, cfg.Radius), nil)
		w, err := NewWorld(cfg)
		if err != nil {
			t.Fatal(err)
		}
		s, err := LoadScript(script)
		if err != nil {
			t.Fatal(err)
		}
		shots, err := s.Run(w)
		if err != nil {
			t.Fatal(err)
		}
		return shots[0].Bodies
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("body %d differs between replays: %+v vs %+v", i, a[i], b[i])
		}
	}
}
