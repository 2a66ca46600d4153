package swoop

import (
	"errors"
	"math"
	"testing"
)

func TestParseScriptRunsSteps(t *testing.T) {
	card := NewBody("card", 0, 0)
	data := []byte(`
startDelay: 0.5
policy: previous
steps:
  - {action: move, target: card, to: [100, 0], duration: 1}
  - {action: pause, duration: 0.5}
  - {action: move, target: card, to: [100, 100], duration: 1, easing: ease_in_quad}
`)
	q, err := ParseScript(data, map[string]Target{"card": card}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !q.Started() || q.Policy() != StartFromPreviousStep {
		t.Fatalf("started=%v policy=%v", q.Started(), q.Policy())
	}
	if q.Len() != 3 {
		t.Fatalf("Len = %d, want 3", q.Len())
	}

	q.Update(0.5) // start delay
	if card.X != 0 {
		t.Fatalf("moved during start delay: %v", card.X)
	}
	q.Update(1)
	if card.Position() != (Vec2{100, 0}) {
		t.Fatalf("after first move = %v", card.Position())
	}
	q.Update(0.5) // pause
	q.Update(0.5)
	if math.Abs(card.Y-25) > 1e-3 {
		t.Errorf("eased Y = %v, want 25", card.Y)
	}
	q.Update(0.5)
	if !q.Done() || card.Position() != (Vec2{100, 100}) {
		t.Errorf("done=%v position=%v", q.Done(), card.Position())
	}
}

func TestParseScriptPathWithPreset(t *testing.T) {
	book, err := ParsePresets([]byte(presetYAML))
	if err != nil {
		t.Fatal(err)
	}
	card := NewBody("card", 0, 0)
	data := []byte(`
steps:
  - action: path
    target: card
    preset: deal
    delay: 0.2
    points: [[0, 0], [50, -80], [100, 0]]
`)
	q, err := ParseScript(data, map[string]Target{"card": card}, book)
	if err != nil {
		t.Fatal(err)
	}

	// Step delay 0.2 plus the preset's 0.1.
	q.Update(0.25)
	if card.X != 0 {
		t.Fatalf("moved during delay: %v", card.X)
	}
	step := q.Current()
	if step == nil || step.Kind != StepPath {
		t.Fatal("path step should be current")
	}
	if step.Delay < 0.3-1e-9 || step.Delay > 0.3+1e-9 {
		t.Errorf("step delay = %v, want 0.3", step.Delay)
	}
	if step.Instance.Duration() != 1.2 || step.Instance.Path().Degree() != 2 {
		t.Errorf("duration=%v degree=%v", step.Instance.Duration(), step.Instance.Path().Degree())
	}

	for i := 0; i < 200 && !q.Done(); i++ {
		q.Update(1.0 / 60)
	}
	if !q.Done() {
		t.Fatal("script never finished")
	}
	if !vecNear(card.Position(), Vec2{100, 0}, tol) {
		t.Errorf("final position = %v", card.Position())
	}
	if math.Abs(card.RotationDegrees()-3) > 1e-9 {
		t.Errorf("final rotation = %v, want preset endAngle 3", card.RotationDegrees())
	}
}

func TestParseScriptInlineOverridesPreset(t *testing.T) {
	book, _ := ParsePresets([]byte(presetYAML))
	card := NewBody("card", 0, 0)
	data := []byte(`
steps:
  - {action: path, target: card, preset: deal, duration: 2, degree: 1, easing: linear,
     points: [[0, 0], [10, 0], [20, 0]]}
`)
	q, err := ParseScript(data, map[string]Target{"card": card}, book)
	if err != nil {
		t.Fatal(err)
	}
	q.Update(0.1) // consumes the preset delay
	inst := q.Current().Instance
	if inst.Duration() != 2 || inst.Path().Degree() != 1 {
		t.Errorf("duration=%v degree=%v", inst.Duration(), inst.Path().Degree())
	}
}

func TestParseScriptJSON(t *testing.T) {
	card := NewBody("card", 0, 0)
	data := []byte(`{"steps": [{"action": "move", "target": "card", "from": [5, 5], "to": [15, 5], "duration": 1}]}`)
	q, err := ParseScript(data, map[string]Target{"card": card}, nil)
	if err != nil {
		t.Fatal(err)
	}
	q.Update(0.5)
	if !vecNear(card.Position(), Vec2{10, 5}, tweenTol) {
		t.Errorf("position = %v, want (10, 5)", card.Position())
	}
}

func TestParseScriptErrors(t *testing.T) {
	targets := map[string]Target{"card": NewBody("card", 0, 0)}
	tests := []struct {
		name string
		data string
	}{
		{"no steps", "steps: []\n"},
		{"bad policy", "policy: sideways\nsteps: [{action: pause, duration: 1}]\n"},
		{"unknown action", "steps: [{action: spin, target: card}]\n"},
		{"unknown target", "steps: [{action: move, target: ghost, to: [1, 1]}]\n"},
		{"move without target", "steps: [{action: move, to: [1, 1]}]\n"},
		{"bad vector", "steps: [{action: move, target: card, to: [1]}]\n"},
		{"bad from", "steps: [{action: move, target: card, from: [1, 2, 3], to: [1, 1]}]\n"},
		{"unknown easing", "steps: [{action: move, target: card, to: [1, 1], easing: wobble}]\n"},
		{"path without target", "steps: [{action: path, points: [[0, 0], [1, 1]]}]\n"},
		{"path one point", "steps: [{action: path, target: card, points: [[0, 0]]}]\n"},
		{"preset without book", "steps: [{action: path, target: card, preset: deal, points: [[0, 0], [1, 1]]}]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseScript([]byte(tt.data), targets, nil); !errors.Is(err, ErrConfig) {
				t.Errorf("err = %v, want ErrConfig", err)
			}
		})
	}
}
