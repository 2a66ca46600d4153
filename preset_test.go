package swoop

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

const presetYAML = `
presets:
  deal:
    duration: 1.2
    delay: 0.1
    easing: ease_out_quart
    degree: 2
    lean:
      enabled: true
      damping: 0.05
      maxAngle: 15
      endAngle: 3
  slide:
    duration: 0.5
`

func TestParsePresets(t *testing.T) {
	book, err := ParsePresets([]byte(presetYAML))
	if err != nil {
		t.Fatal(err)
	}
	names := book.Names()
	if len(names) != 2 || names[0] != "deal" || names[1] != "slide" {
		t.Fatalf("Names = %v", names)
	}

	opts, duration, err := book.Options("deal")
	if err != nil {
		t.Fatal(err)
	}
	if duration != 1.2 || opts.Delay != 0.1 || opts.Degree != 2 {
		t.Errorf("duration=%v delay=%v degree=%v", duration, opts.Delay, opts.Degree)
	}
	if opts.Easing(0.3) != OutQuart(0.3) {
		t.Error("easing not resolved to OutQuart")
	}
	l := opts.Lean
	if !l.Enabled || l.Damping != 0.05 || l.MaxAngle != 15 || l.EndAngle != 3 {
		t.Errorf("lean = %+v", l)
	}

	opts, _, _ = book.Options("slide")
	if opts.Lean.Enabled {
		t.Error("slide should not lean")
	}
	if opts.Easing(0.3) != 0.3 {
		t.Error("slide should default to linear")
	}
}

func TestParsePresetsErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", "presets: {}\n"},
		{"unknown easing", "presets:\n  a: {duration: 1, easing: wobble}\n"},
		{"negative duration", "presets:\n  a: {duration: -1}\n"},
		{"negative delay", "presets:\n  a: {duration: 1, delay: -0.5}\n"},
		{"negative degree", "presets:\n  a: {duration: 1, degree: -2}\n"},
		{"damping above one", "presets:\n  a: {duration: 1, lean: {enabled: true, damping: 2}}\n"},
		{"negative max angle", "presets:\n  a: {duration: 1, lean: {maxAngle: -5}}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParsePresets([]byte(tt.data)); !errors.Is(err, ErrConfig) {
				t.Errorf("err = %v, want ErrConfig", err)
			}
		})
	}

	if _, err := ParsePresets([]byte("presets: [1, 2")); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestPresetBookUnknown(t *testing.T) {
	book, err := ParsePresets([]byte(presetYAML))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := book.Get("missing"); ok {
		t.Error("Get found a missing preset")
	}
	if _, _, err := book.Options("missing"); !errors.Is(err, ErrConfig) {
		t.Errorf("err = %v, want ErrConfig", err)
	}
}

func TestPresetBookPlay(t *testing.T) {
	book, err := ParsePresets([]byte(presetYAML))
	if err != nil {
		t.Fatal(err)
	}
	m := NewManager()
	b := NewBody("card", 0, 0)
	inst, err := book.Play(m, "slide", b, testLine)
	if err != nil {
		t.Fatal(err)
	}
	if inst.Duration() != 0.5 {
		t.Errorf("Duration = %v, want 0.5", inst.Duration())
	}
	_ = m.Update(0.25)
	if math.Abs(b.X-5) > tol {
		t.Errorf("X = %v, want 5", b.X)
	}
}

func TestLoadPresets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	if err := os.WriteFile(path, []byte(presetYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	book, err := LoadPresets(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := book.Get("deal"); !ok {
		t.Error("deal preset missing")
	}

	if _, err := LoadPresets(filepath.Join(dir, "nope.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v, want ErrNotExist", err)
	}
}
