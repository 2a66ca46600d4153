package swoop

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Preset is a named animation configuration as stored in a YAML preset file.
//
//	presets:
//	  deal:
//	    duration: 1.0
//	    easing: ease_out_quart
//	    degree: 2
//	    lean:
//	      enabled: true
//	      damping: 0.05
//	      maxAngle: 15
type Preset struct {
	Duration float64     `yaml:"duration"`
	Delay    float64     `yaml:"delay"`
	Easing   string      `yaml:"easing"`
	Degree   int         `yaml:"degree"`
	Lean     *LeanPreset `yaml:"lean"`
}

// LeanPreset is the YAML form of LeanConfig. Omitted or zero fields take the
// LeanConfig defaults; a negative delta turns the look-ahead off.
type LeanPreset struct {
	Enabled       bool    `yaml:"enabled"`
	Delta         float64 `yaml:"delta"`
	Damping       float64 `yaml:"damping"`
	MaxAngle      float64 `yaml:"maxAngle"`
	VelocityScale float64 `yaml:"velocityScale"`
	LevelOut      float64 `yaml:"levelOut"`
	EndAngle      float64 `yaml:"endAngle"`
}

// presetFile is the top-level YAML structure.
type presetFile struct {
	Presets map[string]Preset `yaml:"presets"`
}

// PresetBook is a validated set of presets.
type PresetBook struct {
	presets map[string]Preset
}

// ParsePresets parses and validates YAML preset data.
func ParsePresets(data []byte) (*PresetBook, error) {
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	if len(f.Presets) == 0 {
		return nil, fmt.Errorf("parse presets: %w: no presets", ErrConfig)
	}
	for name, p := range f.Presets {
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("parse presets: preset %q: %w", name, err)
		}
	}
	return &PresetBook{presets: f.Presets}, nil
}

// LoadPresets reads and parses a YAML preset file.
func LoadPresets(path string) (*PresetBook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets %s: %w", path, err)
	}
	book, err := ParsePresets(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return book, nil
}

func (p *Preset) validate() error {
	if p.Duration < 0 {
		return fmt.Errorf("%w: duration cannot be negative", ErrConfig)
	}
	if p.Delay < 0 {
		return fmt.Errorf("%w: delay cannot be negative", ErrConfig)
	}
	if p.Degree < 0 {
		return fmt.Errorf("%w: degree cannot be negative", ErrConfig)
	}
	if _, err := Easing(p.Easing); err != nil {
		return err
	}
	if l := p.Lean; l != nil {
		if l.Damping < 0 || l.Damping > 1 {
			return fmt.Errorf("%w: lean damping %v outside [0, 1]", ErrConfig, l.Damping)
		}
		if l.MaxAngle < 0 {
			return fmt.Errorf("%w: lean maxAngle cannot be negative", ErrConfig)
		}
	}
	return nil
}

// Options converts the preset to instance options.
func (p Preset) Options() Options {
	easing, _ := Easing(p.Easing)
	opts := Options{
		Delay:  p.Delay,
		Easing: easing,
		Degree: p.Degree,
	}
	if l := p.Lean; l != nil {
		opts.Lean = LeanConfig{
			Enabled:       l.Enabled,
			Delta:         l.Delta,
			Damping:       l.Damping,
			MaxAngle:      l.MaxAngle,
			VelocityScale: l.VelocityScale,
			LevelOut:      l.LevelOut,
			EndAngle:      l.EndAngle,
		}
	}
	return opts
}

// Get returns the named preset.
func (b *PresetBook) Get(name string) (Preset, bool) {
	p, ok := b.presets[name]
	return p, ok
}

// Options returns the named preset's options and duration.
func (b *PresetBook) Options(name string) (Options, float64, error) {
	p, ok := b.presets[name]
	if !ok {
		return Options{}, 0, fmt.Errorf("%w: unknown preset %q", ErrConfig, name)
	}
	return p.Options(), p.Duration, nil
}

// Names returns the preset names in sorted order.
func (b *PresetBook) Names() []string {
	names := make([]string, 0, len(b.presets))
	for name := range b.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Play starts the named preset on m, moving target through points.
func (b *PresetBook) Play(m *Manager, name string, target Target, points []Vec2) (*Instance, error) {
	opts, duration, err := b.Options(name)
	if err != nil {
		return nil, err
	}
	return m.Add(target, points, duration, opts)
}
