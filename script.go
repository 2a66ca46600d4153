package swoop

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single entry in a motion script.
type scriptStep struct {
	Action   string      `yaml:"action"`
	Target   string      `yaml:"target"`
	From     []float64   `yaml:"from"`
	To       []float64   `yaml:"to"`
	Points   [][]float64 `yaml:"points"`
	Duration float64     `yaml:"duration"`
	Delay    float64     `yaml:"delay"`
	Easing   string      `yaml:"easing"`
	Preset   string      `yaml:"preset"`
	Degree   int         `yaml:"degree"`
}

// script is the top-level structure of a motion script.
type script struct {
	StartDelay float64      `yaml:"startDelay"`
	Policy     string       `yaml:"policy"`
	Steps      []scriptStep `yaml:"steps"`
}

// ParseScript builds a started Queue from a YAML (or JSON) motion script.
// Step targets are looked up by name in targets. presets may be nil when no
// step uses a preset.
//
//	startDelay: 0.5
//	policy: previous        # or "target" (default)
//	steps:
//	  - {action: move, target: card, to: [300, 120], duration: 0.6}
//	  - {action: pause, duration: 0.2}
//	  - {action: path, target: card, points: [[300,120],[420,0],[560,300]],
//	     degree: 2, duration: 1.2, preset: deal}
func ParseScript(data []byte, targets map[string]Target, presets *PresetBook) (*Queue, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w: no steps", ErrConfig)
	}

	var policy StartPolicy
	switch sc.Policy {
	case "", "target":
		policy = StartFromTarget
	case "previous":
		policy = StartFromPreviousStep
	default:
		return nil, fmt.Errorf("parse script: %w: unknown policy %q", ErrConfig, sc.Policy)
	}

	q := NewQueue(policy)
	for i, st := range sc.Steps {
		if err := addScriptStep(q, st, targets, presets); err != nil {
			return nil, fmt.Errorf("parse script: step %d (%s): %w", i, st.Action, err)
		}
	}
	q.Start(sc.StartDelay)
	return q, nil
}

func addScriptStep(q *Queue, st scriptStep, targets map[string]Target, presets *PresetBook) error {
	var target Target
	if st.Target != "" {
		t, ok := targets[st.Target]
		if !ok {
			return fmt.Errorf("%w: unknown target %q", ErrConfig, st.Target)
		}
		target = t
	}

	switch st.Action {
	case "move":
		if target == nil {
			return fmt.Errorf("%w: move needs a target", ErrConfig)
		}
		to, err := vecOf(st.To, "to")
		if err != nil {
			return err
		}
		easing, err := Easing(st.Easing)
		if err != nil {
			return err
		}
		s := &Step{Kind: StepMove, Target: target, End: to,
			Duration: st.Duration, Delay: st.Delay, Easing: easing}
		if st.From != nil {
			if s.Start, err = vecOf(st.From, "from"); err != nil {
				return err
			}
			s.HasStart = true
		}
		return q.Add(s)

	case "pause":
		_, err := q.AddPause(target, st.Duration, st.Delay)
		return err

	case "path":
		if target == nil {
			return fmt.Errorf("%w: path needs a target", ErrConfig)
		}
		points := make([]Vec2, len(st.Points))
		for i, p := range st.Points {
			v, err := vecOf(p, fmt.Sprintf("points[%d]", i))
			if err != nil {
				return err
			}
			points[i] = v
		}
		opts, duration, err := scriptOptions(st, presets)
		if err != nil {
			return err
		}
		degree := opts.Degree
		if degree == 0 {
			degree = 1
		}
		path, err := NewSpline(points, degree)
		if err != nil {
			return err
		}
		// A preset delay adds to the step delay, which the queue applies.
		delay := st.Delay + opts.Delay
		opts.Delay = 0
		_, err = q.AddPath(NewInstance(target, path, duration, opts), delay)
		return err
	}
	return fmt.Errorf("%w: unknown action %q", ErrConfig, st.Action)
}

// scriptOptions merges a path step's preset with its inline fields. Inline
// fields win when set.
func scriptOptions(st scriptStep, presets *PresetBook) (Options, float64, error) {
	var opts Options
	var duration float64
	if st.Preset != "" {
		if presets == nil {
			return Options{}, 0, fmt.Errorf("%w: preset %q used without a preset book", ErrConfig, st.Preset)
		}
		var err error
		if opts, duration, err = presets.Options(st.Preset); err != nil {
			return Options{}, 0, err
		}
	}
	if st.Duration > 0 {
		duration = st.Duration
	}
	if st.Degree > 0 {
		opts.Degree = st.Degree
	}
	if st.Easing != "" {
		easing, err := Easing(st.Easing)
		if err != nil {
			return Options{}, 0, err
		}
		opts.Easing = easing
	}
	return opts, duration, nil
}

func vecOf(v []float64, field string) (Vec2, error) {
	if len(v) != 2 {
		return Vec2{}, fmt.Errorf("%w: %s must be [x, y], got %d values", ErrConfig, field, len(v))
	}
	return Vec2{v[0], v[1]}, nil
}
