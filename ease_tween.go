package swoop

import (
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
)

// FromTween adapts a gween easing function to an EasingFunc by evaluating it
// over a unit range (begin 0, change 1, duration 1).
func FromTween(fn ease.TweenFunc) EasingFunc {
	return func(t float64) float64 {
		return float64(fn(float32(clamp01(t)), 0, 1, 1))
	}
}

// Tween adapts f to gween's (t, begin, change, duration) signature so it can
// drive a gween.Tween.
func (f EasingFunc) Tween() ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		return b + c*float32(f(float64(t/d)))
	}
}

// easings maps configuration names to easing functions. Names follow the
// snake_case form used in preset and script files.
var easings = map[string]EasingFunc{
	"linear":     Linear,
	"smoothstep": Smoothstep,

	"ease_in_quad":     InQuad,
	"ease_out_quad":    OutQuad,
	"ease_in_out_quad": InOutQuad,

	"ease_in_cubic":     InCubic,
	"ease_out_cubic":    OutCubic,
	"ease_in_out_cubic": InOutCubic,

	"ease_in_quart":     InQuart,
	"ease_out_quart":    OutQuart,
	"ease_in_out_quart": InOutQuart,

	"ease_in_quint":     InQuint,
	"ease_out_quint":    OutQuint,
	"ease_in_out_quint": InOutQuint,

	"ease_in_sine":     InSine,
	"ease_out_sine":    OutSine,
	"ease_in_out_sine": InOutSine,

	"ease_in_expo":     InExpo,
	"ease_out_expo":    OutExpo,
	"ease_in_out_expo": InOutExpo,

	"ease_in_circ":     InCirc,
	"ease_out_circ":    OutCirc,
	"ease_in_out_circ": InOutCirc,

	"ease_in_back":     InBack,
	"ease_out_back":    OutBack,
	"ease_in_out_back": InOutBack,

	"ease_in_elastic":     InElastic,
	"ease_out_elastic":    OutElastic,
	"ease_in_out_elastic": InOutElastic,

	"ease_in_bounce":     InBounce,
	"ease_out_bounce":    OutBounce,
	"ease_in_out_bounce": InOutBounce,

	// gween provides the out-in halves.
	"ease_out_in_quad":   FromTween(ease.OutInQuad),
	"ease_out_in_cubic":  FromTween(ease.OutInCubic),
	"ease_out_in_quart":  FromTween(ease.OutInQuart),
	"ease_out_in_quint":  FromTween(ease.OutInQuint),
	"ease_out_in_sine":   FromTween(ease.OutInSine),
	"ease_out_in_expo":   FromTween(ease.OutInExpo),
	"ease_out_in_circ":   FromTween(ease.OutInCirc),
	"ease_out_in_bounce": FromTween(ease.OutInBounce),

	// Jitter curves with their default parameters.
	"ease_jitter":       JitterSine(0.2, 40),
	"ease_jitter_start": JitterStart(0.03, 4),
	"ease_jitter_beats": JitterBeats(0.02, 30, 33),
	"ease_jitter_noise": JitterNoise(0.02, 80),
}

// Easing looks up an easing function by name. An empty name yields Linear.
// The stateful jitter curves (JitterRandom, JitterStep) are not registered
// because each animation needs its own instance.
func Easing(name string) (EasingFunc, error) {
	if name == "" {
		return Linear, nil
	}
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown easing %q", ErrConfig, name)
	}
	return fn, nil
}

// EasingNames returns all registered easing names in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
