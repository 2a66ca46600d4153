package swoop

import "math"

// EasingFunc remaps normalized progress in [0, 1] to eased progress. Inputs
// outside [0, 1] are clamped first. Back and elastic curves intentionally
// return values outside [0, 1] between the endpoints.
type EasingFunc func(t float64) float64

const (
	backOvershoot      = 1.70158
	backInOutScale     = 1.525
	elasticPeriod      = 0.3
	elasticInOutPeriod = 0.45
	bounceScale        = 7.5625
	bounceDiv          = 2.75
)

// Linear returns t unchanged.
func Linear(t float64) float64 { return clamp01(t) }

// Smoothstep is the cubic Hermite curve 3t²-2t³.
func Smoothstep(t float64) float64 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}

// --- Quad ---

func InQuad(t float64) float64 {
	t = clamp01(t)
	return t * t
}

func OutQuad(t float64) float64 {
	t = clamp01(t)
	return 1 - (1-t)*(1-t)
}

func InOutQuad(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// --- Cubic ---

func InCubic(t float64) float64 {
	t = clamp01(t)
	return t * t * t
}

func OutCubic(t float64) float64 {
	t = clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

func InOutCubic(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// --- Quart ---

func InQuart(t float64) float64 {
	t = clamp01(t)
	return t * t * t * t
}

func OutQuart(t float64) float64 {
	t = clamp01(t)
	return 1 - math.Pow(1-t, 4)
}

func InOutQuart(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 8 * math.Pow(t, 4)
	}
	return 1 - math.Pow(-2*t+2, 4)/2
}

// --- Quint ---

func InQuint(t float64) float64 {
	t = clamp01(t)
	return math.Pow(t, 5)
}

func OutQuint(t float64) float64 {
	t = clamp01(t)
	return 1 - math.Pow(1-t, 5)
}

func InOutQuint(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 16 * math.Pow(t, 5)
	}
	return 1 - math.Pow(-2*t+2, 5)/2
}

// --- Sine ---

func InSine(t float64) float64 {
	t = clamp01(t)
	return 1 - math.Cos(t*math.Pi/2)
}

func OutSine(t float64) float64 {
	t = clamp01(t)
	return math.Sin(t * math.Pi / 2)
}

func InOutSine(t float64) float64 {
	t = clamp01(t)
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// --- Expo ---

// InExpo returns exactly 0 at t=0 instead of 2^-10.
func InExpo(t float64) float64 {
	t = clamp01(t)
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}

// OutExpo returns exactly 1 at t=1 instead of 1-2^-10.
func OutExpo(t float64) float64 {
	t = clamp01(t)
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func InOutExpo(t float64) float64 {
	t = clamp01(t)
	if t == 0 || t == 1 {
		return t
	}
	if t < 0.5 {
		return math.Pow(2, 20*t-11)
	}
	return 1 - math.Pow(2, -20*t+11)
}

// --- Circ ---

func InCirc(t float64) float64 {
	t = clamp01(t)
	return 1 - math.Sqrt(1-t*t)
}

func OutCirc(t float64) float64 {
	t = clamp01(t)
	return math.Sqrt(1 - (t-1)*(t-1))
}

func InOutCirc(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return (1 - math.Sqrt(1-4*t*t)) / 2
	}
	return (math.Sqrt(1-math.Pow(-2*t+2, 2)) + 1) / 2
}

// --- Back ---

// InBack pulls back below 0 before accelerating toward 1.
func InBack(t float64) float64 {
	t = clamp01(t)
	s := backOvershoot
	return (s+1)*t*t*t - s*t*t
}

// OutBack overshoots past 1 before settling.
func OutBack(t float64) float64 {
	t = clamp01(t)
	s := backOvershoot
	u := t - 1
	return 1 + (s+1)*u*u*u + s*u*u
}

func InOutBack(t float64) float64 {
	t = clamp01(t)
	s := backOvershoot * backInOutScale
	if t < 0.5 {
		return math.Pow(2*t, 2) * ((s+1)*2*t - s) / 2
	}
	return (math.Pow(2*t-2, 2)*((s+1)*(2*t-2)+s) + 2) / 2
}

// --- Elastic ---

func InElastic(t float64) float64 {
	t = clamp01(t)
	if t == 0 || t == 1 {
		return t
	}
	return -math.Pow(2, 10*(t-1)) * math.Sin((t-1.075)*(2*math.Pi)/elasticPeriod)
}

func OutElastic(t float64) float64 {
	t = clamp01(t)
	if t == 0 || t == 1 {
		return t
	}
	return math.Pow(2, -10*t)*math.Sin((t-0.075)*(2*math.Pi)/elasticPeriod) + 1
}

func InOutElastic(t float64) float64 {
	t = clamp01(t)
	if t == 0 || t == 1 {
		return t
	}
	phase := (20*t - 11.125) * (2 * math.Pi) / elasticInOutPeriod
	if t < 0.5 {
		return -0.5 * math.Pow(2, 20*t-11) * math.Sin(phase)
	}
	return math.Pow(2, -20*t+11)*math.Sin(phase)*0.5 + 1
}

// --- Bounce ---

// OutBounce is four parabolic arcs with breakpoints at 1/2.75, 2/2.75 and
// 2.5/2.75.
func OutBounce(t float64) float64 {
	t = clamp01(t)
	switch {
	case t < 1/bounceDiv:
		return bounceScale * t * t
	case t < 2/bounceDiv:
		t -= 1.5 / bounceDiv
		return bounceScale*t*t + 0.75
	case t < 2.5/bounceDiv:
		t -= 2.25 / bounceDiv
		return bounceScale*t*t + 0.9375
	default:
		t -= 2.625 / bounceDiv
		return bounceScale*t*t + 0.984375
	}
}

func InBounce(t float64) float64 {
	t = clamp01(t)
	return 1 - OutBounce(1-t)
}

func InOutBounce(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return (1 - OutBounce(1-2*t)) / 2
	}
	return (1 + OutBounce(2*t-1)) / 2
}
