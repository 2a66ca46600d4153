package swoop

import (
	"math"
	"math/rand/v2"
)

// noiseStream is the PCG stream used by JitterNoise. Changing it changes
// every noise curve.
const noiseStream = 0x5eed

// JitterSine adds a high-frequency sine wobble of the given intensity around
// linear progress.
func JitterSine(intensity, freq float64) EasingFunc {
	return func(t float64) float64 {
		t = clamp01(t)
		return clamp01(t + math.Sin(t*freq)*intensity)
	}
}

// JitterStart wobbles strongly at the start and settles as (1-t)^decay.
func JitterStart(intensity, decay float64) EasingFunc {
	return func(t float64) float64 {
		t = clamp01(t)
		jitter := math.Sin(t*60) * intensity * math.Pow(1-t, decay)
		return clamp01(t + jitter)
	}
}

// JitterBeats adds the beat pattern of two close sine frequencies.
func JitterBeats(intensity, f1, f2 float64) EasingFunc {
	return func(t float64) float64 {
		t = clamp01(t)
		jitter := (math.Sin(t*f1) + math.Sin(t*f2)) * 0.5 * intensity
		return clamp01(t + jitter)
	}
}

// JitterNoise adds smooth 1D value noise. The curve is divided into speed
// cells per unit of t; each cell boundary i gets a sample in [-1, 1] from a
// generator seeded with i, and samples are blended with a cosine smoothstep.
// The result is identical across runs and processes.
func JitterNoise(intensity, speed float64) EasingFunc {
	return func(t float64) float64 {
		t = clamp01(t)
		x := t * speed
		i := math.Floor(x)
		f := x - i
		a := noiseSample(int64(i))
		b := noiseSample(int64(i) + 1)
		w := (1 - math.Cos(f*math.Pi)) * 0.5
		n := a*(1-w) + b*w
		return clamp01(t + n*intensity)
	}
}

// noiseSample returns the deterministic sample in [-1, 1] for cell i.
func noiseSample(i int64) float64 {
	r := rand.New(rand.NewPCG(uint64(i), noiseStream))
	return r.Float64()*2 - 1
}

// JitterRandom is a damped random wobble. Each call draws a new random
// target and blends it into the previous offset, so the offset has memory.
// Use one JitterRandom per animated object; its Ease method is the easing
// function.
type JitterRandom struct {
	// Intensity is the largest offset a single draw can contribute.
	Intensity float64
	// Damping in [0, 1] is how much of the previous offset survives a call.
	Damping float64

	prev float64
	rng  *rand.Rand
}

// NewJitterRandom creates a JitterRandom with its own generator.
func NewJitterRandom(seed uint64, intensity, damping float64) *JitterRandom {
	return &JitterRandom{
		Intensity: intensity,
		Damping:   damping,
		rng:       rand.New(rand.NewPCG(seed, noiseStream)),
	}
}

// Ease advances the noise state and returns the jittered progress.
func (j *JitterRandom) Ease(t float64) float64 {
	t = clamp01(t)
	target := (j.rng.Float64()*2 - 1) * j.Intensity
	j.prev = j.prev*j.Damping + target*(1-j.Damping)
	return clamp01(t + j.prev)
}

// Offset returns the current smoothed noise value.
func (j *JitterRandom) Offset() float64 { return j.prev }

// Reset clears the smoothing memory.
func (j *JitterRandom) Reset() { j.prev = 0 }

// JitterStep quantizes progress into Steps levels and adds a small random
// offset, giving a stop-motion feel.
type JitterStep struct {
	Steps     int
	Intensity float64

	rng *rand.Rand
}

// NewJitterStep creates a JitterStep with its own generator.
func NewJitterStep(seed uint64, steps int, intensity float64) *JitterStep {
	if steps < 1 {
		steps = 1
	}
	return &JitterStep{
		Steps:     steps,
		Intensity: intensity,
		rng:       rand.New(rand.NewPCG(seed, noiseStream)),
	}
}

// Ease returns the stepped, jittered progress.
func (j *JitterStep) Ease(t float64) float64 {
	t = clamp01(t)
	offset := (j.rng.Float64()*2 - 1) * j.Intensity
	n := float64(j.Steps)
	return clamp01(math.Round(t*n)/n + offset)
}
