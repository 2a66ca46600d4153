package swoop

import "math"

// Lean defaults.
const (
	DefaultLeanDelta     = 0.2
	DefaultLeanDamping   = 0.01
	DefaultMaxAngle      = 10.0
	DefaultVelocityScale = 3.0
	DefaultLevelOut      = 0.9

	// NoLookAhead as LeanConfig.Delta samples the tangent at the current
	// progress instead of ahead of it.
	NoLookAhead = -1.0

	// leanReferenceRate is the frame rate at which Damping is the exact
	// per-frame blend fraction.
	leanReferenceRate = 60.0
	// leanMinSpeed is the speed below which the heading is treated as 0.
	leanMinSpeed = 1e-5
)

// LeanConfig controls the banking rotation an instance derives from its
// path. A zero field takes the corresponding default, so LeanConfig{Enabled:
// true} is a complete configuration.
type LeanConfig struct {
	// Enabled turns leaning on. When false the target's rotation is never
	// written.
	Enabled bool

	// Delta is how far ahead, in eased progress, the path tangent is
	// sampled. Zero takes DefaultLeanDelta; use NoLookAhead (any negative
	// value) to sample at the current progress.
	Delta float64

	// Damping in (0, 1] is the fraction of the remaining gap to the target
	// angle closed per 1/60 s. It is applied as a continuous exponential
	// decay, so the same value behaves the same at any frame rate.
	Damping float64

	// MaxAngle in degrees is the asymptote of the soft clamp.
	MaxAngle float64

	// VelocityScale multiplies the raw heading. Zero takes
	// DefaultVelocityScale; a negative scale mirrors the lean.
	VelocityScale float64

	// LevelOut is the fraction of eased progress after which the angle is
	// blended toward EndAngle. Values >= 1 disable the level-out.
	LevelOut float64

	// EndAngle in degrees is the resting orientation reached at the end of
	// the animation. Zero means the base orientation.
	EndAngle float64
}

// withDefaults fills zero fields. A negative Delta is kept and read as no
// look-ahead.
func (c LeanConfig) withDefaults() LeanConfig {
	if c.Delta == 0 {
		c.Delta = DefaultLeanDelta
	}
	if c.Damping <= 0 {
		c.Damping = DefaultLeanDamping
	}
	if c.Damping > 1 {
		c.Damping = 1
	}
	if c.MaxAngle <= 0 {
		c.MaxAngle = DefaultMaxAngle
	}
	if c.VelocityScale == 0 {
		c.VelocityScale = DefaultVelocityScale
	}
	if c.LevelOut <= 0 {
		c.LevelOut = DefaultLevelOut
	}
	return c
}

// targetAngle returns the lean angle in degrees the displayed rotation should
// move toward at eased progress te.
func (c *LeanConfig) targetAngle(path *Spline, te float64) float64 {
	look := math.Min(te+math.Max(c.Delta, 0), 1)
	v := path.Derivative(look)

	var angle float64
	if v.Len() > leanMinSpeed {
		angle = v.Angle()
	}
	angle *= c.VelocityScale
	angle *= 1 - te

	// Soft clamp: approaches MaxAngle asymptotically with no kink.
	angle = c.MaxAngle * math.Tanh(angle/c.MaxAngle)

	if c.LevelOut < 1 && te > c.LevelOut {
		u := Smoothstep((te - c.LevelOut) / (1 - c.LevelOut))
		angle = (1-u)*angle + u*c.EndAngle
	}
	return angle
}

// blend returns the fraction of the gap to close over dt seconds.
func (c *LeanConfig) blend(dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	if c.Damping >= 1 {
		return 1
	}
	return 1 - math.Pow(1-c.Damping, dt*leanReferenceRate)
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }
