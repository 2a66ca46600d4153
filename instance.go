package swoop

import "math"

// MinDuration is the shortest duration an instance will run. Non-positive
// durations are coerced to it rather than rejected.
const MinDuration = 1e-4

// State is the lifecycle stage of an Instance.
type State uint8

const (
	StatePending   State = iota // created, not yet updated
	StateDelaying               // counting down Options.Delay
	StateActive                 // moving along the path
	StateComplete               // reached the end; OnComplete has run
	StateCancelled              // stopped early by Cancel or a disposed target
)

var stateNames = [...]string{"pending", "delaying", "active", "complete", "cancelled"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Options configures an Instance. The zero value is a linear, undelayed,
// non-leaning, degree-1 animation.
type Options struct {
	// Delay in seconds before the instance starts moving. Delay does not
	// count against the duration.
	Delay float64

	// Easing remaps progress before it is used as the spline parameter.
	// nil means Linear.
	Easing EasingFunc

	// Degree is the spline degree used by Manager.Add. Zero means 1.
	Degree int

	// Lean configures banking rotation.
	Lean LeanConfig

	// OnComplete is called once with the target when the instance finishes
	// naturally. It is not called on Cancel.
	OnComplete func(Target)
}

// Instance drives one target along one Spline. Call Update each frame with
// the elapsed time; the instance writes the new position (and lean rotation
// when enabled) to the target.
type Instance struct {
	target   Target
	rotator  Rotatable
	path     *Spline
	duration float64
	delay    float64
	easing   EasingFunc
	lean     LeanConfig
	onDone   func(Target)

	state    State
	elapsed  float64
	progress float64
	eased    float64
	angle    float64
	pos      Vec2
}

// NewInstance creates an instance that moves target along path over duration
// seconds. path is shared read-only and may back other instances.
func NewInstance(target Target, path *Spline, duration float64, opts Options) *Instance {
	if !(duration >= MinDuration) {
		duration = MinDuration
	}
	easing := opts.Easing
	if easing == nil {
		easing = Linear
	}
	inst := &Instance{
		target:   target,
		path:     path,
		duration: duration,
		delay:    math.Max(opts.Delay, 0),
		easing:   easing,
		onDone:   opts.OnComplete,
		pos:      path.Start(),
	}
	if opts.Lean.Enabled {
		inst.lean = opts.Lean.withDefaults()
		inst.rotator, _ = target.(Rotatable)
	}
	return inst
}

// Update advances the instance by dt seconds. It is a no-op once the
// instance is done.
func (a *Instance) Update(dt float64) {
	if a.Done() {
		return
	}
	if isDisposed(a.target) {
		a.state = StateCancelled
		return
	}
	if !(dt > 0) {
		dt = 0
	}

	if a.state == StatePending {
		a.state = StateDelaying
	}
	if a.state == StateDelaying {
		if a.delay > 0 {
			a.delay -= dt
			if a.delay > 0 {
				return
			}
			// Carry the part of dt that outlasted the delay.
			dt = -a.delay
			a.delay = 0
		}
		a.state = StateActive
	}

	a.elapsed += dt
	a.progress = math.Min(a.elapsed/a.duration, 1)
	a.eased = a.easing(a.progress)
	a.pos = a.path.Evaluate(a.eased)
	a.target.SetPosition(a.pos)

	if a.lean.Enabled {
		goal := a.lean.targetAngle(a.path, a.eased)
		a.angle += (goal - a.angle) * a.lean.blend(dt)
		a.applyRotation(a.angle)
	}

	if a.elapsed >= a.duration {
		a.finish()
	}
}

// finish settles the instance at the end of the path.
func (a *Instance) finish() {
	a.progress = 1
	a.state = StateComplete
	if a.lean.Enabled {
		a.angle = 0
		a.applyRotation(a.lean.EndAngle)
	}
	if a.onDone != nil {
		a.onDone(a.target)
	}
}

// applyRotation sets the target's rotation from its base orientation.
func (a *Instance) applyRotation(degrees float64) {
	if a.rotator != nil {
		a.rotator.SetRotation(degToRad(degrees))
	}
}

// Cancel stops the instance where it is. OnComplete is not called and later
// updates do nothing. Cancelling a finished instance has no effect.
func (a *Instance) Cancel() {
	if a.Done() {
		return
	}
	a.state = StateCancelled
}

// Done reports whether the instance has completed or been cancelled.
func (a *Instance) Done() bool {
	return a.state == StateComplete || a.state == StateCancelled
}

// Cancelled reports whether the instance stopped without completing.
func (a *Instance) Cancelled() bool { return a.state == StateCancelled }

// State returns the lifecycle stage.
func (a *Instance) State() State { return a.state }

// Target returns the object being animated.
func (a *Instance) Target() Target { return a.target }

// Path returns the spline the instance follows.
func (a *Instance) Path() *Spline { return a.path }

// Duration returns the effective duration in seconds.
func (a *Instance) Duration() float64 { return a.duration }

// Elapsed returns the active time accrued so far, excluding delay.
func (a *Instance) Elapsed() float64 { return a.elapsed }

// RemainingDelay returns the delay still to be consumed.
func (a *Instance) RemainingDelay() float64 { return a.delay }

// Progress returns normalized time min(elapsed/duration, 1).
func (a *Instance) Progress() float64 { return a.progress }

// EasedProgress returns the easing output for the current progress.
func (a *Instance) EasedProgress() float64 { return a.eased }

// Position returns the last position written to the target.
func (a *Instance) Position() Vec2 { return a.pos }

// Angle returns the displayed lean angle in degrees. It is reset to 0 on
// completion.
func (a *Instance) Angle() float64 { return a.angle }
