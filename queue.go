package swoop

import (
	"fmt"
	"math"
)

// StartPolicy decides where a move step begins when no start was given.
type StartPolicy uint8

const (
	// StartFromTarget reads the target's live position when the step
	// becomes current.
	StartFromTarget StartPolicy = iota
	// StartFromPreviousStep uses the end of the last move or path this
	// queue finished for the same target, falling back to the live position when
	// there is none.
	StartFromPreviousStep
)

// StepKind distinguishes queue steps.
type StepKind uint8

const (
	StepMove  StepKind = iota // straight-line move between two points
	StepPause                 // wait without moving anything
	StepPath                  // run an Instance to completion
)

func (k StepKind) String() string {
	switch k {
	case StepMove:
		return "move"
	case StepPause:
		return "pause"
	case StepPath:
		return "path"
	}
	return "unknown"
}

// Step is one entry in a Queue. Fields are read when the step becomes
// current; changing them afterwards has no effect.
type Step struct {
	Kind   StepKind
	Target Target

	// Start is used when HasStart is set; otherwise it is resolved from the
	// queue's StartPolicy when the step becomes current.
	Start    Vec2
	HasStart bool
	End      Vec2

	// Duration of the motion (or pause) in seconds, after Delay.
	Duration float64
	// Delay in seconds between becoming current and starting to move.
	Delay float64
	// Easing for move steps. nil means Linear.
	Easing EasingFunc

	// Instance is the animation run by a StepPath step.
	Instance *Instance

	elapsed float64
}

// Queue runs steps one after another. Only one step is current at a time;
// the next is taken on the first Update after the current one finishes.
// Steps may target different objects, so one Queue can choreograph a whole
// group; use one Queue per object for independent timelines.
//
// Time is supplied by the caller through Update(dt). Like Manager, a Queue is
// not safe for concurrent use.
type Queue struct {
	// OnStepDone is called after a step finishes.
	OnStepDone func(*Step)

	policy  StartPolicy
	pending []*Step
	current *Step

	started    bool
	startDelay float64
	wait       float64
	clock      float64

	lastEnd map[Target]Vec2
}

// NewQueue creates an empty queue with the given start policy.
func NewQueue(policy StartPolicy) *Queue {
	return &Queue{policy: policy, lastEnd: make(map[Target]Vec2)}
}

// Policy returns the queue's start policy.
func (q *Queue) Policy() StartPolicy { return q.policy }

// Add appends a step. Move and Path steps need a target or instance.
func (q *Queue) Add(s *Step) error {
	switch s.Kind {
	case StepMove:
		if s.Target == nil {
			return fmt.Errorf("%w: move step without target", ErrConfig)
		}
	case StepPath:
		if s.Instance == nil {
			return fmt.Errorf("%w: path step without instance", ErrConfig)
		}
		if s.Target == nil {
			s.Target = s.Instance.Target()
		}
	case StepPause:
	default:
		return fmt.Errorf("%w: unknown step kind %d", ErrConfig, s.Kind)
	}
	s.elapsed = 0
	q.pending = append(q.pending, s)
	return nil
}

// AddMove queues a move of target to end. The start is resolved when the
// step becomes current.
func (q *Queue) AddMove(target Target, end Vec2, duration, delay float64) (*Step, error) {
	s := &Step{Kind: StepMove, Target: target, End: end, Duration: duration, Delay: delay}
	return s, q.Add(s)
}

// AddMoveFrom queues a move of target from start to end.
func (q *Queue) AddMoveFrom(target Target, start, end Vec2, duration, delay float64) (*Step, error) {
	s := &Step{Kind: StepMove, Target: target, Start: start, HasStart: true, End: end,
		Duration: duration, Delay: delay}
	return s, q.Add(s)
}

// AddPause queues a wait. target is informational and may be nil.
func (q *Queue) AddPause(target Target, duration, delay float64) (*Step, error) {
	s := &Step{Kind: StepPause, Target: target, Duration: duration, Delay: delay}
	return s, q.Add(s)
}

// AddPath queues a spline animation. The queue advances once inst is done.
func (q *Queue) AddPath(inst *Instance, delay float64) (*Step, error) {
	s := &Step{Kind: StepPath, Instance: inst, Delay: delay}
	if inst != nil {
		s.Duration = inst.Duration()
	}
	return s, q.Add(s)
}

// Start arms the queue. Nothing moves until delay seconds of updates have
// passed. Calling Start again re-arms it with the new delay.
func (q *Queue) Start(delay float64) {
	q.started = true
	q.startDelay = math.Max(delay, 0)
	q.wait = q.startDelay
	q.clock = 0
}

// Update advances the queue by dt seconds.
func (q *Queue) Update(dt float64) {
	if !q.started {
		return
	}
	if !(dt > 0) {
		dt = 0
	}
	q.clock += dt
	if q.wait > 0 {
		q.wait -= dt
		if q.wait > 0 {
			return
		}
		dt = -q.wait
		q.wait = 0
	}

	if q.current == nil {
		if len(q.pending) == 0 {
			return
		}
		q.current = q.pending[0]
		q.pending[0] = nil
		q.pending = q.pending[1:]
		q.begin(q.current)
	}

	s := q.current
	s.elapsed += dt
	if s.elapsed < s.Delay {
		return
	}
	active := s.elapsed - s.Delay

	var finished bool
	switch s.Kind {
	case StepMove:
		if isDisposed(s.Target) {
			finished = true
			break
		}
		t := math.Min(active/s.Duration, 1)
		if t >= 1 {
			s.Target.SetPosition(s.End)
			q.lastEnd[s.Target] = s.End
			finished = true
			break
		}
		s.Target.SetPosition(s.Start.Lerp(s.End, s.Easing(t)))
	case StepPause:
		finished = active >= s.Duration
	case StepPath:
		// The first active tick only gets the time past the step delay.
		step := dt
		if active < step {
			step = active
		}
		s.Instance.Update(step)
		finished = s.Instance.Done()
		if finished && !s.Instance.Cancelled() {
			q.lastEnd[s.Target] = s.Instance.Path().End()
		}
	}

	if finished {
		q.current = nil
		if q.OnStepDone != nil {
			q.OnStepDone(s)
		}
	}
}

// begin prepares a step as it becomes current.
func (q *Queue) begin(s *Step) {
	if !(s.Duration >= MinDuration) {
		s.Duration = MinDuration
	}
	if s.Delay < 0 {
		s.Delay = 0
	}
	if s.Kind != StepMove {
		return
	}
	if s.Easing == nil {
		s.Easing = Linear
	}
	if !s.HasStart {
		s.Start = q.resolveStart(s.Target)
		s.HasStart = true
	}
}

func (q *Queue) resolveStart(t Target) Vec2 {
	if q.policy == StartFromPreviousStep {
		if end, ok := q.lastEnd[t]; ok {
			return end
		}
	}
	return t.Position()
}

// Current returns the step being executed, or nil.
func (q *Queue) Current() *Step { return q.current }

// Len returns the number of steps not yet started.
func (q *Queue) Len() int { return len(q.pending) }

// Started reports whether Start has been called.
func (q *Queue) Started() bool { return q.started }

// Elapsed returns the time accumulated since Start, including the start
// delay.
func (q *Queue) Elapsed() float64 { return q.clock }

// Done reports whether the queue has been started and has nothing left to
// run.
func (q *Queue) Done() bool {
	return q.started && q.current == nil && len(q.pending) == 0
}

// Clear drops the current and pending steps without touching targets.
func (q *Queue) Clear() {
	if q.current != nil && q.current.Kind == StepPath {
		q.current.Instance.Cancel()
	}
	q.current = nil
	clear(q.pending)
	q.pending = q.pending[:0]
}
