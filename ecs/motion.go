package ecs

import (
	"fmt"

	"github.com/phanxgames/swoop"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// TransformData is the position and lean rotation of an entity.
// Rotation is in radians relative to the entity's base orientation.
type TransformData struct {
	X, Y     float64
	Rotation float64
}

// Transform is the component animated by swoop.
var Transform = donburi.NewComponentType[TransformData]()

// MotionData holds the animation currently driving an entity.
type MotionData struct {
	Instance *swoop.Instance
}

// Motion is attached by Animate and removed by System once the instance is
// done.
var Motion = donburi.NewComponentType[MotionData]()

// Completed is published when a motion finishes or is cancelled.
type Completed struct {
	Entity    donburi.Entity
	Cancelled bool
}

// CompletedEventType is the Donburi event type for finished motions.
// Subscribe to it and call ProcessEvents after System.Update.
var CompletedEventType = events.NewEventType[Completed]()

// entityTarget exposes an entity's Transform as a swoop.Target.
type entityTarget struct {
	world  donburi.World
	entity donburi.Entity
}

// Target returns a swoop.Target backed by the entity's Transform. The
// target reports itself disposed once the entity is removed or loses its
// Transform.
func Target(w donburi.World, e donburi.Entity) swoop.Target {
	return entityTarget{world: w, entity: e}
}

func (t entityTarget) transform() *TransformData {
	return Transform.Get(t.world.Entry(t.entity))
}

func (t entityTarget) Position() swoop.Vec2 {
	tr := t.transform()
	return swoop.Vec2{X: tr.X, Y: tr.Y}
}

func (t entityTarget) SetPosition(p swoop.Vec2) {
	tr := t.transform()
	tr.X = p.X
	tr.Y = p.Y
}

func (t entityTarget) SetRotation(radians float64) {
	t.transform().Rotation = radians
}

func (t entityTarget) IsDisposed() bool {
	if !t.world.Valid(t.entity) {
		return true
	}
	return !t.world.Entry(t.entity).HasComponent(Transform)
}

// Animate starts moving entity e along a spline through points. Any motion
// already on the entity is cancelled and replaced. The entity must have a
// Transform.
func Animate(w donburi.World, e donburi.Entity, points []swoop.Vec2, duration float64, opts swoop.Options) (*swoop.Instance, error) {
	if !w.Valid(e) {
		return nil, fmt.Errorf("%w: invalid entity", swoop.ErrConfig)
	}
	entry := w.Entry(e)
	if !entry.HasComponent(Transform) {
		return nil, fmt.Errorf("%w: entity has no Transform", swoop.ErrConfig)
	}
	degree := opts.Degree
	if degree == 0 {
		degree = 1
	}
	path, err := swoop.NewSpline(points, degree)
	if err != nil {
		return nil, err
	}
	inst := swoop.NewInstance(Target(w, e), path, duration, opts)

	if entry.HasComponent(Motion) {
		if old := Motion.Get(entry).Instance; old != nil {
			old.Cancel()
		}
	} else {
		entry.AddComponent(Motion)
	}
	Motion.SetValue(entry, MotionData{Instance: inst})
	return inst, nil
}

// Stop cancels the motion on e, if any. The Motion is removed on the next
// System.Update.
func Stop(w donburi.World, e donburi.Entity) {
	if !w.Valid(e) {
		return
	}
	entry := w.Entry(e)
	if !entry.HasComponent(Motion) {
		return
	}
	if inst := Motion.Get(entry).Instance; inst != nil {
		inst.Cancel()
	}
}

// System ticks every entity that has both a Motion and a Transform.
type System struct {
	query    *donburi.Query
	finished []donburi.Entity
}

// NewSystem creates a motion system.
func NewSystem() *System {
	return &System{query: donburi.NewQuery(filter.Contains(Motion, Transform))}
}

// Update advances all motions by dt seconds. Finished motions are removed
// after iteration so the query is never mutated while it is being walked.
func (s *System) Update(w donburi.World, dt float64) {
	s.finished = s.finished[:0]
	s.query.Each(w, func(entry *donburi.Entry) {
		inst := Motion.Get(entry).Instance
		if inst == nil {
			s.finished = append(s.finished, entry.Entity())
			return
		}
		inst.Update(dt)
		if inst.Done() {
			s.finished = append(s.finished, entry.Entity())
		}
	})

	for _, e := range s.finished {
		if !w.Valid(e) {
			continue
		}
		entry := w.Entry(e)
		if !entry.HasComponent(Motion) {
			continue
		}
		cancelled := true
		if inst := Motion.Get(entry).Instance; inst != nil {
			if !inst.Done() {
				// Replaced by Animate from a completion callback.
				continue
			}
			cancelled = inst.Cancelled()
		}
		entry.RemoveComponent(Motion)
		CompletedEventType.Publish(w, Completed{Entity: e, Cancelled: cancelled})
	}
}

// Count returns the number of entities currently in motion.
func (s *System) Count(w donburi.World) int {
	return s.query.Count(w)
}
