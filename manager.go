package swoop

import (
	"fmt"
	"time"
)

// Manager owns a set of concurrently running instances. Call Update once per
// frame; finished and cancelled instances are dropped after each update.
//
// A Manager is not safe for concurrent use. All ticking is expected to
// happen on the game loop.
type Manager struct {
	active  []*Instance
	scratch []*Instance
	closed  bool
	debug   bool
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{}
}

// SetDebug enables per-update stats on stderr.
func (m *Manager) SetDebug(enabled bool) {
	m.debug = enabled
}

// Add builds a spline of degree opts.Degree (default 1) through points and
// starts an instance moving target along it. Two points with degree 1 is a
// straight line.
func (m *Manager) Add(target Target, points []Vec2, duration float64, opts Options) (*Instance, error) {
	if m.closed {
		return nil, ErrClosed
	}
	if target == nil {
		return nil, fmt.Errorf("%w: nil target", ErrConfig)
	}
	degree := opts.Degree
	if degree == 0 {
		degree = 1
	}
	path, err := NewSpline(points, degree)
	if err != nil {
		return nil, err
	}
	inst := NewInstance(target, path, duration, opts)
	m.active = append(m.active, inst)
	if m.debug {
		debugCheckActiveCount(len(m.active))
	}
	return inst, nil
}

// AddInstance registers an instance built elsewhere, typically to share one
// Spline between several targets.
func (m *Manager) AddInstance(inst *Instance) error {
	if m.closed {
		return ErrClosed
	}
	if inst == nil {
		return fmt.Errorf("%w: nil instance", ErrConfig)
	}
	m.active = append(m.active, inst)
	return nil
}

// Update advances every active instance by dt seconds, then removes those
// that finished. All instances are ticked against a snapshot of the set, so
// one finishing never shifts or skips another in the same frame. It returns
// ErrClosed after Close and nil otherwise.
func (m *Manager) Update(dt float64) error {
	if m.closed {
		return ErrClosed
	}
	var start time.Time
	if m.debug {
		start = time.Now()
	}

	// Take the scratch buffer so a callback that ticks the manager again
	// gets its own snapshot.
	snap := append(m.scratch[:0], m.active...)
	m.scratch = nil
	for _, inst := range snap {
		inst.Update(dt)
	}

	kept := m.active[:0]
	for _, inst := range m.active {
		if !inst.Done() {
			kept = append(kept, inst)
		}
	}
	reaped := len(m.active) - len(kept)
	// Clear the tail so reaped instances can be collected.
	for i := len(kept); i < len(m.active); i++ {
		m.active[i] = nil
	}
	m.active = kept
	clear(snap)
	if !m.closed {
		m.scratch = snap[:0]
	}

	if m.debug {
		m.debugLog(updateStats{
			active:  len(m.active),
			reaped:  reaped,
			elapsed: time.Since(start),
		})
	}
	return nil
}

// Cancel stops every active instance driving target and returns how many
// were cancelled. They are removed on the next Update. Targets are compared
// by interface equality, so pointer targets are expected.
func (m *Manager) Cancel(target Target) int {
	n := 0
	for _, inst := range m.active {
		if inst.target == target && !inst.Done() {
			inst.Cancel()
			n++
		}
	}
	return n
}

// CancelAll stops every active instance.
func (m *Manager) CancelAll() {
	for _, inst := range m.active {
		inst.Cancel()
	}
}

// Animating reports whether any unfinished instance drives target.
func (m *Manager) Animating(target Target) bool {
	for _, inst := range m.active {
		if inst.target == target && !inst.Done() {
			return true
		}
	}
	return false
}

// Len returns the number of instances currently held.
func (m *Manager) Len() int { return len(m.active) }

// Instances returns a copy of the active set in insertion order.
func (m *Manager) Instances() []*Instance {
	out := make([]*Instance, len(m.active))
	copy(out, m.active)
	return out
}

// Close cancels everything and releases the active set. Add and Update
// return ErrClosed afterwards. Close is idempotent.
func (m *Manager) Close() {
	if m.closed {
		return
	}
	m.CancelAll()
	m.active = nil
	m.scratch = nil
	m.closed = true
}

// Closed reports whether Close has been called.
func (m *Manager) Closed() bool { return m.closed }
