package swoop

import "math"

// Target is anything the engine can move. Implementations expose their
// current position and accept a new one each tick. The engine never reads
// or writes anything else unless the target also implements Rotatable.
type Target interface {
	Position() Vec2
	SetPosition(p Vec2)
}

// Rotatable is implemented by targets that can display a lean. SetRotation
// receives an absolute offset in radians (clockwise) from the target's base
// orientation. Zero restores the base orientation.
type Rotatable interface {
	SetRotation(radians float64)
}

// Disposable is implemented by targets with a lifetime. An instance whose
// target reports IsDisposed stops immediately without writing to it.
type Disposable interface {
	IsDisposed() bool
}

// Body is a minimal Target with rotation and a disposed flag. It is handy for
// headless simulation and as an embeddable position holder in game objects.
type Body struct {
	// Name is an optional label used in debug output.
	Name string

	// X and Y are the body's position.
	X, Y float64
	// Rotation is the lean offset from the base orientation in radians.
	Rotation float64

	disposed bool
}

// NewBody creates a Body at the given position.
func NewBody(name string, x, y float64) *Body {
	return &Body{Name: name, X: x, Y: y}
}

// Position implements Target.
func (b *Body) Position() Vec2 { return Vec2{b.X, b.Y} }

// SetPosition implements Target.
func (b *Body) SetPosition(p Vec2) {
	b.X = p.X
	b.Y = p.Y
}

// SetRotation implements Rotatable.
func (b *Body) SetRotation(radians float64) { b.Rotation = radians }

// RotationDegrees returns Rotation converted to degrees.
func (b *Body) RotationDegrees() float64 { return b.Rotation * 180 / math.Pi }

// Dispose marks the body as gone. Any instance or queue step driving it
// stops on its next update.
func (b *Body) Dispose() { b.disposed = true }

// IsDisposed implements Disposable.
func (b *Body) IsDisposed() bool { return b.disposed }

// isDisposed reports whether t implements Disposable and has been disposed.
func isDisposed(t Target) bool {
	d, ok := t.(Disposable)
	return ok && d.IsDisposed()
}
