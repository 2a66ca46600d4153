package swoop

import "fmt"

// Spline is a 2D clamped B-spline over normalized parameter t in [0, 1].
//
// The knot vector repeats 0 and 1 degree times at either end, so the curve
// starts exactly on the first control point and ends exactly on the last.
// Degree 1 is piecewise-linear through every point; higher degrees are smooth
// curves that generally do not touch interior points.
//
// A Spline is immutable after construction and may be shared by any number
// of instances.
type Spline struct {
	curve bspline
	deriv bspline
}

// bspline is one curve in De Boor form. Both coordinate channels share the
// knot vector and are blended together.
type bspline struct {
	degree int
	knots  []float64
	ctrl   []Vec2
}

// NewSpline builds a clamped B-spline of the given degree through points.
// It returns an error wrapping ErrConfig when degree < 1 or fewer than
// degree+1 points are supplied. The points slice is copied.
func NewSpline(points []Vec2, degree int) (*Spline, error) {
	if degree < 1 {
		return nil, fmt.Errorf("%w: spline degree %d, need at least 1", ErrConfig, degree)
	}
	if len(points) < degree+1 {
		return nil, fmt.Errorf("%w: need at least %d points for degree %d spline, got %d",
			ErrConfig, degree+1, degree, len(points))
	}

	ctrl := make([]Vec2, len(points))
	copy(ctrl, points)
	knots := clampedKnots(len(ctrl), degree)

	s := &Spline{curve: bspline{degree: degree, knots: knots, ctrl: ctrl}}
	s.deriv = derivativeOf(s.curve)
	return s, nil
}

// clampedKnots returns degree zeros, n-degree+1 evenly spaced values from 0
// to 1, then degree ones. The result has n+degree+1 entries.
func clampedKnots(n, degree int) []float64 {
	knots := make([]float64, 0, n+degree+1)
	for i := 0; i < degree; i++ {
		knots = append(knots, 0)
	}
	segments := n - degree
	for i := 0; i <= segments; i++ {
		knots = append(knots, float64(i)/float64(segments))
	}
	for i := 0; i < degree; i++ {
		knots = append(knots, 1)
	}
	return knots
}

// derivativeOf returns the hodograph of c: a B-spline of degree p-1 over the
// knot vector with its first and last entries dropped, with control points
// p*(P[i+1]-P[i])/(u[i+p+1]-u[i+1]).
func derivativeOf(c bspline) bspline {
	p := c.degree
	n := len(c.ctrl)
	ctrl := make([]Vec2, n-1)
	for i := 0; i < n-1; i++ {
		span := c.knots[i+p+1] - c.knots[i+1]
		if span == 0 {
			continue
		}
		ctrl[i] = c.ctrl[i+1].Sub(c.ctrl[i]).Scale(float64(p) / span)
	}
	knots := make([]float64, len(c.knots)-2)
	copy(knots, c.knots[1:len(c.knots)-1])
	return bspline{degree: p - 1, knots: knots, ctrl: ctrl}
}

// span returns the index k with knots[k] <= t < knots[k+1] inside the valid
// domain [knots[p], knots[n]]. At the upper end it returns the last
// non-empty span so t=1 evaluates to the final control point.
func (c *bspline) span(t float64) int {
	p := c.degree
	n := len(c.ctrl)
	if t >= c.knots[n] {
		k := n - 1
		for k > p && c.knots[k] == c.knots[k+1] {
			k--
		}
		return k
	}
	k := p
	for k < n-1 && t >= c.knots[k+1] {
		k++
	}
	return k
}

// eval runs De Boor's algorithm at t.
func (c *bspline) eval(t float64) Vec2 {
	p := c.degree
	k := c.span(t)
	if p == 0 {
		return c.ctrl[k]
	}

	var buf [8]Vec2
	var d []Vec2
	if p+1 <= len(buf) {
		d = buf[:p+1]
	} else {
		d = make([]Vec2, p+1)
	}
	copy(d, c.ctrl[k-p:k+1])

	for r := 1; r <= p; r++ {
		for j := p; j >= r; j-- {
			lo := c.knots[j+k-p]
			hi := c.knots[j+1+k-r]
			var alpha float64
			if hi != lo {
				alpha = (t - lo) / (hi - lo)
			}
			d[j] = d[j-1].Lerp(d[j], alpha)
		}
	}
	return d[p]
}

// Evaluate returns the point on the curve at t, clamped to [0, 1].
func (s *Spline) Evaluate(t float64) Vec2 {
	return s.curve.eval(clamp01(t))
}

// Derivative returns the velocity dP/dt at t, clamped to [0, 1].
func (s *Spline) Derivative(t float64) Vec2 {
	return s.deriv.eval(clamp01(t))
}

// Degree returns the spline degree.
func (s *Spline) Degree() int { return s.curve.degree }

// Points returns a copy of the control points.
func (s *Spline) Points() []Vec2 {
	out := make([]Vec2, len(s.curve.ctrl))
	copy(out, s.curve.ctrl)
	return out
}

// Knots returns a copy of the clamped knot vector.
func (s *Spline) Knots() []float64 {
	out := make([]float64, len(s.curve.knots))
	copy(out, s.curve.knots)
	return out
}

// Start returns the first control point, which is also Evaluate(0).
func (s *Spline) Start() Vec2 { return s.curve.ctrl[0] }

// End returns the last control point, which is also Evaluate(1).
func (s *Spline) End() Vec2 { return s.curve.ctrl[len(s.curve.ctrl)-1] }

// Sample returns n evenly spaced points along the parameter range,
// including both endpoints. n below 2 is treated as 2.
func (s *Spline) Sample(n int) []Vec2 {
	if n < 2 {
		n = 2
	}
	out := make([]Vec2, n)
	for i := range out {
		out[i] = s.Evaluate(float64(i) / float64(n-1))
	}
	return out
}
