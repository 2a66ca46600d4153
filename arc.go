package swoop

import (
	"fmt"
	"math"
)

// HorizontalArc returns n points on the circle of the given radius passing
// through p0 and p1, together with each point's facing angle in degrees.
// The angle is zero for a point directly above the centre, so upright
// objects placed on the points fan out along the arc. With above set the
// centre lies below the chord in screen space (larger Y), so the arc bulges
// upward; otherwise it bulges downward.
//
// It returns an error wrapping ErrConfig when the radius is shorter than
// half the chord or n < 2.
func HorizontalArc(p0, p1 Vec2, radius float64, n int, above bool) ([]Vec2, []float64, error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("%w: arc needs at least 2 points, got %d", ErrConfig, n)
	}
	d := p1.Sub(p0).Len()
	if d/2 > radius {
		return nil, nil, fmt.Errorf("%w: radius %.3f too small for chord %.3f", ErrConfig, radius, d)
	}

	mid := p0.Add(p1).Scale(0.5)
	h := math.Sqrt(radius*radius - (d/2)*(d/2))
	center := Vec2{mid.X, mid.Y + h}
	if !above {
		center.Y = mid.Y - h
	}

	a0 := math.Atan2(p0.Y-center.Y, p0.X-center.X)
	a1 := math.Atan2(p1.Y-center.Y, p1.X-center.X)

	points := make([]Vec2, n)
	angles := make([]float64, n)
	for i := 0; i < n; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(n-1)
		p := Vec2{center.X + radius*math.Cos(a), center.Y + radius*math.Sin(a)}
		points[i] = p
		angles[i] = center.Sub(p).Angle() - 90
	}
	// The interpolated endpoints can drift by an ulp; use the exact inputs.
	points[0] = p0
	points[n-1] = p1
	return points, angles, nil
}
