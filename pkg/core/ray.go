package core

import "math"

// TMinEpsilon is the default near bound for rays. Scattered rays start a
// small distance off the surface so they cannot re-hit it immediately.
const TMinEpsilon = 0.001

// Ray represents a ray with an origin, a direction, and the parameter
// interval [TMin, TMax] over which intersections are accepted. The
// direction is not required to be unit length.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	TMin      float64
	TMax      float64
}

// NewRay creates a ray with the default interval [TMinEpsilon, +Inf)
func NewRay(origin, direction Vec3) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction,
		TMin:      TMinEpsilon,
		TMax:      math.Inf(1),
	}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
