package geometry

import (
	"math"

	"spheretrace/pkg/core"
)

// Sphere represents an implicit sphere primitive
type Sphere struct {
	Center core.Vec3
	Radius float64
	Mat    core.Material
}

// NewSphere creates a new sphere with the given material
func NewSphere(center core.Vec3, radius float64, mat core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Mat: mat}
}

// Hit tests the ray against the sphere over the ray's [TMin, TMax] interval
func (s *Sphere) Hit(ray core.Ray) (core.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic in the half-b form: a*t² + 2*halfB*t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}

	// Prefer the near root, fall back to the far one
	sqrtD := math.Sqrt(discriminant)
	t := (-halfB - sqrtD) / a
	if t < ray.TMin || t > ray.TMax {
		t = (-halfB + sqrtD) / a
		if t < ray.TMin || t > ray.TMax {
			return core.HitRecord{}, false
		}
	}

	point := ray.At(t)
	return core.HitRecord{
		Point:  point,
		Normal: point.Subtract(s.Center).Divide(s.Radius),
		T:      t,
	}, true
}

// Material returns the sphere's material
func (s *Sphere) Material() core.Material {
	return s.Mat
}
