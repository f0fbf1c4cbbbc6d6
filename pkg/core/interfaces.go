package core

import "math/rand"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point  Vec3    // Point of intersection
	Normal Vec3    // Outward surface normal, unit length, not oriented to the ray
	T      float64 // Parameter t along the ray
}

// IsOutside reports whether the ray struck the front face of the surface
func (h HitRecord) IsOutside(ray Ray) bool {
	return h.Normal.Dot(ray.Direction) < 0
}

// SurfaceNormal returns the normal oriented against the incoming ray
func (h HitRecord) SurfaceNormal(ray Ray) Vec3 {
	if h.IsOutside(ray) {
		return h.Normal
	}
	return h.Normal.Negate()
}

// Material is the scattering contract. Bounce returns the attenuation
// color and an optional continuation ray; a nil continuation terminates
// the path with the attenuation as the final contribution. The random
// stream is passed in so materials stay immutable and one stream can be
// owned per render worker.
type Material interface {
	Bounce(ray Ray, hit HitRecord, rng *rand.Rand) (Color, *Ray)
}

// Hittable is anything in a scene a ray can intersect
type Hittable interface {
	Hit(ray Ray) (HitRecord, bool)
	Material() Material
}

// Logger interface for render progress output
type Logger interface {
	Printf(format string, args ...interface{})
}
