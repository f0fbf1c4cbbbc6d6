package core

import "math/rand"

// RandomRange returns a uniform draw from [min, max)
func RandomRange(rng *rand.Rand, min, max float64) float64 {
	return min + (max-min)*rng.Float64()
}

// RandomVec3 returns a vector with each component drawn uniformly from [min, max)
func RandomVec3(rng *rand.Rand, min, max float64) Vec3 {
	return Vec3{
		X: RandomRange(rng, min, max),
		Y: RandomRange(rng, min, max),
		Z: RandomRange(rng, min, max),
	}
}

// RandomOnUnitSphere returns a uniformly distributed unit vector.
// Rejection-samples the [-1,1] cube until a point lands inside the unit
// ball, then normalizes it onto the sphere.
func RandomOnUnitSphere(rng *rand.Rand) Vec3 {
	for {
		p := RandomVec3(rng, -1.0, 1.0)
		if p.LengthSquared() <= 1.0 {
			return p.Normalize()
		}
	}
}

// RandomOnUnitDisc returns a pair of coordinates rejection-sampled from
// the positive quadrant of the unit disc, used for aperture offsets
func RandomOnUnitDisc(rng *rand.Rand) (float64, float64) {
	for {
		x := rng.Float64()
		y := rng.Float64()
		if x*x+y*y <= 1.0 {
			return x, y
		}
	}
}
