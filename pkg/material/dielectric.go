package material

import (
	"math"
	"math/rand"

	"spheretrace/pkg/core"
)

// Dielectric represents a transparent refractive material like glass.
// It never absorbs: every bounce transmits or reflects with white
// attenuation.
type Dielectric struct {
	IOR float64 // Index of refraction (1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(ior float64) *Dielectric {
	return &Dielectric{IOR: ior}
}

// Bounce implements the Material interface for dielectric scattering
func (d *Dielectric) Bounce(ray core.Ray, hit core.HitRecord, rng *rand.Rand) (core.Color, *core.Ray) {
	refracted := refract(ray.Direction, hit.Normal, d.IOR, rng)
	scattered := core.NewRay(hit.Point, refracted)
	return core.White(), &scattered
}

// refract bends the incident direction through a surface with the given
// outward normal per Snell's law. Total internal reflection is checked
// before the stochastic Schlick draw, so grazing rays past the critical
// angle always reflect.
func refract(incident, normal core.Vec3, ior float64, rng *rand.Rand) core.Vec3 {
	unitDir := incident.Normalize()
	idotn := unitDir.Dot(normal)

	var iorRatio, cosTheta float64
	var n core.Vec3
	if idotn < 0 {
		// Entering the medium
		iorRatio = 1.0 / ior
		n = normal
		cosTheta = -idotn
	} else {
		// Exiting: flip the normal to face the incoming ray
		iorRatio = ior
		n = normal.Negate()
		cosTheta = idotn
	}

	sinThetaSquared := 1.0 - cosTheta*cosTheta
	sinTheta := math.Sqrt(math.Abs(sinThetaSquared))

	if iorRatio*sinTheta > 1.0 {
		return unitDir.Reflect(n)
	}
	if rng.Float64() < reflectance(cosTheta, ior) {
		return unitDir.Reflect(n)
	}

	// Two-term decomposition of the refracted direction
	perp := unitDir.Add(n.Multiply(cosTheta)).Multiply(iorRatio)
	parallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - iorRatio*iorRatio*sinThetaSquared)))
	return perp.Add(parallel)
}

// reflectance is Schlick's polynomial approximation of the Fresnel factor
func reflectance(cosTheta, ior float64) float64 {
	r0 := (1.0 - ior) / (1.0 + ior)
	r0 = r0 * r0
	return r0 + (1.0-r0)*math.Pow(1.0-cosTheta, 5)
}
