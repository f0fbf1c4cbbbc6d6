package material

import (
	"math/rand"

	"spheretrace/pkg/core"
)

// Diffuse represents a matte material that scatters rays around the
// surface normal
type Diffuse struct {
	Albedo core.Color
}

// NewDiffuse creates a new diffuse material
func NewDiffuse(albedo core.Color) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

// Bounce implements the Material interface for diffuse scattering
func (d *Diffuse) Bounce(ray core.Ray, hit core.HitRecord, rng *rand.Rand) (core.Color, *core.Ray) {
	// Back-face hits absorb the path
	if !hit.IsOutside(ray) {
		return core.Black(), nil
	}

	scatterDir := hit.Normal.Add(core.RandomOnUnitSphere(rng))
	if scatterDir.IsTiny(1e-4) {
		// Random sample nearly cancelled the normal
		scatterDir = hit.Normal
	} else {
		scatterDir = scatterDir.Normalize()
	}

	scattered := core.NewRay(hit.Point, scatterDir)
	return d.Albedo, &scattered
}
