package material

import (
	"math/rand"

	"spheretrace/pkg/core"
)

// Debug visualizes surface normals: each hit terminates with the normal
// remapped from [-1,1] to [0,1] RGB. Useful when checking intersection
// code without any light transport.
type Debug struct{}

// NewDebug creates a new normal-visualization material
func NewDebug() *Debug {
	return &Debug{}
}

// Bounce implements the Material interface for normal visualization
func (*Debug) Bounce(_ core.Ray, hit core.HitRecord, _ *rand.Rand) (core.Color, *core.Ray) {
	return core.NewColor(
		(hit.Normal.X+1.0)/2.0,
		(hit.Normal.Y+1.0)/2.0,
		(hit.Normal.Z+1.0)/2.0,
	), nil
}
