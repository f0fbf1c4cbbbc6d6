package material

import (
	"math"
	"math/rand"

	"spheretrace/pkg/core"
)

// Background is the sky environment. It plays both roles: an
// infinite-distance Hittable that only matches rays whose interval is
// still open to +Inf, and the terminal Material returning the sky
// gradient with no continuation ray. It is the base case for paths that
// escape the scene.
type Background struct {
	Color core.Color
}

// NewBackground creates a sky background with the given color
func NewBackground(color core.Color) *Background {
	return &Background{Color: color}
}

// Hit matches only rays nothing else has hit, with a degenerate record
// at the far plane
func (b *Background) Hit(ray core.Ray) (core.HitRecord, bool) {
	if !math.IsInf(ray.TMax, 1) {
		return core.HitRecord{}, false
	}
	return core.HitRecord{T: ray.TMax}, true
}

// Material returns the background itself
func (b *Background) Material() core.Material {
	return b
}

// Bounce returns the sky gradient based on the ray's vertical direction,
// terminating the path
func (b *Background) Bounce(ray core.Ray, _ core.HitRecord, _ *rand.Rand) (core.Color, *core.Ray) {
	t := (ray.Direction.Normalize().Y + 1.0) / 2.0
	return b.Color.Scale(t), nil
}
