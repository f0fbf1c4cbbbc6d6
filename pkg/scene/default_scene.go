package scene

import (
	"math/rand"

	"spheretrace/pkg/core"
	"spheretrace/pkg/geometry"
	"spheretrace/pkg/material"
)

// NewDefaultScene builds the built-in demo scene: a glass, a mirror and
// a matte hero sphere resting on a large ground sphere, with small matte
// spheres scattered around. The ground and one hero sphere share a
// single material instance. The seed drives sphere placement only; it
// keeps the scene layout reproducible.
func NewDefaultScene(seed int64, background core.Color) *Scene {
	s := New()

	ground := material.NewDiffuse(core.NewColor(0.3, 0.3, 0.3))
	mirror := material.NewReflective(core.NewColor(1.0, 1.0, 0.9), 0.0)
	glass := material.NewDielectric(1.5)

	s.Add(geometry.NewSphere(core.NewVec3(-2, 0.5, 2), 0.5, glass))
	s.Add(geometry.NewSphere(core.NewVec3(0, 1, 2), 1.0, mirror))
	s.Add(geometry.NewSphere(core.NewVec3(1.5, 0.5, 1.5), 0.5, ground))
	s.Add(geometry.NewSphere(core.NewVec3(0, -100, 0), 100.0, ground))

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < 20; i++ {
		c := core.RandomVec3(rng, 0.0, 1.0)
		mat := material.NewDiffuse(core.NewColor(c.X, c.Y, c.Z))

		pos := core.RandomVec3(rng, -5.0, 5.0)
		pos.Y = 0.05
		s.Add(geometry.NewSphere(pos, 0.1, mat))
	}

	s.Add(material.NewBackground(background))
	return s
}
