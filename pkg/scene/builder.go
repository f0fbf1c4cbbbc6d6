package scene

import (
	"fmt"

	"spheretrace/pkg/config"
	"spheretrace/pkg/core"
	"spheretrace/pkg/geometry"
	"spheretrace/pkg/material"
)

// Build constructs a scene from configuration. Materials are
// instantiated once per name and shared across every sphere that
// references them.
func Build(cfg *config.Config) (*Scene, error) {
	materials := make(map[string]core.Material, len(cfg.Materials))
	for name, mc := range cfg.Materials {
		mat, err := buildMaterial(mc)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = mat
	}

	s := New()
	for i, sc := range cfg.Spheres {
		mat, ok := materials[sc.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d: unknown material %q", i, sc.Material)
		}
		s.Add(geometry.NewSphere(vec3(sc.Center), sc.Radius, mat))
	}

	s.Add(material.NewBackground(color(cfg.Background.Color)))
	return s, nil
}

func buildMaterial(mc config.MaterialConfig) (core.Material, error) {
	switch mc.Type {
	case "diffuse":
		return material.NewDiffuse(color(mc.Color)), nil
	case "reflective":
		return material.NewReflective(color(mc.Color), mc.Fuzziness), nil
	case "dielectric":
		return material.NewDielectric(mc.IOR), nil
	case "debug":
		return material.NewDebug(), nil
	default:
		return nil, fmt.Errorf("unknown type %q", mc.Type)
	}
}

func vec3(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func color(c [3]float64) core.Color {
	return core.NewColor(c[0], c[1], c[2])
}
