package material

import (
	"math"
	"math/rand"
	"testing"

	"spheretrace/pkg/core"
)

func TestDielectric_AlwaysWhiteAndContinues(t *testing.T) {
	mat := NewDielectric(1.5)
	rng := rand.New(rand.NewSource(42))

	ray := core.NewRay(core.NewVec3(0, 0, -2), core.NewVec3(0.3, 0.1, 1))
	hit := core.HitRecord{Point: core.NewVec3(0, 0, -1), Normal: core.NewVec3(0, 0, -1), T: 1}

	for i := 0; i < 20; i++ {
		color, continuation := mat.Bounce(ray, hit, rng)
		if color != core.White() {
			t.Fatalf("sample %d: expected white attenuation, got %v", i, color)
		}
		if continuation == nil {
			t.Fatalf("sample %d: dielectric must never terminate the path", i)
		}
	}
}

func TestDielectric_NormalIncidenceRefracts(t *testing.T) {
	mat := NewDielectric(1.5)
	// Seed 1's first draw is ~0.605, comfortably above the ~0.04 Schlick
	// reflectance at normal incidence, so the ray refracts
	rng := rand.New(rand.NewSource(1))

	incoming := core.NewVec3(0, 0, -1)
	ray := core.NewRay(core.NewVec3(0, 0, 2), incoming)
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 1), Normal: core.NewVec3(0, 0, 1), T: 1}

	_, continuation := mat.Bounce(ray, hit, rng)
	if continuation == nil {
		t.Fatal("expected continuation ray")
	}
	// At normal incidence the transmitted ray continues straight through
	if diff := continuation.Direction.Subtract(incoming); !diff.IsTiny(1e-9) {
		t.Errorf("expected direction %v, got %v", incoming, continuation.Direction)
	}
}

// Past the critical angle the reflection is deterministic: total internal
// reflection is checked before the stochastic Schlick draw.
func TestDielectric_TotalInternalReflection(t *testing.T) {
	mat := NewDielectric(1.5)

	// Exiting the medium at ~64 degrees from the normal, well past the
	// ~41.8 degree critical angle for ior 1.5
	incoming := core.NewVec3(0.9, 0, math.Sqrt(1-0.81))
	normal := core.NewVec3(0, 0, 1)
	ray := core.NewRay(core.NewVec3(0, 0, 0), incoming)
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 1), Normal: normal, T: 1}

	expected := incoming.Reflect(normal.Negate())

	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		_, continuation := mat.Bounce(ray, hit, rng)
		if continuation == nil {
			t.Fatal("expected continuation ray")
		}
		if diff := continuation.Direction.Subtract(expected); !diff.IsTiny(1e-9) {
			t.Fatalf("seed %d: expected deterministic reflection %v, got %v", seed, expected, continuation.Direction)
		}
	}
}

func TestDielectric_RefractionBendsTowardNormal(t *testing.T) {
	mat := NewDielectric(1.5)
	rng := rand.New(rand.NewSource(1))

	// 45 degree incidence entering glass
	incoming := core.NewVec3(1, 0, -1).Normalize()
	normal := core.NewVec3(0, 0, 1)
	ray := core.NewRay(core.NewVec3(-1, 0, 1), incoming)
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal, T: 1}

	_, continuation := mat.Bounce(ray, hit, rng)
	if continuation == nil {
		t.Fatal("expected continuation ray")
	}

	d := continuation.Direction
	// Snell: sin(refracted) = sin(45°)/1.5
	expectedSin := math.Sin(math.Pi/4) / 1.5
	if math.Abs(d.X-expectedSin) > 1e-9 {
		t.Errorf("expected lateral component %f, got %f", expectedSin, d.X)
	}
	if d.Z >= 0 {
		t.Errorf("refracted ray should keep travelling into the surface, got %v", d)
	}
	if math.Abs(d.Length()-1.0) > 1e-9 {
		t.Errorf("refracted direction not unit length: %f", d.Length())
	}
}
