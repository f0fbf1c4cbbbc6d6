package geometry

import (
	"math"
	"math/rand"
	"testing"

	"spheretrace/pkg/core"
)

type stubMaterial struct{}

func (stubMaterial) Bounce(core.Ray, core.HitRecord, *rand.Rand) (core.Color, *core.Ray) {
	return core.Black(), nil
}

func TestSphere_Hit_ThroughCenter(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, -3), core.NewVec3(0, 0, 1))

	hit, ok := sphere.Hit(ray)
	if !ok {
		t.Fatal("expected hit, got miss")
	}
	// Near root: sphere spans t in [2, 4], the smaller one wins
	if math.Abs(hit.T-2.0) > 1e-12 {
		t.Errorf("expected t=2, got t=%f", hit.T)
	}
	if hit.Point != core.NewVec3(0, 0, -1) {
		t.Errorf("unexpected hit point %v", hit.Point)
	}
	if hit.Normal != core.NewVec3(0, 0, -1) {
		t.Errorf("unexpected normal %v", hit.Normal)
	}
}

func TestSphere_Hit_FarRootFromInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	hit, ok := sphere.Hit(ray)
	if !ok {
		t.Fatal("expected hit from inside, got miss")
	}
	// Near root is behind the origin, so the far root is taken
	if math.Abs(hit.T-1.0) > 1e-12 {
		t.Errorf("expected t=1, got t=%f", hit.T)
	}
	if hit.Normal != core.NewVec3(0, 0, 1) {
		t.Errorf("unexpected normal %v", hit.Normal)
	}
}

func TestSphere_Hit_Tangent(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(1, 0, -3), core.NewVec3(0, 0, 1))

	hit, ok := sphere.Hit(ray)
	if !ok {
		t.Fatal("expected tangent hit, got miss")
	}
	if math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("expected t=3, got t=%f", hit.T)
	}
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name   string
		origin core.Vec3
		dir    core.Vec3
	}{
		{"aimed away", core.NewVec3(0, 0, -3), core.NewVec3(0, 0, -1)},
		{"offset parallel", core.NewVec3(2, 0, -3), core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hit, ok := sphere.Hit(core.NewRay(tt.origin, tt.dir)); ok {
				t.Errorf("expected miss, got hit at t=%f", hit.T)
			}
		})
	}
}

func TestSphere_Hit_RespectsInterval(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, -3), core.NewVec3(0, 0, 1))
	ray.TMax = 1.5 // both roots beyond

	if hit, ok := sphere.Hit(ray); ok {
		t.Errorf("expected miss outside [TMin, TMax], got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_NormalIsUnitPointOverRadius(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2.0, nil)
	ray := core.NewRay(core.NewVec3(0, 4, 0), core.NewVec3(0, -1, 0))

	hit, ok := sphere.Hit(ray)
	if !ok {
		t.Fatal("expected hit, got miss")
	}
	if math.Abs(hit.Normal.Length()-1.0) > 1e-12 {
		t.Errorf("expected unit normal, length=%f", hit.Normal.Length())
	}
	if expected := hit.Point.Divide(2.0); hit.Normal != expected {
		t.Errorf("expected normal %v (point/R), got %v", expected, hit.Normal)
	}
}

func TestSphere_Material(t *testing.T) {
	mat := &stubMaterial{}
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, mat)

	if sphere.Material() != core.Material(mat) {
		t.Error("expected the sphere to return its own material")
	}
}
