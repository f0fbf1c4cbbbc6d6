package scene

import "spheretrace/pkg/core"

// Scene is an append-only collection of hittable objects. It is built
// once before rendering and read-only afterwards, so it is safe to share
// across render workers.
type Scene struct {
	objects []core.Hittable
}

// New creates an empty scene
func New() *Scene {
	return &Scene{}
}

// Add appends an object to the scene
func (s *Scene) Add(obj core.Hittable) {
	s.objects = append(s.objects, obj)
}

// ObjectCount returns the number of objects in the scene
func (s *Scene) ObjectCount() int {
	return len(s.objects)
}

// Hit resolves the nearest intersection along the ray. The working ray's
// TMax shrinks to each accepted hit, so a single O(n) scan yields the
// globally closest object.
func (s *Scene) Hit(ray core.Ray) (core.HitRecord, core.Hittable, bool) {
	probe := ray
	var closest core.HitRecord
	var winner core.Hittable

	for _, obj := range s.objects {
		if rec, ok := obj.Hit(probe); ok {
			closest = rec
			winner = obj
			probe.TMax = rec.T
		}
	}

	if winner == nil {
		return core.HitRecord{}, nil, false
	}
	return closest, winner, true
}
