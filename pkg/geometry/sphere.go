package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape with an embedded material
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects the sphere strictly between tMin and tMax.
// Only the near quadratic root is considered: tangent rays (zero
// discriminant) and rays originating inside the sphere report a miss.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return nil, false
	}

	root := (-halfB - math.Sqrt(discriminant)) / a
	if root <= tMin || root >= tMax {
		return nil, false
	}

	point := ray.At(root)
	return &core.HitRecord{
		Point:    point,
		Normal:   point.Subtract(s.Center).Normalize(),
		T:        root,
		Material: s.Material,
	}, true
}
