package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Room represents an axis-aligned box acting as an enclosing scene
// boundary. It is always opaque and non-reflective: the reflection and
// refraction strengths of its material are forced to zero.
type Room struct {
	Min      core.Vec3
	Max      core.Vec3
	Material core.Material
}

// NewRoom creates a new room spanning the given corners
func NewRoom(min, max core.Vec3, material core.Material) *Room {
	material.SpecularStrength = 0
	material.Transparency = 0
	return &Room{Min: min, Max: max, Material: material}
}

// Hit tests the ray against the box using the slab method. Axis-parallel
// rays produce infinities in the per-axis divisions, which the min/max
// interval arithmetic handles without special cases. The entry distance
// is reported for rays outside the box; rays starting inside report the
// exit wall, so the room shades as an enclosure. The normal is the
// constant (1,0,0) rather than the true face normal.
func (r *Room) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	tNear, tFar := slabInterval(r.Min.X, r.Max.X, ray.Origin.X, ray.Direction.X)

	t1, t2 := slabInterval(r.Min.Y, r.Max.Y, ray.Origin.Y, ray.Direction.Y)
	tNear = max(tNear, t1)
	tFar = min(tFar, t2)

	t1, t2 = slabInterval(r.Min.Z, r.Max.Z, ray.Origin.Z, ray.Direction.Z)
	tNear = max(tNear, t1)
	tFar = min(tFar, t2)

	if tNear > tFar || tFar < 0 {
		return nil, false
	}

	t := tNear
	if t <= 0 {
		t = tFar
	}
	if t <= tMin || t >= tMax {
		return nil, false
	}

	return &core.HitRecord{
		Point:    ray.At(t),
		Normal:   core.NewVec3(1, 0, 0),
		T:        t,
		Material: r.Material,
	}, true
}

// slabInterval returns the ordered entry/exit distances for one axis
func slabInterval(minVal, maxVal, origin, direction float64) (float64, float64) {
	t1 := (minVal - origin) / direction
	t2 := (maxVal - origin) / direction
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return t1, t2
}
