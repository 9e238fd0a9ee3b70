package core

// Material holds the surface properties embedded in each shape.
// Contributions are additive: SpecularStrength and Transparency are not
// required to sum to one, so over-bright results are possible.
type Material struct {
	Color            Vec3    // Base surface color
	SpecularStrength float64 // Reflection weight in [0,1]
	Shininess        float64 // Phong exponent, > 0
	Transparency     float64 // Refraction weight in [0,1]
	RefractiveIndex  float64 // Index of refraction, > 0
}

// HitRecord contains information about a ray-shape intersection
type HitRecord struct {
	Point    Vec3     // Point of intersection
	Normal   Vec3     // Outward surface normal at the intersection
	T        float64  // Distance along the ray
	Material Material // Material of the shape that was hit
}

// Shape is the capability contract for intersectable scene geometry.
// tMax carries the caller's current nearest distance: an intersection is
// only reported when it is strictly closer, so folding a ray over a list
// of shapes with a running tMax yields the globally nearest hit.
type Shape interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}
