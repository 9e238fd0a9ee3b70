package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// epsilon offsets secondary ray origins away from the surface that
// spawned them to avoid immediate self-reintersection
const epsilon = 1e-3

// DefaultMaxDepth is the baseline recursion budget for primary rays
const DefaultMaxDepth = 5

// Whitted is a recursive Whitted-style tracer over a read-only list of
// shapes and point lights. It is not safe for concurrent use because of
// its embedded RNG; renderers give each worker its own instance.
type Whitted struct {
	shapes []core.Shape
	lights []lights.PointLight
	random *rand.Rand
	rays   int64
}

// NewWhitted creates a tracer over the given scene content
func NewWhitted(shapes []core.Shape, pointLights []lights.PointLight, random *rand.Rand) *Whitted {
	return &Whitted{shapes: shapes, lights: pointLights, random: random}
}

// RaysTraced returns the number of rays traced so far, including
// reflection, refraction, and shadow rays
func (w *Whitted) RaysTraced() int64 {
	return w.rays
}

// hitNearest folds all shapes to find the globally nearest valid
// intersection, starting from a fresh +inf bound
func (w *Whitted) hitNearest(ray core.Ray) *core.HitRecord {
	var nearest *core.HitRecord
	nearestT := math.Inf(1)
	for _, shape := range w.shapes {
		if hit, ok := shape.Hit(ray, 0, nearestT); ok {
			nearestT = hit.T
			nearest = hit
		}
	}
	return nearest
}

// Trace returns the linear, unclamped radiance carried by the ray.
// Reflection, refraction, and direct lighting contributions are purely
// additive. depth is the remaining recursion budget shared by the
// reflection and refraction branches; at zero the ray contributes black.
func (w *Whitted) Trace(ray core.Ray, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}
	w.rays++

	hit := w.hitNearest(ray)
	if hit == nil {
		// Placeholder environment: a fresh random color per miss.
		// Produces visible noise in background regions.
		return core.RandomColor(w.random)
	}

	var color core.Vec3
	mat := hit.Material

	if mat.SpecularStrength > 0 {
		reflectDir := ray.Direction.Reflect(hit.Normal)
		reflectRay := core.NewRay(hit.Point.Add(reflectDir.Multiply(epsilon)), reflectDir)
		color = color.Add(w.Trace(reflectRay, depth-1).Multiply(mat.SpecularStrength))
	}

	if mat.Transparency > 0 {
		// Total internal reflection degenerates to a zero direction,
		// which intersects nothing.
		refractDir := ray.Direction.Refract(hit.Normal, mat.RefractiveIndex)
		refractRay := core.NewRay(hit.Point.Add(refractDir.Multiply(epsilon)), refractDir)
		color = color.Add(w.Trace(refractRay, depth-1).Multiply(mat.Transparency))
	}

	viewDir := ray.Direction.Negate()
	for _, light := range w.lights {
		toLight := light.Position.Subtract(hit.Point)
		lightDistance := toLight.Length()
		shadowRay := core.NewRay(hit.Point.Add(hit.Normal.Multiply(epsilon)), toLight)
		w.rays++
		if InShadow(shadowRay, w.shapes, lightDistance) {
			continue
		}
		contribution := Phong(hit.Point, hit.Normal, viewDir, light)
		color = color.Add(contribution.MultiplyVec(mat.Color))
	}

	return color
}
