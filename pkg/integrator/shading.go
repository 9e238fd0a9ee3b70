package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// phongExponent is used for all specular highlights. The per-material
// Shininess field is carried on core.Material but deliberately not
// consumed here, matching the reference behavior.
const phongExponent = 32.0

// Phong computes the local illumination of a single light at a surface
// point: a constant ambient term plus Lambert diffuse and Phong specular
// terms scaled by the light intensity. The result is not weighted by the
// surface color; callers multiply by the hit material's color.
func Phong(point, normal, viewDir core.Vec3, light lights.PointLight) core.Vec3 {
	ambient := light.Color.Multiply(0.1)

	lightDir := light.Position.Subtract(point).Normalize()

	diffuse := light.Color.Multiply(max(normal.Dot(lightDir), 0) * light.Intensity)

	specDir := lightDir.Negate().Reflect(normal)
	spec := math.Pow(max(viewDir.Dot(specDir), 0), phongExponent)
	specular := light.Color.Multiply(spec * light.Intensity)

	return ambient.Add(diffuse).Add(specular)
}

// InShadow reports whether any shape occludes the shadow ray before it
// reaches the light. The test folds all shapes with a running nearest
// distance starting at +inf; there is no epsilon bias here, so callers
// must offset the shadow ray origin away from the surface themselves.
func InShadow(shadowRay core.Ray, shapes []core.Shape, lightDistance float64) bool {
	nearest := math.Inf(1)
	for _, shape := range shapes {
		if hit, ok := shape.Hit(shadowRay, 0, nearest); ok {
			nearest = hit.T
		}
	}
	return nearest < lightDistance
}
