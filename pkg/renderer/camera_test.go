package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCamera_GetRay_Center(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, 0), 16.0/9.0)

	ray := camera.GetRay(0.5, 0.5)

	if ray.Origin != (core.Vec3{}) {
		t.Errorf("Expected ray origin at camera position, got %v", ray.Origin)
	}

	// The center of the viewport is straight down the -z axis
	expected := core.NewVec3(0, 0, -1)
	if ray.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected direction %v, got %v", expected, ray.Direction)
	}
}

func TestCamera_GetRay_DirectionsAreUnit(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, 0), 4.0/3.0)

	coords := []struct{ s, t float64 }{
		{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0.25, 0.75},
	}
	for _, c := range coords {
		ray := camera.GetRay(c.s, c.t)
		if math.Abs(ray.Direction.Length()-1.0) > 1e-9 {
			t.Errorf("Expected unit direction at (%f,%f), got length %f",
				c.s, c.t, ray.Direction.Length())
		}
	}
}

func TestCamera_GetRay_CornersSpanViewport(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, 0), 2.0)

	left := camera.GetRay(0, 0.5)
	right := camera.GetRay(1, 0.5)

	if left.Direction.X >= 0 {
		t.Errorf("Expected left edge ray to point left, got %v", left.Direction)
	}
	if right.Direction.X <= 0 {
		t.Errorf("Expected right edge ray to point right, got %v", right.Direction)
	}
	if math.Abs(left.Direction.X+right.Direction.X) > 1e-9 {
		t.Errorf("Expected symmetric edge rays, got %v and %v", left.Direction, right.Direction)
	}
}
