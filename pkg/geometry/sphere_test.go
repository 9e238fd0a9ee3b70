package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func testMaterial() core.Material {
	return core.Material{
		Color:           core.NewVec3(1, 1, 1),
		Shininess:       32,
		RefractiveIndex: 1.0,
	}
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0, math.Inf(1))
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_HeadOnDistance(t *testing.T) {
	tests := []struct {
		name      string
		center    core.Vec3
		radius    float64
		origin    core.Vec3
		expectedT float64
	}{
		{
			name:      "unit sphere from distance 5",
			center:    core.NewVec3(0, 0, -5),
			radius:    1.0,
			origin:    core.NewVec3(0, 0, 0),
			expectedT: 4.0,
		},
		{
			name:      "small sphere from distance 10",
			center:    core.NewVec3(0, 0, -10),
			radius:    0.5,
			origin:    core.NewVec3(0, 0, 0),
			expectedT: 9.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(tt.center, tt.radius, testMaterial())
			direction := tt.center.Subtract(tt.origin).Normalize()
			ray := core.NewRay(tt.origin, direction)

			hit, isHit := sphere.Hit(ray, 0, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			// A ray aimed at the center hits at distance d - r
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestSphere_Hit_NormalIsUnitAndOutward(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0.3, 0.2, 0), core.NewVec3(-0.05, -0.02, -1))

	hit, isHit := sphere.Hit(ray, 0, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	if math.Abs(hit.Normal.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit normal, got length %f", hit.Normal.Length())
	}

	fromCenter := hit.Point.Subtract(sphere.Center)
	if hit.Normal.Dot(fromCenter) <= 0 {
		t.Errorf("Expected normal pointing away from center, got %v", hit.Normal)
	}
}

func TestSphere_Hit_TangentIsMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, testMaterial())
	// Ray grazing the sphere at exactly radius distance
	ray := core.NewRay(core.NewVec3(1, 0, 0), core.NewVec3(0, 0, -1))

	if hit, isHit := sphere.Hit(ray, 0, math.Inf(1)); isHit {
		t.Errorf("Expected tangent ray to miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_OriginInsideIsMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Only the near root is tested, and from inside it is negative
	if hit, isHit := sphere.Hit(ray, 0, math.Inf(1)); isHit {
		t.Errorf("Expected miss from inside sphere, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_BehindOriginIsMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if hit, isHit := sphere.Hit(ray, 0, math.Inf(1)); isHit {
		t.Errorf("Expected miss for sphere behind origin, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_RespectsRunningNearest(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Hit is at t=4; a running nearest of 4 must reject it (strictly closer only)
	if hit, isHit := sphere.Hit(ray, 0, 4.0); isHit {
		t.Errorf("Expected rejection at equal distance, but got hit at t=%f", hit.T)
	}

	if _, isHit := sphere.Hit(ray, 0, 4.0000001); !isHit {
		t.Error("Expected hit when strictly closer than running nearest")
	}
}

func TestSphere_Hit_CarriesMaterial(t *testing.T) {
	mat := core.Material{
		Color:            core.NewVec3(0.9, 0.2, 0.2),
		SpecularStrength: 0.5,
		Shininess:        32,
		Transparency:     0.25,
		RefractiveIndex:  1.5,
	}
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, mat)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.Material != mat {
		t.Errorf("Expected material %v, got %v", mat, hit.Material)
	}
}
