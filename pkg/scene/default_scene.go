package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewDefaultScene creates the default scene: a room enclosure with a
// mirror sphere, a glass sphere, and a matte sphere lit by two lights
func NewDefaultScene(aspectRatio float64) *Scene {
	camera := renderer.NewCamera(core.NewVec3(0, 0, 0), aspectRatio)
	s := NewScene(camera)

	matteGray := core.Material{
		Color:           core.NewVec3(0.6, 0.6, 0.6),
		Shininess:       32,
		RefractiveIndex: 1.0,
	}
	s.AddShape(geometry.NewRoom(core.NewVec3(-10, -10, -10), core.NewVec3(10, 10, 10), matteGray))

	mirror := core.Material{
		Color:            core.NewVec3(0.9, 0.9, 0.9),
		SpecularStrength: 0.8,
		Shininess:        32,
		RefractiveIndex:  1.0,
	}
	s.AddShape(geometry.NewSphere(core.NewVec3(-1.2, 0, -4), 1.0, mirror))

	glass := core.Material{
		Color:            core.NewVec3(0.95, 0.95, 1.0),
		SpecularStrength: 0.1,
		Shininess:        32,
		Transparency:     0.9,
		RefractiveIndex:  1.5,
	}
	s.AddShape(geometry.NewSphere(core.NewVec3(1.2, 0, -4), 1.0, glass))

	matteRed := core.Material{
		Color:           core.NewVec3(0.9, 0.2, 0.2),
		Shininess:       32,
		RefractiveIndex: 1.0,
	}
	s.AddShape(geometry.NewSphere(core.NewVec3(0, -1.5, -6), 0.8, matteRed))

	s.AddLight(core.NewVec3(-4, 5, -1), core.NewVec3(1, 1, 1), 1.0)
	s.AddLight(core.NewVec3(5, 3, -3), core.NewVec3(0.9, 0.9, 1.0), 0.6)

	return s
}

// NewTrioScene creates a minimal scene with three matte spheres and a
// single light, useful for quick renders
func NewTrioScene(aspectRatio float64) *Scene {
	camera := renderer.NewCamera(core.NewVec3(0, 0, 0), aspectRatio)
	s := NewScene(camera)

	colors := []core.Vec3{
		core.NewVec3(0.9, 0.3, 0.3),
		core.NewVec3(0.3, 0.9, 0.3),
		core.NewVec3(0.3, 0.3, 0.9),
	}
	centers := []core.Vec3{
		core.NewVec3(-2, 0, -5),
		core.NewVec3(0, 0, -5),
		core.NewVec3(2, 0, -5),
	}
	for i := range colors {
		mat := core.Material{
			Color:           colors[i],
			Shininess:       32,
			RefractiveIndex: 1.0,
		}
		s.AddShape(geometry.NewSphere(centers[i], 0.8, mat))
	}

	s.AddLight(core.NewVec3(0, 6, 0), core.NewVec3(1, 1, 1), 1.0)

	return s
}
