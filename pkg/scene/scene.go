package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering. It owns its
// shapes and lights: both are populated during construction and
// read-only for the duration of a render.
type Scene struct {
	Camera *renderer.Camera
	Shapes []core.Shape
	Lights []lights.PointLight
}

// NewScene creates an empty scene with the given camera
func NewScene(camera *renderer.Camera) *Scene {
	return &Scene{
		Camera: camera,
		Shapes: make([]core.Shape, 0),
		Lights: make([]lights.PointLight, 0),
	}
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetShapes returns a read-only view of the scene shapes
func (s *Scene) GetShapes() []core.Shape {
	return s.Shapes
}

// GetLights returns a read-only view of the scene lights
func (s *Scene) GetLights() []lights.PointLight {
	return s.Lights
}

// AddShape appends a shape to the scene
func (s *Scene) AddShape(shape core.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// AddLight appends a point light to the scene
func (s *Scene) AddLight(position, color core.Vec3, intensity float64) {
	s.Lights = append(s.Lights, lights.NewPointLight(position, color, intensity))
}
