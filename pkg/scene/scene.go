package scene

import (
	"errors"
	"fmt"

	"github.com/gcottrell13/cs430-project3/pkg/core"
	"github.com/gcottrell13/cs430-project3/pkg/geometry"
	"github.com/gcottrell13/cs430-project3/pkg/lights"
)

// Limits of the scene file format
const (
	MaxObjects = 128
	MaxLights  = 10
)

// DefaultAmbient is used when a scene does not declare an ambient color
var DefaultAmbient = core.NewVec3(0.15, 0.15, 0.15)

// Camera describes the image plane at unit distance along +Z, centered on the optical axis
type Camera struct {
	Width  float64
	Height float64
}

// Scene contains all the elements needed for rendering.
// It is built once and never mutated while a frame renders.
type Scene struct {
	Shapes     []geometry.Shape // Order only matters as a tie-break for equal distances
	Lights     []lights.Light
	Camera     Camera
	Ambient    core.Vec3
	Background core.Vec3 // Color of rays that escape the scene
}

// New creates an empty scene with the given camera and the default ambient color
func New(camera Camera) *Scene {
	return &Scene{
		Camera:     camera,
		Ambient:    DefaultAmbient,
		Background: DefaultAmbient,
	}
}

// AddShape appends a shape and returns its index
func (s *Scene) AddShape(shape geometry.Shape) int {
	s.Shapes = append(s.Shapes, shape)
	return len(s.Shapes) - 1
}

// AddLight appends a light
func (s *Scene) AddLight(light lights.Light) {
	s.Lights = append(s.Lights, light)
}

// SetAmbient sets the ambient color; the background follows it unless set separately afterwards
func (s *Scene) SetAmbient(ambient core.Vec3) {
	s.Ambient = ambient
	s.Background = ambient
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

var (
	ErrInvalidCamera  = errors.New("camera width and height must be positive")
	ErrTooManyObjects = fmt.Errorf("scene holds more than %d objects", MaxObjects)
	ErrTooManyLights  = fmt.Errorf("scene holds more than %d lights", MaxLights)
)

// Validate checks the invariants the renderer relies on
func (s *Scene) Validate() error {
	if s.Camera.Width <= 0 || s.Camera.Height <= 0 {
		return ErrInvalidCamera
	}
	if len(s.Shapes) > MaxObjects {
		return ErrTooManyObjects
	}
	if len(s.Lights) > MaxLights {
		return ErrTooManyLights
	}

	for i, shape := range s.Shapes {
		if err := validateShape(shape); err != nil {
			return fmt.Errorf("object %d (%s): %w", i, shape.Kind(), err)
		}
	}
	return nil
}

func validateShape(shape geometry.Shape) error {
	switch sh := shape.(type) {
	case *geometry.Sphere:
		if sh.Radius < 0 {
			return fmt.Errorf("radius must be non-negative, got %g", sh.Radius)
		}
	case *geometry.Cylinder:
		if sh.Radius < 0 {
			return fmt.Errorf("radius must be non-negative, got %g", sh.Radius)
		}
		if sh.Axis.IsZero() {
			return errors.New("axis must be non-zero")
		}
	case *geometry.Plane:
		if sh.Normal.IsZero() {
			return errors.New("normal must be non-zero")
		}
	}
	return shape.Surface().Validate()
}
