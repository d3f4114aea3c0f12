package scene

import (
	"fmt"
	"sort"

	"github.com/gcottrell13/cs430-project3/pkg/core"
	"github.com/gcottrell13/cs430-project3/pkg/geometry"
	"github.com/gcottrell13/cs430-project3/pkg/lights"
	"github.com/gcottrell13/cs430-project3/pkg/material"
)

var builtins = map[string]func() *Scene{
	"default":    NewDefaultScene,
	"red-sphere": NewRedSphereScene,
	"cylinders":  NewCylinderScene,
}

// Builtin returns a freshly built copy of a named scene
func Builtin(name string) (*Scene, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene type: %q", name)
	}
	return build(), nil
}

// BuiltinNames lists the built-in scene names in sorted order
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewRedSphereScene creates a single red sphere lit from above
func NewRedSphereScene() *Scene {
	s := New(Camera{Width: 2, Height: 2})
	s.SetAmbient(core.NewVec3(0.1, 0.1, 0.1))

	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0, 5), 1, material.NewSurface(core.NewVec3(1, 0, 0))))
	s.AddLight(lights.NewPointLight(core.NewVec3(0, 5, 0), core.NewVec3(1, 1, 1), lights.DefaultAttenuation()))

	return s
}

// NewDefaultScene creates a default scene with spheres, ground, back wall and two lights
func NewDefaultScene() *Scene {
	s := New(Camera{Width: 1.6, Height: 0.9})
	s.Ambient = core.NewVec3(0.08, 0.08, 0.1)
	s.Background = core.NewVec3(0.7, 0.51, 0.6)

	// Create materials
	ground := material.NewSurface(core.NewVec3(0.45, 0.45, 0.4))
	ground.Reflectivity = 0.2

	red := material.NewSurface(core.NewVec3(0.65, 0.25, 0.2))
	red.SpecularExponent = 40

	mirror := material.NewSurface(core.NewVec3(0.1, 0.1, 0.1))
	mirror.Reflectivity = 0.8
	mirror.SpecularExponent = 200

	glass := material.NewSurface(core.NewVec3(0.05, 0.1, 0.1))
	glass.Transparency = 0.9
	glass.RefractiveIndex = 1.5
	glass.SpecularExponent = 100

	// Ground plane one unit below the camera, back wall far away
	s.AddShape(geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), ground))
	s.AddShape(geometry.NewPlane(core.NewVec3(0, 0, 20), core.NewVec3(0, 0, -1), material.NewSurface(core.NewVec3(0.2, 0.3, 0.5))))

	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0, 6), 1, red))
	s.AddShape(geometry.NewSphere(core.NewVec3(-2.2, 0, 7), 1, mirror))
	s.AddShape(geometry.NewSphere(core.NewVec3(1.4, -0.4, 4.5), 0.6, glass))

	s.AddLight(lights.NewPointLight(core.NewVec3(-4, 6, 1), core.NewVec3(1, 1, 1), lights.Attenuation{Constant: 1, Linear: 0.02}))

	spot, err := lights.NewSpotLight(
		core.NewVec3(3, 5, 4),
		core.NewVec3(1, 0.9, 0.7),
		core.NewVec3(-0.4, -1, 0.3),
		lights.Attenuation{Constant: 0.5, Quadratic: 0.01},
		35,
		4,
	)
	if err == nil {
		s.AddLight(spot)
	}

	return s
}

// NewCylinderScene creates a simple test scene with cylinders
func NewCylinderScene() *Scene {
	s := New(Camera{Width: 1.6, Height: 0.9})
	s.SetAmbient(core.NewVec3(0.1, 0.1, 0.12))

	gold := material.NewSurface(core.NewVec3(0.8, 0.6, 0.2))
	gold.Specular = core.NewVec3(1, 0.9, 0.6)
	gold.SpecularExponent = 60

	blue := material.NewSurface(core.NewVec3(0.2, 0.2, 0.8))
	blue.Reflectivity = 0.3

	floor := material.NewSurface(core.NewVec3(0.5, 0.5, 0.5))

	s.AddShape(geometry.NewPlane(core.NewVec3(0, -1.5, 0), core.NewVec3(0, 1, 0), floor))

	// Upright column, a tilted pipe and a horizontal rod
	s.AddShape(geometry.NewCylinder(core.NewVec3(-1.5, 0, 8), core.NewVec3(0, 1, 0), 0.5, gold))
	s.AddShape(geometry.NewCylinder(core.NewVec3(1.5, 0, 9), core.NewVec3(0.3, 1, 0.2), 0.4, blue))
	s.AddShape(geometry.NewCylinder(core.NewVec3(0, 1.5, 12), core.NewVec3(1, 0, 0), 0.25, floor))

	s.AddLight(lights.NewPointLight(core.NewVec3(0, 4, 2), core.NewVec3(1, 1, 1), lights.DefaultAttenuation()))

	return s
}
