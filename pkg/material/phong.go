package material

import (
	"fmt"

	"github.com/gcottrell13/cs430-project3/pkg/core"
)

// Shading weights applied to every surface
const (
	SpecularK = 0.2 // Weight of the Phong highlight
	DiffuseK  = 1.0 // Weight of the Lambert term

	DefaultSpecularExponent = 20.0
)

// Surface holds the Phong parameters shared by every primitive
type Surface struct {
	Diffuse          core.Vec3 // Lambert color
	Specular         core.Vec3 // Highlight color
	Reflectivity     float64   // 0 = no mirror reflection
	Transparency     float64   // 0 = opaque
	RefractiveIndex  float64   // Only meaningful when Transparency > 0
	SpecularExponent float64   // Phong shininess
}

// NewSurface creates an opaque, non-reflective surface with a white highlight
func NewSurface(diffuse core.Vec3) Surface {
	return Surface{
		Diffuse:          diffuse,
		Specular:         core.NewVec3(1, 1, 1),
		RefractiveIndex:  1.0,
		SpecularExponent: DefaultSpecularExponent,
	}
}

// IsReflective reports whether the surface spawns a reflection ray
func (s Surface) IsReflective() bool {
	return s.Reflectivity > 0
}

// IsTransparent reports whether the surface spawns a refraction ray
func (s Surface) IsTransparent() bool {
	return s.Transparency > 0
}

// Validate checks the ranges a scene file can get wrong
func (s Surface) Validate() error {
	if s.Reflectivity < 0 || s.Reflectivity > 1 {
		return fmt.Errorf("reflectivity must be in [0,1], got %g", s.Reflectivity)
	}
	if s.Transparency < 0 || s.Transparency > 1 {
		return fmt.Errorf("refractivity must be in [0,1], got %g", s.Transparency)
	}
	if s.Reflectivity+s.Transparency > 1 {
		return fmt.Errorf("reflectivity + refractivity must not exceed 1, got %g", s.Reflectivity+s.Transparency)
	}
	if s.IsTransparent() && s.RefractiveIndex <= 0 {
		return fmt.Errorf("ior must be positive, got %g", s.RefractiveIndex)
	}
	if s.SpecularExponent < 0 {
		return fmt.Errorf("specular exponent must be non-negative, got %g", s.SpecularExponent)
	}
	return nil
}
