package geometry

import (
	"github.com/gcottrell13/cs430-project3/pkg/core"
	"github.com/gcottrell13/cs430-project3/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	Surf   material.Surface
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, surface material.Surface) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Surf:   surface,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray) (float64, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// |O + tD - C|² = R²
	a := ray.Direction.LengthSquared()
	b := 2 * oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	return core.NearestPositiveRoot(a, b, c)
}

// NormalAt returns the direction from the center to the point
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

func (s *Sphere) Surface() material.Surface { return s.Surf }

func (s *Sphere) Kind() Kind { return KindSphere }
