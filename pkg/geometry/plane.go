package geometry

import (
	"math"

	"github.com/gcottrell13/cs430-project3/pkg/core"
	"github.com/gcottrell13/cs430-project3/pkg/material"
)

// parallelEpsilon is the smallest |N·D| treated as a real crossing
const parallelEpsilon = 1e-8

// Plane represents an infinite plane N·P + Offset = 0
type Plane struct {
	Normal core.Vec3 // Unit normal
	Offset float64
	Surf   material.Surface
}

// NewPlane creates a plane through point with the given normal.
// The normal is normalized; a zero normal yields a plane that is never hit.
func NewPlane(point, normal core.Vec3, surface material.Surface) *Plane {
	n := normal.Normalize()
	return &Plane{
		Normal: n,
		Offset: -n.Dot(point),
		Surf:   surface,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray) (float64, bool) {
	denominator := p.Normal.Dot(ray.Direction)

	// Parallel rays never cross
	if math.Abs(denominator) < parallelEpsilon {
		return 0, false
	}

	t := -(p.Normal.Dot(ray.Origin) + p.Offset) / denominator
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// NormalAt returns the stored plane normal
func (p *Plane) NormalAt(point core.Vec3) core.Vec3 {
	return p.Normal
}

func (p *Plane) Surface() material.Surface { return p.Surf }

func (p *Plane) Kind() Kind { return KindPlane }
