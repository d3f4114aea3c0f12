package geometry

import (
	"math"

	"github.com/gcottrell13/cs430-project3/pkg/core"
	"github.com/gcottrell13/cs430-project3/pkg/material"
)

// Cylinder represents an infinite cylinder around an axis line
type Cylinder struct {
	AxisPoint core.Vec3 // Any point on the axis
	Axis      core.Vec3 // Unit axis direction
	U, V      core.Vec3 // Orthonormal basis perpendicular to Axis
	Radius    float64
	Surf      material.Surface
}

// NewCylinder creates a new cylinder and derives the basis perpendicular to the axis
func NewCylinder(axisPoint, axis core.Vec3, radius float64, surface material.Surface) *Cylinder {
	a := axis.Normalize()
	u, v := orthonormalBasis(a)

	return &Cylinder{
		AxisPoint: axisPoint,
		Axis:      a,
		U:         u,
		V:         v,
		Radius:    radius,
		Surf:      surface,
	}
}

// orthonormalBasis returns two unit vectors perpendicular to axis and to each other
func orthonormalBasis(axis core.Vec3) (core.Vec3, core.Vec3) {
	// Pick the world axis least aligned with the cylinder axis
	helper := core.NewVec3(1, 0, 0)
	if math.Abs(axis.X()) > 0.9 {
		helper = core.NewVec3(0, 1, 0)
	}
	u := axis.Cross(helper).Normalize()
	v := axis.Cross(u).Normalize()
	return u, v
}

// Hit tests if a ray intersects with the cylinder.
// Origin and direction are projected onto the U/V plane, leaving a 2D circle test.
func (c *Cylinder) Hit(ray core.Ray) (float64, bool) {
	delta := ray.Origin.Subtract(c.AxisPoint)

	ox, oy := delta.Dot(c.U), delta.Dot(c.V)
	dx, dy := ray.Direction.Dot(c.U), ray.Direction.Dot(c.V)

	a := dx*dx + dy*dy
	b := 2 * (ox*dx + oy*dy)
	cc := ox*ox + oy*oy - c.Radius*c.Radius

	// Rays parallel to the axis have a ≈ 0 and are rejected by the solver
	return core.NearestPositiveRoot(a, b, cc)
}

// NormalAt returns the radial direction from the axis to the point
func (c *Cylinder) NormalAt(point core.Vec3) core.Vec3 {
	delta := point.Subtract(c.AxisPoint)
	radial := c.U.Multiply(delta.Dot(c.U)).Add(c.V.Multiply(delta.Dot(c.V)))
	return radial.Normalize()
}

func (c *Cylinder) Surface() material.Surface { return c.Surf }

func (c *Cylinder) Kind() Kind { return KindCylinder }
