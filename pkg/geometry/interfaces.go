package geometry

import (
	"github.com/gcottrell13/cs430-project3/pkg/core"
	"github.com/gcottrell13/cs430-project3/pkg/material"
)

// Kind names a primitive variant
type Kind string

const (
	KindSphere   Kind = "sphere"
	KindPlane    Kind = "plane"
	KindCylinder Kind = "cylinder"
)

// Shape is implemented by Sphere, Plane and Cylinder only
type Shape interface {
	// Hit returns the smallest strictly positive ray parameter at which the ray meets the surface.
	// The ray direction does not need to be normalized.
	Hit(ray core.Ray) (float64, bool)

	// NormalAt returns the outward unit normal at a point on the surface. It is never flipped
	// toward the viewer.
	NormalAt(point core.Vec3) core.Vec3

	// Surface returns the shading parameters of the shape
	Surface() material.Surface

	Kind() Kind
}
