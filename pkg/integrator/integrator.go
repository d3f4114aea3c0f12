package integrator

import (
	"github.com/gcottrell13/cs430-project3/pkg/core"
	"github.com/gcottrell13/cs430-project3/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Shade computes the unclamped color seen along ray with the given recursion budget
	Shade(sc *scene.Scene, ray core.Ray, depth int) core.Vec3

	// Trace is Shade that also reports whether the ray hit a shape
	Trace(sc *scene.Scene, ray core.Ray, depth int) (core.Vec3, bool)
}
