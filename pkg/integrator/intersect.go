package integrator

import (
	"math"

	"github.com/gcottrell13/cs430-project3/pkg/core"
	"github.com/gcottrell13/cs430-project3/pkg/geometry"
	"github.com/gcottrell13/cs430-project3/pkg/scene"
)

const (
	NoHit       = -1 // Index of an Intersection that found nothing
	NoExclusion = -1 // Pass to FindNearest to test every shape
)

// Intersection is the closest hit along a ray
type Intersection struct {
	Point core.Vec3 // Origin + T·Direction, with the direction as given (not normalized)
	T     float64
	Index int // Position of Shape in the scene's shape list
	Shape geometry.Shape
}

// FindNearest returns the closest shape hit by ray with t > 0, skipping the shape at index exclude.
// Equal distances keep the lower index.
func FindNearest(sc *scene.Scene, ray core.Ray, exclude int) (Intersection, bool) {
	best := Intersection{T: math.Inf(1), Index: NoHit}

	for i, shape := range sc.Shapes {
		if i == exclude {
			continue
		}
		t, ok := shape.Hit(ray)
		if !ok || t <= 0 {
			continue
		}
		if t < best.T {
			best.T = t
			best.Index = i
			best.Shape = shape
		}
	}

	if best.Index == NoHit {
		return Intersection{Index: NoHit}, false
	}

	best.Point = ray.At(best.T)
	return best, true
}
