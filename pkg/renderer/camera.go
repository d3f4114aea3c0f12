package renderer

import (
	"github.com/gcottrell13/cs430-project3/pkg/core"
	"github.com/gcottrell13/cs430-project3/pkg/scene"
)

// Camera generates primary rays through the centers of the pixels of an image plane
// at z = 1, viewed from the origin
type Camera struct {
	pixelWidth  float64
	pixelHeight float64
	left        float64 // x of the plane's left edge
	top         float64 // y of the plane's top edge
}

// NewCamera creates a camera mapping a width×height pixel grid onto the scene's image plane
func NewCamera(view scene.Camera, width, height int) *Camera {
	return &Camera{
		pixelWidth:  view.Width / float64(width),
		pixelHeight: view.Height / float64(height),
		left:        -view.Width / 2,
		top:         view.Height / 2,
	}
}

// GetRay returns the ray for pixel column x, row y.
// The direction is left unnormalized.
func (c *Camera) GetRay(x, y int) core.Ray {
	direction := core.NewVec3(
		c.left+c.pixelWidth*(float64(x)+0.5),
		c.top-c.pixelHeight*(float64(y)+0.5),
		1,
	)
	return core.NewRay(core.Vec3{}, direction)
}
