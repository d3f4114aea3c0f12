package output

import (
	"image"

	"github.com/nfnt/resize"
)

// Thumbnail scales img down to fit within maxSize×maxSize, keeping the aspect ratio.
// Images already small enough are returned unchanged.
func Thumbnail(img image.Image, maxSize uint) image.Image {
	return resize.Thumbnail(maxSize, maxSize, img, resize.Lanczos3)
}
