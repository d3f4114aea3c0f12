package output

import (
	"image"

	"github.com/fogleman/gg"
)

// CaptionHeight is the height in pixels of the bar added by Annotate
const CaptionHeight = 20

// Annotate returns a copy of img with a caption bar appended below it
func Annotate(img image.Image, caption string) image.Image {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	dc := gg.NewContext(width, height+CaptionHeight)
	dc.DrawImage(img, 0, 0)

	dc.SetRGB(0, 0, 0)
	dc.DrawRectangle(0, float64(height), float64(width), CaptionHeight)
	dc.Fill()

	// gg's default face is the 7x13 bitmap font
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(caption, 4, float64(height)+CaptionHeight/2, 0, 0.35)

	return dc.Image()
}
