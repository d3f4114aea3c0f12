package renderer

import (
	"image"
	"image/color"

	"github.com/gcottrell13/cs430-project3/pkg/core"
)

// MaxValue is the largest channel value stored in a Frame
const MaxValue = 255

// Frame is an 8-bit RGB pixel buffer, row-major from the top-left corner
type Frame struct {
	Width  int
	Height int
	Pix    []uint8 // 3 bytes per pixel
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// Quantize clamps a color into [0,1] and scales it to 8 bits, truncating
func Quantize(c core.Vec3) [3]uint8 {
	c = c.Clamp(0, 1)
	return [3]uint8{
		uint8(c.X() * MaxValue),
		uint8(c.Y() * MaxValue),
		uint8(c.Z() * MaxValue),
	}
}

func (f *Frame) offset(x, y int) int {
	return (y*f.Width + x) * 3
}

// Set stores the quantized color at column x, row y
func (f *Frame) Set(x, y int, c core.Vec3) {
	rgb := Quantize(c)
	copy(f.Pix[f.offset(x, y):], rgb[:])
}

// At returns the stored bytes at column x, row y
func (f *Frame) At(x, y int) [3]uint8 {
	i := f.offset(x, y)
	return [3]uint8{f.Pix[i], f.Pix[i+1], f.Pix[i+2]}
}

// ToImage converts the frame to an opaque RGBA image
func (f *Frame) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			p := f.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: p[0], G: p[1], B: p[2], A: 255})
		}
	}
	return img
}

// FrameFromImage copies any image into a frame, dropping alpha
func FrameFromImage(img image.Image) *Frame {
	b := img.Bounds()
	f := NewFrame(b.Dx(), b.Dy())
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			i := f.offset(x, y)
			f.Pix[i], f.Pix[i+1], f.Pix[i+2] = c.R, c.G, c.B
		}
	}
	return f
}
