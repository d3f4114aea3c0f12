package renderer

import (
	"image/color"
	"testing"

	"github.com/gcottrell13/cs430-project3/pkg/core"
)

func TestRenderStats_Add(t *testing.T) {
	var total RenderStats
	total.Add(RenderStats{TotalPixels: 10, HitPixels: 4, Tiles: 1})
	total.Add(RenderStats{TotalPixels: 6, HitPixels: 0, Tiles: 1})

	if total.TotalPixels != 16 || total.HitPixels != 4 || total.Tiles != 2 {
		t.Errorf("Unexpected totals %+v", total)
	}
	if total.Coverage() != 0.25 {
		t.Errorf("Expected coverage 0.25, got %f", total.Coverage())
	}
	if (RenderStats{}).Coverage() != 0 {
		t.Error("Empty stats should have zero coverage")
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		name     string
		color    core.Vec3
		expected [3]uint8
	}{
		{"black", core.NewVec3(0, 0, 0), [3]uint8{0, 0, 0}},
		{"white", core.NewVec3(1, 1, 1), [3]uint8{255, 255, 255}},
		{"truncates", core.NewVec3(0.1, 0.5, 0.999), [3]uint8{25, 127, 254}},
		{"clamps", core.NewVec3(-1, 3, 1.0001), [3]uint8{0, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quantize(tt.color); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestFrame_ToImageAndBack(t *testing.T) {
	frame := NewFrame(3, 2)
	frame.Set(0, 0, core.NewVec3(1, 0, 0))
	frame.Set(2, 1, core.NewVec3(0, 0, 1))

	img := frame.ToImage()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("Unexpected image bounds %v", img.Bounds())
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("Expected red at (0,0), got %v", got)
	}
	if got := img.RGBAAt(2, 1); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("Expected blue at (2,1), got %v", got)
	}

	back := FrameFromImage(img)
	if string(back.Pix) != string(frame.Pix) {
		t.Error("Frame did not survive conversion to image and back")
	}
}
