package renderer

import (
	"image"

	"github.com/gcottrell13/cs430-project3/pkg/integrator"
	"github.com/gcottrell13/cs430-project3/pkg/scene"
)

// Tile represents a rectangular region of the image
type Tile struct {
	ID     int             // Unique tile identifier, also its position in the grid
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}

	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	camera     *Camera
	maxDepth   int
}

// NewTileRenderer creates a new tile renderer with the given scene and integrator
func NewTileRenderer(sc *scene.Scene, integratorInst integrator.Integrator, camera *Camera, maxDepth int) *TileRenderer {
	return &TileRenderer{
		scene:      sc,
		integrator: integratorInst,
		camera:     camera,
		maxDepth:   maxDepth,
	}
}

// RenderTileBounds renders pixels within the specified bounds into frame.
// Tiles never overlap, so concurrent calls on distinct bounds are safe.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, frame *Frame) RenderStats {
	stats := RenderStats{Tiles: 1}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			color, hit := tr.integrator.Trace(tr.scene, tr.camera.GetRay(x, y), tr.maxDepth)
			frame.Set(x, y, color)

			stats.TotalPixels++
			if hit {
				stats.HitPixels++
			}
		}
	}

	return stats
}
