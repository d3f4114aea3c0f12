package renderer

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/gcottrell13/cs430-project3/pkg/core"
	"github.com/gcottrell13/cs430-project3/pkg/integrator"
	"github.com/gcottrell13/cs430-project3/pkg/scene"
)

const (
	DefaultMaxDepth = 7
	DefaultTileSize = 32
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains rendering configuration
type Config struct {
	MaxDepth     int     // Recursion budget for each primary ray
	NumWorkers   int     // Number of parallel workers (0 = use CPU count, 1 = render inline)
	TileSize     int     // Edge length of a square tile in pixels
	BounceOffset float64 // Distance secondary rays start from the surface
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:     DefaultMaxDepth,
		NumWorkers:   0,
		TileSize:     DefaultTileSize,
		BounceOffset: integrator.DefaultBounceOffset,
	}
}

// Raytracer renders one frame of a scene
type Raytracer struct {
	scene  *scene.Scene
	width  int
	height int
	config Config
	logger core.Logger
}

// NewRaytracer creates a new raytracer; a nil logger discards output
func NewRaytracer(sc *scene.Scene, width, height int, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	if config.TileSize <= 0 {
		config.TileSize = DefaultTileSize
	}
	return &Raytracer{
		scene:  sc,
		width:  width,
		height: height,
		config: config,
		logger: logger,
	}
}

// Render traces every pixel and returns the finished frame.
// Cancellation is checked between tiles.
func (rt *Raytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	if rt.width <= 0 || rt.height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("image size must be positive, got %dx%d", rt.width, rt.height)
	}

	startTime := time.Now()
	frame := NewFrame(rt.width, rt.height)
	tiles := NewTileGrid(rt.width, rt.height, rt.config.TileSize)
	tileRenderer := NewTileRenderer(
		rt.scene,
		integrator.NewWhittedIntegrator(rt.config.BounceOffset),
		NewCamera(rt.scene.Camera, rt.width, rt.height),
		rt.config.MaxDepth,
	)

	numWorkers := rt.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	rt.logger.Printf("Rendering %dx%d in %d tiles with %d workers\n", rt.width, rt.height, len(tiles), numWorkers)

	var (
		stats RenderStats
		err   error
	)
	if numWorkers == 1 {
		stats, err = renderInline(ctx, tileRenderer, tiles, frame)
	} else {
		stats, err = renderParallel(ctx, tileRenderer, tiles, frame, numWorkers)
	}
	if err != nil {
		rt.logger.Printf("Rendering cancelled: %v\n", err)
		return nil, RenderStats{}, err
	}

	stats.Workers = numWorkers
	stats.Elapsed = time.Since(startTime)
	rt.logger.Printf("Render completed in %v (%d/%d pixels hit)\n", stats.Elapsed, stats.HitPixels, stats.TotalPixels)

	return frame, stats, nil
}

func renderInline(ctx context.Context, tr *TileRenderer, tiles []*Tile, frame *Frame) (RenderStats, error) {
	var stats RenderStats
	for _, tile := range tiles {
		if err := ctx.Err(); err != nil {
			return RenderStats{}, err
		}
		stats.Add(tr.RenderTileBounds(tile.Bounds, frame))
	}
	return stats, nil
}

func renderParallel(ctx context.Context, tr *TileRenderer, tiles []*Tile, frame *Frame, numWorkers int) (RenderStats, error) {
	pool := NewWorkerPool(tr, numWorkers, len(tiles))
	pool.Start(ctx)

	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, Frame: frame})
	}

	var (
		stats    RenderStats
		firstErr error
	)
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil && firstErr == nil {
			firstErr = result.Error
		}
		stats.Add(result.Stats)
	}
	pool.Stop()

	if firstErr != nil {
		return RenderStats{}, firstErr
	}
	return stats, nil
}

// Render is the single-call form: default settings, no logging, no cancellation
func Render(sc *scene.Scene, width, height int) *Frame {
	frame, _, err := NewRaytracer(sc, width, height, DefaultConfig(), nil).Render(context.Background())
	if err != nil {
		return NewFrame(max(width, 0), max(height, 0))
	}
	return frame
}
