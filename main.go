package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gcottrell13/cs430-project3/pkg/config"
	"github.com/gcottrell13/cs430-project3/pkg/core"
	"github.com/gcottrell13/cs430-project3/pkg/loaders"
	"github.com/gcottrell13/cs430-project3/pkg/output"
	"github.com/gcottrell13/cs430-project3/pkg/renderer"
	"github.com/gcottrell13/cs430-project3/pkg/scene"
)

const usage = "Usage: raytrace [options] width height input.json output.ppm"

// errUsage marks argument errors that should print the usage text
var errUsage = errors.New("bad arguments")

// options holds the parsed command line
type options struct {
	width, height int
	input, output string
	sceneName     string
	maxDepth      int
	workers       int
	thumbnail     uint
	caption       bool
	uploadKey     string
}

func main() {
	if err := run(os.Args[1:], renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
		}
		os.Exit(1)
	}
}

// run renders one scene to one output file
func run(args []string, logger core.Logger) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	opts, err := parseArgs(args, cfg)
	if err != nil {
		return err
	}

	sc, err := createScene(opts.sceneName, opts.input)
	if err != nil {
		return err
	}
	logger.Printf("Read in %d objects\n", sc.GetPrimitiveCount())

	renderConfig := renderer.Config{
		MaxDepth:     opts.maxDepth,
		NumWorkers:   opts.workers,
		TileSize:     cfg.TileSize,
		BounceOffset: cfg.BounceOffset,
	}
	raytracer := renderer.NewRaytracer(sc, opts.width, opts.height, renderConfig, logger)

	frame, stats, err := raytracer.Render(context.Background())
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	frame = postProcess(frame, opts, stats)

	if err := output.Save(opts.output, frame); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", opts.output)

	if opts.uploadKey != "" {
		uploader, err := output.NewUploader(cfg.S3, logger)
		if err != nil {
			return err
		}
		format := strings.TrimPrefix(filepath.Ext(opts.output), ".")
		if err := uploader.UploadFrame(context.Background(), opts.uploadKey, frame, format); err != nil {
			return err
		}
	}

	return nil
}

// parseArgs reads flags and the four positional arguments; flags override cfg
func parseArgs(args []string, cfg config.Config) (options, error) {
	fs := flag.NewFlagSet("raytrace", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts := options{}
	fs.IntVar(&opts.maxDepth, "depth", cfg.MaxDepth, "Maximum recursion depth")
	fs.IntVar(&opts.workers, "workers", cfg.Workers, "Parallel workers (0 = CPU count)")
	thumbnail := fs.Uint("thumbnail", 0, "Downscale the result to fit this many pixels")
	fs.BoolVar(&opts.caption, "caption", false, "Append a caption bar with render details")
	fs.StringVar(&opts.uploadKey, "upload", "", "Also upload the result to S3 under this key")
	fs.StringVar(&opts.sceneName, "scene", "", "Render a built-in scene instead of input.json ("+strings.Join(scene.BuiltinNames(), ", ")+")")

	if err := fs.Parse(args); err != nil {
		return options{}, fmt.Errorf("%w: %v", errUsage, err)
	}
	opts.thumbnail = *thumbnail

	if fs.NArg() != 4 {
		return options{}, fmt.Errorf("%w: expected 4 arguments, got %d", errUsage, fs.NArg())
	}

	var err error
	if opts.width, err = parseDimension("width", fs.Arg(0)); err != nil {
		return options{}, err
	}
	if opts.height, err = parseDimension("height", fs.Arg(1)); err != nil {
		return options{}, err
	}
	opts.input = fs.Arg(2)
	opts.output = fs.Arg(3)

	if opts.maxDepth < 0 {
		return options{}, fmt.Errorf("%w: depth must be non-negative", errUsage)
	}
	return opts, nil
}

func parseDimension(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", errUsage, name, value)
	}
	return n, nil
}

// createScene returns the named built-in scene, or loads the scene file
func createScene(sceneName, input string) (*scene.Scene, error) {
	if sceneName != "" {
		return scene.Builtin(sceneName)
	}
	if input == "" || input == "-" {
		return nil, fmt.Errorf("%w: no input scene", errUsage)
	}
	return loaders.LoadScene(input)
}

// postProcess applies the optional thumbnail and caption
func postProcess(frame *renderer.Frame, opts options, stats renderer.RenderStats) *renderer.Frame {
	if opts.thumbnail == 0 && !opts.caption {
		return frame
	}

	var img image.Image = frame.ToImage()
	if opts.thumbnail > 0 {
		img = output.Thumbnail(img, opts.thumbnail)
	}
	if opts.caption {
		caption := fmt.Sprintf("%dx%d depth %d, %v", opts.width, opts.height, opts.maxDepth, stats.Elapsed.Round(1e6))
		img = output.Annotate(img, caption)
	}
	return renderer.FrameFromImage(img)
}
