package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/gcottrell13/cs430-project3/pkg/renderer"
)

// ErrUnsupportedFormat is returned for file extensions no encoder handles
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Save writes the frame to path, choosing the encoding from the extension.
// .ppm is written as P6; png, jpg, gif, tif and bmp go through imaging.
func Save(path string, frame *renderer.Frame) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".ppm" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		if err := WritePPM(file, frame); err != nil {
			file.Close()
			return err
		}
		return file.Close()
	}

	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err := imaging.Save(frame.ToImage(), path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// Encode writes the frame in the named format ("ppm", "png", "jpg", ...)
func Encode(w io.Writer, frame *renderer.Frame, format string) error {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	if format == "ppm" {
		return WritePPM(w, frame)
	}

	f, err := imaging.FormatFromExtension(format)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return imaging.Encode(w, frame.ToImage(), f)
}

// ContentType returns the MIME type for a format accepted by Encode
func ContentType(format string) string {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "ppm":
		return "image/x-portable-pixmap"
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "tif", "tiff":
		return "image/tiff"
	case "bmp":
		return "image/bmp"
	}
	return "application/octet-stream"
}
