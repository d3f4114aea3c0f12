package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gcottrell13/cs430-project3/pkg/output"
	"github.com/gcottrell13/cs430-project3/pkg/renderer"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Width     int    // Image width
	Height    int    // Image height
	MaxDepth  int    // Recursion budget per primary ray
	Format    string // ppm, png, jpg, ...
	Thumbnail int    // Longest edge of a downscaled result (0 = full size)
	UploadKey string // Also store the encoded image in S3 under this key
}

// handleRender renders a scene and responds with the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "use POST")
		return
	}

	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sc, err := s.resolveScene(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	renderID := fmt.Sprintf("render-%d", s.renders.Add(1))
	logger := NewWebLogger(renderID, s.console)
	logger.Printf("Read in %d objects\n", sc.GetPrimitiveCount())

	renderConfig := renderer.Config{
		MaxDepth:     req.MaxDepth,
		NumWorkers:   s.config.Workers,
		TileSize:     s.config.TileSize,
		BounceOffset: s.config.BounceOffset,
	}

	// Use request context to detect client disconnection
	frame, stats, err := renderer.NewRaytracer(sc, req.Width, req.Height, renderConfig, logger).Render(r.Context())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}

	if req.Thumbnail > 0 {
		frame = renderer.FrameFromImage(output.Thumbnail(frame.ToImage(), uint(req.Thumbnail)))
	}

	var buf bytes.Buffer
	if err := output.Encode(&buf, frame, req.Format); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if req.UploadKey != "" {
		if s.uploader == nil {
			writeError(w, http.StatusBadRequest, output.ErrUploadDisabled.Error())
			return
		}
		if err := s.uploader.Upload(r.Context(), req.UploadKey, buf.Bytes(), output.ContentType(req.Format)); err != nil {
			logger.Printf("Upload failed: %v\n", err)
			writeError(w, http.StatusBadGateway, "Upload failed")
			return
		}
	}

	w.Header().Set("Content-Type", output.ContentType(req.Format))
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Id", renderID)
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.Header().Set("X-Hit-Pixels", strconv.Itoa(stats.HitPixels))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{
		Format:    strings.ToLower(query.Get("format")),
		UploadKey: query.Get("upload"),
	}
	if req.Format == "" {
		req.Format = "png"
	}
	if output.ContentType(req.Format) == "application/octet-stream" {
		return nil, fmt.Errorf("unsupported format: %s", req.Format)
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", defaultWidth, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", defaultHeight, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "depth", s.config.MaxDepth, 0, maxDepthLimit); err != nil {
		return nil, err
	}
	if req.Thumbnail, err = parseIntParam(query, "thumbnail", 0, 0, maxImageSize); err != nil {
		return nil, err
	}

	return req, nil
}
