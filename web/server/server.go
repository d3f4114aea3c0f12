package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/gcottrell13/cs430-project3/pkg/config"
	"github.com/gcottrell13/cs430-project3/pkg/loaders"
	"github.com/gcottrell13/cs430-project3/pkg/output"
	"github.com/gcottrell13/cs430-project3/pkg/scene"
)

// Request limits
const (
	minImageSize    = 1
	maxImageSize    = 2000
	maxDepthLimit   = 50
	maxSceneBytes   = 1 << 20
	defaultWidth    = 400
	defaultHeight   = 400
	consoleCapacity = 200
)

// Server handles web requests for the raytracer
type Server struct {
	config   config.Config
	uploader *output.Uploader // nil when S3 is not configured
	console  *ConsoleLog
	mux      *http.ServeMux
	renders  atomic.Int64
}

// NewServer creates a new web server; uploader may be nil
func NewServer(cfg config.Config, uploader *output.Uploader) *Server {
	s := &Server{
		config:   cfg,
		uploader: uploader,
		console:  NewConsoleLog(consoleCapacity),
		mux:      http.NewServeMux(),
	}

	// API endpoints
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/inspect", s.handleInspect)
	s.mux.HandleFunc("/api/console", s.handleConsole)

	return s
}

// Handler returns the HTTP handler serving every endpoint
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the web server
func (s *Server) Start() error {
	log.Printf("Starting web server on %s", s.config.ServerAddress)
	return http.ListenAndServe(s.config.ServerAddress, s.mux)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes and the JSON files in the scenes directory
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListAllScenes(s.config.ScenesDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"scenes": scenes})
}

// resolveScene picks the scene for a request: ?scene=<builtin>, ?scene=file:<name>,
// or a JSON scene in the request body
func (s *Server) resolveScene(w http.ResponseWriter, r *http.Request) (*scene.Scene, error) {
	name := r.URL.Query().Get("scene")
	switch {
	case strings.HasPrefix(name, "file:"):
		return s.loadSceneFile(strings.TrimPrefix(name, "file:"))
	case name != "":
		return scene.Builtin(name)
	case r.Body != nil && r.ContentLength != 0:
		return loaders.ParseScene(http.MaxBytesReader(w, r.Body, maxSceneBytes))
	}
	return nil, fmt.Errorf("request needs a scene parameter or a JSON scene body")
}

// loadSceneFile loads a discovered scene file by name, never a caller-supplied path
func (s *Server) loadSceneFile(name string) (*scene.Scene, error) {
	files, err := scene.ListSceneFiles(s.config.ScenesDir)
	if err != nil {
		return nil, err
	}
	for _, info := range files {
		if info.Name == name {
			return loaders.LoadScene(info.FilePath)
		}
	}
	return nil, fmt.Errorf("unknown scene file: %q", name)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
