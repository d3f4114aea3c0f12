package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/gcottrell13/cs430-project3/pkg/config"
	"github.com/gcottrell13/cs430-project3/pkg/output"
	"github.com/gcottrell13/cs430-project3/pkg/renderer"
	"github.com/gcottrell13/cs430-project3/web/server"
)

func main() {
	// Parse command line flags
	rootDir := flag.String("root", ".", "Directory holding the .env file")
	addr := flag.String("addr", "", "Address to serve on (overrides RAYTRACE_SERVER_ADDRESS)")
	flag.Parse()

	cfg, err := config.Load(*rootDir)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *addr != "" {
		cfg.ServerAddress = *addr
	}

	uploader, err := output.NewUploader(cfg.S3, renderer.NewDefaultLogger())
	if err != nil && !errors.Is(err, output.ErrUploadDisabled) {
		log.Fatalf("Failed to set up S3 uploads: %v", err)
	}

	// Create and start web server
	webServer := server.NewServer(cfg, uploader)

	log.Printf("Whitted Raytracer Web Server")
	log.Printf("Scenes directory: %s", cfg.ScenesDir)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
