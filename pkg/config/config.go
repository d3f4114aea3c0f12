// Package config loads renderer settings from a .env file and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// S3Config holds the object storage settings used for uploading renders
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
}

// Enabled reports whether uploads are configured
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// Config contains every setting shared by the CLI and the web server
type Config struct {
	MaxDepth      int
	Workers       int
	TileSize      int
	BounceOffset  float64
	ScenesDir     string
	ServerAddress string
	S3            S3Config
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		MaxDepth:      7,
		Workers:       0,
		TileSize:      32,
		BounceOffset:  1.0,
		ScenesDir:     "scenes",
		ServerAddress: ":8080",
	}
}

// Load reads rootDir/.env if present, then the process environment.
// Variables already set in the environment take precedence over the file.
func Load(rootDir string) (Config, error) {
	if rootDir != "" {
		if err := godotenv.Load(filepath.Join(rootDir, ".env")); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to read .env: %w", err)
		}
	}

	cfg := Default()
	var err error

	if cfg.MaxDepth, err = getEnvInt("RAYTRACE_MAX_DEPTH", cfg.MaxDepth); err != nil {
		return Config{}, err
	}
	if cfg.Workers, err = getEnvInt("RAYTRACE_WORKERS", cfg.Workers); err != nil {
		return Config{}, err
	}
	if cfg.TileSize, err = getEnvInt("RAYTRACE_TILE_SIZE", cfg.TileSize); err != nil {
		return Config{}, err
	}
	if cfg.BounceOffset, err = getEnvFloat("RAYTRACE_BOUNCE_OFFSET", cfg.BounceOffset); err != nil {
		return Config{}, err
	}
	cfg.ScenesDir = getEnv("RAYTRACE_SCENES_DIR", cfg.ScenesDir)
	cfg.ServerAddress = getEnv("RAYTRACE_SERVER_ADDRESS", cfg.ServerAddress)

	cfg.S3 = S3Config{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    os.Getenv("S3_REGION"),
		Bucket:    os.Getenv("S3_BUCKET"),
	}

	if cfg.TileSize <= 0 {
		return Config{}, fmt.Errorf("RAYTRACE_TILE_SIZE must be positive, got %d", cfg.TileSize)
	}
	return cfg, nil
}

// Helper to get environment variables with a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return f, nil
}
