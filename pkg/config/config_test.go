package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var envKeys = []string{
	"RAYTRACE_MAX_DEPTH", "RAYTRACE_WORKERS", "RAYTRACE_TILE_SIZE", "RAYTRACE_BOUNCE_OFFSET",
	"RAYTRACE_SCENES_DIR", "RAYTRACE_SERVER_ADDRESS",
	"S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_ENDPOINT", "S3_REGION", "S3_BUCKET",
}

// clearEnv unsets every variable Load reads and restores them after the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		if old, ok := os.LookupEnv(key); ok {
			os.Unsetenv(key)
			t.Cleanup(func() { os.Setenv(key, old) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults %+v, got %+v", Default(), cfg)
	}
	if cfg.S3.Enabled() {
		t.Error("S3 should be disabled without a bucket")
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	content := "RAYTRACE_MAX_DEPTH=3\nRAYTRACE_WORKERS=2\nRAYTRACE_BOUNCE_OFFSET=0.01\nS3_BUCKET=renders\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}

	// The environment wins over the file
	t.Setenv("RAYTRACE_WORKERS", "5")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.MaxDepth != 3 {
		t.Errorf("Expected max depth 3, got %d", cfg.MaxDepth)
	}
	if cfg.Workers != 5 {
		t.Errorf("Expected workers 5 from the environment, got %d", cfg.Workers)
	}
	if cfg.BounceOffset != 0.01 {
		t.Errorf("Expected bounce offset 0.01, got %f", cfg.BounceOffset)
	}
	if !cfg.S3.Enabled() || cfg.S3.Bucket != "renders" {
		t.Errorf("Expected S3 bucket renders, got %+v", cfg.S3)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"RAYTRACE_MAX_DEPTH", "deep"},
		{"RAYTRACE_WORKERS", "1.5"},
		{"RAYTRACE_BOUNCE_OFFSET", "far"},
		{"RAYTRACE_TILE_SIZE", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load("")
			if err == nil {
				t.Fatalf("Expected error for %s=%q", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("Error should name %s, got %v", tt.key, err)
			}
		})
	}
}
