package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"red-sphere", "Red Sphere"},
		{"glass_orbs", "Glass Orbs"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestListSceneFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zeta_room.json", "alpha-test.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("[]"), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	scenes, err := ListSceneFiles(dir)
	if err != nil {
		t.Fatalf("ListSceneFiles failed: %v", err)
	}

	if len(scenes) != 2 {
		t.Fatalf("Expected 2 JSON scenes, got %d: %+v", len(scenes), scenes)
	}

	if scenes[0].DisplayName != "Alpha Test" || scenes[1].DisplayName != "Zeta Room" {
		t.Errorf("Scenes not sorted by display name: %q, %q", scenes[0].DisplayName, scenes[1].DisplayName)
	}
	if scenes[0].ID != "file:alpha-test" {
		t.Errorf("Expected ID file:alpha-test, got %q", scenes[0].ID)
	}
	if scenes[0].Type != "file" {
		t.Errorf("Expected type file, got %q", scenes[0].Type)
	}
	if scenes[0].FilePath != filepath.Join(dir, "alpha-test.json") {
		t.Errorf("Unexpected file path %q", scenes[0].FilePath)
	}
}

func TestListSceneFiles_MissingDirectory(t *testing.T) {
	scenes, err := ListSceneFiles(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("Missing directory should not be an error, got %v", err)
	}
	if len(scenes) != 0 {
		t.Errorf("Expected no scenes, got %d", len(scenes))
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mine.json"), []byte("[]"), 0o644); err != nil {
		t.Fatalf("Failed to write scene: %v", err)
	}

	scenes, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes failed: %v", err)
	}

	builtinCount := len(BuiltinNames())
	if len(scenes) != builtinCount+1 {
		t.Fatalf("Expected %d scenes, got %d", builtinCount+1, len(scenes))
	}
	for i := 0; i < builtinCount; i++ {
		if scenes[i].Type != "builtin" {
			t.Errorf("Scene %d: expected builtin, got %q", i, scenes[i].Type)
		}
	}
	if last := scenes[len(scenes)-1]; last.ID != "file:mine" {
		t.Errorf("Expected file scene last, got %q", last.ID)
	}
}
