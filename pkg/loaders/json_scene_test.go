package loaders

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gcottrell13/cs430-project3/pkg/core"
	"github.com/gcottrell13/cs430-project3/pkg/geometry"
	"github.com/gcottrell13/cs430-project3/pkg/lights"
	"github.com/gcottrell13/cs430-project3/pkg/scene"
)

const fullScene = `[
	{"type": "camera", "width": 2.0, "height": 1.5},
	{"type": "ambient", "color": [0.2, 0.2, 0.2]},
	{"type": "sphere", "position": [0, 0, 5], "radius": 1,
	 "diffuse_color": [1, 0, 0], "specular_color": [0.5, 0.5, 0.5],
	 "reflectivity": 0.25, "refractivity": 0.5, "ior": 1.33, "ns": 40},
	{"type": "plane", "position": [0, -1, 0], "normal": [0, 2, 0], "color": [0.5, 0.5, 0.5]},
	{"type": "cylinder", "position": [2, 0, 8], "axis": [0, 1, 0], "radius": 0.5, "color": [0, 0, 1]},
	{"type": "light", "position": [0, 5, 0], "color": [1, 1, 1], "radial-a2": 0.1},
	{"type": "light", "position": [0, 5, 5], "color": [1, 1, 1], "direction": [0, -1, 0],
	 "theta": 30, "angular-a0": 2}
]`

func parseSceneFromString(content string) (*scene.Scene, error) {
	return ParseScene(strings.NewReader(content))
}

func TestParseScene_Full(t *testing.T) {
	sc, err := parseSceneFromString(fullScene)
	if err != nil {
		t.Fatalf("Failed to parse scene: %v", err)
	}

	if sc.Camera.Width != 2 || sc.Camera.Height != 1.5 {
		t.Errorf("Unexpected camera %+v", sc.Camera)
	}
	if sc.Ambient != core.NewVec3(0.2, 0.2, 0.2) || sc.Background != sc.Ambient {
		t.Errorf("Expected ambient and background 0.2, got %v / %v", sc.Ambient, sc.Background)
	}
	if len(sc.Shapes) != 3 {
		t.Fatalf("Expected 3 shapes, got %d", len(sc.Shapes))
	}
	if len(sc.Lights) != 2 {
		t.Fatalf("Expected 2 lights, got %d", len(sc.Lights))
	}

	sphere, ok := sc.Shapes[0].(*geometry.Sphere)
	if !ok {
		t.Fatalf("Expected sphere first, got %T", sc.Shapes[0])
	}
	surf := sphere.Surface()
	if surf.Reflectivity != 0.25 || surf.Transparency != 0.5 || surf.RefractiveIndex != 1.33 || surf.SpecularExponent != 40 {
		t.Errorf("Unexpected surface %+v", surf)
	}
	if surf.Specular != core.NewVec3(0.5, 0.5, 0.5) {
		t.Errorf("Unexpected specular color %v", surf.Specular)
	}

	plane, ok := sc.Shapes[1].(*geometry.Plane)
	if !ok {
		t.Fatalf("Expected plane second, got %T", sc.Shapes[1])
	}
	if !plane.Normal.ApproxEqual(core.NewVec3(0, 1, 0), 1e-12) {
		t.Errorf("Plane normal should be normalized, got %v", plane.Normal)
	}
	// Defaults for a shape with only a color
	if plane.Surf.Specular != core.NewVec3(1, 1, 1) || plane.Surf.SpecularExponent != 20 || plane.Surf.RefractiveIndex != 1 {
		t.Errorf("Unexpected default surface %+v", plane.Surf)
	}

	if sc.Shapes[2].Kind() != geometry.KindCylinder {
		t.Errorf("Expected cylinder third, got %s", sc.Shapes[2].Kind())
	}

	if sc.Lights[0].Type() != lights.LightTypePoint {
		t.Errorf("Expected point light, got %s", sc.Lights[0].Type())
	}
	spot, ok := sc.Lights[1].(*lights.SpotLight)
	if !ok {
		t.Fatalf("Expected spot light, got %T", sc.Lights[1])
	}
	if math.Abs(spot.CutoffCos()-math.Cos(math.Pi/6)) > 1e-12 {
		t.Errorf("Expected cutoff cos(30°), got %f", spot.CutoffCos())
	}
}

func TestParseScene_BackgroundOverridesAmbient(t *testing.T) {
	sc, err := parseSceneFromString(`[
		{"type": "background", "color": [0, 0, 1]},
		{"type": "camera", "width": 1, "height": 1},
		{"type": "ambient", "color": [0.3, 0.3, 0.3]}
	]`)
	if err != nil {
		t.Fatalf("Failed to parse scene: %v", err)
	}
	if sc.Background != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected blue background regardless of order, got %v", sc.Background)
	}
	if sc.Ambient != core.NewVec3(0.3, 0.3, 0.3) {
		t.Errorf("Unexpected ambient %v", sc.Ambient)
	}
}

func TestParseScene_DefaultAmbient(t *testing.T) {
	sc, err := parseSceneFromString(`[{"type": "camera", "width": 1, "height": 1}]`)
	if err != nil {
		t.Fatalf("Failed to parse scene: %v", err)
	}
	if sc.Ambient != scene.DefaultAmbient {
		t.Errorf("Expected default ambient, got %v", sc.Ambient)
	}
}

func TestParseScene_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{"not json", `{{`, "failed to decode"},
		{"not an array", `{"type": "camera"}`, "failed to decode"},
		{"missing type", `[{"width": 1}]`, `object 0: missing "type"`},
		{"unknown type", `[{"type": "torus"}]`, `unknown type "torus"`},
		{"unknown key", `[{"type": "camera", "width": 1, "height": 1, "fov": 60}]`, `unknown property "fov"`},
		{"camera missing height", `[{"type": "camera", "width": 1}]`, `object 0 (camera): missing "height"`},
		{"camera not positive", `[{"type": "camera", "width": 0, "height": 1}]`, "must be positive"},
		{"duplicate camera", `[{"type": "camera", "width": 1, "height": 1}, {"type": "camera", "width": 1, "height": 1}]`, "duplicate camera"},
		{"sphere missing radius", `[{"type": "camera", "width": 1, "height": 1},
			{"type": "sphere", "position": [0,0,5], "color": [1,0,0]}]`, `object 1 (sphere): missing "radius"`},
		{"sphere missing color", `[{"type": "sphere", "position": [0,0,5], "radius": 1}]`, `missing "color"`},
		{"negative radius", `[{"type": "camera", "width": 1, "height": 1},
			{"type": "sphere", "position": [0,0,5], "radius": -1, "color": [1,0,0]}]`, "non-negative"},
		{"short vector", `[{"type": "sphere", "position": [0,5], "radius": 1, "color": [1,0,0]}]`, `"position" must be an array of 3 numbers`},
		{"number as string", `[{"type": "camera", "width": "wide", "height": 1}]`, `"width" must be a number`},
		{"zero plane normal", `[{"type": "plane", "position": [0,0,0], "normal": [0,0,0], "color": [1,1,1]}]`, "non-zero"},
		{"zero cylinder axis", `[{"type": "cylinder", "position": [0,0,0], "axis": [0,0,0], "radius": 1, "color": [1,1,1]}]`, "non-zero"},
		{"cylinder missing axis", `[{"type": "cylinder", "position": [0,0,0], "radius": 1, "color": [1,1,1]}]`, `missing "axis"`},
		{"too reflective", `[{"type": "camera", "width": 1, "height": 1},
			{"type": "sphere", "position": [0,0,5], "radius": 1, "color": [1,0,0], "reflectivity": 0.6, "refractivity": 0.6}]`, "must not exceed 1"},
		{"spot with zero direction", `[{"type": "light", "position": [0,0,0], "color": [1,1,1], "direction": [0,0,0], "theta": 10}]`, "direction must be non-zero"},
		{"light missing color", `[{"type": "light", "position": [0,0,0]}]`, `missing "color"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSceneFromString(tt.content)
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tt.errText)
			}
			if !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("Expected error containing %q, got %q", tt.errText, err.Error())
			}
		})
	}
}

func TestParseScene_NoCamera(t *testing.T) {
	_, err := parseSceneFromString(`[{"type": "ambient", "color": [0.1, 0.1, 0.1]}]`)
	if !errors.Is(err, ErrNoCamera) {
		t.Errorf("Expected ErrNoCamera, got %v", err)
	}
}

func TestParseScene_TooManyLights(t *testing.T) {
	var b strings.Builder
	b.WriteString(`[{"type": "camera", "width": 1, "height": 1}`)
	for i := 0; i <= scene.MaxLights; i++ {
		b.WriteString(`, {"type": "light", "position": [0,5,0], "color": [1,1,1]}`)
	}
	b.WriteString("]")

	_, err := parseSceneFromString(b.String())
	if !errors.Is(err, scene.ErrTooManyLights) {
		t.Errorf("Expected ErrTooManyLights, got %v", err)
	}
}

func TestParseScene_PointLightIgnoresDirectionWithoutAngle(t *testing.T) {
	sc, err := parseSceneFromString(`[
		{"type": "camera", "width": 1, "height": 1},
		{"type": "light", "position": [0,5,0], "color": [1,1,1], "direction": [0,-1,0]}
	]`)
	if err != nil {
		t.Fatalf("Failed to parse scene: %v", err)
	}
	if sc.Lights[0].Type() != lights.LightTypePoint {
		t.Errorf("Expected point light, got %s", sc.Lights[0].Type())
	}
}

func TestLoadScene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	if err := os.WriteFile(path, []byte(fullScene), 0o644); err != nil {
		t.Fatalf("Failed to write scene: %v", err)
	}

	sc, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene failed: %v", err)
	}
	if sc.GetPrimitiveCount() != 3 {
		t.Errorf("Expected 3 primitives, got %d", sc.GetPrimitiveCount())
	}
}

func TestLoadScene_InvalidPath(t *testing.T) {
	tests := []struct {
		name     string
		filename string
	}{
		{"empty", ""},
		{"wrong extension", "scene.txt"},
		{"null byte", "scene\x00.json"},
		{"missing file", filepath.Join(os.TempDir(), "definitely-missing-scene.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScene(tt.filename); err == nil {
				t.Errorf("Expected error for %q", tt.filename)
			}
		})
	}
}
