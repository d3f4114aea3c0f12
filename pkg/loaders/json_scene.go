package loaders

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gcottrell13/cs430-project3/pkg/core"
	"github.com/gcottrell13/cs430-project3/pkg/geometry"
	"github.com/gcottrell13/cs430-project3/pkg/lights"
	"github.com/gcottrell13/cs430-project3/pkg/material"
	"github.com/gcottrell13/cs430-project3/pkg/scene"
)

// ErrNoCamera is returned when a scene file never declares a camera
var ErrNoCamera = errors.New("scene has no camera")

// Keys accepted per object type; anything else is rejected
var surfaceKeys = []string{"color", "diffuse_color", "specular_color", "reflectivity", "refractivity", "ior", "ns"}

var allowedKeys = map[string][]string{
	"camera":     {"width", "height"},
	"sphere":     append([]string{"position", "radius"}, surfaceKeys...),
	"plane":      append([]string{"position", "normal"}, surfaceKeys...),
	"cylinder":   append([]string{"position", "axis", "direction", "radius"}, surfaceKeys...),
	"light":      {"position", "color", "direction", "theta", "angle", "radial-a0", "radial-a1", "radial-a2", "angular-a0"},
	"ambient":    {"color"},
	"background": {"color"},
}

// SceneObject is one entry of the top-level JSON array
type SceneObject struct {
	Index  int                        // Position in the file, used in error messages
	Type   string                     // camera, sphere, plane, cylinder, light, ambient, background
	Params map[string]json.RawMessage // Every key except "type"
}

// LoadScene loads and parses a JSON scene file
func LoadScene(filename string) (*scene.Scene, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	return ParseScene(file)
}

// ParseScene parses JSON scene content from an io.Reader
func ParseScene(reader io.Reader) (*scene.Scene, error) {
	objects, err := decodeObjects(reader)
	if err != nil {
		return nil, err
	}

	var (
		camera        *scene.Camera
		ambient       = scene.DefaultAmbient
		background    core.Vec3
		hasBackground bool
		shapes        []geometry.Shape
		sceneLights   []lights.Light
	)

	for _, obj := range objects {
		if err := obj.checkKeys(); err != nil {
			return nil, err
		}

		switch obj.Type {
		case "camera":
			if camera != nil {
				return nil, obj.errorf("duplicate camera")
			}
			c, err := obj.parseCamera()
			if err != nil {
				return nil, err
			}
			camera = &c
		case "ambient":
			if ambient, err = obj.requireVec3("color"); err != nil {
				return nil, err
			}
		case "background":
			if background, err = obj.requireVec3("color"); err != nil {
				return nil, err
			}
			hasBackground = true
		case "light":
			light, err := obj.parseLight()
			if err != nil {
				return nil, err
			}
			sceneLights = append(sceneLights, light)
		default:
			shape, err := obj.parseShape()
			if err != nil {
				return nil, err
			}
			shapes = append(shapes, shape)
		}
	}

	if camera == nil {
		return nil, ErrNoCamera
	}

	sc := scene.New(*camera)
	sc.SetAmbient(ambient)
	if hasBackground {
		sc.Background = background
	}
	sc.Shapes = shapes
	sc.Lights = sceneLights

	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	return sc, nil
}

// decodeObjects reads the top-level array and splits off each object's type
func decodeObjects(reader io.Reader) ([]SceneObject, error) {
	var raw []map[string]json.RawMessage
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode scene JSON: %w", err)
	}

	objects := make([]SceneObject, 0, len(raw))
	for i, params := range raw {
		obj := SceneObject{Index: i, Params: params}

		typeValue, ok := params["type"]
		if !ok {
			return nil, fmt.Errorf("object %d: missing \"type\"", i)
		}
		if err := json.Unmarshal(typeValue, &obj.Type); err != nil {
			return nil, fmt.Errorf("object %d: \"type\" must be a string", i)
		}
		delete(params, "type")

		if _, known := allowedKeys[obj.Type]; !known {
			return nil, fmt.Errorf("object %d: unknown type %q", i, obj.Type)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

func (o SceneObject) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("object %d (%s): %s", o.Index, o.Type, fmt.Sprintf(format, args...))
}

// checkKeys rejects properties the object type does not use
func (o SceneObject) checkKeys() error {
	allowed := allowedKeys[o.Type]
	var unknown []string
	for key := range o.Params {
		found := false
		for _, a := range allowed {
			if key == a {
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return o.errorf("unknown property %q", unknown[0])
	}
	return nil
}

// GetFloatParam extracts a number parameter
func (o SceneObject) GetFloatParam(name string) (float64, bool, error) {
	raw, exists := o.Params[name]
	if !exists {
		return 0, false, nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, true, o.errorf("%q must be a number", name)
	}
	return v, true, nil
}

// GetVec3Param extracts a three-element array parameter
func (o SceneObject) GetVec3Param(name string) (core.Vec3, bool, error) {
	raw, exists := o.Params[name]
	if !exists {
		return core.Vec3{}, false, nil
	}
	var v []float64
	if err := json.Unmarshal(raw, &v); err != nil || len(v) != 3 {
		return core.Vec3{}, true, o.errorf("%q must be an array of 3 numbers", name)
	}
	return core.NewVec3(v[0], v[1], v[2]), true, nil
}

func (o SceneObject) requireFloat(name string) (float64, error) {
	v, ok, err := o.GetFloatParam(name)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, o.errorf("missing %q", name)
	}
	return v, nil
}

func (o SceneObject) requireVec3(name string) (core.Vec3, error) {
	v, ok, err := o.GetVec3Param(name)
	if err != nil {
		return core.Vec3{}, err
	}
	if !ok {
		return core.Vec3{}, o.errorf("missing %q", name)
	}
	return v, nil
}

func (o SceneObject) floatOr(name string, fallback float64) (float64, error) {
	v, ok, err := o.GetFloatParam(name)
	if err != nil || !ok {
		return fallback, err
	}
	return v, nil
}

func (o SceneObject) parseCamera() (scene.Camera, error) {
	width, err := o.requireFloat("width")
	if err != nil {
		return scene.Camera{}, err
	}
	height, err := o.requireFloat("height")
	if err != nil {
		return scene.Camera{}, err
	}
	if width <= 0 || height <= 0 {
		return scene.Camera{}, o.errorf("width and height must be positive")
	}
	return scene.Camera{Width: width, Height: height}, nil
}

// parseSurface reads the Phong parameters shared by every shape
func (o SceneObject) parseSurface() (material.Surface, error) {
	diffuse, ok, err := o.GetVec3Param("diffuse_color")
	if err != nil {
		return material.Surface{}, err
	}
	if !ok {
		if diffuse, err = o.requireVec3("color"); err != nil {
			return material.Surface{}, err
		}
	}

	surf := material.NewSurface(diffuse)
	if spec, ok, err := o.GetVec3Param("specular_color"); err != nil {
		return material.Surface{}, err
	} else if ok {
		surf.Specular = spec
	}

	if surf.Reflectivity, err = o.floatOr("reflectivity", 0); err != nil {
		return material.Surface{}, err
	}
	if surf.Transparency, err = o.floatOr("refractivity", 0); err != nil {
		return material.Surface{}, err
	}
	if surf.RefractiveIndex, err = o.floatOr("ior", material.VacuumIndex); err != nil {
		return material.Surface{}, err
	}
	if surf.SpecularExponent, err = o.floatOr("ns", material.DefaultSpecularExponent); err != nil {
		return material.Surface{}, err
	}
	return surf, nil
}

func (o SceneObject) parseShape() (geometry.Shape, error) {
	surf, err := o.parseSurface()
	if err != nil {
		return nil, err
	}
	position, err := o.requireVec3("position")
	if err != nil {
		return nil, err
	}

	switch o.Type {
	case "sphere":
		radius, err := o.requireFloat("radius")
		if err != nil {
			return nil, err
		}
		return geometry.NewSphere(position, radius, surf), nil

	case "plane":
		normal, err := o.requireVec3("normal")
		if err != nil {
			return nil, err
		}
		if normal.IsZero() {
			return nil, o.errorf("\"normal\" must be non-zero")
		}
		return geometry.NewPlane(position, normal, surf), nil

	case "cylinder":
		axis, ok, err := o.GetVec3Param("axis")
		if err != nil {
			return nil, err
		}
		if !ok {
			if axis, err = o.requireVec3("direction"); err != nil {
				return nil, o.errorf("missing \"axis\"")
			}
		}
		if axis.IsZero() {
			return nil, o.errorf("\"axis\" must be non-zero")
		}
		radius, err := o.requireFloat("radius")
		if err != nil {
			return nil, err
		}
		return geometry.NewCylinder(position, axis, radius, surf), nil
	}

	return nil, o.errorf("unsupported shape")
}

// parseLight builds a point light, or a spot light when a direction and cone angle are given
func (o SceneObject) parseLight() (lights.Light, error) {
	position, err := o.requireVec3("position")
	if err != nil {
		return nil, err
	}
	color, err := o.requireVec3("color")
	if err != nil {
		return nil, err
	}

	var att lights.Attenuation
	if att.Constant, err = o.floatOr("radial-a0", 1); err != nil {
		return nil, err
	}
	if att.Linear, err = o.floatOr("radial-a1", 0); err != nil {
		return nil, err
	}
	if att.Quadratic, err = o.floatOr("radial-a2", 0); err != nil {
		return nil, err
	}

	theta, err := o.floatOr("theta", 0)
	if err != nil {
		return nil, err
	}
	if theta == 0 {
		if theta, err = o.floatOr("angle", 0); err != nil {
			return nil, err
		}
	}

	direction, hasDirection, err := o.GetVec3Param("direction")
	if err != nil {
		return nil, err
	}
	if !hasDirection || theta <= 0 {
		return lights.NewPointLight(position, color, att), nil
	}

	falloff, err := o.floatOr("angular-a0", 1)
	if err != nil {
		return nil, err
	}
	spot, err := lights.NewSpotLight(position, color, direction, att, theta, falloff)
	if err != nil {
		return nil, fmt.Errorf("object %d (%s): %w", o.Index, o.Type, err)
	}
	return spot, nil
}

// validateFilePath validates a scene file path before opening it
func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	// Check for null bytes (could indicate path manipulation)
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}

	cleanPath := filepath.Clean(filename)
	if len(cleanPath) > 512 {
		return fmt.Errorf("file path too long: maximum 512 characters allowed")
	}

	if !strings.HasSuffix(strings.ToLower(cleanPath), ".json") {
		return fmt.Errorf("invalid file type: only .json scene files are allowed")
	}

	return nil
}
