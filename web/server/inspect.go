package server

import (
	"fmt"
	"net/http"

	"github.com/gcottrell13/cs430-project3/pkg/core"
	"github.com/gcottrell13/cs430-project3/pkg/geometry"
	"github.com/gcottrell13/cs430-project3/pkg/integrator"
	"github.com/gcottrell13/cs430-project3/pkg/material"
	"github.com/gcottrell13/cs430-project3/pkg/renderer"
	"github.com/gcottrell13/cs430-project3/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	Index        int                    `json:"index"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func vecJSON(v core.Vec3) [3]float64 {
	return [3]float64{v.X(), v.Y(), v.Z()}
}

// inspectPixel casts the primary ray of one pixel and describes the first shape hit
func inspectPixel(sc *scene.Scene, width, height, pixelX, pixelY int) InspectResponse {
	ray := renderer.NewCamera(sc.Camera, width, height).GetRay(pixelX, pixelY)

	hit, isHit := integrator.FindNearest(sc, ray, integrator.NoExclusion)
	if !isHit {
		return InspectResponse{Index: integrator.NoHit}
	}

	return InspectResponse{
		Hit:          true,
		Index:        hit.Index,
		GeometryType: string(hit.Shape.Kind()),
		Point:        vecJSON(hit.Point),
		Normal:       vecJSON(hit.Shape.NormalAt(hit.Point)),
		Distance:     hit.T * ray.Direction.Length(),
		Properties: map[string]interface{}{
			"geometry": extractGeometryInfo(hit.Shape),
			"material": extractSurfaceInfo(hit.Shape.Surface()),
		},
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) map[string]interface{} {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecJSON(geom.Center)
		properties["radius"] = geom.Radius
	case *geometry.Plane:
		properties["normal"] = vecJSON(geom.Normal)
		properties["offset"] = geom.Offset
	case *geometry.Cylinder:
		properties["axisPoint"] = vecJSON(geom.AxisPoint)
		properties["axis"] = vecJSON(geom.Axis)
		properties["radius"] = geom.Radius
	}

	return properties
}

func extractSurfaceInfo(surf material.Surface) map[string]interface{} {
	return map[string]interface{}{
		"diffuse":          vecJSON(surf.Diffuse),
		"specular":         vecJSON(surf.Specular),
		"reflectivity":     surf.Reflectivity,
		"transparency":     surf.Transparency,
		"refractiveIndex":  surf.RefractiveIndex,
		"specularExponent": surf.SpecularExponent,
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	width, err := parseIntParam(query, "width", defaultWidth, minImageSize, maxImageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	height, err := parseIntParam(query, "height", defaultHeight, minImageSize, maxImageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Pixel coordinates are required
	if query.Get("x") == "" || query.Get("y") == "" {
		writeError(w, http.StatusBadRequest, "x and y are required")
		return
	}
	pixelX, err := parseIntParam(query, "x", 0, 0, width-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Pixel coordinates out of bounds: %v", err))
		return
	}
	pixelY, err := parseIntParam(query, "y", 0, 0, height-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Pixel coordinates out of bounds: %v", err))
		return
	}

	sc, err := s.resolveScene(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sc, width, height, pixelX, pixelY))
}
