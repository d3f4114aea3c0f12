package integrator

import (
	"math"

	"github.com/gcottrell13/cs430-project3/pkg/core"
	"github.com/gcottrell13/cs430-project3/pkg/lights"
	"github.com/gcottrell13/cs430-project3/pkg/material"
	"github.com/gcottrell13/cs430-project3/pkg/scene"
)

// DefaultBounceOffset is how far secondary rays start from the surface along their new direction
const DefaultBounceOffset = 1.0

// WhittedIntegrator implements recursive Phong shading with mirror reflection,
// refraction and hard shadows
type WhittedIntegrator struct {
	BounceOffset float64
}

// NewWhittedIntegrator creates a new Whitted integrator; a non-positive offset selects the default
func NewWhittedIntegrator(bounceOffset float64) *WhittedIntegrator {
	if bounceOffset <= 0 {
		bounceOffset = DefaultBounceOffset
	}
	return &WhittedIntegrator{BounceOffset: bounceOffset}
}

// Shade computes the color for a single ray
func (w *WhittedIntegrator) Shade(sc *scene.Scene, ray core.Ray, depth int) core.Vec3 {
	color, _ := w.Trace(sc, ray, depth)
	return color
}

// Trace is Shade that also reports whether the ray hit anything
func (w *WhittedIntegrator) Trace(sc *scene.Scene, ray core.Ray, depth int) (core.Vec3, bool) {
	// Out of recursion budget
	if depth <= 0 {
		return sc.Ambient, false
	}

	hit, isHit := FindNearest(sc, ray, NoExclusion)
	if !isHit {
		return sc.Background, false
	}

	surf := hit.Shape.Surface()
	normal := hit.Shape.NormalAt(hit.Point)
	direction := ray.Direction.Normalize()

	color := w.directLighting(sc, hit, normal, direction, surf)
	terms := 1

	if surf.IsTransparent() {
		color = color.Add(w.refractedColor(sc, hit.Point, normal, direction, surf, depth))
		terms++
	}

	if surf.IsReflective() {
		reflected := direction.Reflect(normal)
		color = color.Add(w.bounce(sc, hit.Point, reflected, surf.Reflectivity, depth))
		terms++
	}

	return color.Multiply(1.0 / float64(terms)), true
}

// directLighting sums ambient plus the Phong contribution of every unshadowed light
func (w *WhittedIntegrator) directLighting(sc *scene.Scene, hit Intersection, normal, direction core.Vec3, surf material.Surface) core.Vec3 {
	color := sc.Ambient
	view := direction.Negate()

	for _, light := range sc.Lights {
		toLight := light.Position().Subtract(hit.Point)
		distance := toLight.Length()
		if distance == 0 {
			continue
		}
		lightDir := toLight.Multiply(1 / distance)

		if inShadow(sc, hit, lightDir, distance) {
			continue
		}

		incidence := normal.Dot(lightDir)
		if incidence <= 0 {
			continue
		}

		color = color.Add(phong(light, hit.Point, distance, normal, lightDir, view, incidence, surf))
	}

	return color
}

// inShadow reports whether another shape sits strictly between the hit point and the light
func inShadow(sc *scene.Scene, hit Intersection, lightDir core.Vec3, distance float64) bool {
	blocker, blocked := FindNearest(sc, core.NewRay(hit.Point, lightDir), hit.Index)
	return blocked && blocker.T < distance
}

// phong evaluates one light's diffuse and highlight terms, scaled by its attenuation
func phong(light lights.Light, point core.Vec3, distance float64, normal, lightDir, view core.Vec3, incidence float64, surf material.Surface) core.Vec3 {
	attenuation := light.Attenuation(point, distance)

	diffuse := surf.Diffuse.Multiply(incidence * material.DiffuseK)

	reflected := lightDir.Negate().Reflect(normal)
	s := math.Pow(math.Max(reflected.Dot(view), 0), surf.SpecularExponent) * material.SpecularK
	if s <= 0 {
		return diffuse.Multiply(attenuation)
	}

	specular := light.Color().MultiplyVec(surf.Specular).Multiply(s)
	return specular.Add(diffuse).Multiply(attenuation)
}

// refractedColor follows the transmitted ray, or the mirror direction on total internal reflection
func (w *WhittedIntegrator) refractedColor(sc *scene.Scene, point, normal, direction core.Vec3, surf material.Surface, depth int) core.Vec3 {
	refraction := material.Refract(direction, normal, surf.RefractiveIndex)
	if refraction.TotalInternal {
		return w.bounce(sc, point, direction.Reflect(normal), surf.Transparency, depth)
	}
	return w.bounce(sc, point, refraction.Direction, surf.Transparency, depth)
}

// bounce shades a secondary ray started BounceOffset along newDirection, scaled and clamped to [0,1]
func (w *WhittedIntegrator) bounce(sc *scene.Scene, point, newDirection core.Vec3, weight float64, depth int) core.Vec3 {
	origin := point.Add(newDirection.Multiply(w.BounceOffset))
	color := w.Shade(sc, core.NewRay(origin, newDirection), depth-1)
	return color.Multiply(weight).Clamp(0, 1)
}
