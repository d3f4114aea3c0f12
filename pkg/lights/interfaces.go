package lights

import "github.com/gcottrell13/cs430-project3/pkg/core"

type LightType string

const (
	LightTypePoint LightType = "point"
	LightTypeSpot  LightType = "spot"
)

// Light interface for punctual lights evaluated by direct lighting
type Light interface {
	Type() LightType

	// Position returns the light position in world space
	Position() core.Vec3

	// Color returns the light intensity/color
	Color() core.Vec3

	// Attenuation returns the combined radial and angular factor in [0,1]
	// for a surface point at the given distance from the light.
	Attenuation(point core.Vec3, distance float64) float64
}

// Attenuation holds the radial falloff coefficients: 1 / (Constant + Linear·d + Quadratic·d²)
type Attenuation struct {
	Constant  float64
	Linear    float64
	Quadratic float64
}

// DefaultAttenuation leaves intensity unchanged with distance
func DefaultAttenuation() Attenuation {
	return Attenuation{Constant: 1}
}

// Radial evaluates the distance falloff clamped into [0,1].
// A non-positive denominator is treated as no falloff when zero and as no light when negative.
func (a Attenuation) Radial(distance float64) float64 {
	denominator := a.Constant + a.Linear*distance + a.Quadratic*distance*distance
	if denominator == 0 {
		return 1
	}
	if denominator < 0 {
		return 0
	}
	return clamp01(1 / denominator)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
