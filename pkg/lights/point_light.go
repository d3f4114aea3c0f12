package lights

import (
	"errors"
	"math"

	"github.com/gcottrell13/cs430-project3/pkg/core"
)

// ErrZeroDirection is returned when a spot light is aimed nowhere
var ErrZeroDirection = errors.New("spot light direction must be non-zero")

// PointLight radiates equally in every direction
type PointLight struct {
	position    core.Vec3
	color       core.Vec3
	attenuation Attenuation
}

// NewPointLight creates a new point light
func NewPointLight(position, color core.Vec3, attenuation Attenuation) *PointLight {
	return &PointLight{
		position:    position,
		color:       color,
		attenuation: attenuation,
	}
}

func (pl *PointLight) Type() LightType     { return LightTypePoint }
func (pl *PointLight) Position() core.Vec3 { return pl.position }
func (pl *PointLight) Color() core.Vec3    { return pl.color }

// Attenuation implements the Light interface; point lights have no angular term
func (pl *PointLight) Attenuation(point core.Vec3, distance float64) float64 {
	return pl.attenuation.Radial(distance)
}

// SpotLight is a point light restricted to a cone around Direction
type SpotLight struct {
	PointLight
	direction       core.Vec3 // Normalized aim direction
	cutoffCos       float64   // Cosine of the cone half-angle
	falloffExponent float64   // Angular falloff power
}

// NewSpotLight creates a new spot light.
// theta is the cone half-angle in degrees.
func NewSpotLight(position, color, direction core.Vec3, attenuation Attenuation, thetaDegrees, falloffExponent float64) (*SpotLight, error) {
	if direction.IsZero() {
		return nil, ErrZeroDirection
	}

	return &SpotLight{
		PointLight:      PointLight{position: position, color: color, attenuation: attenuation},
		direction:       direction.Normalize(),
		cutoffCos:       math.Cos(thetaDegrees * math.Pi / 180.0),
		falloffExponent: falloffExponent,
	}, nil
}

func (sl *SpotLight) Type() LightType      { return LightTypeSpot }
func (sl *SpotLight) Direction() core.Vec3 { return sl.direction }
func (sl *SpotLight) CutoffCos() float64   { return sl.cutoffCos }

// Attenuation implements the Light interface: radial × angular, clamped into [0,1]
func (sl *SpotLight) Attenuation(point core.Vec3, distance float64) float64 {
	return clamp01(sl.attenuation.Radial(distance) * sl.angular(point))
}

// angular calculates the spot falloff from the angle between the aim direction and the point
func (sl *SpotLight) angular(point core.Vec3) float64 {
	lightToPoint := point.Subtract(sl.position).Normalize()
	cosAngle := lightToPoint.Dot(sl.direction)

	// Outside the cone
	if cosAngle < sl.cutoffCos {
		return 0
	}

	// A wide cone can admit points behind the light; they get no light rather than NaN
	if cosAngle <= 0 {
		return 0
	}

	return math.Pow(cosAngle, sl.falloffExponent)
}
