package material

import (
	"math"

	"github.com/gcottrell13/cs430-project3/pkg/core"
)

// VacuumIndex is the refractive index outside every object
const VacuumIndex = 1.0

// Refraction describes one transmission event at a surface
type Refraction struct {
	Direction     core.Vec3 // Unit transmitted direction (valid when !TotalInternal)
	Entering      bool      // Ray crosses from vacuum into the object
	TotalInternal bool      // No transmitted angle exists
}

// Refract bends a unit direction through a surface with the given index.
// The outward normal is never flipped by callers; the side is decided here from
// the sign of normal·direction. The transmitted direction interpolates between
// the inverted facing normal and the incoming direction by θt/θi.
func Refract(direction, normal core.Vec3, refractiveIndex float64) Refraction {
	entering := normal.Dot(direction) < 0

	fromIndex, toIndex := VacuumIndex, refractiveIndex
	facing := normal
	if !entering {
		fromIndex, toIndex = refractiveIndex, VacuumIndex
		facing = normal.Negate()
	}

	cosIncident := math.Max(-1, math.Min(1, direction.Negate().Dot(facing)))
	incidentAngle := math.Acos(cosIncident)

	sinTransmitted := fromIndex * math.Sin(incidentAngle) / toIndex
	if sinTransmitted > 1 || sinTransmitted < -1 {
		return Refraction{Entering: entering, TotalInternal: true}
	}
	transmittedAngle := math.Asin(sinTransmitted)

	// Head-on rays pass straight through
	if incidentAngle == 0 {
		return Refraction{Direction: direction, Entering: entering}
	}

	bent := core.Lerp(facing.Negate(), direction, transmittedAngle/incidentAngle).Normalize()
	if bent.IsZero() {
		bent = direction
	}
	return Refraction{Direction: bent, Entering: entering}
}
