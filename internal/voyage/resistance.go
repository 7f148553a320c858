package voyage

import (
	"math"

	"github.com/rawataarushi/marithon/internal/models"
)

// directionConvention states what a force's direction angle means. Wind is
// reported meteorologically (the direction it blows FROM); swell and current
// are reported as propagation directions (where they flow TO). The two must
// not be mixed up: a single projection function owns the conversion so the
// convention is applied exactly once.
type directionConvention int

const (
	conventionToward directionConvention = iota
	conventionFrom
)

// Calculator resolves environmental forces along a ship's course.
type Calculator struct {
	ship ShipConfig
}

// NewCalculator returns a calculator for the given vessel.
func NewCalculator(ship ShipConfig) *Calculator {
	return &Calculator{ship: ship}
}

// normalizeAngle maps any angle in degrees into (-180, 180].
func normalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a > 180 {
		a -= 360
	} else if a <= -180 {
		a += 360
	}
	return a
}

// alongCourse projects a force of the given magnitude and direction onto the
// ship's course. Returns the normalized relative angle in degrees and the
// signed along-course component in the magnitude's own unit.
func alongCourse(magnitude, direction, course float64, conv directionConvention) (relAngle, component float64) {
	if conv == conventionFrom {
		direction = math.Mod(direction+180, 360)
	}
	relAngle = normalizeAngle(direction - course)
	component = magnitude * math.Cos(relAngle*math.Pi/180)
	return relAngle, component
}

// classify maps a signed along-course component to a force class. In this
// model a positive component always means the force costs speed and a
// negative one assists; zero magnitude is neutral.
func classify(magnitude, component float64) models.ForceClass {
	switch {
	case magnitude == 0 || component == 0:
		return models.ForceNeutral
	case component > 0:
		return models.ForceOpposing
	default:
		return models.ForceAssisting
	}
}

// WindResistance resolves wind against the ship's course. windDirection uses
// the meteorological "from" convention. A positive along-course component is
// a headwind and produces a positive speed impact (knots to subtract from
// base speed); a tailwind yields a negative impact.
func (c *Calculator) WindResistance(windSpeed, windDirection, course float64) models.ResistanceResult {
	rel, component := alongCourse(windSpeed, windDirection, course, conventionFrom)

	// Drag force on the exposed transverse area.
	force := 0.5 * c.ship.AirDensity * c.ship.DragCoefficient *
		c.ship.TransverseArea() * windSpeed * windSpeed

	return models.ResistanceResult{
		RelativeAngle: rel,
		AlongCourse:   component,
		SpeedImpact:   component * c.ship.WindResistanceCoeff,
		Force:         force,
		Class:         classify(windSpeed, component),
	}
}

// WaveResistance resolves wind-sea resistance. Only a head-on component costs
// speed; a following sea contributes no loss rather than a gain.
func (c *Calculator) WaveResistance(waveHeight, waveDirection, course float64) models.ResistanceResult {
	return c.seaResistance(waveHeight, waveDirection, course, c.ship.WaveLossPerMeter)
}

// SwellResistance resolves swell resistance with the same shape as
// WaveResistance but a gentler loss coefficient.
func (c *Calculator) SwellResistance(swellHeight, swellDirection, course float64) models.ResistanceResult {
	return c.seaResistance(swellHeight, swellDirection, course, c.ship.SwellLossPerMeter)
}

func (c *Calculator) seaResistance(height, direction, course, lossPerMeter float64) models.ResistanceResult {
	rel, component := alongCourse(height, direction, course, conventionToward)

	return models.ResistanceResult{
		RelativeAngle: rel,
		AlongCourse:   component,
		SpeedImpact:   math.Max(0, component) * lossPerMeter,
		Class:         classify(height, component),
	}
}

// CurrentEffect resolves the surface current along the ship's course. Unlike
// the sea-state losses the component is not clamped: a favorable current adds
// to speed over ground and an adverse one subtracts.
func (c *Calculator) CurrentEffect(currentSpeed, currentDirection, course float64) models.ResistanceResult {
	rel, component := alongCourse(currentSpeed, currentDirection, course, conventionToward)

	return models.ResistanceResult{
		RelativeAngle: rel,
		AlongCourse:   component,
		SpeedImpact:   component,
		// Favorable current assists, adverse opposes: the opposite sign
		// mapping from the loss terms.
		Class: invert(classify(currentSpeed, component)),
	}
}

func invert(c models.ForceClass) models.ForceClass {
	switch c {
	case models.ForceOpposing:
		return models.ForceAssisting
	case models.ForceAssisting:
		return models.ForceOpposing
	default:
		return models.ForceNeutral
	}
}
