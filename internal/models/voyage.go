package models

// ForceClass classifies a resistance component relative to the ship's course.
type ForceClass int

const (
	// ForceNeutral covers zero-magnitude forces and pure beam components.
	ForceNeutral ForceClass = iota
	// ForceOpposing means the component works against the course (headwind,
	// head sea, adverse current).
	ForceOpposing
	// ForceAssisting means the component works with the course (tailwind,
	// following sea, favorable current).
	ForceAssisting
)

// String returns a display label for the classification.
func (c ForceClass) String() string {
	switch c {
	case ForceOpposing:
		return "opposing"
	case ForceAssisting:
		return "assisting"
	default:
		return "neutral"
	}
}

// ResistanceResult is the along-course resolution of one environmental force.
type ResistanceResult struct {
	RelativeAngle float64 // degrees in (-180, 180], force direction minus ship course
	AlongCourse   float64 // signed magnitude projected onto the course
	SpeedImpact   float64 // knots; sign/clamping semantics differ per force
	Force         float64 // newtons; only populated for wind
	Class         ForceClass
}

// SpeedResult is the output of the composite speed calculator.
type SpeedResult struct {
	SOG             float64 // speed over ground, knots, >= 0
	STW             float64 // required speed through water, knots, >= 5
	PowerIncrease   float64 // kW above calm-water base power, >= 0
	FuelIncrease    float64 // kg/h above calm-water burn, >= 0
	TotalResistance float64 // display-only aggregate, not physically rigorous
	Wind            ResistanceResult
	Wave            ResistanceResult
	Swell           ResistanceResult
	Current         ResistanceResult
}

// FuelConsumption is the fuel projection at one waypoint.
type FuelConsumption struct {
	Current           float64 // kg/h at this waypoint
	Remaining         float64 // kg projected over the remaining legs
	Total             float64 // kg, Current + Remaining
	WeatherMultiplier float64
	SpeedFactor       float64
	ResistanceFactor  float64
}

// CostBreakdown itemizes a route cost estimate.
type CostBreakdown struct {
	Fuel        float64
	Operational float64
	Ports       float64
	Canal       float64
	Weather     float64 // surcharge over base, always >= 0
}

// RouteCost is the projected cost of completing the route from the current
// waypoint, in USD.
type RouteCost struct {
	FuelCost          float64
	OperationalCost   float64
	PortFees          float64
	CanalFees         float64
	WeatherMultiplier float64
	BaseCost          float64
	Total             float64
	Breakdown         CostBreakdown
}
