package voyage

import (
	"math"

	"github.com/rawataarushi/marithon/internal/models"
)

// WeatherAffectedSpeed composes the four resistance terms for one waypoint
// into a speed-over-ground and the power/fuel penalty required to hold
// schedule. A missing weather or ocean snapshot is not an error: the ship is
// assumed to make its base speed with no penalty, and the result carries zero
// factors.
//
// Wave resistance is deliberately computed from the swell direction; the
// model treats wind sea as co-directional with swell since providers rarely
// report a separate wind-wave direction.
func (c *Calculator) WeatherAffectedSpeed(baseSpeed float64, wx *models.WaypointWeather, course float64) (models.SpeedResult, error) {
	if baseSpeed <= 0 {
		return models.SpeedResult{}, ErrNonPositiveBaseSpeed
	}

	if !wx.HasData() {
		return models.SpeedResult{SOG: baseSpeed, STW: baseSpeed}, nil
	}

	wind := c.WindResistance(wx.Weather.WindSpeed, wx.Weather.WindDirection, course)
	wave := c.WaveResistance(wx.Ocean.WaveHeight, wx.Ocean.SwellDirection, course)
	swell := c.SwellResistance(wx.Ocean.SwellHeight, wx.Ocean.SwellDirection, course)
	current := c.CurrentEffect(wx.Ocean.CurrentSpeed, wx.Ocean.CurrentDirection, course)

	totalImpact := current.SpeedImpact - wind.SpeedImpact - wave.SpeedImpact - swell.SpeedImpact

	sog := math.Max(0, baseSpeed+totalImpact)
	stw := math.Max(c.ship.MinSTW, baseSpeed-totalImpact)

	// Propulsion power scales with the cube of required speed through water.
	powerIncrease := math.Max(0, c.ship.BasePower*math.Pow(stw/baseSpeed, 3)-c.ship.BasePower)
	fuelIncrease := math.Max(0, powerIncrease*c.ship.SFOC)

	// Display-only aggregate: the sea-state terms are knots scaled by 1000,
	// not newtons. Kept for parity with the route dashboard, not physics.
	totalResistance := wind.Force + wave.SpeedImpact*1000 + swell.SpeedImpact*1000

	return models.SpeedResult{
		SOG:             sog,
		STW:             stw,
		PowerIncrease:   powerIncrease,
		FuelIncrease:    fuelIncrease,
		TotalResistance: totalResistance,
		Wind:            wind,
		Wave:            wave,
		Swell:           swell,
		Current:         current,
	}, nil
}
