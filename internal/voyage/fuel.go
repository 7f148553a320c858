package voyage

import (
	"math"

	"github.com/rawataarushi/marithon/internal/models"
)

// FuelEstimator projects fuel burn over the remainder of a route.
type FuelEstimator struct {
	cfg FuelConfig
}

// NewFuelEstimator returns an estimator using the given fuel model.
func NewFuelEstimator(cfg FuelConfig) *FuelEstimator {
	return &FuelEstimator{cfg: cfg}
}

// weatherMultiplier compounds the wind and wave fuel surcharges. Each family
// contributes at most one step, but the families multiply together.
func (e *FuelEstimator) weatherMultiplier(wx *models.WaypointWeather) float64 {
	mult := 1.0
	if !wx.HasData() {
		return mult
	}

	switch wind := wx.Weather.WindSpeed; {
	case wind > e.cfg.WindStrongAbove:
		mult *= e.cfg.WindStrongMult
	case wind > e.cfg.WindModerateAbove:
		mult *= e.cfg.WindModerateMult
	}

	switch wave := wx.Ocean.WaveHeight; {
	case wave > e.cfg.WaveRoughAbove:
		mult *= e.cfg.WaveRoughMult
	case wave > e.cfg.WaveModerateAbove:
		mult *= e.cfg.WaveModerateMult
	}

	return mult
}

// Estimate computes the fuel burn at the current waypoint and projects it
// over the remaining legs, assuming a fixed schedule of HoursPerLeg per
// waypoint. weatherAffectedSpeed is the SOG produced by the speed composer.
func (e *FuelEstimator) Estimate(weatherAffectedSpeed float64, waypointIndex, totalWaypoints int, wx *models.WaypointWeather) models.FuelConsumption {
	base := e.cfg.BaseSpeed

	speedFactor := math.Max(0.5, weatherAffectedSpeed/base)
	resistanceFactor := 1 + (math.Abs(weatherAffectedSpeed-base)/base)*0.5
	weatherMult := e.weatherMultiplier(wx)

	current := e.cfg.BaseConsumption * resistanceFactor * weatherMult / speedFactor
	remaining := current * float64(totalWaypoints-waypointIndex) * e.cfg.HoursPerLeg

	return models.FuelConsumption{
		Current:           current,
		Remaining:         remaining,
		Total:             current + remaining,
		WeatherMultiplier: weatherMult,
		SpeedFactor:       speedFactor,
		ResistanceFactor:  resistanceFactor,
	}
}
