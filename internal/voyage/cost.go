package voyage

import (
	"math"

	"github.com/rawataarushi/marithon/internal/models"
)

// CostEstimator projects the USD cost of completing a route from a waypoint.
type CostEstimator struct {
	cfg CostConfig
}

// NewCostEstimator returns an estimator using the given fare table.
func NewCostEstimator(cfg CostConfig) *CostEstimator {
	return &CostEstimator{cfg: cfg}
}

// remainingPortCalls counts the major port calls still ahead, per the
// configured policy. The heuristic policy assumes one major call per ten
// remaining waypoints; the exact policy counts the route's remaining markers.
func (e *CostEstimator) remainingPortCalls(route *models.Route, waypointIndex, totalWaypoints int) int {
	if e.cfg.PortFeePolicy == PortFeeExact && route != nil {
		return route.MajorPortsAfter(waypointIndex)
	}
	return (totalWaypoints - waypointIndex) / 10
}

// heavyWeather reports whether the single-step cost surcharge applies.
func (e *CostEstimator) heavyWeather(wx *models.WaypointWeather) bool {
	if !wx.HasData() {
		return false
	}
	return wx.Weather.WindSpeed > e.cfg.WindAbove || wx.Ocean.WaveHeight > e.cfg.WaveAbove
}

// Estimate computes the remaining route cost from the current waypoint. The
// weather surcharge is a single step applied to the whole base cost, unlike
// the compounding fuel multipliers.
func (e *CostEstimator) Estimate(fuel models.FuelConsumption, waypointIndex, totalWaypoints int, wx *models.WaypointWeather, route *models.Route) models.RouteCost {
	remainingHours := float64(totalWaypoints-waypointIndex) * e.cfg.HoursPerLeg

	fuelCost := fuel.Total * e.cfg.FuelPrice
	operational := e.cfg.OperationalPerHour * remainingHours
	portFees := float64(e.remainingPortCalls(route, waypointIndex, totalWaypoints)) * e.cfg.PortFee

	canalFees := 0.0
	if route != nil && route.Style.IsCanal() {
		canalFees = e.cfg.CanalFee
	}

	weatherMult := 1.0
	if e.heavyWeather(wx) {
		weatherMult = e.cfg.WeatherSurcharge
	}

	baseCost := fuelCost + operational + portFees + canalFees
	total := baseCost * weatherMult

	return models.RouteCost{
		FuelCost:          fuelCost,
		OperationalCost:   operational,
		PortFees:          portFees,
		CanalFees:         canalFees,
		WeatherMultiplier: weatherMult,
		BaseCost:          baseCost,
		Total:             total,
		Breakdown: models.CostBreakdown{
			Fuel:        fuelCost,
			Operational: operational,
			Ports:       portFees,
			Canal:       canalFees,
			Weather:     math.Max(0, baseCost*(weatherMult-1)),
		},
	}
}
