// Package sim drives the scripted voyage: weather is prefetched for every
// waypoint, then the ship advances one waypoint per tick, recomputing speed,
// fuel, and cost from the local snapshot at each step.
package sim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rawataarushi/marithon/internal/geo"
	"github.com/rawataarushi/marithon/internal/models"
	"github.com/rawataarushi/marithon/internal/voyage"
	"github.com/rawataarushi/marithon/internal/weather"
)

// ErrEmptyRoute is returned when a stepper is constructed over a route with
// no waypoints.
var ErrEmptyRoute = errors.New("route has no waypoints")

// Step is the state of the voyage at one waypoint.
type Step struct {
	WaypointIndex  int
	TotalWaypoints int
	Position       models.Coordinate
	Course         float64 // degrees toward the next waypoint
	Weather        *models.WaypointWeather
	Speed          models.SpeedResult
	Fuel           models.FuelConsumption
	Cost           models.RouteCost
	LegDistanceKm  float64 // to the next waypoint, 0 at the final one
	RemainingKm    float64 // from here to the end of the route
	ETAHours       float64 // remaining distance at current SOG, 0 when becalmed
}

// Stepper walks a route waypoint by waypoint. It is not safe for concurrent
// use; the UI and the headless runner each own one.
type Stepper struct {
	route     models.Route
	baseSpeed float64
	calc      *voyage.Calculator
	fuelEst   *voyage.FuelEstimator
	costEst   *voyage.CostEstimator
	provider  weather.Provider

	table      []*models.WaypointWeather
	prefetched bool
}

// New builds a stepper for the route. baseSpeed is the ship's service speed
// in knots.
func New(route models.Route, baseSpeed float64, ship voyage.ShipConfig, fuelCfg voyage.FuelConfig, costCfg voyage.CostConfig, provider weather.Provider) (*Stepper, error) {
	if len(route.Waypoints) == 0 {
		return nil, ErrEmptyRoute
	}
	if baseSpeed <= 0 {
		return nil, voyage.ErrNonPositiveBaseSpeed
	}

	return &Stepper{
		route:     route,
		baseSpeed: baseSpeed,
		calc:      voyage.NewCalculator(ship),
		fuelEst:   voyage.NewFuelEstimator(fuelCfg),
		costEst:   voyage.NewCostEstimator(costCfg),
		provider:  provider,
	}, nil
}

// Prefetch fetches weather for every waypoint and blocks until all fetches
// finish. Stepping reads the resulting table, so this must complete first.
func (s *Stepper) Prefetch(ctx context.Context) {
	s.table = weather.PrefetchRoute(ctx, s.provider, s.route.Waypoints)
	s.prefetched = true
}

// WeatherAt returns the prefetched snapshot for a waypoint, or nil when none
// was available.
func (s *Stepper) WeatherAt(i int) *models.WaypointWeather {
	if i < 0 || i >= len(s.table) {
		return nil
	}
	return s.table[i]
}

// Steps returns the number of waypoints in the route.
func (s *Stepper) Steps() int {
	return len(s.route.Waypoints)
}

// StepAt computes the voyage state at waypoint i using the prefetched
// weather table.
func (s *Stepper) StepAt(i int) (Step, error) {
	wps := s.route.Waypoints
	if i < 0 || i >= len(wps) {
		return Step{}, fmt.Errorf("waypoint index %d out of range [0,%d)", i, len(wps))
	}
	if !s.prefetched {
		return Step{}, errors.New("weather not prefetched")
	}

	course := s.courseAt(i)
	wx := s.WeatherAt(i)

	speed, err := s.calc.WeatherAffectedSpeed(s.baseSpeed, wx, course)
	if err != nil {
		return Step{}, fmt.Errorf("computing speed at waypoint %d: %w", i, err)
	}

	fuel := s.fuelEst.Estimate(speed.SOG, i, len(wps), wx)
	cost := s.costEst.Estimate(fuel, i, len(wps), wx, &s.route)

	legDistance := 0.0
	if i+1 < len(wps) {
		legDistance = geo.Haversine(wps[i], wps[i+1])
	}

	remaining := geo.RouteDistance(wps[i:])
	eta := 0.0
	if tt, err := geo.TravelTimeForDistance(remaining, speed.SOG); err == nil {
		eta = tt.TimeHours
	}

	return Step{
		WaypointIndex:  i,
		TotalWaypoints: len(wps),
		Position:       wps[i],
		Course:         course,
		Weather:        wx,
		Speed:          speed,
		Fuel:           fuel,
		Cost:           cost,
		LegDistanceKm:  legDistance,
		RemainingKm:    remaining,
		ETAHours:       eta,
	}, nil
}

// courseAt is the course sailed from waypoint i: toward the next waypoint,
// or the arrival course at the final one.
func (s *Stepper) courseAt(i int) float64 {
	wps := s.route.Waypoints
	switch {
	case i+1 < len(wps):
		return geo.InitialBearing(wps[i], wps[i+1])
	case i > 0:
		return geo.InitialBearing(wps[i-1], wps[i])
	default:
		return 0
	}
}

// Run prefetches weather, then emits one step per interval on the returned
// channel until the route ends or the context is canceled. An interval of
// zero emits steps back to back. The channel is closed when the run ends.
func (s *Stepper) Run(ctx context.Context, interval time.Duration) <-chan Step {
	out := make(chan Step)

	go func() {
		defer close(out)
		s.Prefetch(ctx)

		for i := 0; i < s.Steps(); i++ {
			step, err := s.StepAt(i)
			if err != nil {
				return
			}

			select {
			case out <- step:
			case <-ctx.Done():
				return
			}

			if interval > 0 && i+1 < s.Steps() {
				select {
				case <-time.After(interval):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
