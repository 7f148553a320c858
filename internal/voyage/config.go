// Package voyage implements the weather-affected speed, fuel, and cost
// estimators for a ship following a trade route. All calculations are pure
// functions of a weather snapshot, a course, and injected configuration;
// nothing in this package holds mutable state.
package voyage

import "errors"

// ErrNonPositiveBaseSpeed is returned when a speed calculation is requested
// with a base speed that would make the power-cube scaling undefined.
var ErrNonPositiveBaseSpeed = errors.New("base speed must be greater than zero")

// PortFeePolicy selects how remaining port calls are counted when projecting
// port fees.
type PortFeePolicy string

const (
	// PortFeeHeuristic assumes one major port call per ten remaining
	// waypoints.
	PortFeeHeuristic PortFeePolicy = "heuristic"
	// PortFeeExact counts the route's remaining port markers flagged major.
	PortFeeExact PortFeePolicy = "exact"
)

// ShipConfig holds the physical and hydrodynamic parameters of the modeled
// vessel. Defaults describe a mid-size container ship.
type ShipConfig struct {
	// Beam and Height define the transverse area exposed to wind, meters.
	Beam   float64 `mapstructure:"beam"`
	Height float64 `mapstructure:"height"`

	AirDensity      float64 `mapstructure:"air_density"`      // kg/m3
	DragCoefficient float64 `mapstructure:"drag_coefficient"` // dimensionless

	// WindResistanceCoeff converts along-course relative wind (m/s) into a
	// speed impact in knots.
	WindResistanceCoeff float64 `mapstructure:"wind_resistance_coeff"`
	// WaveLossPerMeter and SwellLossPerMeter convert a head-on sea height
	// component (meters) into knots of speed loss.
	WaveLossPerMeter  float64 `mapstructure:"wave_loss_per_meter"`
	SwellLossPerMeter float64 `mapstructure:"swell_loss_per_meter"`

	BasePower float64 `mapstructure:"base_power"` // kW at calm-water service speed
	SFOC      float64 `mapstructure:"sfoc"`       // specific fuel consumption, kg/kWh
	MinSTW    float64 `mapstructure:"min_stw"`    // knots, floor for required speed through water
}

// DefaultShipConfig returns the stock vessel parameters.
func DefaultShipConfig() ShipConfig {
	return ShipConfig{
		Beam:                32,
		Height:              25,
		AirDensity:          1.225,
		DragCoefficient:     0.8,
		WindResistanceCoeff: 0.025,
		WaveLossPerMeter:    0.3,
		SwellLossPerMeter:   0.2,
		BasePower:           7000,
		SFOC:                0.18,
		MinSTW:              5,
	}
}

// TransverseArea is the wind-facing cross section in square meters.
func (c ShipConfig) TransverseArea() float64 {
	return c.Beam * c.Height
}

// FuelConfig holds the fuel-consumption model parameters.
type FuelConfig struct {
	// BaseConsumption is the calm-water burn at BaseSpeed, kg/h.
	BaseConsumption float64 `mapstructure:"base_consumption"`
	// BaseSpeed normalizes the speed and resistance factors, knots.
	BaseSpeed float64 `mapstructure:"base_speed"`
	// HoursPerLeg is the scheduling assumption for one waypoint leg.
	HoursPerLeg float64 `mapstructure:"hours_per_leg"`

	// Weather fuel surcharges. Wind thresholds are m/s, wave thresholds
	// meters; the two families compound multiplicatively.
	WindStrongAbove   float64 `mapstructure:"wind_strong_above"`
	WindStrongMult    float64 `mapstructure:"wind_strong_mult"`
	WindModerateAbove float64 `mapstructure:"wind_moderate_above"`
	WindModerateMult  float64 `mapstructure:"wind_moderate_mult"`
	WaveRoughAbove    float64 `mapstructure:"wave_rough_above"`
	WaveRoughMult     float64 `mapstructure:"wave_rough_mult"`
	WaveModerateAbove float64 `mapstructure:"wave_moderate_above"`
	WaveModerateMult  float64 `mapstructure:"wave_moderate_mult"`
}

// DefaultFuelConfig returns the stock fuel model.
func DefaultFuelConfig() FuelConfig {
	return FuelConfig{
		BaseConsumption:   1260,
		BaseSpeed:         20,
		HoursPerLeg:       2,
		WindStrongAbove:   15,
		WindStrongMult:    1.2,
		WindModerateAbove: 10,
		WindModerateMult:  1.1,
		WaveRoughAbove:    3,
		WaveRoughMult:     1.25,
		WaveModerateAbove: 2,
		WaveModerateMult:  1.15,
	}
}

// CostConfig holds the fare table used by the route cost estimator.
type CostConfig struct {
	FuelPrice          float64       `mapstructure:"fuel_price"`           // USD/kg
	OperationalPerHour float64       `mapstructure:"operational_per_hour"` // USD/h
	PortFee            float64       `mapstructure:"port_fee"`             // USD per call
	CanalFee           float64       `mapstructure:"canal_fee"`            // USD per canal transit
	HoursPerLeg        float64       `mapstructure:"hours_per_leg"`
	WeatherSurcharge   float64       `mapstructure:"weather_surcharge"` // multiplier in heavy weather
	PortFeePolicy      PortFeePolicy `mapstructure:"port_fee_policy"`

	// Heavy-weather thresholds for the single-step cost surcharge.
	WindAbove float64 `mapstructure:"wind_above"` // m/s
	WaveAbove float64 `mapstructure:"wave_above"` // meters
}

// DefaultCostConfig returns the stock fare table with the heuristic port-fee
// policy.
func DefaultCostConfig() CostConfig {
	return CostConfig{
		FuelPrice:          0.8,
		OperationalPerHour: 5000,
		PortFee:            15000,
		CanalFee:           500000,
		HoursPerLeg:        2,
		WeatherSurcharge:   1.1,
		PortFeePolicy:      PortFeeHeuristic,
		WindAbove:          15,
		WaveAbove:          3,
	}
}
