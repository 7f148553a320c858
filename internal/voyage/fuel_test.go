package voyage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rawataarushi/marithon/internal/models"
)

func fuelFixture(windSpeed, waveHeight float64) *models.WaypointWeather {
	return weatherFixture(
		models.WeatherSnapshot{WindSpeed: windSpeed},
		models.OceanSnapshot{WaveHeight: waveHeight},
	)
}

func TestFuelEstimator_CalmBaseline(t *testing.T) {
	est := NewFuelEstimator(DefaultFuelConfig())

	got := est.Estimate(20, 0, 10, fuelFixture(0, 0))

	assert.Equal(t, 1.0, got.WeatherMultiplier)
	assert.Equal(t, 1.0, got.SpeedFactor)
	assert.Equal(t, 1.0, got.ResistanceFactor)
	assert.InDelta(t, 1260, got.Current, 1e-9)
	assert.InDelta(t, 1260*10*2, got.Remaining, 1e-9) // 10 legs at 2 h each
	assert.InDelta(t, got.Current+got.Remaining, got.Total, 1e-9)
}

func TestFuelEstimator_WeatherMultiplier(t *testing.T) {
	est := NewFuelEstimator(DefaultFuelConfig())

	tests := []struct {
		name       string
		windSpeed  float64
		waveHeight float64
		want       float64
	}{
		{name: "calm", windSpeed: 0, waveHeight: 0, want: 1.0},
		{name: "at thresholds stays base", windSpeed: 10, waveHeight: 2, want: 1.0},
		{name: "moderate wind", windSpeed: 12, waveHeight: 0, want: 1.1},
		{name: "strong wind", windSpeed: 16, waveHeight: 0, want: 1.2},
		{name: "moderate seas", windSpeed: 0, waveHeight: 2.5, want: 1.15},
		{name: "rough seas", windSpeed: 0, waveHeight: 3.5, want: 1.25},
		{name: "moderate both compound", windSpeed: 12, waveHeight: 2.5, want: 1.1 * 1.15},
		{name: "strong both compound", windSpeed: 16, waveHeight: 3.5, want: 1.2 * 1.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := est.Estimate(20, 0, 10, fuelFixture(tt.windSpeed, tt.waveHeight))
			assert.InDelta(t, tt.want, got.WeatherMultiplier, 1e-9)
		})
	}
}

func TestFuelEstimator_MultiplierMonotonic(t *testing.T) {
	est := NewFuelEstimator(DefaultFuelConfig())

	prev := 0.0
	for wind := 0.0; wind <= 25; wind += 0.5 {
		got := est.Estimate(20, 0, 10, fuelFixture(wind, 0))
		assert.GreaterOrEqual(t, got.WeatherMultiplier, prev, "wind %v", wind)
		prev = got.WeatherMultiplier
	}

	prev = 0.0
	for wave := 0.0; wave <= 6; wave += 0.25 {
		got := est.Estimate(20, 0, 10, fuelFixture(0, wave))
		assert.GreaterOrEqual(t, got.WeatherMultiplier, prev, "wave %v", wave)
		prev = got.WeatherMultiplier
	}
}

func TestFuelEstimator_SpeedFactorFloor(t *testing.T) {
	est := NewFuelEstimator(DefaultFuelConfig())

	// At 4 kn against a 20 kn base the raw factor would be 0.2.
	got := est.Estimate(4, 0, 10, nil)
	assert.Equal(t, 0.5, got.SpeedFactor)
}

func TestFuelEstimator_SlowSpeedBurnsMore(t *testing.T) {
	est := NewFuelEstimator(DefaultFuelConfig())

	atBase := est.Estimate(20, 0, 10, nil)
	slowed := est.Estimate(15, 0, 10, nil)

	assert.Greater(t, slowed.Current, atBase.Current,
		"fighting weather at reduced SOG must burn more per hour")
	// resistanceFactor = 1 + (5/20)*0.5, speedFactor = 15/20
	assert.InDelta(t, 1260*1.125/0.75, slowed.Current, 1e-9)
}

func TestFuelEstimator_RemainingShrinksAlongRoute(t *testing.T) {
	est := NewFuelEstimator(DefaultFuelConfig())

	start := est.Estimate(20, 0, 10, nil)
	nearEnd := est.Estimate(20, 9, 10, nil)

	assert.Greater(t, start.Remaining, nearEnd.Remaining)
	assert.InDelta(t, 1260*2, nearEnd.Remaining, 1e-9) // one leg left
}

func TestFuelEstimator_ParameterizedBaseSpeed(t *testing.T) {
	cfg := DefaultFuelConfig()
	cfg.BaseSpeed = 15

	est := NewFuelEstimator(cfg)
	got := est.Estimate(15, 0, 10, nil)

	assert.Equal(t, 1.0, got.SpeedFactor)
	assert.Equal(t, 1.0, got.ResistanceFactor)
	assert.InDelta(t, cfg.BaseConsumption, got.Current, 1e-9)
}
