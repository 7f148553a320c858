package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawataarushi/marithon/internal/models"
)

const forecastJSON = `{
	"current": {
		"temperature_2m": 18.5,
		"wind_speed_10m": 12.3,
		"wind_direction_10m": 245.0,
		"visibility": 24140.0
	}
}`

const marineJSON = `{
	"current": {
		"wave_height": 2.4,
		"swell_wave_height": 1.1,
		"swell_wave_direction": 210.0,
		"ocean_current_velocity": 3.704,
		"ocean_current_direction": 90.0,
		"sea_surface_temperature": 16.2
	}
}`

func newTestClient(forecast, marine *httptest.Server) *OpenMeteoClient {
	return &OpenMeteoClient{
		forecastURL: forecast.URL,
		marineURL:   marine.URL,
		httpClient:  &http.Client{Timeout: 5 * time.Second},
		userAgent:   "marithon-test",
	}
}

func TestOpenMeteoClient_FetchWeather(t *testing.T) {
	forecast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "marithon-test", r.Header.Get("User-Agent"))
		assert.Equal(t, "1.3000", r.URL.Query().Get("latitude"))
		assert.Equal(t, "103.8000", r.URL.Query().Get("longitude"))
		assert.Equal(t, "ms", r.URL.Query().Get("wind_speed_unit"))
		w.Write([]byte(forecastJSON))
	}))
	defer forecast.Close()

	marine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1.3000", r.URL.Query().Get("latitude"))
		w.Write([]byte(marineJSON))
	}))
	defer marine.Close()

	client := newTestClient(forecast, marine)
	wx, err := client.FetchWeather(context.Background(), models.Coordinate{Lat: 1.3, Lon: 103.8})
	require.NoError(t, err)
	require.True(t, wx.HasData())

	assert.InDelta(t, 12.3, wx.Weather.WindSpeed, 1e-9)
	assert.InDelta(t, 245.0, wx.Weather.WindDirection, 1e-9)
	assert.InDelta(t, 18.5, wx.Weather.Temperature, 1e-9)

	assert.InDelta(t, 2.4, wx.Ocean.WaveHeight, 1e-9)
	assert.InDelta(t, 1.1, wx.Ocean.SwellHeight, 1e-9)
	assert.InDelta(t, 210.0, wx.Ocean.SwellDirection, 1e-9)
	assert.InDelta(t, 2.0, wx.Ocean.CurrentSpeed, 1e-9, "km/h converted to knots")
	assert.InDelta(t, 24.14, wx.Ocean.Visibility, 1e-9, "meters converted to km")
	assert.InDelta(t, 16.2, wx.Ocean.WaterTemp, 1e-9)
	assert.Equal(t, models.Coordinate{Lat: 1.3, Lon: 103.8}, wx.Coordinates)
}

func TestOpenMeteoClient_ForecastErrorFails(t *testing.T) {
	forecast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer forecast.Close()

	marine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(marineJSON))
	}))
	defer marine.Close()

	client := newTestClient(forecast, marine)
	_, err := client.FetchWeather(context.Background(), models.Coordinate{Lat: 0, Lon: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching forecast")
	assert.Contains(t, err.Error(), "429")
}

func TestOpenMeteoClient_MarineErrorFails(t *testing.T) {
	forecast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(forecastJSON))
	}))
	defer forecast.Close()

	marine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer marine.Close()

	client := newTestClient(forecast, marine)
	_, err := client.FetchWeather(context.Background(), models.Coordinate{Lat: 0, Lon: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching marine conditions")
}

type failingProvider struct{}

func (failingProvider) FetchWeather(context.Context, models.Coordinate) (*models.WaypointWeather, error) {
	return nil, errors.New("boom")
}

func TestWithFallback_SubstitutesOnError(t *testing.T) {
	p := NewWithFallback(failingProvider{})

	coord := models.Coordinate{Lat: 40, Lon: -70}
	wx, err := p.FetchWeather(context.Background(), coord)
	require.NoError(t, err)
	assert.True(t, wx.HasData())

	// The substitute must match what the generator produces directly.
	want, err := NewSynthetic().FetchWeather(context.Background(), coord)
	require.NoError(t, err)
	assert.Equal(t, want.Weather, wx.Weather)
}

func TestWithFallback_PassesLiveDataThrough(t *testing.T) {
	forecast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(forecastJSON))
	}))
	defer forecast.Close()

	marine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(marineJSON))
	}))
	defer marine.Close()

	p := NewWithFallback(newTestClient(forecast, marine))
	wx, err := p.FetchWeather(context.Background(), models.Coordinate{Lat: 1, Lon: 1})
	require.NoError(t, err)
	assert.InDelta(t, 12.3, wx.Weather.WindSpeed, 1e-9)
}
