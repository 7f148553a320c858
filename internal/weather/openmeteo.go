package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rawataarushi/marithon/internal/models"
)

// OpenMeteoClient implements Provider against the Open-Meteo forecast and
// marine APIs. Both endpoints are unauthenticated GETs.
type OpenMeteoClient struct {
	forecastURL string
	marineURL   string
	httpClient  *http.Client
	userAgent   string
}

// NewOpenMeteoClient creates a client with production endpoints.
func NewOpenMeteoClient() *OpenMeteoClient {
	return &OpenMeteoClient{
		forecastURL: "https://api.open-meteo.com/v1/forecast",
		marineURL:   "https://marine-api.open-meteo.com/v1/marine",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: "Marithon/1.0 (github.com/rawataarushi/marithon)",
	}
}

// FetchWeather retrieves the current atmospheric and marine conditions for a
// coordinate. Units follow the estimator contract: wind in m/s, heights in
// meters, current speed converted to knots at this boundary.
func (c *OpenMeteoClient) FetchWeather(ctx context.Context, coord models.Coordinate) (*models.WaypointWeather, error) {
	forecast, err := c.fetchForecast(ctx, coord)
	if err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}

	marine, err := c.fetchMarine(ctx, coord)
	if err != nil {
		return nil, fmt.Errorf("fetching marine conditions: %w", err)
	}

	return &models.WaypointWeather{
		Weather: &models.WeatherSnapshot{
			WindSpeed:     forecast.Current.WindSpeed,
			WindDirection: forecast.Current.WindDirection,
			Temperature:   forecast.Current.Temperature,
		},
		Ocean: &models.OceanSnapshot{
			WaveHeight:     marine.Current.WaveHeight,
			SwellHeight:    marine.Current.SwellWaveHeight,
			SwellDirection: marine.Current.SwellWaveDirection,
			// Open-Meteo reports current velocity in km/h.
			CurrentSpeed:     marine.Current.OceanCurrentVelocity / 1.852,
			CurrentDirection: marine.Current.OceanCurrentDirection,
			WaterTemp:        marine.Current.SeaSurfaceTemperature,
			Visibility:       forecast.Current.Visibility / 1000, // meters to km
		},
		Timestamp:   time.Now(),
		Coordinates: coord,
	}, nil
}

func (c *OpenMeteoClient) fetchForecast(ctx context.Context, coord models.Coordinate) (*forecastResponse, error) {
	params := url.Values{}
	params.Add("latitude", fmt.Sprintf("%.4f", coord.Lat))
	params.Add("longitude", fmt.Sprintf("%.4f", coord.Lon))
	params.Add("current", "temperature_2m,wind_speed_10m,wind_direction_10m,visibility")
	params.Add("wind_speed_unit", "ms")

	var resp forecastResponse
	if err := c.getJSON(ctx, c.forecastURL, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *OpenMeteoClient) fetchMarine(ctx context.Context, coord models.Coordinate) (*marineResponse, error) {
	params := url.Values{}
	params.Add("latitude", fmt.Sprintf("%.4f", coord.Lat))
	params.Add("longitude", fmt.Sprintf("%.4f", coord.Lon))
	params.Add("current", "wave_height,swell_wave_height,swell_wave_direction,ocean_current_velocity,ocean_current_direction,sea_surface_temperature")

	var resp marineResponse
	if err := c.getJSON(ctx, c.marineURL, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *OpenMeteoClient) getJSON(ctx context.Context, baseURL string, params url.Values, out any) error {
	requestURL := fmt.Sprintf("%s?%s", baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Internal types for Open-Meteo API responses.

type forecastResponse struct {
	Current struct {
		Temperature   float64 `json:"temperature_2m"`
		WindSpeed     float64 `json:"wind_speed_10m"`
		WindDirection float64 `json:"wind_direction_10m"`
		Visibility    float64 `json:"visibility"`
	} `json:"current"`
}

type marineResponse struct {
	Current struct {
		WaveHeight            float64 `json:"wave_height"`
		SwellWaveHeight       float64 `json:"swell_wave_height"`
		SwellWaveDirection    float64 `json:"swell_wave_direction"`
		OceanCurrentVelocity  float64 `json:"ocean_current_velocity"`
		OceanCurrentDirection float64 `json:"ocean_current_direction"`
		SeaSurfaceTemperature float64 `json:"sea_surface_temperature"`
	} `json:"current"`
}
