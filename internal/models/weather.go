package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Coordinate is a point on the globe in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// WeatherSnapshot holds atmospheric conditions at a waypoint.
type WeatherSnapshot struct {
	WindSpeed     float64 // m/s
	WindDirection float64 // degrees, meteorological: direction the wind blows FROM
	Temperature   float64 // Celsius
}

// OceanSnapshot holds sea-state conditions at a waypoint.
type OceanSnapshot struct {
	WaveHeight       float64 // meters
	SwellHeight      float64 // meters
	SwellDirection   float64 // degrees, propagation direction (blowing toward)
	CurrentSpeed     float64 // knots
	CurrentDirection float64 // degrees, propagation direction
	WaterTemp        float64 // Celsius
	Visibility       float64 // km
}

// WaypointWeather bundles the weather and sea state sampled at one waypoint.
// A nil Weather or Ocean means no data was available for that waypoint; the
// voyage calculators treat that as "sail at base speed", never as an error.
type WaypointWeather struct {
	Weather     *WeatherSnapshot `json:"weather,omitempty"`
	Ocean       *OceanSnapshot   `json:"ocean,omitempty"`
	Timestamp   time.Time        `json:"timestamp"`
	Coordinates Coordinate       `json:"coordinates"`
}

// HasData reports whether both the weather and ocean snapshots are populated.
func (w *WaypointWeather) HasData() bool {
	return w != nil && w.Weather != nil && w.Ocean != nil
}

// flexFloat decodes JSON numbers that some providers quote as strings
// ("12.5" vs 12.5). Empty strings and null decode as zero.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*f = flexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

// UnmarshalJSON accepts numeric fields as either JSON numbers or
// string-encoded numbers. Missing fields default to zero.
func (w *WeatherSnapshot) UnmarshalJSON(data []byte) error {
	var aux struct {
		WindSpeed     flexFloat `json:"windSpeed"`
		WindDirection flexFloat `json:"windDirection"`
		Temperature   flexFloat `json:"temperature"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	w.WindSpeed = float64(aux.WindSpeed)
	w.WindDirection = float64(aux.WindDirection)
	w.Temperature = float64(aux.Temperature)
	return nil
}

// MarshalJSON writes the snapshot with the same field names UnmarshalJSON reads.
func (w WeatherSnapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]float64{
		"windSpeed":     w.WindSpeed,
		"windDirection": w.WindDirection,
		"temperature":   w.Temperature,
	})
}

// UnmarshalJSON accepts numeric fields as either JSON numbers or
// string-encoded numbers. Missing fields default to zero.
func (o *OceanSnapshot) UnmarshalJSON(data []byte) error {
	var aux struct {
		WaveHeight       flexFloat `json:"waveHeight"`
		SwellHeight      flexFloat `json:"swellHeight"`
		SwellDirection   flexFloat `json:"swellDirection"`
		CurrentSpeed     flexFloat `json:"currentSpeed"`
		CurrentDirection flexFloat `json:"currentDirection"`
		WaterTemp        flexFloat `json:"waterTemp"`
		Visibility       flexFloat `json:"visibility"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	o.WaveHeight = float64(aux.WaveHeight)
	o.SwellHeight = float64(aux.SwellHeight)
	o.SwellDirection = float64(aux.SwellDirection)
	o.CurrentSpeed = float64(aux.CurrentSpeed)
	o.CurrentDirection = float64(aux.CurrentDirection)
	o.WaterTemp = float64(aux.WaterTemp)
	o.Visibility = float64(aux.Visibility)
	return nil
}

// MarshalJSON writes the snapshot with the same field names UnmarshalJSON reads.
func (o OceanSnapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]float64{
		"waveHeight":       o.WaveHeight,
		"swellHeight":      o.SwellHeight,
		"swellDirection":   o.SwellDirection,
		"currentSpeed":     o.CurrentSpeed,
		"currentDirection": o.CurrentDirection,
		"waterTemp":        o.WaterTemp,
		"visibility":       o.Visibility,
	})
}
