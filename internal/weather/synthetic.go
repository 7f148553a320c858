package weather

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/rawataarushi/marithon/internal/models"
)

// Synthetic generates plausible offline weather. The generator is
// deterministic per coordinate: the same waypoint always gets the same
// snapshot, which keeps simulation runs and tests repeatable.
type Synthetic struct{}

// NewSynthetic returns the offline generator.
func NewSynthetic() *Synthetic {
	return &Synthetic{}
}

// FetchWeather never fails and never blocks on the network.
func (s *Synthetic) FetchWeather(_ context.Context, coord models.Coordinate) (*models.WaypointWeather, error) {
	rng := rand.New(rand.NewSource(coordSeed(coord)))

	// Mid-latitudes are windier and rougher than the tropics.
	latBand := math.Abs(coord.Lat)
	roughness := 0.5 + math.Min(latBand/60, 1.0)

	windSpeed := rng.Float64() * 12 * roughness
	waveHeight := 0.5 + rng.Float64()*2.5*roughness
	swellHeight := 0.3 + rng.Float64()*1.5*roughness

	return &models.WaypointWeather{
		Weather: &models.WeatherSnapshot{
			WindSpeed:     windSpeed,
			WindDirection: rng.Float64() * 360,
			Temperature:   28 - latBand*0.4 + rng.Float64()*4,
		},
		Ocean: &models.OceanSnapshot{
			WaveHeight:       waveHeight,
			SwellHeight:      swellHeight,
			SwellDirection:   rng.Float64() * 360,
			CurrentSpeed:     rng.Float64() * 2.5,
			CurrentDirection: rng.Float64() * 360,
			WaterTemp:        26 - latBand*0.35,
			Visibility:       8 + rng.Float64()*12,
		},
		Timestamp:   time.Now(),
		Coordinates: coord,
	}, nil
}

// coordSeed derives a stable seed from a coordinate rounded to ~1 km.
func coordSeed(coord models.Coordinate) int64 {
	lat := int64(math.Round(coord.Lat * 100))
	lon := int64(math.Round(coord.Lon * 100))
	return lat*360000 + lon
}
