package weather

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawataarushi/marithon/internal/database"
	"github.com/rawataarushi/marithon/internal/models"
)

// countingProvider returns a fixed snapshot and counts fetches. The snapshot
// timestamp is configurable so tests can age cache entries.
type countingProvider struct {
	calls     int
	timestamp time.Time
}

func (p *countingProvider) FetchWeather(_ context.Context, coord models.Coordinate) (*models.WaypointWeather, error) {
	p.calls++
	return &models.WaypointWeather{
		Weather:     &models.WeatherSnapshot{WindSpeed: 8.5, WindDirection: 120},
		Ocean:       &models.OceanSnapshot{WaveHeight: 1.8, CurrentSpeed: 0.7},
		Timestamp:   p.timestamp,
		Coordinates: coord,
	}, nil
}

func TestCachingProvider_ServesFromCache(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	inner := &countingProvider{timestamp: time.Now()}
	cache := NewCachingProvider(inner, dbPath, time.Hour)

	coord := models.Coordinate{Lat: 1.35123, Lon: 103.81999}

	first, err := cache.FetchWeather(context.Background(), coord)
	require.NoError(t, err)
	require.True(t, first.HasData())
	assert.Equal(t, 1, inner.calls)

	second, err := cache.FetchWeather(context.Background(), coord)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls, "second fetch must hit the cache")
	assert.Equal(t, first.Weather, second.Weather)
	assert.Equal(t, first.Ocean, second.Ocean)
}

func TestCachingProvider_CoordinatesShareCellAfterRounding(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	inner := &countingProvider{timestamp: time.Now()}
	cache := NewCachingProvider(inner, dbPath, time.Hour)

	_, err := cache.FetchWeather(context.Background(), models.Coordinate{Lat: 1.3501, Lon: 103.8001})
	require.NoError(t, err)
	_, err = cache.FetchWeather(context.Background(), models.Coordinate{Lat: 1.3499, Lon: 103.7999})
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls, "both coordinates round to the same cache cell")
}

func TestCachingProvider_ExpiredEntryRefetches(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	inner := &countingProvider{timestamp: time.Now().Add(-2 * time.Hour)}
	cache := NewCachingProvider(inner, dbPath, time.Hour)

	coord := models.Coordinate{Lat: 35, Lon: -140}

	_, err := cache.FetchWeather(context.Background(), coord)
	require.NoError(t, err)
	_, err = cache.FetchWeather(context.Background(), coord)
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls, "stale entries must not be served")
}

func TestCachingProvider_Purge(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	inner := &countingProvider{timestamp: time.Now().Add(-2 * time.Hour)}
	cache := NewCachingProvider(inner, dbPath, time.Hour)

	_, err := cache.FetchWeather(context.Background(), models.Coordinate{Lat: 10, Lon: 10})
	require.NoError(t, err)

	require.NoError(t, cache.Purge())

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM weather_cache").Scan(&n))
	assert.Zero(t, n)
}

func TestPrefetchRoute_FillsEverySlot(t *testing.T) {
	waypoints := []models.Coordinate{
		{Lat: 1.3, Lon: 103.8},
		{Lat: 6.0, Lon: 95.0},
		{Lat: 12.5, Lon: 45.0},
	}

	got := PrefetchRoute(context.Background(), NewSynthetic(), waypoints)
	require.Len(t, got, len(waypoints))
	for i, wx := range got {
		require.NotNil(t, wx, "waypoint %d", i)
		assert.True(t, wx.HasData())
		assert.Equal(t, waypoints[i], wx.Coordinates)
	}
}

func TestPrefetchRoute_FailingProviderLeavesNilSlots(t *testing.T) {
	got := PrefetchRoute(context.Background(), failingProvider{}, []models.Coordinate{{Lat: 0, Lon: 0}})
	require.Len(t, got, 1)
	assert.Nil(t, got[0])
}

func TestPrefetchRoute_EmptyRoute(t *testing.T) {
	got := PrefetchRoute(context.Background(), NewSynthetic(), nil)
	assert.Empty(t, got)
}
