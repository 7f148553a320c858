package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/rawataarushi/marithon/internal/database"
	"github.com/rawataarushi/marithon/internal/models"
	_ "modernc.org/sqlite"
)

// CachingProvider wraps a Provider with a sqlite snapshot cache so repeated
// route views do not refetch every waypoint. Entries are keyed by coordinate
// rounded to two decimals and expire after the TTL.
type CachingProvider struct {
	inner  Provider
	dbPath string
	ttl    time.Duration
}

// NewCachingProvider creates a cache over the given provider.
func NewCachingProvider(inner Provider, dbPath string, ttl time.Duration) *CachingProvider {
	return &CachingProvider{inner: inner, dbPath: dbPath, ttl: ttl}
}

// FetchWeather serves from cache when fresh, otherwise fetches and stores.
// Cache failures degrade to a plain fetch rather than erroring.
func (c *CachingProvider) FetchWeather(ctx context.Context, coord models.Coordinate) (*models.WaypointWeather, error) {
	lat, lon := roundCoord(coord.Lat), roundCoord(coord.Lon)

	if wx, ok := c.lookup(lat, lon); ok {
		return wx, nil
	}

	wx, err := c.inner.FetchWeather(ctx, coord)
	if err != nil {
		return nil, err
	}

	c.store(lat, lon, wx)
	return wx, nil
}

func (c *CachingProvider) lookup(lat, lon float64) (*models.WaypointWeather, bool) {
	db, err := database.Open(c.dbPath)
	if err != nil {
		return nil, false
	}
	defer db.Close()

	var payload string
	var fetchedAt time.Time
	err = db.QueryRow(
		"SELECT payload, fetched_at FROM weather_cache WHERE lat = ? AND lon = ?",
		lat, lon,
	).Scan(&payload, &fetchedAt)
	if err != nil {
		return nil, false
	}

	if time.Since(fetchedAt) > c.ttl {
		return nil, false
	}

	var wx models.WaypointWeather
	if err := json.Unmarshal([]byte(payload), &wx); err != nil {
		return nil, false
	}
	if !wx.HasData() {
		return nil, false
	}
	return &wx, true
}

func (c *CachingProvider) store(lat, lon float64, wx *models.WaypointWeather) {
	if err := database.EnsureSchema(c.dbPath); err != nil {
		return
	}

	db, err := database.Open(c.dbPath)
	if err != nil {
		return
	}
	defer db.Close()

	payload, err := json.Marshal(wx)
	if err != nil {
		return
	}

	_, _ = db.Exec(`
		INSERT INTO weather_cache (lat, lon, payload, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(lat, lon) DO UPDATE SET
			payload = excluded.payload,
			fetched_at = excluded.fetched_at
	`, lat, lon, string(payload), wx.Timestamp)
}

// Purge drops expired cache rows. Called opportunistically at startup.
func (c *CachingProvider) Purge() error {
	db, err := database.Open(c.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	cutoff := time.Now().Add(-c.ttl)
	if _, err := db.Exec("DELETE FROM weather_cache WHERE fetched_at < ?", cutoff); err != nil {
		return fmt.Errorf("purging weather cache: %w", err)
	}
	return nil
}

func roundCoord(v float64) float64 {
	return math.Round(v*100) / 100
}
