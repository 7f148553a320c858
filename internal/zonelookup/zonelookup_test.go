package zonelookup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawataarushi/marithon/internal/models"
)

// The zone table is shared through a package singleton, so the tests seed one
// database with known zones before getDB can reach for the NOAA download.
var testDBPath string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "zonelookup-test")
	if err != nil {
		os.Exit(1)
	}
	testDBPath = filepath.Join(dir, "zones.db")

	if err := seedZones(testDBPath); err != nil {
		os.RemoveAll(dir)
		os.Exit(1)
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func seedZones(dbPath string) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE marine_zones (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			zone_code TEXT NOT NULL,
			zone_name TEXT,
			bbox_min_lat REAL NOT NULL,
			bbox_max_lat REAL NOT NULL,
			bbox_min_lon REAL NOT NULL,
			bbox_max_lon REAL NOT NULL,
			center_lat REAL NOT NULL,
			center_lon REAL NOT NULL
		);
	`)
	if err != nil {
		return err
	}

	zones := []struct {
		code, name           string
		centerLat, centerLon float64
	}{
		{"PZZ130", "Puget Sound and Hood Canal", 47.6, -122.5},
		{"PZZ135", "Admiralty Inlet", 48.1, -122.7},
		{"ANZ338", "New York Harbor", 40.6, -74.1},
	}

	for _, z := range zones {
		_, err := db.Exec(`
			INSERT INTO marine_zones (
				zone_code, zone_name,
				bbox_min_lat, bbox_max_lat, bbox_min_lon, bbox_max_lon,
				center_lat, center_lon
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, z.code, z.name,
			z.centerLat-0.5, z.centerLat+0.5, z.centerLon-0.5, z.centerLon+0.5,
			z.centerLat, z.centerLon)
		if err != nil {
			return err
		}
	}

	return nil
}

func TestNearestZone(t *testing.T) {
	// A point in Puget Sound sits closest to PZZ130.
	zone, err := NearestZone(testDBPath, models.Coordinate{Lat: 47.55, Lon: -122.45}, 100)
	require.NoError(t, err)
	require.NotNil(t, zone)

	assert.Equal(t, "PZZ130", zone.Code)
	assert.Equal(t, "Puget Sound and Hood Canal", zone.Name)
	assert.Less(t, zone.DistanceKm, 100.0)
}

func TestNearestZone_NoneInRange(t *testing.T) {
	// Mid-Pacific: no US coastal zone anywhere close. A nil zone is the
	// normal answer, not an error.
	zone, err := NearestZone(testDBPath, models.Coordinate{Lat: 30, Lon: -160}, 200)
	require.NoError(t, err)
	assert.Nil(t, zone)
}

func TestNearbyZones_SortedByDistance(t *testing.T) {
	zones, err := NearbyZones(testDBPath, models.Coordinate{Lat: 47.8, Lon: -122.6}, 300)
	require.NoError(t, err)
	require.Len(t, zones, 2, "both Puget Sound zones are in range, New York is not")

	assert.Less(t, zones[0].DistanceKm, zones[1].DistanceKm)
	for _, z := range zones {
		assert.LessOrEqual(t, z.DistanceKm, 300.0)
	}
}

func TestNearbyZones_RadiusIsExact(t *testing.T) {
	// The bounding-box prefilter is generous; the distance pass must still
	// exclude zones beyond the radius.
	zones, err := NearbyZones(testDBPath, models.Coordinate{Lat: 47.6, Lon: -122.5}, 10)
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Equal(t, "PZZ130", zones[0].Code)
}
