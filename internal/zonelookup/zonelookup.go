// Package zonelookup annotates waypoints with NOAA marine forecast zones.
// Zones are provisioned once from the public NOAA shapefile into the shared
// sqlite database; lookups are bounding-box prefiltered and ranked by
// great-circle distance to the zone center. Only US coastal waters have
// zones, so a waypoint with no nearby zone is a normal outcome.
package zonelookup

import (
	"database/sql"
	"fmt"
	"sort"
	"sync"

	"github.com/rawataarushi/marithon/internal/geo"
	"github.com/rawataarushi/marithon/internal/models"
	_ "modernc.org/sqlite"
)

var (
	db      *sql.DB
	once    sync.Once
	initErr error
)

// ZoneInfo is a marine zone candidate for a waypoint.
type ZoneInfo struct {
	Code       string
	Name       string
	DistanceKm float64 // from the waypoint to the zone center
}

// getDB returns the singleton database connection, provisioning the zone
// table on first use.
func getDB(dbPath string) (*sql.DB, error) {
	once.Do(func() {
		initErr = ProvisionDatabase(dbPath)
		if initErr != nil {
			return
		}

		db, initErr = sql.Open("sqlite", dbPath)
		if initErr != nil {
			return
		}
		db.Exec("PRAGMA journal_mode=WAL")
		db.Exec("PRAGMA synchronous=NORMAL")
	})
	return db, initErr
}

// NearestZone returns the marine zone closest to the waypoint, or nil when no
// zone lies within maxDistanceKm.
func NearestZone(dbPath string, coord models.Coordinate, maxDistanceKm float64) (*ZoneInfo, error) {
	zones, err := NearbyZones(dbPath, coord, maxDistanceKm)
	if err != nil {
		return nil, err
	}
	if len(zones) == 0 {
		return nil, nil
	}
	return &zones[0], nil
}

// NearbyZones returns all zones within maxDistanceKm of the waypoint, closest
// first.
func NearbyZones(dbPath string, coord models.Coordinate, maxDistanceKm float64) ([]ZoneInfo, error) {
	db, err := getDB(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening zone database: %w", err)
	}

	// Rough degree box around the point to cut down candidates before the
	// exact distance pass. 1 degree of latitude is ~111 km.
	latDelta := maxDistanceKm / 111.0 * 1.5
	lonDelta := maxDistanceKm / 85.0 * 1.5

	rows, err := db.Query(`
		SELECT zone_code, zone_name, center_lat, center_lon
		FROM marine_zones
		WHERE center_lat BETWEEN ? AND ?
		  AND center_lon BETWEEN ? AND ?
	`, coord.Lat-latDelta, coord.Lat+latDelta,
		coord.Lon-lonDelta, coord.Lon+lonDelta)
	if err != nil {
		return nil, fmt.Errorf("querying zones: %w", err)
	}
	defer rows.Close()

	var zones []ZoneInfo
	for rows.Next() {
		var code, name string
		var centerLat, centerLon float64

		if err := rows.Scan(&code, &name, &centerLat, &centerLon); err != nil {
			continue
		}

		distance := geo.Haversine(coord, models.Coordinate{Lat: centerLat, Lon: centerLon})
		if distance <= maxDistanceKm {
			zones = append(zones, ZoneInfo{Code: code, Name: name, DistanceKm: distance})
		}
	}

	sort.Slice(zones, func(i, j int) bool {
		return zones[i].DistanceKm < zones[j].DistanceKm
	})

	return zones, nil
}
