package zonelookup

import (
	"archive/zip"
	"database/sql"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	shp "github.com/jonas-p/go-shp"
	_ "modernc.org/sqlite"
)

const (
	// NOAA marine zones shapefile, updated quarterly.
	marineZonesURL = "https://www.weather.gov/source/gis/Shapefiles/WSOM/mz18mr25.zip"
	shapefileBase  = "mz18mr25"
)

// ProvisionDatabase builds the marine_zones table from the NOAA shapefile if
// it does not already exist. Safe to call multiple times.
func ProvisionDatabase(dbPath string) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='marine_zones'").Scan(&count)
	if err != nil {
		return fmt.Errorf("checking for marine_zones table: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Println("Marine zones table not found, provisioning...")

	dataDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	zipPath := filepath.Join(dataDir, shapefileBase+".zip")
	log.Printf("Downloading NOAA marine zones from %s...", marineZonesURL)
	if err := downloadFile(zipPath, marineZonesURL); err != nil {
		return fmt.Errorf("downloading shapefile: %w", err)
	}
	defer os.Remove(zipPath)

	if err := unzipFile(zipPath, dataDir); err != nil {
		return fmt.Errorf("extracting shapefile: %w", err)
	}

	shapefilePath := filepath.Join(dataDir, shapefileBase+".shp")
	if err := buildZoneTable(shapefilePath, dbPath); err != nil {
		return fmt.Errorf("building zone table: %w", err)
	}

	cleanupShapefiles(dataDir, shapefileBase)
	log.Printf("Provisioned marine zones into %s", dbPath)
	return nil
}

// buildZoneTable reads zone codes, names, and centroids out of the shapefile
// and stores them for nearest-zone queries. Polygon geometry is reduced to a
// bounding box; waypoint annotation only needs center distances.
func buildZoneTable(shapefilePath, dbPath string) error {
	shape, err := shp.Open(shapefilePath)
	if err != nil {
		return fmt.Errorf("opening shapefile: %w", err)
	}
	defer shape.Close()

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
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
		CREATE INDEX idx_zones_code ON marine_zones(zone_code);
		CREATE INDEX idx_zones_center ON marine_zones(center_lat, center_lon);
	`)
	if err != nil {
		return fmt.Errorf("creating table: %w", err)
	}

	count := 0
	for shape.Next() {
		n, p := shape.Shape()

		// DBF layout: field 0 is the zone code, 3 the name, 4/5 the centroid.
		zoneCode := shape.ReadAttribute(n, 0)
		zoneName := shape.ReadAttribute(n, 3)
		centerLon, _ := strconv.ParseFloat(shape.ReadAttribute(n, 4), 64)
		centerLat, _ := strconv.ParseFloat(shape.ReadAttribute(n, 5), 64)

		polygon, ok := p.(*shp.Polygon)
		if !ok {
			continue
		}
		bbox := polygon.BBox()

		_, err = db.Exec(`
			INSERT INTO marine_zones (
				zone_code, zone_name,
				bbox_min_lat, bbox_max_lat, bbox_min_lon, bbox_max_lon,
				center_lat, center_lon
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, zoneCode, zoneName,
			bbox.MinY, bbox.MaxY, bbox.MinX, bbox.MaxX,
			centerLat, centerLon)
		if err != nil {
			log.Printf("Error inserting zone %s: %v", zoneCode, err)
			continue
		}

		count++
	}

	log.Printf("Stored %d marine zones", count)
	return nil
}

func downloadFile(path, url string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}

func unzipFile(src, dest string) error {
	r, err := zip.OpenReader(src)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		fpath := filepath.Join(dest, f.Name)

		// Reject entries that escape the destination directory.
		if !filepath.HasPrefix(fpath, filepath.Clean(dest)+string(os.PathSeparator)) {
			return fmt.Errorf("illegal file path: %s", fpath)
		}

		if f.FileInfo().IsDir() {
			os.MkdirAll(fpath, os.ModePerm)
			continue
		}

		if err := os.MkdirAll(filepath.Dir(fpath), os.ModePerm); err != nil {
			return err
		}

		out, err := os.OpenFile(fpath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
		if err != nil {
			return err
		}

		rc, err := f.Open()
		if err != nil {
			out.Close()
			return err
		}

		_, err = io.Copy(out, rc)
		out.Close()
		rc.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

func cleanupShapefiles(dir, base string) {
	for _, ext := range []string{".shp", ".shx", ".dbf", ".prj", ".cpg", ".shp.xml"} {
		os.Remove(filepath.Join(dir, base+ext))
	}
}
