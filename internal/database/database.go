package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DBPath returns the path to the single shared database.
func DBPath() string {
	return filepath.Join("data", "marithon.db")
}

// Open opens the shared database, creating its directory if needed.
func Open(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// EnsureSchema ensures the user-facing tables (saved routes, weather cache)
// exist. Safe to call multiple times.
func EnsureSchema(dbPath string) error {
	db, err := Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database to ensure schema: %w", err)
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS user_routes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			route_id TEXT NOT NULL,
			name TEXT NOT NULL,
			style TEXT NOT NULL DEFAULT 'open-ocean',
			color TEXT,
			waypoints TEXT NOT NULL,
			ports TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_user_routes_route_id ON user_routes(route_id);

		CREATE TABLE IF NOT EXISTS weather_cache (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			lat REAL NOT NULL,
			lon REAL NOT NULL,
			payload TEXT NOT NULL,
			fetched_at DATETIME NOT NULL
		);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_weather_cache_coord ON weather_cache(lat, lon);
	`)
	if err != nil {
		return fmt.Errorf("creating user tables: %w", err)
	}

	return nil
}
