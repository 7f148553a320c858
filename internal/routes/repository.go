package routes

import (
	"encoding/json"
	"fmt"

	"github.com/rawataarushi/marithon/internal/database"
	"github.com/rawataarushi/marithon/internal/models"
	_ "modernc.org/sqlite"
)

// Repository handles persistence for user-defined routes.
type Repository struct {
	dbPath string
}

// NewRepository creates a route repository over the shared database.
func NewRepository(dbPath string) *Repository {
	return &Repository{dbPath: dbPath}
}

// SaveRoute saves a user route, replacing any existing route with the same ID.
func (r *Repository) SaveRoute(route *models.Route) error {
	if err := database.EnsureSchema(r.dbPath); err != nil {
		return err
	}

	db, err := database.Open(r.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	waypoints, err := json.Marshal(route.Waypoints)
	if err != nil {
		return fmt.Errorf("encoding waypoints: %w", err)
	}
	ports, err := json.Marshal(route.Ports)
	if err != nil {
		return fmt.Errorf("encoding ports: %w", err)
	}

	query := `
		INSERT INTO user_routes (route_id, name, style, color, waypoints, ports)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(route_id) DO UPDATE SET
			name = excluded.name,
			style = excluded.style,
			color = excluded.color,
			waypoints = excluded.waypoints,
			ports = excluded.ports
	`
	if _, err := db.Exec(query, route.ID, route.Name, string(route.Style), route.Color, string(waypoints), string(ports)); err != nil {
		return fmt.Errorf("saving route: %w", err)
	}

	return nil
}

// ListRoutes retrieves all saved user routes ordered by name.
func (r *Repository) ListRoutes() ([]models.Route, error) {
	if err := database.EnsureSchema(r.dbPath); err != nil {
		return nil, err
	}

	db, err := database.Open(r.dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT route_id, name, style, color, waypoints, ports FROM user_routes ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying routes: %w", err)
	}
	defer rows.Close()

	var result []models.Route
	for rows.Next() {
		var route models.Route
		var style, waypoints, ports string

		if err := rows.Scan(&route.ID, &route.Name, &style, &route.Color, &waypoints, &ports); err != nil {
			return nil, fmt.Errorf("scanning route: %w", err)
		}
		route.Style = models.RouteStyle(style)

		if err := json.Unmarshal([]byte(waypoints), &route.Waypoints); err != nil {
			return nil, fmt.Errorf("decoding waypoints for %s: %w", route.ID, err)
		}
		if ports != "" {
			if err := json.Unmarshal([]byte(ports), &route.Ports); err != nil {
				return nil, fmt.Errorf("decoding ports for %s: %w", route.ID, err)
			}
		}

		result = append(result, route)
	}

	return result, rows.Err()
}

// DeleteRoute removes a saved route by ID.
func (r *Repository) DeleteRoute(routeID string) error {
	if err := database.EnsureSchema(r.dbPath); err != nil {
		return err
	}

	db, err := database.Open(r.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec("DELETE FROM user_routes WHERE route_id = ?", routeID); err != nil {
		return fmt.Errorf("deleting route: %w", err)
	}

	return nil
}
