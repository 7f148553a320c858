// Package routes holds the built-in trade-route catalog and the store for
// user-defined routes.
package routes

import "github.com/rawataarushi/marithon/internal/models"

// Catalog returns the built-in trade routes. The slice and its routes are
// constructed fresh on every call so callers can never mutate shared state.
func Catalog() []models.Route {
	return []models.Route{
		asiaEuropeSuez(),
		transpacific(),
		transatlantic(),
		capeOfGoodHope(),
	}
}

// FindRoute looks up a catalog route by ID.
func FindRoute(id string) (models.Route, bool) {
	for _, r := range Catalog() {
		if r.ID == id {
			return r, true
		}
	}
	return models.Route{}, false
}

func asiaEuropeSuez() models.Route {
	return models.Route{
		ID:    "asia-europe-suez",
		Name:  "Asia – Europe (Suez)",
		Style: models.StyleSuezCanal,
		Color: "#FF6B6B",
		Waypoints: []models.Coordinate{
			{Lat: 31.23, Lon: 121.47}, // Shanghai
			{Lat: 28.00, Lon: 123.00}, // East China Sea
			{Lat: 24.50, Lon: 119.50}, // Taiwan Strait
			{Lat: 18.00, Lon: 113.00}, // South China Sea
			{Lat: 1.26, Lon: 103.84},  // Singapore
			{Lat: 3.00, Lon: 100.30},  // Strait of Malacca
			{Lat: 6.00, Lon: 95.00},   // Andaman Sea
			{Lat: 6.93, Lon: 79.85},   // Colombo
			{Lat: 8.00, Lon: 73.00},   // Arabian Sea
			{Lat: 12.50, Lon: 47.50},  // Gulf of Aden
			{Lat: 12.60, Lon: 43.40},  // Bab-el-Mandeb
			{Lat: 20.00, Lon: 38.50},  // Red Sea
			{Lat: 29.95, Lon: 32.55},  // Suez
			{Lat: 31.26, Lon: 32.30},  // Port Said
			{Lat: 34.00, Lon: 24.00},  // Eastern Mediterranean
			{Lat: 36.00, Lon: 14.20},  // Malta Channel
			{Lat: 36.10, Lon: -5.40},  // Strait of Gibraltar
			{Lat: 45.00, Lon: -6.00},  // Bay of Biscay
			{Lat: 49.50, Lon: -2.00},  // English Channel
			{Lat: 51.95, Lon: 4.14},   // Rotterdam
		},
		Ports: []models.Port{
			{Name: "Shanghai", Country: "CN", Coordinate: models.Coordinate{Lat: 31.23, Lon: 121.47}, Major: true, WaypointIndex: 0},
			{Name: "Singapore", Country: "SG", Coordinate: models.Coordinate{Lat: 1.26, Lon: 103.84}, Major: true, WaypointIndex: 4},
			{Name: "Colombo", Country: "LK", Coordinate: models.Coordinate{Lat: 6.93, Lon: 79.85}, Major: true, WaypointIndex: 7},
			{Name: "Port Said", Country: "EG", Coordinate: models.Coordinate{Lat: 31.26, Lon: 32.30}, Major: false, WaypointIndex: 13},
			{Name: "Rotterdam", Country: "NL", Coordinate: models.Coordinate{Lat: 51.95, Lon: 4.14}, Major: true, WaypointIndex: 19},
		},
	}
}

func transpacific() models.Route {
	return models.Route{
		ID:    "transpacific",
		Name:  "Transpacific (Great Circle)",
		Style: models.StyleOpenOcean,
		Color: "#4ECDC4",
		Waypoints: []models.Coordinate{
			{Lat: 31.23, Lon: 121.47},  // Shanghai
			{Lat: 32.50, Lon: 129.00},  // East China Sea
			{Lat: 34.90, Lon: 139.70},  // Tokyo Bay
			{Lat: 38.00, Lon: 150.00},  // North Pacific
			{Lat: 42.00, Lon: 165.00},
			{Lat: 45.00, Lon: 180.00},  // Date line
			{Lat: 47.00, Lon: -165.00},
			{Lat: 45.00, Lon: -150.00},
			{Lat: 40.00, Lon: -135.00},
			{Lat: 36.00, Lon: -125.00},
			{Lat: 33.74, Lon: -118.26}, // Los Angeles
		},
		Ports: []models.Port{
			{Name: "Shanghai", Country: "CN", Coordinate: models.Coordinate{Lat: 31.23, Lon: 121.47}, Major: true, WaypointIndex: 0},
			{Name: "Yokohama", Country: "JP", Coordinate: models.Coordinate{Lat: 34.90, Lon: 139.70}, Major: true, WaypointIndex: 2},
			{Name: "Los Angeles", Country: "US", Coordinate: models.Coordinate{Lat: 33.74, Lon: -118.26}, Major: true, WaypointIndex: 10},
		},
	}
}

func transatlantic() models.Route {
	return models.Route{
		ID:    "transatlantic",
		Name:  "Transatlantic",
		Style: models.StyleOpenOcean,
		Color: "#FFD93D",
		Waypoints: []models.Coordinate{
			{Lat: 51.95, Lon: 4.14},   // Rotterdam
			{Lat: 50.10, Lon: -1.50},  // English Channel
			{Lat: 48.50, Lon: -8.00},  // Celtic Sea
			{Lat: 45.00, Lon: -20.00}, // North Atlantic
			{Lat: 42.00, Lon: -35.00},
			{Lat: 41.00, Lon: -50.00},
			{Lat: 40.50, Lon: -60.00},
			{Lat: 40.67, Lon: -74.04}, // New York
		},
		Ports: []models.Port{
			{Name: "Rotterdam", Country: "NL", Coordinate: models.Coordinate{Lat: 51.95, Lon: 4.14}, Major: true, WaypointIndex: 0},
			{Name: "New York", Country: "US", Coordinate: models.Coordinate{Lat: 40.67, Lon: -74.04}, Major: true, WaypointIndex: 7},
		},
	}
}

func capeOfGoodHope() models.Route {
	return models.Route{
		ID:    "cape-of-good-hope",
		Name:  "Asia – Europe (Cape of Good Hope)",
		Style: models.StyleOpenOcean,
		Color: "#6BCF7F",
		Waypoints: []models.Coordinate{
			{Lat: 1.26, Lon: 103.84},  // Singapore
			{Lat: 0.00, Lon: 95.00},   // Indian Ocean
			{Lat: -10.00, Lon: 80.00},
			{Lat: -20.00, Lon: 65.00},
			{Lat: -28.00, Lon: 50.00},
			{Lat: -30.00, Lon: 32.00}, // Off Durban
			{Lat: -33.90, Lon: 18.40}, // Cape Town
			{Lat: -25.00, Lon: 5.00},  // South Atlantic
			{Lat: -10.00, Lon: -5.00},
			{Lat: 5.00, Lon: -12.00},  // Gulf of Guinea approaches
			{Lat: 15.00, Lon: -18.00},
			{Lat: 28.00, Lon: -15.00}, // Canary Islands
			{Lat: 38.50, Lon: -9.50},  // Off Lisbon
			{Lat: 45.00, Lon: -6.00},  // Bay of Biscay
			{Lat: 49.50, Lon: -2.00},  // English Channel
			{Lat: 51.95, Lon: 4.14},   // Rotterdam
		},
		Ports: []models.Port{
			{Name: "Singapore", Country: "SG", Coordinate: models.Coordinate{Lat: 1.26, Lon: 103.84}, Major: true, WaypointIndex: 0},
			{Name: "Cape Town", Country: "ZA", Coordinate: models.Coordinate{Lat: -33.90, Lon: 18.40}, Major: true, WaypointIndex: 6},
			{Name: "Rotterdam", Country: "NL", Coordinate: models.Coordinate{Lat: 51.95, Lon: 4.14}, Major: true, WaypointIndex: 15},
		},
	}
}
