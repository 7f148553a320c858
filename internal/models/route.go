package models

import "time"

// RouteStyle identifies how a route transits between basins. It drives the
// canal-fee line in cost estimates and the route's rendering hints.
type RouteStyle string

const (
	StyleOpenOcean   RouteStyle = "open-ocean"
	StyleSuezCanal   RouteStyle = "suez"
	StylePanamaCanal RouteStyle = "panama"
)

// IsCanal reports whether the route includes a canal transit.
func (s RouteStyle) IsCanal() bool {
	return s == StyleSuezCanal || s == StylePanamaCanal
}

// Port is a named marker along a route. Major ports incur port fees when the
// exact fee-counting policy is active.
type Port struct {
	ID            int64
	Name          string
	Country       string
	Coordinate    Coordinate
	Major         bool
	WaypointIndex int // index into the owning route's waypoint sequence
	CreatedAt     time.Time
}

// Route is a static shipping lane: an ordered waypoint sequence with named
// port markers. Routes are built once at startup (or loaded from the user
// store) and never mutated afterwards.
type Route struct {
	ID        string
	Name      string
	Waypoints []Coordinate
	Ports     []Port
	Style     RouteStyle
	Color     string // hex color used by the UI
}

// MajorPortsAfter counts major port markers at or after the given waypoint
// index. Feeds the exact port-fee policy.
func (r *Route) MajorPortsAfter(waypointIndex int) int {
	n := 0
	for _, p := range r.Ports {
		if p.Major && p.WaypointIndex >= waypointIndex {
			n++
		}
	}
	return n
}
