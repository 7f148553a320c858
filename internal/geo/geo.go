// Package geo provides great-circle distance, bearing, and travel-time
// calculations over decimal-degree coordinates.
package geo

import (
	"errors"
	"math"

	"github.com/rawataarushi/marithon/internal/models"
)

const (
	earthRadiusKm = 6371.0
	// KmPerNauticalMile converts knots to km/h and nm to km.
	KmPerNauticalMile = 1.852
)

// ErrNonPositiveSpeed is returned when a travel-time query is made with a
// speed that would produce an infinite or undefined result.
var ErrNonPositiveSpeed = errors.New("speed must be greater than zero")

// Haversine returns the great-circle distance between two coordinates in km.
func Haversine(a, b models.Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	deltaLat := (b.Lat - a.Lat) * math.Pi / 180
	deltaLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// RouteDistance returns the total length of a waypoint sequence in km: the
// sum of pairwise great-circle segments between consecutive points. Sequences
// of zero or one point have zero length.
func RouteDistance(waypoints []models.Coordinate) float64 {
	total := 0.0
	for i := 1; i < len(waypoints); i++ {
		total += Haversine(waypoints[i-1], waypoints[i])
	}
	return total
}

// InitialBearing returns the initial great-circle course from a to b in
// compass degrees [0, 360).
func InitialBearing(a, b models.Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	deltaLon := (b.Lon - a.Lon) * math.Pi / 180

	y := math.Sin(deltaLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) -
		math.Sin(lat1)*math.Cos(lat2)*math.Cos(deltaLon)

	bearing := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(bearing+360, 360)
}

// TravelTime is the estimated time to cover the leg between two coordinates
// at the given speed.
type TravelTime struct {
	DistanceKm  float64
	SpeedKmh    float64
	TimeHours   float64
	TimeMinutes float64
}

// TravelTimeForDistance computes the time to cover a distance in km at a
// speed given in knots. Speeds at or below zero are rejected rather than
// producing infinite results.
func TravelTimeForDistance(distanceKm, speedKnots float64) (TravelTime, error) {
	if speedKnots <= 0 {
		return TravelTime{}, ErrNonPositiveSpeed
	}

	speedKmh := speedKnots * KmPerNauticalMile
	hours := distanceKm / speedKmh

	return TravelTime{
		DistanceKm:  distanceKm,
		SpeedKmh:    speedKmh,
		TimeHours:   hours,
		TimeMinutes: hours * 60,
	}, nil
}

// EstimateTravelTime computes the leg time between two coordinates at a speed
// given in knots.
func EstimateTravelTime(a, b models.Coordinate, speedKnots float64) (TravelTime, error) {
	return TravelTimeForDistance(Haversine(a, b), speedKnots)
}
