package geo

import (
	"errors"
	"math"
	"testing"

	"github.com/rawataarushi/marithon/internal/models"
)

func TestRouteDistance_DegenerateSequences(t *testing.T) {
	tests := []struct {
		name      string
		waypoints []models.Coordinate
	}{
		{name: "nil sequence", waypoints: nil},
		{name: "empty sequence", waypoints: []models.Coordinate{}},
		{name: "single point", waypoints: []models.Coordinate{{Lat: 31.23, Lon: 121.47}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RouteDistance(tt.waypoints); got != 0 {
				t.Errorf("RouteDistance() = %v, want 0", got)
			}
		})
	}
}

func TestRouteDistance_SegmentAdditivity(t *testing.T) {
	a := models.Coordinate{Lat: 31.23, Lon: 121.47} // Shanghai
	b := models.Coordinate{Lat: 1.26, Lon: 103.84}  // Singapore
	c := models.Coordinate{Lat: 6.93, Lon: 79.85}   // Colombo

	whole := RouteDistance([]models.Coordinate{a, b, c})
	parts := Haversine(a, b) + Haversine(b, c)

	if math.Abs(whole-parts) > 1e-9 {
		t.Errorf("RouteDistance(a,b,c) = %v, want sum of segments %v", whole, parts)
	}
}

func TestHaversine_KnownDistance(t *testing.T) {
	// One degree of latitude along a meridian is ~111.19 km for R=6371.
	a := models.Coordinate{Lat: 0, Lon: 0}
	b := models.Coordinate{Lat: 1, Lon: 0}

	got := Haversine(a, b)
	want := 6371.0 * math.Pi / 180

	if math.Abs(got-want) > 0.01 {
		t.Errorf("Haversine() = %v, want %v", got, want)
	}
}

func TestHaversine_Symmetry(t *testing.T) {
	a := models.Coordinate{Lat: 51.95, Lon: 4.14}
	b := models.Coordinate{Lat: 40.67, Lon: -74.04}

	if d1, d2 := Haversine(a, b), Haversine(b, a); math.Abs(d1-d2) > 1e-9 {
		t.Errorf("Haversine not symmetric: %v vs %v", d1, d2)
	}
}

func TestInitialBearing(t *testing.T) {
	tests := []struct {
		name string
		a, b models.Coordinate
		want float64
	}{
		{
			name: "due east along the equator",
			a:    models.Coordinate{Lat: 0, Lon: 0},
			b:    models.Coordinate{Lat: 0, Lon: 10},
			want: 90,
		},
		{
			name: "due north",
			a:    models.Coordinate{Lat: 0, Lon: 20},
			b:    models.Coordinate{Lat: 10, Lon: 20},
			want: 0,
		},
		{
			name: "due south",
			a:    models.Coordinate{Lat: 10, Lon: 20},
			b:    models.Coordinate{Lat: 0, Lon: 20},
			want: 180,
		},
		{
			name: "due west along the equator",
			a:    models.Coordinate{Lat: 0, Lon: 10},
			b:    models.Coordinate{Lat: 0, Lon: 0},
			want: 270,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InitialBearing(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("InitialBearing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEstimateTravelTime(t *testing.T) {
	// 1852 km at 10 kn is exactly 100 hours (10 kn = 18.52 km/h).
	a := models.Coordinate{Lat: 0, Lon: 0}
	// Pick a second point and scale expectations from the actual distance.
	b := models.Coordinate{Lat: 0, Lon: 30}

	tt, err := EstimateTravelTime(a, b, 10)
	if err != nil {
		t.Fatalf("EstimateTravelTime() error = %v", err)
	}

	if math.Abs(tt.SpeedKmh-18.52) > 1e-9 {
		t.Errorf("SpeedKmh = %v, want 18.52", tt.SpeedKmh)
	}
	if wantHours := tt.DistanceKm / 18.52; math.Abs(tt.TimeHours-wantHours) > 1e-9 {
		t.Errorf("TimeHours = %v, want %v", tt.TimeHours, wantHours)
	}
	if math.Abs(tt.TimeMinutes-tt.TimeHours*60) > 1e-9 {
		t.Errorf("TimeMinutes = %v, want %v", tt.TimeMinutes, tt.TimeHours*60)
	}
}

func TestEstimateTravelTime_ExactHundredHours(t *testing.T) {
	// Manufacture a leg of exactly 1852 km by scaling a unit segment.
	a := models.Coordinate{Lat: 0, Lon: 0}
	deg := 1852.0 / (6371.0 * math.Pi / 180)
	b := models.Coordinate{Lat: deg, Lon: 0}

	tt, err := EstimateTravelTime(a, b, 10)
	if err != nil {
		t.Fatalf("EstimateTravelTime() error = %v", err)
	}

	if math.Abs(tt.TimeHours-100) > 1e-6 {
		t.Errorf("TimeHours = %v, want 100", tt.TimeHours)
	}
}

func TestTravelTimeForDistance(t *testing.T) {
	// 1852 km at 10 kn is exactly 100 hours.
	tt, err := TravelTimeForDistance(1852, 10)
	if err != nil {
		t.Fatalf("TravelTimeForDistance() error = %v", err)
	}

	if math.Abs(tt.TimeHours-100) > 1e-9 {
		t.Errorf("TimeHours = %v, want 100", tt.TimeHours)
	}
	if math.Abs(tt.SpeedKmh-18.52) > 1e-9 {
		t.Errorf("SpeedKmh = %v, want 18.52", tt.SpeedKmh)
	}

	if _, err := TravelTimeForDistance(1852, 0); !errors.Is(err, ErrNonPositiveSpeed) {
		t.Errorf("TravelTimeForDistance(speed=0) error = %v, want ErrNonPositiveSpeed", err)
	}
}

func TestEstimateTravelTime_RejectsNonPositiveSpeed(t *testing.T) {
	a := models.Coordinate{Lat: 0, Lon: 0}
	b := models.Coordinate{Lat: 1, Lon: 1}

	for _, speed := range []float64{0, -5} {
		if _, err := EstimateTravelTime(a, b, speed); !errors.Is(err, ErrNonPositiveSpeed) {
			t.Errorf("EstimateTravelTime(speed=%v) error = %v, want ErrNonPositiveSpeed", speed, err)
		}
	}
}
