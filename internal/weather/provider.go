// Package weather fetches per-waypoint weather and sea-state snapshots. The
// live source is the Open-Meteo forecast and marine APIs; a deterministic
// synthetic generator stands in whenever the live source is unreachable, so
// callers always receive populated snapshots.
package weather

import (
	"context"

	"github.com/rawataarushi/marithon/internal/models"
)

// Provider fetches the weather and sea state for one coordinate.
type Provider interface {
	FetchWeather(ctx context.Context, coord models.Coordinate) (*models.WaypointWeather, error)
}

// WithFallback wraps a provider so that any fetch error is replaced by a
// synthetic snapshot. The returned provider never fails.
type WithFallback struct {
	Live     Provider
	Fallback *Synthetic
}

// NewWithFallback wraps the live provider with the synthetic generator.
func NewWithFallback(live Provider) *WithFallback {
	return &WithFallback{Live: live, Fallback: NewSynthetic()}
}

// FetchWeather tries the live provider and substitutes synthetic data on any
// failure. Speed and cost estimation downstream only understand "no data" as
// nil snapshots, so a hard failure is never propagated.
func (p *WithFallback) FetchWeather(ctx context.Context, coord models.Coordinate) (*models.WaypointWeather, error) {
	if p.Live != nil {
		wx, err := p.Live.FetchWeather(ctx, coord)
		if err == nil && wx.HasData() {
			return wx, nil
		}
	}
	return p.Fallback.FetchWeather(ctx, coord)
}
