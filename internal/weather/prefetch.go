package weather

import (
	"context"
	"sync"

	"github.com/rawataarushi/marithon/internal/models"
)

// PrefetchRoute fetches weather for every waypoint concurrently and blocks
// until all fetches complete. Each goroutine writes to its own slice slot, so
// no locking is needed. Slots are nil only when the provider itself can fail
// and did; providers wrapped by WithFallback always populate every slot.
func PrefetchRoute(ctx context.Context, provider Provider, waypoints []models.Coordinate) []*models.WaypointWeather {
	results := make([]*models.WaypointWeather, len(waypoints))

	var wg sync.WaitGroup
	for i, coord := range waypoints {
		wg.Add(1)
		go func(i int, coord models.Coordinate) {
			defer wg.Done()
			wx, err := provider.FetchWeather(ctx, coord)
			if err != nil {
				return
			}
			results[i] = wx
		}(i, coord)
	}
	wg.Wait()

	return results
}
