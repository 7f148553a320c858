package ui

import (
	"time"

	"github.com/rawataarushi/marithon/internal/sim"
	"github.com/rawataarushi/marithon/internal/zonelookup"
)

// Message types for async operations

// prefetchDoneMsg is sent when weather has been fetched for every waypoint
// of the selected route.
type prefetchDoneMsg struct {
	stepper *sim.Stepper
}

// stepTickMsg advances the voyage simulation by one waypoint.
type stepTickMsg time.Time

// zoneFoundMsg carries the marine-zone annotation for the selected waypoint.
type zoneFoundMsg struct {
	waypointIndex int
	zone          *zonelookup.ZoneInfo
}

// errMsg is a message type for errors.
type errMsg struct {
	err error
}
