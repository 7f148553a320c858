package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/rawataarushi/marithon/internal/geo"
	"github.com/rawataarushi/marithon/internal/models"
)

// routeItem wraps a Route for use in a list
type routeItem struct {
	route models.Route
}

// FilterValue implements list.Item
func (r routeItem) FilterValue() string {
	return r.route.ID + " " + r.route.Name
}

// Title implements list.DefaultItem
func (r routeItem) Title() string {
	return r.route.Name
}

// Description implements list.DefaultItem
func (r routeItem) Description() string {
	distance := geo.RouteDistance(r.route.Waypoints)
	canal := ""
	if r.route.Style.IsCanal() {
		canal = fmt.Sprintf(" · %s canal", r.route.Style)
	}
	return fmt.Sprintf("%d waypoints · %.0f km%s", len(r.route.Waypoints), distance, canal)
}

// createRouteList creates a list.Model from the route catalog
func createRouteList(routes []models.Route, width, height int) list.Model {
	items := make([]list.Item, len(routes))
	for i, route := range routes {
		items[i] = routeItem{route: route}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Trade Routes"
	l.SetShowHelp(true)
	l.SetFilteringEnabled(false)

	return l
}
