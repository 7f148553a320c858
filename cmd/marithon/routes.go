package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rawataarushi/marithon/internal/database"
	"github.com/rawataarushi/marithon/internal/geo"
	"github.com/rawataarushi/marithon/internal/models"
	"github.com/rawataarushi/marithon/internal/routes"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List built-in and saved trade routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tWAYPOINTS\tPORTS\tDISTANCE km\tSTYLE")

		for _, r := range routes.Catalog() {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.0f\t%s\n",
				r.ID, r.Name, len(r.Waypoints), len(r.Ports),
				geo.RouteDistance(r.Waypoints), r.Style)
		}

		saved, err := routes.NewRepository(database.DBPath()).ListRoutes()
		if err == nil {
			for _, r := range saved {
				fmt.Fprintf(w, "%s\t%s (saved)\t%d\t%d\t%.0f\t%s\n",
					r.ID, r.Name, len(r.Waypoints), len(r.Ports),
					geo.RouteDistance(r.Waypoints), r.Style)
			}
		}

		return w.Flush()
	},
}

var routesImportCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Save a route definition from a JSON file to the local database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		route, err := readRouteFile(args[0])
		if err != nil {
			return err
		}

		if err := routes.NewRepository(database.DBPath()).SaveRoute(route); err != nil {
			return err
		}

		fmt.Printf("Saved route %s (%d waypoints, %.0f km)\n",
			route.ID, len(route.Waypoints), geo.RouteDistance(route.Waypoints))
		return nil
	},
}

var routesDeleteCmd = &cobra.Command{
	Use:   "delete <route-id>",
	Short: "Delete a saved route",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := routes.NewRepository(database.DBPath()).DeleteRoute(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted route %s\n", args[0])
		return nil
	},
}

// readRouteFile decodes and sanity-checks a route definition. Field names
// follow the models.Route struct ("id", "name", "waypoints" as lat/lon
// pairs, optional "ports" and "style").
func readRouteFile(path string) (*models.Route, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading route file: %w", err)
	}

	var route models.Route
	if err := json.Unmarshal(data, &route); err != nil {
		return nil, fmt.Errorf("decoding route file: %w", err)
	}

	if route.ID == "" {
		return nil, errors.New("route file must set an id")
	}
	if len(route.Waypoints) < 2 {
		return nil, errors.New("route needs at least two waypoints")
	}
	for _, p := range route.Ports {
		if p.WaypointIndex < 0 || p.WaypointIndex >= len(route.Waypoints) {
			return nil, fmt.Errorf("port %q references waypoint %d, route has %d",
				p.Name, p.WaypointIndex, len(route.Waypoints))
		}
	}

	return &route, nil
}

func init() {
	routesCmd.AddCommand(routesImportCmd)
	routesCmd.AddCommand(routesDeleteCmd)
}
