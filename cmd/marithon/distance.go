package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rawataarushi/marithon/internal/geo"
	"github.com/rawataarushi/marithon/internal/routes"
)

var distanceSpeed float64

var distanceCmd = &cobra.Command{
	Use:   "distance <route-id>",
	Short: "Show the great-circle length of a route and its travel time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		route, ok := routes.FindRoute(args[0])
		if !ok {
			return fmt.Errorf("unknown route %q (see 'marithon routes')", args[0])
		}

		total := geo.RouteDistance(route.Waypoints)
		fmt.Printf("%s: %.0f km (%.0f nm) over %d waypoints\n",
			route.Name, total, total/geo.KmPerNauticalMile, len(route.Waypoints))

		tt, err := geo.TravelTimeForDistance(total, distanceSpeed)
		if err != nil {
			return err
		}
		fmt.Printf("At %.1f kn: %.1f hours (%.1f days)\n", distanceSpeed, tt.TimeHours, tt.TimeHours/24)

		return nil
	},
}

func init() {
	distanceCmd.Flags().Float64Var(&distanceSpeed, "speed", 20, "Speed in knots for the travel-time estimate")
}
