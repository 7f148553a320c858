package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rawataarushi/marithon/internal/routes"
	"github.com/rawataarushi/marithon/internal/sim"
)

var flagRoute string

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless voyage and print per-waypoint estimates",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		route, ok := routes.FindRoute(flagRoute)
		if !ok {
			return fmt.Errorf("unknown route %q (see 'marithon routes')", flagRoute)
		}

		stepper, err := sim.New(route, cfg.Sim.BaseSpeed, cfg.Ship, cfg.Fuel, cfg.Cost, buildProvider(cfg))
		if err != nil {
			return err
		}

		fmt.Printf("%s · %d waypoints · base speed %.1f kn\n\n", route.Name, len(route.Waypoints), cfg.Sim.BaseSpeed)

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WP\tPOSITION\tCOURSE\tSOG\tSTW\tBURN kg/h\tFUEL LEFT t\tCOST $")

		for step := range stepper.Run(context.Background(), 0) {
			fmt.Fprintf(w, "%d\t%.2f,%.2f\t%03.0f°\t%.1f\t%.1f\t%.0f\t%.1f\t%.0f\n",
				step.WaypointIndex+1,
				step.Position.Lat, step.Position.Lon,
				step.Course,
				step.Speed.SOG, step.Speed.STW,
				step.Fuel.Current,
				step.Fuel.Total/1000,
				step.Cost.Total,
			)
		}

		return w.Flush()
	},
}

func init() {
	simulateCmd.Flags().StringVar(&flagRoute, "route", "asia-europe-suez", "Route ID to simulate")
}
