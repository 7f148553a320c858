package main

import (
	"github.com/spf13/cobra"

	"github.com/rawataarushi/marithon/internal/config"
	"github.com/rawataarushi/marithon/internal/weather"
)

var (
	flagConfig  string
	flagOffline bool
	flagSpeed   float64
)

var rootCmd = &cobra.Command{
	Use:   "marithon",
	Short: "Maritime trade-route voyage simulator",
	Long: `Marithon renders maritime trade routes in the terminal, fetches a
weather snapshot per waypoint, and simulates a ship's voyage with
weather-affected speed, fuel, and cost estimates at each step.`,
	// Running without a subcommand opens the TUI.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config.yaml (defaults to ./config.yaml if present)")
	rootCmd.PersistentFlags().BoolVar(&flagOffline, "offline", false, "Use synthetic weather instead of the live Open-Meteo APIs")
	rootCmd.PersistentFlags().Float64Var(&flagSpeed, "speed", 0, "Ship service speed in knots (overrides config)")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(distanceCmd)
}

// loadConfig loads configuration and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if flagOffline {
		cfg.Weather.Offline = true
	}
	if flagSpeed > 0 {
		cfg.Sim.BaseSpeed = flagSpeed
		cfg.Fuel.BaseSpeed = flagSpeed
	}

	return cfg, nil
}

// buildProvider assembles the weather provider chain: live client behind the
// sqlite cache, with the synthetic generator as the always-on fallback.
func buildProvider(cfg *config.Config) weather.Provider {
	if cfg.Weather.Offline {
		return weather.NewSynthetic()
	}

	cached := weather.NewCachingProvider(weather.NewOpenMeteoClient(), cfg.Weather.DBPath, cfg.Weather.CacheTTL)
	// A failed purge only means expired rows linger until the next start.
	_ = cached.Purge()
	return weather.NewWithFallback(cached)
}
