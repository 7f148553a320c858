// Package config loads application configuration from an optional YAML file
// and MARITHON_-prefixed environment variables, with defaults that reproduce
// the stock vessel and fare table.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/rawataarushi/marithon/internal/database"
	"github.com/rawataarushi/marithon/internal/voyage"
)

// WeatherConfig controls the weather provider chain.
type WeatherConfig struct {
	// Offline skips the live Open-Meteo calls and uses synthetic data only.
	Offline bool `mapstructure:"offline"`
	// CacheTTL is how long a cached waypoint snapshot stays fresh.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	// DBPath overrides the shared database location.
	DBPath string `mapstructure:"db_path"`
}

// SimConfig controls the voyage stepper.
type SimConfig struct {
	// BaseSpeed is the ship's service speed in knots.
	BaseSpeed float64 `mapstructure:"base_speed"`
	// StepInterval is the wall-clock time between waypoint advances.
	StepInterval time.Duration `mapstructure:"step_interval"`
}

// Config combines all sub-configurations.
type Config struct {
	Ship    voyage.ShipConfig `mapstructure:"ship"`
	Fuel    voyage.FuelConfig `mapstructure:"fuel"`
	Cost    voyage.CostConfig `mapstructure:"cost"`
	Weather WeatherConfig     `mapstructure:"weather"`
	Sim     SimConfig         `mapstructure:"sim"`
}

// Load reads configuration with priority: environment variables, then the
// config file (config.yaml in the working directory by default), then
// defaults. A missing config file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix("MARITHON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// The fuel model's normalization speed follows the configured service
	// speed unless fuel.base_speed is set explicitly. Resolved after the
	// config file is read so a file-set sim.base_speed carries through.
	v.SetDefault("fuel.base_speed", v.GetFloat64("sim.base_speed"))

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers the stock model parameters key by key, so a config
// file setting part of a section inherits the rest instead of zeroing it.
func setDefaults(v *viper.Viper) {
	ship := voyage.DefaultShipConfig()
	v.SetDefault("ship.beam", ship.Beam)
	v.SetDefault("ship.height", ship.Height)
	v.SetDefault("ship.air_density", ship.AirDensity)
	v.SetDefault("ship.drag_coefficient", ship.DragCoefficient)
	v.SetDefault("ship.wind_resistance_coeff", ship.WindResistanceCoeff)
	v.SetDefault("ship.wave_loss_per_meter", ship.WaveLossPerMeter)
	v.SetDefault("ship.swell_loss_per_meter", ship.SwellLossPerMeter)
	v.SetDefault("ship.base_power", ship.BasePower)
	v.SetDefault("ship.sfoc", ship.SFOC)
	v.SetDefault("ship.min_stw", ship.MinSTW)

	fuel := voyage.DefaultFuelConfig()
	v.SetDefault("fuel.base_consumption", fuel.BaseConsumption)
	v.SetDefault("fuel.hours_per_leg", fuel.HoursPerLeg)
	v.SetDefault("fuel.wind_strong_above", fuel.WindStrongAbove)
	v.SetDefault("fuel.wind_strong_mult", fuel.WindStrongMult)
	v.SetDefault("fuel.wind_moderate_above", fuel.WindModerateAbove)
	v.SetDefault("fuel.wind_moderate_mult", fuel.WindModerateMult)
	v.SetDefault("fuel.wave_rough_above", fuel.WaveRoughAbove)
	v.SetDefault("fuel.wave_rough_mult", fuel.WaveRoughMult)
	v.SetDefault("fuel.wave_moderate_above", fuel.WaveModerateAbove)
	v.SetDefault("fuel.wave_moderate_mult", fuel.WaveModerateMult)

	cost := voyage.DefaultCostConfig()
	v.SetDefault("cost.fuel_price", cost.FuelPrice)
	v.SetDefault("cost.operational_per_hour", cost.OperationalPerHour)
	v.SetDefault("cost.port_fee", cost.PortFee)
	v.SetDefault("cost.canal_fee", cost.CanalFee)
	v.SetDefault("cost.hours_per_leg", cost.HoursPerLeg)
	v.SetDefault("cost.weather_surcharge", cost.WeatherSurcharge)
	v.SetDefault("cost.port_fee_policy", string(cost.PortFeePolicy))
	v.SetDefault("cost.wind_above", cost.WindAbove)
	v.SetDefault("cost.wave_above", cost.WaveAbove)

	v.SetDefault("sim.base_speed", 20.0)
	v.SetDefault("sim.step_interval", 2*time.Second)

	v.SetDefault("weather.offline", false)
	v.SetDefault("weather.cache_ttl", time.Hour)
	v.SetDefault("weather.db_path", database.DBPath())
}

func validate(cfg *Config) error {
	if cfg.Sim.BaseSpeed <= 0 {
		return fmt.Errorf("sim.base_speed must be positive, got %v", cfg.Sim.BaseSpeed)
	}
	if cfg.Fuel.BaseSpeed <= 0 {
		return fmt.Errorf("fuel.base_speed must be positive, got %v", cfg.Fuel.BaseSpeed)
	}
	if cfg.Ship.BasePower <= 0 {
		return fmt.Errorf("ship.base_power must be positive, got %v", cfg.Ship.BasePower)
	}
	if cfg.Fuel.BaseConsumption <= 0 {
		return fmt.Errorf("fuel.base_consumption must be positive, got %v", cfg.Fuel.BaseConsumption)
	}
	for key, mult := range map[string]float64{
		"fuel.wind_strong_mult":   cfg.Fuel.WindStrongMult,
		"fuel.wind_moderate_mult": cfg.Fuel.WindModerateMult,
		"fuel.wave_rough_mult":    cfg.Fuel.WaveRoughMult,
		"fuel.wave_moderate_mult": cfg.Fuel.WaveModerateMult,
		"cost.weather_surcharge":  cfg.Cost.WeatherSurcharge,
	} {
		if mult < 1 {
			return fmt.Errorf("%s must be at least 1, got %v", key, mult)
		}
	}
	switch cfg.Cost.PortFeePolicy {
	case voyage.PortFeeHeuristic, voyage.PortFeeExact:
	default:
		return fmt.Errorf("cost.port_fee_policy must be %q or %q, got %q",
			voyage.PortFeeHeuristic, voyage.PortFeeExact, cfg.Cost.PortFeePolicy)
	}
	return nil
}

// MustLoad loads configuration or panics. Intended for command entry points.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("loading configuration: %v", err))
	}
	return cfg
}
