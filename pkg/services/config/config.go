package config

import (
	"fmt"
	"time"

	"github.com/de-tools/time-atlas/pkg/models/domain"
	"github.com/de-tools/time-atlas/pkg/services/report"
	"github.com/spf13/viper"
)

type TrackerConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	APISecret string        `mapstructure:"api_secret"`
	BaseURL   string        `mapstructure:"base_url"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
}

type BillingConfig struct {
	Token   string `mapstructure:"token"`
	BaseURL string `mapstructure:"base_url"`
}

// Config is the per-run application config: the activity map, rounding
// granularities, and API endpoints. Loaded once and immutable afterwards.
type Config struct {
	Tracker    TrackerConfig      `mapstructure:"tracker"`
	Billing    BillingConfig      `mapstructure:"billing"`
	Rounding   domain.Rounding    `mapstructure:"rounding"`
	Activities domain.ActivityMap `mapstructure:"activities"`
	Timezone   string             `mapstructure:"timezone"`
}

// Load reads and validates the config file. A non-positive rounding step is
// a startup failure.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("rounding.entry_round_up", 10)
	v.SetDefault("rounding.project_round_up", 15)
	v.SetDefault("tracker.cache_ttl", "5m")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := report.ValidateRounding(cfg.Rounding); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Location resolves the configured timezone, defaulting to the system's.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
