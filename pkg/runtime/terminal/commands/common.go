package commands

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/de-tools/time-atlas/pkg/services/config"
	"github.com/de-tools/time-atlas/pkg/services/report"
	"github.com/de-tools/time-atlas/pkg/store/tracker"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const commandTimeout = 60 * time.Second

// configFlags are shared by every command that talks to the tracker.
type configFlags struct {
	configPath      string
	credentialsPath string
	profile         string
}

func (f *configFlags) register(cmd *cobra.Command) {
	home := ""
	if usr, err := user.Current(); err == nil {
		home = usr.HomeDir
	}

	cmd.Flags().StringVar(&f.configPath, "config",
		filepath.Join(home, ".time-atlas", "config.yaml"), "Path to the config file")
	cmd.Flags().StringVar(&f.credentialsPath, "credentials",
		filepath.Join(home, ".time-atlas", "credentials"), "Path to the credentials file")
	cmd.Flags().StringVar(&f.profile, "profile", config.DefaultProfile, "Credentials profile to use")
}

// load reads the config file and overlays the selected credentials profile.
// A missing credentials file is fine as long as the config carries the keys.
func (f *configFlags) load() (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	if _, statErr := os.Stat(f.credentialsPath); statErr == nil {
		creds, err := config.LoadCredentials(f.credentialsPath, f.profile)
		if err != nil {
			return nil, err
		}
		cfg.Apply(creds)
	}

	if cfg.Tracker.APIKey == "" || cfg.Tracker.APISecret == "" {
		return nil, fmt.Errorf("tracker api key and secret are not configured")
	}

	return cfg, nil
}

func newTrackerClient(cfg *config.Config) *tracker.Client {
	return tracker.NewClient(tracker.Options{
		APIKey:    cfg.Tracker.APIKey,
		APISecret: cfg.Tracker.APISecret,
		BaseURL:   cfg.Tracker.BaseURL,
		Cache:     tracker.NewMemoryCache(cfg.Tracker.CacheTTL),
	})
}

func newRunner(cfg *config.Config, roundEntries bool) (*report.Runner, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	return report.NewRunner(report.RunnerOptions{
		Tracker:      newTrackerClient(cfg),
		Activities:   cfg.Activities,
		Rounding:     cfg.Rounding,
		Location:     loc,
		RoundEntries: roundEntries,
	})
}

func runContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())
	return context.WithTimeout(ctx, commandTimeout)
}
