package main

import (
	"fmt"
	"net"
	"os"
	"os/user"

	"github.com/de-tools/time-atlas/pkg/server"
	"github.com/de-tools/time-atlas/pkg/services/config"
	"github.com/de-tools/time-atlas/pkg/services/report"
	"github.com/de-tools/time-atlas/pkg/store/tracker"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath   string
	credsPath string
	profile   string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Time Atlas",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultCfg := fmt.Sprintf("%s/.time-atlas/config.yaml", usr.HomeDir)
	defaultCreds := fmt.Sprintf("%s/.time-atlas/credentials", usr.HomeDir)

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", defaultCfg,
		"Path to the config file (default is $HOME/.time-atlas/config.yaml)")
	rootCmd.Flags().StringVar(&credsPath, "credentials", defaultCreds,
		"Path to the credentials file")
	rootCmd.Flags().StringVar(&profile, "profile", config.DefaultProfile,
		"Credentials profile to use")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if _, statErr := os.Stat(credsPath); statErr == nil {
		creds, err := config.LoadCredentials(credsPath, profile)
		if err != nil {
			return fmt.Errorf("failed to load credentials: %w", err)
		}
		cfg.Apply(creds)

		profiles, _ := config.Profiles(credsPath)
		logger.Info().Strs("profiles", profiles).Str("active", profile).Msg("credentials loaded")
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	trackerClient := tracker.NewClient(tracker.Options{
		APIKey:    cfg.Tracker.APIKey,
		APISecret: cfg.Tracker.APISecret,
		BaseURL:   cfg.Tracker.BaseURL,
		Cache:     tracker.NewMemoryCache(cfg.Tracker.CacheTTL),
	})

	runner, err := report.NewRunner(report.RunnerOptions{
		Tracker:    trackerClient,
		Activities: cfg.Activities,
		Rounding:   cfg.Rounding,
		Location:   loc,
	})
	if err != nil {
		return fmt.Errorf("failed to create report runner: %w", err)
	}

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	addr := net.JoinHostPort(host, port)

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:         addr,
		Dependencies: server.Dependencies{Runner: runner},
	})

	return webAPI.Start()
}
