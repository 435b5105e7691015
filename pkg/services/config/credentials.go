package config

import (
	"fmt"

	"gopkg.in/ini.v1"
)

const DefaultProfile = "default"

// Credentials live in an ini profile file separate from the report config,
// so the activity map can be shared while secrets stay local.
type Credentials struct {
	TrackerAPIKey    string
	TrackerAPISecret string
	BillingToken     string
}

// LoadCredentials reads one profile section from the credentials file.
func LoadCredentials(path, profile string) (*Credentials, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	if profile == "" {
		profile = DefaultProfile
	}

	section, err := cfg.GetSection(profile)
	if err != nil {
		return nil, fmt.Errorf("credentials profile %q not found in %s", profile, path)
	}

	return &Credentials{
		TrackerAPIKey:    section.Key("tracker_api_key").String(),
		TrackerAPISecret: section.Key("tracker_api_secret").String(),
		BillingToken:     section.Key("billing_token").String(),
	}, nil
}

// Profiles lists the named profiles present in the credentials file.
func Profiles(path string) ([]string, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var profiles []string
	for _, section := range cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

// Apply overlays non-empty credential values onto the config.
func (c *Config) Apply(creds *Credentials) {
	if creds == nil {
		return
	}
	if creds.TrackerAPIKey != "" {
		c.Tracker.APIKey = creds.TrackerAPIKey
	}
	if creds.TrackerAPISecret != "" {
		c.Tracker.APISecret = creds.TrackerAPISecret
	}
	if creds.BillingToken != "" {
		c.Billing.Token = creds.BillingToken
	}
}
