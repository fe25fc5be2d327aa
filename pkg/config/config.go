package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/samkass/SwiftzerlandTransportAPI/pkg/transit"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	HomeStation      string   `json:"home_station,omitempty"`
	HomeStationID    string   `json:"home_station_id,omitempty"`
	FavoriteStations []string `json:"favorite_stations,omitempty" validate:"dive,required"`
	Backend          string   `json:"backend,omitempty"`
	BaseURL          string   `json:"base_url,omitempty" validate:"omitempty,url"`
	Limit            int      `json:"limit,omitempty" validate:"gte=0,lte=16"`
	AccentColor      string   `json:"accent_color,omitempty"`
}

var validate = validator.New()

// getConfigPath returns the absolute path to ~/.transportctl.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".transportctl.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, just return an empty default configuration
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save validates the configuration and writes it back to disk.
func Save(cfg *AppConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks field constraints and that Backend names a known preset
// unless a custom BaseURL is given.
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.BaseURL == "" && c.Backend != "" {
		if _, ok := transit.LookupBackend(c.Backend); !ok {
			return fmt.Errorf("invalid config: unknown backend %q", c.Backend)
		}
	}
	return nil
}

// SetBaseURL points the config at a custom deployment. Clearing the URL
// falls back to the production preset.
func (c *AppConfig) SetBaseURL(baseURL string) {
	c.BaseURL = baseURL
	if baseURL == "" {
		c.Backend = transit.Production.Name
		return
	}
	if _, preset := transit.LookupBackend(c.Backend); preset || c.Backend == "" {
		c.Backend = "custom"
	}
}

// ResolveBackend returns the backend the client should talk to. A custom
// base URL wins over a named preset; the default is transit.Production.
func (c *AppConfig) ResolveBackend() transit.Backend {
	if c.BaseURL != "" {
		name := c.Backend
		if name == "" {
			name = "custom"
		}
		return transit.Custom(name, c.BaseURL)
	}
	if b, ok := transit.LookupBackend(c.Backend); ok {
		return b
	}
	return transit.Production
}
