package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/samkass/SwiftzerlandTransportAPI/pkg/transit"
)

func TestConfigLoadSave(t *testing.T) {
	// Create a temporary directory to act as the user's home directory
	tempDir := t.TempDir()

	// Override the home directory environment variable for testing
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir) // For Windows compatibility in tests

	// 1. Test Load with no existing file
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error when loading missing config, got: %v", err)
	}
	if cfg == nil {
		t.Fatalf("expected empty config to be returned, got nil")
	}

	// 2. Modify and Save the config
	cfg.HomeStation = "Zürich HB"
	cfg.HomeStationID = "8503000"
	cfg.FavoriteStations = []string{"Bern", "Aarau"}
	cfg.Limit = 6
	cfg.AccentColor = "205"

	err = Save(cfg)
	if err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	// Verify the file was actually created
	configPath := filepath.Join(tempDir, ".transportctl.json")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("expected config file to be created at %s", configPath)
	}

	// 3. Test Load with existing file
	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load existing config: %v", err)
	}

	if !reflect.DeepEqual(cfg, loadedCfg) {
		t.Errorf("loaded config does not match saved config.\nGot: %+v\nExpected: %+v", loadedCfg, cfg)
	}
}

func TestConfigParseError(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	// Write invalid JSON to the config file
	configPath := filepath.Join(tempDir, ".transportctl.json")
	err := os.WriteFile(configPath, []byte("invalid json { content"), 0644)
	if err != nil {
		t.Fatalf("failed to write invalid json: %v", err)
	}

	_, err = Load()
	if err == nil {
		t.Errorf("expected error when loading invalid json, got nil")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AppConfig
		wantErr bool
	}{
		{"empty", AppConfig{}, false},
		{"preset backend", AppConfig{Backend: "production"}, false},
		{"custom base url", AppConfig{Backend: "beta", BaseURL: "https://beta.example.com/v1"}, false},
		{"unknown backend", AppConfig{Backend: "staging"}, true},
		{"bad base url", AppConfig{BaseURL: "not a url"}, true},
		{"negative limit", AppConfig{Limit: -1}, true},
		{"limit too large", AppConfig{Limit: 100}, true},
		{"blank favorite", AppConfig{FavoriteStations: []string{"Bern", ""}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigSaveRejectsInvalid(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	if err := Save(&AppConfig{BaseURL: "::"}); err == nil {
		t.Fatalf("expected invalid config to be rejected")
	}
	if _, err := os.Stat(filepath.Join(tempDir, ".transportctl.json")); !os.IsNotExist(err) {
		t.Errorf("expected no config file to be written")
	}
}

func TestResolveBackend(t *testing.T) {
	if got := (&AppConfig{}).ResolveBackend(); got.BaseURL != transit.Production.BaseURL {
		t.Errorf("expected production backend by default, got %s", got.BaseURL)
	}

	custom := (&AppConfig{Backend: "beta", BaseURL: "https://beta.example.com/v1"}).ResolveBackend()
	if custom.Name != "beta" || custom.BaseURL != "https://beta.example.com/v1" {
		t.Errorf("expected custom backend, got %+v", custom)
	}
	if !custom.Capabilities.Transportations {
		t.Errorf("expected custom backend to inherit capabilities")
	}
}

func TestSetBaseURL(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	cfg := &AppConfig{Backend: "production"}
	cfg.SetBaseURL("https://beta.example.com/v1")
	if cfg.Backend != "custom" || cfg.BaseURL != "https://beta.example.com/v1" {
		t.Fatalf("expected custom backend, got %+v", cfg)
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save custom backend: %v", err)
	}

	cfg.SetBaseURL("")
	if cfg.Backend != transit.Production.Name || cfg.BaseURL != "" {
		t.Errorf("expected production after clearing the base URL, got %+v", cfg)
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("expected cleared config to save, got %v", err)
	}

	named := &AppConfig{Backend: "beta"}
	named.SetBaseURL("https://beta.example.com/v1")
	if named.Backend != "beta" {
		t.Errorf("expected custom name to be kept, got %s", named.Backend)
	}
}
