// This test file verifies the configuration loading logic using Viper.

package config

import (
	"os"
	"reflect"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults when no config file", func(t *testing.T) {
		// Ensure no config file exists for this test
		os.Remove("config.yml")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned an error: %v", err)
		}

		// Check if default values are set
		if cfg.Port != 8080 {
			t.Errorf("Expected default port 8080, got %d", cfg.Port)
		}
		if !reflect.DeepEqual(cfg.Languages, []string{"en"}) {
			t.Errorf("Expected default languages [en], got %v", cfg.Languages)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("Expected default log level 'info', got '%s'", cfg.LogLevel)
		}
	})

	t.Run("Loads from config file", func(t *testing.T) {
		// Create a temporary config file for this test
		configContent := `
port: 9999
languages:
  - en
  - pl
log_level: "debug"
unknown_setting: "should be ignored"
`
		// Create the config file in the current directory so Viper can find it.
		// Note: `t.TempDir()` is not used here because Viper looks in the CWD.
		configPath := "config.yml"
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config file: %v", err)
		}
		// Clean up the file after the test
		defer os.Remove(configPath)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned an error: %v", err)
		}

		// Check if values from the file were loaded
		if cfg.Port != 9999 {
			t.Errorf("Expected port 9999, got %d", cfg.Port)
		}
		if !reflect.DeepEqual(cfg.Languages, []string{"en", "pl"}) {
			t.Errorf("Expected languages [en pl], got %v", cfg.Languages)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("Expected log level 'debug', got '%s'", cfg.LogLevel)
		}
	})
}
