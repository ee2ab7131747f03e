// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var v *viper.Viper

// EnvPrefix is the prefix for environment overrides, e.g. CONTRAST_SERVER_HTTP_PORT
const EnvPrefix = "CONTRAST"

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	v = viper.New()

	// Set defaults
	setDefaults()

	// Environment overrides: server.http_port -> CONTRAST_SERVER_HTTP_PORT
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set config file path
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Try to read existing config
	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, create it with defaults
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	v.SetDefault("server.http_port", "8080")
	v.SetDefault("server.https_port", "443")
	v.SetDefault("server.base_domain", "localhost")
	v.SetDefault("server.public_url", "") // derived from the request when empty
	v.SetDefault("server.dark_mode", false)
	v.SetDefault("server.theme", "slate")

	// Palette defaults
	v.SetDefault("palette.max_entries", 24)
	v.SetDefault("palette.require_title", false)
	v.SetDefault("palette.default_preset", "default")

	// PNG export defaults
	v.SetDefault("export.cell_size", 72)
	v.SetDefault("export.scale", 2)

	// Rate limiting and access
	v.SetDefault("ratelimit.export_per_minute", 20)
	v.SetDefault("security.blocked_ips", []string{})

	// TLS defaults
	v.SetDefault("server.tls_enabled", false)
	v.SetDefault("tls.email", "")
	v.SetDefault("tls.cert_dir", "/var/lib/contrastkitty/certs")
	v.SetDefault("tls.staging", false)
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt returns a config value as int
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetDuration returns a config value as time.Duration
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// GetStringSlice returns a config value as a list of strings
func GetStringSlice(key string) []string {
	if v == nil {
		return nil
	}
	return v.GetStringSlice(key)
}

// Set sets a config value and saves to file
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}
