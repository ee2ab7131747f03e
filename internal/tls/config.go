// SPDX-License-Identifier: MIT
package tls

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/thatcatcamp/contrastkitty/internal/config"
)

// Config holds TLS configuration
type Config struct {
	Email      string
	CertDir    string
	Staging    bool
	BaseDomain string
	PublicURL  string
	Enabled    bool
}

// LoadConfig loads TLS configuration from config system
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Email:      config.GetString("tls.email"),
		CertDir:    config.GetString("tls.cert_dir"),
		Staging:    config.GetBool("tls.staging"),
		BaseDomain: config.GetString("server.base_domain"),
		PublicURL:  config.GetString("server.public_url"),
		Enabled:    config.GetBool("server.tls_enabled"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Create cert directory if it doesn't exist
	if cfg.Enabled && cfg.CertDir != "" {
		if err := os.MkdirAll(cfg.CertDir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create cert directory: %w", err)
		}
	}

	return cfg, nil
}

// Validate checks the fields HTTPS needs when TLS is enabled
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Email == "" {
		return fmt.Errorf("tls.email is required when TLS is enabled")
	}
	if c.BaseDomain == "" || c.BaseDomain == "localhost" {
		return fmt.Errorf("server.base_domain must be a public domain when TLS is enabled")
	}
	if c.PublicURL != "" {
		if _, err := url.Parse(c.PublicURL); err != nil {
			return fmt.Errorf("invalid server.public_url: %w", err)
		}
	}
	return nil
}

// AllowedDomains lists the hosts certificates are requested for: the
// base domain and the host share links point at, without duplicates
func (c *Config) AllowedDomains() []string {
	domains := []string{c.BaseDomain}

	if c.PublicURL != "" {
		if u, err := url.Parse(c.PublicURL); err == nil {
			host := strings.ToLower(u.Hostname())
			if host != "" && host != strings.ToLower(c.BaseDomain) {
				domains = append(domains, host)
			}
		}
	}

	return domains
}
