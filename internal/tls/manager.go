// SPDX-License-Identifier: MIT
package tls

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"

	"github.com/caddyserver/certmagic"
)

// Manager handles certificate provisioning and management
type Manager struct {
	cfg       *Config
	certmagic *certmagic.Config
}

// NewManager creates a new TLS manager and starts managing the allowed
// domains in the background
func NewManager(ctx context.Context, cfg *Config) (*Manager, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	cache := certmagic.NewCache(certmagic.CacheOptions{
		GetConfigForCert: func(certmagic.Certificate) (*certmagic.Config, error) {
			return &certmagic.Default, nil
		},
	})

	magicCfg := certmagic.New(cache, certmagic.Config{
		Storage: &certmagic.FileStorage{Path: cfg.CertDir},
	})

	ca := certmagic.LetsEncryptProductionCA
	if cfg.Staging {
		ca = certmagic.LetsEncryptStagingCA
	}
	magicCfg.Issuers = []certmagic.Issuer{
		certmagic.NewACMEIssuer(magicCfg, certmagic.ACMEIssuer{
			CA:     ca,
			Email:  cfg.Email,
			Agreed: true,
		}),
	}

	m := &Manager{
		cfg:       cfg,
		certmagic: magicCfg,
	}

	if err := m.manage(ctx); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Manager) manage(ctx context.Context) error {
	domains := m.cfg.AllowedDomains()

	log.Printf("TLS: Managing certificates for %d domains", len(domains))
	for _, domain := range domains {
		log.Printf("TLS: - %s", domain)
	}

	if err := m.certmagic.ManageAsync(ctx, domains); err != nil {
		return fmt.Errorf("failed to manage domains: %w", err)
	}
	return nil
}

// GetTLSConfig returns TLS config for HTTPS server
func (m *Manager) GetTLSConfig() *tls.Config {
	return m.certmagic.TLSConfig()
}
