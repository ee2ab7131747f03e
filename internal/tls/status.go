// SPDX-License-Identifier: MIT
package tls

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// CertificateStatus represents the status of a managed certificate
type CertificateStatus struct {
	Domain          string
	Issuer          string
	NotBefore       time.Time
	NotAfter        time.Time
	DaysUntilExpiry int
}

// caDirectories are the certmagic storage folders for the issuers NewManager
// configures, production first
var caDirectories = []string{
	"acme-v02.api.letsencrypt.org-directory",
	"acme-staging-v02.api.letsencrypt.org-directory",
}

// GetCertificateStatus reads the stored certificate for every domain in
// cfg. Domains without a certificate yet are left out.
func GetCertificateStatus(cfg *Config) ([]CertificateStatus, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	var statuses []CertificateStatus
	for _, domain := range cfg.AllowedDomains() {
		certPath := findCertificate(cfg.CertDir, domain)
		if certPath == "" {
			continue
		}

		certPEM, err := os.ReadFile(certPath)
		if err != nil {
			continue
		}

		// certmagic stores the leaf first
		block, _ := pem.Decode(certPEM)
		if block == nil {
			continue
		}

		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			continue
		}

		statuses = append(statuses, CertificateStatus{
			Domain:          domain,
			Issuer:          cert.Issuer.CommonName,
			NotBefore:       cert.NotBefore,
			NotAfter:        cert.NotAfter,
			DaysUntilExpiry: int(time.Until(cert.NotAfter).Hours() / 24),
		})
	}

	return statuses, nil
}

// findCertificate returns the stored certificate path for domain, or ""
// when it has not been provisioned.
// Layout: {certDir}/certificates/{ca}/{domain}/{domain}.crt
func findCertificate(certDir, domain string) string {
	for _, ca := range caDirectories {
		path := filepath.Join(certDir, "certificates", ca, domain, domain+".crt")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// GetCertificateStatus returns the status of all managed certificates
func (m *Manager) GetCertificateStatus() ([]CertificateStatus, error) {
	return GetCertificateStatus(m.cfg)
}
