// SPDX-License-Identifier: MIT
package tls

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "Disabled", cfg: Config{}, wantErr: false},
		{name: "Enabled", cfg: Config{Enabled: true, Email: "ops@example.com", BaseDomain: "contrast.example.com"}, wantErr: false},
		{name: "Missing email", cfg: Config{Enabled: true, BaseDomain: "contrast.example.com"}, wantErr: true},
		{name: "Localhost", cfg: Config{Enabled: true, Email: "ops@example.com", BaseDomain: "localhost"}, wantErr: true},
		{name: "Bad public URL", cfg: Config{Enabled: true, Email: "ops@example.com", BaseDomain: "example.com", PublicURL: "http://[::1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAllowedDomains(t *testing.T) {
	tests := []struct {
		name      string
		publicURL string
		want      []string
	}{
		{name: "Base only", want: []string{"example.com"}},
		{name: "Same host", publicURL: "https://EXAMPLE.com/", want: []string{"example.com"}},
		{name: "Share host", publicURL: "https://colors.example.org:8443/matrix", want: []string{"example.com", "colors.example.org"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{BaseDomain: "example.com", PublicURL: tt.publicURL}
			if got := cfg.AllowedDomains(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AllowedDomains() = %v, want %v", got, tt.want)
			}
		})
	}
}

func writeTestCertificate(t *testing.T, dir, ca, domain string, notAfter time.Time) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: domain},
		DNSNames:     []string{domain},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     notAfter,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("Failed to create certificate: %v", err)
	}

	certDir := filepath.Join(dir, "certificates", ca, domain)
	if err := os.MkdirAll(certDir, 0700); err != nil {
		t.Fatalf("Failed to create cert dir: %v", err)
	}
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	if err := os.WriteFile(filepath.Join(certDir, domain+".crt"), certPEM, 0600); err != nil {
		t.Fatalf("Failed to write certificate: %v", err)
	}
}

func TestGetCertificateStatus(t *testing.T) {
	dir := t.TempDir()
	writeTestCertificate(t, dir, caDirectories[1], "colors.example.org", time.Now().Add(30*24*time.Hour+time.Hour))

	cfg := &Config{
		CertDir:    dir,
		BaseDomain: "example.com",
		PublicURL:  "https://colors.example.org/",
	}

	statuses, err := GetCertificateStatus(cfg)
	if err != nil {
		t.Fatalf("GetCertificateStatus failed: %v", err)
	}
	if len(statuses) != 1 {
		t.Fatalf("Expected 1 provisioned certificate, got %d", len(statuses))
	}

	s := statuses[0]
	if s.Domain != "colors.example.org" {
		t.Errorf("Domain = %q", s.Domain)
	}
	// Self-signed, so the issuer is the subject
	if s.Issuer != "colors.example.org" {
		t.Errorf("Issuer = %q", s.Issuer)
	}
	if s.DaysUntilExpiry != 30 {
		t.Errorf("DaysUntilExpiry = %d, want 30", s.DaysUntilExpiry)
	}
}

func TestGetCertificateStatus_NilConfig(t *testing.T) {
	if _, err := GetCertificateStatus(nil); err == nil {
		t.Error("Expected error for nil config")
	}
}
