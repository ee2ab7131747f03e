// SPDX-License-Identifier: MIT
package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware adds security headers to all responses
func SecurityHeadersMiddleware(tlsEnabled bool) gin.HandlerFunc {
	// The editor is plain HTML forms with inline styles; no scripts at all
	csp := "default-src 'self'; " +
		"script-src 'none'; " +
		"style-src 'self' 'unsafe-inline'; " +
		"img-src 'self' data:; " +
		"form-action 'self'; " +
		"frame-ancestors 'self'"

	return func(c *gin.Context) {
		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking
		c.Header("X-Frame-Options", "SAMEORIGIN")

		// Share links carry the palette; don't leak them to other origins
		c.Header("Referrer-Policy", "same-origin")

		c.Header("Content-Security-Policy", csp)

		if tlsEnabled {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
