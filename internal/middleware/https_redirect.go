// SPDX-License-Identifier: MIT
package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// HTTPSRedirectMiddleware sends plain HTTP requests to the HTTPS listener.
// ACME HTTP challenges are let through. GET and HEAD get 301; other methods
// get 308 so the form body is replayed.
func HTTPSRedirectMiddleware(httpsPort string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.TLS != nil {
			c.Next()
			return
		}

		if strings.HasPrefix(c.Request.URL.Path, "/.well-known/acme-challenge/") {
			c.Next()
			return
		}

		host := c.Request.Host
		if h, _, err := net.SplitHostPort(host); err == nil {
			host = h
		}
		if httpsPort != "" && httpsPort != "443" {
			host = net.JoinHostPort(host, httpsPort)
		}

		status := http.StatusMovedPermanently
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			status = http.StatusPermanentRedirect
		}
		c.Redirect(status, "https://"+host+c.Request.URL.RequestURI())
		c.Abort()
	}
}
