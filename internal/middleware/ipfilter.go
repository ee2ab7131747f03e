// SPDX-License-Identifier: MIT
package middleware

import (
	"log"
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// IPFilterMiddleware rejects clients inside any of the blocked CIDR ranges.
// Bare addresses are treated as single-host ranges; invalid entries are
// logged and skipped.
func IPFilterMiddleware(blocklist []string) gin.HandlerFunc {
	blockedCIDRs := make([]*net.IPNet, 0, len(blocklist))
	for _, entry := range blocklist {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if !strings.Contains(entry, "/") {
			if ip := net.ParseIP(entry); ip != nil && ip.To4() != nil {
				entry += "/32"
			} else {
				entry += "/128"
			}
		}
		_, ipNet, err := net.ParseCIDR(entry)
		if err != nil {
			log.Printf("ipfilter: ignoring invalid blocklist entry %q: %v", entry, err)
			continue
		}
		blockedCIDRs = append(blockedCIDRs, ipNet)
	}

	return func(c *gin.Context) {
		if len(blockedCIDRs) == 0 {
			c.Next()
			return
		}

		clientIP := net.ParseIP(c.ClientIP())
		if clientIP == nil {
			c.AbortWithStatus(403)
			return
		}

		for _, ipNet := range blockedCIDRs {
			if ipNet.Contains(clientIP) {
				c.AbortWithStatus(403)
				return
			}
		}

		c.Next()
	}
}
