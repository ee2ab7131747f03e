// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/contrastkitty/internal/config"
	"github.com/thatcatcamp/contrastkitty/internal/export"
	"github.com/thatcatcamp/contrastkitty/internal/handlers"
	"github.com/thatcatcamp/contrastkitty/internal/middleware"
	"github.com/thatcatcamp/contrastkitty/internal/themes"
	"github.com/thatcatcamp/contrastkitty/internal/tls"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start and manage the ContrastKitty HTTP server",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		tlsEnabled := config.GetBool("server.tls_enabled")
		baseDomain := config.GetString("server.base_domain")

		r, exportLimiter := newRouter(tlsEnabled)
		defer exportLimiter.Stop()

		if !tlsEnabled {
			// Dev mode - HTTP only
			httpAddr := fmt.Sprintf(":%s", config.GetString("server.http_port"))
			fmt.Printf("Starting HTTP server on %s (TLS disabled)\n", httpAddr)
			fmt.Printf("Base domain: %s\n", baseDomain)
			if err := r.Run(httpAddr); err != nil {
				fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
				os.Exit(1)
			}
			return
		}

		tlsCfg, err := tls.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load TLS config: %v\n", err)
			os.Exit(1)
		}

		tlsManager, err := tls.NewManager(context.Background(), tlsCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize TLS manager: %v\n", err)
			os.Exit(1)
		}

		// HTTP listener for ACME challenges + redirects
		httpAddr := fmt.Sprintf(":%s", config.GetString("server.http_port"))
		httpStarted := make(chan error, 1)

		go func() {
			// Create listener first to catch binding errors immediately
			listener, err := net.Listen("tcp", httpAddr)
			if err != nil {
				httpStarted <- fmt.Errorf("failed to bind HTTP server to %s: %w", httpAddr, err)
				return
			}

			httpStarted <- nil
			fmt.Printf("HTTP server listening on %s (ACME challenges + redirects)\n", httpAddr)

			if err := http.Serve(listener, r); err != nil {
				fmt.Fprintf(os.Stderr, "HTTP server failed: %v\n", err)
				os.Exit(1)
			}
		}()

		if err := <-httpStarted; err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintf(os.Stderr, "Hint: Port 80 typically requires root/sudo privileges\n")
			os.Exit(1)
		}

		httpsAddr := fmt.Sprintf(":%s", config.GetString("server.https_port"))
		fmt.Printf("Starting HTTPS server on %s\n", httpsAddr)
		fmt.Printf("Base domain: %s\n", baseDomain)

		server := &http.Server{
			Addr:              httpsAddr,
			Handler:           r,
			TLSConfig:         tlsManager.GetTLSConfig(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		if err := server.ListenAndServeTLS("", ""); err != nil {
			fmt.Fprintf(os.Stderr, "HTTPS server error: %v\n", err)
			os.Exit(1)
		}
	},
}

// newRouter builds the gin engine with middleware and every route. The
// returned limiter guards PNG export and must be stopped by the caller.
func newRouter(tlsEnabled bool) (*gin.Engine, *middleware.RateLimiter) {
	r := gin.Default()

	// Middleware must be in place before routes are registered
	if tlsEnabled {
		r.Use(middleware.HTTPSRedirectMiddleware(config.GetString("server.https_port")))
	}
	r.Use(middleware.SecurityHeadersMiddleware(tlsEnabled))
	r.Use(middleware.IPFilterMiddleware(config.GetStringSlice("security.blocked_ips")))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "contrastkitty",
		})
	})

	exportLimiter := middleware.NewRateLimiter(config.GetInt("ratelimit.export_per_minute"), time.Minute)
	newHandlers().Register(r, middleware.RateLimitMiddleware(exportLimiter))

	return r, exportLimiter
}

// newHandlers builds the page handlers from config
func newHandlers() *handlers.Handlers {
	theme := themes.GetTheme(config.GetString("server.theme"))
	if theme == nil {
		theme = themes.GetTheme("slate")
	}
	colors := themes.GenerateColors(theme, config.GetBool("server.dark_mode"))

	h := handlers.New(themes.GenerateCSS(colors))
	h.Codec.MaxEntries = config.GetInt("palette.max_entries")
	h.RequireTitle = config.GetBool("palette.require_title")
	h.PublicURL = config.GetString("server.public_url")
	h.DefaultPreset = config.GetString("palette.default_preset")
	h.Rasterizer = export.NewPNGRasterizer(config.GetInt("export.cell_size"), config.GetInt("export.scale"))
	return h
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
