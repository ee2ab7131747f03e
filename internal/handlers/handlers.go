// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/contrastkitty/internal/export"
	"github.com/thatcatcamp/contrastkitty/internal/link"
	"github.com/thatcatcamp/contrastkitty/internal/matrix"
	"github.com/thatcatcamp/contrastkitty/internal/palette"
	"github.com/thatcatcamp/contrastkitty/internal/themes"
)

// Handlers serves the editor, the JSON API and PNG export. It holds no
// palette state; every request carries its palette in the URL or body.
type Handlers struct {
	Codec         link.Codec
	Rasterizer    export.Rasterizer
	RequireTitle  bool
	PublicURL     string // share link origin + path; derived from the request when empty
	DefaultPreset string
	CSS           string
}

// New returns handlers with the given page stylesheet and defaults for
// everything else
func New(css string) *Handlers {
	return &Handlers{
		Codec:         link.Codec{MaxEntries: 24},
		Rasterizer:    export.NewPNGRasterizer(72, 2),
		DefaultPreset: themes.DefaultPreset,
		CSS:           css,
	}
}

// Register mounts every route on r
func (h *Handlers) Register(r gin.IRouter, exportLimit gin.HandlerFunc) {
	r.GET("/", h.EditorHandler)
	r.POST("/palette", h.PaletteFormHandler)
	r.GET("/presets", h.PresetsHandler)

	api := r.Group("/api")
	{
		api.GET("/matrix", h.MatrixAPIHandler)
		api.POST("/palette", h.PaletteAPIHandler)
	}

	if exportLimit != nil {
		r.GET("/export.png", exportLimit, h.ExportHandler)
	} else {
		r.GET("/export.png", h.ExportHandler)
	}
}

// generation is everything a page or API response shows for one palette
type generation struct {
	Model      *palette.Model
	Palette    palette.Palette // snapshot the matrix was built from
	Matrix     matrix.Matrix
	ShareURL   string
	ColorsOnly bool
	Fallback   bool // the request's palette was unusable and the default was shown
	Notices    []string
	Err        error // ErrMissingTitle when generation was blocked
}

// defaultPalette returns the configured starting palette
func (h *Handlers) defaultPalette() palette.Palette {
	if p, ok := themes.Preset(h.DefaultPreset); ok {
		return p
	}
	return palette.Default()
}

// request is the palette a request asked for, after fallbacks
type request struct {
	link.Decoded
	Fallback bool
	Notices  []string
}

// resolve reads the palette for this request: a preset, a link, or the
// default when neither is usable
func (h *Handlers) resolve(c *gin.Context) request {
	if name := c.Query("preset"); name != "" {
		if p, ok := themes.Preset(name); ok {
			return request{Decoded: link.Decoded{Palette: p}}
		}
		return request{
			Decoded:  link.Decoded{Palette: h.defaultPalette()},
			Fallback: true,
			Notices:  []string{"Unknown preset \"" + name + "\", showing the default palette."},
		}
	}

	d, err := h.Codec.DecodeQuery(c.Request.URL.RawQuery)
	switch {
	case errors.Is(err, link.ErrNoPalette):
		return request{Decoded: link.Decoded{Palette: h.defaultPalette()}}
	case err != nil:
		log.Printf("Ignoring unreadable palette link from %s: %v", c.ClientIP(), err)
		return request{
			Decoded:  link.Decoded{Palette: h.defaultPalette()},
			Fallback: true,
			Notices:  []string{"This link could not be read, showing the default palette instead."},
		}
	}

	req := request{Decoded: d}
	if d.ColorsOnly {
		req.Notices = append(req.Notices, "This link has no color names; colors are labelled by their hex value.")
	}
	return req
}

// generate runs the palette through the model and matrix builder
func (h *Handlers) generate(c *gin.Context, req request) generation {
	g := generation{
		Model:      palette.FromPalette(req.Palette),
		ColorsOnly: req.ColorsOnly,
		Fallback:   req.Fallback,
		Notices:    req.Notices,
	}

	p, err := palette.Generate(g.Model, palette.Options{RequireTitle: h.RequireTitle})
	if err != nil {
		g.Err = err
		g.Notices = append(g.Notices, "Add a title to generate the contrast matrix.")
		return g
	}

	g.Palette = p
	g.Matrix = matrix.Build(p)
	g.ShareURL = h.Codec.ShareURL(h.shareBase(c), p)
	return g
}

// shareBase is the origin and path share links point at
func (h *Handlers) shareBase(c *gin.Context) string {
	if h.PublicURL != "" {
		return h.PublicURL
	}

	scheme := "http"
	if c.Request.TLS != nil || strings.EqualFold(c.GetHeader("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + "/"
}
