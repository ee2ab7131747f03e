// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/contrastkitty/internal/link"
	"github.com/thatcatcamp/contrastkitty/internal/matrix"
	"github.com/thatcatcamp/contrastkitty/internal/palette"
	"github.com/thatcatcamp/contrastkitty/internal/picker"
	"github.com/thatcatcamp/contrastkitty/internal/themes"
)

// PaletteRequest is the JSON body accepted by POST /api/palette
type PaletteRequest struct {
	Title   string         `json:"title"`
	Entries []EntryRequest `json:"entries" binding:"required,dive"`
}

// EntryRequest is one palette row in a PaletteRequest
type EntryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color" binding:"required"`
}

// MatrixResponse is returned by both matrix endpoints
type MatrixResponse struct {
	Title      string          `json:"title"`
	ShareURL   string          `json:"share_url"`
	ColorsOnly bool            `json:"colors_only"`
	Fallback   bool            `json:"fallback"`
	Notices    []string        `json:"notices,omitempty"`
	Rows       []palette.Entry `json:"rows"`
	Cells      [][]matrix.Cell `json:"cells"`
	Summary    matrix.Summary  `json:"summary"`
}

func newMatrixResponse(g generation) MatrixResponse {
	return MatrixResponse{
		Title:      g.Palette.Title,
		ShareURL:   g.ShareURL,
		ColorsOnly: g.ColorsOnly,
		Fallback:   g.Fallback,
		Notices:    g.Notices,
		Rows:       g.Matrix.Rows,
		Cells:      g.Matrix.Cells,
		Summary:    g.Matrix.Summary(),
	}
}

// MatrixAPIHandler returns the matrix for the palette link in the query
func (h *Handlers) MatrixAPIHandler(c *gin.Context) {
	g := h.generate(c, h.resolve(c))
	if errors.Is(g.Err, palette.ErrMissingTitle) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "title is required"})
		return
	}

	c.JSON(http.StatusOK, newMatrixResponse(g))
}

// PaletteAPIHandler builds the matrix and share link for a palette posted
// as JSON. Unlike the form editor, invalid colors are rejected outright.
func (h *Handlers) PaletteAPIHandler(c *gin.Context) {
	var req PaletteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if h.Codec.MaxEntries > 0 && len(req.Entries) > h.Codec.MaxEntries {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("at most %d colors are allowed", h.Codec.MaxEntries)})
		return
	}

	p := palette.Palette{Title: req.Title}
	hex := picker.HexField{}
	for i, e := range req.Entries {
		col, err := hex.Pick(e.Color)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("entry %d: %v", i, err)})
			return
		}
		p.Entries = append(p.Entries, palette.Entry{Name: e.Name, Color: col})
	}

	g := h.generate(c, request{Decoded: link.Decoded{Palette: p}})
	if errors.Is(g.Err, palette.ErrMissingTitle) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "title is required"})
		return
	}

	c.JSON(http.StatusOK, newMatrixResponse(g))
}

// PresetInfo describes one preset palette
type PresetInfo struct {
	Name     string `json:"name"`
	Colors   int    `json:"colors"`
	ShareURL string `json:"share_url"`
}

// PresetsHandler lists the preset palettes with a link to each
func (h *Handlers) PresetsHandler(c *gin.Context) {
	base := h.shareBase(c)
	var presets []PresetInfo
	for _, name := range themes.PresetNames() {
		p, ok := themes.Preset(name)
		if !ok {
			continue
		}
		presets = append(presets, PresetInfo{
			Name:     name,
			Colors:   p.Len(),
			ShareURL: h.Codec.ShareURL(base, p),
		})
	}
	c.JSON(http.StatusOK, gin.H{"presets": presets})
}
