// SPDX-License-Identifier: MIT
package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/contrastkitty/internal/export"
	"github.com/thatcatcamp/contrastkitty/internal/palette"
)

// ExportHandler renders the matrix for the palette link as an image download
func (h *Handlers) ExportHandler(c *gin.Context) {
	g := h.generate(c, h.resolve(c))
	if errors.Is(g.Err, palette.ErrMissingTitle) {
		c.String(http.StatusUnprocessableEntity, "A title is required")
		return
	}

	var buf bytes.Buffer
	if err := h.Rasterizer.Rasterize(g.Matrix, &buf); err != nil {
		log.Printf("Error exporting matrix: %v", err)
		c.String(http.StatusInternalServerError, "Export failed")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.Filename(g.Palette.Title, ".png")+`"`)
	c.Data(http.StatusOK, h.Rasterizer.ContentType(), buf.Bytes())
}
