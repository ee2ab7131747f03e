// SPDX-License-Identifier: MIT
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/thatcatcamp/contrastkitty/internal/contrast"
	"github.com/thatcatcamp/contrastkitty/internal/matrix"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Rasterizer turns a matrix into a downloadable image
type Rasterizer interface {
	Rasterize(m matrix.Matrix, w io.Writer) error
	ContentType() string
}

// PNGRasterizer draws the matrix as a PNG grid. Self-pair cells are left
// transparent; every other cell is filled with its background color and
// labelled with the ratio and rating in its foreground color.
type PNGRasterizer struct {
	CellSize   int // pixels per cell before scaling
	LabelWidth int // width of the row label column
	Scale      int // integer upscale factor
}

const (
	headerHeight = 24
	titleHeight  = 28
)

var (
	chromeBackground = color.RGBA{0xFA, 0xFA, 0xF8, 0xFF}
	chromeText       = color.RGBA{0x2D, 0x2D, 0x2D, 0xFF}
	face             = basicfont.Face7x13
)

// NewPNGRasterizer returns a rasterizer with sane minimums applied
func NewPNGRasterizer(cellSize, scale int) *PNGRasterizer {
	if cellSize < 48 {
		cellSize = 48
	}
	if scale < 1 {
		scale = 1
	}
	return &PNGRasterizer{CellSize: cellSize, LabelWidth: 2 * cellSize, Scale: scale}
}

// ContentType implements Rasterizer
func (r *PNGRasterizer) ContentType() string {
	return "image/png"
}

// Bounds returns the unscaled image size for an n-entry matrix with or
// without a title row
func (r *PNGRasterizer) Bounds(n int, titled bool) image.Rectangle {
	top := headerHeight
	if titled {
		top += titleHeight
	}
	cols := n
	if cols == 0 {
		cols = 1
	}
	return image.Rect(0, 0, r.LabelWidth+cols*r.CellSize, top+n*r.CellSize)
}

// CellRect returns the unscaled rectangle of cell (i, j)
func (r *PNGRasterizer) CellRect(i, j int, titled bool) image.Rectangle {
	top := headerHeight
	if titled {
		top += titleHeight
	}
	x := r.LabelWidth + j*r.CellSize
	y := top + i*r.CellSize
	return image.Rect(x, y, x+r.CellSize, y+r.CellSize)
}

// Rasterize implements Rasterizer
func (r *PNGRasterizer) Rasterize(m matrix.Matrix, w io.Writer) error {
	titled := m.Title != ""
	n := m.Size()
	bounds := r.Bounds(n, titled)
	img := image.NewRGBA(bounds)

	top := headerHeight
	if titled {
		top += titleHeight
		fill(img, image.Rect(0, 0, bounds.Dx(), titleHeight), chromeBackground)
		drawText(img, m.Title, 8, titleHeight-9, chromeText, bounds.Dx()-16)
	}

	// Header row and label column
	fill(img, image.Rect(0, top-headerHeight, bounds.Dx(), top), chromeBackground)
	fill(img, image.Rect(0, top, r.LabelWidth, bounds.Dy()), chromeBackground)
	if n == 0 {
		drawText(img, "No colors", r.LabelWidth+6, top-7, chromeText, r.CellSize-12)
	}
	for j, col := range m.Columns {
		drawCentered(img, col.Name, r.LabelWidth+j*r.CellSize, r.CellSize, top-7, chromeText)
	}
	for i, row := range m.Rows {
		y := top + i*r.CellSize + r.CellSize/2 + 4
		drawText(img, row.Name, 6, y, chromeText, r.LabelWidth-12)
	}

	for i, cells := range m.Cells {
		for j, c := range cells {
			if c.SelfPair {
				continue
			}
			rect := r.CellRect(i, j, titled)
			fill(img, rect, rgba(c.Background))
			fg := rgba(c.Foreground)
			mid := rect.Min.Y + r.CellSize/2
			drawCentered(img, c.RatioText(), rect.Min.X, r.CellSize, mid, fg)
			drawCentered(img, c.Rating.String(), rect.Min.X, r.CellSize, mid+14, fg)
		}
	}

	var out image.Image = img
	if r.Scale > 1 {
		scaled := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*r.Scale, bounds.Dy()*r.Scale))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, bounds, draw.Src, nil)
		out = scaled
	}

	if err := png.Encode(w, out); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

func rgba(c contrast.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{r, g, b, 0xFF}
}

func fill(img draw.Image, rect image.Rectangle, c color.Color) {
	draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// drawText writes s with its baseline at y, truncated to maxWidth pixels
func drawText(img draw.Image, s string, x, y int, c color.Color, maxWidth int) {
	s = truncate(s, maxWidth)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// drawCentered writes s centered in the span [x, x+width)
func drawCentered(img draw.Image, s string, x, width, y int, c color.Color) {
	s = truncate(s, width-8)
	textWidth := font.MeasureString(face, s).Ceil()
	drawText(img, s, x+(width-textWidth)/2, y, c, width)
}

func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	runes := []rune(s)
	for len(runes) > 0 && font.MeasureString(face, string(runes)).Ceil() > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}
