// SPDX-License-Identifier: MIT
package matrix

import (
	"strconv"

	"github.com/thatcatcamp/contrastkitty/internal/contrast"
	"github.com/thatcatcamp/contrastkitty/internal/palette"
)

// Cell is the rated contrast of one foreground on one background
type Cell struct {
	Background contrast.Color  `json:"background"`
	Foreground contrast.Color  `json:"foreground"`
	Ratio      float64         `json:"ratio"`
	Rating     contrast.Rating `json:"rating"`
	SelfPair   bool            `json:"self_pair"`
}

// RatioText formats the ratio with two decimals
func (c Cell) RatioText() string {
	return strconv.FormatFloat(c.Ratio, 'f', 2, 64)
}

// Deemphasized reports whether the cell should render muted
func (c Cell) Deemphasized() bool {
	return c.SelfPair || c.Rating == contrast.Fail
}

// Matrix is a square grid of cells; row i is entry i used as background,
// column j is entry j used as foreground
type Matrix struct {
	Title   string          `json:"title"`
	Rows    []palette.Entry `json:"rows"`
	Columns []palette.Entry `json:"columns"`
	Cells   [][]Cell        `json:"cells"`
}

// Summary counts cells per rating, self pairs excluded
type Summary struct {
	AAA  int `json:"aaa"`
	AA   int `json:"aa"`
	Fail int `json:"fail"`
}

// Build computes the matrix for p. An empty palette gives a 0x0 matrix.
func Build(p palette.Palette) Matrix {
	n := len(p.Entries)
	entries := append([]palette.Entry(nil), p.Entries...)
	m := Matrix{
		Title:   p.Title,
		Rows:    entries,
		Columns: entries,
		Cells:   make([][]Cell, n),
	}

	for i, bg := range entries {
		row := make([]Cell, n)
		for j, fg := range entries {
			ratio := contrast.Ratio(bg.Color, fg.Color)
			row[j] = Cell{
				Background: bg.Color,
				Foreground: fg.Color,
				Ratio:      ratio,
				Rating:     contrast.RatingFor(ratio),
				SelfPair:   bg.Color.Equal(fg.Color),
			}
		}
		m.Cells[i] = row
	}

	return m
}

// Size returns N for an NxN matrix
func (m Matrix) Size() int {
	return len(m.Rows)
}

// Empty reports whether there is nothing to render
func (m Matrix) Empty() bool {
	return m.Size() == 0
}

// Cell returns the cell at row i, column j
func (m Matrix) Cell(i, j int) Cell {
	return m.Cells[i][j]
}

// Summary tallies the ratings of every non-self-pair cell
func (m Matrix) Summary() Summary {
	var s Summary
	for _, row := range m.Cells {
		for _, c := range row {
			if c.SelfPair {
				continue
			}
			switch c.Rating {
			case contrast.AAA:
				s.AAA++
			case contrast.AA:
				s.AA++
			default:
				s.Fail++
			}
		}
	}
	return s
}
