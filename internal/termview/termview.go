// SPDX-License-Identifier: MIT
package termview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thatcatcamp/contrastkitty/internal/contrast"
	"github.com/thatcatcamp/contrastkitty/internal/matrix"
	"github.com/thatcatcamp/contrastkitty/internal/palette"
)

const (
	labelWidth = 14
	cellWidth  = 11
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Width(cellWidth).
			Align(lipgloss.Center)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Width(labelWidth).
			PaddingRight(1)

	selfPairStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center).
			Faint(true)

	mutedStyle = lipgloss.NewStyle().Faint(true)

	ratingStyles = map[contrast.Rating]lipgloss.Style{
		contrast.AAA:  lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true),
		contrast.AA:   lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")).Bold(true),
		contrast.Fail: lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
	}
)

// Render draws the matrix as a grid. Each cell is painted in its own
// background and foreground so the pair can be judged by eye.
func Render(m matrix.Matrix) string {
	var blocks []string
	if m.Title != "" {
		blocks = append(blocks, titleStyle.Render(m.Title))
	}

	if m.Empty() {
		blocks = append(blocks, mutedStyle.Render("No named colors."))
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}

	header := []string{labelStyle.Render("")}
	for _, col := range m.Columns {
		header = append(header, headerStyle.Render(truncate(col.Name, cellWidth-1)))
	}
	blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, header...))

	for i, row := range m.Rows {
		line := []string{labelStyle.Render(truncate(row.Name, labelWidth-1))}
		for _, c := range m.Cells[i] {
			line = append(line, renderCell(c))
		}
		blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, line...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func renderCell(c matrix.Cell) string {
	if c.SelfPair {
		return selfPairStyle.Render("-")
	}
	style := lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Background(lipgloss.Color(c.Background.Hex())).
		Foreground(lipgloss.Color(c.Foreground.Hex()))
	if c.Deemphasized() {
		style = style.Faint(true)
	}
	return style.Render(c.RatioText() + " " + c.Rating.String())
}

// RenderSummary counts the ratings outside the diagonal
func RenderSummary(m matrix.Matrix) string {
	s := m.Summary()
	return strings.Join([]string{
		ratingStyles[contrast.AAA].Render(fmt.Sprintf("%d AAA", s.AAA)),
		ratingStyles[contrast.AA].Render(fmt.Sprintf("%d AA", s.AA)),
		ratingStyles[contrast.Fail].Render(fmt.Sprintf("%d Fail", s.Fail)),
	}, mutedStyle.Render(" · "))
}

// Swatches lists palette entries with a block of their color, one per line
func Swatches(p palette.Palette) string {
	var lines []string
	for _, e := range p.Entries {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(e.Color.Hex())).Render("    ")
		name := e.Name
		if strings.TrimSpace(name) == "" {
			name = mutedStyle.Render("(unnamed)")
		}
		lines = append(lines, fmt.Sprintf("%s %s %s", swatch, e.Color.Hex(), name))
	}
	return strings.Join(lines, "\n")
}

// truncate shortens s to at most width runes, marking the cut with "…"
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}
