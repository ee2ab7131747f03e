// SPDX-License-Identifier: MIT
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thatcatcamp/contrastkitty/internal/termview"
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7C3AED")).
			Bold(true)

	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")).
			Underline(true)
)

const helpText = "↑/↓ move · a add · d remove · n name · c color · t title · g generate · y copy link · q quit"

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	title := m.palette.Title()
	if strings.TrimSpace(title) == "" {
		title = mutedStyle.Render("(untitled)")
	}
	b.WriteString(headingStyle.Render("Palette: ") + title + "\n\n")

	entries := m.palette.Entries()
	if len(entries) == 0 {
		b.WriteString(mutedStyle.Render("  No colors. Press a to add one.") + "\n")
	}
	for i, e := range entries {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(e.Color.Hex())).Render("    ")
		name := e.Name
		if strings.TrimSpace(name) == "" {
			name = mutedStyle.Render("(unnamed, not in matrix)")
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n", cursor, swatch, e.Color.Hex(), name))
	}

	if m.editing != fieldNone {
		b.WriteString("\n" + m.input.View() + "\n")
	}

	if m.generated {
		b.WriteString("\n")
		b.WriteString(termview.Render(m.matrix))
		b.WriteString("\n")
		if !m.matrix.Empty() {
			b.WriteString(termview.RenderSummary(m.matrix) + "\n")
		}
		if m.stale {
			b.WriteString(mutedStyle.Render("Palette changed, press g to regenerate") + "\n")
		}
		if m.shareURL != "" {
			b.WriteString("\n" + linkStyle.Render(m.shareURL) + "\n")
		}
	}

	if m.status != "" {
		style := statusStyle
		if m.isError {
			style = errorStyle
		}
		b.WriteString("\n" + style.Render(m.status) + "\n")
	}

	b.WriteString("\n" + mutedStyle.Render(helpText))
	return b.String()
}
