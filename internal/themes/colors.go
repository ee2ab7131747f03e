// SPDX-License-Identifier: MIT
package themes

import "github.com/thatcatcamp/contrastkitty/internal/contrast"

// Colors represents all generated colors for a theme
type Colors struct {
	Primary         string // Main brand color
	PrimaryContrast string // Text on top of Primary
	Secondary       string // Accent/highlight color
	Background      string // Page background
	Surface         string // Card/container background
	Text            string // Main text color
	TextMuted       string // Secondary/muted text
	Border          string // Border/divider color
	Success         string // AAA cells
	Warning         string // AA cells
	Error           string // Failing cells
}

// NamedColor is a generated color with a human label
type NamedColor struct {
	Name string
	Hex  string
}

// GenerateColors generates full color set from a theme for light or dark mode
func GenerateColors(theme *Theme, darkMode bool) *Colors {
	var c *Colors
	if darkMode {
		c = generateDarkColors(theme)
	} else {
		c = generateLightColors(theme)
	}
	c.PrimaryContrast = ReadableOn(c.Primary)
	return c
}

// generateLightColors creates colors for light mode
func generateLightColors(theme *Theme) *Colors {
	return &Colors{
		Primary:    theme.Primary,
		Secondary:  theme.Secondary,
		Background: "#ffffff",
		Surface:    "#f9fafb",
		Text:       "#000000",
		TextMuted:  "#6b7280",
		Border:     "#e5e7eb",
		Success:    "#15803d",
		Warning:    "#b45309",
		Error:      "#b91c1c",
	}
}

// generateDarkColors creates colors for dark mode
func generateDarkColors(theme *Theme) *Colors {
	return &Colors{
		Primary:    theme.Primary,
		Secondary:  theme.Secondary,
		Background: "#0f172a",
		Surface:    "#1e293b",
		Text:       "#f1f5f9",
		TextMuted:  "#94a3b8",
		Border:     "#334155",
		Success:    "#4ade80",
		Warning:    "#fbbf24",
		Error:      "#f87171",
	}
}

// Named lists the colors a theme preset checks against each other
func (c *Colors) Named() []NamedColor {
	return []NamedColor{
		{Name: "Primary", Hex: c.Primary},
		{Name: "Secondary", Hex: c.Secondary},
		{Name: "Background", Hex: c.Background},
		{Name: "Surface", Hex: c.Surface},
		{Name: "Text", Hex: c.Text},
		{Name: "Muted", Hex: c.TextMuted},
		{Name: "Border", Hex: c.Border},
	}
}

// ReadableOn returns black or white, whichever contrasts more with bg.
// Invalid input gets black.
func ReadableOn(bg string) string {
	c, err := contrast.ParseColor(bg)
	if err != nil {
		return "#000000"
	}
	white := contrast.MustParseColor("#ffffff")
	black := contrast.MustParseColor("#000000")
	if contrast.Ratio(c, white) > contrast.Ratio(c, black) {
		return "#ffffff"
	}
	return "#000000"
}
