// SPDX-License-Identifier: MIT
package themes

import (
	"github.com/thatcatcamp/contrastkitty/internal/contrast"
	"github.com/thatcatcamp/contrastkitty/internal/palette"
)

// DefaultPreset is the name of the built-in five color palette
const DefaultPreset = "default"

// Theme defines the two brand colors a site theme is built from
type Theme struct {
	Name      string // "slate", "indigo", etc.
	Primary   string // hex color #RRGGBB
	Secondary string // hex color #RRGGBB
}

// GetTheme returns a theme by name
func GetTheme(name string) *Theme {
	themes := map[string]*Theme{
		"slate":      {Name: "slate", Primary: "#64748b", Secondary: "#0f172a"},
		"indigo":     {Name: "indigo", Primary: "#4f46e5", Secondary: "#f97316"},
		"rose":       {Name: "rose", Primary: "#e11d48", Secondary: "#64748b"},
		"emerald":    {Name: "emerald", Primary: "#059669", Secondary: "#f59e0b"},
		"navy":       {Name: "navy", Primary: "#000080", Secondary: "#fbbf24"},
		"purple":     {Name: "purple", Primary: "#a855f7", Secondary: "#ec4899"},
		"teal":       {Name: "teal", Primary: "#14b8a6", Secondary: "#f87171"},
		"amber":      {Name: "amber", Primary: "#f59e0b", Secondary: "#6366f1"},
		"rose-mono":  {Name: "rose-mono", Primary: "#e11d48", Secondary: "#c41e3a"},
		"green-mono": {Name: "green-mono", Primary: "#22c55e", Secondary: "#16a34a"},
		"blue-mono":  {Name: "blue-mono", Primary: "#3b82f6", Secondary: "#1e40af"},
		"neutral":    {Name: "neutral", Primary: "#6b7280", Secondary: "#4b5563"},
	}

	return themes[name]
}

// themeOrder is the display order of the theme presets
var themeOrder = []string{
	"slate", "indigo", "rose", "emerald", "navy", "purple",
	"teal", "amber", "rose-mono", "green-mono", "blue-mono", "neutral",
}

// PresetNames returns every preset name, the default palette first
func PresetNames() []string {
	return append([]string{DefaultPreset}, themeOrder...)
}

// Preset returns a named palette to start from. Theme presets expand to
// the light-mode colors generated for that theme so its contrast can be
// checked as a whole.
func Preset(name string) (palette.Palette, bool) {
	if name == DefaultPreset {
		return palette.Default(), true
	}

	theme := GetTheme(name)
	if theme == nil {
		return palette.Palette{}, false
	}

	colors := GenerateColors(theme, false)
	p := palette.Palette{Title: theme.Name}
	for _, c := range colors.Named() {
		p.Entries = append(p.Entries, palette.Entry{
			Name:  c.Name,
			Color: contrast.MustParseColor(c.Hex),
		})
	}
	return p, true
}
