// SPDX-License-Identifier: MIT
package palette

import (
	"strings"

	"github.com/thatcatcamp/contrastkitty/internal/contrast"
)

// Entry is one row of a palette
type Entry struct {
	ID    EntryID        `json:"-"`
	Name  string         `json:"name"`
	Color contrast.Color `json:"color"`
}

// Palette is an immutable snapshot of a titled, ordered list of entries.
// Order decides row and column order in the matrix.
type Palette struct {
	Title   string  `json:"title"`
	Entries []Entry `json:"entries"`
}

// Len returns the number of entries
func (p Palette) Len() int {
	return len(p.Entries)
}

// Equal compares title, order, names and colors (colors case-insensitively).
// Entry IDs are not compared.
func (p Palette) Equal(o Palette) bool {
	if p.Title != o.Title || len(p.Entries) != len(o.Entries) {
		return false
	}
	for i := range p.Entries {
		if p.Entries[i].Name != o.Entries[i].Name || !p.Entries[i].Color.Equal(o.Entries[i].Color) {
			return false
		}
	}
	return true
}

// Named returns a copy holding only entries whose trimmed name is non-empty
func (p Palette) Named() Palette {
	out := Palette{Title: strings.TrimSpace(p.Title)}
	for _, e := range p.Entries {
		if strings.TrimSpace(e.Name) == "" || e.Color.IsZero() {
			continue
		}
		out.Entries = append(out.Entries, e)
	}
	return out
}

// Default returns the palette shown when no link is given
func Default() Palette {
	return Palette{
		Entries: []Entry{
			{Name: "White", Color: contrast.MustParseColor("#FFFFFF")},
			{Name: "Color 2", Color: contrast.MustParseColor("#FEDC2A")},
			{Name: "Color 3", Color: contrast.MustParseColor("#5A3B5D")},
			{Name: "Color 4", Color: contrast.MustParseColor("#8B538F")},
			{Name: "Color 5", Color: contrast.MustParseColor("#C3A3C9")},
		},
	}
}
