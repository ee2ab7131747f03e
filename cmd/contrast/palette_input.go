// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/contrastkitty/internal/config"
	"github.com/thatcatcamp/contrastkitty/internal/link"
	"github.com/thatcatcamp/contrastkitty/internal/palette"
	"github.com/thatcatcamp/contrastkitty/internal/picker"
	"github.com/thatcatcamp/contrastkitty/internal/themes"
)

// paletteInput holds the flags shared by commands that take a palette
type paletteInput struct {
	title  string
	colors []string
	preset string
	mode   string
}

func (in *paletteInput) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&in.title, "title", "", "Palette title (overrides the link's title)")
	cmd.Flags().StringArrayVar(&in.colors, "color", nil, `Color as "Name=#RRGGBB" (repeatable)`)
	cmd.Flags().StringVar(&in.preset, "preset", "", "Start from a preset palette ("+strings.Join(themes.PresetNames(), ", ")+")")
	cmd.Flags().StringVar(&in.mode, "mode", "hex", "Notation of --color values ("+strings.Join(picker.Modes, ", ")+")")
}

// codec returns the link codec with the configured entry limit
func codec() link.Codec {
	return link.Codec{MaxEntries: config.GetInt("palette.max_entries")}
}

// defaultPalette returns the configured default preset
func defaultPalette() palette.Palette {
	if p, ok := themes.Preset(config.GetString("palette.default_preset")); ok {
		return p
	}
	return palette.Default()
}

// resolve builds the palette from a link argument, a preset, --color flags
// or the default, in that order. An unreadable link falls back to the
// default palette with a warning on stderr.
func (in *paletteInput) resolve(args []string) (palette.Palette, error) {
	var p palette.Palette

	switch {
	case len(args) > 0:
		d, err := codec().DecodeOrDefault(args[0], defaultPalette())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v, using the default palette\n", err)
		} else if d.ColorsOnly {
			fmt.Fprintln(os.Stderr, "Warning: link has no color names, labelling colors by hex")
		}
		p = d.Palette
	case in.preset != "":
		preset, ok := themes.Preset(in.preset)
		if !ok {
			return palette.Palette{}, fmt.Errorf("unknown preset %q", in.preset)
		}
		p = preset
	case len(in.colors) > 0:
		entries, err := parseColorFlags(in.colors, picker.ForMode(in.mode))
		if err != nil {
			return palette.Palette{}, err
		}
		p.Entries = entries
	default:
		p = defaultPalette()
	}

	if len(in.colors) > 0 && (len(args) > 0 || in.preset != "") {
		return palette.Palette{}, fmt.Errorf("--color cannot be combined with a link or --preset")
	}
	if in.title != "" {
		p.Title = in.title
	}
	return p, nil
}

// parseColorFlags reads "Name=color" values. A value without a name is
// labelled by its hex, the same way colors-only links are.
func parseColorFlags(values []string, pick palette.ColorPicker) ([]palette.Entry, error) {
	entries := make([]palette.Entry, 0, len(values))
	for _, v := range values {
		name, raw := "", v
		if i := strings.LastIndex(v, "="); i >= 0 {
			name, raw = strings.TrimSpace(v[:i]), v[i+1:]
		}

		c, err := pick.Pick(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid --color %q: %w", v, err)
		}
		if name == "" {
			name = c.Hex()
		}
		entries = append(entries, palette.Entry{Name: name, Color: c})
	}
	return entries, nil
}

// shareBase is where printed share links point
func shareBase(flag string) string {
	if flag != "" {
		return flag
	}
	if u := config.GetString("server.public_url"); u != "" {
		return u
	}
	return fmt.Sprintf("http://localhost:%s/", config.GetString("server.http_port"))
}
