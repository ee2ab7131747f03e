// SPDX-License-Identifier: MIT
package link

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/thatcatcamp/contrastkitty/internal/contrast"
	"github.com/thatcatcamp/contrastkitty/internal/palette"
)

// Query parameter names
const (
	ParamTitle = "title"
	ParamName  = "n"
	ParamValue = "v"
)

var (
	// ErrNoPalette means the query carries no v parameter at all
	ErrNoPalette = errors.New("link has no palette")
	// ErrMalformedLink means the query could not be turned into a palette
	ErrMalformedLink = errors.New("malformed palette link")
)

// Decoded is the result of reading a link
type Decoded struct {
	Palette palette.Palette
	// ColorsOnly is set when names were missing or did not line up with
	// colors. Entries are then labelled with their hex value.
	ColorsOnly bool
}

// Codec maps palettes to query strings and back
type Codec struct {
	// MaxEntries rejects links with more colors than this; 0 means no limit
	MaxEntries int
}

// Encode writes p as title=..&n=..&v=..&n=..&v=.. in palette order. The
// title is omitted when empty; hex digits are written verbatim without "#".
func (c Codec) Encode(p palette.Palette) string {
	var b strings.Builder
	write := func(key, value string) {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}

	if strings.TrimSpace(p.Title) != "" {
		write(ParamTitle, p.Title)
	}
	for _, e := range p.Entries {
		if e.Color.IsZero() {
			continue
		}
		write(ParamName, e.Name)
		write(ParamValue, e.Color.Raw())
	}
	return b.String()
}

// Decode reads a palette from a query string. A leading "?" or a full URL
// is accepted; a bare query may carry unescaped "?" inside its values.
// Any error means the caller should use its default palette.
func (c Codec) Decode(raw string) (Decoded, error) {
	return c.DecodeQuery(queryPart(raw))
}

// DecodeQuery is Decode for a raw query with no "?" prefix, such as
// url.URL.RawQuery
func (c Codec) DecodeQuery(query string) (Decoded, error) {
	values, err := url.ParseQuery(query)
	if err != nil {
		return Decoded{}, fmt.Errorf("%w: %v", ErrMalformedLink, err)
	}
	return c.DecodeValues(values)
}

// queryPart returns the query of a full URL, or raw without its leading
// "?". Anything before the first "?" is a URL prefix only when it holds no
// "=" or "&"; otherwise raw is already a query.
func queryPart(raw string) string {
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		return u.RawQuery
	}

	query := raw
	if i := strings.IndexByte(query, '?'); i >= 0 && !strings.ContainsAny(query[:i], "=&") {
		query = query[i+1:]
	}
	if i := strings.IndexByte(query, '#'); i >= 0 {
		query = query[:i]
	}
	return query
}

// DecodeValues is Decode for already-parsed parameters. url.Values keeps
// repeated parameters in the order they appeared.
func (c Codec) DecodeValues(values url.Values) (Decoded, error) {
	hexes := values[ParamValue]
	if len(hexes) == 0 {
		return Decoded{}, ErrNoPalette
	}
	if c.MaxEntries > 0 && len(hexes) > c.MaxEntries {
		return Decoded{}, fmt.Errorf("%w: %d colors exceeds limit of %d", ErrMalformedLink, len(hexes), c.MaxEntries)
	}

	colors := make([]contrast.Color, 0, len(hexes))
	for _, hex := range hexes {
		// v values never carry "#"
		if strings.HasPrefix(hex, "#") {
			return Decoded{}, fmt.Errorf("%w: color %q", ErrMalformedLink, hex)
		}
		col, err := contrast.ParseColor(hex)
		if err != nil {
			return Decoded{}, fmt.Errorf("%w: %v", ErrMalformedLink, err)
		}
		colors = append(colors, col)
	}

	names := values[ParamName]
	d := Decoded{ColorsOnly: len(names) != len(colors)}
	d.Palette.Title = values.Get(ParamTitle)
	d.Palette.Entries = make([]palette.Entry, len(colors))
	for i, col := range colors {
		name := col.Hex()
		if !d.ColorsOnly {
			name = names[i]
		}
		d.Palette.Entries[i] = palette.Entry{Name: name, Color: col}
	}
	return d, nil
}

// ShareURL appends the encoded palette to base, replacing any query base
// already has
func (c Codec) ShareURL(base string, p palette.Palette) string {
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	query := c.Encode(p)
	if query == "" {
		return base
	}
	return base + "?" + query
}

// DecodeOrDefault returns the decoded palette, or fallback with the error
// that caused it
func (c Codec) DecodeOrDefault(raw string, fallback palette.Palette) (Decoded, error) {
	d, err := c.Decode(raw)
	if err != nil {
		return Decoded{Palette: fallback}, err
	}
	return d, nil
}

var std Codec

// Encode uses a codec with no entry limit
func Encode(p palette.Palette) string {
	return std.Encode(p)
}

// Decode uses a codec with no entry limit
func Decode(raw string) (Decoded, error) {
	return std.Decode(raw)
}

// ShareURL uses a codec with no entry limit
func ShareURL(base string, p palette.Palette) string {
	return std.ShareURL(base, p)
}
