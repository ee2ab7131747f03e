// SPDX-License-Identifier: MIT
package contrast

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned when text is not a 6-digit hex color
var ErrInvalidColor = errors.New("invalid color: expected 6 hex digits")

// Color is a validated sRGB color. The six hex digits are kept exactly as
// entered so share links reproduce the user's casing.
type Color struct {
	digits string
}

// ParseColor parses "RRGGBB" or "#RRGGBB" (any case)
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	return Color{digits: hex}, nil
}

// MustParseColor is ParseColor for constants; it panics on bad input
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// Raw returns the six digits verbatim, without "#"
func (c Color) Raw() string {
	return c.digits
}

// Hex returns the display form, "#RRGGBB" in uppercase
func (c Color) Hex() string {
	return "#" + strings.ToUpper(c.digits)
}

// Key returns the lowercase digits used for equality
func (c Color) Key() string {
	return strings.ToLower(c.digits)
}

// Equal reports whether both values name the same color
func (c Color) Equal(o Color) bool {
	return c.Key() == o.Key()
}

// IsZero reports whether c was never parsed
func (c Color) IsZero() bool {
	return c.digits == ""
}

// RGB splits the color into its three channels
func (c Color) RGB() (r, g, b uint8) {
	if c.IsZero() {
		return 0, 0, 0
	}
	return channel(c.digits[0:2]), channel(c.digits[2:4]), channel(c.digits[4:6])
}

func channel(pair string) uint8 {
	v, err := strconv.ParseUint(pair, 16, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

// String implements fmt.Stringer
func (c Color) String() string {
	return c.Hex()
}

// MarshalText encodes the color in its display form
func (c Color) MarshalText() ([]byte, error) {
	if c.IsZero() {
		return []byte{}, nil
	}
	return []byte(c.Hex()), nil
}

// UnmarshalText parses "RRGGBB" or "#RRGGBB"
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
