// SPDX-License-Identifier: MIT
package picker

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/thatcatcamp/contrastkitty/internal/contrast"
)

// Picker turns the raw value of an input widget into a color. It satisfies
// palette.ColorPicker.
type Picker interface {
	Pick(input string) (contrast.Color, error)
}

// HexField is a free-text field: "RRGGBB" or "#RRGGBB"
type HexField struct{}

// Pick parses hex text, trimming surrounding whitespace
func (HexField) Pick(input string) (contrast.Color, error) {
	return contrast.ParseColor(strings.TrimSpace(input))
}

// NativeInput is an <input type="color">, whose value is always "#rrggbb"
type NativeInput struct{}

// Pick requires the leading "#" the browser always sends
func (NativeInput) Pick(input string) (contrast.Color, error) {
	if !strings.HasPrefix(input, "#") {
		return contrast.Color{}, fmt.Errorf("%w: %q", contrast.ErrInvalidColor, input)
	}
	return contrast.ParseColor(input)
}

// HSLField accepts "hsl(210, 50%, 40%)" or "210 50 40"
type HSLField struct{}

// Pick converts HSL to sRGB hex
func (HSLField) Pick(input string) (contrast.Color, error) {
	parts, err := functionArgs(input, "hsl")
	if err != nil {
		return contrast.Color{}, err
	}
	h, err1 := strconv.ParseFloat(strings.TrimSuffix(parts[0], "deg"), 64)
	s, err2 := percent(parts[1])
	l, err3 := percent(parts[2])
	if err1 != nil || err2 != nil || err3 != nil || h < 0 || h > 360 {
		return contrast.Color{}, fmt.Errorf("%w: %q", contrast.ErrInvalidColor, input)
	}
	return fromColorful(colorful.Hsl(h, s, l))
}

// RGBField accepts "rgb(254, 220, 42)" or "254 220 42"
type RGBField struct{}

// Pick converts 0-255 channels to hex
func (RGBField) Pick(input string) (contrast.Color, error) {
	parts, err := functionArgs(input, "rgb")
	if err != nil {
		return contrast.Color{}, err
	}
	var ch [3]float64
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 || v > 255 {
			return contrast.Color{}, fmt.Errorf("%w: %q", contrast.ErrInvalidColor, input)
		}
		ch[i] = float64(v) / 255
	}
	return fromColorful(colorful.Color{R: ch[0], G: ch[1], B: ch[2]})
}

// Modes lists the picker names accepted by ForMode
var Modes = []string{"hex", "native", "hsl", "rgb"}

// ForMode returns the picker for a form's input mode; unknown modes get
// the hex field
func ForMode(mode string) Picker {
	switch strings.ToLower(mode) {
	case "native":
		return NativeInput{}
	case "hsl":
		return HSLField{}
	case "rgb":
		return RGBField{}
	default:
		return HexField{}
	}
}

func fromColorful(c colorful.Color) (contrast.Color, error) {
	return contrast.ParseColor(c.Clamped().Hex())
}

// functionArgs splits "name(a, b, c)" or "a b c" into three trimmed parts
func functionArgs(input, name string) ([]string, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if strings.HasPrefix(s, name+"(") {
		if !strings.HasSuffix(s, ")") {
			return nil, fmt.Errorf("%w: %q", contrast.ErrInvalidColor, input)
		}
		s = s[len(name)+1 : len(s)-1]
	}
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: %q", contrast.ErrInvalidColor, input)
	}
	return parts, nil
}

// percent parses "40%" or "40" into 0.4
func percent(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("out of range: %v", v)
	}
	return v / 100, nil
}
