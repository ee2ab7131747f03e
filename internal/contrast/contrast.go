// SPDX-License-Identifier: MIT
package contrast

import (
	"fmt"
	"strings"
)

// Rating is the WCAG accessibility level a contrast ratio reaches
type Rating int

const (
	Fail Rating = iota
	AA
	AAA
)

const (
	// MinRatioAA is the normal-text threshold for level AA
	MinRatioAA = 4.5
	// MinRatioAAA is the normal-text threshold for level AAA
	MinRatioAAA = 7.0
)

// Ratio returns the contrast ratio between a and b, from 1 to 21.
// The order of the arguments does not matter.
func Ratio(a, b Color) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// RatingFor classifies a ratio. Both thresholds are inclusive.
func RatingFor(ratio float64) Rating {
	switch {
	case ratio >= MinRatioAAA:
		return AAA
	case ratio >= MinRatioAA:
		return AA
	default:
		return Fail
	}
}

// String returns the label shown next to a ratio
func (r Rating) String() string {
	switch r {
	case AAA:
		return "AAA"
	case AA:
		return "AA"
	default:
		return "Fail"
	}
}

// Class returns the CSS class used by the matrix table
func (r Rating) Class() string {
	switch r {
	case AAA:
		return "pass-aaa"
	case AA:
		return "pass-aa"
	default:
		return "fail"
	}
}

// Passes reports whether the rating is AA or better
func (r Rating) Passes() bool {
	return r >= AA
}

// MarshalText encodes the rating as its label
func (r Rating) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText parses a label written by MarshalText
func (r *Rating) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "AAA":
		*r = AAA
	case "AA":
		*r = AA
	case "FAIL":
		*r = Fail
	default:
		return fmt.Errorf("unknown rating %q", text)
	}
	return nil
}
