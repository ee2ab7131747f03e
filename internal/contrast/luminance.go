// SPDX-License-Identifier: MIT
package contrast

import "math"

// RelativeLuminance returns the WCAG 2.x relative luminance of c, 0 for
// black through 1 for white
func RelativeLuminance(c Color) float64 {
	r, g, b := c.RGB()
	return 0.2126*linearize(float64(r)/255) +
		0.7152*linearize(float64(g)/255) +
		0.0722*linearize(float64(b)/255)
}

// linearize undoes sRGB gamma using the WCAG 2.x threshold of 0.03928
func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
