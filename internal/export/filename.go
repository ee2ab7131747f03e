// SPDX-License-Identifier: MIT
package export

import (
	"strings"
	"unicode"
)

// Filename turns a palette title into a safe file name with ext
func Filename(title, ext string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
		} else if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	name := strings.Trim(b.String(), "-")
	if name == "" {
		name = "contrast-matrix"
	}
	return name + ext
}
