// SPDX-License-Identifier: MIT
package themes

import (
	"strings"
	"testing"
)

func TestGenerateCSS(t *testing.T) {
	css := GenerateCSS(GenerateColors(GetTheme("slate"), false))

	if css == "" {
		t.Fatal("GenerateCSS returned empty string")
	}
	if strings.Contains(css, "%!") {
		t.Fatal("CSS contains a formatting error")
	}
}

func TestGeneratedCSSContainsVariables(t *testing.T) {
	css := GenerateCSS(GenerateColors(GetTheme("indigo"), false))

	expectedVars := []string{
		"--color-primary",
		"--color-primary-contrast",
		"--color-secondary",
		"--color-bg",
		"--color-surface",
		"--color-text",
		"--color-text-muted",
		"--color-border",
		"--color-aaa",
		"--color-aa",
		"--color-fail",
	}

	for _, variable := range expectedVars {
		if !strings.Contains(css, variable) {
			t.Errorf("CSS missing variable: %s", variable)
		}
	}
}

func TestGeneratedCSSContainsMatrixClasses(t *testing.T) {
	css := GenerateCSS(GenerateColors(GetTheme("rose"), false))

	for _, class := range []string{".pass-aaa", ".pass-aa", "td.fail", "td.self-pair"} {
		if !strings.Contains(css, class) {
			t.Errorf("CSS missing class: %s", class)
		}
	}
}

func TestCSSGenerationLightVsDark(t *testing.T) {
	theme := GetTheme("navy")
	cssLight := GenerateCSS(GenerateColors(theme, false))
	cssDark := GenerateCSS(GenerateColors(theme, true))

	if cssLight == cssDark {
		t.Fatal("Light and dark CSS should be different")
	}
}
