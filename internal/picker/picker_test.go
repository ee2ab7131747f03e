// SPDX-License-Identifier: MIT
package picker

import (
	"errors"
	"testing"

	"github.com/thatcatcamp/contrastkitty/internal/contrast"
	"github.com/thatcatcamp/contrastkitty/internal/palette"
)

// Compile-time check that pickers plug into the palette model
var _ palette.ColorPicker = HexField{}

func TestPickers(t *testing.T) {
	tests := []struct {
		name    string
		picker  Picker
		input   string
		wantKey string
		wantErr bool
	}{
		{"hex with hash", HexField{}, "#FEDC2A", "fedc2a", false},
		{"hex bare padded", HexField{}, "  5a3b5d ", "5a3b5d", false},
		{"hex invalid", HexField{}, "#12345", "", true},
		{"native", NativeInput{}, "#8b538f", "8b538f", false},
		{"native without hash", NativeInput{}, "8b538f", "", true},
		{"hsl white", HSLField{}, "hsl(0, 0%, 100%)", "ffffff", false},
		{"hsl red", HSLField{}, "hsl(0deg, 100%, 50%)", "ff0000", false},
		{"hsl bare", HSLField{}, "240 100 50", "0000ff", false},
		{"hsl out of range", HSLField{}, "hsl(0, 120%, 50%)", "", true},
		{"hsl missing paren", HSLField{}, "hsl(0, 0%, 0%", "", true},
		{"rgb", RGBField{}, "rgb(254, 220, 42)", "fedc2a", false},
		{"rgb bare", RGBField{}, "0 0 0", "000000", false},
		{"rgb out of range", RGBField{}, "rgb(256, 0, 0)", "", true},
		{"rgb too few", RGBField{}, "rgb(1, 2)", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.picker.Pick(tt.input)
			if tt.wantErr {
				if !errors.Is(err, contrast.ErrInvalidColor) {
					t.Fatalf("expected ErrInvalidColor, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Key() != tt.wantKey {
				t.Errorf("got %s, want %s", c.Key(), tt.wantKey)
			}
		})
	}
}

func TestForMode(t *testing.T) {
	if _, ok := ForMode("HSL").(HSLField); !ok {
		t.Error("expected HSLField for hsl")
	}
	if _, ok := ForMode("native").(NativeInput); !ok {
		t.Error("expected NativeInput for native")
	}
	if _, ok := ForMode("whatever").(HexField); !ok {
		t.Error("unknown modes should fall back to hex")
	}
}

func TestPickerKeepsPreviousColorInModel(t *testing.T) {
	m := palette.NewModel()
	id := m.AddEntry("Brand", contrast.MustParseColor("FEDC2A"))

	if err := m.SetColorFrom(id, RGBField{}, "rgb(300, 0, 0)"); err == nil {
		t.Fatal("expected error")
	}
	if e, _ := m.Entry(id); e.Color.Key() != "fedc2a" {
		t.Errorf("color changed to %s", e.Color)
	}
}
