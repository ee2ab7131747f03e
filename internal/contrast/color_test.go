// SPDX-License-Identifier: MIT
package contrast

import (
	"errors"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantRaw string
		wantErr bool
	}{
		{name: "with hash", input: "#FEDC2A", wantRaw: "FEDC2A"},
		{name: "without hash", input: "fedc2a", wantRaw: "fedc2a"},
		{name: "mixed case kept", input: "#FeDc2A", wantRaw: "FeDc2A"},
		{name: "short form rejected", input: "#fff", wantErr: true},
		{name: "too long", input: "#FFFFFFF", wantErr: true},
		{name: "non hex", input: "#GGGGGG", wantErr: true},
		{name: "double hash", input: "##FFFFF", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace", input: " FFFFFF", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseColor(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Fatalf("expected ErrInvalidColor, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Raw() != tt.wantRaw {
				t.Errorf("Raw() = %q, want %q", c.Raw(), tt.wantRaw)
			}
		})
	}
}

func TestColorForms(t *testing.T) {
	c := MustParseColor("#fedc2a")

	if c.Hex() != "#FEDC2A" {
		t.Errorf("Hex() = %q, want #FEDC2A", c.Hex())
	}
	if c.Key() != "fedc2a" {
		t.Errorf("Key() = %q, want fedc2a", c.Key())
	}
	if !c.Equal(MustParseColor("FEDC2A")) {
		t.Error("colors differing only in case should be equal")
	}
	if c.Equal(MustParseColor("FEDC2B")) {
		t.Error("different colors should not be equal")
	}

	r, g, b := c.RGB()
	if r != 0xFE || g != 0xDC || b != 0x2A {
		t.Errorf("RGB() = %d,%d,%d", r, g, b)
	}
}

func TestZeroColor(t *testing.T) {
	var c Color
	if !c.IsZero() {
		t.Error("zero value should report IsZero")
	}
	if MustParseColor("000000").IsZero() {
		t.Error("black is a real color, not the zero value")
	}
}
