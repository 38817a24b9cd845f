package vedit

import (
	"image/color"
	"math"
	"testing"
)

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

func TestRGBA_ColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          RGBA
		wantR, wantG, wantB, wantA uint32
	}{
		{
			name:  "opaque black",
			c:     Black,
			wantR: 0, wantG: 0, wantB: 0, wantA: 65535,
		},
		{
			name:  "opaque white",
			c:     White,
			wantR: 65535, wantG: 65535, wantB: 65535, wantA: 65535,
		},
		{
			name:  "transparent",
			c:     Transparent,
			wantR: 0, wantG: 0, wantB: 0, wantA: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != tt.wantA {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestRGBA_NRGBA(t *testing.T) {
	got := RGBA{R: 0.73535, G: 0.5, B: 0, A: 1}.NRGBA()
	want := color.NRGBA{R: 188, G: 128, B: 0, A: 255}
	if got != want {
		t.Errorf("NRGBA() = %v, want %v", got, want)
	}
}

func TestFromColor(t *testing.T) {
	c := FromColor(color.NRGBA{R: 255, G: 0, B: 51, A: 128})
	const tolerance = 0.001
	if math.Abs(c.R-1) > tolerance || c.G != 0 || math.Abs(c.B-0.2) > tolerance || math.Abs(c.A-128.0/255) > tolerance {
		t.Errorf("FromColor() = %v", c)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGBA
		wantHex string
	}{
		{"#ffffff", White, "#ffffff"},
		{"000000", Black, "#000000"},
		{"#f00", Red, "#ff0000"},
		{"#00000080", RGBA8(0, 0, 0, 128), "#00000080"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q) error = %v", tt.in, err)
			}
			if got.NRGBA() != tt.want.NRGBA() {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if h := got.Hex(); h != tt.wantHex {
				t.Errorf("Hex() = %q, want %q", h, tt.wantHex)
			}
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#zzzzzz", "#ffffffzz"} {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q) expected error", in)
		}
	}
}
