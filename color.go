package vedit

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	icolor "github.com/gogpu/vedit/internal/color"
)

// RGBA is a straight (non-premultiplied) sRGB-encoded color.
// Each component is in the range [0, 1]. Linearization happens only
// transiently inside interpolation; RGBA never holds linear values.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA8 creates a color from 8-bit channels.
func RGBA8(r, g, b, a uint8) RGBA {
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 65535,
		G: float64(n.G) / 65535,
		B: float64(n.B) / 65535,
		A: float64(n.A) / 65535,
	}
}

// NRGBA rounds each channel to the nearest 8-bit level.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: icolor.Quantize8(c.R),
		G: icolor.Quantize8(c.G),
		B: icolor.Quantize8(c.B),
		A: icolor.Quantize8(c.A),
	}
}

// Quantize returns c snapped to 8-bit precision.
func (c RGBA) Quantize() RGBA {
	n := c.NRGBA()
	return RGBA8(n.R, n.G, n.B, n.A)
}

// RGBA implements color.Color. The result is alpha-premultiplied as
// the interface requires.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" when not fully opaque.
func (c RGBA) Hex() string {
	n := c.NRGBA()
	s := colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}.Hex()
	if n.A == 255 {
		return s
	}
	return fmt.Sprintf("%s%02x", s, n.A)
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa" (the leading '#' is
// optional).
func ParseHex(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")

	alpha := 1.0
	if len(s) == 8 {
		a, err := strconv.ParseUint(s[6:], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("vedit: invalid hex alpha %q: %w", s[6:], err)
		}
		alpha = float64(a) / 255
		s = s[:6]
	}

	c, err := colorful.Hex("#" + s)
	if err != nil {
		return RGBA{}, fmt.Errorf("vedit: invalid hex color %q: %w", s, err)
	}
	c = c.Clamped()
	return RGBA{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA{}
)
