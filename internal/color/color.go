// Package color provides sRGB transfer functions shared by the editors
// and the gradient ramp.
package color

// Linear holds straight (non-premultiplied) channels in linear light.
// Alpha is always linear (never gamma-encoded).
type Linear struct {
	R, G, B, A float64
}

// Lerp interpolates each channel by t.
func (c Linear) Lerp(o Linear, t float64) Linear {
	return Linear{
		R: c.R + t*(o.R-c.R),
		G: c.G + t*(o.G-c.G),
		B: c.B + t*(o.B-c.B),
		A: c.A + t*(o.A-c.A),
	}
}
