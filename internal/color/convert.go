package color

import "math"

// SRGBToLinear converts an sRGB component to linear (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input and output are in range [0,1].
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component to sRGB (OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// Input and output are in range [0,1].
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// ToLinear converts straight sRGB channels to linear light.
// Only RGB components are converted; alpha passes through.
func ToLinear(r, g, b, a float64) Linear {
	return Linear{
		R: SRGBToLinear(r),
		G: SRGBToLinear(g),
		B: SRGBToLinear(b),
		A: a,
	}
}

// ToSRGB converts linear light back to sRGB channels.
func ToSRGB(c Linear) (r, g, b, a float64) {
	return LinearToSRGB(c.R), LinearToSRGB(c.G), LinearToSRGB(c.B), c.A
}

// Quantize8 clamps v to [0,1] and rounds it to the nearest 8-bit level.
func Quantize8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
