package gradient

import (
	"sort"

	"github.com/gogpu/vedit"
	icolor "github.com/gogpu/vedit/internal/color"
)

// offsetEpsilon is the distance below which two offsets are the same stop
// position.
const offsetEpsilon = 1e-9

// Lerp blends a toward b by progress in linear light. progress is clamped
// to [0, 1] and the endpoints return a and b exactly.
func Lerp(a, b vedit.RGBA, progress float64) vedit.RGBA {
	if progress <= 0 {
		return a
	}
	if progress >= 1 {
		return b
	}
	la := icolor.ToLinear(a.R, a.G, a.B, a.A)
	lb := icolor.ToLinear(b.R, b.G, b.B, b.A)
	r, g, bl, al := icolor.ToSRGB(la.Lerp(lb, progress))
	return vedit.RGBA{R: r, G: g, B: bl, A: al}
}

// Interpolate returns the color at offset between prev and next.
// Coincident stops yield prev's color.
func Interpolate(prev, next Stop, offset float64) vedit.RGBA {
	span := next.Offset - prev.Offset
	if span <= offsetEpsilon {
		return prev.Color
	}
	return Lerp(prev.Color, next.Color, (offset-prev.Offset)/span)
}

// colorAt returns the color at offset on sorted stops, and the index a
// stop inserted at offset would take (after any stop at the same offset).
// A query that lands on an existing stop reuses its color.
func colorAt(sorted []*Stop, offset float64) (vedit.RGBA, int) {
	n := len(sorted)
	idx := sort.Search(n, func(i int) bool {
		return sorted[i].Offset > offset+offsetEpsilon
	})

	switch {
	case n == 0:
		return vedit.Transparent, 0
	case idx > 0 && sorted[idx-1].Offset >= offset-offsetEpsilon:
		return sorted[idx-1].Color, idx
	case idx == 0:
		return sorted[0].Color, 0
	case idx == n:
		return sorted[n-1].Color, n
	}
	return Interpolate(*sorted[idx-1], *sorted[idx], offset), idx
}
