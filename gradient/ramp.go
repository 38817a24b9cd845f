package gradient

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// RenderRamp draws the gradient of sorted stops into a w×h image. Each
// column's color is the color a stop inserted at that column's offset
// would get (before quantisation).
func RenderRamp(sorted []*Stop, w, h int) *image.NRGBA {
	if w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}

	row := image.NewNRGBA(image.Rect(0, 0, w, 1))
	for x := 0; x < w; x++ {
		var offset float64
		if w > 1 {
			offset = float64(x) / float64(w-1)
		}
		col, _ := colorAt(sorted, offset)
		row.SetNRGBA(x, 0, col.NRGBA())
	}
	if h == 1 {
		return row
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), row, row.Bounds(), xdraw.Src, nil)
	return dst
}

// Ramp renders the collection with RenderRamp.
func (c *Collection) Ramp(w, h int) *image.NRGBA {
	return RenderRamp(c.sorted, w, h)
}
