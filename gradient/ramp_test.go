package gradient

import (
	"testing"

	"github.com/gogpu/vedit"
)

func TestRenderRampMatchesInsertion(t *testing.T) {
	c := blackWhite()
	img := c.Ramp(201, 4)
	if b := img.Bounds(); b.Dx() != 201 || b.Dy() != 4 {
		t.Fatalf("bounds = %v, want 201x4", b)
	}

	s, log := newTestSlider(c)
	s.PointerPressed(100, vedit.ButtonPrimary)
	inserted := log.last().Stop.Color.NRGBA()

	for y := 0; y < 4; y++ {
		if got := img.NRGBAAt(100, y); got != inserted {
			t.Errorf("ramp(100, %d) = %v, want inserted color %v", y, got, inserted)
		}
	}
	if got := img.NRGBAAt(0, 0); got != vedit.Black.NRGBA() {
		t.Errorf("ramp(0, 0) = %v, want black", got)
	}
	if got := img.NRGBAAt(200, 3); got != vedit.White.NRGBA() {
		t.Errorf("ramp(200, 3) = %v, want white", got)
	}
}

func TestRenderRampDegenerate(t *testing.T) {
	if img := RenderRamp(nil, 0, 10); !img.Bounds().Empty() {
		t.Errorf("zero width bounds = %v, want empty", img.Bounds())
	}
	stops := []*Stop{{Offset: 0, Color: vedit.Red}, {Offset: 1, Color: vedit.Blue}}
	img := RenderRamp(stops, 1, 1)
	if got := img.NRGBAAt(0, 0); got != vedit.Red.NRGBA() {
		t.Errorf("single pixel = %v, want first stop", got)
	}
}
