package gradient

import (
	"math"
	"testing"

	"github.com/gogpu/vedit"
)

// stripWidth gives a drag width of 200 with the default handle.
const stripWidth = 200 + DefaultHandleWidth

type eventLog struct {
	events []Event
}

func (l *eventLog) kinds() []EventKind {
	out := make([]EventKind, len(l.events))
	for i, ev := range l.events {
		out[i] = ev.Kind
	}
	return out
}

func (l *eventLog) last() Event { return l.events[len(l.events)-1] }

// newTestSlider wires a slider to c with a host that applies every event.
func newTestSlider(c *Collection, opts ...SliderOption) (*Slider, *eventLog) {
	s := NewSlider(c, stripWidth, opts...)
	l := &eventLog{}
	s.OnEvent(func(ev Event) {
		l.events = append(l.events, ev)
		c.Apply(ev)
	})
	return s, l
}

func blackWhite() *Collection {
	return NewCollection(Stop{Offset: 0, Color: vedit.Black}, Stop{Offset: 1, Color: vedit.White})
}

func threeStops() (*Collection, *Stop, *Stop, *Stop) {
	c := NewCollection(
		Stop{Offset: 0, Color: vedit.Red},
		Stop{Offset: 0.5, Color: vedit.Green},
		Stop{Offset: 1, Color: vedit.Blue},
	)
	return c, c.At(0), c.At(1), c.At(2)
}

func TestSliderGeometry(t *testing.T) {
	s := NewSlider(blackWhite(), stripWidth)
	if s.DragWidth() != 200 {
		t.Fatalf("DragWidth = %v, want 200", s.DragWidth())
	}
	tests := []struct {
		x, offset float64
	}{
		{-10, 0}, {0, 0}, {50, 0.25}, {200, 1}, {stripWidth, 1},
	}
	for _, tt := range tests {
		if got := s.PixelToOffset(tt.x); got != tt.offset {
			t.Errorf("PixelToOffset(%v) = %v, want %v", tt.x, got, tt.offset)
		}
	}
	if got := s.OffsetToPixel(0.75); got != 150 {
		t.Errorf("OffsetToPixel(0.75) = %v, want 150", got)
	}

	s.SetWidth(10)
	if s.DragWidth() != 0 || s.PixelToOffset(5) != 0 {
		t.Errorf("narrow strip: DragWidth = %v, PixelToOffset(5) = %v", s.DragWidth(), s.PixelToOffset(5))
	}
}

func TestSliderInsertInterpolates(t *testing.T) {
	c := blackWhite()
	s, log := newTestSlider(c)

	if !s.PointerPressed(100, vedit.ButtonPrimary) {
		t.Fatal("press on background was not handled")
	}
	if len(log.events) != 1 || log.events[0].Kind != EventAdded {
		t.Fatalf("events = %v, want one EventAdded", log.kinds())
	}
	ev := log.events[0]
	if ev.NewIndex != 1 || ev.Stop.Offset != 0.5 {
		t.Errorf("added at index %d offset %v, want 1 and 0.5", ev.NewIndex, ev.Stop.Offset)
	}
	if got := ev.Stop.Color.NRGBA(); got.R != 188 || got.G != 188 || got.B != 188 || got.A != 255 {
		t.Errorf("inserted color = %v, want {188 188 188 255}", got)
	}
	if s.Selected() != ev.Stop {
		t.Error("inserted stop is not selected")
	}
	if c.Len() != 3 || c.At(1) != ev.Stop {
		t.Errorf("collection after apply: len %d, At(1) = %+v", c.Len(), c.At(1))
	}
	if len(s.Order()) != 3 {
		t.Errorf("slider mirror has %d stops, want 3", len(s.Order()))
	}
}

func TestSliderInsertUnquantized(t *testing.T) {
	s, log := newTestSlider(blackWhite(), WithQuantize(false))
	s.PointerPressed(100, vedit.ButtonPrimary)
	got := log.last().Stop.Color.R
	want := 1.055*math.Pow(0.5, 1/2.4) - 0.055
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("unquantized R = %v, want %v", got, want)
	}
}

func TestSliderDragReorders(t *testing.T) {
	c, a, b, _ := threeStops()
	s, log := newTestSlider(c)

	if !s.PointerPressed(5, vedit.ButtonPrimary) {
		t.Fatal("press on first handle was not handled")
	}
	if s.Selected() != a {
		t.Error("pressed stop is not selected")
	}

	s.PointerMoved(125)
	if a.Offset != 0.6 {
		t.Errorf("offset during drag = %v, want 0.6", a.Offset)
	}
	ev := log.last()
	if ev.Kind != EventChanged || ev.OldIndex != 0 || ev.NewIndex != 1 {
		t.Errorf("changed event = %+v, want 0 -> 1", ev)
	}
	if got := s.Order(); got[0] != b || got[1] != a {
		t.Error("mirror did not swap the dragged stop past its neighbour")
	}
	if c.At(0) != a {
		t.Error("collection reordered during the drag")
	}

	s.PointerReleased(125)
	ev = log.last()
	if ev.Kind != EventConfirmed {
		t.Fatalf("last event = %v, want confirmed", ev.Kind)
	}
	if ev.OldIndex != 0 || ev.NewIndex != 1 || ev.Before.Offset != 0 || ev.Before.Color != vedit.Red {
		t.Errorf("confirmed = %+v, want 0 -> 1 with pre-drag snapshot", ev)
	}
	if c.At(1) != a || c.At(0) != b {
		t.Error("collection not reordered after confirm")
	}
}

func TestSliderDragClampsToStrip(t *testing.T) {
	c, _, _, z := threeStops()
	s, _ := newTestSlider(c)
	s.PointerPressed(205, vedit.ButtonPrimary)
	s.PointerMoved(900)
	if z.Offset != 1 {
		t.Errorf("offset past the end = %v, want 1", z.Offset)
	}
	s.PointerMoved(-900)
	if z.Offset != 0 {
		t.Errorf("offset before the start = %v, want 0", z.Offset)
	}
	s.PointerReleased(-900)
}

func TestSliderCaptureLostCommits(t *testing.T) {
	c, a, _, _ := threeStops()
	s, log := newTestSlider(c)
	s.PointerPressed(5, vedit.ButtonPrimary)
	s.PointerMoved(45)

	if !s.CaptureLost() {
		t.Fatal("CaptureLost during drag returned false")
	}
	ev := log.last()
	if ev.Kind != EventConfirmed || a.Offset != 0.2 {
		t.Errorf("after capture loss: event %v, offset %v; want confirmed at 0.2", ev.Kind, a.Offset)
	}
	if s.CaptureLost() {
		t.Error("CaptureLost when idle returned true")
	}
}

func TestSliderClickWithoutMoveDoesNotConfirm(t *testing.T) {
	c, _, _, _ := threeStops()
	s, log := newTestSlider(c)
	s.PointerPressed(105, vedit.ButtonPrimary)
	s.PointerReleased(105)
	for _, k := range log.kinds() {
		if k == EventConfirmed || k == EventAdded {
			t.Errorf("unexpected %v for a click on a handle", k)
		}
	}
}

func TestSliderSecondaryButtonDoesNotInsert(t *testing.T) {
	s, log := newTestSlider(blackWhite())
	if s.PointerPressed(100, vedit.ButtonSecondary) {
		t.Error("secondary press was handled")
	}
	if len(log.events) != 0 {
		t.Errorf("events = %v, want none", log.kinds())
	}
}

func TestSliderDelete(t *testing.T) {
	c, _, b, z := threeStops()
	s, log := newTestSlider(c)
	s.Select(b)

	if !s.SecondaryClick(105) {
		t.Fatal("delete with three stops refused")
	}
	ev := log.last()
	if ev.Kind != EventDeleted || ev.Stop != b || ev.OldIndex != 1 {
		t.Errorf("deleted event = %+v", ev)
	}
	if s.Selected() != z {
		t.Errorf("selection moved to %+v, want the stop now at the index", s.Selected())
	}
	if c.Len() != 2 {
		t.Errorf("collection len = %d, want 2", c.Len())
	}

	n := len(log.events)
	if s.SecondaryClick(5) {
		t.Error("delete with two stops succeeded")
	}
	if len(log.events) != n || c.Len() != 2 {
		t.Error("refused delete emitted an event or changed the collection")
	}
}

func TestSliderDeleteLastSelectsNewLast(t *testing.T) {
	c, _, b, z := threeStops()
	s, _ := newTestSlider(c)
	s.Select(z)
	if !s.Delete(z) {
		t.Fatal("Delete refused")
	}
	if s.Selected() != b {
		t.Errorf("selection = %+v, want the new last stop", s.Selected())
	}
}

func TestSliderHitTestTopmost(t *testing.T) {
	c := NewCollection(Stop{Offset: 0}, Stop{Offset: 1})
	first := c.At(0)
	c.Add(0, vedit.Red)
	added := c.At(1)
	s := NewSlider(c, stripWidth)

	if got := s.HitTest(5); got != added {
		t.Errorf("HitTest = %p, want later stop %p (not %p)", got, added, first)
	}
	if s.HitTest(100) != nil {
		t.Error("HitTest on background returned a stop")
	}
	if s.Hover(205) != c.At(2) || s.Hovered() != c.At(2) {
		t.Error("Hover did not track the last stop")
	}
}

func TestSliderPicker(t *testing.T) {
	c, a, b, _ := threeStops()
	s, log := newTestSlider(c)

	if s.OpenPicker() != nil {
		t.Fatal("OpenPicker without selection returned a picker")
	}
	s.Select(a)
	p := s.OpenPicker()
	if err := p.SetHex("#ffff00"); err != nil {
		t.Fatalf("SetHex: %v", err)
	}
	if ev := log.last(); ev.Kind != EventColorChanging || a.Color != vedit.RGB(1, 1, 0) {
		t.Errorf("after preview: event %v color %+v", ev.Kind, a.Color)
	}
	if err := p.SetHex("nope"); err == nil {
		t.Error("SetHex accepted an invalid color")
	}

	s.Select(b)
	q := s.OpenPicker()
	if p.Open() || !q.Open() || s.Picker() != q {
		t.Error("opening a second picker did not replace the first")
	}
	ev := log.last()
	if ev.Kind != EventColorConfirmed || ev.Stop != a || ev.Before.Color != vedit.Red {
		t.Errorf("closing picker emitted %+v, want color confirm with red before", ev)
	}

	n := len(log.events)
	q.Close()
	if len(log.events) != n {
		t.Error("closing an unchanged picker emitted events")
	}
	if s.Picker() != nil {
		t.Error("closed picker still attached")
	}
}

func TestSliderClose(t *testing.T) {
	c, a, _, _ := threeStops()
	s, log := newTestSlider(c)
	s.PointerPressed(5, vedit.ButtonPrimary)
	s.PointerMoved(25)
	s.Close()

	if ev := log.last(); ev.Kind != EventConfirmed || a.Offset != 0.1 {
		t.Errorf("Close during drag: last event %v, offset %v", ev.Kind, a.Offset)
	}
	n := len(log.events)
	c.Add(0.7, vedit.Red)
	if s.PointerPressed(100, vedit.ButtonPrimary) || len(log.events) != n {
		t.Error("closed slider still reacts")
	}
}

func TestSliderFollowsCollection(t *testing.T) {
	c := blackWhite()
	s := NewSlider(c, stripWidth)
	c.Add(0.5, vedit.Red)
	if len(s.Order()) != 3 {
		t.Errorf("mirror len = %d after host add, want 3", len(s.Order()))
	}
}

// queuedHost holds slider intents until flush, like a host that routes
// edits through an undo queue.
type queuedHost struct {
	c       *Collection
	pending []Event
}

func newQueuedSlider(c *Collection) (*Slider, *queuedHost) {
	h := &queuedHost{c: c}
	s := NewSlider(c, stripWidth)
	s.OnEvent(func(ev Event) { h.pending = append(h.pending, ev) })
	return s, h
}

func (h *queuedHost) flush(t *testing.T) {
	t.Helper()
	evs := h.pending
	h.pending = nil
	for _, ev := range evs {
		if !h.c.Apply(ev) {
			t.Errorf("Apply(%v) refused", ev.Kind)
		}
	}
}

func TestSliderDeferredDelete(t *testing.T) {
	c, a, b, z := threeStops()
	s, host := newQueuedSlider(c)

	if !s.SecondaryClick(105) {
		t.Fatal("delete refused")
	}
	if c.Len() != 3 {
		t.Fatalf("collection changed before the host applied: len %d", c.Len())
	}
	if s.HitTest(105) != nil {
		t.Error("deleted stop still hit before the host applied the delete")
	}

	// The deleted handle's spot is background now: a press inserts.
	if !s.PointerPressed(105, vedit.ButtonPrimary) {
		t.Fatal("press on the deleted stop's position was not handled")
	}
	inserted := host.pending[len(host.pending)-1]
	if inserted.Kind != EventAdded {
		t.Fatalf("press emitted %v, want added", inserted.Kind)
	}
	if s.PointerMoved(125) {
		t.Error("move after an insert was treated as a drag")
	}

	s.PointerPressed(5, vedit.ButtonPrimary)
	s.PointerMoved(45)
	s.PointerReleased(45)
	if a.Offset != 0.2 {
		t.Errorf("dragged offset = %v, want 0.2", a.Offset)
	}

	host.flush(t)
	want := []*Stop{a, inserted.Stop, z}
	got := c.Stops()
	if len(got) != len(want) {
		t.Fatalf("collection len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("collection[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
	if c.IndexOf(b) >= 0 {
		t.Error("deleted stop still in the collection")
	}
	if len(s.Order()) != 3 {
		t.Errorf("mirror len = %d after flush, want 3", len(s.Order()))
	}
}

func TestSliderDeferredInsertThenDrag(t *testing.T) {
	c := blackWhite()
	s, host := newQueuedSlider(c)

	s.PointerPressed(100, vedit.ButtonPrimary)
	st := s.Selected()
	if c.Len() != 2 {
		t.Fatalf("collection len = %d before flush, want 2", c.Len())
	}
	if s.HitTest(105) != st {
		t.Fatal("inserted stop cannot be hit before the host applied it")
	}

	if !s.PointerPressed(105, vedit.ButtonPrimary) {
		t.Fatal("press on the inserted stop did not start a drag")
	}
	s.PointerMoved(125)
	s.PointerReleased(125)
	if st.Offset != 0.6 {
		t.Errorf("offset = %v, want 0.6", st.Offset)
	}

	var kinds []EventKind
	for _, ev := range host.pending {
		kinds = append(kinds, ev.Kind)
	}
	if len(kinds) != 3 || kinds[0] != EventAdded || kinds[1] != EventChanged || kinds[2] != EventConfirmed {
		t.Fatalf("queued = %v, want added, changed, confirmed", kinds)
	}

	host.flush(t)
	if c.Len() != 3 || c.At(1) != st {
		t.Errorf("collection after flush: len %d, At(1) = %+v", c.Len(), c.At(1))
	}
}
