package gradient

import (
	"fmt"
	"slices"

	"github.com/gogpu/vedit"
)

// DefaultHandleWidth is the width of a stop handle in pixels. The strip
// reserves this much so handles are not clipped at either end.
const DefaultHandleWidth = 18

// EventKind is the kind of a Slider event.
type EventKind int

const (
	// EventAdded asks the host to insert Stop at NewIndex.
	EventAdded EventKind = iota
	// EventDeleted asks the host to remove Stop (at OldIndex).
	EventDeleted
	// EventChanged reports a live drag: Stop.Offset has been written and
	// Stop would move from OldIndex to NewIndex in sorted order.
	EventChanged
	// EventConfirmed ends a drag. Before holds the pre-drag state.
	EventConfirmed
	// EventColorChanging reports a live color edit from a Picker.
	EventColorChanging
	// EventColorConfirmed commits a color edit. Before holds the color
	// the picker opened with.
	EventColorConfirmed
)

func (k EventKind) String() string {
	switch k {
	case EventAdded:
		return "added"
	case EventDeleted:
		return "deleted"
	case EventChanged:
		return "changed"
	case EventConfirmed:
		return "confirmed"
	case EventColorChanging:
		return "color-changing"
	case EventColorConfirmed:
		return "color-confirmed"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is an intent emitted by a Slider.
type Event struct {
	Kind     EventKind
	Stop     *Stop
	OldIndex int
	NewIndex int
	Before   Snapshot
}

// SliderOption configures a Slider.
type SliderOption func(*Slider)

// WithHandleWidth sets the handle width in pixels.
func WithHandleWidth(w float64) SliderOption {
	return func(s *Slider) { s.handleWidth = max(0, w) }
}

// WithQuantize controls whether inserted colors are rounded to 8-bit
// channels. The default is true, matching 8-bit color hosts.
func WithQuantize(on bool) SliderOption {
	return func(s *Slider) { s.quantize = on }
}

// WithScrubOptions configures the handle drag, e.g. pointer lock.
func WithScrubOptions(opts ...vedit.ScrubOption) SliderOption {
	return func(s *Slider) { s.scrubOpts = append(s.scrubOpts, opts...) }
}

// dragState is the handle drag in progress.
type dragState struct {
	stop      *Stop
	startX    float64
	lastDelta float64
	oldIndex  int
	index     int
	before    Snapshot
}

// Slider maps a Collection onto a horizontal strip of stop handles.
//
// It never mutates the collection's order: it keeps a local mirror of the
// stops, writes offsets and colors onto the shared *Stop values live, and
// emits Events for the host to apply, now or later. Hit testing and
// editing both use the mirror, so intents the host has not applied yet
// are already visible to the pointer.
type Slider struct {
	stops  *Collection
	cancel func()
	order  []*Stop // sorted by offset
	drawn  []*Stop // paint order, topmost last

	width       float64
	handleWidth float64
	quantize    bool

	selected *Stop
	hovered  *Stop

	scrubOpts []vedit.ScrubOption
	scrub     *vedit.ScrubController
	drag      *dragState

	picker   *Picker
	handlers []func(Event)
	closed   bool
}

// NewSlider creates a slider over c, width pixels wide.
func NewSlider(c *Collection, width float64, opts ...SliderOption) *Slider {
	s := &Slider{
		stops:       c,
		width:       width,
		handleWidth: DefaultHandleWidth,
		quantize:    true,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.scrub = vedit.NewScrubController(s.scrubOpts...)
	s.sync()
	s.cancel = c.Subscribe(func(Change) {
		if s.drag == nil {
			s.sync()
		}
	})
	return s
}

// OnEvent registers a handler for slider intents.
func (s *Slider) OnEvent(fn func(Event)) {
	s.handlers = append(s.handlers, fn)
}

// Order returns the slider's sorted mirror of the stops. During a drag it
// reflects the prospective order.
func (s *Slider) Order() []*Stop { return slices.Clone(s.order) }

// Selected returns the selected stop, or nil.
func (s *Slider) Selected() *Stop { return s.selected }

// Select selects st if it belongs to the slider.
func (s *Slider) Select(st *Stop) {
	if st == nil || slices.Contains(s.order, st) {
		s.selected = st
	}
}

// Hovered returns the stop under the pointer, or nil.
func (s *Slider) Hovered() *Stop { return s.hovered }

// SetWidth updates the strip width after a layout pass.
func (s *Slider) SetWidth(w float64) { s.width = w }

// DragWidth is the travel of a handle: the strip width minus one handle.
func (s *Slider) DragWidth() float64 { return max(0, s.width-s.handleWidth) }

// OffsetToPixel returns the left edge of a handle at offset.
func (s *Slider) OffsetToPixel(offset float64) float64 {
	return clamp01(offset) * s.DragWidth()
}

// PixelToOffset converts a strip position to an offset in [0, 1].
func (s *Slider) PixelToOffset(x float64) float64 {
	w := s.DragWidth()
	if w <= 0 {
		return 0
	}
	return clamp01(x / w)
}

// HitTest returns the stop whose handle covers x. Handles later in the
// presentation order are drawn on top and win; stops inserted by the
// slider are drawn above the rest.
func (s *Slider) HitTest(x float64) *Stop {
	for i := len(s.drawn) - 1; i >= 0; i-- {
		st := s.drawn[i]
		left := s.OffsetToPixel(st.Offset)
		if x >= left && x <= left+s.handleWidth {
			return st
		}
	}
	return nil
}

// Hover updates the hovered stop for pointer position x.
func (s *Slider) Hover(x float64) *Stop {
	s.hovered = s.HitTest(x)
	return s.hovered
}

// PointerPressed handles a press at strip position x. A primary press on a
// handle starts dragging it; on the background it inserts a stop.
func (s *Slider) PointerPressed(x float64, b vedit.Button) bool {
	if s.closed || b != vedit.ButtonPrimary || s.drag != nil {
		return false
	}
	if st := s.HitTest(x); st != nil {
		return s.beginDrag(st, x)
	}
	s.insertAt(x)
	return true
}

// PointerMoved feeds a pointer move. While dragging it moves the handle;
// otherwise it updates the hover state.
func (s *Slider) PointerMoved(x float64) bool {
	if s.drag == nil {
		s.Hover(x)
		return false
	}
	r, ok := s.scrub.Move(vedit.Pt(x, 0))
	if !ok {
		return false
	}
	s.moveTo(r.Delta)
	return true
}

// PointerReleased ends a drag.
func (s *Slider) PointerReleased(x float64) bool {
	if s.drag == nil {
		return false
	}
	r, _ := s.scrub.Release(vedit.Pt(x, 0))
	s.endDrag(r)
	return true
}

// CaptureLost ends a drag with the last known position.
func (s *Slider) CaptureLost() bool {
	if s.drag == nil {
		return false
	}
	r, _ := s.scrub.CaptureLost()
	vedit.Logger().Warn("gradient: pointer capture lost, committing stop position")
	s.endDrag(r)
	return true
}

// SecondaryClick is the context-menu delete on the stop under x. It
// reports whether a stop was deleted.
func (s *Slider) SecondaryClick(x float64) bool {
	st := s.Hover(x)
	if st == nil {
		return false
	}
	return s.Delete(st)
}

// CanDelete reports whether a delete action should be offered.
func (s *Slider) CanDelete(st *Stop) bool {
	return !s.closed && st != nil && len(s.order) > MinStops && slices.Contains(s.order, st)
}

// Delete removes st from the mirror and emits EventDeleted. It is refused
// when MinStops or fewer stops remain. If st was selected, the selection
// moves to the stop now at its index, or the last stop.
func (s *Slider) Delete(st *Stop) bool {
	if !s.CanDelete(st) || s.drag != nil {
		if st != nil && len(s.order) <= MinStops {
			vedit.Logger().Warn("gradient: refusing to delete below minimum stop count", "count", len(s.order))
		}
		return false
	}
	if s.picker != nil && s.picker.stop == st {
		s.picker.Close()
	}
	idx := slices.Index(s.order, st)
	s.order = slices.Delete(s.order, idx, idx+1)
	if d := slices.Index(s.drawn, st); d >= 0 {
		s.drawn = slices.Delete(s.drawn, d, d+1)
	}
	if s.selected == st {
		s.selected = s.order[min(idx, len(s.order)-1)]
	}
	if s.hovered == st {
		s.hovered = nil
	}
	s.emit(Event{Kind: EventDeleted, Stop: st, OldIndex: idx, NewIndex: -1, Before: st.snapshot()})
	return true
}

// Close ends an active drag, closes the picker and detaches from the
// collection.
func (s *Slider) Close() {
	if s.closed {
		return
	}
	s.CaptureLost()
	if s.picker != nil {
		s.picker.Close()
	}
	s.closed = true
	s.cancel()
	s.handlers = nil
}

// insertAt adds a stop at strip position x with the ramp's color there.
func (s *Slider) insertAt(x float64) {
	offset := s.PixelToOffset(x)
	col, idx := colorAt(s.order, offset)
	if s.quantize {
		col = col.Quantize()
	}
	st := &Stop{Offset: offset, Color: col}
	s.order = slices.Insert(s.order, idx, st)
	s.drawn = append(s.drawn, st)
	s.selected = st
	vedit.Logger().Debug("gradient: stop inserted", "offset", offset, "index", idx, "color", col.Hex())
	s.emit(Event{Kind: EventAdded, Stop: st, OldIndex: -1, NewIndex: idx, Before: st.snapshot()})
}

func (s *Slider) beginDrag(st *Stop, x float64) bool {
	idx := slices.Index(s.order, st)
	if idx < 0 || !s.scrub.Press(vedit.Pt(x, 0), vedit.ButtonPrimary, vedit.TargetHandle) {
		return false
	}
	s.selected = st
	s.drag = &dragState{
		stop:     st,
		startX:   s.OffsetToPixel(st.Offset),
		oldIndex: idx,
		index:    idx,
		before:   st.snapshot(),
	}
	return true
}

// moveTo writes the dragged offset and restores the mirror's order by
// comparing only with the neighbours.
func (s *Slider) moveTo(delta float64) {
	d := s.drag
	d.lastDelta = delta
	w := s.DragWidth()
	px := min(max(d.startX+delta, 0), w)
	if w > 0 {
		d.stop.Offset = px / w
	}

	i := d.index
	for i > 0 && s.order[i-1].Offset > d.stop.Offset {
		s.order[i-1], s.order[i] = s.order[i], s.order[i-1]
		i--
	}
	for i+1 < len(s.order) && s.order[i+1].Offset < d.stop.Offset {
		s.order[i+1], s.order[i] = s.order[i], s.order[i+1]
		i++
	}
	d.index = i

	s.emit(Event{Kind: EventChanged, Stop: d.stop, OldIndex: d.oldIndex, NewIndex: i, Before: d.before})
}

func (s *Slider) endDrag(r vedit.ScrubResult) {
	d := s.drag
	if r.Delta != d.lastDelta {
		s.moveTo(r.Delta)
	}
	s.drag = nil
	if d.stop.Offset == d.before.Offset {
		return
	}
	s.emit(Event{Kind: EventConfirmed, Stop: d.stop, OldIndex: d.oldIndex, NewIndex: d.index, Before: d.before})
}

// sync rebuilds the mirror from the collection.
func (s *Slider) sync() {
	s.order = s.stops.Stops()
	s.drawn = s.stops.Presentation()
	if s.selected != nil && !slices.Contains(s.order, s.selected) {
		s.selected = nil
	}
	if s.hovered != nil && !slices.Contains(s.order, s.hovered) {
		s.hovered = nil
	}
}

func (s *Slider) emit(ev Event) {
	for _, fn := range s.handlers {
		fn(ev)
	}
}
