package vedit

import (
	"errors"
	"math"
	"time"
)

// PixelsToTimeSpan converts a pixel width on the timeline into a
// duration at the given zoom scale. The timeline host supplies it.
type PixelsToTimeSpan func(widthPixels, scale float64) time.Duration

// PixelsPerSecond is a PixelsToTimeSpan for timelines where scale is the
// number of pixels drawn per second.
func PixelsPerSecond(widthPixels, scale float64) time.Duration {
	if scale <= 0 {
		return 0
	}
	return time.Duration(math.Round(widthPixels / scale * float64(time.Second)))
}

// DurationEvent reports a keyframe duration commit.
type DurationEvent struct {
	New, Old time.Duration
}

// DurationResize is the drag handle that changes a keyframe's duration by
// resizing its segment on the timeline.
type DurationResize struct {
	toSpan PixelsToTimeSpan
	scale  float64
	width  float64

	scrub       *ScrubController
	startWidth  float64
	oldDuration time.Duration

	resizing  []func(width float64)
	confirmed []func(DurationEvent)
}

// NewDurationResize creates a resize handle for a segment currently
// width pixels wide.
func NewDurationResize(toSpan PixelsToTimeSpan, scale, width float64, opts ...ScrubOption) *DurationResize {
	return &DurationResize{
		toSpan: toSpan,
		scale:  scale,
		width:  width,
		scrub:  NewScrubController(opts...),
	}
}

// OnResizing registers a handler for live width changes.
func (r *DurationResize) OnResizing(fn func(width float64)) {
	r.resizing = append(r.resizing, fn)
}

// OnConfirmed registers a handler for committed duration changes.
func (r *DurationResize) OnConfirmed(fn func(DurationEvent)) {
	r.confirmed = append(r.confirmed, fn)
}

// Width returns the segment width in pixels.
func (r *DurationResize) Width() float64 { return r.width }

// Duration returns the duration the current width represents.
func (r *DurationResize) Duration() time.Duration { return r.toSpan(r.width, r.scale) }

// SetLayout updates width and scale from the timeline, e.g. after zooming.
// It is ignored during a drag.
func (r *DurationResize) SetLayout(width, scale float64) {
	if r.scrub.Active() {
		return
	}
	r.width, r.scale = width, scale
}

// PointerPressed starts a resize on the segment edge.
func (r *DurationResize) PointerPressed(p Point, b Button) bool {
	if !r.scrub.Press(p, b, TargetHandle) {
		return false
	}
	r.startWidth = r.width
	r.oldDuration = r.Duration()
	return true
}

// PointerMoved resizes the segment live.
func (r *DurationResize) PointerMoved(p Point) bool {
	res, ok := r.scrub.Move(p)
	if !ok {
		return false
	}
	r.resize(res.Delta)
	return true
}

// PointerReleased commits the resize.
func (r *DurationResize) PointerReleased(p Point) bool {
	res, ok := r.scrub.Release(p)
	if !ok {
		return false
	}
	r.finish(res)
	return true
}

// CaptureLost commits the resize with the last width.
func (r *DurationResize) CaptureLost() bool {
	res, ok := r.scrub.CaptureLost()
	if !ok {
		return false
	}
	r.finish(res)
	return true
}

func (r *DurationResize) resize(delta float64) {
	w := max(0, r.startWidth+delta)
	if w == r.width {
		return
	}
	r.width = w
	for _, fn := range r.resizing {
		fn(w)
	}
}

func (r *DurationResize) finish(res ScrubResult) {
	r.resize(res.Delta)
	d := r.Duration()
	Logger().Debug("vedit: keyframe resize end", "duration", d, "interrupted", res.Interrupted)
	if d == r.oldDuration {
		return
	}
	ev := DurationEvent{New: d, Old: r.oldDuration}
	for _, fn := range r.confirmed {
		fn(ev)
	}
}

// ErrNoTimeScale is returned when a keyframe editor is built without a
// PixelsToTimeSpan collaborator.
var ErrNoTimeScale = errors.New("vedit: keyframe editor needs a time scale")

// KeyframeEditor edits an animation segment: the values at the previous
// and next keyframes, sharing one control surface, and the segment's
// duration. The two value sides have independent focus and commit
// lifecycles.
type KeyframeEditor[T any] struct {
	Previous *Editor[T]
	Next     *Editor[T]
	Duration *DurationResize
}

// KeyframeLayout places the segment on the timeline.
type KeyframeLayout struct {
	Width  float64          // segment width in pixels
	Scale  float64          // timeline zoom, passed to ToSpan
	ToSpan PixelsToTimeSpan // host conversion from pixels to time
}

// NewKeyframeEditor creates a dual-value editor. prev and next must have
// the same component count.
func NewKeyframeEditor[T any](s Strategy[T], prev, next []T, layout KeyframeLayout, opts ...Option[T]) (*KeyframeEditor[T], error) {
	if len(prev) != len(next) {
		return nil, ErrComponentCount
	}
	if layout.ToSpan == nil {
		return nil, ErrNoTimeScale
	}
	p, err := NewEditor(s, prev, opts...)
	if err != nil {
		return nil, err
	}
	n, err := NewEditor(s, next, opts...)
	if err != nil {
		return nil, err
	}
	return &KeyframeEditor[T]{
		Previous: p,
		Next:     n,
		Duration: NewDurationResize(layout.ToSpan, layout.Scale, layout.Width),
	}, nil
}

// Dispose detaches both sides and finalises an active resize.
func (k *KeyframeEditor[T]) Dispose() {
	k.Previous.Dispose()
	k.Next.Dispose()
	k.Duration.CaptureLost()
}
