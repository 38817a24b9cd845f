package vedit

import (
	"errors"
	"fmt"
	"log/slog"
)

// MaxComponents is the largest number of components an Editor holds.
const MaxComponents = 4

// ErrComponentCount is returned when an editor is created or updated with
// a component count outside 1..MaxComponents, or one that does not match.
var ErrComponentCount = errors.New("vedit: component count must be between 1 and 4")

// Source identifies the input channel that produced an event.
type Source int

const (
	SourceText Source = iota
	SourceWheel
	SourceScrub
	SourceUniform
)

func (s Source) String() string {
	switch s {
	case SourceText:
		return "text"
	case SourceWheel:
		return "wheel"
	case SourceScrub:
		return "scrub"
	case SourceUniform:
		return "uniform"
	}
	return fmt.Sprintf("Source(%d)", int(s))
}

// ValueEvent carries the full component vector before and after an edit.
// The slices are owned by the receiver.
type ValueEvent[T any] struct {
	New       []T
	Old       []T
	Component int // component that initiated the edit
	Source    Source
}

// slot is one editable component.
type slot[T any] struct {
	current   T
	committed T
	text      string
}

// Editor edits an N-component value through typed text, the pointer
// wheel and header scrubbing.
//
// ValueChanging handlers see every live edit; ValueConfirmed handlers see
// one event per completed gesture, after all of its ValueChanging events.
// An Editor is not safe for concurrent use; drive it from the UI thread.
type Editor[T any] struct {
	s     Strategy[T]
	slots []slot[T]
	opts  editorOptions[T]

	uniform  bool
	focused  int
	hasError bool
	disposed bool

	scrub          *ScrubController
	scrubComponent int
	scrubStart     []T

	debounce debouncer

	changing  []func(ValueEvent[T])
	confirmed []func(ValueEvent[T])
}

// NewEditor creates an editor over values using strategy s.
func NewEditor[T any](s Strategy[T], values []T, opts ...Option[T]) (*Editor[T], error) {
	if len(values) < 1 || len(values) > MaxComponents {
		return nil, fmt.Errorf("%w: got %d", ErrComponentCount, len(values))
	}

	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Editor[T]{
		s:        s,
		slots:    make([]slot[T], len(values)),
		opts:     o,
		focused:  -1,
		scrub:    NewScrubController(o.scrub...),
		debounce: debouncer{d: o.dispatcher, delay: o.debounce},
	}
	for i, v := range values {
		v = e.clamp(v)
		e.slots[i] = slot[T]{current: v, committed: v, text: s.Format(v)}
	}
	if o.uniform && len(values) > 1 {
		e.uniform = true
		e.setAll(e.slots[0].current, -1)
		for i := range e.slots {
			e.slots[i].committed = e.slots[i].current
		}
	}
	return e, nil
}

func mustEditor[T any](s Strategy[T], values []T, opts []Option[T]) *Editor[T] {
	e, err := NewEditor(s, values, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// NewNumberEditor creates a single-component editor.
func NewNumberEditor[T any](s Strategy[T], v T, opts ...Option[T]) *Editor[T] {
	return mustEditor(s, []T{v}, opts)
}

// NewVector2Editor creates a two-component editor.
func NewVector2Editor[T any](s Strategy[T], x, y T, opts ...Option[T]) *Editor[T] {
	return mustEditor(s, []T{x, y}, opts)
}

// NewVector3Editor creates a three-component editor.
func NewVector3Editor[T any](s Strategy[T], x, y, z T, opts ...Option[T]) *Editor[T] {
	return mustEditor(s, []T{x, y, z}, opts)
}

// NewVector4Editor creates a four-component editor, also used for
// rectangles and RGBA channels.
func NewVector4Editor[T any](s Strategy[T], x, y, z, w T, opts ...Option[T]) *Editor[T] {
	return mustEditor(s, []T{x, y, z, w}, opts)
}

// NewPercentageEditor creates a single-component percentage editor
// clamped to [0, 1] unless a range option overrides it.
func NewPercentageEditor(loc *Locale, v float64, opts ...Option[float64]) *Editor[float64] {
	opts = append([]Option[float64]{WithRange(0.0, 1.0)}, opts...)
	return mustEditor[float64](NewPercentageStrategy(loc), []float64{v}, opts)
}

// NewRationalEditor creates a single-component rational editor.
func NewRationalEditor(v Rational, opts ...Option[Rational]) *Editor[Rational] {
	return mustEditor[Rational](RationalStrategy{}, []Rational{v.normalized()}, opts)
}

// OnValueChanging registers a handler for live edits.
func (e *Editor[T]) OnValueChanging(fn func(ValueEvent[T])) {
	e.changing = append(e.changing, fn)
}

// OnValueConfirmed registers a handler for committed edits.
func (e *Editor[T]) OnValueConfirmed(fn func(ValueEvent[T])) {
	e.confirmed = append(e.confirmed, fn)
}

// Len returns the number of components.
func (e *Editor[T]) Len() int { return len(e.slots) }

// Value returns the current value of component i.
func (e *Editor[T]) Value(i int) T { return e.slots[i].current }

// Values returns a copy of the current component values.
func (e *Editor[T]) Values() []T {
	out := make([]T, len(e.slots))
	for i := range e.slots {
		out[i] = e.slots[i].current
	}
	return out
}

// Committed returns a copy of the committed snapshot.
func (e *Editor[T]) Committed() []T {
	out := make([]T, len(e.slots))
	for i := range e.slots {
		out[i] = e.slots[i].committed
	}
	return out
}

// Text returns the text of component i.
func (e *Editor[T]) Text(i int) string { return e.slots[i].text }

// HasError reports whether any component's text fails to parse.
func (e *Editor[T]) HasError() bool { return e.hasError }

// IsUniform reports whether the components are linked.
func (e *Editor[T]) IsUniform() bool { return e.uniform }

// Focused returns the focused component, or -1.
func (e *Editor[T]) Focused() int { return e.focused }

// Scrubbing reports whether a header drag is in progress.
func (e *Editor[T]) Scrubbing() bool { return e.scrub.Active() }

// SetValues replaces the value from the host side (inbound binding).
// No events are raised. The text of a focused component is left alone so
// typing is not disturbed.
func (e *Editor[T]) SetValues(values ...T) error {
	if len(values) != len(e.slots) {
		return fmt.Errorf("%w: got %d, editor has %d", ErrComponentCount, len(values), len(e.slots))
	}
	idle := !e.scrub.Active()
	for i, v := range values {
		v = e.clamp(v)
		sl := &e.slots[i]
		sl.current = v
		if i != e.focused {
			sl.text = e.s.Format(v)
			if idle {
				sl.committed = v
			}
		}
	}
	e.validate()
	return nil
}

// FocusGained snapshots the committed value of component i, or of the
// whole group when uniform.
func (e *Editor[T]) FocusGained(i int) {
	if e.disposed || !e.valid(i) {
		return
	}
	e.focused = i
	if e.hasError {
		return
	}
	e.snapshot(i)
}

// TextChanged records new text for component i and schedules a debounced
// reparse. Only the newest pending text is applied.
func (e *Editor[T]) TextChanged(i int, text string) {
	if e.disposed || !e.valid(i) {
		return
	}
	e.slots[i].text = text
	e.validate()
	e.debounce.schedule(func() { e.applyText(i) })
}

// applyText parses the live text of component i and applies it.
func (e *Editor[T]) applyText(i int) {
	if e.focused != i {
		return
	}
	v, ok := e.s.Parse(e.slots[i].text)
	e.validate()
	if !ok {
		return
	}
	Logger().Debug("vedit: text applied", "component", i, "text", e.slots[i].text)
	e.change(i, e.clamp(v), SourceText, i)
}

// FocusLost applies any pending text and confirms the edit if the value
// differs from the focus-time snapshot. Nothing is confirmed while the
// control has an error.
func (e *Editor[T]) FocusLost(i int) {
	if e.disposed || !e.valid(i) {
		return
	}
	if e.focused == i {
		e.debounce.cancel()
		e.applyText(i)
		e.focused = -1
	}
	if e.hasError {
		Logger().Debug("vedit: confirm suppressed by parse error", "component", i)
		return
	}
	e.confirm(i, SourceText)
	for k := range e.slots {
		e.slots[k].text = e.s.Format(e.slots[k].current)
	}
}

// Wheel steps the focused component. deltaY moves by the coarse step (the
// fine step with Shift held) and deltaX by the fine step; both may apply
// in one event. Wheel edits raise ValueChanging only; the next focus loss
// confirms them. It reports whether the event was consumed.
func (e *Editor[T]) Wheel(i int, deltaY, deltaX float64, mods Modifiers) bool {
	if e.disposed || !e.valid(i) || e.focused != i || e.hasError {
		return false
	}
	e.debounce.cancel()
	base, ok := e.s.Parse(e.slots[i].text)
	if !ok {
		return false
	}

	ystep := e.opts.coarse
	if mods.Has(ModShift) {
		ystep = e.opts.fine
	}
	steps := sign(deltaY)*ystep + sign(deltaX)*e.opts.fine
	if steps == 0 {
		return false
	}

	v := e.clamp(e.s.Increment(base, steps))
	e.change(i, v, SourceWheel, -1)
	return true
}

// PointerPressed starts a header scrub on component i. Presses on the
// text field, with a non-primary button, or while the control has an
// error are ignored.
func (e *Editor[T]) PointerPressed(i int, p Point, b Button, target Target) bool {
	if e.disposed || !e.valid(i) || e.hasError {
		return false
	}
	if target != TargetHeader || !e.scrub.Press(p, b, target) {
		return false
	}
	e.scrubComponent = i
	e.scrubStart = e.Values()
	e.snapshot(i)
	Logger().Debug("vedit: scrub start", "component", i, "editor", e)
	return true
}

// PointerMoved feeds a pointer move to the active scrub.
func (e *Editor[T]) PointerMoved(p Point) bool {
	r, ok := e.scrub.Move(p)
	if !ok {
		return false
	}
	e.applyScrub(r.Delta)
	return true
}

// PointerReleased ends the active scrub and confirms it.
func (e *Editor[T]) PointerReleased(p Point) bool {
	r, ok := e.scrub.Release(p)
	if !ok {
		return false
	}
	e.endScrub(r)
	return true
}

// CaptureLost ends the active scrub with the last computed value and
// confirms it, exactly like a release.
func (e *Editor[T]) CaptureLost() bool {
	r, ok := e.scrub.CaptureLost()
	if !ok {
		return false
	}
	Logger().Warn("vedit: pointer capture lost, committing last scrub value", "component", e.scrubComponent)
	e.endScrub(r)
	return true
}

func (e *Editor[T]) applyScrub(delta float64) {
	i := e.scrubComponent
	v := e.clamp(e.s.Increment(e.scrubStart[i], delta*e.opts.unitsPerPixel))
	e.change(i, v, SourceScrub, -1)
}

func (e *Editor[T]) endScrub(r ScrubResult) {
	e.applyScrub(r.Delta)
	Logger().Debug("vedit: scrub end", "component", e.scrubComponent, "delta", r.Delta, "interrupted", r.Interrupted)
	e.scrubStart = nil
	if e.hasError {
		return
	}
	e.confirm(e.scrubComponent, SourceScrub)
}

// SetUniform links or unlinks the components. Linking copies component 0
// to the others as one edit. It reports false if the editor is not
// uniform-capable.
func (e *Editor[T]) SetUniform(on bool) bool {
	if e.disposed || !e.opts.uniformCapable || len(e.slots) < 2 {
		return false
	}
	if on == e.uniform {
		return true
	}
	e.uniform = on
	if on {
		e.change(0, e.slots[0].current, SourceUniform, -1)
	}
	return true
}

// Dispose detaches the editor. Pending debounced text is dropped, and an
// active scrub is finalised as if capture were lost.
func (e *Editor[T]) Dispose() {
	if e.disposed {
		return
	}
	if e.scrub.Active() {
		e.CaptureLost()
	}
	e.disposed = true
	e.debounce.dispose()
	e.changing, e.confirmed = nil, nil
}

// change sets component i (or all components when uniform) to v and raises
// one ValueChanging if anything moved. keepText names a component whose
// text was typed by the user and must not be reformatted.
func (e *Editor[T]) change(i int, v T, src Source, keepText int) {
	old := e.Values()
	if !e.setAll(v, keepText, i) {
		return
	}
	e.emit(e.changing, ValueEvent[T]{New: e.Values(), Old: old, Component: i, Source: src})
}

// setAll writes v into component i, or every component when uniform. It
// reports whether any component changed. With i omitted every component
// is written regardless of the uniform flag.
func (e *Editor[T]) setAll(v T, keepText int, only ...int) bool {
	changed := false
	for k := range e.slots {
		if len(only) > 0 && !e.uniform && k != only[0] {
			continue
		}
		sl := &e.slots[k]
		if !e.s.Equal(sl.current, v) {
			sl.current = v
			changed = true
		}
		if k != keepText {
			sl.text = e.s.Format(sl.current)
		}
	}
	return changed
}

// confirm raises ValueConfirmed when the value differs from the committed
// snapshot, then advances the snapshot.
func (e *Editor[T]) confirm(i int, src Source) {
	differs := false
	for k := range e.slots {
		if !e.s.Equal(e.slots[k].current, e.slots[k].committed) {
			differs = true
			break
		}
	}
	if !differs {
		return
	}
	ev := ValueEvent[T]{New: e.Values(), Old: e.Committed(), Component: i, Source: src}
	for k := range e.slots {
		e.slots[k].committed = e.slots[k].current
	}
	e.emit(e.confirmed, ev)
}

// snapshot refreshes the committed value of i, or of all when uniform.
func (e *Editor[T]) snapshot(i int) {
	for k := range e.slots {
		if e.uniform || k == i {
			e.slots[k].committed = e.slots[k].current
		}
	}
}

// validate recomputes the control-wide error flag.
func (e *Editor[T]) validate() {
	e.hasError = false
	for k := range e.slots {
		if _, ok := e.s.Parse(e.slots[k].text); !ok {
			e.hasError = true
			return
		}
	}
}

func (e *Editor[T]) emit(handlers []func(ValueEvent[T]), ev ValueEvent[T]) {
	for _, fn := range handlers {
		fn(ValueEvent[T]{
			New:       append([]T(nil), ev.New...),
			Old:       append([]T(nil), ev.Old...),
			Component: ev.Component,
			Source:    ev.Source,
		})
	}
}

func (e *Editor[T]) clamp(v T) T {
	if !e.opts.hasRange {
		return v
	}
	return e.s.Clamp(v, e.opts.lo, e.opts.hi)
}

func (e *Editor[T]) valid(i int) bool { return i >= 0 && i < len(e.slots) }

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// LogValue renders the editor state for structured logging.
func (e *Editor[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("components", len(e.slots)),
		slog.Bool("uniform", e.uniform),
		slog.Bool("error", e.hasError),
		slog.Int("focused", e.focused),
		slog.String("state", e.scrub.State().String()),
	)
}
