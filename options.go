package vedit

import "time"

// Option configures an Editor during creation.
//
// Example:
//
//	ed := vedit.NewVector3Editor(vedit.NewNumberStrategy[float64](nil), 1, 1, 1,
//	    vedit.WithRange(0.0, 100.0),
//	    vedit.WithUniform[float64](true),
//	)
type Option[T any] func(*editorOptions[T])

// editorOptions holds optional configuration for Editor creation.
type editorOptions[T any] struct {
	lo, hi         T
	hasRange       bool
	uniformCapable bool
	uniform        bool
	dispatcher     Dispatcher
	debounce       time.Duration
	coarse, fine   float64
	unitsPerPixel  float64
	scrub          []ScrubOption
}

// defaultOptions returns the default editor options.
func defaultOptions[T any]() editorOptions[T] {
	return editorOptions[T]{
		dispatcher:    ImmediateDispatcher{},
		debounce:      DefaultDebounce,
		coarse:        CoarseStep,
		fine:          FineStep,
		unitsPerPixel: 1,
	}
}

// WithRange sets the clamp range. Without it values are never clamped.
func WithRange[T any](lo, hi T) Option[T] {
	return func(o *editorOptions[T]) {
		o.lo, o.hi = lo, hi
		o.hasRange = true
	}
}

// WithUniformCapable allows SetUniform to link the components.
func WithUniformCapable[T any](capable bool) Option[T] {
	return func(o *editorOptions[T]) {
		o.uniformCapable = capable
	}
}

// WithUniform makes the editor uniform-capable and starts it linked.
// Component 0 is propagated to the others at creation.
func WithUniform[T any](on bool) Option[T] {
	return func(o *editorOptions[T]) {
		o.uniform = on
		if on {
			o.uniformCapable = true
		}
	}
}

// WithDispatcher sets the UI task queue used to debounce text edits.
func WithDispatcher[T any](d Dispatcher) Option[T] {
	return func(o *editorOptions[T]) {
		if d != nil {
			o.dispatcher = d
		}
	}
}

// WithDebounce sets the text reparse delay.
func WithDebounce[T any](d time.Duration) Option[T] {
	return func(o *editorOptions[T]) {
		o.debounce = d
	}
}

// WithSteps sets the wheel step sizes. The fine step is used for
// horizontal wheel motion and for vertical motion with Shift held.
func WithSteps[T any](coarse, fine float64) Option[T] {
	return func(o *editorOptions[T]) {
		o.coarse, o.fine = coarse, fine
	}
}

// WithUnitsPerPixel sets how many value units one pixel of scrub moves.
// The default, 1, is whole-units mode.
func WithUnitsPerPixel[T any](u float64) Option[T] {
	return func(o *editorOptions[T]) {
		o.unitsPerPixel = u
	}
}

// WithScrub configures the header scrub controller.
func WithScrub[T any](opts ...ScrubOption) Option[T] {
	return func(o *editorOptions[T]) {
		o.scrub = append(o.scrub, opts...)
	}
}
