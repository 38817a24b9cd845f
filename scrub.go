package vedit

// Button identifies the pointer button of a press.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Target identifies the element under the pointer at press time.
type Target int

const (
	// TargetHeader is the numeric header label next to a text field.
	// Scrubs start only here.
	TargetHeader Target = iota
	// TargetTextField is the editable text itself. Presses here belong to
	// text selection and never start a scrub.
	TargetTextField
	// TargetHandle is a draggable handle such as a gradient stop or a
	// keyframe edge.
	TargetHandle
	// TargetBackground is empty control surface.
	TargetBackground
)

// Modifiers is the set of keyboard modifiers held during an input event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// Has reports whether all of m2 are held.
func (m Modifiers) Has(m2 Modifiers) bool { return m&m2 == m2 }

// CursorWarper moves the OS cursor. Hosts implement it on top of their
// windowing toolkit; a nil warper disables pointer lock.
type CursorWarper interface {
	WarpCursor(p Point)
}

// CursorWarperFunc adapts a function to CursorWarper.
type CursorWarperFunc func(p Point)

// WarpCursor calls f(p).
func (f CursorWarperFunc) WarpCursor(p Point) { f(p) }

// ScrubState is the state of a ScrubController.
type ScrubState int

const (
	ScrubIdle ScrubState = iota
	ScrubDragging
)

func (s ScrubState) String() string {
	if s == ScrubDragging {
		return "dragging"
	}
	return "idle"
}

// DefaultEdgeMargin is the distance from a screen edge, in pixels, at
// which pointer lock re-centres the cursor.
const DefaultEdgeMargin = 8

// ScrubSession is the state of one drag gesture.
type ScrubSession struct {
	Start  Point   // press position
	Anchor Point   // last position deltas are measured from
	Delta  float64 // accumulated displacement on the drag axis
	Moves  int     // pointer moves delivered so far
}

// ScrubResult is returned by the ScrubController transitions.
type ScrubResult struct {
	// Delta is the accumulated displacement since press, on the drag axis.
	Delta float64
	// Ended is true for the transition that finished the session.
	Ended bool
	// Interrupted is true when the session ended by capture loss.
	Interrupted bool
}

// ScrubOption configures a ScrubController.
type ScrubOption func(*ScrubController)

// WithAxis sets the drag axis. Default is AxisHorizontal.
func WithAxis(a Axis) ScrubOption {
	return func(c *ScrubController) { c.axis = a }
}

// WithPointerLock enables virtual pointer lock: when the pointer comes
// within margin pixels of bounds' edge on the drag axis, the cursor is
// warped to bounds' centre and the anchor follows, so the drag can run
// past the physical screen.
func WithPointerLock(bounds Rect, margin float64, w CursorWarper) ScrubOption {
	return func(c *ScrubController) {
		c.bounds = bounds
		c.margin = margin
		c.warper = w
	}
}

// ScrubController turns a pointer drag into a stream of deltas.
//
// The zero value is an idle controller on the horizontal axis without
// pointer lock.
type ScrubController struct {
	axis   Axis
	bounds Rect
	margin float64
	warper CursorWarper

	state   ScrubState
	session ScrubSession
}

// NewScrubController creates an idle controller.
func NewScrubController(opts ...ScrubOption) *ScrubController {
	c := &ScrubController{margin: DefaultEdgeMargin}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state.
func (c *ScrubController) State() ScrubState { return c.state }

// Active reports whether a session is in progress.
func (c *ScrubController) Active() bool { return c.state == ScrubDragging }

// Session returns the active session. The second result is false when idle.
func (c *ScrubController) Session() (ScrubSession, bool) {
	return c.session, c.state == ScrubDragging
}

// Press starts a session for a primary press on a header or handle.
// It reports false (and stays idle) for other buttons or targets, or
// when a session is already active.
func (c *ScrubController) Press(p Point, b Button, target Target) bool {
	if c.state == ScrubDragging || b != ButtonPrimary {
		return false
	}
	if target != TargetHeader && target != TargetHandle {
		return false
	}
	c.state = ScrubDragging
	c.session = ScrubSession{Start: p, Anchor: p}
	return true
}

// Move accumulates the displacement of p from the anchor.
func (c *ScrubController) Move(p Point) (ScrubResult, bool) {
	if c.state != ScrubDragging {
		return ScrubResult{}, false
	}
	c.accumulate(p)
	c.relock(p)
	return ScrubResult{Delta: c.session.Delta}, true
}

func (c *ScrubController) accumulate(p Point) {
	s := &c.session
	s.Delta += c.axis.Along(p) - c.axis.Along(s.Anchor)
	s.Anchor = p
	s.Moves++
}

// relock warps the cursor back to the lock point when p nears an edge.
func (c *ScrubController) relock(p Point) {
	if c.warper == nil || c.bounds.Empty() {
		return
	}
	lo, hi := c.axis.Along(c.bounds.Min), c.axis.Along(c.bounds.Max)
	if lo > hi {
		lo, hi = hi, lo
	}
	v := c.axis.Along(p)
	if v > lo+c.margin && v < hi-c.margin {
		return
	}
	lock := c.axis.With(p, c.axis.Along(c.bounds.Center()))
	c.warper.WarpCursor(lock)
	c.session.Anchor = lock
}

// Release ends the session, folding in the final position. The cursor is
// never warped on release since the button is already up.
func (c *ScrubController) Release(p Point) (ScrubResult, bool) {
	if c.state != ScrubDragging {
		return ScrubResult{}, false
	}
	if p != c.session.Anchor {
		c.accumulate(p)
	}
	return c.finish(false), true
}

// CaptureLost ends the session with the last known delta. Capture loss
// is a normal end of gesture, not an abort.
func (c *ScrubController) CaptureLost() (ScrubResult, bool) {
	if c.state != ScrubDragging {
		return ScrubResult{}, false
	}
	return c.finish(true), true
}

func (c *ScrubController) finish(interrupted bool) ScrubResult {
	r := ScrubResult{Delta: c.session.Delta, Ended: true, Interrupted: interrupted}
	c.state = ScrubIdle
	c.session = ScrubSession{}
	return r
}
