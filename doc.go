// Package vedit provides the interaction logic behind numeric property
// editors: text fields with locale-aware parsing, mouse-wheel stepping,
// drag-to-scrub headers, multi-component vectors with an optional uniform
// mode, and a duration handle for keyframes.
//
// # Overview
//
// vedit holds state and emits events; it draws nothing. A host toolkit
// forwards focus, text, wheel and pointer input to an Editor and listens
// for two kinds of events:
//
//   - ValueChanging, raised on every live edit (typing, wheel, scrub move)
//   - ValueConfirmed, raised once per gesture with the value before it
//     started, suitable for recording an undo step
//
// # Quick Start
//
//	import "github.com/gogpu/vedit"
//
//	ed := vedit.NewVector3Editor(vedit.NewNumberStrategy[float64](nil), 1, 1, 1,
//		vedit.WithUniform[float64](true))
//
//	ed.OnValueConfirmed(func(ev vedit.ValueEvent[float64]) {
//		history.Record(ev.Old, ev.New)
//	})
//
//	// Host input
//	ed.PointerPressed(0, pt, vedit.ButtonPrimary, vedit.TargetHeader)
//	ed.PointerMoved(pt.Add(vedit.Pt(10, 0)))
//	ed.PointerReleased(pt.Add(vedit.Pt(10, 0))) // (11, 11, 11), one confirm
//
// # Value types
//
// An Editor is generic over its component type and takes a Strategy for
// parsing, formatting, clamping and stepping. NumberStrategy covers Go's
// signed integer and float types; PercentageStrategy and RationalStrategy
// cover fractions shown as percent and frame rates such as 30000/1001.
//
// # Threading
//
// Editors belong to one UI goroutine. The only deferred work is the text
// debounce, which runs through a host-supplied Dispatcher.
//
// # Gradients
//
// The gradient sub-package edits gradient stops: a sorted stop collection,
// a slider that inserts, drags and deletes stops, and a color picker
// session. Colors between stops are interpolated in linear light.
package vedit

// Version is the library version.
const Version = "0.1.0-alpha.1"
