// Package gradient edits gradient color stops.
//
// A [Collection] holds the authoritative, offset-sorted stops. A [Slider]
// maps them onto a one-dimensional strip of draggable handles and turns
// pointer input into intents ([Event]) that the host applies with
// [Collection.Apply], typically after recording an undo step.
//
// Colors between stops are interpolated in linear light (see
// [Interpolate]), both when a stop is inserted and when the ramp is
// previewed with [RenderRamp], so a newly inserted stop always matches the
// ramp under the pointer.
package gradient
