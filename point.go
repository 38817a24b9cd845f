package vedit

// Point represents a pointer position in device-independent pixels.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Axis selects the component of a Point a scrub gesture follows.
type Axis int

const (
	// AxisHorizontal follows X. This is the default.
	AxisHorizontal Axis = iota
	// AxisVertical follows Y, with upward motion treated as positive.
	AxisVertical
)

// Along returns the signed coordinate of p on the axis.
func (a Axis) Along(p Point) float64 {
	if a == AxisVertical {
		return -p.Y
	}
	return p.X
}

// With returns p with its coordinate on the axis replaced by v.
func (a Axis) With(p Point, v float64) Point {
	if a == AxisVertical {
		p.Y = -v
		return p
	}
	p.X = v
	return p
}

// Rect is an axis-aligned rectangle, used for the screen bounds that
// pointer lock re-centres within.
type Rect struct {
	Min, Max Point
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}
