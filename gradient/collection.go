package gradient

import (
	"slices"
	"sort"

	"github.com/gogpu/vedit"
)

// MinStops is the fewest stops a gradient keeps. Deletions that would go
// below it are refused.
const MinStops = 2

// Stop is a color at an offset in [0, 1]. Stops are handled by pointer so
// their identity survives reordering.
type Stop struct {
	Offset float64
	Color  vedit.RGBA
}

// Snapshot is a stop's state at a point in time, kept for undo.
type Snapshot struct {
	Offset float64
	Color  vedit.RGBA
}

func (s *Stop) snapshot() Snapshot { return Snapshot{Offset: s.Offset, Color: s.Color} }

// ChangeKind is the kind of a Collection change.
type ChangeKind int

const (
	ChangeAdded ChangeKind = iota
	ChangeRemoved
	ChangeMoved
	ChangeReset
)

// Change describes one Collection mutation. For ChangeReset the indices
// are -1 and Stop is nil.
type Change struct {
	Kind     ChangeKind
	Stop     *Stop
	OldIndex int
	NewIndex int
}

// Collection holds gradient stops in two orders: the canonical list,
// always sorted ascending by offset, and the presentation list in
// insertion order, which UI elements are bound to so they are not
// recreated on every sort.
type Collection struct {
	sorted       []*Stop
	presentation []*Stop

	subs    map[int]func(Change)
	nextSub int
}

// NewCollection creates a collection from stops. Offsets are clamped to
// [0, 1]; ties keep their argument order.
func NewCollection(stops ...Stop) *Collection {
	c := &Collection{}
	for _, s := range stops {
		st := &Stop{Offset: clamp01(s.Offset), Color: s.Color}
		c.sorted = append(c.sorted, st)
		c.presentation = append(c.presentation, st)
	}
	c.sort()
	return c
}

// Len returns the number of stops.
func (c *Collection) Len() int { return len(c.sorted) }

// At returns the stop at canonical index i.
func (c *Collection) At(i int) *Stop { return c.sorted[i] }

// Stops returns the canonical, offset-sorted stops.
func (c *Collection) Stops() []*Stop { return slices.Clone(c.sorted) }

// Presentation returns the stops in insertion order.
func (c *Collection) Presentation() []*Stop { return slices.Clone(c.presentation) }

// IndexOf returns the canonical index of s, or -1.
func (c *Collection) IndexOf(s *Stop) int { return slices.Index(c.sorted, s) }

// Add inserts a new stop at its sorted position, after any stops with the
// same offset, and returns its index.
func (c *Collection) Add(offset float64, color vedit.RGBA) int {
	offset = clamp01(offset)
	idx := sort.Search(len(c.sorted), func(i int) bool {
		return c.sorted[i].Offset > offset
	})
	return c.Insert(idx, &Stop{Offset: offset, Color: color})
}

// Insert places s at index and returns the index it ends up at; if index
// would break the offset order the list is re-sorted.
func (c *Collection) Insert(index int, s *Stop) int {
	if s == nil || c.IndexOf(s) >= 0 {
		return -1
	}
	index = min(max(index, 0), len(c.sorted))
	c.sorted = slices.Insert(c.sorted, index, s)
	c.presentation = append(c.presentation, s)
	c.sort()
	idx := c.IndexOf(s)
	c.notify(Change{Kind: ChangeAdded, Stop: s, OldIndex: -1, NewIndex: idx})
	return idx
}

// Remove deletes the stop at index. It is refused, returning false, when
// the collection has MinStops or fewer stops.
func (c *Collection) Remove(index int) bool {
	if index < 0 || index >= len(c.sorted) {
		return false
	}
	if len(c.sorted) <= MinStops {
		vedit.Logger().Warn("gradient: refusing to delete below minimum stop count", "count", len(c.sorted))
		return false
	}
	s := c.sorted[index]
	c.sorted = slices.Delete(c.sorted, index, index+1)
	if p := slices.Index(c.presentation, s); p >= 0 {
		c.presentation = slices.Delete(c.presentation, p, p+1)
	}
	c.notify(Change{Kind: ChangeRemoved, Stop: s, OldIndex: index, NewIndex: -1})
	return true
}

// Move relocates the stop at from to to. The canonical list is re-sorted
// afterwards, so a move only sticks where offsets tie; callers normally
// update the offset first and use Move to follow it.
func (c *Collection) Move(from, to int) {
	n := len(c.sorted)
	if from < 0 || from >= n {
		return
	}
	to = min(max(to, 0), n-1)
	s := c.sorted[from]
	c.sorted = slices.Delete(c.sorted, from, from+1)
	c.sorted = slices.Insert(c.sorted, to, s)
	c.sort()
	if idx := c.IndexOf(s); idx != from {
		c.notify(Change{Kind: ChangeMoved, Stop: s, OldIndex: from, NewIndex: idx})
	}
}

// Resort restores the offset order after stops were edited in place.
// It reports whether the order changed.
func (c *Collection) Resort() bool {
	before := slices.Clone(c.sorted)
	c.sort()
	if slices.Equal(before, c.sorted) {
		return false
	}
	c.notify(Change{Kind: ChangeReset, OldIndex: -1, NewIndex: -1})
	return true
}

// ColorAt returns the interpolated color at offset.
func (c *Collection) ColorAt(offset float64) vedit.RGBA {
	col, _ := colorAt(c.sorted, clamp01(offset))
	return col
}

// Subscribe registers fn for change notifications and returns a function
// that unregisters it.
func (c *Collection) Subscribe(fn func(Change)) (cancel func()) {
	if c.subs == nil {
		c.subs = make(map[int]func(Change))
	}
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	return func() { delete(c.subs, id) }
}

// Apply performs the mutation a Slider event asks for. It reports whether
// the collection accepted it.
func (c *Collection) Apply(ev Event) bool {
	switch ev.Kind {
	case EventAdded:
		return c.Insert(ev.NewIndex, ev.Stop) >= 0
	case EventDeleted:
		return c.Remove(c.IndexOf(ev.Stop))
	case EventConfirmed:
		from := c.IndexOf(ev.Stop)
		if from < 0 {
			return false
		}
		c.Move(from, ev.NewIndex)
		return true
	case EventChanged, EventColorChanging, EventColorConfirmed:
		// The stop was edited in place.
		return c.IndexOf(ev.Stop) >= 0
	}
	return false
}

func (c *Collection) sort() {
	sort.SliceStable(c.sorted, func(i, j int) bool {
		return c.sorted[i].Offset < c.sorted[j].Offset
	})
}

func (c *Collection) notify(ch Change) {
	ids := make([]int, 0, len(c.subs))
	for id := range c.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := c.subs[id]; ok {
			fn(ch)
		}
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
