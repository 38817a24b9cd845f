package gradient

import (
	"fmt"

	"github.com/gogpu/vedit"
)

// Picker is a color editing session for one stop. A slider owns at most
// one picker; opening another closes the previous one first.
type Picker struct {
	slider  *Slider
	stop    *Stop
	before  Snapshot
	changed bool
	closed  bool
}

// OpenPicker starts a color session on the selected stop and returns it,
// or nil when nothing is selected. An open picker is committed and closed
// first.
func (s *Slider) OpenPicker() *Picker {
	if s.closed || s.selected == nil {
		return nil
	}
	if s.picker != nil {
		s.picker.Close()
	}
	s.picker = &Picker{slider: s, stop: s.selected, before: s.selected.snapshot()}
	return s.picker
}

// Picker returns the open picker, or nil.
func (s *Slider) Picker() *Picker { return s.picker }

// Stop returns the stop being edited.
func (p *Picker) Stop() *Stop { return p.stop }

// Color returns the stop's current color.
func (p *Picker) Color() vedit.RGBA { return p.stop.Color }

// Open reports whether the session is still live.
func (p *Picker) Open() bool { return !p.closed }

// Preview writes c onto the stop and emits EventColorChanging.
func (p *Picker) Preview(c vedit.RGBA) {
	if p.closed {
		return
	}
	p.stop.Color = c
	p.changed = true
	p.slider.emit(Event{
		Kind:     EventColorChanging,
		Stop:     p.stop,
		OldIndex: p.index(),
		NewIndex: p.index(),
		Before:   p.before,
	})
}

// SetHex parses a #RRGGBB or #RRGGBBAA string and previews it.
func (p *Picker) SetHex(text string) error {
	c, err := vedit.ParseHex(text)
	if err != nil {
		return fmt.Errorf("gradient: picker: %w", err)
	}
	p.Preview(c)
	return nil
}

// Commit emits EventColorConfirmed if the color changed since the session
// opened, then starts a new baseline from the current color.
func (p *Picker) Commit() bool {
	if p.closed || !p.changed || p.stop.Color == p.before.Color {
		p.changed = false
		return false
	}
	p.slider.emit(Event{
		Kind:     EventColorConfirmed,
		Stop:     p.stop,
		OldIndex: p.index(),
		NewIndex: p.index(),
		Before:   p.before,
	})
	p.before = p.stop.snapshot()
	p.changed = false
	return true
}

// Close commits any pending change and ends the session.
func (p *Picker) Close() {
	if p.closed {
		return
	}
	p.Commit()
	p.closed = true
	if p.slider.picker == p {
		p.slider.picker = nil
	}
}

func (p *Picker) index() int {
	for i, st := range p.slider.order {
		if st == p.stop {
			return i
		}
	}
	return -1
}
