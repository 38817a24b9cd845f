package vedit

import "time"

// Dispatcher schedules work on the UI thread's task queue. Editors use it
// only to debounce text edits; all other input is handled synchronously.
type Dispatcher interface {
	// AfterFunc runs f on the UI thread once d has elapsed.
	AfterFunc(d time.Duration, f func())
}

// ImmediateDispatcher runs f inline, ignoring the delay. It is the default
// and suits hosts that debounce upstream, and tests.
type ImmediateDispatcher struct{}

// AfterFunc calls f.
func (ImmediateDispatcher) AfterFunc(_ time.Duration, f func()) { f() }

// DefaultDebounce is the delay before typed text is reparsed.
const DefaultDebounce = 30 * time.Millisecond

// debouncer collapses bursts of calls into the last one. A scheduled
// callback runs only if no newer call was made in the meantime and the
// owner has not been disposed.
type debouncer struct {
	d        Dispatcher
	delay    time.Duration
	seq      uint64
	disposed bool
}

func (b *debouncer) schedule(f func()) {
	b.seq++
	seq := b.seq
	b.d.AfterFunc(b.delay, func() {
		if b.disposed || seq != b.seq {
			return
		}
		f()
	})
}

// cancel drops any pending callback.
func (b *debouncer) cancel() { b.seq++ }

func (b *debouncer) dispose() { b.disposed = true }
