package tracker

import (
	"errors"
	"sync"
	"time"

	"folio/internal/notify"
)

// ErrNoRegions is returned by New when there is nothing to track.
var ErrNoRegions = errors.New("tracker: no regions configured")

// ScrollSource delivers scroll notifications. OnScroll returns the function
// that deregisters the listener.
type ScrollSource interface {
	OnScroll(fn func()) (remove func())
}

// Option customises a Tracker.
type Option func(*Tracker)

// WithReferenceLine overrides DefaultReferenceLine.
func WithReferenceLine(line float64) Option {
	return func(t *Tracker) {
		t.line = line
	}
}

// WithInitial sets the active section reported before the first measurement.
func WithInitial(id SectionID) Option {
	return func(t *Tracker) {
		t.initial = id
	}
}

// WithDebounce coalesces scroll events arriving within d into one pass.
func WithDebounce(d time.Duration) Option {
	return func(t *Tracker) {
		t.debounce = d
	}
}

// Tracker keeps the active section up to date as scroll events arrive.
type Tracker struct {
	mu       sync.Mutex
	regions  []Region
	line     float64
	initial  SectionID
	active   SectionID
	measured bool
	closed   bool
	remove   func()
	debounce time.Duration
	pending  *time.Timer

	listeners notify.Registry[SectionID]
}

// New builds a tracker over regions in page order. Until the first
// measurement the active section is the first region (or WithInitial).
func New(regions []Region, opts ...Option) (*Tracker, error) {
	if len(regions) == 0 {
		return nil, ErrNoRegions
	}
	t := &Tracker{
		regions: append([]Region(nil), regions...),
		line:    DefaultReferenceLine,
		initial: regions[0].ID(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.active = t.initial
	return t, nil
}

// Mount starts listening to src and performs the initial measurement.
// Mounting again replaces the previous source.
func (t *Tracker) Mount(src ScrollSource) SectionID {
	t.mu.Lock()
	if t.closed {
		active := t.active
		t.mu.Unlock()
		return active
	}
	if t.remove != nil {
		t.remove()
		t.remove = nil
	}
	if src != nil {
		t.remove = src.OnScroll(t.handleScroll)
	}
	t.mu.Unlock()

	return t.Recompute()
}

func (t *Tracker) handleScroll() {
	if t.debounce <= 0 {
		t.Recompute()
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed || t.pending != nil {
		return
	}
	t.pending = time.AfterFunc(t.debounce, func() {
		t.mu.Lock()
		t.pending = nil
		t.mu.Unlock()
		t.Recompute()
	})
}

// Recompute runs one pass over the regions and returns the active section.
// After Close it leaves the state untouched.
func (t *Tracker) Recompute() SectionID {
	t.mu.Lock()
	if t.closed {
		active := t.active
		t.mu.Unlock()
		return active
	}
	previous := t.active
	next := Resolve(t.regions, t.line, previous)
	t.active = next
	t.measured = true
	t.mu.Unlock()

	if next != previous {
		t.listeners.Publish(next)
	}
	return next
}

// Active returns the current active section.
func (t *Tracker) Active() SectionID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Measured reports whether at least one pass has run.
func (t *Tracker) Measured() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.measured
}

// ReferenceLine returns the configured reference line.
func (t *Tracker) ReferenceLine() float64 {
	return t.line
}

// Subscribe registers fn for active section changes.
func (t *Tracker) Subscribe(fn func(SectionID)) func() {
	return t.listeners.Subscribe(fn)
}

// Close deregisters the scroll listener, cancels a pending debounced pass and
// drops subscribers. It is safe to call more than once.
func (t *Tracker) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	if t.remove != nil {
		t.remove()
		t.remove = nil
	}
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
	t.mu.Unlock()

	t.listeners.Clear()
}

// Events is a ScrollSource driven by explicit calls to Scroll. It stands in
// for a browser window in tests and replays reported scroll events.
type Events struct {
	listeners notify.Registry[struct{}]
}

// OnScroll implements ScrollSource.
func (e *Events) OnScroll(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	return e.listeners.Subscribe(func(struct{}) { fn() })
}

// Scroll delivers one scroll event to every listener.
func (e *Events) Scroll() {
	e.listeners.Publish(struct{}{})
}

// Listeners reports how many listeners are registered.
func (e *Events) Listeners() int {
	return e.listeners.Len()
}
