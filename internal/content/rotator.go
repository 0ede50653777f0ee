package content

import (
	"context"
	"sync"
	"time"
)

// Rotator cycles through the hero descriptions.
type Rotator struct {
	mu     sync.Mutex
	items  []string
	index  int
	period time.Duration
}

// NewRotator returns a rotator over items. A non-positive period uses
// DefaultRotation.
func NewRotator(items []string, period time.Duration) *Rotator {
	if period <= 0 {
		period = DefaultRotation
	}
	return &Rotator{items: append([]string(nil), items...), period: period}
}

// Period is the time between two rotations.
func (r *Rotator) Period() time.Duration {
	return r.period
}

// Current returns the description on screen, or "" when there are none.
func (r *Rotator) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return ""
	}
	return r.items[r.index]
}

// Index returns the position of Current.
func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

// Next advances to the following description, wrapping at the end.
func (r *Rotator) Next() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return ""
	}
	r.index = (r.index + 1) % len(r.items)
	return r.items[r.index]
}

// Start advances the rotator every period and calls onTick with the new
// description until ctx is done. The returned channel is closed once the
// ticker has stopped.
func (r *Rotator) Start(ctx context.Context, onTick func(string)) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(r.period)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				next := r.Next()
				if onTick != nil {
					onTick(next)
				}
			}
		}
	}()
	return done
}
