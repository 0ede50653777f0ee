package theme

import (
	"context"
	"sync"

	applog "folio/internal/log"
	"folio/internal/notify"
	"folio/internal/storage"
	"folio/models"
)

// Store holds the current preference, persists every change and notifies
// subscribers synchronously. A Store that fails to read or write its storage
// keeps working in memory and stops persisting.
type Store struct {
	mu         sync.RWMutex
	storage    storage.Storage
	current    Preference
	persistent bool
	listeners  notify.Registry[Preference]
}

// NewStore loads the persisted preference from s. A missing or unrecognised
// value yields Default; an unreadable storage also disables persistence.
func NewStore(ctx context.Context, s storage.Storage) *Store {
	store := &Store{storage: s, current: Default, persistent: s != nil}
	if s == nil {
		return store
	}

	raw, found, err := s.Get(ctx, models.KeyTheme)
	switch {
	case err != nil:
		applog.Warn(ctx, "theme preference unreadable, continuing in memory", "error", err)
		store.persistent = false
	case !found:
		applog.Debug(ctx, "no persisted theme preference, using default", "theme", Default)
	default:
		pref, ok := Parse(raw)
		if !ok {
			applog.Debug(ctx, "ignoring unrecognised theme preference", "value", raw)
		}
		store.current = pref
	}
	return store
}

// Get returns the current preference.
func (s *Store) Get() Preference {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Persistent reports whether changes are still being written to storage.
func (s *Store) Persistent() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persistent
}

// Toggle flips the preference, persists it, notifies subscribers and returns
// the new value. It always succeeds from the caller's point of view.
func (s *Store) Toggle(ctx context.Context) Preference {
	s.mu.Lock()
	next := s.current.Flip()
	s.apply(ctx, next)
	s.mu.Unlock()

	s.listeners.Publish(next)
	return next
}

// Set stores an explicit choice. Choosing the current value changes nothing.
func (s *Store) Set(ctx context.Context, p Preference) Preference {
	if _, ok := Parse(string(p)); !ok {
		p = Default
	}

	s.mu.Lock()
	if s.current == p {
		s.mu.Unlock()
		return p
	}
	s.apply(ctx, p)
	s.mu.Unlock()

	s.listeners.Publish(p)
	return p
}

// apply must be called with s.mu held.
func (s *Store) apply(ctx context.Context, p Preference) {
	s.current = p
	if !s.persistent {
		return
	}
	if err := s.storage.Set(ctx, models.KeyTheme, string(p)); err != nil {
		applog.Warn(ctx, "theme preference not persisted, continuing in memory", "theme", p, "error", err)
		s.persistent = false
	}
}

// Subscribe registers fn for every change. The returned function removes it
// and is safe to call more than once.
func (s *Store) Subscribe(fn func(Preference)) func() {
	return s.listeners.Subscribe(fn)
}
