package testimonials

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	applog "folio/internal/log"
	"folio/internal/notify"
	"folio/internal/storage"
	"folio/internal/validation"
	"folio/models"
)

// Option customises a Store.
type Option func(*Store)

// WithClock overrides the time source used for creation dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides the identifier source. Identifiers must sort in
// creation order; the default is a UUIDv7.
func WithIDGenerator(next func() (string, error)) Option {
	return func(s *Store) {
		if next != nil {
			s.newID = next
		}
	}
}

// Store owns a visitor's testimonial collection.
type Store struct {
	mu        sync.RWMutex
	storage   storage.Storage
	items     []Testimonial
	now       func() time.Time
	newID     func() (string, error)
	listeners notify.Registry[[]Testimonial]
}

// NewStore builds a store over s and loads the persisted collection.
func NewStore(ctx context.Context, s storage.Storage, opts ...Option) *Store {
	store := &Store{
		storage: s,
		now:     time.Now,
		newID:   newUUIDv7,
	}
	for _, opt := range opts {
		opt(store)
	}
	store.Load(ctx)
	return store
}

func newUUIDv7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Load re-reads the persisted collection. Missing, unreadable or malformed
// data yields an empty collection.
func (s *Store) Load(ctx context.Context) []Testimonial {
	items := s.read(ctx)

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	return clone(items)
}

func (s *Store) read(ctx context.Context) []Testimonial {
	if s.storage == nil {
		return []Testimonial{}
	}
	raw, found, err := s.storage.Get(ctx, models.KeyTestimonials)
	if err != nil {
		applog.Warn(ctx, "testimonials unreadable, starting empty", "error", err)
		return []Testimonial{}
	}
	if !found {
		return []Testimonial{}
	}
	items, err := Decode(raw)
	if err != nil {
		applog.Warn(ctx, "persisted testimonials malformed, starting empty", "error", err)
		return []Testimonial{}
	}
	return items
}

// List returns a snapshot of the collection, newest first.
func (s *Store) List() []Testimonial {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.items)
}

// Len returns the number of stored testimonials.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Submit validates c, prepends the resulting testimonial, evicts beyond
// Capacity and persists the whole collection. It returns *ValidationError or
// *PersistenceError without changing the collection.
func (s *Store) Submit(ctx context.Context, c Candidate) (Testimonial, error) {
	c = c.normalized()
	problems, err := validation.Struct(c)
	if err != nil {
		return Testimonial{}, fmt.Errorf("validate testimonial: %w", err)
	}
	if problems != nil {
		return Testimonial{}, &ValidationError{Fields: problems}
	}

	id, err := s.newID()
	if err != nil {
		return Testimonial{}, fmt.Errorf("generate testimonial id: %w", err)
	}
	created := Testimonial{
		ID:     id,
		Name:   c.Name,
		Role:   c.Role,
		Review: c.Review,
		Rating: c.Rating,
		Date:   s.now().Format(DateLayout),
	}

	s.mu.Lock()
	next := prepend(s.items, created)
	if err := s.persist(ctx, next); err != nil {
		s.mu.Unlock()
		applog.Error(ctx, "failed to persist testimonials", "error", err)
		return Testimonial{}, &PersistenceError{Testimonial: created, Err: err}
	}
	s.items = next
	snapshot := clone(next)
	s.mu.Unlock()

	applog.Debug(ctx, "testimonial stored", "id", created.ID, "count", len(snapshot))
	s.listeners.Publish(snapshot)
	return created, nil
}

// Adopt inserts t in memory only, with the same ordering and eviction as
// Submit. It is the fallback after a PersistenceError.
func (s *Store) Adopt(t Testimonial) []Testimonial {
	s.mu.Lock()
	s.items = prepend(s.items, t)
	snapshot := clone(s.items)
	s.mu.Unlock()

	s.listeners.Publish(snapshot)
	return snapshot
}

// Subscribe registers fn for collection changes.
func (s *Store) Subscribe(fn func([]Testimonial)) func() {
	return s.listeners.Subscribe(fn)
}

func (s *Store) persist(ctx context.Context, items []Testimonial) error {
	if s.storage == nil {
		return errors.New("no storage configured")
	}
	encoded, err := Encode(items)
	if err != nil {
		return err
	}
	return s.storage.Set(ctx, models.KeyTestimonials, encoded)
}

func prepend(items []Testimonial, t Testimonial) []Testimonial {
	next := make([]Testimonial, 0, Capacity)
	next = append(next, t)
	for _, item := range items {
		if len(next) == Capacity {
			break
		}
		next = append(next, item)
	}
	return next
}

func clone(items []Testimonial) []Testimonial {
	out := make([]Testimonial, len(items))
	copy(out, items)
	return out
}
