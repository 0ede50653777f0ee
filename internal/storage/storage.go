// Package storage holds the key/value backends that persist visitor state:
// the theme preference, the testimonial collection and navigation state.
package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrUnavailable reports that a backend cannot currently be read or written.
var ErrUnavailable = errors.New("storage unavailable")

// Storage is a string key/value store scoped to a single visitor.
type Storage interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Memory is an in-process Storage. It is used by tests and as the fallback
// when no other backend is configured.
type Memory struct {
	mu         sync.RWMutex
	values     map[string]string
	failReads  bool
	failWrites bool
	writes     int
}

// NewMemory returns an empty Memory storage seeded with the optional values.
func NewMemory(seed map[string]string) *Memory {
	values := make(map[string]string, len(seed))
	for k, v := range seed {
		values[k] = v
	}
	return &Memory{values: values}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failReads {
		return "", false, ErrUnavailable
	}
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return ErrUnavailable
	}
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	m.writes++
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return ErrUnavailable
	}
	delete(m.values, key)
	m.writes++
	return nil
}

// FailReads makes subsequent reads return ErrUnavailable.
func (m *Memory) FailReads(fail bool) {
	m.mu.Lock()
	m.failReads = fail
	m.mu.Unlock()
}

// FailWrites makes subsequent writes return ErrUnavailable.
func (m *Memory) FailWrites(fail bool) {
	m.mu.Lock()
	m.failWrites = fail
	m.mu.Unlock()
}

// Writes reports how many successful writes the storage has accepted.
func (m *Memory) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

// Snapshot returns a copy of the stored values.
func (m *Memory) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}
