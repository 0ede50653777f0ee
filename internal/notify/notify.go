// Package notify provides the change-listener registry shared by the stores.
package notify

import "sync"

// Registry keeps an ordered set of listeners for values of type T.
// The zero value is ready to use.
type Registry[T any] struct {
	mu        sync.Mutex
	nextID    uint64
	listeners []entry[T]
}

type entry[T any] struct {
	id uint64
	fn func(T)
}

// Subscribe registers fn and returns a function that removes it again.
// The returned function may be called any number of times.
func (r *Registry[T]) Subscribe(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}

	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.listeners = append(r.listeners, entry[T]{id: id, fn: fn})
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.remove(id)
		})
	}
}

func (r *Registry[T]) remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, l := range r.listeners {
		if l.id == id {
			r.listeners = append(r.listeners[:i:i], r.listeners[i+1:]...)
			return
		}
	}
}

// Publish invokes every listener synchronously, in subscription order.
// Listeners added or removed while publishing take effect on the next call.
func (r *Registry[T]) Publish(value T) {
	r.mu.Lock()
	snapshot := make([]entry[T], len(r.listeners))
	copy(snapshot, r.listeners)
	r.mu.Unlock()

	for _, l := range snapshot {
		l.fn(value)
	}
}

// Len reports the number of registered listeners.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.listeners)
}

// Clear drops every listener.
func (r *Registry[T]) Clear() {
	r.mu.Lock()
	r.listeners = nil
	r.mu.Unlock()
}
