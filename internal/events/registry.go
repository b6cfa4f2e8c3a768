// Package events provides listener registries with removable handles, used by
// the map, its interactions and the controls to notify each other.
package events

// Handle allows removing a registered listener.
// The zero Handle is valid and removing it does nothing.
type Handle struct {
	id     uint32
	remove func(id uint32)
}

// Remove unregisters the listener so it no longer fires.
// Removing a handle more than once is harmless.
func (h Handle) Remove() {
	if h.remove == nil {
		return
	}
	h.remove(h.id)
}

type listener[T any] struct {
	id uint32
	fn func(T)
}

// Registry holds listeners for events of type T and calls them in the order
// of registration.
type Registry[T any] struct {
	listeners []listener[T]
	nextID    uint32
}

// On registers fn and returns a handle by which it can be removed again.
func (r *Registry[T]) On(fn func(T)) Handle {
	r.nextID++
	r.listeners = append(r.listeners, listener[T]{id: r.nextID, fn: fn})
	return Handle{id: r.nextID, remove: r.remove}
}

// Emit calls every registered listener with e.
// Listeners removed or added while emitting take effect on the next Emit.
func (r *Registry[T]) Emit(e T) {
	current := make([]listener[T], len(r.listeners))
	copy(current, r.listeners)
	for _, l := range current {
		l.fn(e)
	}
}

// Len returns the number of registered listeners.
func (r *Registry[T]) Len() int {
	return len(r.listeners)
}

func (r *Registry[T]) remove(id uint32) {
	for i := range r.listeners {
		if r.listeners[i].id == id {
			copy(r.listeners[i:], r.listeners[i+1:])
			r.listeners[len(r.listeners)-1] = listener[T]{}
			r.listeners = r.listeners[:len(r.listeners)-1]
			return
		}
	}
}
