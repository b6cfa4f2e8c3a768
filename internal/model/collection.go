package model

import (
	"github.com/ja-he/featedit/internal/events"
)

// CollectionEventType enumerates the changes a Collection reports.
type CollectionEventType int

const (
	_ CollectionEventType = iota
	CollectionAdd
	CollectionRemove
	CollectionClear
)

// CollectionEvent describes a change of a Collection.
// Feature is nil for CollectionClear.
type CollectionEvent struct {
	Type    CollectionEventType
	Feature *Feature
}

// Collection is an ordered set of features which notifies listeners of
// changes.
type Collection struct {
	features  []*Feature
	listeners events.Registry[CollectionEvent]
}

// NewCollection returns a pointer to a new collection holding the given
// features.
func NewCollection(features ...*Feature) *Collection {
	c := &Collection{}
	c.features = append(c.features, features...)
	return c
}

// On registers a listener for changes to this collection.
func (c *Collection) On(fn func(CollectionEvent)) events.Handle {
	return c.listeners.On(fn)
}

// Len returns the number of features in the collection.
func (c *Collection) Len() int { return len(c.features) }

// Features returns a copy of the features in the collection.
func (c *Collection) Features() []*Feature {
	result := make([]*Feature, len(c.features))
	copy(result, c.features)
	return result
}

// Contains returns whether f is part of the collection.
func (c *Collection) Contains(f *Feature) bool {
	return c.indexOf(f) >= 0
}

// Add appends f to the collection, unless it is already present.
func (c *Collection) Add(f *Feature) {
	if f == nil || c.Contains(f) {
		return
	}
	c.features = append(c.features, f)
	c.listeners.Emit(CollectionEvent{Type: CollectionAdd, Feature: f})
}

// Remove removes f from the collection and reports whether it was present.
func (c *Collection) Remove(f *Feature) bool {
	i := c.indexOf(f)
	if i < 0 {
		return false
	}
	c.features = append(c.features[:i], c.features[i+1:]...)
	c.listeners.Emit(CollectionEvent{Type: CollectionRemove, Feature: f})
	return true
}

// Clear removes all features.
// Listeners are notified once, and only if the collection was not empty.
func (c *Collection) Clear() {
	if len(c.features) == 0 {
		return
	}
	c.features = nil
	c.listeners.Emit(CollectionEvent{Type: CollectionClear})
}

func (c *Collection) indexOf(f *Feature) int {
	for i := range c.features {
		if c.features[i] == f {
			return i
		}
	}
	return -1
}
