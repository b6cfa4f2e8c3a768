package providers

import (
	"fmt"

	"github.com/ja-he/featedit/internal/model"
)

// MemorySource is a feature source held entirely in memory.
// It implements storage.FeatureSource.
type MemorySource struct {
	features *model.Collection
}

// NewMemorySource returns a pointer to a new memory source holding the given
// features.
func NewMemorySource(features ...*model.Feature) *MemorySource {
	return &MemorySource{features: model.NewCollection(features...)}
}

// Features returns the features of the source in drawing order.
func (s *MemorySource) Features() []*model.Feature {
	return s.features.Features()
}

// Contains returns whether f belongs to the source.
func (s *MemorySource) Contains(f *model.Feature) bool {
	return s.features.Contains(f)
}

// AddFeature adds f to the source.
func (s *MemorySource) AddFeature(f *model.Feature) {
	s.features.Add(f)
}

// RemoveFeature removes f from the source.
func (s *MemorySource) RemoveFeature(f *model.Feature) error {
	if !s.features.Remove(f) {
		return fmt.Errorf("feature '%s' is not part of the source", f.ID)
	}
	return nil
}
