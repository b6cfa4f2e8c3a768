package storage

import (
	"github.com/ja-he/featedit/internal/model"
)

// FeatureSource is the abstracted backing store of editable features, which
// can be implemented over various storage systems.
type FeatureSource interface {
	// Features returns the features of the source in drawing order.
	Features() []*model.Feature
	// Contains returns whether f belongs to the source.
	Contains(f *model.Feature) bool

	AddFeature(f *model.Feature)
	RemoveFeature(f *model.Feature) error
}
