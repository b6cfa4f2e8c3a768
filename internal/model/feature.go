package model

import (
	"github.com/paulmach/orb"

	"github.com/ja-he/featedit/internal/styling"
)

// Feature is an editable geometric object with an optional style of its own.
type Feature struct {
	ID         string
	Geometry   orb.Geometry
	Style      styling.Spec
	Properties map[string]any
}

// FeatureID returns the ID of the feature.
func (f *Feature) FeatureID() string { return f.ID }

// Property returns the property for the given key, if present.
func (f *Feature) Property(key string) (any, bool) {
	v, ok := f.Properties[key]
	return v, ok
}

// HasOwnStyle returns whether the feature carries a style of its own (as
// opposed to being rendered in the style of its layer).
func (f *Feature) HasOwnStyle() bool {
	return !f.Style.IsNone()
}

// SetStyle replaces the feature's style with the given entries.
func (f *Feature) SetStyle(entries []styling.Entry) {
	f.Style = styling.List(entries...)
}

// Translate moves the feature's geometry by the given offsets.
// A zero offset leaves the geometry untouched.
func (f *Feature) Translate(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	f.Geometry = Translate(f.Geometry, dx, dy)
}

// Extent returns the bounding box of the feature's geometry.
func (f *Feature) Extent() orb.Bound {
	if f.Geometry == nil {
		return orb.Bound{}
	}
	return f.Geometry.Bound()
}

// IsPoint returns whether the feature's geometry is a single point.
func (f *Feature) IsPoint() bool {
	_, ok := f.Geometry.(orb.Point)
	return ok
}

// GeometryType returns the GeoJSON type name of the feature's geometry, or ""
// if it has none.
func (f *Feature) GeometryType() string {
	if f.Geometry == nil {
		return ""
	}
	return f.Geometry.GeoJSONType()
}
