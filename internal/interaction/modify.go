package interaction

import (
	"github.com/paulmach/orb"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/featedit/internal/events"
	"github.com/ja-he/featedit/internal/mapview"
	"github.com/ja-he/featedit/internal/model"
	"github.com/ja-he/featedit/internal/styling"
)

// Overlay holds the working features of a Modify interaction and notifies
// listeners whenever its contents change.
type Overlay struct {
	features []*model.Feature
	changes  events.Registry[int]
}

// FeatureCount returns the number of features in the overlay.
func (o *Overlay) FeatureCount() int {
	return len(o.features)
}

// Features returns the features in the overlay.
func (o *Overlay) Features() []*model.Feature {
	return o.features
}

// OnChange registers a listener called with the new feature count whenever
// the overlay changes.
func (o *Overlay) OnChange(fn func(count int)) events.Handle {
	return o.changes.On(fn)
}

func (o *Overlay) set(features ...*model.Feature) {
	if len(features) == 0 && len(o.features) == 0 {
		return
	}
	o.features = features
	o.changes.Emit(len(o.features))
}

// vertexTarget is a vertex of a feature.
type vertexTarget struct {
	feature *model.Feature
	index   int
}

// Modify lets the user drag the vertices of a set of features.
//
// While the pointer is within hit tolerance of a vertex of one of the
// features, the overlay holds a single point feature at that vertex; pressing
// there starts dragging the vertex.
type Modify struct {
	// Style is used to render the overlay.
	Style styling.Spec

	features *model.Collection
	overlay  Overlay

	hovered  *vertexTarget
	dragging *vertexTarget

	subscription events.Handle
}

// NewModify returns a pointer to a new modify interaction working on the
// features of the given collection.
func NewModify(features *model.Collection, style styling.Spec) *Modify {
	m := &Modify{
		Style:    style,
		features: features,
	}
	m.subscription = features.On(func(e model.CollectionEvent) {
		switch e.Type {
		case model.CollectionRemove, model.CollectionClear:
			if m.hovered != nil && !features.Contains(m.hovered.feature) {
				m.hovered, m.dragging = nil, nil
				m.overlay.set()
			}
		}
	})
	return m
}

// Overlay returns the overlay of this interaction.
func (m *Modify) Overlay() *Overlay {
	return &m.overlay
}

// Dispose stops listening to the feature collection.
func (m *Modify) Dispose() {
	m.subscription.Remove()
}

// HandleEvent handles the event and returns whether it should be passed on
// to the next interaction.
func (m *Modify) HandleEvent(e *mapview.BrowserEvent) bool {
	switch e.Type {
	case mapview.PointerMove:
		m.updateHovered(e)
		return true

	case mapview.PointerDown:
		m.updateHovered(e)
		if m.hovered == nil {
			return true
		}
		m.dragging = m.hovered
		log.Debug().Str("feature", m.dragging.feature.ID).Int("vertex", m.dragging.index).Msg("start dragging vertex")
		return false

	case mapview.PointerDrag:
		if m.dragging == nil {
			return true
		}
		f := m.dragging.feature
		f.Geometry = model.SetVertex(f.Geometry, m.dragging.index, e.Coordinate)
		m.overlay.set(m.vertexFeature(e.Coordinate))
		return false

	case mapview.PointerUp:
		if m.dragging == nil {
			return true
		}
		log.Debug().Str("feature", m.dragging.feature.ID).Int("vertex", m.dragging.index).Msg("stop dragging vertex")
		m.dragging = nil
		m.updateHovered(e)
		return false
	}
	return true
}

func (m *Modify) updateHovered(e *mapview.BrowserEvent) {
	var best *vertexTarget
	bestDist := e.Map.Tolerance()
	var bestPoint orb.Point
	for _, f := range m.features.Features() {
		if f.Geometry == nil {
			continue
		}
		i, d := model.NearestVertex(f.Geometry, e.Coordinate)
		if i >= 0 && d <= bestDist {
			best, bestDist = &vertexTarget{feature: f, index: i}, d
			bestPoint = model.Vertices(f.Geometry)[i]
		}
	}

	m.hovered = best
	if best == nil {
		m.overlay.set()
		return
	}
	m.overlay.set(m.vertexFeature(bestPoint))
}

func (m *Modify) vertexFeature(p orb.Point) *model.Feature {
	return &model.Feature{ID: "vertex", Geometry: p, Style: m.Style}
}
