// Package mapview implements the map the editing controls operate on: a
// planar view over feature layers, the viewport element and the dispatch of
// pointer and key events to interactions and listeners.
package mapview

import (
	"github.com/paulmach/orb"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/featedit/internal/events"
	"github.com/ja-he/featedit/internal/input"
	"github.com/ja-he/featedit/internal/model"
	"github.com/ja-he/featedit/internal/storage"
	"github.com/ja-he/featedit/internal/styling"
)

// BrowserEventType enumerates the pointer events the map dispatches.
type BrowserEventType int

const (
	_ BrowserEventType = iota
	PointerDown
	PointerDrag
	PointerUp
	PointerMove
	Click
)

// String returns the name of the event type.
func (t BrowserEventType) String() string {
	switch t {
	case PointerDown:
		return "pointerdown"
	case PointerDrag:
		return "pointerdrag"
	case PointerUp:
		return "pointerup"
	case PointerMove:
		return "pointermove"
	case Click:
		return "click"
	default:
		return "unknown"
	}
}

// BrowserEvent is a pointer event on the map.
type BrowserEvent struct {
	Type       BrowserEventType
	Pixel      Pixel
	Coordinate orb.Point
	Map        *Map
}

// Interaction handles browser events on a map.
type Interaction interface {
	// HandleEvent handles the event and returns whether it should be passed on
	// to the next interaction.
	HandleEvent(e *BrowserEvent) bool
}

// Layer is a source of features drawn in a common style.
type Layer struct {
	Source storage.FeatureSource
	// Style is used for features of the source that have no own style.
	Style styling.Spec
}

// TargetElement is the element the map is shown in.
type TargetElement struct {
	Cursor string
}

// Map holds the layers shown and dispatches events to its interactions and
// listeners.
type Map struct {
	View View

	// HitTolerance is the distance in cells within which a feature counts as
	// hit by the pointer.
	HitTolerance int
	// DragDeadZone is the distance in cells the pointer has to move while
	// pressed before the gesture counts as a drag.
	DragDeadZone int

	target       TargetElement
	layers       []*Layer
	interactions []Interaction

	clickListeners events.Registry[*BrowserEvent]
	keyListeners   events.Registry[input.Key]

	pointer pointerTracker
}

// New returns a pointer to a new map with the given view and hit tolerance.
func New(view View, hitTolerance int) *Map {
	return &Map{
		View:         view,
		HitTolerance: hitTolerance,
	}
}

// TargetElement returns the element the map is shown in.
func (m *Map) TargetElement() *TargetElement {
	return &m.target
}

// AddLayer adds a layer on top of the existing ones.
func (m *Map) AddLayer(l *Layer) {
	m.layers = append(m.layers, l)
}

// Layers returns the layers from bottom to top.
func (m *Map) Layers() []*Layer {
	return m.layers
}

// AddInteraction adds an interaction.
// Interactions added later get to handle events first.
func (m *Map) AddInteraction(i Interaction) {
	m.interactions = append(m.interactions, i)
}

// RemoveInteraction removes the interaction and returns whether it was
// present.
func (m *Map) RemoveInteraction(i Interaction) bool {
	for idx := range m.interactions {
		if m.interactions[idx] == i {
			m.interactions = append(m.interactions[:idx], m.interactions[idx+1:]...)
			return true
		}
	}
	return false
}

// Interactions returns the interactions in the order they were added.
func (m *Map) Interactions() []Interaction {
	return m.interactions
}

// OnClick registers a listener for clicks on the map.
func (m *Map) OnClick(fn func(*BrowserEvent)) events.Handle {
	return m.clickListeners.On(fn)
}

// OnKey registers a listener for key presses while the map has focus.
func (m *Map) OnKey(fn func(input.Key)) events.Handle {
	return m.keyListeners.On(fn)
}

// DispatchKey passes the key on to all key listeners.
func (m *Map) DispatchKey(k input.Key) {
	m.keyListeners.Emit(k)
}

// HandlePointer takes raw pointer state, i.e. whether the button is pressed
// and where the pointer is, and dispatches the resulting events.
func (m *Map) HandlePointer(pressed bool, p Pixel) {
	for _, t := range m.pointer.translate(pressed, p, m.DragDeadZone) {
		m.HandleBrowserEvent(&BrowserEvent{
			Type:       t,
			Pixel:      p,
			Coordinate: m.View.CoordinateFromPixel(p),
			Map:        m,
		})
	}
}

// HandleBrowserEvent passes the event to the interactions, most recently added
// first, until one of them stops it. Clicks are passed to the click listeners
// afterwards in any case.
func (m *Map) HandleBrowserEvent(e *BrowserEvent) {
	if e.Map == nil {
		e.Map = m
	}
	log.Trace().Str("type", e.Type.String()).Str("pixel", e.Pixel.String()).Msg("map browser event")

	current := make([]Interaction, len(m.interactions))
	copy(current, m.interactions)
	for i := len(current) - 1; i >= 0; i-- {
		if !current[i].HandleEvent(e) {
			break
		}
	}

	if e.Type == Click {
		m.clickListeners.Emit(e)
	}
}

// Tolerance returns the hit tolerance in map units.
func (m *Map) Tolerance() float64 {
	return float64(m.HitTolerance) * m.View.Resolution
}

// ForEachFeatureAtPixel calls fn for the features at the given pixel, topmost
// first, and returns the first feature for which fn returns true.
// Returns nil if there is no such feature.
func (m *Map) ForEachFeatureAtPixel(p Pixel, fn func(f *model.Feature) bool) *model.Feature {
	coordinate := m.View.CoordinateFromPixel(p)
	tolerance := m.Tolerance()
	for l := len(m.layers) - 1; l >= 0; l-- {
		features := m.layers[l].Source.Features()
		for i := len(features) - 1; i >= 0; i-- {
			f := features[i]
			if f.Geometry == nil || !model.Hits(f.Geometry, coordinate, tolerance) {
				continue
			}
			if fn(f) {
				return f
			}
		}
	}
	return nil
}
