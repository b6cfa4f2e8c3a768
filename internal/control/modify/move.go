package modify

import (
	"github.com/rs/zerolog/log"

	"github.com/ja-he/featedit/internal/mapview"
)

// updateVertexEditActive recomputes whether vertex editing is going on, which
// is the case whenever the modify overlay holds features.
func (c *Control) updateVertexEditActive() {
	active := c.modifyInteraction.Overlay().FeatureCount() > 0
	if active != c.state.vertexEditActive {
		log.Trace().Bool("active", active).Msg("vertex editing changed")
	}
	c.state.vertexEditActive = active
}

// startMoveFeature starts moving the edited feature, unless there is none or
// its vertices are being edited.
func (c *Control) startMoveFeature(e *mapview.BrowserEvent) bool {
	f := c.state.feature
	if f == nil || c.state.vertexEditActive {
		return false
	}
	if f.IsPoint() {
		center := f.Extent().Center()
		c.state.coordinate = &center
	} else {
		coordinate := e.Coordinate
		c.state.coordinate = &coordinate
	}
	log.Debug().Str("feature", f.ID).Msg("start moving feature")
	c.updateCursor()
	return true
}

// moveFeature moves the edited feature by the pointer's offset to the previous
// drag event.
func (c *Control) moveFeature(e *mapview.BrowserEvent) {
	if c.state.vertexEditActive || c.state.feature == nil || c.state.coordinate == nil {
		return
	}
	dx := e.Coordinate[0] - c.state.coordinate[0]
	dy := e.Coordinate[1] - c.state.coordinate[1]
	c.state.feature.Translate(dx, dy)

	coordinate := e.Coordinate
	c.state.coordinate = &coordinate
}

// stopMoveFeature ends moving; the gesture is never continued.
func (c *Control) stopMoveFeature(e *mapview.BrowserEvent) bool {
	if c.state.feature != nil && c.state.coordinate != nil {
		log.Debug().Str("feature", c.state.feature.ID).Msg("stop moving feature")
	}
	c.state.coordinate = nil
	c.updateCursor()
	return false
}

func (c *Control) handlePointerMove(e *mapview.BrowserEvent) {
	c.updateVertexEditActive()
	c.updateCursor()
}
