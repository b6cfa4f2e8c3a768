package modify

import (
	"github.com/rs/zerolog/log"

	"github.com/ja-he/featedit/internal/mapview"
	"github.com/ja-he/featedit/internal/model"
	"github.com/ja-he/featedit/internal/styling"
)

func (c *Control) handleSelectionChange(e model.CollectionEvent) {
	switch e.Type {
	case model.CollectionAdd:
		c.OnSelectionAdded(e.Feature)
	case model.CollectionClear:
		c.OnSelectionCleared()
	case model.CollectionRemove:
		if e.Feature == c.state.feature {
			c.OnSelectionCleared()
		}
	}
}

// OnSelectionAdded makes f the edited feature and overlays the select style
// onto its own style.
func (c *Control) OnSelectionAdded(f *model.Feature) {
	c.state.feature = f
	c.editor.SetEditFeature(f)
	c.updateVertexEditActive()
	c.applySelectStyle(f)
	c.updateCursor()
}

// OnSelectionCleared strips the select style off the edited feature and ends
// editing it.
func (c *Control) OnSelectionCleared() {
	c.stripSelectStyle()
	c.editor.SetEditFeature(nil)
	c.state.feature = nil
	c.state.coordinate = nil
	c.updateVertexEditActive()
	c.updateCursor()
}

// OnMapClick makes the feature of the control's source at the given pixel the
// edited feature, or ends editing if there is none.
func (c *Control) OnMapClick(p mapview.Pixel) {
	c.stripSelectStyle()

	hit := c.m.ForEachFeatureAtPixel(p, c.editable)
	c.state.feature = hit
	c.applySelectStyle(hit)

	c.editor.SetEditFeature(hit)
	c.updateVertexEditActive()
	c.updateCursor()
}

// applySelectStyle sets the style of f to its own styles followed by the
// select styles, provided it has an own style and is not styled already.
func (c *Control) applySelectStyle(f *model.Feature) {
	if f == nil || !f.HasOwnStyle() || c.selectStyle.IsNone() || c.state.styled == f {
		return
	}
	c.stripSelectStyle()

	own := styling.Normalize(f.Style, nil)
	sel := styling.Normalize(c.selectStyle, f)
	f.SetStyle(styling.Compose(own, sel))
	c.state.styled = f
	log.Trace().Str("feature", f.ID).Int("own", len(own)).Int("select", len(sel)).Msg("applied select style")
}

// stripSelectStyle reverts the style of the styled feature, if any, to its own
// styles.
func (c *Control) stripSelectStyle() {
	f := c.state.styled
	if f == nil {
		return
	}
	c.state.styled = nil

	merged := styling.Normalize(f.Style, nil)
	sel := styling.Normalize(c.selectStyle, f)
	own := styling.Decompose(merged, sel)
	if len(own) < len(merged)-len(sel) {
		log.Warn().Str("feature", f.ID).Int("before", len(merged)).Int("after", len(own)).Msg("stripping the select style also removed own styles equal to it")
	}
	f.SetStyle(own)
}
