// Package modify implements the control for modifying features: selecting
// them by click, dragging their vertices, moving them as a whole and deleting
// them.
package modify

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/ja-he/featedit/internal/control"
	"github.com/ja-he/featedit/internal/control/action"
	"github.com/ja-he/featedit/internal/events"
	"github.com/ja-he/featedit/internal/input"
	"github.com/ja-he/featedit/internal/interaction"
	"github.com/ja-he/featedit/internal/mapview"
	"github.com/ja-he/featedit/internal/model"
	"github.com/ja-he/featedit/internal/storage"
	"github.com/ja-he/featedit/internal/styling"
)

// Map is what the control needs of the map it is attached to.
type Map interface {
	TargetElement() *mapview.TargetElement

	AddInteraction(mapview.Interaction)
	RemoveInteraction(mapview.Interaction) bool

	ForEachFeatureAtPixel(p mapview.Pixel, fn func(f *model.Feature) bool) *model.Feature

	OnClick(fn func(*mapview.BrowserEvent)) events.Handle
	OnKey(fn func(input.Key)) events.Handle
}

// EditSession is notified of the feature being edited, nil meaning none.
type EditSession interface {
	SetEditFeature(f *model.Feature)
}

// Options configure a modify control.
type Options struct {
	Map    Map
	Source storage.FeatureSource
	Editor EditSession

	// GeometryType restricts editing to features of this GeoJSON geometry type;
	// empty allows all.
	GeometryType string

	// Style is overlaid onto the style of the selected feature.
	Style styling.Spec
	// ModifyStyle is used to render the vertex being edited.
	ModifyStyle styling.Spec

	// DeleteKey is the key sequence deleting the edited feature; defaults to
	// "<del>".
	DeleteKey input.Keyspec
}

// state is everything the control's handlers read and write.
type state struct {
	// feature is the feature being edited.
	feature *model.Feature
	// styled is the feature currently carrying the select style on top of its
	// own.
	styled *model.Feature

	vertexEditActive bool

	// coordinate is the reference for the next move delta; non-nil while
	// moving.
	coordinate *orb.Point

	// previousCursor is the cursor to restore once no feature is edited.
	previousCursor *string
}

// Control is the control for modifying features.
type Control struct {
	control.Base

	m            Map
	source       storage.FeatureSource
	editor       EditSession
	geometryType string
	selectStyle  styling.Spec

	selectInteraction *interaction.Select
	modifyInteraction *interaction.Modify
	moveInteraction   *interaction.Pointer
	keys              *input.Tree

	state         state
	registrations []events.Handle
}

// New returns a pointer to a new, inactive modify control.
func New(opts Options) (*Control, error) {
	if opts.Map == nil || opts.Source == nil || opts.Editor == nil {
		return nil, fmt.Errorf("modify control needs a map, a source and an editor")
	}
	if opts.DeleteKey == "" {
		opts.DeleteKey = "<del>"
	}

	c := &Control{
		Base:         control.NewBase("Modify geometry"),
		m:            opts.Map,
		source:       opts.Source,
		editor:       opts.Editor,
		geometryType: opts.GeometryType,
		selectStyle:  opts.Style,
	}

	keys, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
		opts.DeleteKey: action.New("delete the edited feature", c.deleteFeature),
	})
	if err != nil {
		return nil, fmt.Errorf("invalid delete key: %w", err)
	}
	c.keys = keys

	c.selectInteraction = interaction.NewSelect(c.editable, opts.Style)
	c.modifyInteraction = interaction.NewModify(c.selectInteraction.Features(), opts.ModifyStyle)
	c.moveInteraction = &interaction.Pointer{
		HandleDown: c.startMoveFeature,
		HandleDrag: c.moveFeature,
		HandleUp:   c.stopMoveFeature,
		HandleMove: c.handlePointerMove,
	}

	c.selectInteraction.Features().On(c.handleSelectionChange)
	c.modifyInteraction.Overlay().OnChange(func(int) {
		c.updateVertexEditActive()
		c.updateCursor()
	})

	return c, nil
}

// Activate registers the control's interactions and listeners with the map.
func (c *Control) Activate() {
	if c.Active() {
		return
	}
	c.registrations = append(c.registrations,
		c.m.OnKey(func(k input.Key) { c.keys.ProcessInput(k) }),
		c.m.OnClick(func(e *mapview.BrowserEvent) { c.OnMapClick(e.Pixel) }),
	)
	c.m.AddInteraction(c.modifyInteraction)
	c.m.AddInteraction(c.moveInteraction)
	c.m.AddInteraction(c.selectInteraction)
	c.Base.Activate()
}

// Deactivate clears the selection and removes the control's interactions and
// listeners from the map, restoring the cursor.
// It is safe to call on an inactive control.
func (c *Control) Deactivate(silent bool) {
	c.selectInteraction.Features().Clear()
	if c.state.feature != nil {
		c.OnSelectionCleared()
	}

	for _, h := range c.registrations {
		h.Remove()
	}
	c.registrations = nil
	c.m.RemoveInteraction(c.modifyInteraction)
	c.m.RemoveInteraction(c.moveInteraction)
	c.m.RemoveInteraction(c.selectInteraction)
	c.moveInteraction.Cancel()
	c.state.coordinate = nil

	c.updateVertexEditActive()
	c.updateCursor()
	c.Base.Deactivate(silent)
}

// Dispose deactivates the control and stops its modify interaction from
// following the selection. The control must not be activated again.
func (c *Control) Dispose() {
	c.Deactivate(true)
	c.modifyInteraction.Dispose()
}

// Mode returns the current interaction mode.
func (c *Control) Mode() Mode {
	switch {
	case c.state.feature == nil:
		return ModeIdle
	case c.state.coordinate != nil:
		return ModeMoving
	case c.state.vertexEditActive:
		return ModeVertexEditing
	default:
		return ModeSelected
	}
}

// Feature returns the feature being edited, if any.
func (c *Control) Feature() *model.Feature {
	return c.state.feature
}

// Selection returns the collection of selected features.
func (c *Control) Selection() *model.Collection {
	return c.selectInteraction.Features()
}

// SelectStyle returns the style overlaid onto selected features.
func (c *Control) SelectStyle() styling.Spec {
	return c.selectStyle
}

// Overlay returns the vertex overlay of the control's modify interaction.
func (c *Control) Overlay() *interaction.Overlay {
	return c.modifyInteraction.Overlay()
}

// Help returns the key bindings of the control.
func (c *Control) Help() input.Help {
	return c.keys.GetHelp()
}

// editable returns whether f can be edited by this control.
func (c *Control) editable(f *model.Feature) bool {
	if !c.source.Contains(f) {
		return false
	}
	return c.geometryType == "" || f.GeometryType() == c.geometryType
}
