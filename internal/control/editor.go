package control

import (
	"github.com/rs/zerolog/log"

	"github.com/ja-he/featedit/internal/events"
	"github.com/ja-he/featedit/internal/model"
)

// Editor hosts a set of controls, of which at most one is active at a time,
// and keeps track of the feature currently being edited.
type Editor struct {
	controls []Control

	editFeature   *model.Feature
	editListeners events.Registry[*model.Feature]
}

// NewEditor returns a pointer to a new editor without controls.
func NewEditor() *Editor {
	return &Editor{}
}

// AddControl adds a control to the editor.
func (e *Editor) AddControl(c Control) {
	e.controls = append(e.controls, c)
}

// ActiveControl returns the active control, or nil if none is active.
func (e *Editor) ActiveControl() Control {
	for _, c := range e.controls {
		if c.Active() {
			return c
		}
	}
	return nil
}

// Activate activates the given control after silently deactivating all other
// active ones.
func (e *Editor) Activate(c Control) {
	for _, other := range e.controls {
		if other != c && other.Active() {
			other.Deactivate(true)
		}
	}
	if !c.Active() {
		c.Activate()
	}
}

// Toggle deactivates the given control if it is active and activates it
// otherwise.
func (e *Editor) Toggle(c Control) {
	if c.Active() {
		c.Deactivate(false)
		return
	}
	e.Activate(c)
}

// DeactivateAll deactivates every active control.
func (e *Editor) DeactivateAll() {
	for _, c := range e.controls {
		if c.Active() {
			c.Deactivate(false)
		}
	}
}

// Disposer is implemented by controls holding subscriptions that outlive
// their deactivation.
type Disposer interface {
	Dispose()
}

// Dispose deactivates every control, disposes those that are Disposers and
// removes all controls from the editor.
func (e *Editor) Dispose() {
	e.DeactivateAll()
	for _, c := range e.controls {
		if d, ok := c.(Disposer); ok {
			d.Dispose()
		}
	}
	e.controls = nil
}

// SetEditFeature sets the feature currently being edited; nil means that no
// feature is being edited.
func (e *Editor) SetEditFeature(f *model.Feature) {
	if f == e.editFeature {
		return
	}
	e.editFeature = f
	if f != nil {
		log.Debug().Str("feature", f.ID).Msg("editing feature")
	} else {
		log.Debug().Msg("editing no feature")
	}
	e.editListeners.Emit(f)
}

// EditFeature returns the feature currently being edited, if any.
func (e *Editor) EditFeature() *model.Feature {
	return e.editFeature
}

// OnEditFeatureChange registers a listener for changes of the edited feature.
func (e *Editor) OnEditFeatureChange(fn func(f *model.Feature)) events.Handle {
	return e.editListeners.On(fn)
}
