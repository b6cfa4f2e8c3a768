// Package control implements the generic parts of editing controls: their
// activation lifecycle and the editor that hosts them.
package control

import (
	"github.com/rs/zerolog/log"

	"github.com/ja-he/featedit/internal/events"
)

// Control is an editing tool that can be switched on and off.
type Control interface {
	Title() string
	Active() bool

	// Activate attaches the control to its map.
	Activate()
	// Deactivate detaches the control from its map. A silent deactivation does
	// not notify listeners.
	Deactivate(silent bool)
}

// Base implements the activation bookkeeping shared by all controls.
// Controls embed it and call its Activate and Deactivate at the end of their
// own.
type Base struct {
	title  string
	active bool

	changes events.Registry[bool]
}

// NewBase returns a Base for a control with the given title.
func NewBase(title string) Base {
	return Base{title: title}
}

// Title returns the title of the control.
func (b *Base) Title() string { return b.title }

// Active returns whether the control is active.
func (b *Base) Active() bool { return b.active }

// OnActiveChange registers a listener notified with the new state whenever the
// control is activated or (non-silently) deactivated.
func (b *Base) OnActiveChange(fn func(active bool)) events.Handle {
	return b.changes.On(fn)
}

// Activate marks the control active.
func (b *Base) Activate() {
	b.active = true
	log.Debug().Str("control", b.title).Msg("activated")
	b.changes.Emit(true)
}

// Deactivate marks the control inactive.
func (b *Base) Deactivate(silent bool) {
	b.active = false
	log.Debug().Str("control", b.title).Bool("silent", silent).Msg("deactivated")
	if !silent {
		b.changes.Emit(false)
	}
}
