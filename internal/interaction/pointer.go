// Package interaction implements the interactions the editing controls are
// built from: a generic pointer gesture handler, feature selection and vertex
// modification.
package interaction

import (
	"github.com/ja-he/featedit/internal/mapview"
)

// Pointer is a generic interaction for down/drag/up gestures and pointer
// moves.
//
// A gesture starts when HandleDown returns true; the pointer down is not passed
// on to other interactions then. Drags are passed to HandleDrag for as long as
// the gesture lasts, which is until HandleUp returns false.
type Pointer struct {
	HandleDown func(e *mapview.BrowserEvent) bool
	HandleDrag func(e *mapview.BrowserEvent)
	HandleUp   func(e *mapview.BrowserEvent) bool
	HandleMove func(e *mapview.BrowserEvent)

	handling bool
}

// HandleEvent handles the event and returns whether it should be passed on
// to the next interaction.
func (p *Pointer) HandleEvent(e *mapview.BrowserEvent) bool {
	switch e.Type {
	case mapview.PointerDown:
		if p.HandleDown != nil && p.HandleDown(e) {
			p.handling = true
			return false
		}
	case mapview.PointerDrag:
		if p.handling {
			if p.HandleDrag != nil {
				p.HandleDrag(e)
			}
			return false
		}
	case mapview.PointerUp:
		if p.handling {
			if p.HandleUp == nil || !p.HandleUp(e) {
				p.handling = false
			}
			return false
		}
	case mapview.PointerMove:
		if p.HandleMove != nil {
			p.HandleMove(e)
		}
	}
	return true
}

// Handling returns whether a gesture is in progress.
func (p *Pointer) Handling() bool {
	return p.handling
}

// Cancel ends a gesture in progress without calling HandleUp.
func (p *Pointer) Cancel() {
	p.handling = false
}
