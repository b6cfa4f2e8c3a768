package modify

// Mode is the interaction mode of a modify control.
type Mode int

const (
	// ModeIdle means no feature is being edited.
	ModeIdle Mode = iota
	// ModeSelected means a feature is selected and can be moved.
	ModeSelected
	// ModeVertexEditing means the pointer is at a vertex of the selected
	// feature, which can be dragged.
	ModeVertexEditing
	// ModeMoving means the selected feature is being dragged.
	ModeMoving
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeSelected:
		return "selected"
	case ModeVertexEditing:
		return "vertex-editing"
	case ModeMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// Cursors set on the map's target element.
const (
	CursorGrab = "grab"
	CursorMove = "move"
)
