package modify

// updateCursor sets the cursor for the current mode: grab while editing
// vertices, move while a feature is edited, and the cursor from before
// otherwise.
func (c *Control) updateCursor() {
	switch {
	case c.state.vertexEditActive:
		c.changeCursor(CursorGrab)
	case c.state.feature != nil:
		c.changeCursor(CursorMove)
	case c.state.previousCursor != nil:
		c.changeCursor(*c.state.previousCursor)
		c.state.previousCursor = nil
	}
}

// changeCursor sets the cursor of the map's target element, remembering the
// cursor it replaces unless one is remembered already.
func (c *Control) changeCursor(cursor string) {
	element := c.m.TargetElement()
	if element.Cursor == cursor {
		return
	}
	if c.state.previousCursor == nil {
		previous := element.Cursor
		c.state.previousCursor = &previous
	}
	element.Cursor = cursor
}
