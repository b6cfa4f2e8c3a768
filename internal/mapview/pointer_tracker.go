package mapview

// pointerTracker synthesizes browser events from raw pointer state, i.e. from
// whether the (primary) button is held and where the pointer is.
type pointerTracker struct {
	down     bool
	dragging bool
	known    bool
	start    Pixel
	last     Pixel
}

// translate returns the events that the transition to the given pointer state
// amounts to.
// A drag starts once the pointer moves more than deadZone cells away from
// where it was pressed; a release without drag is also a click.
func (t *pointerTracker) translate(pressed bool, p Pixel, deadZone int) []BrowserEventType {
	switch {
	case pressed && !t.down:
		t.down, t.dragging, t.known = true, false, true
		t.start, t.last = p, p
		return []BrowserEventType{PointerDown}

	case pressed && t.down:
		if p == t.last {
			return nil
		}
		t.last = p
		if !t.dragging && chebyshev(t.start, p) > deadZone {
			t.dragging = true
		}
		if t.dragging {
			return []BrowserEventType{PointerDrag}
		}
		return nil

	case !pressed && t.down:
		t.down = false
		t.last = p
		if t.dragging {
			t.dragging = false
			return []BrowserEventType{PointerUp}
		}
		return []BrowserEventType{PointerUp, Click}

	default:
		if t.known && p == t.last {
			return nil
		}
		t.known = true
		t.last = p
		return []BrowserEventType{PointerMove}
	}
}

func chebyshev(a, b Pixel) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}
