// Package ui holds the interfaces the TUI panes render through and are
// composed by.
package ui

import (
	"github.com/ja-he/featedit/internal/styling"
)

// Pane is a UI pane.
type Pane interface {
	Draw()
	Dimensions() (x, y, w, h int)
}

// Renderer draws boxes, text and single cells.
type Renderer interface {
	// Draw a box of the indicated dimensions at the indicated location but
	// limited to the constraint (bounding box) of the renderer.
	// In the case that the box is  not fully contained by the bounding box,
	// it is truncated to fit and drawn at the corrected coordinates with the
	// corrected dimensions.
	DrawBox(x, y, w, h int, style styling.Entry)
	// Draw text within the box described by the given coordinates and dimensions,
	// but limited to the constraint (bounding box) of the renderer.
	DrawText(x, y, w, h int, style styling.Entry, text string)
	// Draw a single cell.
	DrawCell(x, y int, r rune, style styling.Entry)
}

// ConstrainedRenderer is a renderer that is assumed to be constrained to
// certain dimensions, i.E. it does not draw outside of them.
type ConstrainedRenderer interface {
	Renderer

	// Dimensions returns the dimensions of the renderer.
	Dimensions() (x, y, w, h int)
}

// RenderOrchestratorControl is the set of functions of a renderer (e.g.,
// tcell.Screen) that the root pane needs to use to have full control over a
// render cycle. Other panes should not need this access to the renderer.
type RenderOrchestratorControl interface {
	Clear()
	Show()
}
