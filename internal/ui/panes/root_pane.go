package panes

import (
	"github.com/ja-he/featedit/internal/ui"
)

// RootPane acts as the root UI pane, wrapping all subpanes and managing the
// render cycle.
type RootPane struct {
	renderer   ui.RenderOrchestratorControl
	dimensions func() (x, y, w, h int)

	subpanes []ui.Pane
}

// NewRootPane constructs and returns a new RootPane drawing the given subpanes
// in order.
func NewRootPane(
	renderer ui.RenderOrchestratorControl,
	dimensions func() (x, y, w, h int),
	subpanes ...ui.Pane,
) *RootPane {
	return &RootPane{
		renderer:   renderer,
		dimensions: dimensions,
		subpanes:   subpanes,
	}
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *RootPane) Dimensions() (x, y, w, h int) {
	return p.dimensions()
}

// Draw clears the screen, draws all subpanes and shows the result.
func (p *RootPane) Draw() {
	p.renderer.Clear()
	for _, s := range p.subpanes {
		s.Draw()
	}
	p.renderer.Show()
}
