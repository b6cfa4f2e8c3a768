package panes

import (
	"fmt"

	"github.com/ja-he/featedit/internal/model"
	"github.com/ja-he/featedit/internal/potatolog"
	"github.com/ja-he/featedit/internal/styling"
	"github.com/ja-he/featedit/internal/ui"
)

// StatusPane is a status bar that displays the interaction mode, the edited
// feature, the map cursor and the most recent log message.
type StatusPane struct {
	renderer   ui.ConstrainedRenderer
	dimensions func() (x, y, w, h int)
	stylesheet styling.Stylesheet

	mode        func() string
	editFeature func() *model.Feature
	cursor      func() string

	logReader potatolog.LogReader
}

// NewStatusPane constructs and returns a new StatusPane.
func NewStatusPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	mode func() string,
	editFeature func() *model.Feature,
	cursor func() string,
	logReader potatolog.LogReader,
) *StatusPane {
	return &StatusPane{
		renderer:    renderer,
		dimensions:  dimensions,
		stylesheet:  stylesheet,
		mode:        mode,
		editFeature: editFeature,
		cursor:      cursor,
		logReader:   logReader,
	}
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *StatusPane) Dimensions() (x, y, w, h int) {
	return p.dimensions()
}

// Draw draws this pane.
func (p *StatusPane) Draw() {
	x, y, w, h := p.Dimensions()
	if w <= 0 || h <= 0 {
		return
	}

	bgStyle := p.stylesheet.Status
	bgStyleEmph := bgStyle.Emphasized()

	p.renderer.DrawBox(x, y, w, h, bgStyle)

	modeStr := fmt.Sprintf("-- %s --", p.mode())
	p.renderer.DrawBox(x, y, len(modeStr)+2, h, bgStyleEmph)
	p.renderer.DrawText(x+1, y, len(modeStr), 1, bgStyleEmph, modeStr)
	col := x + len(modeStr) + 3

	featureStr := "no feature"
	if f := p.editFeature(); f != nil {
		featureStr = fmt.Sprintf("%s (%s)", f.ID, f.GeometryType())
	}
	p.renderer.DrawText(col, y, len(featureStr), 1, bgStyle, featureStr)
	col += len(featureStr) + 2

	if cursor := p.cursor(); cursor != "" {
		cursorStr := "cursor:" + cursor
		p.renderer.DrawText(col, y, len(cursorStr), 1, bgStyle, cursorStr)
		col += len(cursorStr) + 2
	}

	if p.logReader == nil {
		return
	}
	entry, ok := p.logReader.Last("info")
	if !ok {
		return
	}
	msg := fmt.Sprintf("[%v] %v", entry["level"], entry["message"])
	if remaining := x + w - col; remaining > 0 {
		if len(msg) > remaining {
			msg = msg[:remaining]
		}
		p.renderer.DrawText(x+w-len(msg), y, len(msg), 1, bgStyle, msg)
	}
}
