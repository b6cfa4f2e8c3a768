package panes_test

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"

	"github.com/ja-he/featedit/internal/mapview"
	"github.com/ja-he/featedit/internal/model"
	"github.com/ja-he/featedit/internal/potatolog"
	"github.com/ja-he/featedit/internal/storage/providers"
	"github.com/ja-he/featedit/internal/styling"
	"github.com/ja-he/featedit/internal/ui"
	"github.com/ja-he/featedit/internal/ui/panes"
)

type cell struct {
	glyph rune
	style styling.Entry
}

// canvas is a renderer remembering the last thing drawn to each cell.
type canvas struct {
	w, h    int
	cells   map[mapview.Pixel]cell
	cleared int
	shown   int
}

func newCanvas(w, h int) *canvas {
	return &canvas{w: w, h: h, cells: map[mapview.Pixel]cell{}}
}

func (c *canvas) DrawBox(x, y, w, h int, style styling.Entry) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			c.cells[mapview.Pixel{X: col, Y: row}] = cell{' ', style}
		}
	}
}

func (c *canvas) DrawText(x, y, w, h int, style styling.Entry, text string) {
	col := x
	for _, r := range text {
		if col >= x+w {
			return
		}
		c.cells[mapview.Pixel{X: col, Y: y}] = cell{r, style}
		col++
	}
}

func (c *canvas) DrawCell(x, y int, r rune, style styling.Entry) {
	c.cells[mapview.Pixel{X: x, Y: y}] = cell{r, style}
}

func (c *canvas) Clear() { c.cells = map[mapview.Pixel]cell{}; c.cleared++ }
func (c *canvas) Show()  { c.shown++ }

func (c *canvas) row(y int) string {
	var b strings.Builder
	for x := 0; x < c.w; x++ {
		if cl, ok := c.cells[mapview.Pixel{X: x, Y: y}]; ok {
			b.WriteRune(cl.glyph)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

var (
	layerStyle  = styling.Entry{StrokeGlyph: '-', VertexGlyph: 'o'}
	selectStyle = styling.Entry{StrokeGlyph: '=', VertexGlyph: 'O'}
	modifyStyle = styling.Entry{VertexGlyph: '@'}
)

func newMapPane(c *canvas, line *model.Feature, selected bool, overlay []*model.Feature) *panes.MapPane {
	m := mapview.New(mapview.View{Resolution: 1, Width: c.w, Height: c.h}, 1)
	m.AddLayer(&mapview.Layer{Source: providers.NewMemorySource(line)})
	dims := func() (int, int, int, int) { return 0, 0, c.w, c.h }
	return panes.NewMapPane(
		ui.NewConstrainedRenderer(c, dims),
		dims,
		styling.Stylesheet{
			Layer:  styling.Constant(layerStyle),
			Select: styling.Constant(selectStyle),
			Modify: styling.Constant(modifyStyle),
		},
		m,
		func(*model.Feature) bool { return selected },
		func() []*model.Feature { return overlay },
	)
}

func TestMapPane(t *testing.T) {
	line := func() *model.Feature {
		return &model.Feature{ID: "l", Geometry: orb.LineString{{-3, 0}, {3, 0}}}
	}

	t.Run("layer style", func(t *testing.T) {
		c := newCanvas(10, 4)
		newMapPane(c, line(), false, nil).Draw()
		if got := c.row(2); got != "  o-----o " {
			t.Errorf("unexpected row '%s'", got)
		}
	})

	t.Run("selected without own style", func(t *testing.T) {
		c := newCanvas(10, 4)
		newMapPane(c, line(), true, nil).Draw()
		if got := c.row(2); got != "  O=====O " {
			t.Errorf("unexpected row '%s'", got)
		}
	})

	t.Run("own style wins", func(t *testing.T) {
		c := newCanvas(10, 4)
		l := line()
		l.Style = styling.Constant(styling.Entry{StrokeGlyph: '~', VertexGlyph: '+'})
		newMapPane(c, l, true, nil).Draw()
		if got := c.row(2); got != "  +~~~~~+ " {
			t.Errorf("unexpected row '%s'", got)
		}
	})

	t.Run("overlay on top", func(t *testing.T) {
		c := newCanvas(10, 4)
		vertex := &model.Feature{ID: "vertex", Geometry: orb.Point{3, 0}}
		newMapPane(c, line(), false, []*model.Feature{vertex}).Draw()
		if got := c.row(2); got != "  o-----@ " {
			t.Errorf("unexpected row '%s'", got)
		}
	})

	t.Run("out of view is clipped", func(t *testing.T) {
		c := newCanvas(4, 3)
		newMapPane(c, line(), false, nil).Draw()
		for p := range c.cells {
			if p.X < 0 || p.Y < 0 || p.X >= 4 || p.Y >= 3 {
				t.Error("drew outside of pane at", p)
			}
		}
	})
}

func TestStatusPane(t *testing.T) {
	c := newCanvas(80, 1)
	dims := func() (int, int, int, int) { return 0, 0, c.w, c.h }
	logs := &potatolog.MemoryLogReaderWriter{}
	logs.Write([]byte(`{"level":"info","message":"deleted feature"}`))
	logs.Write([]byte(`{"level":"debug","message":"noise"}`))

	f := &model.Feature{ID: "f1", Geometry: orb.Point{0, 0}}
	p := panes.NewStatusPane(
		ui.NewConstrainedRenderer(c, dims),
		dims,
		styling.Stylesheet{},
		func() string { return "SELECTED" },
		func() *model.Feature { return f },
		func() string { return "move" },
		logs,
	)
	p.Draw()

	row := c.row(0)
	for _, expected := range []string{"-- SELECTED --", "f1 (Point)", "cursor:move", "[info] deleted feature"} {
		if !strings.Contains(row, expected) {
			t.Errorf("status row '%s' lacks '%s'", row, expected)
		}
	}
	if strings.Contains(row, "noise") {
		t.Error("status row shows debug message")
	}
}

func TestRootPane(t *testing.T) {
	c := newCanvas(1, 1)
	drawn := 0
	sub := &countingPane{count: &drawn}
	r := panes.NewRootPane(c, func() (int, int, int, int) { return 0, 0, 1, 1 }, sub, sub)
	r.Draw()
	if c.cleared != 1 || c.shown != 1 || drawn != 2 {
		t.Error("unexpected render cycle:", c.cleared, c.shown, drawn)
	}
}

type countingPane struct{ count *int }

func (p *countingPane) Draw()                            { *p.count++ }
func (p *countingPane) Dimensions() (int, int, int, int) { return 0, 0, 1, 1 }
