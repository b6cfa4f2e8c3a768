// Package panes implements the TUI panes: the map, the status bar and the root
// pane composing them.
package panes

import (
	"github.com/paulmach/orb"

	"github.com/ja-he/featedit/internal/mapview"
	"github.com/ja-he/featedit/internal/model"
	"github.com/ja-he/featedit/internal/styling"
	"github.com/ja-he/featedit/internal/ui"
)

// MapPane draws the layers of a map and the vertex overlay of the active
// modify interaction.
type MapPane struct {
	renderer   ui.ConstrainedRenderer
	dimensions func() (x, y, w, h int)
	stylesheet styling.Stylesheet

	m *mapview.Map

	// selected reports whether a feature is selected; selected features
	// without an own style are drawn in the select style.
	selected func(f *model.Feature) bool
	// overlay returns the features to draw on top of all layers.
	overlay func() []*model.Feature
}

// NewMapPane constructs and returns a new MapPane.
func NewMapPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	m *mapview.Map,
	selected func(f *model.Feature) bool,
	overlay func() []*model.Feature,
) *MapPane {
	return &MapPane{
		renderer:   renderer,
		dimensions: dimensions,
		stylesheet: stylesheet,
		m:          m,
		selected:   selected,
		overlay:    overlay,
	}
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *MapPane) Dimensions() (x, y, w, h int) {
	return p.dimensions()
}

// Draw draws this pane.
func (p *MapPane) Draw() {
	x, y, w, h := p.Dimensions()
	p.renderer.DrawBox(x, y, w, h, p.stylesheet.Background)

	for _, layer := range p.m.Layers() {
		for _, f := range layer.Source.Features() {
			p.drawFeature(f, p.effectiveStyle(f, layer))
		}
	}

	if p.overlay != nil {
		for _, f := range p.overlay() {
			spec := f.Style
			if spec.IsNone() {
				spec = p.stylesheet.Modify
			}
			p.drawFeature(f, styling.Normalize(spec, f))
		}
	}
}

// effectiveStyle returns the entries a feature is drawn with: its own style,
// which includes the select style when it is selected, the select style for
// selected features without own style, or else the style of the layer.
func (p *MapPane) effectiveStyle(f *model.Feature, layer *mapview.Layer) []styling.Entry {
	switch {
	case f.HasOwnStyle():
		return styling.Normalize(f.Style, f)
	case p.selected != nil && p.selected(f) && !p.stylesheet.Select.IsNone():
		return styling.Normalize(p.stylesheet.Select, f)
	case !layer.Style.IsNone():
		return styling.Normalize(layer.Style, f)
	default:
		return styling.Normalize(p.stylesheet.Layer, f)
	}
}

func (p *MapPane) drawFeature(f *model.Feature, entries []styling.Entry) {
	if f.Geometry == nil {
		return
	}
	for _, e := range entries {
		p.drawGeometry(f.Geometry, e)
	}
}

func (p *MapPane) drawGeometry(g orb.Geometry, e styling.Entry) {
	switch g := g.(type) {
	case orb.LineString:
		p.drawPath(g, e)
	case orb.Ring:
		p.drawPath(orb.LineString(g), e)
	case orb.Polygon:
		for _, r := range g {
			p.drawPath(orb.LineString(r), e)
		}
	case orb.MultiLineString:
		for _, ls := range g {
			p.drawPath(ls, e)
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			p.drawGeometry(poly, e)
		}
	case orb.Collection:
		for _, sub := range g {
			p.drawGeometry(sub, e)
		}
	}

	if e.VertexGlyph == 0 {
		return
	}
	for _, v := range model.Vertices(g) {
		p.drawCell(p.pixel(v), e.VertexGlyph, e)
	}
}

func (p *MapPane) drawPath(ls orb.LineString, e styling.Entry) {
	if e.StrokeGlyph == 0 {
		return
	}
	for i := 1; i < len(ls); i++ {
		line(p.pixel(ls[i-1]), p.pixel(ls[i]), func(px mapview.Pixel) {
			p.drawCell(px, e.StrokeGlyph, e)
		})
	}
}

func (p *MapPane) pixel(c orb.Point) mapview.Pixel {
	return p.m.View.PixelFromCoordinate(c)
}

func (p *MapPane) drawCell(px mapview.Pixel, glyph rune, e styling.Entry) {
	x, y, _, _ := p.Dimensions()
	p.renderer.DrawCell(x+px.X, y+px.Y, glyph, e)
}

// line calls fn for every cell on the line from a to b, including both.
func line(a, b mapview.Pixel, fn func(mapview.Pixel)) {
	dx, sx := abs(b.X-a.X), sign(b.X-a.X)
	dy, sy := -abs(b.Y-a.Y), sign(b.Y-a.Y)
	err := dx + dy

	for {
		fn(a)
		if a == b {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			a.X += sx
		}
		if e2 <= dx {
			err += dx
			a.Y += sy
		}
	}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

func sign(i int) int {
	switch {
	case i < 0:
		return -1
	case i > 0:
		return 1
	default:
		return 0
	}
}
