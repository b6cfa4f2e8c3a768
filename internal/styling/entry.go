package styling

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/featedit/internal/config"
)

// Entry is a single renderable style for a feature, e.g. a stroke color with
// the glyphs used to draw lines and vertices.
//
// Entries are plain values and compare equal when all their fields are equal.
type Entry struct {
	Stroke colorful.Color
	Fill   colorful.Color

	StrokeGlyph rune
	VertexGlyph rune

	Bold bool
}

// AsTcell returns the tcell style for drawing this entry.
func (e Entry) AsTcell() tcell.Style {
	return tcell.StyleDefault.
		Foreground(colorfulColorToTcellColor(e.Stroke)).
		Background(colorfulColorToTcellColor(e.Fill)).
		Bold(e.Bold)
}

// Emphasized returns a copy of this entry with a darkened fill and bold
// glyphs.
func (e Entry) Emphasized() Entry {
	e.Fill = darkenColorfulColor(e.Fill, 20)
	e.Bold = true
	return e
}

// ToString returns a string representation of this entry, e.g., for logging
// purposes.
func (e Entry) ToString() string {
	return fmt.Sprintf(
		"[stroke:'%s' fill:'%s' glyphs:'%c%c' (b:%t)]",
		e.Stroke.Hex(),
		e.Fill.Hex(),
		e.StrokeGlyph,
		e.VertexGlyph,
		e.Bold,
	)
}

// EntryFromConfig constructs an entry from the given config styling.
// Missing glyphs fall back to '·' for strokes and 'o' for vertices.
func EntryFromConfig(s config.Styling) (Entry, error) {
	stroke, err := colorful.Hex(s.Stroke)
	if err != nil {
		return Entry{}, fmt.Errorf("invalid stroke color '%s': %w", s.Stroke, err)
	}
	fill, err := colorful.Hex(s.Fill)
	if err != nil {
		return Entry{}, fmt.Errorf("invalid fill color '%s': %w", s.Fill, err)
	}

	e := Entry{
		Stroke:      stroke,
		Fill:        fill,
		StrokeGlyph: '·',
		VertexGlyph: 'o',
		Bold:        s.Bold,
	}
	if r := []rune(s.StrokeGlyph); len(r) > 0 {
		e.StrokeGlyph = r[0]
	}
	if r := []rune(s.VertexGlyph); len(r) > 0 {
		e.VertexGlyph = r[0]
	}
	return e, nil
}

// SpecFromConfig constructs a style spec from the given config stylings.
// No stylings yield None, a single one a Constant and several a List.
func SpecFromConfig(stylings []config.Styling) (Spec, error) {
	entries := make([]Entry, 0, len(stylings))
	for i, s := range stylings {
		e, err := EntryFromConfig(s)
		if err != nil {
			return None, fmt.Errorf("styling #%d: %w", i, err)
		}
		entries = append(entries, e)
	}
	switch len(entries) {
	case 0:
		return None, nil
	case 1:
		return Constant(entries[0]), nil
	default:
		return List(entries...), nil
	}
}

func colorfulColorToTcellColor(color colorful.Color) tcell.Color {
	r, g, b := color.RGB255()

	rgb := ((uint32(r)) << 16) | (uint32(g) << 8) | (uint32(b))

	return tcell.NewHexColor(int32(rgb))
}

func darkenColorfulColor(color colorful.Color, percentage int) colorful.Color {
	hue, sat, ltn := color.Hsl()

	scalar := float64(percentage) / 100.0
	newLightness := ltn - (ltn * scalar)

	return colorful.Hsl(hue, sat, newLightness)
}
