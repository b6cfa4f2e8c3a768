package config

// Default returns the default configuration for the given colorscheme type
// (light or dark).
func Default(colorschemeType ColorschemeType) Config {
	return Config{
		GeometryType: "",
		Resolution:   1.0,
		HitTolerance: 1,
		Stylesheet:   defaultStylesheet(colorschemeType),
		Keys: Keys{
			Delete:  "<del>",
			Quit:    "q",
			Toggle:  "m",
			Left:    "h",
			Right:   "l",
			Up:      "k",
			Down:    "j",
			ZoomIn:  "+",
			ZoomOut: "-",
		},
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Dark {
		return Stylesheet{
			Background: Styling{Stroke: "#ffffff", Fill: "#000000"},
			Status:     Styling{Stroke: "#f0f0f0", Fill: "#202020"},
			Layer:      []Styling{{Stroke: "#ccebff", Fill: "#000000", StrokeGlyph: "·", VertexGlyph: "o"}},
			Select:     []Styling{{Stroke: "#fff0cc", Fill: "#734700", StrokeGlyph: "*", VertexGlyph: "O", Bold: true}},
			Modify:     []Styling{{Stroke: "#ffffff", Fill: "#cc0000", VertexGlyph: "@", Bold: true}},
		}
	}
	return Stylesheet{
		Background: Styling{Stroke: "#000000", Fill: "#ffffff"},
		Status:     Styling{Stroke: "#000000", Fill: "#dddddd"},
		Layer:      []Styling{{Stroke: "#0065a3", Fill: "#ffffff", StrokeGlyph: "·", VertexGlyph: "o"}},
		Select:     []Styling{{Stroke: "#734700", Fill: "#fff0cc", StrokeGlyph: "*", VertexGlyph: "O", Bold: true}},
		Modify:     []Styling{{Stroke: "#ffffff", Fill: "#cc0000", VertexGlyph: "@", Bold: true}},
	}
}
