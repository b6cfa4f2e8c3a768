package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file at
// '${FEATEDIT_HOME}/config.yaml'.
type Config struct {
	// GeometryType restricts editing to features of the given GeoJSON geometry
	// type (e.g. 'Polygon'); empty allows all types.
	GeometryType string `yaml:"geometry-type"`

	// Resolution is the initial number of map units per terminal cell.
	Resolution float64 `yaml:"resolution"`
	// HitTolerance is the distance in cells within which features and vertices
	// are considered hit by the pointer.
	HitTolerance int `yaml:"hit-tolerance"`

	Stylesheet Stylesheet `yaml:"stylesheet"`
	Keys       Keys       `yaml:"keys"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Background Styling   `yaml:"background"`
	Status     Styling   `yaml:"status"`
	Layer      []Styling `yaml:"layer"`
	Select     []Styling `yaml:"select"`
	Modify     []Styling `yaml:"modify"`
}

// A Styling is a styling as defined in a config file.
// It must contain stroke and fill colors and can optionally specify the glyphs
// used to draw lines and vertices.
type Styling struct {
	Stroke      string `yaml:"stroke"`
	Fill        string `yaml:"fill"`
	StrokeGlyph string `yaml:"stroke-glyph,omitempty"`
	VertexGlyph string `yaml:"vertex-glyph,omitempty"`
	Bold        bool   `yaml:"bold,omitempty"`
}

// Keys are the key bindings as keyspecs (e.g. '<del>' or 'q').
type Keys struct {
	Delete  string `yaml:"delete"`
	Quit    string `yaml:"quit"`
	Toggle  string `yaml:"toggle"`
	Left    string `yaml:"left"`
	Right   string `yaml:"right"`
	Up      string `yaml:"up"`
	Down    string `yaml:"down"`
	ZoomIn  string `yaml:"zoom-in"`
	ZoomOut string `yaml:"zoom-out"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	var defaultConfig Config
	switch defaultTheme {
	case Dark:
		defaultConfig = Default(Dark)
	case Light:
		defaultConfig = Default(Light)
	default:
		return Config{}, fmt.Errorf("unknown colorscheme type %d", defaultTheme)
	}

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml: %w", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)

	return result, nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	if augment.GeometryType != "" {
		result.GeometryType = augment.GeometryType
	}
	if augment.Resolution > 0 {
		result.Resolution = augment.Resolution
	}
	if augment.HitTolerance > 0 {
		result.HitTolerance = augment.HitTolerance
	}

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)
	result.Keys = base.Keys.augmentWith(augment.Keys)

	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Background.overwriteIfDefined(augment.Background)
	result.Status.overwriteIfDefined(augment.Status)
	if len(augment.Layer) > 0 {
		result.Layer = augment.Layer
	}
	if len(augment.Select) > 0 {
		result.Select = augment.Select
	}
	if len(augment.Modify) > 0 {
		result.Modify = augment.Modify
	}

	return result
}

func (base Keys) augmentWith(augment Keys) Keys {
	result := base

	overwrite := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	overwrite(&result.Delete, augment.Delete)
	overwrite(&result.Quit, augment.Quit)
	overwrite(&result.Toggle, augment.Toggle)
	overwrite(&result.Left, augment.Left)
	overwrite(&result.Right, augment.Right)
	overwrite(&result.Up, augment.Up)
	overwrite(&result.Down, augment.Down)
	overwrite(&result.ZoomIn, augment.ZoomIn)
	overwrite(&result.ZoomOut, augment.ZoomOut)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Stroke != "" && augment.Fill != "" {
		s.Stroke = augment.Stroke
		s.Fill = augment.Fill
	}
	if augment.StrokeGlyph != "" {
		s.StrokeGlyph = augment.StrokeGlyph
	}
	if augment.VertexGlyph != "" {
		s.VertexGlyph = augment.VertexGlyph
	}
	if augment.Bold {
		s.Bold = true
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)
