package providers

import (
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/ja-he/featedit/internal/config"
	"github.com/ja-he/featedit/internal/model"
	"github.com/ja-he/featedit/internal/styling"
)

// GeoJSONSource is a feature source loaded from a GeoJSON FeatureCollection.
// Changes are kept in memory only.
type GeoJSONSource struct {
	MemorySource

	Path string
}

// NewGeoJSONSourceFromFile reads the GeoJSON file at the given path.
// See NewGeoJSONSource for the handling of geometryType.
func NewGeoJSONSourceFromFile(path string, geometryType string) (*GeoJSONSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read '%s': %w", path, err)
	}
	s, err := NewGeoJSONSource(data, geometryType)
	if err != nil {
		return nil, fmt.Errorf("could not load '%s': %w", path, err)
	}
	s.Path = path
	return s, nil
}

// NewGeoJSONSource constructs a source from GeoJSON FeatureCollection data.
//
// If geometryType is non-empty, features of other geometry types are skipped.
// A feature's own style is read from its 'style' property, which may be a
// single styling object or a list of them (see config.Styling).
func NewGeoJSONSource(data []byte, geometryType string) (*GeoJSONSource, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if t := root.Get("type").String(); t != "FeatureCollection" {
		return nil, fmt.Errorf("expected a FeatureCollection, got '%s'", t)
	}

	s := &GeoJSONSource{MemorySource: *NewMemorySource()}

	var loadErr error
	index := 0
	root.Get("features").ForEach(func(_, raw gjson.Result) bool {
		f, err := featureFromGeoJSON(raw, index)
		index++
		if err != nil {
			loadErr = err
			return false
		}
		if geometryType != "" && f.GeometryType() != geometryType {
			log.Warn().Str("feature", f.ID).Str("type", f.GeometryType()).Msgf("skipping feature not of type '%s'", geometryType)
			return true
		}
		s.AddFeature(f)
		return true
	})
	if loadErr != nil {
		return nil, loadErr
	}

	log.Debug().Int("features", len(s.Features())).Msg("loaded GeoJSON source")
	return s, nil
}

func featureFromGeoJSON(raw gjson.Result, index int) (*model.Feature, error) {
	gf, err := geojson.UnmarshalFeature([]byte(raw.Raw))
	if err != nil {
		return nil, fmt.Errorf("feature #%d: %w", index, err)
	}
	if gf.Geometry == nil {
		return nil, fmt.Errorf("feature #%d has no geometry", index)
	}

	id := fmt.Sprintf("feature-%d", index)
	if gf.ID != nil {
		id = fmt.Sprint(gf.ID)
	}

	style, err := styleFromGeoJSON(raw.Get("properties.style"))
	if err != nil {
		return nil, fmt.Errorf("feature '%s': %w", id, err)
	}

	properties := map[string]any{}
	for k, v := range gf.Properties {
		if k != "style" {
			properties[k] = v
		}
	}

	return &model.Feature{
		ID:         id,
		Geometry:   gf.Geometry,
		Style:      style,
		Properties: properties,
	}, nil
}

func styleFromGeoJSON(style gjson.Result) (styling.Spec, error) {
	switch {
	case !style.Exists():
		return styling.None, nil
	case style.IsObject():
		e, err := styling.EntryFromConfig(stylingFromGeoJSON(style))
		if err != nil {
			return styling.None, err
		}
		return styling.Constant(e), nil
	case style.IsArray():
		stylings := []config.Styling{}
		for _, s := range style.Array() {
			stylings = append(stylings, stylingFromGeoJSON(s))
		}
		spec, err := styling.SpecFromConfig(stylings)
		if err != nil {
			return styling.None, err
		}
		if spec.Kind() == styling.SpecConstant {
			return styling.List(styling.Normalize(spec, nil)...), nil
		}
		return spec, nil
	default:
		return styling.None, fmt.Errorf("style must be an object or a list, not '%s'", style.Raw)
	}
}

func stylingFromGeoJSON(s gjson.Result) config.Styling {
	return config.Styling{
		Stroke:      s.Get("stroke").String(),
		Fill:        s.Get("fill").String(),
		StrokeGlyph: s.Get("stroke-glyph").String(),
		VertexGlyph: s.Get("vertex-glyph").String(),
		Bold:        s.Get("bold").Bool(),
	}
}
