package config_test

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/ja-he/featedit/internal/config"
)

func TestParseConfigAugmentDefaults(t *testing.T) {

	t.Run("empty input yields defaults", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults(config.Dark, []byte{})
		if err != nil {
			t.Error("unexpected error:", err.Error())
		}
		if c.Keys.Delete != "<del>" {
			t.Error("unexpected default delete key:", c.Keys.Delete)
		}
		if len(c.Stylesheet.Select) != 1 {
			t.Error("expected a default select style")
		}
	})

	t.Run("augments", func(t *testing.T) {
		yamlData := []byte(`
geometry-type: Polygon
hit-tolerance: 3
keys:
  delete: x
stylesheet:
  select:
    - stroke: "#ff0000"
      fill: "#000000"
    - stroke: "#00ff00"
      fill: "#000000"
`)
		c, err := config.ParseConfigAugmentDefaults(config.Light, yamlData)
		if err != nil {
			t.Error("unexpected error:", err.Error())
		}
		if c.GeometryType != "Polygon" || c.HitTolerance != 3 {
			t.Error("top level values not applied:", c.GeometryType, c.HitTolerance)
		}
		if c.Keys.Delete != "x" || c.Keys.Quit != "q" {
			t.Error("keys not augmented correctly:", c.Keys)
		}
		if len(c.Stylesheet.Select) != 2 || len(c.Stylesheet.Layer) != 1 {
			t.Error("stylesheet not augmented correctly")
		}
		if c.Resolution != 1.0 {
			t.Error("resolution default lost:", c.Resolution)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.ParseConfigAugmentDefaults(config.Dark, []byte("keys: [oops"))
		if err == nil {
			t.Error("expected error on invalid yaml")
		}
	})

	t.Run("type errors stay inspectable", func(t *testing.T) {
		_, err := config.ParseConfigAugmentDefaults(config.Dark, []byte("hit-tolerance: lots"))
		var typeErr *yaml.TypeError
		if !errors.As(err, &typeErr) {
			t.Error("expected wrapped *yaml.TypeError, got", err)
		}
	})

}
