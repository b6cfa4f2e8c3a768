package styling_test

import (
	"reflect"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/featedit/internal/config"
	"github.com/ja-he/featedit/internal/styling"
)

type dummyFeature struct{ id string }

func (f *dummyFeature) FeatureID() string               { return f.id }
func (f *dummyFeature) Property(key string) (any, bool) { return nil, false }

func entry(hex string) styling.Entry {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	return styling.Entry{Stroke: c, Fill: c, StrokeGlyph: '*', VertexGlyph: 'o'}
}

var (
	a = entry("#aa0000")
	b = entry("#00bb00")
	c = entry("#0000cc")
)

func TestNormalize(t *testing.T) {

	t.Run("none", func(t *testing.T) {
		result := styling.Normalize(styling.None, nil)
		if result == nil || len(result) != 0 {
			t.Error("expected empty non-nil list, got", result)
		}
	})

	t.Run("constant", func(t *testing.T) {
		result := styling.Normalize(styling.Constant(a), nil)
		if !reflect.DeepEqual(result, []styling.Entry{a}) {
			t.Error("expected single element list, got", result)
		}
	})

	t.Run("list", func(t *testing.T) {
		result := styling.Normalize(styling.List(a, b), nil)
		if !reflect.DeepEqual(result, []styling.Entry{a, b}) {
			t.Error("expected [a b], got", result)
		}
	})

	t.Run("list result is not shared", func(t *testing.T) {
		s := styling.List(a, b)
		result := styling.Normalize(s, nil)
		result[0] = c
		if !reflect.DeepEqual(styling.Normalize(s, nil), []styling.Entry{a, b}) {
			t.Error("modifying a normalized list modified the spec")
		}
	})

	t.Run("static function", func(t *testing.T) {
		calls := 0
		s := styling.StaticFunc(func() styling.Spec { calls++; return styling.Constant(b) })
		result := styling.Normalize(s, nil)
		if !reflect.DeepEqual(result, []styling.Entry{b}) {
			t.Error("expected [b], got", result)
		}
		if calls != 1 {
			t.Error("expected exactly one call, got", calls)
		}
	})

	t.Run("feature function with feature", func(t *testing.T) {
		var got styling.Feature
		s := styling.FeatureFunc(func(f styling.Feature) styling.Spec {
			got = f
			return styling.List(a, c)
		})
		f := &dummyFeature{id: "x"}
		result := styling.Normalize(s, f)
		if got != f {
			t.Error("function was not called with the feature")
		}
		if !reflect.DeepEqual(result, []styling.Entry{a, c}) {
			t.Error("expected [a c], got", result)
		}
	})

	t.Run("feature function without feature", func(t *testing.T) {
		called := false
		s := styling.FeatureFunc(func(f styling.Feature) styling.Spec {
			called = true
			if f != nil {
				t.Error("expected nil feature")
			}
			return styling.Constant(a)
		})
		result := styling.Normalize(s, nil)
		if !called || !reflect.DeepEqual(result, []styling.Entry{a}) {
			t.Error("unexpected result", result)
		}
	})

	t.Run("nil functions are none", func(t *testing.T) {
		if !styling.FeatureFunc(nil).IsNone() || !styling.StaticFunc(nil).IsNone() {
			t.Error("nil function specs are not none")
		}
	})

}

func TestComposeDecompose(t *testing.T) {

	t.Run("compose appends", func(t *testing.T) {
		result := styling.Compose([]styling.Entry{a}, []styling.Entry{b})
		if !reflect.DeepEqual(result, []styling.Entry{a, b}) {
			t.Error("expected [a b], got", result)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		own := []styling.Entry{a, c}
		sel := []styling.Entry{b, c}
		result := styling.Decompose(styling.Compose(own, sel), sel)
		if !reflect.DeepEqual(result, own) {
			t.Error("expected own styles back, got", result)
		}
	})

	t.Run("truncates at first equal entry", func(t *testing.T) {
		own := []styling.Entry{a, b, c}
		sel := []styling.Entry{b}
		result := styling.Decompose(styling.Compose(own, sel), sel)
		if !reflect.DeepEqual(result, []styling.Entry{a}) {
			t.Error("expected truncation to [a], got", result)
		}
	})

	t.Run("missing select entry leaves merged unchanged", func(t *testing.T) {
		result := styling.Decompose([]styling.Entry{a, c}, []styling.Entry{b})
		if !reflect.DeepEqual(result, []styling.Entry{a, c}) {
			t.Error("expected [a c], got", result)
		}
	})

	t.Run("empty select styles", func(t *testing.T) {
		result := styling.Decompose([]styling.Entry{a}, nil)
		if !reflect.DeepEqual(result, []styling.Entry{a}) {
			t.Error("expected [a], got", result)
		}
	})

	t.Run("nothing to strip keeps the last entry", func(t *testing.T) {
		merged := []styling.Entry{a, c}
		for _, sel := range [][]styling.Entry{{b}, nil} {
			result := styling.Decompose(merged, sel)
			if len(result) != 2 || !reflect.DeepEqual(result, merged) {
				t.Error("expected [a c] for select styles", sel, "got", result)
			}
		}
	})

}

func TestSpecFromConfig(t *testing.T) {

	t.Run("kinds", func(t *testing.T) {
		none, err := styling.SpecFromConfig(nil)
		if err != nil || !none.IsNone() {
			t.Error("expected none without error")
		}
		one, err := styling.SpecFromConfig([]config.Styling{{Stroke: "#ffffff", Fill: "#000000"}})
		if err != nil || one.Kind() != styling.SpecConstant {
			t.Error("expected constant without error")
		}
		two, err := styling.SpecFromConfig([]config.Styling{{Stroke: "#ffffff", Fill: "#000000"}, {Stroke: "#ff0000", Fill: "#000000", VertexGlyph: "#"}})
		if err != nil || two.Kind() != styling.SpecList {
			t.Error("expected list without error")
		}
		entries := styling.Normalize(two, nil)
		if entries[1].VertexGlyph != '#' || entries[0].VertexGlyph != 'o' {
			t.Error("unexpected glyphs", entries[0].ToString(), entries[1].ToString())
		}
	})

	t.Run("invalid color", func(t *testing.T) {
		_, err := styling.SpecFromConfig([]config.Styling{{Stroke: "nope", Fill: "#000000"}})
		if err == nil {
			t.Error("expected error for invalid color")
		}
	})

}
