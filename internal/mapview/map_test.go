package mapview_test

import (
	"reflect"
	"testing"

	"github.com/paulmach/orb"

	"github.com/ja-he/featedit/internal/input"
	"github.com/ja-he/featedit/internal/mapview"
	"github.com/ja-he/featedit/internal/model"
	"github.com/ja-he/featedit/internal/storage/providers"
)

// recorder is an interaction recording the events it sees.
type recorder struct {
	name     string
	proceed  bool
	log      *[]string
	received []mapview.BrowserEventType
}

func (r *recorder) HandleEvent(e *mapview.BrowserEvent) bool {
	*r.log = append(*r.log, r.name)
	r.received = append(r.received, e.Type)
	return r.proceed
}

func newTestMap() *mapview.Map {
	return mapview.New(mapview.View{Center: orb.Point{0, 0}, Resolution: 1, Width: 20, Height: 10}, 1)
}

func TestView(t *testing.T) {

	t.Run("round trip", func(t *testing.T) {
		v := mapview.View{Center: orb.Point{100, 50}, Resolution: 2, Width: 40, Height: 20}
		for _, p := range []mapview.Pixel{{0, 0}, {20, 10}, {39, 19}, {7, 3}} {
			if back := v.PixelFromCoordinate(v.CoordinateFromPixel(p)); back != p {
				t.Error("pixel", p, "came back as", back)
			}
		}
	})

	t.Run("center and orientation", func(t *testing.T) {
		v := mapview.View{Center: orb.Point{0, 0}, Resolution: 1, Width: 20, Height: 10}
		if c := v.CoordinateFromPixel(mapview.Pixel{10, 5}); c != (orb.Point{0, 0}) {
			t.Error("viewport center is not view center:", c)
		}
		if c := v.CoordinateFromPixel(mapview.Pixel{10, 4}); c[1] != 1 {
			t.Error("moving up on screen should increase y, got", c)
		}
	})

	t.Run("pan and zoom", func(t *testing.T) {
		v := mapview.View{Center: orb.Point{0, 0}, Resolution: 2, Width: 20, Height: 10}
		v.Pan(1, 1)
		if v.Center != (orb.Point{2, -2}) {
			t.Error("unexpected center after pan:", v.Center)
		}
		v.Zoom(0.5)
		v.Zoom(-1)
		if v.Resolution != 1 {
			t.Error("unexpected resolution after zoom:", v.Resolution)
		}
	})

	t.Run("fit", func(t *testing.T) {
		v := mapview.View{Resolution: 1, Width: 11, Height: 11}
		v.Fit(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{100, 50}})
		if v.Center != (orb.Point{50, 25}) || v.Resolution != 10 {
			t.Error("unexpected view after fit:", v.Center, v.Resolution)
		}
	})

}

func TestHandlePointer(t *testing.T) {
	type step struct {
		pressed  bool
		p        mapview.Pixel
		expected []mapview.BrowserEventType
	}
	run := func(t *testing.T, steps []step) {
		m := newTestMap()
		log := []string{}
		r := &recorder{name: "r", proceed: true, log: &log}
		m.AddInteraction(r)
		for i, s := range steps {
			before := len(r.received)
			m.HandlePointer(s.pressed, s.p)
			got := r.received[before:]
			if len(got) != len(s.expected) || (len(got) > 0 && !reflect.DeepEqual(got, s.expected)) {
				t.Errorf("step %d: expected %v, got %v", i, s.expected, got)
			}
		}
	}

	t.Run("click", func(t *testing.T) {
		run(t, []step{
			{false, mapview.Pixel{1, 1}, []mapview.BrowserEventType{mapview.PointerMove}},
			{false, mapview.Pixel{1, 1}, nil},
			{true, mapview.Pixel{1, 1}, []mapview.BrowserEventType{mapview.PointerDown}},
			{false, mapview.Pixel{1, 1}, []mapview.BrowserEventType{mapview.PointerUp, mapview.Click}},
		})
	})

	t.Run("drag", func(t *testing.T) {
		run(t, []step{
			{true, mapview.Pixel{1, 1}, []mapview.BrowserEventType{mapview.PointerDown}},
			{true, mapview.Pixel{2, 1}, []mapview.BrowserEventType{mapview.PointerDrag}},
			{true, mapview.Pixel{2, 1}, nil},
			{true, mapview.Pixel{4, 5}, []mapview.BrowserEventType{mapview.PointerDrag}},
			{false, mapview.Pixel{4, 5}, []mapview.BrowserEventType{mapview.PointerUp}},
			{false, mapview.Pixel{5, 5}, []mapview.BrowserEventType{mapview.PointerMove}},
		})
	})

}

func TestDispatchOrder(t *testing.T) {
	m := newTestMap()
	log := []string{}
	first := &recorder{name: "first", proceed: true, log: &log}
	second := &recorder{name: "second", proceed: false, log: &log}
	third := &recorder{name: "third", proceed: true, log: &log}
	m.AddInteraction(first)
	m.AddInteraction(second)
	m.AddInteraction(third)

	clicks := 0
	h := m.OnClick(func(*mapview.BrowserEvent) { clicks++ })

	m.HandleBrowserEvent(&mapview.BrowserEvent{Type: mapview.Click})
	if !reflect.DeepEqual(log, []string{"third", "second"}) {
		t.Error("unexpected dispatch order:", log)
	}
	if clicks != 1 {
		t.Error("click listener not called")
	}

	if !m.RemoveInteraction(second) || m.RemoveInteraction(second) {
		t.Error("unexpected results removing interaction")
	}
	log = log[:0]
	h.Remove()
	m.HandleBrowserEvent(&mapview.BrowserEvent{Type: mapview.Click})
	if !reflect.DeepEqual(log, []string{"third", "first"}) {
		t.Error("unexpected dispatch order after removal:", log)
	}
	if clicks != 1 {
		t.Error("removed click listener called")
	}
}

func TestKeys(t *testing.T) {
	m := newTestMap()
	got := []input.Key{}
	h := m.OnKey(func(k input.Key) { got = append(got, k) })
	m.DispatchKey(input.Key{Ch: 'x'})
	h.Remove()
	m.DispatchKey(input.Key{Ch: 'y'})
	if len(got) != 1 || got[0].Ch != 'x' {
		t.Error("unexpected keys received:", got)
	}
}

func TestForEachFeatureAtPixel(t *testing.T) {
	m := newTestMap()
	bottom := &model.Feature{ID: "bottom", Geometry: orb.Point{0, 0}}
	top := &model.Feature{ID: "top", Geometry: orb.Point{0, 0}}
	other := &model.Feature{ID: "other", Geometry: orb.Point{5, 0}}
	m.AddLayer(&mapview.Layer{Source: providers.NewMemorySource(bottom, other)})
	m.AddLayer(&mapview.Layer{Source: providers.NewMemorySource(top)})

	center := m.View.PixelFromCoordinate(orb.Point{0, 0})

	if f := m.ForEachFeatureAtPixel(center, func(*model.Feature) bool { return true }); f != top {
		t.Error("expected topmost feature, got", f)
	}
	if f := m.ForEachFeatureAtPixel(center, func(f *model.Feature) bool { return f != top }); f != bottom {
		t.Error("expected filtered feature, got", f)
	}
	if f := m.ForEachFeatureAtPixel(mapview.Pixel{0, 0}, func(*model.Feature) bool { return true }); f != nil {
		t.Error("expected no feature, got", f)
	}
}
