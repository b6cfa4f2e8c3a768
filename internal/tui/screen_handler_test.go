package tui_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/featedit/internal/styling"
	"github.com/ja-he/featedit/internal/tui"
)

func TestScreenHandler(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := tui.NewScreenHandler(sim)
	if err != nil {
		t.Fatal("could not set up simulation screen:", err)
	}
	defer s.Fini()
	sim.SetSize(10, 3)

	style := styling.Entry{Bold: true}
	s.DrawBox(0, 0, 10, 3, style)
	s.DrawText(1, 1, 3, 1, style, "abcdef")
	s.DrawCell(9, 2, '@', style)
	s.NeedsSync()
	s.Show()

	for x, expected := range "abc" {
		if r, _, _, _ := sim.GetContent(1+x, 1); r != expected {
			t.Errorf("expected '%c' at %d, got '%c'", expected, 1+x, r)
		}
	}
	if r, _, _, _ := sim.GetContent(4, 1); r != ' ' {
		t.Errorf("text not cut at width, got '%c'", r)
	}
	if r, _, st, _ := sim.GetContent(9, 2); r != '@' || st != style.AsTcell() {
		t.Error("cell not drawn as expected")
	}

	_, _, w, h := s.Dimensions()
	if w != 10 || h != 3 {
		t.Error("unexpected dimensions", w, h)
	}
}
