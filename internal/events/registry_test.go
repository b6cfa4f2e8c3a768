package events_test

import (
	"testing"

	"github.com/ja-he/featedit/internal/events"
)

func TestRegistry(t *testing.T) {

	t.Run("Emit calls listeners in order", func(t *testing.T) {
		r := events.Registry[int]{}
		got := []int{}
		r.On(func(i int) { got = append(got, i) })
		r.On(func(i int) { got = append(got, i*10) })
		r.Emit(2)
		if len(got) != 2 || got[0] != 2 || got[1] != 20 {
			t.Error("unexpected listener calls:", got)
		}
	})

	t.Run("Remove", func(t *testing.T) {
		r := events.Registry[string]{}
		calls := 0
		h := r.On(func(string) { calls++ })
		r.Emit("a")
		h.Remove()
		h.Remove()
		r.Emit("b")
		if calls != 1 {
			t.Error("removed listener still called, calls:", calls)
		}
		if r.Len() != 0 {
			t.Error("registry still holds listeners:", r.Len())
		}
	})

	t.Run("zero handle", func(t *testing.T) {
		var h events.Handle
		h.Remove()
	})

	t.Run("removal while emitting", func(t *testing.T) {
		r := events.Registry[int]{}
		calls := 0
		var h events.Handle
		h = r.On(func(int) { calls++; h.Remove() })
		r.On(func(int) { calls++ })
		r.Emit(1)
		r.Emit(1)
		if calls != 3 {
			t.Error("expected 3 calls, got", calls)
		}
	})

}
