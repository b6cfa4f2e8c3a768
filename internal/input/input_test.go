package input_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/featedit/internal/control/action"
	"github.com/ja-he/featedit/internal/input"
)

func TestConfigKeyspecToKeys(t *testing.T) {

	t.Run("valid", func(t *testing.T) {
		type testcase struct {
			spec     input.Keyspec
			expected []input.Key
		}
		for _, tc := range []testcase{
			{"", []input.Key{}},
			{"q", []input.Key{{Key: tcell.KeyRune, Ch: 'q'}}},
			{"<del>", []input.Key{{Key: tcell.KeyDelete}}},
			{"<DEL>", []input.Key{{Key: tcell.KeyDelete}}},
			{"<c-w>", []input.Key{{Key: tcell.KeyCtrlW}}},
			{"<space>+", []input.Key{{Key: tcell.KeyRune, Ch: ' '}, {Key: tcell.KeyRune, Ch: '+'}}},
			{"x<up>z", []input.Key{{Key: tcell.KeyRune, Ch: 'x'}, {Key: tcell.KeyUp}, {Key: tcell.KeyRune, Ch: 'z'}}},
		} {
			keys, err := input.ConfigKeyspecToKeys(tc.spec)
			if err != nil {
				t.Errorf("unexpected error on valid spec '%s': %s", tc.spec, err.Error())
				continue
			}
			if len(keys) != len(tc.expected) {
				t.Errorf("spec '%s' yields %d keys instead of %d", tc.spec, len(keys), len(tc.expected))
				continue
			}
			for i := range keys {
				if keys[i] != tc.expected[i] {
					t.Errorf("spec '%s' key #%d is %s", tc.spec, i, keys[i].ToDebugString())
				}
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, spec := range []input.Keyspec{"c-w>", "<c-w", "<c-w<c-a>", "<c+a>", "<nope>"} {
			keys, err := input.ConfigKeyspecToKeys(spec)
			if err == nil {
				t.Errorf("unexpectedly no err on invalid spec '%s'", spec)
			}
			if keys != nil {
				t.Error("unexpected key seq on invalid spec:", keys)
			}
		}
	})

}

func TestToConfigIdentifierString(t *testing.T) {
	if s := input.ToConfigIdentifierString(input.Key{Key: tcell.KeyDelete}); s != "<del>" {
		t.Error("unexpected identifier for delete:", s)
	}
	if s := input.ToConfigIdentifierString(input.Key{Key: tcell.KeyCtrlZ}); s != "<c-z>" {
		t.Error("unexpected identifier for ctrl-z:", s)
	}
	if s := input.ToConfigIdentifierString(input.Key{Key: tcell.KeyRune, Ch: 'm'}); s != "m" {
		t.Error("unexpected identifier for m:", s)
	}
}

func TestTree(t *testing.T) {

	ch := func(r rune) input.Key { return input.Key{Key: tcell.KeyRune, Ch: r} }

	t.Run("delete binding", func(t *testing.T) {
		deleted := 0
		tree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
			"<del>": action.New("delete the edited feature", func() { deleted++ }),
		})
		if err != nil {
			t.Fatal(err.Error())
		}
		if tree.ProcessInput(ch('x')) || deleted != 0 {
			t.Error("unbound key was consumed")
		}
		if !tree.ProcessInput(input.Key{Key: tcell.KeyDelete}) || deleted != 1 {
			t.Error("delete key did not delete")
		}
		if !tree.ProcessInput(input.Key{Key: tcell.KeyDelete}) || deleted != 2 {
			t.Error("delete key did not delete a second time")
		}
	})

	t.Run("sequences", func(t *testing.T) {
		in, out := 0, 0
		tree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
			"zi": action.New("zoom in", func() { in++ }),
			"zo": action.New("zoom out", func() { out++ }),
		})
		if err != nil {
			t.Fatal(err.Error())
		}
		if !tree.ProcessInput(ch('z')) || in+out != 0 {
			t.Error("partial sequence not consumed or ran an action")
		}
		if !tree.ProcessInput(ch('i')) || in != 1 {
			t.Error("zi did not zoom in")
		}
		if tree.ProcessInput(ch('o')) || out != 0 {
			t.Error("o alone must not zoom out")
		}
		tree.ProcessInput(ch('z'))
		if tree.ProcessInput(ch('x')) {
			t.Error("key continuing no sequence was consumed")
		}
		if tree.Current != tree.Root {
			t.Error("abandoned sequence was not reset")
		}
		if !tree.ProcessInput(ch('z')) || !tree.ProcessInput(ch('o')) || out != 1 {
			t.Error("zo did not zoom out after an abandoned sequence")
		}
	})

	t.Run("invalid bindings", func(t *testing.T) {
		nop := action.New("", func() {})
		for _, bindings := range []map[input.Keyspec]action.Action{
			{"<asdf": nop},
			{"": nop},
			{"z": nop, "zi": nop},
		} {
			tree, err := input.ConstructInputTree(bindings)
			if err == nil || tree != nil {
				t.Error("expected error and nil tree for", bindings)
			}
		}
	})

	t.Run("help", func(t *testing.T) {
		tree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
			"<del>": action.New("delete the edited feature", func() {}),
			"zi":    action.New("zoom in", func() {}),
		})
		if err != nil {
			t.Fatal(err.Error())
		}
		help := tree.GetHelp()
		if len(help) != 2 || help["<del>"] != "delete the edited feature" || help["zi"] != "zoom in" {
			t.Error("unexpected help:", help)
		}
		empty, err := input.ConstructInputTree(nil)
		if err != nil || len(empty.GetHelp()) != 0 {
			t.Error("tree without bindings has help entries")
		}
	})

}
