package input

import (
	"fmt"

	"github.com/ja-he/featedit/internal/control/action"
)

// Tree dispatches key sequences to actions. Each bound sequence is a path from
// the root to a leaf carrying the action, so "zi" and "zo" share the node
// reached by 'z'.
type Tree struct {
	Root *Node

	// Current is the node reached by the keys of a partially entered sequence;
	// it is Root when no sequence is in progress.
	Current *Node
}

// ProcessInput advances the tree by k. Completing a sequence runs its action.
// A key that continues no sequence abandons the partial one and is not
// consumed.
func (t *Tree) ProcessInput(k Key) bool {
	next := t.Current.Child(k)
	if next == nil {
		t.Current = t.Root
		return false
	}
	if next.Action == nil {
		t.Current = next
		return true
	}
	t.Current = t.Root
	next.Action.Do()
	return true
}

// ConstructInputTree builds a Tree from key bindings.
// It fails on an empty or invalid keyspec and on a binding that is a prefix of
// another, since the shorter one would make the longer unreachable.
func ConstructInputTree(bindings map[Keyspec]action.Action) (*Tree, error) {
	root := NewNode()
	for spec, a := range bindings {
		keys, err := ConfigKeyspecToKeys(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid keyspec '%s': %w", spec, err)
		}
		if len(keys) == 0 {
			return nil, fmt.Errorf("empty keyspec")
		}
		if err := root.insert(keys, a); err != nil {
			return nil, fmt.Errorf("cannot bind '%s': %w", spec, err)
		}
	}
	return &Tree{Root: root, Current: root}, nil
}

func (n *Node) insert(keys []Key, a action.Action) error {
	if n.Action != nil {
		return fmt.Errorf("a prefix is already bound")
	}
	if len(keys) == 0 {
		if len(n.Children) > 0 {
			return fmt.Errorf("a longer sequence is already bound")
		}
		n.Action = a
		return nil
	}
	child, ok := n.Children[keys[0]]
	if !ok {
		child = NewNode()
		n.Children[keys[0]] = child
	}
	return child.insert(keys[1:], a)
}
