package input

import (
	"github.com/ja-he/featedit/internal/control/action"
)

// Node is a node in a Tree: either an inner node with children or a leaf with
// an action, never both.
type Node struct {
	Children map[Key]*Node
	Action   action.Action
}

// Child returns the child reached by k, or nil.
func (n *Node) Child(k Key) *Node {
	return n.Children[k]
}

// NewNode returns a pointer to a new node without children or action.
func NewNode() *Node {
	return &Node{Children: make(map[Key]*Node)}
}
