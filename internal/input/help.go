package input

// Help maps input sequences to explanations of what they do.
type Help = map[string]string

// GetHelp returns the input help map for this tree.
func (t *Tree) GetHelp() Help {
	return t.Root.GetHelp()
}

// GetHelp returns the input help map for the subtree at this node.
func (n *Node) GetHelp() Help {
	result := Help{}

	if n.Action != nil {
		result[""] = n.Action.Explain()
	} else {
		for k, c := range n.Children {
			for partialCombo, action := range c.GetHelp() {
				result[ToConfigIdentifierString(k)+partialCombo] = action
			}
		}
	}

	return result
}
