// Package action provides the actions that key bindings map to.
package action

// Action is something that can be done in response to input and explained to
// the user, e.g. in a list of key bindings.
type Action interface {
	Do()
	Explain() string
}

// Func is an Action running a function, described by a fixed explanation.
type Func struct {
	explanation string
	fn          func()
}

// New returns an action running fn, explained by explanation.
func New(explanation string, fn func()) *Func {
	return &Func{explanation: explanation, fn: fn}
}

// Do runs the function; a nil function does nothing.
func (a *Func) Do() {
	if a.fn != nil {
		a.fn()
	}
}

// Explain returns the explanation given on construction.
func (a *Func) Explain() string { return a.explanation }
