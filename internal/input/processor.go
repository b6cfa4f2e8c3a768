package input

// Processor reacts to the keys it is bound to and can list its bindings.
type Processor interface {
	// ProcessInput feeds k to the processor and returns whether k was consumed,
	// either by completing a bound sequence or by extending a partial one.
	ProcessInput(k Key) bool

	// GetHelp returns the bindings of the processor.
	GetHelp() Help
}
