// Package action provides the Action interface and implementations for
// actions triggerable, e.g., by user input.
package action

// An Action is anything that can be performed, potentially undone, and --
// primarily for help views -- explain itself.
type Action interface {
	// Do performs this action.
	Do()

	// Undoable indicates whether this action can be undone.
	Undoable() bool

	// Undo undoes this action, if it is undoable (and does nothing otherwise).
	Undo()

	// Explain returns a human-readable explanation of what Do does.
	Explain() string
}
