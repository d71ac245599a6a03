package editor

import "errors"

var (
	// ErrNotDragging is returned by OnDrop when no drag is in progress.
	ErrNotDragging = errors.New("editor: nothing is being dragged")
	// ErrUnknownField is returned when an internal name is not on the form.
	ErrUnknownField = errors.New("editor: unknown field")
	// ErrNothingToUndo is returned by Undo on an empty history.
	ErrNothingToUndo = errors.New("editor: nothing to undo")
	// ErrNothingToRedo is returned by Redo when no undone change is pending.
	ErrNothingToRedo = errors.New("editor: nothing to redo")
	// ErrSessionNotFound is returned by Store lookups for unknown ids.
	ErrSessionNotFound = errors.New("editor: session not found")
)
