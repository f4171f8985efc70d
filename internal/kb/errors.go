package kb

import "errors"

var (
	// ErrEmptyInput is returned when a snippet is added with no text.
	ErrEmptyInput = errors.New("knowledge text is empty")

	// ErrNotFound is returned when a tag has no stored snippet.
	ErrNotFound = errors.New("tag not found")

	// ErrEmptyUndo is returned when there is no deletion to undo.
	ErrEmptyUndo = errors.New("nothing to undo")
)
