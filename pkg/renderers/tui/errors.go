package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoControls is returned by Run when nothing editable was appended.
	ErrNoControls = errors.New("tui: no editable controls")
	// ErrInvalidPosition reports slider input outside the control range.
	ErrInvalidPosition = errors.New("tui: invalid slider position")
)
