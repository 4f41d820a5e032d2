package tui

import "errors"

var (
	// ErrAborted is returned when the operator interrupts a prompt (Ctrl+C)
	// or picks "Sair" on a page.
	ErrAborted = errors.New("tui: aborted")
	// ErrNoDriver is returned by Run when no prompt driver is configured.
	ErrNoDriver = errors.New("tui: prompt driver is nil")
)
