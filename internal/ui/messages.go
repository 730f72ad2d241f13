package ui

import "github.com/gxespino/timemann/internal/engine"

// frameMsg carries the next screen description from the update loop.
type frameMsg struct {
	frame engine.Frame
}

// exitMsg reports that the update loop returned. A nil err means the user
// quit.
type exitMsg struct {
	err error
}
