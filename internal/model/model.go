package model

import (
	"fmt"
	"time"
)

// Mode is the current phase of a timing tool.
type Mode int

const (
	ModeStopped Mode = iota // not accumulating; elapsed time is frozen
	ModeRunning             // clock is accumulating
	ModeSetup               // countdown only: accepting digit entry
)

func (m Mode) String() string {
	switch m {
	case ModeStopped:
		return "Stopped"
	case ModeRunning:
		return "Running"
	case ModeSetup:
		return "Setup"
	default:
		return "?"
	}
}

// FormatDuration renders d as HH:MM:SS.mmm. Negative durations render as zero.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d.%03d",
		secs/3600,
		(secs/60)%60,
		secs%60,
		int64(d/time.Millisecond)%1000)
}
