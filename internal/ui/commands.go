package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gxespino/timemann/internal/engine"
)

// waitForFrame blocks until the update loop publishes a frame.
func waitForFrame(frames <-chan engine.Frame) tea.Cmd {
	return func() tea.Msg {
		return frameMsg{frame: <-frames}
	}
}

// waitForExit blocks until the update loop returns.
func waitForExit(exit <-chan error) tea.Cmd {
	return func() tea.Msg {
		return exitMsg{err: <-exit}
	}
}

// FrameSink is the engine.Renderer backed by the bubbletea program. Render
// blocks until the program has taken the frame, so a slow terminal holds the
// loop back instead of dropping frames.
type FrameSink struct {
	frames chan<- engine.Frame
}

func NewFrameSink(frames chan<- engine.Frame) FrameSink {
	return FrameSink{frames: frames}
}

func (s FrameSink) Render(ctx context.Context, f engine.Frame) error {
	select {
	case s.frames <- f:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
