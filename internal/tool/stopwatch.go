package tool

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/gxespino/timemann/internal/clock"
	"github.com/gxespino/timemann/internal/event"
	"github.com/gxespino/timemann/internal/model"
)

// Stopwatch is the open-ended timer. It alternates between Stopped and
// Running and can only be cleared while stopped.
type Stopwatch struct {
	mode  model.Mode
	clock *clock.Clock
}

// NewStopwatch returns a stopped, zeroed stopwatch.
func NewStopwatch(src clock.Source) *Stopwatch {
	return &Stopwatch{
		mode:  model.ModeStopped,
		clock: clock.New(src),
	}
}

func (s *Stopwatch) Mode() model.Mode {
	return s.mode
}

func (s *Stopwatch) Elapsed() time.Duration {
	return s.clock.Elapsed()
}

// Handle applies a tool-scoped message. Messages that do not apply are
// ignored.
func (s *Stopwatch) Handle(msg event.Message) {
	switch msg.Kind {
	case event.KindToggleStartPause:
		s.toggle()
	case event.KindClear:
		s.clear()
	}
}

func (s *Stopwatch) toggle() {
	if s.mode == model.ModeStopped {
		s.clock.Start()
		s.mode = model.ModeRunning
		return
	}
	s.clock.Pause()
	s.mode = model.ModeStopped
}

func (s *Stopwatch) clear() {
	if s.mode == model.ModeStopped {
		s.clock.Reset()
	}
}

func (s *Stopwatch) view() View {
	return View{
		Display: model.FormatDuration(s.clock.Elapsed()),
		Mode:    s.mode,
	}
}

func (s *Stopwatch) help(km event.KeyMap) []key.Binding {
	toggle := km.Toggle
	if s.mode == model.ModeStopped {
		toggle.SetHelp("enter", "start")
	} else {
		toggle.SetHelp("enter", "pause")
	}

	bindings := []key.Binding{toggle}
	if s.mode == model.ModeStopped && s.clock.Elapsed() > 0 {
		bindings = append(bindings, km.Clear)
	}
	return bindings
}
