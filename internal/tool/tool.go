package tool

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/gxespino/timemann/internal/event"
	"github.com/gxespino/timemann/internal/model"
)

// Kind identifies a Tool variant.
type Kind int

const (
	KindStopwatch Kind = iota
	KindCountdown
	KindInfo
)

func (k Kind) String() string {
	switch k {
	case KindStopwatch:
		return "Stopwatch"
	case KindCountdown:
		return "Countdown"
	case KindInfo:
		return "Info"
	default:
		return "?"
	}
}

// View describes what a tool wants drawn. Timing tools fill Display and Mode;
// the info tool fills Markdown.
type View struct {
	Display  string
	Mode     model.Mode
	Markdown string
}

// Tool is one selectable tab. Exactly one of the variant pointers is set,
// matching kind. Copies of a Tool share the underlying state.
type Tool struct {
	kind      Kind
	stopwatch *Stopwatch
	countdown *Countdown
	info      *Info
}

func FromStopwatch(s *Stopwatch) Tool { return Tool{kind: KindStopwatch, stopwatch: s} }
func FromCountdown(c *Countdown) Tool { return Tool{kind: KindCountdown, countdown: c} }
func FromInfo(i *Info) Tool           { return Tool{kind: KindInfo, info: i} }

func (t Tool) Kind() Kind {
	return t.kind
}

// Title is the tab label.
func (t Tool) Title() string {
	if t.kind == KindInfo {
		return "About"
	}
	return t.kind.String()
}

// Stopwatch returns the stopwatch variant, or nil.
func (t Tool) Stopwatch() *Stopwatch { return t.stopwatch }

// Countdown returns the countdown variant, or nil.
func (t Tool) Countdown() *Countdown { return t.countdown }

// Mode is the tool's current mode. The info tool is always Stopped.
func (t Tool) Mode() model.Mode {
	switch t.kind {
	case KindStopwatch:
		return t.stopwatch.Mode()
	case KindCountdown:
		return t.countdown.Mode()
	}
	return model.ModeStopped
}

// Handle routes a tool-scoped message to the variant.
func (t Tool) Handle(msg event.Message) {
	switch t.kind {
	case KindStopwatch:
		t.stopwatch.Handle(msg)
	case KindCountdown:
		t.countdown.Handle(msg)
	}
}

// Expire re-evaluates time-dependent transitions and reports whether the
// tool just finished.
func (t Tool) Expire() bool {
	if t.kind == KindCountdown {
		return t.countdown.Expire()
	}
	return false
}

// View returns the render description.
func (t Tool) View() View {
	switch t.kind {
	case KindStopwatch:
		return t.stopwatch.view()
	case KindCountdown:
		return t.countdown.view()
	case KindInfo:
		return t.info.view()
	}
	return View{}
}

// Help returns the key bindings that currently apply to the tool.
func (t Tool) Help(km event.KeyMap) []key.Binding {
	switch t.kind {
	case KindStopwatch:
		return t.stopwatch.help(km)
	case KindCountdown:
		return t.countdown.help(km)
	}
	return nil
}
