package tool

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/gxespino/timemann/internal/clock"
	"github.com/gxespino/timemann/internal/event"
	"github.com/gxespino/timemann/internal/model"
)

// Countdown counts down from a target entered digit by digit.
//
// It starts in Setup. Digits are only accepted in Setup, and the countdown
// can only run once a non-zero target has been entered.
type Countdown struct {
	mode     model.Mode
	clock    *clock.Clock
	entry    Accumulator
	canStart bool
}

// NewCountdown returns a countdown in Setup with no target.
func NewCountdown(src clock.Source) *Countdown {
	return &Countdown{
		mode:  model.ModeSetup,
		clock: clock.New(src),
	}
}

func (c *Countdown) Mode() model.Mode {
	return c.mode
}

// CanStart reports whether a non-zero target has been entered.
func (c *Countdown) CanStart() bool {
	return c.canStart
}

func (c *Countdown) Target() time.Duration {
	return c.entry.Target()
}

// Slot is the entry position the next digit will fill.
func (c *Countdown) Slot() int {
	return c.entry.Slot()
}

// Remaining is the time left, clamped at zero.
func (c *Countdown) Remaining() time.Duration {
	left := c.entry.Target() - c.clock.Elapsed()
	if left < 0 {
		return 0
	}
	return left
}

// Handle applies a tool-scoped message. Messages that do not apply in the
// current mode are ignored.
func (c *Countdown) Handle(msg event.Message) {
	switch msg.Kind {
	case event.KindToggleStartPause:
		c.toggle()
	case event.KindClear:
		c.clear()
	case event.KindSetNumber:
		c.setNumber(msg.Digit)
	case event.KindEdit:
		c.edit()
	}
}

// Expire stops and clears a running countdown whose time is up. It returns
// true only on the pass that detects the expiry.
func (c *Countdown) Expire() bool {
	if c.mode != model.ModeRunning {
		return false
	}
	if c.clock.Elapsed() < c.entry.Target() {
		return false
	}
	c.stop()
	c.clear()
	return true
}

func (c *Countdown) toggle() {
	if !c.canStart {
		return
	}
	if c.mode == model.ModeRunning {
		c.stop()
		return
	}
	c.clock.Start()
	c.mode = model.ModeRunning
}

func (c *Countdown) stop() {
	c.clock.Pause()
	c.mode = model.ModeStopped
}

func (c *Countdown) clear() {
	if c.mode == model.ModeRunning {
		return
	}
	c.entry.Reset()
	c.clock.Reset()
	c.updateCanStart()
}

// edit always lands in Setup with an empty entry, whatever the current mode.
func (c *Countdown) edit() {
	c.stop()
	c.clear()
	c.mode = model.ModeSetup
	c.canStart = false
}

func (c *Countdown) setNumber(digit uint8) {
	if c.mode != model.ModeSetup {
		return
	}
	c.entry.Feed(digit)
	c.updateCanStart()
}

func (c *Countdown) updateCanStart() {
	c.canStart = !c.entry.IsZero()
}

func (c *Countdown) view() View {
	return View{
		Display: model.FormatDuration(c.Remaining()),
		Mode:    c.mode,
	}
}

func (c *Countdown) help(km event.KeyMap) []key.Binding {
	var bindings []key.Binding

	if c.canStart {
		toggle := km.Toggle
		if c.mode == model.ModeRunning {
			toggle.SetHelp("enter", "pause")
		} else {
			toggle.SetHelp("enter", "start")
		}
		bindings = append(bindings, toggle)
	}
	if c.mode != model.ModeSetup {
		bindings = append(bindings, km.Edit)
	}
	if c.mode == model.ModeSetup {
		bindings = append(bindings, km.Digit)
		if !c.entry.IsZero() {
			bindings = append(bindings, km.Clear)
		}
	}
	return bindings
}
