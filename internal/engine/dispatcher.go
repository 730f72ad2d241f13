package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/gxespino/timemann/internal/clock"
	"github.com/gxespino/timemann/internal/event"
	"github.com/gxespino/timemann/internal/logging"
	"github.com/gxespino/timemann/internal/notify"
	"github.com/gxespino/timemann/internal/tool"
)

const appTitle = "timemann"

// MessageSource yields the merged message stream. *event.Multiplexer
// implements it.
type MessageSource interface {
	Next(ctx context.Context) (event.Message, error)
}

// Config wires a Dispatcher to its collaborators. Registry, Messages and
// Renderer are required.
type Config struct {
	Registry *tool.Registry
	Messages MessageSource
	Renderer Renderer
	Notifier notify.Notifier
	Keys     event.KeyMap
	Clock    clock.Source
	Logger   *slog.Logger
}

// Dispatcher is the update loop: it takes one message at a time, applies it
// to global state or the active tool, and renders after every message.
type Dispatcher struct {
	registry *tool.Registry
	messages MessageSource
	renderer Renderer
	notifier notify.Notifier
	keys     event.KeyMap
	fps      *FPSCounter
	log      *slog.Logger
}

// New creates a Dispatcher. Missing optional collaborators get defaults.
func New(cfg Config) (*Dispatcher, error) {
	if cfg.Registry == nil || cfg.Messages == nil || cfg.Renderer == nil {
		return nil, errors.New("engine: registry, messages and renderer are required")
	}
	if cfg.Notifier == nil {
		cfg.Notifier = notify.Nop
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNop()
	}
	if len(cfg.Keys.Toggle.Keys()) == 0 {
		cfg.Keys = event.DefaultKeyMap()
	}

	return &Dispatcher{
		registry: cfg.Registry,
		messages: cfg.Messages,
		renderer: cfg.Renderer,
		notifier: cfg.Notifier,
		keys:     cfg.Keys,
		fps:      NewFPSCounter(cfg.Clock),
		log:      cfg.Logger,
	}, nil
}

// Run renders the initial frame and then processes messages until Quit,
// returning nil. Input-source and render failures end the loop with an
// error.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.log.Info("update loop started", "tools", d.registry.Titles())

	if err := d.Render(ctx); err != nil {
		return err
	}
	for {
		msg, err := d.messages.Next(ctx)
		if err != nil {
			return fmt.Errorf("next message: %w", err)
		}

		quit := d.Apply(msg)

		if err := d.Render(ctx); err != nil {
			return err
		}
		if quit {
			d.log.Info("update loop finished")
			return nil
		}
	}
}

// Apply handles one message and reports whether the loop should stop.
func (d *Dispatcher) Apply(msg event.Message) (quit bool) {
	switch msg.Kind {
	case event.KindChangeTab:
		d.registry.Advance()
		d.log.Debug("tab changed", "tool", d.registry.Current().Title())
	case event.KindTick:
		d.fps.Tick()
	case event.KindQuit:
		return true
	default:
		if d.registry.Dispatch(msg) {
			cur := d.registry.Current()
			d.log.Debug("message handled", "tool", cur.Title(), "msg", msg.String(), "mode", cur.Mode().String())
		}
	}
	return false
}

// Render re-evaluates time-dependent transitions and hands one frame to the
// renderer.
func (d *Dispatcher) Render(ctx context.Context) error {
	for _, t := range d.registry.Expire() {
		d.log.Info("countdown finished", "tool", t.Title())
		if err := d.notifier.Notify(ctx, notify.CountdownFinished); err != nil {
			d.log.Warn("notification failed", "error", err)
		}
	}

	if err := d.renderer.Render(ctx, d.Frame()); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}
	return nil
}

// Frame builds the current screen description. Help lists the global tab
// binding, then the active tool's bindings, then quit.
func (d *Dispatcher) Frame() Frame {
	cur := d.registry.Current()

	help := []key.Binding{d.keys.NextTab}
	help = append(help, cur.Help(d.keys)...)
	help = append(help, d.keys.Quit)

	return Frame{
		Title:  appTitle,
		Tabs:   d.registry.Titles(),
		Active: d.registry.Index(),
		FPS:    d.fps.FPS(),
		Body:   cur.View(),
		Help:   help,
	}
}
