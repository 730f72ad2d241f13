package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gxespino/timemann/internal/clock"
	"github.com/gxespino/timemann/internal/config"
	"github.com/gxespino/timemann/internal/engine"
	"github.com/gxespino/timemann/internal/event"
	"github.com/gxespino/timemann/internal/logging"
	"github.com/gxespino/timemann/internal/notify"
	"github.com/gxespino/timemann/internal/tool"
	"github.com/gxespino/timemann/internal/ui"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const appName = "timemann"

var errNotTerminal = errors.New("stdin is not a terminal")

func run(ctx context.Context) (err error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeLog(); cerr != nil && err == nil {
			err = fmt.Errorf("close log: %w", cerr)
		}
	}()

	// Must be queried before Bubble Tea takes over the terminal.
	style := "light"
	if termenv.NewOutput(os.Stdout).HasDarkBackground() {
		style = "dark"
	}

	return serve(ctx, session{
		cfg:           cfg,
		logger:        logger,
		input:         os.Stdin,
		output:        os.Stdout,
		bell:          os.Stderr,
		markdownStyle: style,
	})
}

// session is everything serve needs from the environment.
type session struct {
	cfg           config.Config
	logger        *slog.Logger
	input         io.Reader
	output        io.Writer
	bell          io.Writer
	markdownStyle string
}

// serve wires the input queue, ticker, multiplexer, tools and dispatcher to a
// Bubble Tea program and runs until the update loop ends. Input ending or
// failing is fatal.
func serve(ctx context.Context, s session) error {
	queue := event.NewQueue()
	defer queue.Close()

	keys := event.DefaultKeyMap()
	mux := event.NewMultiplexer(queue.C(), event.NewTicker(event.PeriodForRate(s.cfg.FPS)), keys)
	defer mux.Close()

	frames := make(chan engine.Frame)
	exit := make(chan error, 1)

	d, err := engine.New(engine.Config{
		Registry: tool.DefaultRegistry(clock.System),
		Messages: mux,
		Renderer: ui.NewFrameSink(frames),
		Notifier: newNotifier(s.cfg.Notifications, s.bell, s.logger),
		Keys:     keys,
		Clock:    clock.System,
		Logger:   s.logger,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app := ui.NewApp(ui.Options{
		Frames:        frames,
		Exit:          exit,
		Input:         queue,
		MarkdownStyle: s.markdownStyle,
	})

	// The end of input travels through the program so it stays behind the
	// keys read before it.
	var p *tea.Program
	input := event.NewInputReader(s.input, func(in event.Input) {
		s.logger.Info("input ended", "error", in.Err)
		p.Send(in)
	})
	p = tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(input),
		tea.WithOutput(s.output),
	)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("update loop panicked", "panic", r)
				exit <- fmt.Errorf("update loop panicked: %v", r)
			}
		}()
		exit <- d.Run(ctx)
	}()

	final, err := p.Run()
	queue.Close()
	cancel()
	if err != nil {
		return fmt.Errorf("run terminal: %w", err)
	}

	if a, ok := final.(ui.App); ok {
		return a.Err()
	}
	return nil
}

// newNotifier builds the countdown-finished fan-out from the notification
// settings. Desktop delivery tries D-Bus first and falls back to the
// platform's notification command.
func newNotifier(cfg config.Notifications, bell io.Writer, logger *slog.Logger) notify.Notifier {
	var channels []notify.Notifier
	if cfg.Desktop {
		channels = append(channels, notify.First(
			notify.DBus{AppName: appName, ExpireMillis: -1},
			notify.Command{AppName: appName},
		))
	}
	if cfg.Bell {
		channels = append(channels, notify.Bell{W: bell})
	}
	if len(channels) == 0 {
		return notify.Nop
	}
	return notify.Async(notify.All(channels...), cfg.Timeout, logger)
}
