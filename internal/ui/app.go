package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gxespino/timemann/internal/engine"
	"github.com/gxespino/timemann/internal/event"
)

// InputSink receives raw terminal events for the update loop.
// *event.Queue implements it.
type InputSink interface {
	Push(event.Input)
}

// Options wires the App to the update loop.
type Options struct {
	Frames <-chan engine.Frame
	Exit   <-chan error
	Input  InputSink
	// MarkdownStyle is a glamour standard style name ("dark", "light", "notty").
	MarkdownStyle string
}

// App is the top-level Bubble Tea model. It owns no timer state: it forwards
// terminal input to the update loop and draws whatever frame the loop last
// published.
type App struct {
	frames <-chan engine.Frame
	exit   <-chan error
	input  InputSink

	frame    engine.Frame
	hasFrame bool
	help     help.Model
	markdown *markdownRenderer
	width    int
	height   int
	err      error
}

// NewApp creates a new App.
func NewApp(opts Options) App {
	h := help.New()
	h.ShortSeparator = "  "

	return App{
		frames:   opts.Frames,
		exit:     opts.Exit,
		input:    opts.Input,
		help:     h,
		markdown: newMarkdownRenderer(opts.MarkdownStyle),
	}
}

// Err is the error the update loop ended with, if any.
func (a App) Err() error {
	return a.err
}

func (a App) Init() tea.Cmd {
	return tea.Batch(waitForFrame(a.frames), waitForExit(a.exit))
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		a.input.Push(event.Input{Msg: msg})
		return a, nil

	// End of input, sent by the input reader behind the keys it already
	// delivered.
	case event.Input:
		a.input.Push(msg)
		return a, nil

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width - 4
		a.input.Push(event.Input{Msg: msg})
		return a, nil

	case frameMsg:
		a.frame = msg.frame
		a.hasFrame = true
		return a, waitForFrame(a.frames)

	case exitMsg:
		a.err = msg.err
		return a, tea.Quit
	}
	return a, nil
}

func (a App) View() string {
	if !a.hasFrame {
		return ""
	}

	innerWidth := a.width - 2
	innerHeight := a.height - 2

	header := renderHeader(a.frame, innerWidth)
	footer := footerStyle.Render(a.help.ShortHelpView(a.frame.Help))

	var errLine string
	if a.err != nil {
		errLine = errorStyle.Render("Error: " + a.err.Error())
	}

	bodyHeight := innerHeight - lipgloss.Height(header) - lipgloss.Height(footer)
	if errLine != "" {
		bodyHeight -= lipgloss.Height(errLine)
	}
	body := a.renderBody(innerWidth, bodyHeight)

	parts := []string{header, body}
	if errLine != "" {
		parts = append(parts, errLine)
	}
	parts = append(parts, footer)
	content := strings.Join(parts, "\n")

	if a.width <= 2 || a.height <= 2 {
		return content
	}
	return borderStyle.Width(innerWidth).Height(innerHeight).Render(content)
}

func (a App) renderBody(width, height int) string {
	var body string
	switch v := a.frame.Body; {
	case v.Markdown != "":
		body = a.markdown.render(v.Markdown, width-4)
	case v.Display != "":
		text := v.Display
		if big := bigText(text); lipgloss.Width(big) <= width-4 {
			text = big
		}
		body = timerStyle(v.Mode).Render(text)
	}

	if width <= 0 || height <= 0 {
		return body
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
