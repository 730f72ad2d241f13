package event

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap binds terminal keys to messages. The help text doubles as the help
// descriptors shown in the footer.
type KeyMap struct {
	Toggle  key.Binding
	NextTab key.Binding
	Edit    key.Binding
	Digit   key.Binding
	Clear   key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		NextTab: key.NewBinding(key.WithKeys("tab", "a"), key.WithHelp("tab", "next tab")),
		Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit mode")),
		Digit: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "set time"),
		),
		Clear: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Translate maps a raw terminal event to a Message. Unbound keys and non-key
// events (resize, focus) become a Tick so they still trigger a redraw.
func (km KeyMap) Translate(msg tea.Msg) Message {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return Tick()
	}

	switch {
	case key.Matches(k, km.Toggle):
		return ToggleStartPause()
	case key.Matches(k, km.NextTab):
		return ChangeTab()
	case key.Matches(k, km.Edit):
		return Edit()
	case key.Matches(k, km.Digit):
		return SetNumber(k.String()[0] - '0')
	case key.Matches(k, km.Quit):
		return Quit()
	case key.Matches(k, km.Clear):
		return Clear()
	}
	return Tick()
}
