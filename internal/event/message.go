package event

import "fmt"

// Kind identifies a Message variant.
type Kind int

const (
	KindTick Kind = iota
	KindToggleStartPause
	KindClear
	KindSetNumber
	KindEdit
	KindChangeTab
	KindQuit
)

func (k Kind) String() string {
	switch k {
	case KindTick:
		return "Tick"
	case KindToggleStartPause:
		return "ToggleStartPause"
	case KindClear:
		return "Clear"
	case KindSetNumber:
		return "SetNumber"
	case KindEdit:
		return "Edit"
	case KindChangeTab:
		return "ChangeTab"
	case KindQuit:
		return "Quit"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Message is one unit of input to the update loop. Digit is only meaningful
// for KindSetNumber. The zero value is a Tick.
type Message struct {
	Kind  Kind
	Digit uint8
}

func Tick() Message             { return Message{Kind: KindTick} }
func ToggleStartPause() Message { return Message{Kind: KindToggleStartPause} }
func Clear() Message            { return Message{Kind: KindClear} }
func Edit() Message             { return Message{Kind: KindEdit} }
func ChangeTab() Message        { return Message{Kind: KindChangeTab} }
func Quit() Message             { return Message{Kind: KindQuit} }

// SetNumber builds a digit-entry message. d must be 0-9.
func SetNumber(d uint8) Message {
	return Message{Kind: KindSetNumber, Digit: d}
}

// ToolScoped reports whether the message is routed to the active tool rather
// than handled by the loop itself.
func (m Message) ToolScoped() bool {
	switch m.Kind {
	case KindToggleStartPause, KindClear, KindSetNumber, KindEdit:
		return true
	}
	return false
}

func (m Message) String() string {
	if m.Kind == KindSetNumber {
		return fmt.Sprintf("SetNumber(%d)", m.Digit)
	}
	return m.Kind.String()
}
