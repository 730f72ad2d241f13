package event

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// chanTicker is a Ticker driven by the test.
type chanTicker struct {
	ch      chan time.Time
	stopped bool
}

func newChanTicker() *chanTicker          { return &chanTicker{ch: make(chan time.Time, 1)} }
func (t *chanTicker) C() <-chan time.Time { return t.ch }
func (t *chanTicker) Stop()               { t.stopped = true }

func TestKeyMap_Translate(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		key  string
		want Message
	}{
		{"enter", ToggleStartPause()},
		{"tab", ChangeTab()},
		{"a", ChangeTab()},
		{"e", Edit()},
		{"q", Quit()},
		{"ctrl+c", Quit()},
		{"c", Clear()},
		{"0", SetNumber(0)},
		{"5", SetNumber(5)},
		{"9", SetNumber(9)},
		{"x", Tick()},
		{"esc", Tick()},
		{"E", Tick()},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, km.Translate(keyMsg(tt.key)))
		})
	}
}

func TestKeyMap_TranslateNonKeyIsTick(t *testing.T) {
	km := DefaultKeyMap()
	assert.Equal(t, Tick(), km.Translate(tea.WindowSizeMsg{Width: 80, Height: 24}))
	assert.Equal(t, Tick(), km.Translate(tea.FocusMsg{}))
}

func TestMessage_ToolScoped(t *testing.T) {
	scoped := []Message{ToggleStartPause(), Clear(), SetNumber(3), Edit()}
	global := []Message{ChangeTab(), Tick(), Quit()}
	for _, m := range scoped {
		assert.True(t, m.ToolScoped(), m.String())
	}
	for _, m := range global {
		assert.False(t, m.ToolScoped(), m.String())
	}
	assert.Equal(t, "SetNumber(3)", SetNumber(3).String())
}

func TestPeriodForRate(t *testing.T) {
	assert.Equal(t, time.Second/60, PeriodForRate(60))
	assert.Equal(t, 500*time.Millisecond, PeriodForRate(2))
	assert.Equal(t, PeriodForRate(DefaultRate), PeriodForRate(0))
}

func TestMultiplexer_InputEvent(t *testing.T) {
	input := make(chan Input, 1)
	mux := NewMultiplexer(input, newChanTicker(), DefaultKeyMap())

	input <- Input{Msg: keyMsg("7")}
	msg, err := mux.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SetNumber(7), msg)
}

func TestMultiplexer_Tick(t *testing.T) {
	ticker := newChanTicker()
	mux := NewMultiplexer(make(chan Input), ticker, DefaultKeyMap())

	ticker.ch <- time.Now()
	msg, err := mux.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Tick(), msg)
}

func TestMultiplexer_BothReadyNeitherDropped(t *testing.T) {
	input := make(chan Input, 1)
	ticker := newChanTicker()
	mux := NewMultiplexer(input, ticker, DefaultKeyMap())

	input <- Input{Msg: keyMsg("q")}
	ticker.ch <- time.Now()

	first, err := mux.Next(context.Background())
	require.NoError(t, err)
	second, err := mux.Next(context.Background())
	require.NoError(t, err)

	assert.ElementsMatch(t, []Message{Quit(), Tick()}, []Message{first, second})
}

func TestMultiplexer_InputClosedIsFatal(t *testing.T) {
	input := make(chan Input)
	close(input)
	mux := NewMultiplexer(input, newChanTicker(), DefaultKeyMap())

	_, err := mux.Next(context.Background())
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestMultiplexer_InputErrorIsFatal(t *testing.T) {
	boom := errors.New("read /dev/tty: input/output error")
	input := make(chan Input, 1)
	input <- Input{Err: boom}
	mux := NewMultiplexer(input, newChanTicker(), DefaultKeyMap())

	_, err := mux.Next(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestMultiplexer_ContextCancelled(t *testing.T) {
	mux := NewMultiplexer(make(chan Input), newChanTicker(), DefaultKeyMap())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mux.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMultiplexer_CloseStopsTicker(t *testing.T) {
	ticker := newChanTicker()
	mux := NewMultiplexer(make(chan Input), ticker, DefaultKeyMap())
	mux.Close()
	assert.True(t, ticker.stopped)
}

func TestQueue_DeliversInOrder(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	for _, k := range []string{"1", "2", "3"} {
		q.Push(Input{Msg: keyMsg(k)})
	}

	km := DefaultKeyMap()
	for _, want := range []uint8{1, 2, 3} {
		select {
		case in := <-q.C():
			assert.Equal(t, SetNumber(want), km.Translate(in.Msg))
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for queued input")
		}
	}
}

func TestQueue_CloseEndsStream(t *testing.T) {
	q := NewQueue()
	q.Close()
	q.Close()
	q.Push(Input{Msg: keyMsg("1")})

	select {
	case _, ok := <-q.C():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("queue channel not closed")
	}
}

func TestQueue_FeedsMultiplexer(t *testing.T) {
	q := NewQueue()
	mux := NewMultiplexer(q.C(), newChanTicker(), DefaultKeyMap())

	q.Push(Input{Msg: keyMsg("enter")})
	msg, err := mux.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ToggleStartPause(), msg)

	q.Close()
	_, err = mux.Next(context.Background())
	assert.ErrorIs(t, err, ErrInputClosed)
}
