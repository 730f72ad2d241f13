package event

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// DefaultRate is the tick frequency in Hz.
const DefaultRate = 60.0

// ErrInputClosed is returned when the input source ends. The terminal input
// stream lives as long as the program, so this is always fatal.
var ErrInputClosed = errors.New("input stream ended unexpectedly")

// Ticker is a periodic wakeup source.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTicker wraps a time.Ticker firing every period.
func NewTicker(period time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(period)}
}

// PeriodForRate converts a rate in Hz to a tick period. Non-positive rates
// fall back to DefaultRate.
func PeriodForRate(hz float64) time.Duration {
	if hz <= 0 {
		hz = DefaultRate
	}
	return time.Duration(float64(time.Second) / hz)
}

// Multiplexer merges the input source and the tick source into a single
// stream of Messages.
//
// Each Next call takes whichever source is ready first. A value not chosen
// stays buffered in its channel and competes again on the following call;
// the order between a simultaneously ready key and tick is unspecified.
type Multiplexer struct {
	input  <-chan Input
	ticker Ticker
	keys   KeyMap
}

// NewMultiplexer reads raw events from input and ticks from ticker.
func NewMultiplexer(input <-chan Input, ticker Ticker, keys KeyMap) *Multiplexer {
	return &Multiplexer{
		input:  input,
		ticker: ticker,
		keys:   keys,
	}
}

// Next blocks until one message is available. An ended or failing input
// source is returned as an error and is not retried: a closed input channel
// or an io.EOF Input yields ErrInputClosed.
func (m *Multiplexer) Next(ctx context.Context) (Message, error) {
	select {
	case <-ctx.Done():
		return Message{}, ctx.Err()

	case in, ok := <-m.input:
		if !ok {
			return Message{}, ErrInputClosed
		}
		if errors.Is(in.Err, io.EOF) {
			return Message{}, ErrInputClosed
		}
		if in.Err != nil {
			return Message{}, fmt.Errorf("read input: %w", in.Err)
		}
		return m.keys.Translate(in.Msg), nil

	case <-m.ticker.C():
		return Tick(), nil
	}
}

// Close stops the tick source.
func (m *Multiplexer) Close() {
	m.ticker.Stop()
}
