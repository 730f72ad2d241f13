package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gxespino/timemann/internal/config"
	"github.com/gxespino/timemann/internal/event"
	"github.com/gxespino/timemann/internal/logging"
	"github.com/gxespino/timemann/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestRootCmd_NoCompletionCommand(t *testing.T) {
	cmd := newRootCmd()
	cmd.InitDefaultCompletionCmd()
	for _, c := range cmd.Commands() {
		assert.NotEqual(t, "completion", c.Name())
	}
}

func TestNewNotifier_DisabledIsNop(t *testing.T) {
	var bell syncBuffer
	n := newNotifier(config.Notifications{}, &bell, logging.NewNop())

	require.NoError(t, n.Notify(context.Background(), notify.CountdownFinished))
	time.Sleep(10 * time.Millisecond)
	assert.Empty(t, bell.String())
}

func TestNewNotifier_BellOnly(t *testing.T) {
	var bell syncBuffer
	n := newNotifier(config.Notifications{Bell: true, Timeout: time.Second}, &bell, logging.NewNop())

	require.NoError(t, n.Notify(context.Background(), notify.CountdownFinished))
	assert.Eventually(t, func() bool { return bell.String() == "\a" },
		time.Second, 5*time.Millisecond)
}

func testSession(input string) session {
	cfg := config.Default()
	cfg.Notifications = config.Notifications{}
	return session{
		cfg:           cfg,
		logger:        logging.NewNop(),
		input:         strings.NewReader(input),
		output:        io.Discard,
		bell:          io.Discard,
		markdownStyle: "notty",
	}
}

func TestServe_QuitKeyEndsCleanly(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := serve(ctx, testSession("a5q"))
	assert.NoError(t, err)
}

func TestServe_InputEndIsFatal(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := serve(ctx, testSession("a5"))
	require.Error(t, err)
	assert.ErrorIs(t, err, event.ErrInputClosed)
}
