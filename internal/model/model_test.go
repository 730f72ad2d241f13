package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestModeString(t *testing.T) {
	assert.Equal(t, "Stopped", ModeStopped.String())
	assert.Equal(t, "Running", ModeRunning.String())
	assert.Equal(t, "Setup", ModeSetup.String())
	assert.Equal(t, "?", Mode(99).String())
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00.000"},
		{999 * time.Millisecond, "00:00:00.999"},
		{201 * time.Second, "00:03:21.000"},
		{time.Hour + 2*time.Minute + 3*time.Second + 45*time.Millisecond, "01:02:03.045"},
		{100 * time.Hour, "100:00:00.000"},
		{-time.Second, "00:00:00.000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.in), tt.in.String())
	}
}
