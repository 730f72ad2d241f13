package clocktest

import (
	"testing"
	"time"

	"github.com/gxespino/timemann/internal/clock"
	"github.com/stretchr/testify/assert"
)

var _ clock.Source = (*Manual)(nil)

func TestManual_OnlyMovesOnAdvance(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewManual(start)

	assert.Equal(t, start, m.Now())
	assert.Equal(t, start, m.Now())

	m.Advance(1500 * time.Millisecond)
	assert.Equal(t, start.Add(1500*time.Millisecond), m.Now())
}
