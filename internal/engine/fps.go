package engine

import (
	"time"

	"github.com/gxespino/timemann/internal/clock"
)

// FPSCounter estimates the tick rate, recomputing at most once per second.
type FPSCounter struct {
	src    clock.Source
	start  time.Time
	frames int
	fps    float64
}

func NewFPSCounter(src clock.Source) *FPSCounter {
	if src == nil {
		src = clock.System
	}
	return &FPSCounter{src: src, start: src.Now()}
}

// Tick records one frame.
func (c *FPSCounter) Tick() {
	c.frames++
	now := c.src.Now()
	elapsed := now.Sub(c.start)
	if elapsed >= time.Second {
		c.fps = float64(c.frames) / elapsed.Seconds()
		c.start = now
		c.frames = 0
	}
}

// FPS is the most recent estimate; zero until a full second has passed.
func (c *FPSCounter) FPS() float64 {
	return c.fps
}
