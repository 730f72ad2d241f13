package engine

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/gxespino/timemann/internal/tool"
)

// Frame is a complete screen description handed to the drawing collaborator
// once per loop iteration.
type Frame struct {
	Title  string
	Tabs   []string
	Active int
	FPS    float64
	Body   tool.View
	Help   []key.Binding
}

// Renderer draws frames. Render may block; the loop waits for it.
type Renderer interface {
	Render(ctx context.Context, f Frame) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(ctx context.Context, f Frame) error

func (fn RendererFunc) Render(ctx context.Context, f Frame) error {
	return fn(ctx, f)
}
