package tool

import (
	"errors"

	"github.com/gxespino/timemann/internal/clock"
	"github.com/gxespino/timemann/internal/event"
)

// Registry holds the ordered tools and the active index.
//
// A Registry must not be copied after first use; pass *Registry.
type Registry struct {
	tools []Tool
	index int
}

// NewRegistry creates a registry with the first tool active.
func NewRegistry(tools ...Tool) (*Registry, error) {
	if len(tools) == 0 {
		return nil, errors.New("registry needs at least one tool")
	}
	return &Registry{tools: tools}, nil
}

// DefaultRegistry returns the stopwatch, countdown and info tools in tab
// order.
func DefaultRegistry(src clock.Source) *Registry {
	return &Registry{tools: []Tool{
		FromStopwatch(NewStopwatch(src)),
		FromCountdown(NewCountdown(src)),
		FromInfo(&Info{}),
	}}
}

// Advance activates the next tool, wrapping to the first.
func (r *Registry) Advance() {
	r.index = (r.index + 1) % len(r.tools)
}

func (r *Registry) Index() int {
	return r.index
}

func (r *Registry) Len() int {
	return len(r.tools)
}

// Current returns the active tool. Do not hold on to it across messages.
func (r *Registry) Current() Tool {
	return r.tools[r.index]
}

// Titles returns the tab labels in order.
func (r *Registry) Titles() []string {
	titles := make([]string, len(r.tools))
	for i, t := range r.tools {
		titles[i] = t.Title()
	}
	return titles
}

// Dispatch forwards a tool-scoped message to the active tool. Global
// messages are not forwarded; the return value reports whether msg was.
func (r *Registry) Dispatch(msg event.Message) bool {
	if !msg.ToolScoped() {
		return false
	}
	r.Current().Handle(msg)
	return true
}

// Expire re-evaluates every tool, not only the active one, and returns those
// that finished on this pass.
func (r *Registry) Expire() []Tool {
	var finished []Tool
	for _, t := range r.tools {
		if t.Expire() {
			finished = append(finished, t)
		}
	}
	return finished
}
