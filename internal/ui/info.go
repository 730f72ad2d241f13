package ui

import (
	"github.com/charmbracelet/glamour"
)

// markdownRenderer renders the info tool's markdown, caching the last result
// since the same text is drawn on every frame.
type markdownRenderer struct {
	style string

	width    int
	renderer *glamour.TermRenderer

	lastIn  string
	lastOut string
}

func newMarkdownRenderer(style string) *markdownRenderer {
	if style == "" {
		style = "dark"
	}
	return &markdownRenderer{style: style}
}

// render falls back to the raw markdown if glamour fails.
func (m *markdownRenderer) render(md string, width int) string {
	if width < 20 {
		width = 20
	}
	if m.renderer == nil || m.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(m.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		m.renderer = r
		m.width = width
		m.lastIn = ""
	}
	if md == m.lastIn && m.lastOut != "" {
		return m.lastOut
	}

	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	m.lastIn, m.lastOut = md, out
	return out
}
