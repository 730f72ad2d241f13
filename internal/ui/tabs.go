package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/gxespino/timemann/internal/engine"
)

// renderHeader lays out the title on the left, the tab bar in the middle and
// the fps diagnostic on the right.
func renderHeader(f engine.Frame, width int) string {
	title := titleStyle.Render(f.Title)
	tabs := renderTabs(f.Tabs, f.Active)
	fps := fpsStyle.Render(fmt.Sprintf("%.2f fps", f.FPS))

	gap := width - lipgloss.Width(title) - lipgloss.Width(tabs) - lipgloss.Width(fps)
	if gap < 2 {
		return headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, title, " ", tabs, " ", fps))
	}
	left := gap / 2
	right := gap - left
	return headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		title, spaces(left), tabs, spaces(right), fps))
}

func renderTabs(titles []string, active int) string {
	rendered := make([]string, len(titles))
	for i, t := range titles {
		if i == active {
			rendered[i] = activeTabStyle.Render(t)
		} else {
			rendered[i] = tabStyle.Render(t)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func spaces(n int) string {
	return lipgloss.NewStyle().Width(n).Render("")
}
