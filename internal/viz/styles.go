package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title  lipgloss.Style
	frame  lipgloss.Style
	axis   lipgloss.Style
	line   lipgloss.Style
	hot    lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	status lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title: lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted),
		axis:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		line:   lipgloss.NewStyle().Foreground(t.Secondary),
		hot:    lipgloss.NewStyle().Foreground(t.Hot),
		label:  lipgloss.NewStyle().Foreground(t.Muted),
		value:  lipgloss.NewStyle().Foreground(t.Text),
		status: lipgloss.NewStyle().Foreground(t.Accent),
	}
}

// spread lays out left, middle and right within width cells.
func spread(left, mid, right string, width int) string {
	lw, mw, rw := lipgloss.Width(left), lipgloss.Width(mid), lipgloss.Width(right)
	if lw+mw+rw+2 > width {
		return left + " " + mid + " " + right
	}
	midStart := (width - mw) / 2
	if midStart < lw+1 {
		midStart = lw + 1
	}
	gap2 := width - midStart - mw - rw
	if gap2 < 1 {
		gap2 = 1
	}
	return left + strings.Repeat(" ", midStart-lw) + mid + strings.Repeat(" ", gap2) + right
}
