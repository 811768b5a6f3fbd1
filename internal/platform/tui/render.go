package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/picotrek/internal/core"
)

// The display is monochrome; emphasis is reverse video.
var (
	frameStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	promptStyle   = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pageStyle     = lipgloss.NewStyle().Padding(0, 1)
)

// RenderScreen converts a Screen buffer to a framed string for display.
func RenderScreen(s *core.Screen) string {
	return frameStyle.Render(s.String())
}

// wrapLines reflows each paragraph to width columns.
func wrapLines(lines []string, width int) string {
	if width <= 0 {
		return strings.Join(lines, "\n")
	}
	style := lipgloss.NewStyle().Width(width)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = style.Render(l)
	}
	return strings.Join(out, "\n")
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// stack joins the non-empty blocks of a widget view top to bottom.
func stack(blocks ...string) string {
	kept := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b != "" {
			kept = append(kept, b)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, kept...)
}
