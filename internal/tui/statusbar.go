package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(shown, total int, filterLabel, query string, width int, searching, fetching bool) string {
	left := fmt.Sprintf(" %d of %d posts", shown, total)
	if filterLabel != "All" {
		left += " · " + filterLabel
	}
	if query != "" {
		left += fmt.Sprintf(" · %q", query)
	}
	if fetching {
		left += " (refreshing...)"
	}

	right := " / search  f filter  r refresh  ? help  q quit "
	if searching {
		right = " esc clear  enter keep "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right
	return statusBarStyle.Width(width).Render(bar)
}
