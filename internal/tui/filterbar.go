package tui

import "github.com/charmbracelet/lipgloss"

// filterBar is the single-select category chip row. Chips are rebuilt from
// the full collection whenever it changes; selection is exact-match,
// including case (see filter.Visible).
type filterBar struct {
	categories []string
	selected   string // "" = all
	filterMode bool
	cursor     int // 0 = "All" chip, 1..n = categories
}

func newFilterBar() filterBar {
	return filterBar{}
}

// setCategories swaps in the category universe of a new collection. A
// selection that no longer exists resets to "All".
func (f *filterBar) setCategories(categories []string) {
	f.categories = categories
	if f.selected == "" {
		return
	}
	for _, c := range categories {
		if c == f.selected {
			return
		}
	}
	f.selected = ""
	f.cursor = 0
}

func (f *filterBar) selectCursor() {
	if f.cursor == 0 {
		f.selected = ""
		return
	}
	if f.cursor-1 < len(f.categories) {
		f.selected = f.categories[f.cursor-1]
	}
}

func (f *filterBar) moveLeft() {
	if f.cursor > 0 {
		f.cursor--
	}
}

func (f *filterBar) moveRight() {
	if f.cursor < len(f.categories) {
		f.cursor++
	}
}

func (f *filterBar) activeLabel() string {
	if f.selected == "" {
		return "All"
	}
	return f.selected
}

func (f *filterBar) render(width int) string {
	sep := chipSeparatorStyle.Render(" · ")

	chips := make([]string, 0, len(f.categories)+1)
	labels := append([]string{"All"}, f.categories...)
	for i, label := range labels {
		style := chipInactiveStyle
		selected := (i == 0 && f.selected == "") || (i > 0 && labels[i] == f.selected)
		if selected {
			style = chipActiveStyle
		}
		if f.filterMode && i == f.cursor {
			label = "[" + label + "]"
		}
		chips = append(chips, style.Render(label))
	}

	// Build the row with separators, stopping before overflow.
	var row string
	for i, chip := range chips {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += chip
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	barStyle := lipgloss.NewStyle().
		Background(colorChipBg).
		Width(width).
		PaddingLeft(1)
	return barStyle.Render(row)
}
