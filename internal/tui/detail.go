package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gfmartins/postdeck/internal/article"
	"github.com/gfmartins/postdeck/internal/richtext"
)

// renderPreview is the right-hand pane in browse mode: the selected post's
// excerpt and metadata, without the full body.
func renderPreview(a *article.Article, width, height, scroll int) string {
	if a == nil {
		return centerText("Select a post", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := detailTitleStyle.Width(contentWidth).Render(a.Title)
	meta := detailMetaStyle.Render(metaLine(*a))

	excerpt := a.Excerpt
	if excerpt == "" {
		excerpt = "(No excerpt available)"
	}
	body := detailBodyStyle.Width(contentWidth).Render(wrapText(excerpt, contentWidth))

	sections := []string{title, meta, "", body}
	if len(a.Tags) > 0 {
		sections = append(sections, "", detailTagStyle.Render("tags: "+strings.Join(a.Tags, ", ")))
	}
	sections = append(sections, "", detailLinkStyle.Render("enter full post"))

	return clipToPane(lipgloss.JoinVertical(lipgloss.Left, sections...), height, scroll)
}

// renderDetail is the full-screen reading view: metadata plus the rendered
// rich-text body.
func renderDetail(a article.Article, postURL string, width, height, scroll int) string {
	contentWidth := width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}
	if contentWidth > 100 {
		contentWidth = 100
	}

	title := detailTitleStyle.Width(contentWidth).Render(a.Title)
	meta := detailMetaStyle.Render(metaLine(a))

	sections := []string{title, meta}
	if len(a.Tags) > 0 {
		sections = append(sections, detailTagStyle.Render("tags: "+strings.Join(a.Tags, ", ")))
	}
	sections = append(sections, "")

	if a.FeaturedImageURL != "" {
		sections = append(sections,
			detailTagStyle.Render("["+a.FeaturedImageAlt+"] "+a.FeaturedImageURL), "")
	}

	body := detailBodyStyle.Render(richtext.Render(a.Content, contentWidth))
	sections = append(sections, body)

	if postURL != "" {
		sections = append(sections, "", detailLinkStyle.Render("Read online: "+postURL))
	}

	content := lipgloss.NewStyle().Padding(0, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...))
	return clipToPane(content, height, scroll)
}

func metaLine(a article.Article) string {
	var parts []string
	if a.Author != "" {
		parts = append(parts, a.Author)
	}
	if label := publishedLabel(a); label != "" {
		parts = append(parts, label)
	}
	if a.Category != "" {
		parts = append(parts, a.Category)
	}
	if t, ok := parseEnvelopeTime(a.UpdatedAt); ok && a.UpdatedAt != a.CreatedAt {
		parts = append(parts, "updated "+relativeTime(t))
	}
	return strings.Join(parts, " · ")
}

func parseEnvelopeTime(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, s)
	return t, err == nil
}

// clipToPane applies the scroll offset and pads or trims to the pane height.
func clipToPane(content string, height, scroll int) string {
	lines := strings.Split(content, "\n")
	if scroll > len(lines)-1 {
		scroll = len(lines) - 1
	}
	if scroll > 0 {
		lines = lines[scroll:]
	}

	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
