// Package richtext renders the opaque structured-document tree carried on an
// article's content field into terminal text. The tree is the only place the
// core passes through uninterpreted; rendering it is strictly a presentation
// concern, so unknown node kinds degrade to their text content instead of
// failing.
package richtext

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	quoteStyle   = lipgloss.NewStyle().Italic(true).Faint(true)
	linkStyle    = lipgloss.NewStyle().Underline(true)
	assetStyle   = lipgloss.NewStyle().Faint(true)
)

// Render walks the document and returns wrapped terminal text. A nil or
// malformed document renders a placeholder line.
func Render(doc map[string]any, width int) string {
	if width < 20 {
		width = 20
	}
	if doc == nil {
		return "(No content)"
	}
	if nt, _ := doc["nodeType"].(string); nt != "document" {
		return "(No content)"
	}

	var blocks []string
	for _, node := range childNodes(doc) {
		if b := renderBlock(node, width); b != "" {
			blocks = append(blocks, b)
		}
	}
	if len(blocks) == 0 {
		return "(No content)"
	}
	return strings.Join(blocks, "\n\n")
}

func renderBlock(node map[string]any, width int) string {
	nodeType, _ := node["nodeType"].(string)

	switch nodeType {
	case "paragraph":
		return wrap(inlineText(node), width)
	case "heading-1", "heading-2", "heading-3", "heading-4", "heading-5", "heading-6":
		return headingStyle.Render(wrap(inlineText(node), width))
	case "unordered-list":
		return renderList(node, width, func(int) string { return "• " })
	case "ordered-list":
		return renderList(node, width, func(i int) string { return fmt.Sprintf("%d. ", i+1) })
	case "blockquote":
		var lines []string
		for _, child := range childNodes(node) {
			for _, l := range strings.Split(wrap(inlineText(child), width-2), "\n") {
				lines = append(lines, quoteStyle.Render("│ "+l))
			}
		}
		return strings.Join(lines, "\n")
	case "hr":
		return strings.Repeat("─", width)
	case "embedded-asset-block":
		return assetStyle.Render(embeddedAsset(node))
	default:
		// Unknown block kind: fall back to whatever text it carries.
		return wrap(inlineText(node), width)
	}
}

func renderList(node map[string]any, width int, marker func(int) string) string {
	var items []string
	for i, item := range childNodes(node) {
		m := marker(i)
		body := wrap(inlineText(item), width-len(m))
		indent := strings.Repeat(" ", len(m))
		lines := strings.Split(body, "\n")
		for j := range lines {
			if j == 0 {
				lines[j] = m + lines[j]
			} else {
				lines[j] = indent + lines[j]
			}
		}
		items = append(items, strings.Join(lines, "\n"))
	}
	return strings.Join(items, "\n")
}

// inlineText flattens a node's inline content: text runs (with bold/italic
// marks applied), hyperlinks rendered as "text (url)", nested blocks joined
// by spaces.
func inlineText(node map[string]any) string {
	if nodeType, _ := node["nodeType"].(string); nodeType == "text" {
		value, _ := node["value"].(string)
		return applyMarks(value, node)
	}

	var parts []string
	for _, child := range childNodes(node) {
		childType, _ := child["nodeType"].(string)
		if childType == "hyperlink" {
			text := inlineText(child)
			if uri := dataString(child, "uri"); uri != "" {
				parts = append(parts, linkStyle.Render(text)+" ("+uri+")")
				continue
			}
			parts = append(parts, text)
			continue
		}
		if s := inlineText(child); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "")
}

func applyMarks(value string, node map[string]any) string {
	marks, _ := node["marks"].([]any)
	for _, m := range marks {
		mark, _ := m.(map[string]any)
		switch t, _ := mark["type"].(string); t {
		case "bold":
			value = lipgloss.NewStyle().Bold(true).Render(value)
		case "italic":
			value = lipgloss.NewStyle().Italic(true).Render(value)
		}
	}
	return value
}

func embeddedAsset(node map[string]any) string {
	data, _ := node["data"].(map[string]any)
	target, _ := data["target"].(map[string]any)
	fields, _ := target["fields"].(map[string]any)

	title, _ := fields["title"].(string)
	var url string
	if file, ok := fields["file"].(map[string]any); ok {
		url, _ = file["url"].(string)
		if strings.HasPrefix(url, "//") {
			url = "https:" + url
		}
	}

	switch {
	case title != "" && url != "":
		return fmt.Sprintf("[image: %s (%s)]", title, url)
	case url != "":
		return "[image: " + url + "]"
	case title != "":
		return "[image: " + title + "]"
	default:
		return "[image]"
	}
}

func dataString(node map[string]any, key string) string {
	data, _ := node["data"].(map[string]any)
	s, _ := data[key].(string)
	return s
}

func childNodes(node map[string]any) []map[string]any {
	raw, _ := node["content"].([]any)
	out := make([]map[string]any, 0, len(raw))
	for _, el := range raw {
		if m, ok := el.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func wrap(s string, width int) string {
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
		if lipgloss.Width(line)+1+lipgloss.Width(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
