package richtext

import (
	"strings"
	"testing"
)

func text(value string) map[string]any {
	return map[string]any{"nodeType": "text", "value": value}
}

func node(nodeType string, content ...map[string]any) map[string]any {
	raw := make([]any, len(content))
	for i, c := range content {
		raw[i] = c
	}
	return map[string]any{"nodeType": nodeType, "content": raw}
}

func doc(content ...map[string]any) map[string]any {
	return node("document", content...)
}

func TestRenderNil(t *testing.T) {
	if got := Render(nil, 80); got != "(No content)" {
		t.Errorf("Render(nil) = %q", got)
	}
}

func TestRenderMalformed(t *testing.T) {
	got := Render(map[string]any{"nodeType": "paragraph"}, 80)
	if got != "(No content)" {
		t.Errorf("non-document root should render placeholder, got %q", got)
	}
}

func TestRenderParagraphs(t *testing.T) {
	got := Render(doc(
		node("paragraph", text("First paragraph.")),
		node("paragraph", text("Second paragraph.")),
	), 80)

	want := "First paragraph.\n\nSecond paragraph."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderWraps(t *testing.T) {
	got := Render(doc(node("paragraph", text("one two three four five"))), 20)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 20 {
			t.Errorf("line %q exceeds width", line)
		}
	}
}

func TestRenderLists(t *testing.T) {
	got := Render(doc(
		node("unordered-list",
			node("list-item", node("paragraph", text("alpha"))),
			node("list-item", node("paragraph", text("beta"))),
		),
	), 80)
	if !strings.Contains(got, "• alpha") || !strings.Contains(got, "• beta") {
		t.Errorf("unordered list missing bullets: %q", got)
	}

	got = Render(doc(
		node("ordered-list",
			node("list-item", node("paragraph", text("alpha"))),
			node("list-item", node("paragraph", text("beta"))),
		),
	), 80)
	if !strings.Contains(got, "1. alpha") || !strings.Contains(got, "2. beta") {
		t.Errorf("ordered list missing numbers: %q", got)
	}
}

func TestRenderBlockquoteAndRule(t *testing.T) {
	got := Render(doc(
		node("blockquote", node("paragraph", text("quoted"))),
		node("hr"),
	), 40)
	if !strings.Contains(got, "│ ") {
		t.Errorf("blockquote not prefixed: %q", got)
	}
	if !strings.Contains(got, strings.Repeat("─", 40)) {
		t.Errorf("horizontal rule missing: %q", got)
	}
}

func TestRenderHyperlink(t *testing.T) {
	link := node("hyperlink", text("click here"))
	link["data"] = map[string]any{"uri": "https://example.com"}

	got := Render(doc(node("paragraph", text("Go "), link)), 200)
	if !strings.Contains(got, "click here") || !strings.Contains(got, "(https://example.com)") {
		t.Errorf("hyperlink = %q", got)
	}
}

func TestRenderEmbeddedAsset(t *testing.T) {
	asset := map[string]any{
		"nodeType": "embedded-asset-block",
		"data": map[string]any{
			"target": map[string]any{
				"fields": map[string]any{
					"title": "Diagram",
					"file":  map[string]any{"url": "//img.example.com/d.png"},
				},
			},
		},
	}
	got := Render(doc(asset), 200)
	if !strings.Contains(got, "Diagram") || !strings.Contains(got, "https://img.example.com/d.png") {
		t.Errorf("embedded asset = %q", got)
	}
}

func TestRenderUnknownNodeFallsBack(t *testing.T) {
	got := Render(doc(node("table", node("paragraph", text("cell")))), 80)
	if !strings.Contains(got, "cell") {
		t.Errorf("unknown node should degrade to its text, got %q", got)
	}
}
