package cmd

import (
	"testing"

	"github.com/gfmartins/postdeck/internal/article"
)

func TestFormatPostLine(t *testing.T) {
	tests := []struct {
		name string
		in   article.Article
		want string
	}{
		{
			"full",
			article.Article{Title: "Hello", PublishedDate: "2024-06-15T10:00:00Z", Category: "Tech", Author: "Ann"},
			"2024-06-15  Hello  [Tech]  by Ann",
		},
		{
			"no category or author",
			article.Article{Title: "Hello", PublishedDate: "2024-06-15T10:00:00Z"},
			"2024-06-15  Hello",
		},
		{
			"unparseable date keeps columns",
			article.Article{Title: "Hello", PublishedDate: "nope"},
			"            Hello",
		},
	}
	for _, tt := range tests {
		if got := formatPostLine(tt.in); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}
