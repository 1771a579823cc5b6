// Package filter derives the visible article subset from the full in-memory
// collection. Everything here is pure: same inputs, same output, no state.
package filter

import (
	"sort"
	"strings"

	"github.com/gfmartins/postdeck/internal/article"
)

// Visible returns the articles matching the query and category, preserving
// input order. The query matches case-insensitively against title, excerpt or
// author; surrounding whitespace is ignored. The category must match exactly,
// case included — categories are curated values and the chips are built from
// the same collection, so folding would only blur distinct values. An empty
// query or empty category matches everything for that conjunct.
func Visible(articles []article.Article, query, category string) []article.Article {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]article.Article, 0, len(articles))
	for _, a := range articles {
		if q != "" && !matchesQuery(a, q) {
			continue
		}
		if category != "" && a.Category != category {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matchesQuery(a article.Article, q string) bool {
	return strings.Contains(strings.ToLower(a.Title), q) ||
		strings.Contains(strings.ToLower(a.Excerpt), q) ||
		strings.Contains(strings.ToLower(a.Author), q)
}

// Categories returns the distinct non-empty categories across the full
// collection, alphabetically sorted.
func Categories(articles []article.Article) []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range articles {
		if a.Category == "" || seen[a.Category] {
			continue
		}
		seen[a.Category] = true
		out = append(out, a.Category)
	}
	sort.Strings(out)
	return out
}
