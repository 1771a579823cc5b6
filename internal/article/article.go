package article

import (
	"sort"
	"time"
)

// Entry is one raw record from the content source: the system envelope plus a
// free-form field bag. Nothing about the bag is guaranteed — the same logical
// attribute may appear under different names, or with the wrong type, or not
// at all.
type Entry struct {
	ID        string
	CreatedAt string
	UpdatedAt string
	Fields    map[string]any
}

// Article is the canonical representation of one blog post. It is built once
// per fetch by Normalize and never mutated. String fields that the UI renders
// unconditionally (Title, Excerpt) are always non-nil strings; Author,
// Category and FeaturedImageURL use the empty string to mean "absent".
type Article struct {
	ID               string
	Title            string
	Slug             string
	Excerpt          string
	Content          map[string]any // opaque rich-text tree, nil when absent
	PublishedDate    string
	FeaturedImageURL string
	FeaturedImageAlt string
	Author           string
	Category         string
	Tags             []string
	CreatedAt        string
	UpdatedAt        string
}

// PublishedTime parses the published date. ok is false when the source gave
// us something that is not a timestamp.
func (a Article) PublishedTime() (time.Time, bool) {
	return parseDate(a.PublishedDate)
}

// SortByPublished orders articles newest first, in place. Ties keep their
// existing relative order; unparseable dates sort after everything else.
func SortByPublished(articles []Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		ti, iok := parseDate(articles[i].PublishedDate)
		tj, jok := parseDate(articles[j].PublishedDate)
		if iok != jok {
			return iok
		}
		if !iok {
			return false
		}
		return ti.After(tj)
	})
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05.000Z07:00", "2006-01-02"}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
