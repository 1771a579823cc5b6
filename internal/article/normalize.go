package article

import "strings"

// DefaultTitle is used when no title-like field resolves to a string.
const DefaultTitle = "Untitled"

// Alias tables for the field bag. Order is significant: the first candidate
// that carries a usable value wins.
var (
	titleAliases    = []string{"title", "name", "heading"}
	slugAliases     = []string{"slug"}
	excerptAliases  = []string{"excerpt", "description", "summary", "shortDescription"}
	imageAliases    = []string{"featuredImage", "image", "heroImage", "thumbnail"}
	authorAliases   = []string{"author", "authorName", "writer"}
	categoryAliases = []string{"category", "categoryName", "type"}
	dateAliases     = []string{"publishedDate", "date", "publishDate"}

	// Aliases probed inside a linked record's own field bag.
	linkedTextAliases = []string{"name", "title", "text"}
)

// Normalize maps one raw entry to an Article. It is total: whatever shape the
// source hands us, every unresolvable field degrades to its default instead
// of failing. The backend schema is not ours to control, so this tolerance is
// the whole point of the function.
func Normalize(e Entry) Article {
	bag := e.Fields
	if bag == nil {
		bag = map[string]any{}
	}

	rawTitle, _ := resolveString(bag, titleAliases)
	excerpt, _ := resolveString(bag, excerptAliases)
	author, _ := resolveString(bag, authorAliases)
	category, _ := resolveString(bag, categoryAliases)

	slug, _ := resolveString(bag, slugAliases)
	if slug == "" {
		slug = slugify(rawTitle)
	}
	if slug == "" {
		slug = "post-" + e.ID
	}

	published, _ := resolveString(bag, dateAliases)
	if published == "" {
		published = e.CreatedAt
	}

	imageURL, imageAlt := featuredImage(bag)

	title := rawTitle
	if title == "" {
		title = DefaultTitle
	}
	if imageAlt == "" {
		imageAlt = title
	}

	content, _ := bag["content"].(map[string]any)

	return Article{
		ID:               e.ID,
		Title:            title,
		Slug:             slug,
		Excerpt:          excerpt,
		Content:          content,
		PublishedDate:    published,
		FeaturedImageURL: imageURL,
		FeaturedImageAlt: imageAlt,
		Author:           author,
		Category:         category,
		Tags:             tagList(bag),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

// resolveString probes aliases in order and returns the first usable value.
// Usable means an actual string, or a linked record whose nested field bag
// carries a string under name/title/text. A linked record whose nested value
// is itself an object would stringify as "[object Object]" upstream, so it
// degrades to the empty string instead of leaking into the UI. Everything
// else (numbers, arrays, bare objects) counts as absent and probing moves on.
func resolveString(bag map[string]any, aliases []string) (string, bool) {
	for _, key := range aliases {
		switch v := bag[key].(type) {
		case string:
			return v, true
		case map[string]any:
			inner, ok := fieldBag(v)
			if !ok {
				continue
			}
			return plainString(inner, linkedTextAliases), true
		}
	}
	return "", false
}

// plainString probes aliases accepting only plain strings.
func plainString(bag map[string]any, aliases []string) string {
	for _, key := range aliases {
		if s, ok := bag[key].(string); ok {
			return s
		}
	}
	return ""
}

// fieldBag unwraps a linked record's nested field bag.
func fieldBag(record map[string]any) (map[string]any, bool) {
	inner, ok := record["fields"].(map[string]any)
	return inner, ok
}

// tagList extracts the tag list. Only an actual array qualifies; elements are
// either plain strings or linked records carrying name/title/text. Anything
// else drops out, as do duplicates. Order is preserved.
func tagList(bag map[string]any) []string {
	raw, ok := bag["tags"].([]any)
	if !ok {
		return nil
	}

	seen := make(map[string]bool, len(raw))
	var tags []string
	for _, el := range raw {
		var s string
		switch v := el.(type) {
		case string:
			s = v
		case map[string]any:
			if inner, ok := fieldBag(v); ok {
				s = plainString(inner, linkedTextAliases)
			}
		}
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		tags = append(tags, s)
	}
	return tags
}

// featuredImage resolves the first image alias whose linked asset carries a
// file URL. The source serves protocol-relative URLs, so "//host/path" is
// completed to "https://host/path". A broken chain at any level means no
// image.
func featuredImage(bag map[string]any) (url, alt string) {
	for _, key := range imageAliases {
		asset, ok := bag[key].(map[string]any)
		if !ok {
			continue
		}
		inner, ok := fieldBag(asset)
		if !ok {
			continue
		}
		file, ok := inner["file"].(map[string]any)
		if !ok {
			continue
		}
		u, ok := file["url"].(string)
		if !ok || u == "" {
			continue
		}
		if strings.HasPrefix(u, "//") {
			u = "https:" + u
		}
		title, _ := inner["title"].(string)
		return u, title
	}
	return "", ""
}

// slugify lowercases and collapses whitespace runs to single hyphens.
func slugify(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "-")
}
