package filter

import (
	"reflect"
	"testing"

	"github.com/gfmartins/postdeck/internal/article"
)

var corpus = []article.Article{
	{ID: "1", Title: "Mastering React Hooks", Excerpt: "hooks in depth", Author: "Jane", Category: "Engineering"},
	{ID: "2", Title: "Color Theory", Excerpt: "picking palettes", Author: "Mel", Category: "Design"},
	{ID: "3", Title: "Weekly Notes", Excerpt: "misc", Author: "Jane", Category: "design"},
	{ID: "4", Title: "Untitled", Excerpt: "", Author: "", Category: ""},
}

func ids(articles []article.Article) []string {
	out := make([]string, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.ID)
	}
	return out
}

func TestVisibleMatchAll(t *testing.T) {
	got := Visible(corpus, "", "")
	if !reflect.DeepEqual(ids(got), []string{"1", "2", "3", "4"}) {
		t.Errorf("empty query and category should return all in order, got %v", ids(got))
	}
}

func TestVisibleQueryCaseInsensitive(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"REACT", []string{"1"}},
		{"react", []string{"1"}},
		{"  react  ", []string{"1"}}, // whitespace-insensitive
		{"jane", []string{"1", "3"}}, // matches author
		{"palettes", []string{"2"}},  // matches excerpt
		{"nomatch", []string{}},
	}
	for _, tt := range tests {
		got := ids(Visible(corpus, tt.query, ""))
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("query %q: got %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestVisibleCategoryExact(t *testing.T) {
	got := ids(Visible(corpus, "", "Design"))
	if !reflect.DeepEqual(got, []string{"2"}) {
		t.Errorf("category Design must not match lowercase design, got %v", got)
	}
}

func TestVisibleBothConjuncts(t *testing.T) {
	got := ids(Visible(corpus, "jane", "Engineering"))
	if !reflect.DeepEqual(got, []string{"1"}) {
		t.Errorf("query+category: got %v, want [1]", got)
	}
}

func TestVisibleIdempotent(t *testing.T) {
	once := Visible(corpus, "jane", "")
	twice := Visible(once, "jane", "")
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("visible(visible(A)) != visible(A): %v vs %v", ids(once), ids(twice))
	}
}

func TestVisibleDoesNotMutateInput(t *testing.T) {
	before := ids(corpus)
	Visible(corpus, "react", "Design")
	if !reflect.DeepEqual(ids(corpus), before) {
		t.Error("input slice was reordered")
	}
}

func TestCategories(t *testing.T) {
	got := Categories(corpus)
	// Distinct, empty dropped, case-sensitive distinctness, sorted.
	want := []string{"Design", "Engineering", "design"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories = %v, want %v", got, want)
	}
}

func TestCategoriesEmpty(t *testing.T) {
	if got := Categories(nil); len(got) != 0 {
		t.Errorf("Categories(nil) = %v, want empty", got)
	}
}
