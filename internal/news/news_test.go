package news

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sportsList() []Item {
	cats := []string{"Global", "Sports", "Science & Tech", "Sports", "Global", "Global", "Sports", "Music", "sports", "Global"}
	items := make([]Item, len(cats))
	for i, c := range cats {
		items[i] = Item{ID: fmt.Sprint(i + 1), Headline: fmt.Sprintf("Headline %d", i+1), Category: c}
	}
	return items
}

func TestFilterByCategory(t *testing.T) {
	items := sportsList()

	got := Filter(items, "Sports")
	require.Len(t, got, 3)
	assert.Equal(t, []string{"2", "4", "7"}, ids(got))

	// Case-sensitive.
	got = Filter(items, "sports")
	assert.Equal(t, []string{"9"}, ids(got))

	assert.Empty(t, Filter(items, "Fashion"))
}

func TestFilterAllReturnsEverything(t *testing.T) {
	items := sportsList()
	got := Filter(items, AllCategories)
	assert.Equal(t, items, got)
	assert.Len(t, got, 10)
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	items := sportsList()
	got := Filter(items, AllCategories)
	got[0].Headline = "changed"
	assert.Equal(t, "Headline 1", items[0].Headline)
}

func TestFilterSaved(t *testing.T) {
	saved := Fixtures().Saved
	got := FilterSaved(saved, "Science & Tech")
	require.Len(t, got, 3)
	for _, s := range got {
		assert.Equal(t, "Science & Tech", s.Category)
	}
	assert.Len(t, FilterSaved(saved, AllCategories), len(saved))
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"All", "Global", "Sports", "Science & Tech", "Music", "sports"}, Categories(sportsList()))
	assert.Equal(t, []string{"All"}, Categories(nil))
	assert.Equal(t, []string{"All", "Global", "Science & Tech"}, Categories(Fixtures().News))
}

func TestFixturesAreFresh(t *testing.T) {
	a := Fixtures()
	a.News[0].Headline = "changed"
	b := Fixtures()
	assert.Equal(t, "Louvre Museum Got Robbed", b.News[0].Headline)
}

func TestBuiltInFixturesPassValidation(t *testing.T) {
	data, err := Marshal(Fixtures())
	require.NoError(t, err)

	src, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Fixtures(), src)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"not json", `{"news": [`},
		{"missing news", `{}`},
		{"unknown field", `{"news": [], "extra": 1}`},
		{"missing headline", `{"news": [{"id": "1", "category": "Global", "snippet": "", "timestamp": ""}]}`},
		{"reserved category", `{"news": [{"id": "1", "headline": "h", "category": "All", "snippet": "", "timestamp": ""}]}`},
		{"empty id", `{"news": [{"id": "", "headline": "h", "category": "Global", "snippet": "", "timestamp": ""}]}`},
		{"saved without date", `{"news": [], "saved": [{"id": "s", "headline": "h", "category": "Global", "snippet": "", "timestamp": ""}]}`},
		{"duplicate id", `{"news": [
			{"id": "1", "headline": "a", "category": "Global", "snippet": "", "timestamp": ""},
			{"id": "1", "headline": "b", "category": "Global", "snippet": "", "timestamp": ""}
		]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.json))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFixtures)
		})
	}
}

func TestParseAllowsSameIDAcrossLists(t *testing.T) {
	data := `{
		"news": [{"id": "1", "headline": "a", "category": "Global", "snippet": "", "timestamp": ""}],
		"saved": [{"id": "1", "headline": "a", "category": "Global", "snippet": "", "timestamp": "", "savedDate": "today"}]
	}`
	src, err := Parse([]byte(data))
	require.NoError(t, err)
	require.Len(t, src.Saved, 1)
	assert.Equal(t, "today", src.Saved[0].SavedDate)
	assert.Equal(t, "Global", src.Saved[0].Category)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixtures.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"news": [{"id": "x", "headline": "h", "category": "Art", "snippet": "s", "timestamp": "Mon"}]}`), 0o644))

	src, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, src.News, 1)
	assert.Equal(t, "Art", src.News[0].Category)
	assert.Empty(t, src.Saved)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
