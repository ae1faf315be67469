// Package news holds the read-only headline data shown by the feed and the
// saved list, and the category filter applied to it.
package news

// AllCategories is the reserved category meaning "no filter".
const AllCategories = "All"

// Item is one headline in the feed.
type Item struct {
	ID        string `json:"id"`
	Headline  string `json:"headline"`
	Category  string `json:"category"`
	Snippet   string `json:"snippet"`
	Timestamp string `json:"timestamp"`
}

// SavedItem is a headline the reader bookmarked.
type SavedItem struct {
	Item
	SavedDate string `json:"savedDate"`
}

// Source is the injected, immutable data behind the feed screens.
type Source struct {
	News  []Item      `json:"news"`
	Saved []SavedItem `json:"saved,omitempty"`
}

// Filter returns the items whose Category equals category, in their
// original order. AllCategories returns every item. The comparison is
// case-sensitive and items is never modified.
func Filter(items []Item, category string) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if category == AllCategories || it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// FilterSaved is Filter for saved items.
func FilterSaved(items []SavedItem, category string) []SavedItem {
	out := make([]SavedItem, 0, len(items))
	for _, it := range items {
		if category == AllCategories || it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// Categories returns AllCategories followed by each distinct category of
// items in order of first appearance.
func Categories(items []Item) []string {
	seen := make(map[string]bool, len(items))
	cats := []string{AllCategories}
	for _, it := range items {
		if it.Category == "" || it.Category == AllCategories || seen[it.Category] {
			continue
		}
		seen[it.Category] = true
		cats = append(cats, it.Category)
	}
	return cats
}

// Items returns the embedded feed items of saved.
func Items(saved []SavedItem) []Item {
	out := make([]Item, len(saved))
	for i, s := range saved {
		out[i] = s.Item
	}
	return out
}
