package saved

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blinkapp/blink/internal/news"
	"github.com/blinkapp/blink/internal/overlay"
)

func keyPress(code rune) tea.KeyPressMsg {
	switch code {
	case tea.KeyEnter, tea.KeyEsc, tea.KeyUp, tea.KeyDown, tea.KeyLeft, tea.KeyRight, tea.KeySpace:
		return tea.KeyPressMsg{Code: code}
	}
	return tea.KeyPressMsg{Code: code, Text: string(code)}
}

func TestAllItemsStartBookmarked(t *testing.T) {
	items := news.Fixtures().Saved
	m := New(items, nil)
	for _, it := range items {
		assert.True(t, m.Bookmarked(it.ID), it.ID)
	}
}

func TestToggleBookmarkOnlyChangesIcon(t *testing.T) {
	items := news.Fixtures().Saved
	m := New(items, nil)
	m.Update(keyPress(tea.KeyDown))
	m.Update(keyPress('b'))

	assert.False(t, m.Bookmarked(items[1].ID))
	assert.True(t, m.Bookmarked(items[0].ID))
	assert.Contains(t, ansi.Strip(m.View(80, 40)), items[1].Headline, "unbookmarked items stay listed")

	m.Update(keyPress(tea.KeySpace))
	assert.True(t, m.Bookmarked(items[1].ID))
}

func TestCursorClamps(t *testing.T) {
	items := news.Fixtures().Saved
	m := New(items, nil)
	m.Update(keyPress(tea.KeyUp))
	assert.Equal(t, 0, m.Cursor())
	for i := 0; i < len(items)+3; i++ {
		m.Update(keyPress(tea.KeyDown))
	}
	assert.Equal(t, len(items)-1, m.Cursor())
}

func TestInlineDetailOpensAndCloses(t *testing.T) {
	items := news.Fixtures().Saved
	m := New(items, nil)
	m.Update(keyPress(tea.KeyDown))
	m.Update(keyPress(tea.KeyEnter))

	it, ok := m.Reading()
	require.True(t, ok)
	assert.Equal(t, items[1].Item, it)
	assert.Contains(t, ansi.Strip(m.View(80, 30)), items[1].Headline)

	cmd := m.Update(keyPress(tea.KeyEsc))
	assert.Nil(t, cmd, "closing the inline detail stays inside the panel")
	_, ok = m.Reading()
	assert.False(t, ok)
}

func TestEscClosesPanel(t *testing.T) {
	m := New(news.Fixtures().Saved, nil)
	cmd := m.Update(keyPress(tea.KeyEsc))
	require.NotNil(t, cmd)
	assert.Equal(t, overlay.CloseMsg{Overlay: overlay.Saved}, cmd())

	cmd = m.Update(keyPress(tea.KeyRight))
	require.NotNil(t, cmd)
	assert.Equal(t, overlay.CloseMsg{Overlay: overlay.Saved}, cmd())
}

func TestEmptyState(t *testing.T) {
	m := New(nil, nil)
	view := ansi.Strip(m.View(80, 24))
	assert.Contains(t, view, "No Saved Articles")
	m.Update(keyPress(tea.KeyEnter))
	_, ok := m.Reading()
	assert.False(t, ok)
}

func TestCategoryFiltersList(t *testing.T) {
	items := news.Fixtures().Saved
	m := New(items, nil)
	m.Update(keyPress(tea.KeyDown))

	m.SetCategory("Science & Tech")
	assert.Equal(t, "Science & Tech", m.Category())
	assert.Equal(t, 0, m.Cursor(), "a new filter starts at the top")
	got := m.Visible()
	require.Len(t, got, 3)
	for _, it := range got {
		assert.Equal(t, "Science & Tech", it.Category)
	}

	view := ansi.Strip(m.View(80, 200))
	assert.Contains(t, view, "Saved · Science & Tech")
	for _, it := range items {
		if it.Category != "Science & Tech" {
			assert.NotContains(t, view, it.Headline)
		}
	}

	m.Update(keyPress(tea.KeyDown))
	m.Update(keyPress(tea.KeyEnter))
	reading, ok := m.Reading()
	require.True(t, ok)
	assert.Equal(t, got[1].ID, reading.ID, "enter opens the filtered row")
}

func TestCategoryWithNothingSaved(t *testing.T) {
	m := New(news.Fixtures().Saved, nil)
	m.SetCategory("Fashion")
	assert.Empty(t, m.Visible())
	assert.Contains(t, ansi.Strip(m.View(80, 40)), "Nothing saved in Fashion")

	m.SetCategory(news.AllCategories)
	assert.Len(t, m.Visible(), len(news.Fixtures().Saved))
}
