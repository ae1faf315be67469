package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(s string) tea.KeyPressMsg {
	switch s {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestSlideAtRestShowsOnePanel(t *testing.T) {
	out := Slide("AAAA\nAAAA", "BBBB\nBBBB", 4, 2, 0, 1)
	assert.Equal(t, "AAAA\nAAAA", out)

	out = Slide("AAAA\nAAAA", "BBBB\nBBBB", 4, 2, -1, 0)
	assert.Equal(t, "BBBB\nBBBB", out)
}

func TestSlideForwardHalfway(t *testing.T) {
	// Forward at p=0.5: outgoing at -0.5, incoming at 0.5.
	out := Slide("abcd", "wxyz", 4, 1, -0.5, 0.5)
	assert.Equal(t, "cdwx", out)
}

func TestSlideBackwardQuarter(t *testing.T) {
	// Backward at p=0.25: outgoing at 0.25, incoming at -0.75.
	out := Slide("abcd", "wxyz", 4, 1, 0.25, -0.75)
	assert.Equal(t, "zabc", out)
}

func TestSlidePadsShortContent(t *testing.T) {
	out := Slide("a", "", 3, 2, 0, 1)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.Equal(t, 3, ansi.StringWidth(l))
	}
	assert.Equal(t, "a  ", lines[0])
}

func TestSlideKeepsStyledWidth(t *testing.T) {
	styled := "\x1b[1mbold\x1b[0m"
	out := Slide(styled, "next", 4, 1, -0.25, 0.75)
	assert.Equal(t, 4, ansi.StringWidth(out))
	assert.Equal(t, "oldn", ansi.Strip(out))
}

func TestSlideEmptyViewport(t *testing.T) {
	assert.Empty(t, Slide("a", "b", 0, 5, 0, 1))
}

func TestOptionListSingle(t *testing.T) {
	l := NewOptionList([]string{"App Store", "TikTok", "Instagram"}, false)
	assert.Empty(t, l.Value())

	l, _ = l.Update(press("down"))
	l, _ = l.Update(press("space"))
	assert.Equal(t, "TikTok", l.Value())

	l, _ = l.Update(press("down"))
	l.ChooseCursor()
	assert.Equal(t, []string{"Instagram"}, l.Chosen(), "single mode keeps one choice")

	l, _ = l.Update(press("down"))
	assert.Equal(t, 2, l.Cursor, "cursor stops at the last option")
}

func TestOptionListMulti(t *testing.T) {
	l := NewOptionList([]string{"Business", "Music", "Art"}, true, "Art")
	assert.True(t, l.IsChosen(2))

	l, _ = l.Update(press("space"))
	assert.Equal(t, []string{"Business", "Art"}, l.Chosen())

	l, _ = l.Update(press("space"))
	assert.Equal(t, []string{"Art"}, l.Chosen())

	l.Cursor = 2
	l.ChooseCursor()
	assert.Equal(t, []string{"Art"}, l.Chosen(), "choosing a chosen option is a no-op")
	assert.Equal(t, "Art", l.String())
}

func TestOptionListPreselectedSingleMovesCursor(t *testing.T) {
	l := NewOptionList([]string{"3", "6", "9"}, false, "9")
	assert.Equal(t, 2, l.Cursor)
	assert.Contains(t, ansi.Strip(l.View()), "▸ (•) 9")
}

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Off", Disabled: true},
		{Label: "One"},
		{Label: "Two", Disabled: true},
		{Label: "Three"},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(press("down"))
	assert.Equal(t, 3, m.Selected)

	m, _ = m.Update(press("k"))
	assert.Equal(t, 1, m.Selected)
}

func TestMenuEnterRunsAction(t *testing.T) {
	type chosen struct{ id string }
	m := NewMenu([]MenuItem{
		{ID: "feedSize", Label: "Feed Size", Action: func() tea.Cmd {
			return func() tea.Msg { return chosen{"feedSize"} }
		}},
	})
	_, cmd := m.Update(press("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, chosen{"feedSize"}, cmd())
}

func TestMenuViewScrolls(t *testing.T) {
	items := make([]MenuItem, 24)
	for i := range items {
		items[i] = MenuItem{Label: string(rune('A' + i))}
	}
	m := NewMenu(items)
	m.Selected = 23

	view := ansi.Strip(m.View(5))
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[4], "▸ X")
	assert.Contains(t, lines[0], "T")
}

func TestCategoryBarWraps(t *testing.T) {
	c := NewCategoryBar([]string{"All", "Global", "Science & Tech"})
	assert.Equal(t, "All", c.Current())

	c.Prev()
	assert.Equal(t, "Science & Tech", c.Current())
	c.Next()
	assert.Equal(t, "All", c.Current())

	assert.True(t, c.Select("Global"))
	assert.False(t, c.Select("Sports"))
	assert.Equal(t, "Global", c.Current())

	assert.Empty(t, NewCategoryBar(nil).Current())
}

func TestCategoryBarTruncates(t *testing.T) {
	c := NewCategoryBar([]string{"All", "Business", "Science & Tech", "Film & Media"})
	assert.LessOrEqual(t, ansi.StringWidth(c.View(20)), 20)
}

func TestProgressBarFill(t *testing.T) {
	p := NewProgressBar(0, 13, 40)
	assert.InDelta(t, 1.0/13, p.Ratio, 1e-9)
	assert.Equal(t, 1, p.Filled(13))

	p = NewProgressBar(12, 13, 40)
	assert.Equal(t, 13, p.Filled(13))
	assert.Contains(t, ansi.Strip(p.View()), "13/13")
}

func TestPageIndicator(t *testing.T) {
	assert.Equal(t, "○ ● ○", ansi.Strip(PageIndicator(1, 3)))
	assert.Empty(t, PageIndicator(0, 0))
}

func TestButtonRow(t *testing.T) {
	type pressed string
	row := NewButtonRow(
		Button{Label: "Don't Allow", OnPress: func() tea.Cmd { return func() tea.Msg { return pressed("deny") } }},
		Button{Label: "Allow", OnPress: func() tea.Cmd { return func() tea.Msg { return pressed("allow") } }},
	)
	row, _ = row.Update(press("right"))
	row, _ = row.Update(press("right"))
	assert.Equal(t, 1, row.Focused)

	_, cmd := row.Update(press("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, pressed("allow"), cmd())
}
