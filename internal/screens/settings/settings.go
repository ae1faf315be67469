// Package settings is the settings menu and its sub-pages. The feed's
// overlay navigator decides which of the two is showing; this package only
// renders them and turns keys into overlay requests.
package settings

import (
	"fmt"
	"log/slog"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/blinkapp/blink/internal/logging"
	"github.com/blinkapp/blink/internal/overlay"
	"github.com/blinkapp/blink/internal/prefs"
	"github.com/blinkapp/blink/internal/ui/components"
	"github.com/blinkapp/blink/internal/ui/layout"
	"github.com/blinkapp/blink/internal/ui/theme"
)

// RestartOnboardingMsg asks the app to run the onboarding wizard again.
type RestartOnboardingMsg struct{}

// BuildInfo is shown on the Version Info and Debug pages.
type BuildInfo struct {
	Version   string
	SessionID string
	LogFile   string
}

// Page is one settings sub-page.
type Page interface {
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
	KeyHints() []layout.KeyHint
}

// Model is the settings menu plus the sub-page most recently opened.
type Model struct {
	prefs    *prefs.Preferences
	log      *slog.Logger
	build    BuildInfo
	menu     components.Menu
	switches map[string]bool
	pageID   string
	page     Page
}

// New creates the settings menu.
func New(p *prefs.Preferences, log *slog.Logger, build BuildInfo) *Model {
	if log == nil {
		log = logging.Discard()
	}
	items := make([]components.MenuItem, len(Entries))
	for i, e := range Entries {
		id := e.ID
		items[i] = components.MenuItem{
			ID:    id,
			Label: e.Icon + "  " + e.Title,
			Action: func() tea.Cmd {
				return func() tea.Msg { return overlay.OpenMsg{Overlay: overlay.SubScreen(id)} }
			},
		}
	}
	return &Model{
		prefs:    p,
		log:      log,
		build:    build,
		menu:     components.NewMenu(items),
		switches: defaultSwitches(),
	}
}

// Enter builds the sub-page for id from the current preferences. The owner
// calls it once the navigator has accepted the sub-page.
func (m *Model) Enter(id string) {
	m.pageID = id
	m.page = m.newPage(id)
}

// Selected returns the id of the highlighted menu entry.
func (m *Model) Selected() string {
	if item, ok := m.menu.Current(); ok {
		return item.ID
	}
	return ""
}

// Switch reports a toggle on one of the switch pages, keyed "page/label".
func (m *Model) Switch(name string) bool {
	return m.switches[name]
}

// Update routes msg to the sub-page when sub is set, otherwise to the menu.
func (m *Model) Update(msg tea.Msg, sub string) tea.Cmd {
	if sub != "" && m.page != nil && sub == m.pageID {
		return m.page.Update(msg)
	}
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, components.Keys.Close) {
		return func() tea.Msg { return overlay.CloseMsg{Overlay: overlay.Menu} }
	}
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return cmd
}

// ViewMenu renders the settings menu.
func (m *Model) ViewMenu(width, height int) string {
	for i := range m.menu.Items {
		m.menu.Items[i].Detail = m.summary(m.menu.Items[i].ID)
	}
	cw := components.ContentWidth(width)
	title := theme.Title.Width(cw).Render("Settings")
	body := lipgloss.JoinVertical(lipgloss.Left, title, "", m.menu.View(max(height-2, 1)))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

// ViewPage renders the current sub-page under its title.
func (m *Model) ViewPage(width, height int) string {
	if m.page == nil {
		return ""
	}
	cw := components.ContentWidth(width)
	title := theme.Title.Width(cw).Render(TitleOf(m.pageID))
	body := m.page.View(cw, max(height-2, 1))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, title, "", body))
}

// KeyHints lists the bindings of the menu or sub-page.
func (m *Model) KeyHints(sub string) []layout.KeyHint {
	if sub != "" && m.page != nil {
		return m.page.KeyHints()
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Close"},
	}
}

// summary is the current value shown next to interactive entries.
func (m *Model) summary(id string) string {
	switch id {
	case "feedSize":
		return fmt.Sprintf("%d", m.prefs.FeedSize)
	case "startTime":
		return m.prefs.StartTime.String()
	case "endTime":
		return m.prefs.EndTime.String()
	case "categories":
		if len(m.prefs.Categories) == 0 {
			return "All"
		}
		return strings.Join(m.prefs.Categories, ", ")
	case "language":
		return m.prefs.Language
	case "notifications":
		if m.prefs.Notifications {
			return "On"
		}
		return "Off"
	}
	return ""
}

func closeCmd(id string) tea.Cmd {
	return func() tea.Msg { return overlay.CloseMsg{Overlay: overlay.SubScreen(id)} }
}
