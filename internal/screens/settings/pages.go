package settings

import (
	"log/slog"
	"runtime"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"golang.org/x/mod/semver"

	"github.com/blinkapp/blink/internal/prefs"
	"github.com/blinkapp/blink/internal/screens/onboarding"
	"github.com/blinkapp/blink/internal/ui/components"
	"github.com/blinkapp/blink/internal/ui/layout"
	"github.com/blinkapp/blink/internal/ui/theme"
)

func (m *Model) newPage(id string) Page {
	switch id {
	case "feedSize":
		return &wizardPage{id: id, page: onboarding.NewFeedSizePage(m.prefs)}
	case "startTime":
		return &wizardPage{id: id, page: onboarding.NewStartTimePage(m.prefs)}
	case "endTime":
		return &wizardPage{id: id, page: onboarding.NewEndTimePage(m.prefs)}
	case "categories":
		return &wizardPage{id: id, page: onboarding.NewCategoriesPage(m.prefs)}
	case "language":
		return newLanguagePage(m.prefs)
	case "notifications", "reading", "privacy", "advanced", "backup":
		return newSwitchPage(id, m.prefs, m.switches)
	case "version":
		return newInfoPage(id, versionRows(m.build.Version))
	case "feedback":
		return newFeedbackPage(id, m.log)
	case "debug":
		return newDebugPage(id, m.build)
	}
	return newInfoPage(id, infoRows[id])
}

// wizardPage hosts an onboarding page inside settings. The page's "next"
// request closes the sub-page instead of advancing a wizard.
type wizardPage struct {
	id   string
	page onboarding.Page
}

func (w *wizardPage) Update(msg tea.Msg) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, components.Keys.Close) {
		return closeCmd(w.id)
	}
	var cmd tea.Cmd
	w.page, cmd = w.page.Update(msg)
	if cmd == nil {
		return nil
	}
	id := w.id
	return func() tea.Msg {
		msg := cmd()
		if _, ok := msg.(onboarding.NextMsg); ok {
			return closeCmd(id)()
		}
		return msg
	}
}

func (w *wizardPage) View(width, height int) string {
	return w.page.View(width, height)
}

func (w *wizardPage) KeyHints() []layout.KeyHint {
	return append(w.page.KeyHints(), layout.KeyHint{Key: "Esc", Description: "Back"})
}

// languagePage picks the interface language.
type languagePage struct {
	prefs *prefs.Preferences
	list  components.OptionList
}

func newLanguagePage(p *prefs.Preferences) *languagePage {
	return &languagePage{prefs: p, list: components.NewOptionList(prefs.Languages, false, p.Language)}
}

func (l *languagePage) Update(msg tea.Msg) tea.Cmd {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(kmsg, components.Keys.Close):
		return closeCmd("language")
	case key.Matches(kmsg, components.Keys.Enter), key.Matches(kmsg, components.Keys.Toggle):
		l.list.ChooseCursor()
		l.prefs.Language = l.list.Value()
		return nil
	}
	l.list, _ = l.list.Update(msg)
	return nil
}

func (l *languagePage) View(width, _ int) string {
	return l.list.View()
}

func (l *languagePage) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "↑↓", Description: "Navigate"}, {Key: "Enter", Description: "Select"}, {Key: "Esc", Description: "Back"}}
}

// switches lists the toggles of each switch page. The first notification
// switch is the notifications preference.
var switches = map[string][]string{
	"notifications": {"Push Notifications", "Daily Digest", "Breaking News Alerts"},
	"reading":       {"Large Text", "Reader Mode", "Auto-play Videos"},
	"privacy":       {"Personalized Ads", "Usage Analytics", "Crash Reports"},
	"advanced":      {"Developer Mode", "Beta Features"},
	"backup":        {"Sync Across Devices", "Automatic Backup"},
}

const pushNotifications = "notifications/Push Notifications"

func defaultSwitches() map[string]bool {
	return map[string]bool{
		"notifications/Daily Digest": true,
		"privacy/Crash Reports":      true,
		"backup/Automatic Backup":    true,
	}
}

// switchPage is a list of independent on/off settings.
type switchPage struct {
	id     string
	prefs  *prefs.Preferences
	values map[string]bool
	list   components.OptionList
}

func newSwitchPage(id string, p *prefs.Preferences, values map[string]bool) *switchPage {
	values[pushNotifications] = p.Notifications
	names := switches[id]
	var on []string
	for _, n := range names {
		if values[id+"/"+n] {
			on = append(on, n)
		}
	}
	return &switchPage{id: id, prefs: p, values: values, list: components.NewOptionList(names, true, on...)}
}

func (s *switchPage) Update(msg tea.Msg) tea.Cmd {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	if key.Matches(kmsg, components.Keys.Close) {
		return closeCmd(s.id)
	}
	if key.Matches(kmsg, components.Keys.Enter) {
		kmsg = tea.KeyPressMsg{Code: tea.KeySpace}
	}
	s.list, _ = s.list.Update(kmsg)
	for i, n := range s.list.Options {
		s.values[s.id+"/"+n] = s.list.IsChosen(i)
	}
	if s.id == "notifications" {
		s.prefs.Notifications = s.values[pushNotifications]
	}
	return nil
}

func (s *switchPage) View(width, _ int) string {
	return s.list.View()
}

func (s *switchPage) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "↑↓", Description: "Navigate"}, {Key: "Space", Description: "Toggle"}, {Key: "Esc", Description: "Back"}}
}

// row is one label/value line of an informational page.
type row struct {
	Label string
	Value string
}

var infoRows = map[string][]row{
	"profile": {
		{"Name", "Guest"},
		{"Member since", "Today"},
	},
	"account": {
		{"Plan", "Free trial"},
		{"Sign-in", "Not connected"},
	},
	"content": {
		{"Headline style", "Short"},
		{"Sources", "Curated"},
	},
	"appearance": {
		{"Theme", "Dark"},
		{"Accent", "Blue"},
	},
	"security": {
		{"App lock", "Off"},
	},
	"dataUsage": {
		{"Images", "Wi-Fi only"},
		{"Prefetch", "On"},
	},
	"sharing": {
		{"Share format", "Headline + link"},
	},
	"help": {
		{"FAQ", "blabla.com/help"},
		{"Contact", "support@blabla.com"},
	},
	"about": {
		{"Blink", "A daily news digest without the doomscroll."},
	},
	"legal": {
		{"Terms of Service", "blabla.com/terms"},
		{"Privacy Policy", "blabla.com/privacy"},
	},
}

// infoPage is a scrollable list of rows. Pages without rows show the
// coming-soon notice.
type infoPage struct {
	id   string
	rows []row
	vp   viewport.Model
}

func newInfoPage(id string, rows []row) *infoPage {
	return &infoPage{id: id, rows: rows, vp: viewport.New()}
}

func (p *infoPage) Update(msg tea.Msg) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, components.Keys.Close) {
		return closeCmd(p.id)
	}
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return cmd
}

func (p *infoPage) View(width, height int) string {
	if len(p.rows) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Text).
			Render("╌╌ Coming Soon ╌╌\n\nThis page is being built.\nCheck back later!")
	}
	labelWidth := 0
	for _, r := range p.rows {
		labelWidth = max(labelWidth, lipgloss.Width(r.Label))
	}
	lines := make([]string, len(p.rows))
	for i, r := range p.rows {
		label := theme.Meta.Width(labelWidth + 2).Render(r.Label)
		lines[i] = label + theme.Body.Render(r.Value)
	}
	p.vp.SetWidth(width)
	p.vp.SetHeight(max(height, 1))
	p.vp.SetContent(strings.Join(lines, "\n"))
	return p.vp.View()
}

func (p *infoPage) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "↑↓", Description: "Scroll"}, {Key: "Esc", Description: "Back"}}
}

// versionRows describes the build. Non-semver versions (dev builds) are
// shown as-is.
func versionRows(version string) []row {
	v := version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	rows := []row{{"Version", version}}
	if semver.IsValid(v) {
		rows[0].Value = semver.Canonical(v)
		channel := "stable"
		if semver.Prerelease(v) != "" {
			channel = "pre-release"
		}
		rows = append(rows, row{"Channel", channel}, row{"Series", semver.MajorMinor(v)})
	} else {
		rows = append(rows, row{"Channel", "development"})
	}
	return append(rows,
		row{"Go", runtime.Version()},
		row{"Platform", runtime.GOOS + "/" + runtime.GOARCH},
	)
}

// feedbackPage collects a one-line message and writes it to the log.
type feedbackPage struct {
	id    string
	log   *slog.Logger
	input components.TextInput
}

func newFeedbackPage(id string, log *slog.Logger) *feedbackPage {
	return &feedbackPage{id: id, log: log, input: components.NewTextInput("Tell us what you think…", 280)}
}

func (f *feedbackPage) Update(msg tea.Msg) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(kmsg, components.Keys.Close):
			return closeCmd(f.id)
		case key.Matches(kmsg, components.Keys.Enter):
			if f.input.Submitted() || f.input.Value() == "" {
				return nil
			}
			f.input.Submit()
			f.log.Info("feedback submitted", "text", f.input.Value())
			return nil
		}
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (f *feedbackPage) View(width, _ int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Subtitle.Render("What should we improve?"),
		"",
		f.input.View(),
	)
}

func (f *feedbackPage) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Send"}, {Key: "Esc", Description: "Back"}}
}

// debugPage shows run details and can restart onboarding.
type debugPage struct {
	id      string
	info    *infoPage
	buttons components.ButtonRow
}

func newDebugPage(id string, build BuildInfo) *debugPage {
	rows := []row{
		{"Session", build.SessionID},
		{"Log file", build.LogFile},
	}
	return &debugPage{
		id:   id,
		info: newInfoPage(id, rows),
		buttons: components.NewButtonRow(components.Button{
			Label: "Restart Onboarding",
			OnPress: func() tea.Cmd {
				return func() tea.Msg { return RestartOnboardingMsg{} }
			},
		}),
	}
}

func (d *debugPage) Update(msg tea.Msg) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, components.Keys.Close) {
		return closeCmd(d.id)
	}
	var cmd tea.Cmd
	d.buttons, cmd = d.buttons.Update(msg)
	return cmd
}

func (d *debugPage) View(width, height int) string {
	rows := d.info.View(width, len(d.info.rows))
	return lipgloss.JoinVertical(lipgloss.Left, rows, "", d.buttons.View())
}

func (d *debugPage) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Restart onboarding"}, {Key: "Esc", Description: "Back"}}
}

