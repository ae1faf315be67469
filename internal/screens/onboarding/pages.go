package onboarding

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/blinkapp/blink/internal/prefs"
	"github.com/blinkapp/blink/internal/ui/components"
	"github.com/blinkapp/blink/internal/ui/layout"
	"github.com/blinkapp/blink/internal/ui/theme"
)

// Pages returns the wizard pages in order. Choices are written to p.
func Pages(p *prefs.Preferences) []Page {
	return []Page{
		&textPage{
			title:   "Welcome",
			heading: "No doomscroll.\nJust the headlines you want.",
			buttons: components.NewButtonRow(
				components.Button{Label: "Get Started", OnPress: advance(nil)},
				components.Button{Label: "Sign in", OnPress: advance(nil)},
			),
			footnote: theme.Hint.Render("Already have an account? Sign in"),
		},
		&textPage{
			title:   "Suggestion",
			heading: "Want a suggestion?",
			body:    "Most users choose 7:00–9:00 AM for a focused start.",
			buttons: components.NewButtonRow(
				components.Button{Label: "Continue", OnPress: advance(nil)},
				components.Button{Label: "Use 7:00–9:00", OnPress: advance(func() {
					p.StartTime = prefs.Clock{Hour: 7}
					p.EndTime = prefs.Clock{Hour: 9}
				})},
			),
		},
		NewStartTimePage(p),
		NewEndTimePage(p),
		NewFeedSizePage(p),
		NewCategoriesPage(p),
		&optionsPage{
			title:   "Referral",
			heading: "Where did you hear about us?",
			list:    components.NewOptionList(prefs.Referrals, false, p.Referral),
			commit:  func(l components.OptionList) { p.Referral = l.Value() },
		},
		&textPage{
			title:   "Your Window",
			heading: "Get news you want, exactly when you want",
			buttons: components.NewButtonRow(components.Button{Label: "Continue", OnPress: advance(nil)}),
		},
		&textPage{
			title:   "Notifications",
			heading: "Enable Notifications",
			body:    "Blink would like to send you notifications",
			buttons: components.NewButtonRow(
				components.Button{Label: "Don't Allow", OnPress: advance(func() { p.Notifications = false })},
				components.Button{Label: "Allow", OnPress: advance(func() { p.Notifications = true })},
			),
		},
		&textPage{
			title:   "Save Setup",
			heading: "Save your setup",
			buttons: components.NewButtonRow(
				components.Button{Label: "Continue with Apple", OnPress: advance(nil)},
				components.Button{Label: "Continue with Google", OnPress: advance(nil)},
			),
		},
		&textPage{
			title:    "Unlock",
			heading:  "Unlock headlines that respect your time.",
			body:     theme.Checked.Render("✓") + " No Payments Due Now",
			buttons:  components.NewButtonRow(components.Button{Label: "Continue", OnPress: advance(nil)}),
			footnote: theme.Hint.Render("Just $35,88 per year ($2,99/Mo)"),
		},
		NewReviewPage(),
		&textPage{
			title:   "Ready",
			heading: "You're about to reclaim your attention",
			body: "Based on Blink's early user feedback, starting the day with a curated digest " +
				"instead of doomscrolling can extend your focus windows by up to 35%.",
			buttons: components.NewButtonRow(components.Button{Label: "Continue", OnPress: advance(nil)}),
		},
	}
}

var (
	quarterUp   = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "±15 min"))
	quarterDown = key.NewBinding(key.WithKeys("down", "j"))
	minuteDown  = key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←→", "±1 min"))
	minuteUp    = key.NewBinding(key.WithKeys("right", "l"))
)

// TimePage edits one end of the reading window.
type TimePage struct {
	title   string
	heading string
	body    string
	clock   *prefs.Clock
}

// NewStartTimePage edits the start of the reading window.
func NewStartTimePage(p *prefs.Preferences) *TimePage {
	return NewTimePage("Start Time", "Start Time:",
		"Choose when you want your daily news window to begin. From this moment onward, we will collect the latest news for you.",
		&p.StartTime)
}

// NewEndTimePage edits the end of the reading window.
func NewEndTimePage(p *prefs.Preferences) *TimePage {
	return NewTimePage("End Time", "End Time:",
		"Choose when your daily news window ends. Your digest is ready at this time.",
		&p.EndTime)
}

// NewTimePage creates a time picker writing to clock.
func NewTimePage(title, heading, body string, clock *prefs.Clock) *TimePage {
	return &TimePage{title: title, heading: heading, body: body, clock: clock}
}

func (t *TimePage) Title() string { return t.title }

func (t *TimePage) Update(msg tea.Msg) (Page, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return t, nil
	}
	switch {
	case key.Matches(kmsg, quarterUp):
		*t.clock = t.clock.Add(15)
	case key.Matches(kmsg, quarterDown):
		*t.clock = t.clock.Add(-15)
	case key.Matches(kmsg, minuteUp):
		*t.clock = t.clock.Add(1)
	case key.Matches(kmsg, minuteDown):
		*t.clock = t.clock.Add(-1)
	case key.Matches(kmsg, components.Keys.Enter):
		return t, nextCmd
	}
	return t, nil
}

func (t *TimePage) View(width, height int) string {
	display := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 3).
		Render(t.clock.String())
	return render(width, height, t.heading, t.body, display, components.RenderButton("Continue", true))
}

func (t *TimePage) KeyHints() []layout.KeyHint {
	return append(layout.HintsFromBindings(quarterUp, minuteDown), layout.KeyHint{Key: "Enter", Description: "Continue"})
}

// FeedSizePage picks how many headlines the feed shows.
type FeedSizePage struct {
	prefs *prefs.Preferences
	index int
}

// NewFeedSizePage creates the feed size slider positioned at p.FeedSize.
func NewFeedSizePage(p *prefs.Preferences) *FeedSizePage {
	f := &FeedSizePage{prefs: p}
	for i, n := range prefs.FeedSizes {
		if n == p.FeedSize {
			f.index = i
		}
	}
	return f
}

func (f *FeedSizePage) Title() string { return "Feed Size" }

func (f *FeedSizePage) Update(msg tea.Msg) (Page, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return f, nil
	}
	switch {
	case key.Matches(kmsg, components.Keys.Left):
		f.index = max(f.index-1, 0)
	case key.Matches(kmsg, components.Keys.Right):
		f.index = min(f.index+1, len(prefs.FeedSizes)-1)
	case key.Matches(kmsg, components.Keys.Enter):
		if err := f.prefs.SetFeedSize(prefs.FeedSizes[f.index]); err != nil {
			return f, nil
		}
		return f, nextCmd
	}
	return f, nil
}

func (f *FeedSizePage) View(width, height int) string {
	return render(width, height, "Choose your feed size",
		"Select how many headlines you'd like each time.",
		FeedSizeSlider(f.index),
		components.RenderButton("Continue", true))
}

func (f *FeedSizePage) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "←→", Description: "Adjust"}, {Key: "Enter", Description: "Continue"}}
}

// FeedSizeSlider renders the feed size scale with index selected.
func FeedSizeSlider(index int) string {
	stops := make([]string, len(prefs.FeedSizes))
	for i, n := range prefs.FeedSizes {
		if i == index {
			stops[i] = theme.Selected.Render(fmt.Sprintf("[%d]", n))
		} else {
			stops[i] = theme.Meta.Render(fmt.Sprint(n))
		}
	}
	n := prefs.FeedSizes[index]
	caption := theme.Body.Render(fmt.Sprintf("%d headlines · %s", n, prefs.FeedSizeLabel(n)))
	return strings.Join(stops, theme.Meta.Render(" ─ ")) + "\n\n" + caption
}

// NewCategoriesPage asks which topics the reader follows.
func NewCategoriesPage(p *prefs.Preferences) Page {
	return &optionsPage{
		title:   "Categories",
		heading: "Tell us what you follow",
		body:    "Pick a few categories and we'll send only what matters to you.",
		list:    components.NewOptionList(prefs.Topics, true, p.Categories...),
		commit:  func(l components.OptionList) { p.SetCategories(l.Chosen()) },
	}
}

// optionsPage is a question answered from a list.
type optionsPage struct {
	title   string
	heading string
	body    string
	list    components.OptionList
	commit  func(components.OptionList)
}

func (o *optionsPage) Title() string { return o.title }

func (o *optionsPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, components.Keys.Enter) {
		if !o.list.Multi {
			o.list.ChooseCursor()
		}
		o.commit(o.list)
		return o, nextCmd
	}
	var cmd tea.Cmd
	o.list, cmd = o.list.Update(msg)
	return o, cmd
}

func (o *optionsPage) View(width, height int) string {
	return render(width, height, o.heading, o.body, o.list.View(), components.RenderButton("Continue", true))
}

func (o *optionsPage) KeyHints() []layout.KeyHint {
	if o.list.Multi {
		return []layout.KeyHint{{Key: "↑↓", Description: "Move"}, {Key: "Space", Description: "Toggle"}, {Key: "Enter", Description: "Continue"}}
	}
	return []layout.KeyHint{{Key: "↑↓", Description: "Move"}, {Key: "Enter", Description: "Choose"}}
}

// ReviewPage asks for a star rating. The rating goes nowhere.
type ReviewPage struct {
	rating  int
	buttons components.ButtonRow
}

// NewReviewPage creates the rating prompt.
func NewReviewPage() *ReviewPage {
	return &ReviewPage{
		buttons: components.NewButtonRow(
			components.Button{Label: "Continue", OnPress: advance(nil)},
			components.Button{Label: "Not now", OnPress: advance(nil)},
		),
	}
}

func (r *ReviewPage) Title() string { return "Review" }

// Rating returns the chosen star count, 0 if none.
func (r *ReviewPage) Rating() int { return r.rating }

func (r *ReviewPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		if s := kmsg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '5' {
			r.rating = int(s[0] - '0')
			return r, nil
		}
	}
	var cmd tea.Cmd
	r.buttons, cmd = r.buttons.Update(msg)
	return r, cmd
}

func (r *ReviewPage) View(width, height int) string {
	stars := theme.Selected.Render(strings.Repeat("★", r.rating)) +
		theme.Meta.Render(strings.Repeat("☆", 5-r.rating))
	return render(width, height, "Join Thousands Who Trust Blink",
		"Tap a star to rate it on the App Store.", stars, r.buttons.View())
}

func (r *ReviewPage) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "1-5", Description: "Rate"}, {Key: "←→", Description: "Choose"}, {Key: "Enter", Description: "Continue"}}
}
