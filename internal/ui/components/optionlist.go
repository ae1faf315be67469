package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/blinkapp/blink/internal/ui/theme"
)

// OptionList is a vertical list of choices. In single mode choosing an
// option clears the others; in multi mode options toggle independently.
type OptionList struct {
	Options []string
	Multi   bool
	Cursor  int
	chosen  []bool
}

// NewOptionList creates a list with the named options already chosen.
func NewOptionList(options []string, multi bool, chosen ...string) OptionList {
	l := OptionList{
		Options: options,
		Multi:   multi,
		chosen:  make([]bool, len(options)),
	}
	for _, c := range chosen {
		for i, o := range options {
			if o == c {
				l.chosen[i] = true
				if !multi {
					l.Cursor = i
				}
			}
		}
	}
	return l
}

// Update moves the cursor and toggles the option under it.
func (l OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(l.Options) == 0 {
		return l, nil
	}

	switch {
	case key.Matches(kmsg, Keys.Up):
		if l.Cursor > 0 {
			l.Cursor--
		}
	case key.Matches(kmsg, Keys.Down):
		if l.Cursor < len(l.Options)-1 {
			l.Cursor++
		}
	case key.Matches(kmsg, Keys.Toggle):
		l.toggle(l.Cursor)
	}
	return l, nil
}

// ChooseCursor chooses the option under the cursor. In multi mode it is a
// no-op when that option is already chosen.
func (l *OptionList) ChooseCursor() {
	if l.Cursor < 0 || l.Cursor >= len(l.Options) {
		return
	}
	if l.Multi && l.chosen[l.Cursor] {
		return
	}
	l.toggle(l.Cursor)
}

func (l *OptionList) toggle(i int) {
	if l.chosen == nil {
		l.chosen = make([]bool, len(l.Options))
	}
	if l.Multi {
		l.chosen[i] = !l.chosen[i]
		return
	}
	for j := range l.chosen {
		l.chosen[j] = j == i
	}
}

// IsChosen reports whether option i is chosen.
func (l OptionList) IsChosen(i int) bool {
	return i >= 0 && i < len(l.chosen) && l.chosen[i]
}

// Chosen returns the chosen options in list order.
func (l OptionList) Chosen() []string {
	var out []string
	for i, o := range l.Options {
		if l.IsChosen(i) {
			out = append(out, o)
		}
	}
	return out
}

// Value returns the first chosen option, or "".
func (l OptionList) Value() string {
	if c := l.Chosen(); len(c) > 0 {
		return c[0]
	}
	return ""
}

// View renders the list.
func (l OptionList) View() string {
	lines := make([]string, len(l.Options))
	for i, o := range l.Options {
		mark := "( )"
		if l.Multi {
			mark = "[ ]"
		}
		if l.IsChosen(i) {
			mark = "(•)"
			if l.Multi {
				mark = "[✓]"
			}
			mark = theme.Checked.Render(mark)
		}

		prefix := "  "
		style := theme.Unselected
		if i == l.Cursor {
			prefix = "▸ "
			style = theme.Selected
		}
		lines[i] = style.Render(prefix) + mark + " " + style.Render(o)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Len returns the number of options.
func (l OptionList) Len() int {
	return len(l.Options)
}

// String lists the chosen options, comma separated.
func (l OptionList) String() string {
	return strings.Join(l.Chosen(), ", ")
}
