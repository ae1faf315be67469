package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Button is one labelled action.
type Button struct {
	Label   string
	OnPress func() tea.Cmd
}

// ButtonRow is a horizontal set of buttons with one focused.
type ButtonRow struct {
	Buttons []Button
	Focused int
}

// NewButtonRow creates a row focused on the first button.
func NewButtonRow(buttons ...Button) ButtonRow {
	return ButtonRow{Buttons: buttons}
}

// Update moves focus with left/right (or tab) and presses on enter.
func (r ButtonRow) Update(msg tea.Msg) (ButtonRow, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(r.Buttons) == 0 {
		return r, nil
	}

	switch {
	case key.Matches(kmsg, Keys.Left):
		if r.Focused > 0 {
			r.Focused--
		}
	case key.Matches(kmsg, Keys.Right), kmsg.String() == "tab":
		if r.Focused < len(r.Buttons)-1 {
			r.Focused++
		}
	case key.Matches(kmsg, Keys.Enter):
		if b := r.Buttons[r.Focused]; b.OnPress != nil {
			return r, b.OnPress()
		}
	}
	return r, nil
}

// View renders the buttons side by side.
func (r ButtonRow) View() string {
	parts := make([]string, len(r.Buttons))
	for i, b := range r.Buttons {
		parts[i] = RenderButton(b.Label, i == r.Focused)
	}
	return strings.Join(parts, "  ")
}
