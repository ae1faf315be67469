package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: paper and ink, one accent.
var (
	Primary   = lipgloss.Color("#FAF9F6") // Paper
	Secondary = lipgloss.Color("#C0C0C0") // Silver
	Accent    = lipgloss.Color("#0A84FF") // Link blue
	Success   = lipgloss.Color("#30D158") // Green
	Error     = lipgloss.Color("#FF3B30") // Red
	Text      = lipgloss.Color("#E6E6E6") // Light grey
	TextDim   = lipgloss.Color("#808080") // Grey
	BgDark    = lipgloss.Color("#16191C") // Ink
	BgCard    = lipgloss.Color("#1E1E1E") // Card
	Border    = lipgloss.Color("#2A2A2A") // Rule
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Headline = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	Meta = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	CardSelected = Card.
			BorderForeground(Primary)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Checked = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Primary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Foreground(Text).
			Padding(0, 2)

	ChipActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Padding(0, 1)

	ChipInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Padding(0, 1)

	DotActive = lipgloss.NewStyle().
			Foreground(Primary)

	DotInactive = lipgloss.NewStyle().
			Foreground(Border)
)
