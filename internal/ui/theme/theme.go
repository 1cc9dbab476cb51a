package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — muted board-and-wood tones
var (
	Primary   = lipgloss.Color("#D4A24C") // Amber
	Secondary = lipgloss.Color("#7FA650") // Board Green
	Accent    = lipgloss.Color("#5FA8D3") // Steel Blue
	Success   = lipgloss.Color("#81B64C") // Green
	Error     = lipgloss.Color("#E2584B") // Red
	Text      = lipgloss.Color("#ECEBE9") // Off-White
	TextDim   = lipgloss.Color("#8C8A87") // Gray
	BgCard    = lipgloss.Color("#262421") // Charcoal
	Border    = lipgloss.Color("#3D3A36") // Dark Gray
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
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
