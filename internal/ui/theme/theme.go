package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette for kid-facing terminal output: warm and friendly, readable on dark
// backgrounds.
var (
	Primary   = lipgloss.Color("#7C3AED") // Violet
	Secondary = lipgloss.Color("#0EA5E9") // Sky Blue
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#4ADE80") // Soft Green
	Error     = lipgloss.Color("#FB7185") // Coral
	Text      = lipgloss.Color("#FAFAF9") // Near White
	TextDim   = lipgloss.Color("#A8A29E") // Warm Gray
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Feedback states
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Partial = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Highlight = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)
)
