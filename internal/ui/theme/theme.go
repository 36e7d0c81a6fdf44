// Package theme holds the colors and styles of the planner's CLI output.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	Primary = lipgloss.Color("#6366F1") // Indigo
	Done    = lipgloss.Color("#22C55E") // Green
	Pending = lipgloss.Color("#F59E0B") // Amber
	Text    = lipgloss.Color("#F8FAFC")
	TextDim = lipgloss.Color("#94A3B8")
	Track   = lipgloss.Color("#334155")
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	WeekHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text)

	Focus = lipgloss.NewStyle().
		Foreground(Pending).
		Italic(true)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Affirmation = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Track).
			Padding(0, 1)
)

// Topic states
var (
	TopicDone = lipgloss.NewStyle().
			Foreground(Done).
			Strikethrough(true)

	TopicPending = lipgloss.NewStyle().
			Foreground(Text)

	Check = lipgloss.NewStyle().
		Foreground(Done).
		Bold(true)
)

// Progress bar
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Done)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Track)
)
