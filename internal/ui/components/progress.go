package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abhisek/pathplanner/internal/ui/theme"
)

// ProgressBar is a horizontal bar for a 0-100 percentage.
type ProgressBar struct {
	Label   string
	Percent float64
	Width   int

	// Plain draws with block characters and no ANSI styling.
	Plain bool
}

// View renders the bar followed by the percentage.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		if p.Plain {
			b.WriteString(p.Label)
		} else {
			b.WriteString(theme.WeekHeader.Render(p.Label))
		}
		b.WriteString("  ")
	}

	suffix := fmt.Sprintf("  %6.2f%%", p.Percent)
	barWidth := max(p.Width-lipgloss.Width(b.String())-len(suffix), 4)

	filled := int(float64(barWidth) * p.Percent / 100)
	filled = min(max(filled, 0), barWidth)
	empty := barWidth - filled

	if p.Plain {
		b.WriteString(strings.Repeat("█", filled))
		b.WriteString(strings.Repeat("░", empty))
		b.WriteString(suffix)
		return b.String()
	}

	b.WriteString(theme.ProgressFilled.Render(strings.Repeat(" ", filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", empty)))
	b.WriteString(theme.Subtitle.Render(suffix))
	return b.String()
}
