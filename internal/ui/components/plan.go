package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abhisek/pathplanner/internal/progress"
	"github.com/abhisek/pathplanner/internal/resources"
	"github.com/abhisek/pathplanner/internal/roadmap"
	"github.com/abhisek/pathplanner/internal/ui/theme"
)

// PlanView renders a roadmap with each topic's completion state, a bar
// per week, the overall percentage and the matching affirmation.
type PlanView struct {
	Plan      *roadmap.Plan
	Store     progress.Store
	Resources map[string][]resources.Link
	Width     int
	Plain     bool
}

func (v PlanView) style(s lipgloss.Style, text string) string {
	if v.Plain {
		return text
	}
	return s.Render(text)
}

func (v PlanView) View() string {
	width := v.Width
	if width <= 0 {
		width = 72
	}
	goal := v.Plan.Goal

	var b strings.Builder
	title := "Study Roadmap"
	if goal != "" {
		title += ": " + goal
	}
	b.WriteString(v.style(theme.Title, title))
	b.WriteString("\n\n")

	weeks := progress.WeekSummaries(v.Store, goal, v.Plan)
	for i, w := range v.Plan.Weeks {
		b.WriteString(ProgressBar{
			Label:   fmt.Sprintf("%-8s", roadmap.Label(w.Number)),
			Percent: weeks[i].Percent,
			Width:   width,
			Plain:   v.Plain,
		}.View())
		b.WriteString("\n")

		if w.Focus != "" {
			b.WriteString("  ")
			b.WriteString(v.style(theme.Focus, "Focus: "+w.Focus))
			b.WriteString("\n")
		}
		if len(w.Topics) == 0 {
			b.WriteString("  ")
			b.WriteString(v.style(theme.Hint, "(no topics)"))
			b.WriteString("\n")
		}
		for _, t := range w.Topics {
			b.WriteString("  ")
			if v.Store.Completed(goal, w.Number, t) {
				b.WriteString(v.style(theme.Check, "[x]"))
				b.WriteString(" ")
				b.WriteString(v.style(theme.TopicDone, t))
			} else {
				b.WriteString("[ ] ")
				b.WriteString(v.style(theme.TopicPending, t))
			}
			b.WriteString("\n")
			for _, l := range v.Resources[t] {
				b.WriteString("      ")
				b.WriteString(v.style(theme.Hint, l.Title+" <"+l.URL+">"))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	overall := progress.PlanSummary(v.Store, goal, v.Plan)
	b.WriteString(ProgressBar{Label: "Overall ", Percent: overall.Percent, Width: width, Plain: v.Plain}.View())
	b.WriteString("\n")
	b.WriteString(v.style(theme.Affirmation, progress.Affirmation(overall.Percent)))
	b.WriteString("\n")
	return b.String()
}
