// Package export renders a roadmap as Markdown, standalone HTML, JSON or
// styled terminal output.
package export

import (
	"fmt"
	"strings"

	"github.com/abhisek/pathplanner/internal/progress"
	"github.com/abhisek/pathplanner/internal/resources"
	"github.com/abhisek/pathplanner/internal/roadmap"
)

// DefaultTitle heads every exported roadmap unless Options.Title is set.
const DefaultTitle = "PathPlanner.AI – Your Study Roadmap"

// Options controls what goes into an export.
type Options struct {
	Title string

	// Progress, when set, renders each topic as a checkbox ticked from
	// the store entries of the plan's goal.
	Progress progress.Store

	// Resources maps a topic to links listed under it.
	Resources map[string][]resources.Link
}

func (o Options) title() string {
	if o.Title != "" {
		return o.Title
	}
	return DefaultTitle
}

// Markdown renders plan as a Markdown document.
func Markdown(plan *roadmap.Plan, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", escape(opts.title()))
	if plan.Goal != "" {
		fmt.Fprintf(&b, "**Goal:** %s\n\n", escape(plan.Goal))
	}
	if opts.Progress != nil && plan.Goal != "" {
		s := progress.PlanSummary(opts.Progress, plan.Goal, plan)
		fmt.Fprintf(&b, "**Progress:** %d/%d topics (%.2f%%)\n\n", s.Completed, s.Total, s.Percent)
	}

	for _, w := range plan.Weeks {
		fmt.Fprintf(&b, "## %s\n\n", roadmap.Label(w.Number))
		if w.Focus != "" {
			fmt.Fprintf(&b, "**Focus:** %s\n\n", escape(w.Focus))
		}
		if len(w.Topics) == 0 {
			b.WriteString("_No topics this week._\n\n")
			continue
		}
		for _, t := range w.Topics {
			b.WriteString("- ")
			if opts.Progress != nil {
				if opts.Progress.Completed(plan.Goal, w.Number, t) {
					b.WriteString("[x] ")
				} else {
					b.WriteString("[ ] ")
				}
			}
			b.WriteString(escape(t))
			b.WriteString("\n")
			for _, l := range opts.Resources[t] {
				fmt.Fprintf(&b, "  - [%s](%s)\n", escape(l.Title), l.URL)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
)

// escape keeps topic text literal in Markdown.
func escape(s string) string {
	return mdEscaper.Replace(s)
}
