package export

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/abhisek/pathplanner/internal/roadmap"
)

// Terminal renders plan as styled Markdown for a terminal of the given
// width. style names a glamour style ("dark", "light", "notty"); empty
// picks one from the terminal background.
func Terminal(plan *roadmap.Plan, opts Options, width int, style string) (string, error) {
	if width <= 0 {
		width = 80
	}
	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(Markdown(plan, opts))
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
