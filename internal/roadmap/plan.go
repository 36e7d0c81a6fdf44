package roadmap

import (
	"fmt"
	"slices"
)

// PlaceholderTopic fills weeks that receive no topics when focus labels
// are requested.
const PlaceholderTopic = "Revision / Practice"

// Week is one bucket of the roadmap.
type Week struct {
	Number int      `json:"week"`
	Topics []string `json:"topics"`

	// Focus is the week's headline topic. Empty unless the plan was built
	// with focus labels.
	Focus string `json:"focus,omitempty"`
}

// Plan is a week-by-week study plan. Weeks are numbered 1..N in order.
type Plan struct {
	Goal  string `json:"goal,omitempty"`
	Weeks []Week `json:"weeks"`
}

// Len returns the number of weeks.
func (p *Plan) Len() int {
	return len(p.Weeks)
}

// Week returns week n (1-indexed).
func (p *Plan) Week(n int) (Week, bool) {
	if n < 1 || n > len(p.Weeks) {
		return Week{}, false
	}
	w := p.Weeks[n-1]
	w.Topics = slices.Clone(w.Topics)
	return w, true
}

// Topics returns every topic in week order.
func (p *Plan) Topics() []string {
	var out []string
	for _, w := range p.Weeks {
		out = append(out, w.Topics...)
	}
	return out
}

// Label returns the display identifier for week n.
func Label(n int) string {
	return fmt.Sprintf("Week %d", n)
}
