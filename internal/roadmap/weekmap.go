package roadmap

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var weekKeyPattern = regexp.MustCompile(`(?i)^\s*week\s*(\d+)\s*$`)

// FromWeekMap builds a focus-labelled plan from a "Week N" -> topics map,
// such as one produced by a language model. Keys that do not name a week
// in 1..weeks are ignored, blank topics are dropped, and missing or empty
// weeks get PlaceholderTopic.
func FromWeekMap(m map[string][]string, weeks int) (*Plan, error) {
	if weeks <= 0 {
		return nil, fmt.Errorf("%w: weeks must be at least 1, got %d", ErrInvalidArgument, weeks)
	}

	byWeek := make(map[int][]string, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		topics := m[key]
		n, ok := parseWeekKey(key)
		if !ok || n > weeks {
			continue
		}
		for _, t := range topics {
			if t = strings.TrimSpace(t); t != "" {
				byWeek[n] = append(byWeek[n], t)
			}
		}
	}

	plan := &Plan{Weeks: make([]Week, 0, weeks)}
	for n := 1; n <= weeks; n++ {
		w := Week{Number: n, Topics: byWeek[n]}
		applyFocus(&w)
		plan.Weeks = append(plan.Weeks, w)
	}
	return plan, nil
}

func parseWeekKey(key string) (int, bool) {
	m := weekKeyPattern.FindStringSubmatch(key)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
