package progress

import (
	"math"
	"slices"
	"strings"

	"github.com/abhisek/pathplanner/internal/roadmap"
)

// Summary counts completion over a set of store entries.
type Summary struct {
	Total     int
	Completed int
	Percent   float64 // 0-100, rounded to 2 decimals
}

// Summarize counts entries whose key starts with prefix. An empty prefix
// covers the whole store.
func Summarize(s Store, prefix string) Summary {
	var sum Summary
	for key, entries := range s {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		for _, done := range entries {
			sum.Total++
			if done {
				sum.Completed++
			}
		}
	}
	sum.Percent = percent(sum.Completed, sum.Total)
	return sum
}

// Percentage returns the share of completed entries, 0-100 rounded to two
// decimals, among keys starting with prefix. It returns 0 when nothing
// matches.
func Percentage(s Store, prefix string) float64 {
	return Summarize(s, prefix).Percent
}

// GoalPercentage scopes Percentage to a single goal's weeks.
func GoalPercentage(s Store, goal string) float64 {
	return Percentage(s, goal+KeySeparator)
}

// WeekSummary is the completion of one plan week.
type WeekSummary struct {
	Week int
	Summary
}

// WeekSummaries reports completion for each week of the plan.
func WeekSummaries(s Store, goal string, plan *roadmap.Plan) []WeekSummary {
	out := make([]WeekSummary, 0, plan.Len())
	for _, w := range plan.Weeks {
		var sum Summary
		for _, done := range s[Key(goal, w.Number)] {
			sum.Total++
			if done {
				sum.Completed++
			}
		}
		sum.Percent = percent(sum.Completed, sum.Total)
		out = append(out, WeekSummary{Week: w.Number, Summary: sum})
	}
	return out
}

// GoalSummaries reports completion for every week the store holds for
// goal, in week order. It needs no plan, so it also covers weeks of a
// plan that has since been regenerated with fewer weeks.
func GoalSummaries(s Store, goal string) []WeekSummary {
	var out []WeekSummary
	for key, entries := range s {
		g, week, ok := SplitKey(key)
		if !ok || g != goal {
			continue
		}
		var sum Summary
		for _, done := range entries {
			sum.Total++
			if done {
				sum.Completed++
			}
		}
		sum.Percent = percent(sum.Completed, sum.Total)
		out = append(out, WeekSummary{Week: week, Summary: sum})
	}
	slices.SortFunc(out, func(a, b WeekSummary) int { return a.Week - b.Week })
	return out
}

// GoalSummary totals GoalSummaries.
func GoalSummary(s Store, goal string) Summary {
	var sum Summary
	for _, w := range GoalSummaries(s, goal) {
		sum.Total += w.Total
		sum.Completed += w.Completed
	}
	sum.Percent = percent(sum.Completed, sum.Total)
	return sum
}

// PlanSummary totals WeekSummaries. Unlike GoalPercentage it only counts
// weeks the plan has, so another goal sharing the prefix cannot leak in.
func PlanSummary(s Store, goal string, plan *roadmap.Plan) Summary {
	var sum Summary
	for _, w := range WeekSummaries(s, goal, plan) {
		sum.Total += w.Total
		sum.Completed += w.Completed
	}
	sum.Percent = percent(sum.Completed, sum.Total)
	return sum
}

func percent(done, total int) float64 {
	if total == 0 {
		return 0
	}
	// Ties go to even, so 1/32 reports 3.12 rather than 3.13.
	return math.RoundToEven(100*float64(done)/float64(total)*100) / 100
}
