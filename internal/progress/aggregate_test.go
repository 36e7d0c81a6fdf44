package progress

import (
	"fmt"
	"testing"

	"github.com/abhisek/pathplanner/internal/roadmap"
)

func sampleStore() Store {
	return Store{
		"G_1": {"x": true, "y": false},
		"G_2": {"z": true},
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name   string
		store  Store
		prefix string
		want   float64
	}{
		{"single week", sampleStore(), "G_1", 50.0},
		{"all entries", sampleStore(), "", 66.67},
		{"goal prefix", sampleStore(), "G", 66.67},
		{"no match", sampleStore(), "Other", 0},
		{"empty store", Store{}, "", 0},
		{"nil store", nil, "", 0},
		{"all done", Store{"a_1": {"p": true, "q": true}}, "a", 100},
		{"empty week map", Store{"a_1": {}}, "a", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percentage(tt.store, tt.prefix); got != tt.want {
				t.Errorf("Percentage(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}

func weekOf(n, done int) Store {
	entries := make(map[string]bool, n)
	for i := range n {
		entries[fmt.Sprintf("t%02d", i)] = i < done
	}
	return Store{"G_1": entries}
}

func TestPercentage_RoundsHalfToEven(t *testing.T) {
	tests := []struct {
		n, done int
		want    float64
	}{
		{32, 1, 3.12},  // 3.125
		{32, 3, 9.38},  // 9.375
		{32, 5, 15.62}, // 15.625
		{3, 2, 66.67},
		{8, 1, 12.5},
	}
	for _, tt := range tests {
		if got := Percentage(weekOf(tt.n, tt.done), "G"); got != tt.want {
			t.Errorf("Percentage(%d/%d) = %v, want %v", tt.done, tt.n, got, tt.want)
		}
	}
}

func TestPercentage_IsPure(t *testing.T) {
	s := sampleStore()
	Percentage(s, "")
	if len(s) != 2 || len(s["G_1"]) != 2 || len(s["G_2"]) != 1 {
		t.Fatalf("store modified: %v", s)
	}
}

func TestGoalPercentage_ScopesToGoal(t *testing.T) {
	s := Store{
		"GATE_1":      {"a": true, "b": true},
		"GATE prep_1": {"c": false},
	}
	if got := GoalPercentage(s, "GATE"); got != 100 {
		t.Errorf("GoalPercentage(GATE) = %v, want 100", got)
	}
	if got := GoalPercentage(s, "GATE prep"); got != 0 {
		t.Errorf("GoalPercentage(GATE prep) = %v, want 0", got)
	}
}

func TestSummarize(t *testing.T) {
	sum := Summarize(sampleStore(), "")
	if sum.Total != 3 || sum.Completed != 2 {
		t.Errorf("Summarize = %+v, want 2 of 3", sum)
	}
}

func TestWeekSummaries(t *testing.T) {
	plan, err := roadmap.Partition([]string{"x", "y", "z", "w"}, 3, roadmap.Options{})
	if err != nil {
		t.Fatal(err)
	}
	s := Store{}
	s.Ensure("G", plan)
	s.Set("G", 1, "x", true)

	got := WeekSummaries(s, "G", plan)
	if len(got) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(got))
	}
	if got[0].Week != 1 || got[0].Total != 2 || got[0].Percent != 50 {
		t.Errorf("week 1 = %+v", got[0])
	}
	if got[2].Total != 1 || got[2].Percent != 0 {
		t.Errorf("week 3 = %+v", got[2])
	}
}

func TestPlanSummary_IgnoresPrefixSiblings(t *testing.T) {
	s := Store{
		"GATE_1":      {"a": true, "b": false},
		"GATE_2026_1": {"c": true, "d": true},
	}
	plan := &roadmap.Plan{Goal: "GATE", Weeks: []roadmap.Week{{Number: 1, Topics: []string{"a", "b"}}}}

	got := PlanSummary(s, "GATE", plan)
	if got.Total != 2 || got.Completed != 1 || got.Percent != 50 {
		t.Fatalf("PlanSummary = %+v, want 1/2 at 50%%", got)
	}
	if GoalPercentage(s, "GATE") != 75 {
		t.Fatalf("GoalPercentage is prefix-scoped and should see both goals")
	}
}

func TestGoalSummaries(t *testing.T) {
	s := Store{
		"G_10":    {"a": true},
		"G_2":     {"b": true, "c": false, "d": false},
		"G_x_1":   {"e": true},
		"Other_1": {"f": true},
		"broken":  {"g": true},
	}

	got := GoalSummaries(s, "G")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(got), got)
	}
	if got[0].Week != 2 || got[1].Week != 10 {
		t.Errorf("weeks = %d,%d, want 2,10", got[0].Week, got[1].Week)
	}
	if got[0].Percent != 33.33 {
		t.Errorf("week 2 percent = %v, want 33.33", got[0].Percent)
	}
	if got[1].Percent != 100 {
		t.Errorf("week 10 percent = %v, want 100", got[1].Percent)
	}

	if nested := GoalSummaries(s, "G_x"); len(nested) != 1 || nested[0].Week != 1 {
		t.Errorf("GoalSummaries(G_x) = %+v", nested)
	}
	if none := GoalSummaries(s, "missing"); len(none) != 0 {
		t.Errorf("GoalSummaries(missing) = %+v, want empty", none)
	}

	if sum := GoalSummary(s, "G"); sum.Total != 4 || sum.Completed != 2 || sum.Percent != 50 {
		t.Errorf("GoalSummary(G) = %+v, want 2/4 50%%", sum)
	}
}
