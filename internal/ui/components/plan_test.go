package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathplanner/internal/progress"
	"github.com/abhisek/pathplanner/internal/resources"
	"github.com/abhisek/pathplanner/internal/roadmap"
)

func samplePlan(t *testing.T) (*roadmap.Plan, progress.Store) {
	t.Helper()
	plan, err := roadmap.Partition([]string{"Python", "SQL", "Pandas"}, 3, roadmap.Options{})
	require.NoError(t, err)
	plan.Goal = "data science"

	s := progress.Store{}
	s.Ensure(plan.Goal, plan)
	s.Set(plan.Goal, 1, "Python", true)
	return plan, s
}

func TestPlanView_Plain(t *testing.T) {
	plan, s := samplePlan(t)
	out := PlanView{
		Plan:  plan,
		Store: s,
		Resources: map[string][]resources.Link{
			"SQL": {{Title: "SQL basics", URL: "https://example.com/sql"}},
		},
		Width: 60,
		Plain: true,
	}.View()

	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "Study Roadmap: data science")
	assert.Contains(t, out, "[x] Python")
	assert.Contains(t, out, "[ ] SQL")
	assert.Contains(t, out, "[ ] Pandas")
	assert.Contains(t, out, "SQL basics <https://example.com/sql>")
	assert.Contains(t, out, " 33.33%")
	assert.Contains(t, out, progress.Affirmation(33.33))

	assert.Less(t, strings.Index(out, "Week 1"), strings.Index(out, "Week 2"))
	assert.Less(t, strings.Index(out, "Week 3"), strings.Index(out, "Overall"))
}

func TestPlanView_EmptyWeek(t *testing.T) {
	plan, err := roadmap.Partition([]string{"Python"}, 2, roadmap.Options{})
	require.NoError(t, err)

	out := PlanView{Plan: plan, Store: progress.Store{}, Plain: true}.View()
	assert.Contains(t, out, "(no topics)")
	assert.Contains(t, out, "Study Roadmap\n")
	assert.Contains(t, out, progress.Affirmation(0))
}

func TestPlanView_Styled(t *testing.T) {
	plan, s := samplePlan(t)
	out := PlanView{Plan: plan, Store: s}.View()
	assert.Contains(t, out, "Python")
	assert.Contains(t, out, "Pandas")
}
