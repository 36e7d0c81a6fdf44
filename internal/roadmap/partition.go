package roadmap

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for arguments the partitioner rejects.
var ErrInvalidArgument = errors.New("invalid argument")

// Options configures Partition.
type Options struct {
	// Goal is recorded on the plan. It does not affect ordering; use
	// PolicyForGoal to derive a policy from it.
	Goal string

	// Policy reorders topics before they are bucketed.
	Policy Policy

	// Focus labels each week with its first topic, and fills empty weeks
	// with PlaceholderTopic.
	Focus bool
}

// Partition spreads topics over weeks front-to-back. With n topics, the
// first n%weeks weeks get n/weeks+1 topics and the rest get n/weeks.
func Partition(topics []string, weeks int, opts Options) (*Plan, error) {
	if weeks <= 0 {
		return nil, fmt.Errorf("%w: weeks must be at least 1, got %d", ErrInvalidArgument, weeks)
	}

	ordered := opts.Policy.Apply(topics)
	base := len(ordered) / weeks
	extra := len(ordered) % weeks

	plan := &Plan{
		Goal:  opts.Goal,
		Weeks: make([]Week, 0, weeks),
	}

	idx := 0
	for n := 1; n <= weeks; n++ {
		count := base
		if n <= extra {
			count++
		}

		week := Week{
			Number: n,
			Topics: make([]string, count),
		}
		copy(week.Topics, ordered[idx:idx+count])
		idx += count

		if opts.Focus {
			applyFocus(&week)
		}
		plan.Weeks = append(plan.Weeks, week)
	}

	return plan, nil
}

// PartitionForGoal partitions with the policy implied by the goal text.
func PartitionForGoal(topics []string, weeks int, goal string) (*Plan, error) {
	return Partition(topics, weeks, Options{
		Goal:   goal,
		Policy: PolicyForGoal(goal),
	})
}

func applyFocus(w *Week) {
	if len(w.Topics) == 0 {
		w.Topics = []string{PlaceholderTopic}
	}
	w.Focus = w.Topics[0]
}
