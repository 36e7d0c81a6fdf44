package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathplanner/internal/progress"
	"github.com/abhisek/pathplanner/internal/roadmap"
)

func newProgressCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "progress",
		Short: "Show or update topic completion",
	}
	c.PersistentFlags().String("goal", "", "Goal the plan was built for")
	_ = c.MarkPersistentFlagRequired("goal")

	show := &cobra.Command{
		Use:   "show",
		Short: "Show overall and per-week completion for a goal",
		RunE:  runProgressShow,
	}

	toggle := &cobra.Command{
		Use:   "toggle",
		Short: "Flip a topic between done and not done",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return updateProgress(cmd, func(t *progress.Tracker, goal string, week int, topic string) bool {
				return t.Toggle(goal, week, topic)
			})
		},
	}

	set := &cobra.Command{
		Use:   "set",
		Short: "Mark a topic done or not done",
		RunE: func(cmd *cobra.Command, _ []string) error {
			done, _ := cmd.Flags().GetBool("done")
			return updateProgress(cmd, func(t *progress.Tracker, goal string, week int, topic string) bool {
				t.Set(goal, week, topic, done)
				return done
			})
		},
	}
	set.Flags().Bool("done", true, "Completion state to record")

	for _, sub := range []*cobra.Command{toggle, set} {
		sub.Flags().Int("week", 0, "Week number")
		sub.Flags().String("topic", "", "Topic name as shown in the plan")
		_ = sub.MarkFlagRequired("week")
		_ = sub.MarkFlagRequired("topic")
	}

	c.AddCommand(show, toggle, set)
	return c
}

func runProgressShow(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	goal := goalFlag(cmd)

	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	db, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	s := openTracker(ctx, cmd, db, logger).Snapshot()
	weeks := progress.GoalSummaries(s, goal)

	out := cmd.OutOrStdout()
	if len(weeks) == 0 {
		fmt.Fprintf(out, "No progress recorded for %q. Run `pathplanner plan --goal %q` first.\n", goal, goal)
		return nil
	}

	for _, w := range weeks {
		fmt.Fprintf(out, "%-9s %3d/%-3d %6.2f%%\n", roadmap.Label(w.Week), w.Completed, w.Total, w.Percent)
	}
	total := progress.GoalSummary(s, goal)
	fmt.Fprintf(out, "%-9s %3d/%-3d %6.2f%%\n\n", "Overall", total.Completed, total.Total, total.Percent)
	fmt.Fprintln(out, progress.Affirmation(total.Percent))
	return nil
}

var errNotInPlan = errors.New("topic not in plan")

// goalFlag returns --goal trimmed the same way plan trims it.
func goalFlag(cmd *cobra.Command) string {
	goal, _ := cmd.Flags().GetString("goal")
	return strings.TrimSpace(goal)
}

type progressUpdate func(t *progress.Tracker, goal string, week int, topic string) bool

func updateProgress(cmd *cobra.Command, apply progressUpdate) error {
	ctx := context.Background()
	goal := goalFlag(cmd)
	week, _ := cmd.Flags().GetInt("week")
	topic, _ := cmd.Flags().GetString("topic")
	topic = strings.TrimSpace(topic)
	if week < 1 {
		return fmt.Errorf("%w: week must be at least 1, got %d", roadmap.ErrInvalidArgument, week)
	}

	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	db, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	tracker := openTracker(ctx, cmd, db, logger)
	if !tracker.Snapshot().Has(goal, week, topic) {
		return fmt.Errorf("%w: %q is not in %s of the plan for %q (run `pathplanner plan --goal %q` to see it)",
			errNotInPlan, topic, roadmap.Label(week), goal, goal)
	}
	done := apply(tracker, goal, week, topic)
	if err := tracker.Commit(ctx); err != nil {
		return err
	}

	state := "not done"
	if done {
		state = "done"
	}
	sum := progress.GoalSummary(tracker.Snapshot(), goal)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s / %s: %s\n", roadmap.Label(week), topic, state)
	fmt.Fprintf(out, "Overall progress: %.2f%%\n", sum.Percent)
	fmt.Fprintln(out, progress.Affirmation(sum.Percent))
	return nil
}
