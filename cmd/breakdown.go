package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathplanner/internal/export"
	"github.com/abhisek/pathplanner/internal/roadmap"
)

func newBreakdownCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "breakdown",
		Short: "Ask the LLM to split one topic into a weekly roadmap",
		RunE:  runBreakdown,
	}
	c.Flags().String("topic", "", "Topic to break down")
	c.Flags().Int("weeks", 4, "Number of weeks")
	c.Flags().String("export", "", "Write the roadmap to this file (.md, .html or .json)")
	_ = c.MarkFlagRequired("topic")
	return c
}

func runBreakdown(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	topic, _ := cmd.Flags().GetString("topic")
	weeks, _ := cmd.Flags().GetInt("weeks")

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

	svc, err := newAdvisor(ctx, db, logger)
	if err != nil {
		return err
	}

	res := svc.BreakDownTopic(ctx, topic, weeks)
	if !res.OK() {
		return fmt.Errorf("break down %q: %w", topic, res.Err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Roadmap for %s\n\n", res.Plan.Goal)
	for _, w := range res.Plan.Weeks {
		fmt.Fprintf(out, "%s\n", roadmap.Label(w.Number))
		if len(w.Topics) == 0 {
			fmt.Fprintln(out, "  (no topics)")
		}
		for _, t := range w.Topics {
			fmt.Fprintf(out, "  • %s\n", t)
		}
	}

	if path, _ := cmd.Flags().GetString("export"); path != "" {
		opts := export.Options{Title: "Roadmap: " + strings.TrimSpace(topic)}
		if err := export.WriteFile(path, res.Plan, opts); err != nil {
			return fmt.Errorf("export roadmap: %w", err)
		}
		fmt.Fprintf(out, "\nSaved roadmap to %s\n", path)
	}
	return nil
}
