package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/pathplanner/internal/advisor"
	"github.com/abhisek/pathplanner/internal/catalog"
	"github.com/abhisek/pathplanner/internal/export"
	"github.com/abhisek/pathplanner/internal/resources"
	"github.com/abhisek/pathplanner/internal/roadmap"
	"github.com/abhisek/pathplanner/internal/store"
	"github.com/abhisek/pathplanner/internal/ui/components"
)

// resourceLookups bounds concurrent resource searches for one plan.
const resourceLookups = 4

func newPlanCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "plan",
		Short: "Build a weekly study roadmap for a goal",
		Example: `  pathplanner plan --goal "crack GATE CSE" --weeks 8
  pathplanner plan --track machine-learning --focus --export roadmap.html
  pathplanner plan --goal "learn rust" --ai --resources`,
		RunE: runPlan,
	}

	f := c.Flags()
	f.String("goal", "", "Study goal in your own words")
	f.Int("weeks", 12, "Number of weeks in the plan")
	f.String("track", "", "Use this catalog track instead of matching the goal")
	f.Bool("ai", false, "Ask the configured LLM for topics, falling back to the catalog")
	f.Bool("shuffle", false, "Shuffle topics with a seeded permutation")
	f.Uint64("seed", 1, "Seed for --shuffle")
	f.Bool("focus", false, "Label each week with a focus topic and fill empty weeks")
	f.Bool("resources", false, "Look up study links for every topic")
	f.String("export", "", "Write the plan to this file (.md, .html or .json)")
	f.Bool("render", false, "Render the plan as styled Markdown")
	f.Bool("no-color", false, "Disable colored output")
	return c
}

func runPlan(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	goal, _ := cmd.Flags().GetString("goal")
	trackName, _ := cmd.Flags().GetString("track")
	goal = strings.TrimSpace(goal)
	if goal == "" && trackName == "" {
		return fmt.Errorf("either --goal or --track is required")
	}

	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	db, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	topics, policy, err := planTopics(ctx, cmd, cat, db, goal, trackName, logger)
	if err != nil {
		return err
	}
	if goal == "" {
		goal = trackName
	}
	if shuffle, _ := cmd.Flags().GetBool("shuffle"); shuffle {
		seed, _ := cmd.Flags().GetUint64("seed")
		policy = roadmap.Shuffle(seed)
	}

	weeks, _ := cmd.Flags().GetInt("weeks")
	focus, _ := cmd.Flags().GetBool("focus")
	plan, err := roadmap.Partition(topics, weeks, roadmap.Options{
		Goal:   goal,
		Policy: policy,
		Focus:  focus,
	})
	if err != nil {
		return err
	}
	logger.Debug("plan built",
		zap.String("goal", goal),
		zap.Int("topics", len(topics)),
		zap.Int("weeks", plan.Len()),
		zap.Stringer("policy", policy.Kind))

	tracker := openTracker(ctx, cmd, db, logger)
	tracker.Show(goal, plan)
	if err := tracker.Commit(ctx); err != nil {
		return err
	}

	var links map[string][]resources.Link
	if want, _ := cmd.Flags().GetBool("resources"); want {
		finder := resources.Chain{
			resources.StaticFinder{Catalog: cat},
			resources.NewSearchFinder(resources.DefaultSearchConfig(), logger),
		}
		links = resources.FindAll(ctx, finder, plan.Topics(), resourceLookups)
	}

	opts := export.Options{Progress: tracker.Snapshot(), Resources: links}
	if err := printPlan(cmd, plan, opts); err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("export"); path != "" {
		if err := export.WriteFile(path, plan, opts); err != nil {
			return fmt.Errorf("export plan: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nSaved roadmap to %s\n", path)
	}
	return nil
}

// planTopics picks the topic pool and ordering policy. An explicit
// track wins, then the LLM when --ai is set, then catalog keyword
// matching on the goal.
func planTopics(ctx context.Context, cmd *cobra.Command, cat *catalog.Catalog, db *store.Store, goal, trackName string, logger *zap.Logger) ([]string, roadmap.Policy, error) {
	if trackName != "" {
		track := catalog.ParseTrack(trackName)
		topics, ok := cat.Topics(track)
		if !ok {
			return nil, roadmap.Policy{}, fmt.Errorf("unknown track %q (see `pathplanner tracks`)", trackName)
		}
		return topics, roadmap.PolicyForTrack(track), nil
	}

	static := advisor.StaticInterpreter{Catalog: cat}
	var interp advisor.Interpreter = static
	if useAI, _ := cmd.Flags().GetBool("ai"); useAI {
		svc, err := newAdvisor(ctx, db, logger)
		if err != nil {
			logger.Warn("llm unavailable, using catalog", zap.Error(err))
		} else {
			interp = advisor.Fallback{Primary: svc, Secondary: static, Logger: logger}
		}
	}

	res := interp.Interpret(ctx, goal)
	if !res.OK() {
		fmt.Fprintf(cmd.ErrOrStderr(), "No matching topics for %q; the plan will be empty.\n", goal)
	}
	policy := roadmap.PolicyForGoal(goal)
	if t := res.Track(); t != catalog.TrackUnknown {
		policy = roadmap.PolicyForTrack(t)
	}
	return res.Topics, policy, nil
}

func printPlan(cmd *cobra.Command, plan *roadmap.Plan, opts export.Options) error {
	out := cmd.OutOrStdout()
	plain := plainOutput(cmd)
	width := terminalWidth()

	if render, _ := cmd.Flags().GetBool("render"); render {
		style := ""
		if plain {
			style = "notty"
		}
		text, err := export.Terminal(plan, opts, width, style)
		if err != nil {
			return err
		}
		fmt.Fprint(out, text)
		return nil
	}

	fmt.Fprint(out, components.PlanView{
		Plan:      plan,
		Store:     opts.Progress,
		Resources: opts.Resources,
		Width:     width,
		Plain:     plain,
	}.View())
	return nil
}

func terminalWidth() int {
	if n, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && n > 20 {
		return min(n, 100)
	}
	return 80
}
