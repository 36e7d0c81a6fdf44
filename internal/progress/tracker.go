package progress

import (
	"context"
	"fmt"

	"github.com/abhisek/pathplanner/internal/roadmap"
)

// Tracker is a session-scoped handle on the progress store. It loads the
// store once, applies mutations in memory, and writes the whole store
// back on Commit.
type Tracker struct {
	repo  Repo
	store Store
	dirty bool
}

// Open loads the store from repo.
func Open(ctx context.Context, repo Repo) (*Tracker, error) {
	s, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if s == nil {
		s = Store{}
	}
	return &Tracker{repo: repo, store: s}, nil
}

// NewTracker wraps an already loaded store. Used when loading failed and
// the session continues from an empty store.
func NewTracker(repo Repo, s Store) *Tracker {
	if s == nil {
		s = Store{}
	}
	return &Tracker{repo: repo, store: s}
}

// Show records the plan as displayed: every topic gets a false entry if it
// has none.
func (t *Tracker) Show(goal string, plan *roadmap.Plan) {
	if t.store.Ensure(goal, plan) > 0 {
		t.dirty = true
	}
}

// Set marks a topic done or not done.
func (t *Tracker) Set(goal string, week int, topic string, done bool) {
	t.store.Set(goal, week, topic, done)
	t.dirty = true
}

// Toggle flips a topic and returns its new state.
func (t *Tracker) Toggle(goal string, week int, topic string) bool {
	t.dirty = true
	return t.store.Toggle(goal, week, topic)
}

// Completed reports whether a topic is done.
func (t *Tracker) Completed(goal string, week int, topic string) bool {
	return t.store.Completed(goal, week, topic)
}

// Percentage returns the goal's completion percentage.
func (t *Tracker) Percentage(goal string) float64 {
	return GoalPercentage(t.store, goal)
}

// Snapshot returns a copy of the current store.
func (t *Tracker) Snapshot() Store {
	return t.store.Clone()
}

// Dirty reports whether there are uncommitted changes.
func (t *Tracker) Dirty() bool {
	return t.dirty
}

// Commit saves the store if it changed since the last commit.
func (t *Tracker) Commit(ctx context.Context) error {
	if !t.dirty {
		return nil
	}
	if err := t.repo.Save(ctx, t.store); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	t.dirty = false
	return nil
}
