// Package advisor asks a chat model to interpret study goals, break a
// topic into a weekly roadmap and answer free-form study questions.
// Goal interpretation and breakdown are best-effort: they report
// failure in the returned value and never panic or abort the caller.
package advisor

import (
	"context"

	"github.com/abhisek/pathplanner/internal/catalog"
	"github.com/abhisek/pathplanner/internal/roadmap"
)

// Purpose labels recorded with each LLM event.
const (
	PurposeInterpret = "goal-interpret"
	PurposeBreakdown = "topic-breakdown"
	PurposeStudyBot  = "study-bot"
)

// Interpretation is the outcome of reading a free-text goal. On failure
// Tracks and Topics are empty and Err says why.
type Interpretation struct {
	Tracks []string
	Topics []string
	Err    error
}

// OK reports whether the interpretation produced any topics.
func (i Interpretation) OK() bool {
	return i.Err == nil && len(i.Topics) > 0
}

// Track returns the first suggested track that maps to a known one.
func (i Interpretation) Track() catalog.Track {
	for _, name := range i.Tracks {
		if t := catalog.ParseTrack(name); t != catalog.TrackUnknown {
			return t
		}
	}
	return catalog.TrackUnknown
}

// Interpreter turns a goal into a track and topic pool.
type Interpreter interface {
	Interpret(ctx context.Context, goal string) Interpretation
}

// Breakdown is a week-wise roadmap for a single topic. Plan is nil on
// failure.
type Breakdown struct {
	Topic string
	Plan  *roadmap.Plan
	Err   error
}

// OK reports whether a plan was produced.
func (b Breakdown) OK() bool {
	return b.Err == nil && b.Plan != nil
}
