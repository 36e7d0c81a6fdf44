package advisor

import (
	"context"

	"go.uber.org/zap"

	"github.com/abhisek/pathplanner/internal/catalog"
)

// StaticInterpreter answers from the catalog by keyword matching on the
// goal. It never fails; an unmatched goal yields an empty result.
type StaticInterpreter struct {
	Catalog *catalog.Catalog
}

func (s StaticInterpreter) Interpret(_ context.Context, goal string) Interpretation {
	track, topics := s.Catalog.TopicsForGoal(goal)
	if len(topics) == 0 {
		return Interpretation{}
	}
	return Interpretation{Tracks: []string{string(track)}, Topics: topics}
}

// Fallback tries Primary and uses Secondary when Primary yields no
// topics.
type Fallback struct {
	Primary   Interpreter
	Secondary Interpreter
	Logger    *zap.Logger
}

func (f Fallback) Interpret(ctx context.Context, goal string) Interpretation {
	res := f.Primary.Interpret(ctx, goal)
	if res.OK() {
		return res
	}
	if f.Logger != nil {
		f.Logger.Info("falling back to catalog topics", zap.String("goal", goal), zap.Error(res.Err))
	}
	return f.Secondary.Interpret(ctx, goal)
}
