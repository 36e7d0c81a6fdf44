package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/pathplanner/internal/llm"
	"github.com/abhisek/pathplanner/internal/roadmap"
)

// ErrEmptyInput is reported for a blank goal, topic or question.
var ErrEmptyInput = errors.New("empty input")

// Service talks to a chat model on behalf of the planner.
type Service struct {
	provider llm.Provider
	cfg      Config
	logger   *zap.Logger
}

var _ Interpreter = (*Service)(nil)

// NewService creates an advisor over provider. logger may be nil.
func NewService(provider llm.Provider, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: provider, cfg: cfg, logger: logger}
}

type interpretOutput struct {
	Tracks []string `json:"tracks"`
	Topics []string `json:"topics"`
}

// Interpret suggests tracks and topics for goal. Any failure yields an
// empty Interpretation carrying the error.
func (s *Service) Interpret(ctx context.Context, goal string) Interpretation {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return Interpretation{Err: ErrEmptyInput}
	}

	ctx = llm.WithPurpose(ctx, PurposeInterpret)
	req := llm.Prompt(interpretSystemPrompt, buildInterpretMessage(goal, s.cfg))
	req.Schema = InterpretSchema
	req.MaxTokens = s.cfg.InterpretMaxTokens
	req.Temperature = s.cfg.Temperature

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		s.logger.Warn("goal interpretation failed", zap.String("goal", goal), zap.Error(err))
		return Interpretation{Err: fmt.Errorf("interpret goal: %w", err)}
	}

	var out interpretOutput
	if err := resp.Decode(&out); err != nil {
		s.logger.Warn("goal interpretation unreadable", zap.String("goal", goal), zap.Error(err))
		return Interpretation{Err: fmt.Errorf("parse interpretation: %w", err)}
	}

	result := Interpretation{
		Tracks: cleanList(out.Tracks),
		Topics: cleanList(out.Topics),
	}
	s.logger.Debug("goal interpreted",
		zap.String("goal", goal),
		zap.Strings("tracks", result.Tracks),
		zap.Int("topics", len(result.Topics)))
	return result
}

type breakdownOutput struct {
	Weeks []struct {
		Week   int      `json:"week"`
		Topics []string `json:"topics"`
	} `json:"weeks"`
}

// BreakDownTopic asks for a weeks-long roadmap of subtopics for topic.
// Weeks the model skips are filled with roadmap.PlaceholderTopic and
// every week carries a focus label.
func (s *Service) BreakDownTopic(ctx context.Context, topic string, weeks int) Breakdown {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return Breakdown{Err: ErrEmptyInput}
	}
	if weeks < 1 {
		return Breakdown{Topic: topic, Err: fmt.Errorf("%w: weeks must be at least 1, got %d", roadmap.ErrInvalidArgument, weeks)}
	}

	ctx = llm.WithPurpose(ctx, PurposeBreakdown)
	req := llm.Prompt(breakdownSystemPrompt, buildBreakdownMessage(topic, weeks))
	req.Schema = BreakdownSchema
	req.MaxTokens = s.cfg.BreakdownMaxTokens
	req.Temperature = s.cfg.Temperature

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		s.logger.Warn("topic breakdown failed", zap.String("topic", topic), zap.Error(err))
		return Breakdown{Topic: topic, Err: fmt.Errorf("break down topic: %w", err)}
	}

	var out breakdownOutput
	if err := resp.Decode(&out); err != nil {
		return Breakdown{Topic: topic, Err: fmt.Errorf("parse breakdown: %w", err)}
	}
	if len(out.Weeks) == 0 {
		return Breakdown{Topic: topic, Err: fmt.Errorf("parse breakdown: no weeks returned")}
	}

	byLabel := make(map[string][]string, len(out.Weeks))
	for _, w := range out.Weeks {
		label := roadmap.Label(w.Week)
		byLabel[label] = append(byLabel[label], w.Topics...)
	}
	plan, err := roadmap.FromWeekMap(byLabel, weeks)
	if err != nil {
		return Breakdown{Topic: topic, Err: err}
	}
	plan.Goal = topic
	return Breakdown{Topic: topic, Plan: plan}
}

// Ask answers a free-form study question. Unlike Interpret, failures
// are returned to the caller since there is nothing to fall back to.
func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyInput
	}

	ctx = llm.WithPurpose(ctx, PurposeStudyBot)
	req := llm.Prompt(studyBotSystemPrompt, question)
	req.MaxTokens = s.cfg.AskMaxTokens
	req.Temperature = s.cfg.AskTemperature

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("study bot: %w", err)
	}
	answer := strings.TrimSpace(resp.Text)
	if answer == "" {
		return "", fmt.Errorf("study bot: empty answer")
	}
	return answer, nil
}

// cleanList trims entries and drops blanks and exact repeats.
func cleanList(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
