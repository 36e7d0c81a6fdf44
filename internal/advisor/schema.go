package advisor

import "github.com/abhisek/pathplanner/internal/llm"

// InterpretSchema is the reply shape for goal interpretation.
var InterpretSchema = &llm.Schema{
	Name:        "goal-interpretation",
	Description: "Academic tracks and key topics for a learning goal",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tracks": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Most relevant academic tracks, e.g. gate, class 10, machine learning",
			},
			"topics": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Key topics to cover, in a sensible study order",
			},
		},
		"required":             []any{"tracks", "topics"},
		"additionalProperties": false,
	},
}

// BreakdownSchema is the reply shape for a single-topic roadmap.
var BreakdownSchema = &llm.Schema{
	Name:        "topic-breakdown",
	Description: "Week-wise roadmap of subtopics for one topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"weeks": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"week": map[string]any{
							"type":        "integer",
							"description": "1-based week number",
						},
						"topics": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "2-3 logically connected subtopics or skills",
						},
					},
					"required":             []any{"week", "topics"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"weeks"},
		"additionalProperties": false,
	},
}
