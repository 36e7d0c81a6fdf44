package advisor

import "fmt"

const interpretSystemPrompt = `You are a smart academic advisor. You read a student's learning goal and
suggest the academic track it belongs to and the key topics they should cover.

Rules:
- Prefer these track names when they fit: "gate", "class 10", "machine learning".
- Topics are short titles (2-6 words), ordered from foundational to advanced.
- Do not number the topics or add commentary.`

const breakdownSystemPrompt = `You are a study planner. You break a single topic into a week-by-week
roadmap. Each week contains 2-3 logically connected subtopics or skills, and
later weeks build on earlier ones.`

const studyBotSystemPrompt = "You are a helpful, friendly academic tutor who explains things clearly."

func buildInterpretMessage(goal string, cfg Config) string {
	return fmt.Sprintf("Interpret this learning goal: %q\n\n"+
		"1. Suggest the most relevant academic track.\n"+
		"2. Suggest %d-%d key topics the student should cover.",
		goal, cfg.MinTopics, cfg.MaxTopics)
}

func buildBreakdownMessage(topic string, weeks int) string {
	return fmt.Sprintf("Break down the topic %q into a detailed roadmap for %d weeks. "+
		"Return exactly %d entries, numbered 1 to %d.", topic, weeks, weeks, weeks)
}
