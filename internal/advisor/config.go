package advisor

// Config holds generation settings for each advisor call.
type Config struct {
	InterpretMaxTokens int
	BreakdownMaxTokens int
	AskMaxTokens       int

	// Temperature for structured calls. Ask uses AskTemperature.
	Temperature    float64
	AskTemperature float64

	// MinTopics and MaxTopics bound the topic count requested from the
	// model when interpreting a goal.
	MinTopics int
	MaxTopics int
}

// DefaultConfig returns defaults sized for a local 7B model.
func DefaultConfig() Config {
	return Config{
		InterpretMaxTokens: 512,
		BreakdownMaxTokens: 1024,
		AskMaxTokens:       1024,
		Temperature:        0.2,
		AskTemperature:     0.7,
		MinTopics:          8,
		MaxTopics:          10,
	}
}
