package llm

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/abhisek/pathplanner/internal/store"
)

// NewProvider builds the configured backend wrapped as
// caller → retry → logging → backend. events may be nil.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, logger *zap.Logger) (Provider, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderOllama:
		base, err = NewOllamaProvider(cfg.Ollama)
	case ProviderMock:
		return NewMockProvider(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, events, logger)
	return WithRetry(logged, cfg.Retry, logger), nil
}

// ConfigFromEnvironment picks the backend configuration. An explicit
// PATHPLANNER_LLM_PROVIDER wins, then vendor key discovery, then the
// local Ollama default.
func ConfigFromEnvironment() Config {
	if os.Getenv("PATHPLANNER_LLM_PROVIDER") != "" {
		return ConfigFromEnv()
	}
	if cfg, ok := DiscoverConfig(); ok {
		return cfg
	}
	return ConfigFromEnv()
}

// NewProviderFromEnv is NewProvider over ConfigFromEnvironment.
func NewProviderFromEnv(ctx context.Context, events store.EventRepo, logger *zap.Logger) (Provider, error) {
	cfg := ConfigFromEnvironment()
	p, err := NewProvider(ctx, cfg, events, logger)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Debug("llm provider ready",
			zap.String("provider", cfg.Provider),
			zap.String("model", p.ModelID()))
	}
	return p, nil
}
