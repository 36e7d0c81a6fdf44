package llm

import (
	"fmt"
	"os"
	"time"
)

// Backend names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderOllama     = "ollama"
	ProviderMock       = "mock"
)

// Config holds backend selection and per-backend settings.
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Ollama     OllamaConfig
	Retry      RetryConfig
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// OllamaConfig targets a local Ollama daemon through its
// OpenAI-compatible endpoint. No API key is needed.
type OllamaConfig struct {
	Host  string
	Model string
}

// RetryConfig configures backoff for transient failures. Timeout bounds
// the whole call including every attempt.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
	Timeout     time.Duration
}

const (
	defaultOllamaHost  = "http://localhost:11434"
	defaultOllamaModel = "mistral:instruct"
)

// DefaultConfig returns a Config pointed at a local Ollama instance,
// with hosted model defaults filled in for when a key is supplied.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderOllama,
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "mistralai/mistral-7b-instruct"},
		Ollama: OllamaConfig{
			Host:  defaultOllamaHost,
			Model: defaultOllamaModel,
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
			// Local models on a laptop can take a while.
			Timeout: 90 * time.Second,
		},
	}
}

func envOr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// ConfigFromEnv overlays PATHPLANNER_* environment variables on the
// defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	envOr(&cfg.Provider, "PATHPLANNER_LLM_PROVIDER")

	envOr(&cfg.Anthropic.APIKey, "PATHPLANNER_ANTHROPIC_API_KEY")
	envOr(&cfg.Anthropic.Model, "PATHPLANNER_ANTHROPIC_MODEL")

	envOr(&cfg.OpenAI.APIKey, "PATHPLANNER_OPENAI_API_KEY")
	envOr(&cfg.OpenAI.Model, "PATHPLANNER_OPENAI_MODEL")
	envOr(&cfg.OpenAI.BaseURL, "PATHPLANNER_OPENAI_BASE_URL")

	envOr(&cfg.Gemini.APIKey, "PATHPLANNER_GEMINI_API_KEY")
	envOr(&cfg.Gemini.Model, "PATHPLANNER_GEMINI_MODEL")

	envOr(&cfg.OpenRouter.APIKey, "PATHPLANNER_OPENROUTER_API_KEY")
	envOr(&cfg.OpenRouter.Model, "PATHPLANNER_OPENROUTER_MODEL")

	envOr(&cfg.Ollama.Host, "PATHPLANNER_OLLAMA_HOST")
	envOr(&cfg.Ollama.Model, "PATHPLANNER_OLLAMA_MODEL")

	return cfg
}

// DiscoverConfig probes the standard vendor key variables in priority
// order (Gemini, OpenAI, Anthropic, OpenRouter) and finally
// PATHPLANNER_OLLAMA_HOST. It reports false when nothing is set.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	switch {
	case os.Getenv("GEMINI_API_KEY") != "":
		cfg.Provider = ProviderGemini
		cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	case os.Getenv("OPENAI_API_KEY") != "":
		cfg.Provider = ProviderOpenAI
		cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		cfg.Provider = ProviderAnthropic
		cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	case os.Getenv("OPENROUTER_API_KEY") != "":
		cfg.Provider = ProviderOpenRouter
		cfg.OpenRouter.APIKey = os.Getenv("OPENROUTER_API_KEY")
	case os.Getenv("PATHPLANNER_OLLAMA_HOST") != "":
		cfg.Provider = ProviderOllama
		cfg.Ollama.Host = os.Getenv("PATHPLANNER_OLLAMA_HOST")
	default:
		return Config{}, false
	}
	return cfg, true
}

// Validate checks that the selected backend has what it needs.
func (c Config) Validate() error {
	missing := func(env string) error {
		return fmt.Errorf("%s is required for the %s provider", env, c.Provider)
	}
	switch c.Provider {
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			return missing("PATHPLANNER_ANTHROPIC_API_KEY")
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return missing("PATHPLANNER_OPENAI_API_KEY")
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return missing("PATHPLANNER_GEMINI_API_KEY")
		}
	case ProviderOpenRouter:
		if c.OpenRouter.APIKey == "" {
			return missing("PATHPLANNER_OPENROUTER_API_KEY")
		}
	case ProviderOllama:
		if c.Ollama.Host == "" {
			return missing("PATHPLANNER_OLLAMA_HOST")
		}
	case ProviderMock:
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
