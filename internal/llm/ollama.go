package llm

import (
	"fmt"
	"net/url"
	"strings"
)

// NewOllamaProvider targets a local Ollama daemon at cfg.Host through
// its /v1 OpenAI-compatible endpoint. Structured requests use JSON
// mode with the schema spelled out in the system prompt, and the first
// JSON object in the reply is extracted.
func NewOllamaProvider(cfg OllamaConfig) (*OpenAIProvider, error) {
	host := cfg.Host
	if host == "" {
		host = defaultOllamaHost
	}
	u, err := url.Parse(host)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid ollama host %q", cfg.Host)
	}

	model := cfg.Model
	if model == "" {
		model = defaultOllamaModel
	}

	baseURL := strings.TrimRight(u.String(), "/")
	if !strings.HasSuffix(baseURL, "/v1") {
		baseURL += "/v1"
	}

	// Ollama ignores the key but the client requires one.
	return newOpenAICompatible(ProviderOllama, "ollama", baseURL, model, modeJSONObject), nil
}
