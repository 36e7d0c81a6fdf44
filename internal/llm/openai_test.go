package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": finish,
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     40,
			"completion_tokens": 25,
			"total_tokens":      65,
		},
	}
}

// chatServer serves POST /v1/chat/completions and hands each decoded
// request body to inspect.
func chatServer(t *testing.T, status int, body any, inspect func(map[string]any)) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if inspect != nil {
			var req map[string]any
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decode request: %v", err)
			}
			inspect(req)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)
	return server.URL
}

func TestOpenAIProvider_Structured(t *testing.T) {
	var format map[string]any
	url := chatServer(t, http.StatusOK, chatCompletion(`{"topics":["Graph Theory"]}`, "stop"), func(req map[string]any) {
		format, _ = req["response_format"].(map[string]any)
	})

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", Model: "gpt-4o-mini", BaseURL: url + "/v1"})
	if err != nil {
		t.Fatal(err)
	}
	req := Prompt("planner", "Goal: GATE")
	req.Schema = weekPlanSchema()
	resp, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format["type"] != "json_schema" {
		t.Fatalf("expected json_schema response format, got %v", format)
	}
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 25 {
		t.Fatalf("unexpected usage: %+v", resp.Usage)
	}
	if string(resp.Content) != `{"topics":["Graph Theory"]}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if p.Name() != "openai" {
		t.Fatalf("Name = %q", p.Name())
	}
}

func TestOpenAIProvider_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"rate limit", http.StatusTooManyRequests, func(err error) bool {
			var rl *ErrRateLimit
			return errors.As(err, &rl)
		}},
		{"server error", http.StatusInternalServerError, func(err error) bool {
			var unavail *ErrProviderUnavailable
			return errors.As(err, &unavail)
		}},
		{"bad request", http.StatusBadRequest, func(err error) bool {
			var unavail *ErrProviderUnavailable
			return err != nil && !errors.As(err, &unavail)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := chatServer(t, tt.status, map[string]any{
				"error": map[string]any{"type": "error", "message": tt.name},
			}, nil)
			p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", BaseURL: url + "/v1"})
			if err != nil {
				t.Fatal(err)
			}
			_, err = p.Generate(context.Background(), Prompt("", "test"))
			if !tt.check(err) {
				t.Fatalf("unexpected error: %T (%v)", err, err)
			}
		})
	}
}

func TestNewOpenAIProvider_RequiresKey(t *testing.T) {
	if _, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o"}); err == nil {
		t.Fatal("expected error for empty API key")
	}
}

func TestNewOpenRouterProvider(t *testing.T) {
	t.Run("model passes through", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: "mistralai/mistral-7b-instruct"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "mistralai/mistral-7b-instruct" {
			t.Errorf("model = %q", p.ModelID())
		}
		if p.Name() != "openrouter" {
			t.Errorf("name = %q", p.Name())
		}
	})

	t.Run("empty API key", func(t *testing.T) {
		if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "x"}); err == nil {
			t.Fatal("expected error for empty API key")
		}
	})
}

func TestOllamaProvider_JSONMode(t *testing.T) {
	var (
		format map[string]any
		system string
	)
	reply := "Here is your plan:\n```json\n{\"topics\":[\"Python\",\"Statistics\"]}\n```"
	url := chatServer(t, http.StatusOK, chatCompletion(reply, "stop"), func(req map[string]any) {
		format, _ = req["response_format"].(map[string]any)
		if msgs, ok := req["messages"].([]any); ok && len(msgs) > 0 {
			first, _ := msgs[0].(map[string]any)
			system, _ = first["content"].(string)
		}
	})

	p, err := NewOllamaProvider(OllamaConfig{Host: url})
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "mistral:instruct" {
		t.Fatalf("default model = %q", p.ModelID())
	}

	req := Prompt("You are a study planner.", "Goal: learn ML")
	req.Schema = weekPlanSchema()
	resp, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format["type"] != "json_object" {
		t.Errorf("expected json_object response format, got %v", format)
	}
	if !strings.Contains(system, "JSON Schema") || !strings.HasPrefix(system, "You are a study planner.") {
		t.Errorf("schema hint missing from system prompt: %q", system)
	}
	if string(resp.Content) != `{"topics":["Python","Statistics"]}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestOllamaProvider_NoJSON(t *testing.T) {
	url := chatServer(t, http.StatusOK, chatCompletion("Sorry, I can't do that.", "stop"), nil)
	p, err := NewOllamaProvider(OllamaConfig{Host: url + "/", Model: "llama3"})
	if err != nil {
		t.Fatal(err)
	}
	req := Prompt("", "Goal: ???")
	req.Schema = weekPlanSchema()
	_, err = p.Generate(context.Background(), req)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestNewOllamaProvider_InvalidHost(t *testing.T) {
	if _, err := NewOllamaProvider(OllamaConfig{Host: "localhost"}); err == nil {
		t.Fatal("expected error for host without scheme")
	}
}
