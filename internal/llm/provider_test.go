package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_FIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"topics":["Sets"]}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Text: "Keep going!"},
	)

	req := Prompt("", "first")
	req.Schema = weekPlanSchema()
	resp1, err := mock.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"topics":["Sets"]}` {
		t.Fatalf("unexpected content: %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 || resp1.StopReason != "end" {
		t.Fatalf("unexpected response: %+v", resp1)
	}

	resp2, err := mock.Generate(context.Background(), Prompt("", "second"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp2.Text != "Keep going!" || resp2.Content != nil {
		t.Fatalf("unexpected free-text response: %+v", resp2)
	}

	if mock.CallCount() != 2 || mock.Calls[1].Messages[0].Content != "second" {
		t.Fatalf("calls not recorded: %+v", mock.Calls)
	}
}

func TestMockProvider_SchemaEnforced(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"tracks":"gate"}`)})
	req := Request{Schema: weekPlanSchema()}
	_, err := mock.Generate(context.Background(), req)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestMockProvider_Errors(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}

	_, err = mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable from empty queue, got: %T", err)
	}

	mock.AddResponse(MockResponse{Text: "back"})
	resp, err := mock.Generate(context.Background(), Request{})
	if err != nil || resp.Text != "back" {
		t.Fatalf("AddResponse not honoured: %v %+v", err, resp)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{&ErrProviderUnavailable{}, true},
		{&ErrRateLimit{}, true},
		{&ErrMaxTokensExceeded{}, false},
		{context.Canceled, false},
		{context.DeadlineExceeded, false},
		{errors.New("connection reset"), true},
	}
	for _, tt := range tests {
		if got := IsRetryable(tt.err); got != tt.want {
			t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestLookupCost(t *testing.T) {
	if c := LookupCost("gpt-4o-mini"); c == nil || c.Cost(2_000_000, 0) != 0.3 {
		t.Errorf("gpt-4o-mini cost = %+v", c)
	}
	if c := LookupCost("mistral:instruct"); c == nil || c.Cost(5000, 5000) != 0 {
		t.Errorf("local ollama model should be free, got %+v", c)
	}
	if c := LookupCost("meta-llama/llama-3:free"); c != nil {
		t.Errorf("unknown hosted model should be nil, got %+v", c)
	}
}
