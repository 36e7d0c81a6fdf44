package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func unavailable() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("connection refused")}}
}

func TestRetry(t *testing.T) {
	tests := []struct {
		name      string
		responses []MockResponse
		wantErr   bool
		wantCalls int
	}{
		{
			name:      "first attempt succeeds",
			responses: []MockResponse{{Text: "ok"}},
			wantCalls: 1,
		},
		{
			name:      "transient then success",
			responses: []MockResponse{unavailable(), {Text: "ok"}},
			wantCalls: 2,
		},
		{
			name:      "all attempts fail",
			responses: []MockResponse{unavailable(), unavailable(), unavailable(), {Text: "unreached"}},
			wantErr:   true,
			wantCalls: 3,
		},
		{
			name:      "max tokens not retried",
			responses: []MockResponse{{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{`)}}},
			wantErr:   true,
			wantCalls: 1,
		},
		{
			name: "invalid response retried once",
			responses: []MockResponse{
				{Err: &ErrInvalidResponse{Err: errors.New("bad")}},
				{Err: &ErrInvalidResponse{Err: errors.New("bad")}},
				{Text: "unreached"},
			},
			wantErr:   true,
			wantCalls: 2,
		},
		{
			name: "rate limit honours retry-after",
			responses: []MockResponse{
				{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
				{Text: "ok"},
			},
			wantCalls: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			p := WithRetry(mock, retryConfig(), zaptest.NewLogger(t))

			resp, err := p.Generate(context.Background(), Prompt("", "hi"))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if resp.Text != "ok" {
					t.Fatalf("unexpected text: %q", resp.Text)
				}
			}
			if mock.CallCount() != tt.wantCalls {
				t.Fatalf("expected %d calls, got %d", tt.wantCalls, mock.CallCount())
			}
		})
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	mock := NewMockProvider(unavailable(), unavailable(), MockResponse{Text: "ok"})
	cfg := retryConfig()
	cfg.InitialWait = time.Hour
	cfg.MaxWait = time.Hour
	p := WithRetry(mock, cfg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call before cancellation, got %d", mock.CallCount())
	}
}

func TestRetry_TimeoutBoundsAllAttempts(t *testing.T) {
	mock := NewMockProvider(unavailable(), unavailable(), MockResponse{Text: "ok"})
	cfg := retryConfig()
	cfg.InitialWait = time.Hour
	cfg.MaxWait = time.Hour
	cfg.Timeout = 20 * time.Millisecond
	p := WithRetry(mock, cfg, nil)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Fatal("timeout did not cut the backoff short")
	}
}

func TestRetry_Delegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), RetryConfig{}, nil)
	if p.ModelID() != "mock" || p.Name() != "mock" {
		t.Fatalf("ModelID/Name = %q/%q", p.ModelID(), p.Name())
	}

	// MaxAttempts below one still makes a single call.
	mock := NewMockProvider(MockResponse{Text: "ok"})
	if _, err := WithRetry(mock, RetryConfig{}, nil).Generate(context.Background(), Request{}); err != nil {
		t.Fatal(err)
	}
}
