package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func weekPlanSchema() *Schema {
	return &Schema{
		Name:        "test-week-plan",
		Description: "Weeks with topics",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"track": map[string]any{"type": "string", "enum": []any{"gate", "class-10", "machine-learning"}},
				"weeks": map[string]any{"type": "integer", "minimum": 1},
				"topics": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"topics"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"track":"gate","weeks":4,"topics":["Algorithms"]}`, false},
		{"optional fields absent", `{"topics":[]}`, false},
		{"missing required", `{"track":"gate"}`, true},
		{"wrong item type", `{"topics":[1,2]}`, true},
		{"enum violation", `{"track":"jee","topics":[]}`, true},
		{"below minimum", `{"weeks":0,"topics":[]}`, true},
		{"malformed", `{not json}`, true},
		{"empty", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(weekPlanSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("expected no error, got: %v", err)
				}
				return
			}
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"prose around", "Sure! Here it is:\n{\"tracks\":[\"gate\"]}\nGood luck.", `{"tracks":["gate"]}`, true},
		{"code fence", "```json\n{\"Week 1\":[\"x\"]}\n```", `{"Week 1":["x"]}`, true},
		{"nested braces", `{"a":{"b":2}} trailing`, `{"a":{"b":2}}`, true},
		{"no object", "I cannot help with that.", "", false},
		{"unbalanced", `{"a":1`, "", false},
		{"two objects", `{"a":1} and {"b":2}`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSONObject(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFinish(t *testing.T) {
	req := Request{Schema: weekPlanSchema()}

	resp, err := finish(req, "ok: {\"topics\":[\"Graphs\"]}", "m", "end", Usage{InputTokens: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out struct{ Topics []string }
	if err := resp.Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Topics) != 1 || out.Topics[0] != "Graphs" {
		t.Fatalf("decoded %+v", out)
	}

	_, err = finish(req, `{"topics":["Gra`, "m", "max_tokens", Usage{})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T (%v)", err, err)
	}

	text, err := finish(Request{}, "plain answer", "m", "end", Usage{})
	if err != nil {
		t.Fatal(err)
	}
	if text.Text != "plain answer" || text.Content != nil {
		t.Fatalf("free-text response = %+v", text)
	}
	if err := text.Decode(&out); err == nil {
		t.Fatal("expected Decode to fail without JSON content")
	}
}
