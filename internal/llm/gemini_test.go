package llm

import "testing"

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tracks": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string", "enum": []string{"gate", "class-10", "machine-learning"}},
			},
			"topics": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"weeks": map[string]any{"type": "integer"},
		},
		"required": []any{"tracks", "topics"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(schema.Properties))
	}
	tracks := schema.Properties["tracks"]
	if tracks.Type != "ARRAY" || tracks.Items.Type != "STRING" {
		t.Fatalf("tracks schema = %+v", tracks)
	}
	if len(tracks.Items.Enum) != 3 {
		t.Fatalf("expected 3 enum values from []string, got %d", len(tracks.Items.Enum))
	}
	if schema.Properties["weeks"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for weeks, got %s", schema.Properties["weeks"].Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields from []any, got %d", len(schema.Required))
	}
}
