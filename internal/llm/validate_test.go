package llm

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func questionSchema() *Schema {
	return &Schema{
		Name: "test-question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string", "minLength": 1},
				"options": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 2,
				},
				"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "hard"}},
			},
			"required": []any{"question", "options"},
		},
	}
}

func TestValidateJSON(t *testing.T) {
	schema := questionSchema()

	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"question":"2+2?","options":["3","4"],"difficulty":"easy"}`, false},
		{"optional field absent", `{"question":"2+2?","options":["3","4"]}`, false},
		{"missing required", `{"question":"2+2?"}`, true},
		{"wrong type", `{"question":"2+2?","options":"3,4"}`, true},
		{"too few items", `{"question":"2+2?","options":["4"]}`, true},
		{"enum violation", `{"question":"2+2?","options":["3","4"],"difficulty":"medium"}`, true},
		{"not an object", `["3","4"]`, true},
		{"malformed", `{not json}`, true},
		{"empty", ``, true},
		{"fenced", "```json\n{\"question\":\"q\",\"options\":[\"a\",\"b\"]}\n```", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := json.RawMessage(tt.raw)
			err := ValidateJSON(schema, raw)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("expected no error, got: %v", err)
				}
				return
			}

			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected *ErrInvalidResponse, got: %T (%v)", err, err)
			}
			if string(invErr.Content) != tt.raw {
				t.Errorf("content = %q, want the raw input", invErr.Content)
			}
		})
	}
}

func TestValidateJSON_NilSchemaRequiresJSON(t *testing.T) {
	if err := ValidateJSON(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
	if err := ValidateJSON(nil, json.RawMessage(`Sure! Here are your questions`)); err == nil {
		t.Fatal("expected error for prose with nil schema")
	}
}

func TestValidateJSON_SchemaErrorNamesSchema(t *testing.T) {
	err := ValidateJSON(questionSchema(), json.RawMessage(`{"question":""}`))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "test-question") {
		t.Errorf("error %q does not name the schema", err)
	}
}

func TestValidateJSON_BrokenSchema(t *testing.T) {
	schema := &Schema{
		Name:       "broken",
		Definition: map[string]any{"type": "no-such-type"},
	}

	for range 2 {
		err := ValidateJSON(schema, json.RawMessage(`{}`))
		var invErr *ErrInvalidResponse
		if !errors.As(err, &invErr) {
			t.Fatalf("expected *ErrInvalidResponse, got: %T (%v)", err, err)
		}
	}
}

func TestValidateJSON_ConcurrentFirstUse(t *testing.T) {
	schema := questionSchema()
	raw := json.RawMessage(`{"question":"q","options":["a","b"]}`)

	errs := make(chan error, 8)
	for range 8 {
		go func() { errs <- ValidateJSON(schema, raw) }()
	}
	for range 8 {
		if err := <-errs; err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}
