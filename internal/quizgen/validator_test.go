package quizgen

import (
	"errors"
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Validator: "test-validator",
		Message:   "something went wrong",
	}
	expected := `validator "test-validator": something went wrong`
	if err.Error() != expected {
		t.Errorf("got %q, want %q", err.Error(), expected)
	}
}

func TestDefaultConfig_ValidatorChain(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Validators) != 2 {
		t.Fatalf("expected 2 validators, got %d", len(cfg.Validators))
	}
	names := []string{"structural", "count"}
	for i, v := range cfg.Validators {
		if v.Name() != names[i] {
			t.Errorf("validator %d: expected %q, got %q", i, names[i], v.Name())
		}
	}
}

func TestStructuralValidator(t *testing.T) {
	tests := []struct {
		name    string
		q       Question
		wantErr string
	}{
		{"valid", Question{Question: "Q?", Options: []string{"a", "b"}, Answer: "b"}, ""},
		{"code block", Question{Question: "What prints?\n```go\nfmt.Println(1)\n```", Options: []string{"1", "0"}, Answer: "1"}, ""},
		{"empty text", Question{Question: " ", Options: []string{"a", "b"}, Answer: "a"}, "question text is empty"},
		{"one option", Question{Question: "Q?", Options: []string{"a"}, Answer: "a"}, "fewer than 2 options"},
		{"no options", Question{Question: "Q?", Answer: "a"}, "fewer than 2 options"},
		{"answer missing", Question{Question: "Q?", Options: []string{"a", "b"}, Answer: "c"}, "not one of the options"},
		{"case differs", Question{Question: "Q?", Options: []string{"Paris", "Rome"}, Answer: "paris"}, "not one of the options"},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := v.Validate(&Quiz{Questions: []Question{tt.q}}, GenerationRequest{Count: 1})
			if tt.wantErr == "" {
				if verr != nil {
					t.Fatalf("unexpected error: %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(verr.Message, tt.wantErr) {
				t.Fatalf("expected %q in %q", tt.wantErr, verr.Message)
			}
		})
	}
}

func TestStructuralValidator_ReportsIndex(t *testing.T) {
	quiz := &Quiz{Questions: []Question{
		{Question: "ok", Options: []string{"a", "b"}, Answer: "a"},
		{Question: "bad", Options: []string{"a", "b"}, Answer: "z"},
	}}
	verr := (&StructuralValidator{}).Validate(quiz, GenerationRequest{Count: 2})
	if verr == nil || !strings.HasPrefix(verr.Message, "question 2:") {
		t.Fatalf("expected failure on question 2, got %v", verr)
	}
}

func TestCountValidator(t *testing.T) {
	q := Question{Question: "Q?", Options: []string{"a", "b"}, Answer: "a"}
	v := &CountValidator{}

	exact := &Quiz{Questions: []Question{q, q}}
	if verr := v.Validate(exact, GenerationRequest{Count: 2}); verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}

	extra := &Quiz{Questions: []Question{q, q, q, q}}
	if verr := v.Validate(extra, GenerationRequest{Count: 3}); verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}
	if len(extra.Questions) != 3 {
		t.Fatalf("expected truncation to 3, got %d", len(extra.Questions))
	}

	short := &Quiz{Questions: []Question{q}}
	if verr := v.Validate(short, GenerationRequest{Count: 2}); verr == nil {
		t.Fatal("expected error for too few questions")
	}

	empty := &Quiz{}
	verr := v.Validate(empty, GenerationRequest{Count: 1})
	if verr == nil || !errors.Is(verr, ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", verr)
	}
}
