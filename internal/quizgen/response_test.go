package quizgen

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/mcqgen/internal/llm"
)

func TestParseResponse_Valid(t *testing.T) {
	quiz, err := ParseResponse(romanHistoryJSON())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quiz.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(quiz.Questions))
	}
	if quiz.Questions[2].Options[2] != "Rubicon" {
		t.Errorf("unexpected option: %q", quiz.Questions[2].Options[2])
	}
}

func TestParseResponse_ExtraFieldsIgnored(t *testing.T) {
	raw := json.RawMessage(`{"subject":"Go","questions":[{"question":"Q","options":["a","b"],"answer":"a","explanation":"x"}]}`)
	quiz, err := ParseResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quiz.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(quiz.Questions))
	}
}

func TestParseResponse_WrongItemShape(t *testing.T) {
	_, err := ParseResponse(json.RawMessage(`{"questions":[1,2,3]}`))
	var invErr *llm.ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestParseResponse_Empty(t *testing.T) {
	_, err := ParseResponse(json.RawMessage(``))
	if err == nil {
		t.Fatal("expected error for empty response")
	}
}
