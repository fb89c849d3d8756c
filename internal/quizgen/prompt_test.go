package quizgen

import (
	"strings"
	"testing"
)

func TestBuildUserMessage(t *testing.T) {
	got := buildUserMessage(GenerationRequest{Subject: "Roman History", Count: 3})
	want := `Generate 3 multiple-choice questions about "Roman History".`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSystemPrompt_DescribesSchema(t *testing.T) {
	for _, want := range []string{`"questions"`, `"question"`, `"options"`, `"answer"`, "```python", "raw JSON"} {
		if !strings.Contains(systemPrompt, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}
