package quizgen

import "github.com/abhisek/mcqgen/internal/llm"

// Question is a single multiple-choice question.
type Question struct {
	// Question is the prompt shown to the user. It may embed fenced
	// markdown code blocks.
	Question string `json:"question"`

	// Options are the choices in display order.
	Options []string `json:"options"`

	// Answer is the text of the correct option. It must equal one of
	// Options exactly.
	Answer string `json:"answer"`
}

// GenerationRequest asks for Count questions about Subject from Provider.
type GenerationRequest struct {
	Subject  string
	Count    int
	Provider llm.ProviderName
}

// Quiz is the decoded generation result.
type Quiz struct {
	Questions []Question `json:"questions"`
}
