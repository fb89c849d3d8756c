package quizgen

import "github.com/abhisek/mcqgen/internal/llm"

// ResponseSchema accepts any object holding a questions array. The shape of
// individual questions is left to the validator chain.
var ResponseSchema = &llm.Schema{
	Name:        "mcq-response",
	Description: "Top-level envelope of a generated quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "The generated multiple-choice questions",
			},
		},
		"required": []any{"questions"},
	},
}
