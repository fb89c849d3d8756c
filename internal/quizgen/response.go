package quizgen

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/mcqgen/internal/llm"
)

// ParseResponse validates raw provider text and decodes it into a Quiz.
// It fails with *llm.ErrInvalidResponse unless raw is a JSON object
// holding a questions array.
func ParseResponse(raw json.RawMessage) (*Quiz, error) {
	if err := llm.ValidateJSON(ResponseSchema, raw); err != nil {
		return nil, err
	}

	var quiz Quiz
	if err := json.Unmarshal(raw, &quiz); err != nil {
		return nil, &llm.ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("decode questions: %w", err),
		}
	}
	return &quiz, nil
}
