package quizgen

import (
	"fmt"
	"slices"
	"strings"
)

// StructuralValidator checks that every question has text, at least two
// options, and an answer that is exactly one of its options.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(quiz *Quiz, _ GenerationRequest) *ValidationError {
	for i, q := range quiz.Questions {
		if strings.TrimSpace(q.Question) == "" {
			return v.fail(i, "question text is empty")
		}
		if len(q.Options) < 2 {
			return v.fail(i, "fewer than 2 options")
		}
		if !slices.Contains(q.Options, q.Answer) {
			return v.fail(i, fmt.Sprintf("answer %q is not one of the options", q.Answer))
		}
	}
	return nil
}

func (v *StructuralValidator) fail(index int, msg string) *ValidationError {
	return &ValidationError{
		Validator: v.Name(),
		Message:   fmt.Sprintf("question %d: %s", index+1, msg),
	}
}
