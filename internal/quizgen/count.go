package quizgen

import (
	"errors"
	"fmt"
)

// ErrNoQuestions is returned when the provider produced an empty list.
var ErrNoQuestions = errors.New("no questions generated")

// CountValidator enforces that exactly req.Count questions are returned.
// Extra questions are dropped; a short or empty list is an error.
type CountValidator struct{}

func (v *CountValidator) Name() string { return "count" }

func (v *CountValidator) Validate(quiz *Quiz, req GenerationRequest) *ValidationError {
	n := len(quiz.Questions)
	switch {
	case n == 0:
		return &ValidationError{
			Validator: v.Name(),
			Message:   ErrNoQuestions.Error(),
			Err:       ErrNoQuestions,
		}
	case n < req.Count:
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected %d questions, got %d", req.Count, n),
		}
	case n > req.Count:
		quiz.Questions = quiz.Questions[:req.Count]
	}
	return nil
}
