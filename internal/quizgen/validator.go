package quizgen

import "fmt"

// Validator checks a decoded quiz before it is handed to the caller.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, e.g. "structural".
	Name() string

	// Validate checks the quiz and returns nil if it passes. A validator
	// may normalize quiz in place (CountValidator truncates extras).
	Validate(quiz *Quiz, req GenerationRequest) *ValidationError
}

// ValidationError describes why a generated quiz was rejected.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Err       error  // Optional sentinel, e.g. ErrNoQuestions
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }
