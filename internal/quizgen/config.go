package quizgen

import "time"

// Config controls the behavior of the Service.
type Config struct {
	// Validators is the ordered list of validators run on every
	// generated quiz. The first failure stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	// Zero leaves the provider default in place.
	Temperature float64

	// Timeout bounds a single provider call. Zero disables the bound.
	Timeout time.Duration
}

// MaxCount is the largest number of questions a single request may ask for.
const MaxCount = 20

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&CountValidator{},
		},
		MaxTokens: 4096,
		Timeout:   60 * time.Second,
	}
}
