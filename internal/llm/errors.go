package llm

import (
	"encoding/json"
	"fmt"
)

// ErrRateLimit is returned when the vendor answers 429.
type ErrRateLimit struct{ Err error }

func (e *ErrRateLimit) Error() string { return "rate limited by LLM provider: " + errText(e.Err) }
func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrAuth is returned when the vendor rejects the API key (401 or 403).
type ErrAuth struct{ Err error }

func (e *ErrAuth) Error() string { return "LLM provider rejected credentials: " + errText(e.Err) }
func (e *ErrAuth) Unwrap() error { return e.Err }

// ErrProviderUnavailable covers transport failures, 5xx answers and
// providers that were never configured.
type ErrProviderUnavailable struct{ Err error }

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "LLM provider unavailable"
	}
	return "LLM provider unavailable: " + e.Err.Error()
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResponse means the completion could not be read as a quiz.
// Content holds the raw completion for the audit log and debugging.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string { return "invalid LLM response: " + errText(e.Err) }
func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded means the completion stopped at the token budget, so
// the JSON document is cut short.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return fmt.Sprintf("LLM response truncated at the token limit after %d bytes", len(e.Content))
}

func errText(err error) string {
	if err == nil {
		return "no detail"
	}
	return err.Error()
}
