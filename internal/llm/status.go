package llm

import "net/http"

// Normalized Response.StopReason values.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

func stopReason(truncated bool) string {
	if truncated {
		return StopMaxTokens
	}
	return StopEnd
}

// classifyStatus wraps a failed SDK call in the typed error for the HTTP
// status the vendor answered with. A zero status means no response was
// received.
func classifyStatus(status int, err error) error {
	switch status {
	case http.StatusTooManyRequests:
		return &ErrRateLimit{Err: err}
	case http.StatusUnauthorized, http.StatusForbidden:
		return &ErrAuth{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}
