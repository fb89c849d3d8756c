package llm

import (
	"errors"
	"net/http"
	"testing"
)

func TestClassifyStatus(t *testing.T) {
	cause := errors.New("vendor said no")

	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusTooManyRequests, func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) }},
		{http.StatusUnauthorized, func(err error) bool { var e *ErrAuth; return errors.As(err, &e) }},
		{http.StatusForbidden, func(err error) bool { var e *ErrAuth; return errors.As(err, &e) }},
		{http.StatusInternalServerError, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
		{0, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
	}

	for _, tt := range tests {
		err := classifyStatus(tt.status, cause)
		if !tt.check(err) {
			t.Errorf("status %d: unexpected type %T", tt.status, err)
		}
		if !errors.Is(err, cause) {
			t.Errorf("status %d: cause not wrapped", tt.status)
		}
	}
}

func TestStopReason(t *testing.T) {
	if stopReason(true) != StopMaxTokens || stopReason(false) != StopEnd {
		t.Fatal("unexpected stop reason mapping")
	}
}
