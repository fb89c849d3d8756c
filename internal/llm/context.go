package llm

import "context"

type callInfoKey struct{}

// CallInfo labels a provider call in logs and the audit log.
type CallInfo struct {
	// Purpose names the feature making the call, e.g. "quiz-gen".
	Purpose string

	// RequestID correlates the call with the inbound HTTP request, if any.
	RequestID string
}

// WithPurpose returns a copy of ctx whose calls are labelled with purpose.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	info := callInfo(ctx)
	info.Purpose = purpose
	return context.WithValue(ctx, callInfoKey{}, info)
}

// WithRequestID returns a copy of ctx whose calls carry the request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	info := callInfo(ctx)
	info.RequestID = id
	return context.WithValue(ctx, callInfoKey{}, info)
}

// CallInfoFrom returns the labels attached to ctx. An unset purpose is
// reported as "unknown".
func CallInfoFrom(ctx context.Context) CallInfo {
	info := callInfo(ctx)
	if info.Purpose == "" {
		info.Purpose = "unknown"
	}
	return info
}

// PurposeFrom is shorthand for CallInfoFrom(ctx).Purpose.
func PurposeFrom(ctx context.Context) string {
	return CallInfoFrom(ctx).Purpose
}

func callInfo(ctx context.Context) CallInfo {
	info, _ := ctx.Value(callInfoKey{}).(CallInfo)
	return info
}
