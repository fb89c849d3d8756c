package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/mcqgen/internal/store"
)

// LoggingProvider writes one log line per call and appends the call to the
// audit log.
type LoggingProvider struct {
	inner     Provider
	name      ProviderName
	eventRepo store.EventRepo
	log       zerolog.Logger
}

// WithLogging wraps p. repo may be nil, in which case only the log line is
// written.
func WithLogging(p Provider, name ProviderName, repo store.EventRepo, log zerolog.Logger) Provider {
	return &LoggingProvider{inner: p, name: name, eventRepo: repo, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	info := CallInfoFrom(ctx)
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	event := store.LLMRequestEventData{
		Provider:    string(l.name),
		Model:       l.inner.ModelID(),
		Purpose:     info.Purpose,
		RequestID:   info.RequestID,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		if resp.Model != "" {
			event.Model = resp.Model
		}
		event.InputTokens = resp.Usage.InputTokens
		event.OutputTokens = resp.Usage.OutputTokens
		event.ResponseBody = string(resp.Content)
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}

	l.logEvent(event, err)

	// The audit log is best effort; the caller still gets the provider result.
	if l.eventRepo != nil {
		if recErr := l.eventRepo.AppendLLMRequest(context.WithoutCancel(ctx), event); recErr != nil {
			l.log.Warn().Err(recErr).Str("provider", event.Provider).Msg("Failed to record LLM request")
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func (l *LoggingProvider) logEvent(e store.LLMRequestEventData, err error) {
	ev := l.log.Info()
	if err != nil {
		ev = l.log.Error().Err(err)
	}
	if e.RequestID != "" {
		ev = ev.Str("request_id", e.RequestID)
	}
	ev = ev.Str("provider", e.Provider).
		Str("model", e.Model).
		Str("purpose", e.Purpose).
		Int64("latency_ms", e.LatencyMs)

	if err != nil {
		ev.Msg("LLM request failed")
		return
	}
	ev.Int("input_tokens", e.InputTokens).
		Int("output_tokens", e.OutputTokens).
		Msg("LLM request completed")
}

// transcript renders req as the plain-text request body stored in the
// audit log.
func transcript(req Request) string {
	var b strings.Builder

	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}

	var params []string
	if req.JSONOutput {
		params = append(params, "format=json")
	}
	if req.MaxTokens > 0 {
		params = append(params, fmt.Sprintf("max_tokens=%d", req.MaxTokens))
	}
	if req.Temperature > 0 {
		params = append(params, fmt.Sprintf("temperature=%.2f", req.Temperature))
	}
	if len(params) > 0 {
		fmt.Fprintf(&b, "[params] %s\n", strings.Join(params, " "))
	}

	return b.String()
}
