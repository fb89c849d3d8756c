package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/mcqgen/internal/llm"
)

// ProviderSource resolves a provider tag to its variant. *llm.Registry
// satisfies it.
type ProviderSource interface {
	Get(name llm.ProviderName) (llm.Provider, error)
}

// Adapter turns a GenerationRequest into one provider call and returns the
// raw completion text.
type Adapter struct {
	providers   ProviderSource
	maxTokens   int
	temperature float64
}

// NewAdapter creates an Adapter backed by providers.
func NewAdapter(providers ProviderSource, cfg Config) *Adapter {
	return &Adapter{
		providers:   providers,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
}

// Call sends the fixed system prompt and the per-request user instruction
// to the requested provider.
func (a *Adapter) Call(ctx context.Context, req GenerationRequest) (json.RawMessage, error) {
	provider, err := a.providers.Get(req.Provider)
	if err != nil {
		return nil, err
	}

	resp, err := provider.Generate(llm.WithPurpose(ctx, "quiz-gen"), llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req)},
		},
		JSONOutput:  true,
		MaxTokens:   a.maxTokens,
		Temperature: a.temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%s generation failed: %w", req.Provider, err)
	}

	if resp.StopReason == llm.StopMaxTokens {
		return nil, &llm.ErrMaxTokensExceeded{Content: resp.Content}
	}

	return resp.Content, nil
}
