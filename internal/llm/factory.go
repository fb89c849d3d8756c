package llm

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/abhisek/mcqgen/internal/store"
)

// Registry resolves a ProviderName to its Provider variant.
type Registry struct {
	providers map[ProviderName]Provider
}

// NewRegistry builds one Provider per supported vendor from configuration.
// Each provider is wrapped with logging middleware. A vendor whose API key
// is missing is still registered; its Generate fails with
// ErrProviderUnavailable so the absence surfaces as a call failure.
func NewRegistry(ctx context.Context, cfg Config, eventRepo store.EventRepo, log zerolog.Logger) (*Registry, error) {
	providers := make(map[ProviderName]Provider, len(AllProviders()))

	for _, name := range AllProviders() {
		base, err := newBaseProvider(ctx, name, cfg)
		if err != nil {
			log.Warn().Err(err).Str("provider", string(name)).Msg("LLM provider not configured")
			base = &unconfiguredProvider{name: name, err: err}
		}
		providers[name] = WithLogging(base, name, eventRepo, log)
	}

	return &Registry{providers: providers}, nil
}

// NewRegistryFrom builds a Registry from explicit providers without any
// middleware. Names not in the map resolve to an error.
func NewRegistryFrom(providers map[ProviderName]Provider) *Registry {
	return &Registry{providers: providers}
}

// Get returns the provider registered under name.
func (r *Registry) Get(name ProviderName) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown LLM provider: %q", name)
	}
	return p, nil
}

func newBaseProvider(ctx context.Context, name ProviderName, cfg Config) (Provider, error) {
	if err := cfg.Validate(name); err != nil {
		return nil, err
	}

	var (
		p   Provider
		err error
	)
	switch name {
	case ProviderOpenAI:
		p, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderClaude:
		p, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderGemini:
		p, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderXAI:
		p, err = NewXAIProvider(cfg.XAI)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", name, err)
	}
	return p, nil
}

// unconfiguredProvider stands in for a vendor that could not be built.
type unconfiguredProvider struct {
	name ProviderName
	err  error
}

func (u *unconfiguredProvider) Generate(context.Context, Request) (*Response, error) {
	return nil, &ErrProviderUnavailable{Err: u.err}
}

func (u *unconfiguredProvider) ModelID() string {
	return string(u.name)
}
