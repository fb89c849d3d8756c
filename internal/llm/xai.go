package llm

import "fmt"

const defaultXAIBaseURL = "https://api.x.ai/v1"

// XAIProvider wraps OpenAIProvider with xAI defaults.
// xAI exposes an OpenAI-compatible API, so the underlying SDK is reused.
type XAIProvider struct {
	*OpenAIProvider
}

// NewXAIProvider creates a provider targeting the xAI API.
func NewXAIProvider(cfg XAIConfig) (*XAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("xai API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultXAIBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "grok-3"
	}

	return &XAIProvider{OpenAIProvider: newChatCompletions(cfg.APIKey, baseURL, model)}, nil
}
