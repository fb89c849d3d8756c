package llm

import (
	"fmt"
	"time"
)

// Config carries the credentials and model choice of every vendor.
type Config struct {
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Gemini    GeminiConfig
	XAI       XAIConfig

	// Timeout bounds one quiz generation call. Default: 60s.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey  string
	Model   string // Default: "claude-sonnet"
	BaseURL string // Optional. Used by tests and proxies.
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o"
	BaseURL string // Optional. Override for OpenAI-compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey  string
	Model   string // Default: "gemini-flash"
	BaseURL string // Optional. Used by tests and proxies.
}

// XAIConfig holds xAI-specific configuration.
type XAIConfig struct {
	APIKey  string
	Model   string // Default: "grok-3"
	BaseURL string // Default: "https://api.x.ai/v1"
}

// DefaultConfig returns a Config with sensible defaults and no API keys.
func DefaultConfig() Config {
	return Config{
		OpenAI:    OpenAIConfig{Model: "gpt-4o"},
		Anthropic: AnthropicConfig{Model: "claude-sonnet"},
		Gemini:    GeminiConfig{Model: "gemini-flash"},
		XAI:       XAIConfig{Model: "grok-3", BaseURL: defaultXAIBaseURL},
		Timeout:   60 * time.Second,
	}
}

// envKeys names the environment variable that carries each vendor's key.
var envKeys = map[ProviderName]string{
	ProviderOpenAI: "OPENAI_API_KEY",
	ProviderClaude: "ANTHROPIC_API_KEY",
	ProviderGemini: "GEMINI_API_KEY",
	ProviderXAI:    "XAI_API_KEY",
}

func (c Config) apiKey(name ProviderName) string {
	switch name {
	case ProviderOpenAI:
		return c.OpenAI.APIKey
	case ProviderClaude:
		return c.Anthropic.APIKey
	case ProviderGemini:
		return c.Gemini.APIKey
	case ProviderXAI:
		return c.XAI.APIKey
	}
	return ""
}

// Validate reports whether name is a known provider with a key set.
func (c Config) Validate(name ProviderName) error {
	env, ok := envKeys[name]
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", name)
	}
	if c.apiKey(name) == "" {
		return fmt.Errorf("%s is required for the %s provider", env, name)
	}
	return nil
}

// Configured lists the providers with a key, in display order.
func (c Config) Configured() []ProviderName {
	var out []ProviderName
	for _, p := range AllProviders() {
		if c.apiKey(p) != "" {
			out = append(out, p)
		}
	}
	return out
}
