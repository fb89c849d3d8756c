package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Provider is one vendor's chat API reduced to a single call: prompt in,
// completion text out.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	ModelID() string
}

// ProviderName identifies one of the supported LLM vendors.
type ProviderName string

const (
	ProviderOpenAI ProviderName = "openai"
	ProviderClaude ProviderName = "claude"
	ProviderGemini ProviderName = "gemini"
	ProviderXAI    ProviderName = "xai"
)

// AllProviders lists the vendors in the order the picker shows them.
func AllProviders() []ProviderName {
	return []ProviderName{ProviderOpenAI, ProviderClaude, ProviderGemini, ProviderXAI}
}

// ParseProviderName accepts only the lowercase wire tags.
func ParseProviderName(s string) (ProviderName, error) {
	for _, p := range AllProviders() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown LLM provider: %q", s)
}

func (p ProviderName) DisplayName() string {
	switch p {
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderClaude:
		return "Claude"
	case ProviderGemini:
		return "Gemini"
	case ProviderXAI:
		return "xAI"
	}
	return string(p)
}

type Request struct {
	System   string
	Messages []Message

	// JSONOutput turns on the vendor's JSON mode where one exists
	// (OpenAI response_format, Gemini response MIME type).
	JSONOutput bool

	// MaxTokens and Temperature fall back to vendor defaults when zero.
	MaxTokens   int
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema document checked by ValidateJSON. It compiles
// on first use; share it by pointer and do not mutate Definition after.
type Schema struct {
	Name        string // shown in validation errors
	Description string
	Definition  map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

type Response struct {
	// Content is the completion text, unwrapped from the vendor envelope
	// but otherwise untouched.
	Content json.RawMessage
	Usage   Usage

	// Model is the model that actually answered, which may be a dated
	// snapshot of the configured one.
	Model string

	// StopReason is StopEnd or StopMaxTokens.
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
