package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewRegistry_RegistersEveryProvider(t *testing.T) {
	reg, err := NewRegistry(context.Background(), DefaultConfig(), nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range AllProviders() {
		if _, err := reg.Get(name); err != nil {
			t.Fatalf("Get(%s): %v", name, err)
		}
	}
}

func TestNewRegistry_MissingKeyFailsAtCallTime(t *testing.T) {
	reg, err := NewRegistry(context.Background(), DefaultConfig(), nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := reg.Get(ProviderClaude)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	_, err = p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T (%v)", err, err)
	}
}

func TestNewRegistry_RoutesToConfiguredVendor(t *testing.T) {
	var gotModel string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotModel, _ = body["model"].(string)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  gotModel,
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": `{"questions":[]}`},
				"finish_reason": "stop",
			}},
		})
	}))
	t.Cleanup(server.Close)

	cfg := DefaultConfig()
	cfg.XAI.APIKey = "x-test"
	cfg.XAI.BaseURL = server.URL + "/v1"

	reg, err := NewRegistry(context.Background(), cfg, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := reg.Get(ProviderXAI)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	resp, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if gotModel != "grok-3" {
		t.Fatalf("expected grok-3 on the wire, got %q", gotModel)
	}
	if string(resp.Content) != `{"questions":[]}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	reg := NewRegistryFrom(map[ProviderName]Provider{
		ProviderOpenAI: NewMockProvider(),
	})

	if _, err := reg.Get(ProviderOpenAI); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := reg.Get(ProviderName("mistral")); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
