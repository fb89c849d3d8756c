package llm

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"sync"
)

// MockResponse is one scripted reply of a MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error

	// StopReason defaults to "end".
	StopReason string
}

// MockText is a MockResponse whose content is s.
func MockText(s string) MockResponse {
	return MockResponse{Content: json.RawMessage(s)}
}

// MockProvider is a scripted Provider for tests. Each Generate call
// consumes the next MockResponse in order. Once the script is exhausted
// calls fail with *ErrProviderUnavailable.
type MockProvider struct {
	// Model is reported by ModelID and Response.Model. Default: "mock".
	Model string

	mu       sync.Mutex
	script   []MockResponse
	next     int
	requests []Request
}

// NewMockProvider returns a MockProvider that replies with script.
func NewMockProvider(script ...MockResponse) *MockProvider {
	return &MockProvider{script: script}
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, req)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.next >= len(m.script) {
		return nil, &ErrProviderUnavailable{Err: errors.New("mock script exhausted")}
	}

	r := m.script[m.next]
	m.next++
	if r.Err != nil {
		return nil, r.Err
	}

	resp := &Response{
		Content:    r.Content,
		Usage:      r.Usage,
		Model:      m.modelID(),
		StopReason: r.StopReason,
	}
	if resp.StopReason == "" {
		resp.StopReason = StopEnd
	}
	return resp, nil
}

func (m *MockProvider) ModelID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.modelID()
}

func (m *MockProvider) modelID() string {
	if m.Model == "" {
		return "mock"
	}
	return m.Model
}

// Requests returns a copy of every request received so far.
func (m *MockProvider) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.requests)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}
