// Package client talks to a running mcqgen server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/abhisek/mcqgen/internal/quizgen"
)

// DefaultTimeout bounds one generate round trip. It is longer than the
// server's provider timeout so the server's own error reaches the caller.
const DefaultTimeout = 90 * time.Second

const defaultBaseURL = "http://localhost:3000"

// ErrServiceUnavailable wraps transport failures reaching the server.
var ErrServiceUnavailable = errors.New("quiz service unavailable")

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

// HTTPClient implements quizgen.Generator against POST /api/generate.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ quizgen.Generator = (*HTTPClient)(nil)

type generateRequest struct {
	Subject  string `json:"subject"`
	Count    int    `json:"count"`
	Provider string `json:"provider"`
}

type generateResponse struct {
	Questions []quizgen.Question `json:"questions"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// New creates a client for the server at baseURL. A nil httpClient gets
// one with DefaultTimeout.
func New(baseURL string, httpClient *http.Client) *HTTPClient {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPClient{baseURL: baseURL, httpClient: httpClient}
}

// BaseURL returns the server address this client targets.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// Generate asks the server for req.Count questions.
func (c *HTTPClient) Generate(ctx context.Context, req quizgen.GenerationRequest) ([]quizgen.Question, error) {
	var payload generateResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/generate", generateRequest{
		Subject:  req.Subject,
		Count:    req.Count,
		Provider: string(req.Provider),
	}, &payload)
	if err != nil {
		return nil, err
	}
	return payload.Questions, nil
}

// Health checks that the server is reachable.
func (c *HTTPClient) Health(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, requestBody any, responseBody any) error {
	var body io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		apiErr := APIError{StatusCode: response.StatusCode}
		var payload errorResponse
		if err := json.NewDecoder(response.Body).Decode(&payload); err == nil && strings.TrimSpace(payload.Error) != "" {
			apiErr.Message = payload.Error
		}
		if apiErr.Message == "" {
			apiErr.Message = response.Status
		}
		return &apiErr
	}

	if responseBody == nil {
		return nil
	}
	if err := json.NewDecoder(response.Body).Decode(responseBody); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
