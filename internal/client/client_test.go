package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/quizgen"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestGenerateSendsRequestAndParsesQuestions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, generateRequest{Subject: "Roman History", Count: 1, Provider: "claude"}, body)

		_ = json.NewEncoder(w).Encode(generateResponse{Questions: []quizgen.Question{
			{Question: "Who was the first Roman emperor?", Options: []string{"Augustus", "Nero"}, Answer: "Augustus"},
		}})
	}))
	defer server.Close()

	c := New(server.URL+"/", server.Client())
	questions, err := c.Generate(context.Background(), quizgen.GenerationRequest{
		Subject:  "Roman History",
		Count:    1,
		Provider: llm.ProviderClaude,
	})

	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "Augustus", questions[0].Answer)
}

func TestGenerateReturnsAPIErrorMessageFromBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: "Failed to generate questions"})
	}))
	defer server.Close()

	c := New(server.URL, server.Client())
	_, err := c.Generate(context.Background(), quizgen.GenerationRequest{Subject: "Go", Count: 2, Provider: llm.ProviderOpenAI})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Failed to generate questions", apiErr.Message)
}

func TestAPIErrorFallsBackToStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	err := New(server.URL, server.Client()).Health(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "502 Bad Gateway", apiErr.Message)
}

func TestTransportFailureIsServiceUnavailable(t *testing.T) {
	c := New("http://example.test", &http.Client{
		Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("dial error")
		}),
	})

	_, err := c.Generate(context.Background(), quizgen.GenerationRequest{Subject: "Go", Count: 1, Provider: llm.ProviderXAI})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestNewDefaults(t *testing.T) {
	c := New("  ", nil)
	assert.Equal(t, "http://localhost:3000", c.BaseURL())
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
}
