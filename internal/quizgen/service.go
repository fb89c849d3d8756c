package quizgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/abhisek/mcqgen/internal/llm"
)

// ErrInvalidRequest is returned for requests that cannot be sent to a
// provider.
var ErrInvalidRequest = errors.New("invalid generation request")

// Generator produces quizzes. The HTTP endpoint and the local terminal
// client both depend on this interface.
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) ([]Question, error)
}

// Service implements Generator as validate(adapter.Call(req)).
type Service struct {
	adapter *Adapter
	config  Config
	log     zerolog.Logger
}

// New creates a Service.
func New(providers ProviderSource, cfg Config, log zerolog.Logger) *Service {
	return &Service{
		adapter: NewAdapter(providers, cfg),
		config:  cfg,
		log:     log,
	}
}

// Validate checks the request fields.
func (r GenerationRequest) Validate() error {
	if strings.TrimSpace(r.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidRequest)
	}
	if r.Count < 1 {
		return fmt.Errorf("%w: count must be at least 1", ErrInvalidRequest)
	}
	if _, err := llm.ParseProviderName(string(r.Provider)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}

// Generate requests req.Count questions and returns them once the response
// validator and the validator chain accept them.
func (s *Service) Generate(ctx context.Context, req GenerationRequest) ([]Question, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	raw, err := s.adapter.Call(ctx, req)
	if err != nil {
		return nil, err
	}

	quiz, err := ParseResponse(raw)
	if err != nil {
		return nil, err
	}

	for _, v := range s.config.Validators {
		if verr := v.Validate(quiz, req); verr != nil {
			return nil, verr
		}
	}

	s.log.Debug().
		Str("provider", string(req.Provider)).
		Str("subject", req.Subject).
		Int("count", len(quiz.Questions)).
		Msg("quiz generated")

	return quiz.Questions, nil
}
