package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/quizgen"
)

// Response bodies returned by the generate endpoint.
const (
	msgMissingFields    = "Missing required fields"
	msgInvalidRequest   = "Invalid request"
	msgGenerationFailed = "Failed to generate questions"
)

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	Subject  string `json:"subject" binding:"required"`
	Count    Count  `json:"count" binding:"required"`
	Provider string `json:"provider" binding:"required"`
}

// Count is a question count. Whole-number floats such as 3.0 decode as
// integers; 2.5 does not decode.
type Count int

// maxCount is the largest count that decodes.
const maxCount = 1 << 31

func (n *Count) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	if f != math.Trunc(f) || math.Abs(f) > maxCount {
		return fmt.Errorf("count %v is not a whole number", f)
	}
	*n = Count(f)
	return nil
}

// GenerateResponse is the success body of POST /api/generate.
type GenerateResponse struct {
	Questions []quizgen.Question `json:"questions"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

type generateHandler struct {
	gen quizgen.Generator
	log zerolog.Logger
}

// Generate godoc
// POST /api/generate
func (h *generateHandler) Generate(c *gin.Context) {
	log := h.log.With().Str("request_id", c.GetString(contextKeyRequestID)).Logger()

	var req GenerateRequest
	if berr := bind(c, &req); berr != nil {
		log.Warn().Interface("fields", berr.Fields).Msg("rejected generate request")
		msg := msgInvalidRequest
		if berr.Missing {
			msg = msgMissingFields
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
		return
	}

	provider, err := llm.ParseProviderName(req.Provider)
	if err != nil {
		log.Warn().Err(err).Msg("rejected generate request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidRequest})
		return
	}

	ctx := llm.WithRequestID(c.Request.Context(), c.GetString(contextKeyRequestID))
	questions, err := h.gen.Generate(ctx, quizgen.GenerationRequest{
		Subject:  req.Subject,
		Count:    int(req.Count),
		Provider: provider,
	})
	if err != nil {
		if errors.Is(err, quizgen.ErrInvalidRequest) {
			log.Warn().Err(err).Msg("rejected generate request")
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidRequest})
			return
		}
		log.Error().Err(err).
			Str("provider", string(provider)).
			Str("subject", req.Subject).
			Int("count", int(req.Count)).
			Msg("question generation failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgGenerationFailed})
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{Questions: questions})
}
