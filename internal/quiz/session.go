package quiz

import (
	"errors"
	"slices"

	"github.com/abhisek/mcqgen/internal/quizgen"
)

// GenerationFailedMessage is the only error text shown to the user.
const GenerationFailedMessage = "Failed to generate questions. Please try again."

var (
	// ErrWrongPhase is returned when an operation is not allowed in the
	// current phase. The session is left unchanged.
	ErrWrongPhase = errors.New("operation not allowed in current phase")

	// ErrBusy is returned when a generation is already in flight.
	ErrBusy = errors.New("generation already in progress")

	// ErrNoAnswer is returned when advancing past an unanswered question.
	ErrNoAnswer = errors.New("current question has no answer")

	// ErrUnknownOption is returned when selecting text that is not one of
	// the current question's options.
	ErrUnknownOption = errors.New("option is not offered by the current question")
)

// Phase is the current state of a quiz session.
type Phase int

const (
	PhaseInput  Phase = iota // Collecting subject, count and provider
	PhaseQuiz                // Answering questions one at a time
	PhaseResult              // Showing the score
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseQuiz:
		return "quiz"
	case PhaseResult:
		return "result"
	}
	return "unknown"
}

// Session holds one user's quiz in memory. It is not safe for concurrent
// use; the terminal client drives it from a single update loop.
type Session struct {
	phase     Phase
	request   quizgen.GenerationRequest
	questions []quizgen.Question
	answers   []*string
	current   int
	loading   bool
	errMsg    string
}

// NewSession returns a session in the input phase.
func NewSession() *Session {
	return &Session{phase: PhaseInput}
}

func (s *Session) Phase() Phase                       { return s.phase }
func (s *Session) Request() quizgen.GenerationRequest { return s.request }
func (s *Session) Questions() []quizgen.Question      { return s.questions }
func (s *Session) CurrentIndex() int                  { return s.current }
func (s *Session) IsLoading() bool                    { return s.loading }

// Error returns the banner message, or "" when there is none.
func (s *Session) Error() string { return s.errMsg }

// Answers returns the recorded answers; nil entries are unanswered.
func (s *Session) Answers() []*string { return s.answers }

// Current returns the visible question. ok is false outside the quiz phase.
func (s *Session) Current() (q quizgen.Question, ok bool) {
	if s.phase != PhaseQuiz {
		return quizgen.Question{}, false
	}
	return s.questions[s.current], true
}

// CurrentAnswer returns the answer recorded for the visible question.
func (s *Session) CurrentAnswer() (string, bool) {
	if s.phase != PhaseQuiz || s.answers[s.current] == nil {
		return "", false
	}
	return *s.answers[s.current], true
}

// IsLast reports whether the visible question is the final one.
func (s *Session) IsLast() bool {
	return s.phase == PhaseQuiz && s.current == len(s.questions)-1
}

// BeginGeneration marks a request as in flight and clears any banner.
func (s *Session) BeginGeneration(req quizgen.GenerationRequest) error {
	if s.phase != PhaseInput {
		return ErrWrongPhase
	}
	if s.loading {
		return ErrBusy
	}
	s.request = req
	s.loading = true
	s.errMsg = ""
	return nil
}

// CompleteGeneration settles the in-flight request. A failure or an empty
// list keeps the session in the input phase with the banner set.
func (s *Session) CompleteGeneration(questions []quizgen.Question, err error) error {
	if s.phase != PhaseInput || !s.loading {
		return ErrWrongPhase
	}
	s.loading = false

	if err != nil || len(questions) == 0 {
		s.errMsg = GenerationFailedMessage
		return nil
	}

	s.questions = questions
	s.answers = make([]*string, len(questions))
	s.current = 0
	s.phase = PhaseQuiz
	return nil
}

// Select records option as the answer to the visible question, replacing
// any earlier choice.
func (s *Session) Select(option string) error {
	if s.phase != PhaseQuiz {
		return ErrWrongPhase
	}
	if !slices.Contains(s.questions[s.current].Options, option) {
		return ErrUnknownOption
	}
	s.answers[s.current] = &option
	return nil
}

// CanAdvance reports whether the visible question has an answer.
func (s *Session) CanAdvance() bool {
	return s.phase == PhaseQuiz && s.answers[s.current] != nil
}

// Advance moves to the next question, or to the result phase after the
// last one.
func (s *Session) Advance() error {
	if s.phase != PhaseQuiz {
		return ErrWrongPhase
	}
	if s.answers[s.current] == nil {
		return ErrNoAnswer
	}
	if s.current < len(s.questions)-1 {
		s.current++
		return nil
	}
	s.phase = PhaseResult
	return nil
}

// Result scores the session. Valid in the result phase.
func (s *Session) Result() (Result, error) {
	if s.phase != PhaseResult {
		return Result{}, ErrWrongPhase
	}
	return Score(s.questions, s.answers), nil
}

// Restart discards the quiz and returns to a fresh input phase.
func (s *Session) Restart() error {
	if s.phase != PhaseResult {
		return ErrWrongPhase
	}
	*s = Session{phase: PhaseInput}
	return nil
}
