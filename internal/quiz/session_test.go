package quiz

import (
	"errors"
	"testing"

	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/quizgen"
)

func romanQuestions() []quizgen.Question {
	return []quizgen.Question{
		{Question: "Who was the first emperor of Rome?", Options: []string{"Julius Caesar", "Augustus", "Nero", "Trajan"}, Answer: "Augustus"},
		{Question: "In which year did the Western Roman Empire fall?", Options: []string{"410 AD", "476 AD", "1453 AD", "31 BC"}, Answer: "476 AD"},
		{Question: "Which river did Caesar cross in 49 BC?", Options: []string{"Tiber", "Po", "Rubicon", "Danube"}, Answer: "Rubicon"},
	}
}

func romanRequest() quizgen.GenerationRequest {
	return quizgen.GenerationRequest{Subject: "Roman History", Count: 3, Provider: llm.ProviderOpenAI}
}

func startedSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession()
	if err := s.BeginGeneration(romanRequest()); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := s.CompleteGeneration(romanQuestions(), nil); err != nil {
		t.Fatalf("complete: %v", err)
	}
	return s
}

func TestNewSession(t *testing.T) {
	s := NewSession()
	if s.Phase() != PhaseInput {
		t.Fatalf("expected input phase, got %s", s.Phase())
	}
	if s.IsLoading() || s.Error() != "" || len(s.Questions()) != 0 {
		t.Fatal("expected a clean session")
	}
}

func TestRomanHistoryScenario(t *testing.T) {
	s := startedSession(t)

	if s.Phase() != PhaseQuiz {
		t.Fatalf("expected quiz phase, got %s", s.Phase())
	}
	if s.IsLoading() {
		t.Fatal("expected loading to be cleared")
	}

	for i, q := range romanQuestions() {
		if s.CurrentIndex() != i {
			t.Fatalf("expected index %d, got %d", i, s.CurrentIndex())
		}
		if err := s.Select(q.Answer); err != nil {
			t.Fatalf("select %d: %v", i, err)
		}
		if err := s.Advance(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}

	if s.Phase() != PhaseResult {
		t.Fatalf("expected result phase, got %s", s.Phase())
	}
	res, err := s.Result()
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if res.Score != 3 || res.Total != 3 || res.Percentage != 100 {
		t.Fatalf("expected 3/3 100%%, got %d/%d %d%%", res.Score, res.Total, res.Percentage)
	}
}

func TestBeginGeneration_ClearsErrorAndRefusesWhileLoading(t *testing.T) {
	s := NewSession()
	_ = s.BeginGeneration(romanRequest())
	_ = s.CompleteGeneration(nil, errors.New("outage"))
	if s.Error() == "" {
		t.Fatal("expected banner after failure")
	}

	if err := s.BeginGeneration(romanRequest()); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if s.Error() != "" {
		t.Fatal("expected banner to be cleared")
	}
	if !s.IsLoading() {
		t.Fatal("expected loading")
	}
	if err := s.BeginGeneration(romanRequest()); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}
	if s.Request().Subject != "Roman History" {
		t.Fatalf("expected request to be kept, got %+v", s.Request())
	}
}

func TestCompleteGeneration_FailureStaysInInput(t *testing.T) {
	tests := []struct {
		name      string
		questions []quizgen.Question
		err       error
	}{
		{"provider outage", nil, errors.New("503")},
		{"empty list", []quizgen.Question{}, nil},
		{"error with questions", romanQuestions(), errors.New("late failure")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			_ = s.BeginGeneration(romanRequest())
			if err := s.CompleteGeneration(tt.questions, tt.err); err != nil {
				t.Fatalf("complete: %v", err)
			}
			if s.Phase() != PhaseInput {
				t.Fatalf("expected input phase, got %s", s.Phase())
			}
			if s.IsLoading() {
				t.Fatal("expected loading to be cleared")
			}
			if s.Error() != GenerationFailedMessage {
				t.Fatalf("expected %q, got %q", GenerationFailedMessage, s.Error())
			}
			if len(s.Questions()) != 0 {
				t.Fatal("expected no questions")
			}
		})
	}
}

func TestCompleteGeneration_WithoutBegin(t *testing.T) {
	s := NewSession()
	if err := s.CompleteGeneration(romanQuestions(), nil); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("expected ErrWrongPhase, got %v", err)
	}
	if s.Phase() != PhaseInput {
		t.Fatal("expected session unchanged")
	}
}

func TestCompleteGeneration_InitializesAnswers(t *testing.T) {
	s := startedSession(t)
	if len(s.Answers()) != 3 {
		t.Fatalf("expected 3 answer slots, got %d", len(s.Answers()))
	}
	for i, a := range s.Answers() {
		if a != nil {
			t.Fatalf("answer %d should be absent", i)
		}
	}
	if s.CurrentIndex() != 0 {
		t.Fatalf("expected index 0, got %d", s.CurrentIndex())
	}
}

func TestSelect_OverwritesPreviousChoice(t *testing.T) {
	s := startedSession(t)

	_ = s.Select("Nero")
	_ = s.Select("Augustus")

	got, ok := s.CurrentAnswer()
	if !ok || got != "Augustus" {
		t.Fatalf("expected Augustus, got %q (ok=%v)", got, ok)
	}
}

func TestSelect_UnknownOption(t *testing.T) {
	s := startedSession(t)
	if err := s.Select("Caligula"); !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
	if s.CanAdvance() {
		t.Fatal("expected no answer recorded")
	}
}

func TestAdvance_BlockedWithoutAnswer(t *testing.T) {
	s := startedSession(t)

	if s.CanAdvance() {
		t.Fatal("expected CanAdvance false before selection")
	}
	if err := s.Advance(); !errors.Is(err, ErrNoAnswer) {
		t.Fatalf("expected ErrNoAnswer, got %v", err)
	}
	if s.CurrentIndex() != 0 {
		t.Fatal("expected index unchanged")
	}

	_ = s.Select("Augustus")
	if !s.CanAdvance() {
		t.Fatal("expected CanAdvance true after selection")
	}
}

func TestIsLast(t *testing.T) {
	s := startedSession(t)
	for i := 0; i < 2; i++ {
		if s.IsLast() {
			t.Fatalf("index %d should not be last", i)
		}
		_ = s.Select(romanQuestions()[i].Answer)
		_ = s.Advance()
	}
	if !s.IsLast() {
		t.Fatal("expected last question")
	}
}

func TestWrongPhaseOperations(t *testing.T) {
	s := NewSession()
	if err := s.Select("x"); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("Select in input: %v", err)
	}
	if err := s.Advance(); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("Advance in input: %v", err)
	}
	if err := s.Restart(); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("Restart in input: %v", err)
	}
	if _, err := s.Result(); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("Result in input: %v", err)
	}
	if _, ok := s.Current(); ok {
		t.Error("Current in input should not be ok")
	}

	q := startedSession(t)
	if err := q.BeginGeneration(romanRequest()); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("BeginGeneration in quiz: %v", err)
	}
	if err := q.Restart(); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("Restart in quiz: %v", err)
	}
}

func TestRestart_ReturnsToFreshInput(t *testing.T) {
	s := startedSession(t)
	for _, q := range romanQuestions() {
		_ = s.Select(q.Options[0])
		_ = s.Advance()
	}

	if err := s.Restart(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if s.Phase() != PhaseInput {
		t.Fatalf("expected input phase, got %s", s.Phase())
	}
	if len(s.Questions()) != 0 || len(s.Answers()) != 0 {
		t.Fatal("expected questions and answers cleared")
	}
	if s.CurrentIndex() != 0 || s.Error() != "" || s.IsLoading() {
		t.Fatal("expected fresh state")
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseResult.String() != "result" {
		t.Fatalf("got %q", PhaseResult.String())
	}
}
