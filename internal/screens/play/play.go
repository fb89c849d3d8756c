// Package play is the quiz screen: the input form, one question at a time,
// and the score.
package play

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/quiz"
	"github.com/abhisek/mcqgen/internal/quizgen"
	"github.com/abhisek/mcqgen/internal/router"
	"github.com/abhisek/mcqgen/internal/screen"
	"github.com/abhisek/mcqgen/internal/screens/review"
	"github.com/abhisek/mcqgen/internal/ui/components"
	"github.com/abhisek/mcqgen/internal/ui/layout"
	"github.com/abhisek/mcqgen/internal/ui/theme"
)

// Options configures the screen.
type Options struct {
	// Configured lists providers known to have credentials. Nil means
	// unknown, as when talking to a remote server.
	Configured []llm.ProviderName

	// Context bounds generate calls. Defaults to context.Background().
	Context context.Context
}

// PlayScreen drives a quiz.Session from keyboard input.
type PlayScreen struct {
	session *quiz.Session
	gen     quizgen.Generator
	ctx     context.Context
	opts    Options

	form       form
	choice     components.MultiChoice
	spinner    spinner.Model
	resultMenu components.Menu
	result     quiz.Result
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.StatusProvider = (*PlayScreen)(nil)
var _ screen.InputCapturer = (*PlayScreen)(nil)

// New creates a PlayScreen that asks gen for questions.
func New(gen quizgen.Generator, opts Options) *PlayScreen {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	s := &PlayScreen{
		session: quiz.NewSession(),
		gen:     gen,
		ctx:     ctx,
		opts:    opts,
		form:    newForm(opts.Configured),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
	}
	return s
}

// Session exposes the underlying state machine.
func (s *PlayScreen) Session() *quiz.Session {
	return s.session
}

func (s *PlayScreen) Init() tea.Cmd {
	return s.form.Init()
}

func (s *PlayScreen) Title() string {
	switch s.session.Phase() {
	case quiz.PhaseQuiz:
		return "Quiz"
	case quiz.PhaseResult:
		return "Results"
	}
	return "New Quiz"
}

// Status shows the subject and provider once a quiz has been requested.
func (s *PlayScreen) Status() string {
	req := s.session.Request()
	if req.Provider == "" {
		return ""
	}
	return req.Provider.DisplayName()
}

func (s *PlayScreen) CapturingInput() bool {
	return s.session.Phase() == quiz.PhaseInput && !s.session.IsLoading() && s.form.capturingInput()
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	switch s.session.Phase() {
	case quiz.PhaseInput:
		if s.session.IsLoading() {
			return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
		}
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "↑↓", Description: "Adjust"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case quiz.PhaseQuiz:
		next := "Next"
		if s.session.IsLast() {
			next = "Finish"
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Move"},
			{Key: "Enter/A-I", Description: "Choose"},
			{Key: "→", Description: next},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "R", Description: "New quiz"},
		{Key: "Q", Description: "Quit"},
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !s.session.IsLoading() {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case generationDoneMsg:
		return s.handleGenerationDone(msg)

	case submitMsg:
		return s.submit()

	case restartMsg:
		return s.restart()

	case components.OptionChosenMsg:
		_ = s.session.Select(msg.Option)
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.session.Phase() == quiz.PhaseInput && !s.session.IsLoading() {
		return s, s.form.Update(msg)
	}
	return s, nil
}

func (s *PlayScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch s.session.Phase() {
	case quiz.PhaseInput:
		if s.session.IsLoading() {
			return s, nil
		}
		s.form.invalid = ""
		return s, s.form.Update(msg)

	case quiz.PhaseQuiz:
		switch msg.String() {
		case "right", "tab", "n":
			return s.advance()
		case "enter", "space":
			if answer, ok := s.session.CurrentAnswer(); ok && answer == s.choice.Highlighted() {
				return s.advance()
			}
		}
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		return s, cmd

	case quiz.PhaseResult:
		if msg.String() == "r" {
			return s.restart()
		}
		var cmd tea.Cmd
		s.resultMenu, cmd = s.resultMenu.Update(msg)
		return s, cmd
	}
	return s, nil
}

// submit starts generation for the form's request.
func (s *PlayScreen) submit() (screen.Screen, tea.Cmd) {
	req, problem := s.form.request()
	if problem != "" {
		s.form.invalid = problem
		return s, nil
	}
	if err := s.session.BeginGeneration(req); err != nil {
		return s, nil
	}
	return s, tea.Batch(s.spinner.Tick, s.generate(req))
}

func (s *PlayScreen) generate(req quizgen.GenerationRequest) tea.Cmd {
	gen, ctx := s.gen, s.ctx
	return func() tea.Msg {
		questions, err := gen.Generate(ctx, req)
		return generationDoneMsg{Questions: questions, Err: err}
	}
}

func (s *PlayScreen) handleGenerationDone(msg generationDoneMsg) (screen.Screen, tea.Cmd) {
	if err := s.session.CompleteGeneration(msg.Questions, msg.Err); err != nil {
		return s, nil
	}
	if s.session.Phase() == quiz.PhaseQuiz {
		s.loadQuestion()
		return s, nil
	}
	return s, s.form.Init()
}

// loadQuestion resets the option list for the visible question.
func (s *PlayScreen) loadQuestion() {
	q, ok := s.session.Current()
	if !ok {
		return
	}
	chosen := -1
	if answer, ok := s.session.CurrentAnswer(); ok {
		for i, opt := range q.Options {
			if opt == answer {
				chosen = i
				break
			}
		}
	}
	s.choice = components.NewMultiChoice(q.Options, chosen)
}

func (s *PlayScreen) advance() (screen.Screen, tea.Cmd) {
	if !s.session.CanAdvance() {
		return s, nil
	}
	if err := s.session.Advance(); err != nil {
		return s, nil
	}
	if s.session.Phase() == quiz.PhaseResult {
		s.result, _ = s.session.Result()
		s.resultMenu = s.newResultMenu()
		return s, nil
	}
	s.loadQuestion()
	return s, nil
}

func (s *PlayScreen) newResultMenu() components.Menu {
	result := s.result
	return components.NewMenu([]components.MenuItem{
		{Label: "Review answers", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: review.New(result)}
			}
		}},
		{Label: "Start a new quiz", Action: func() tea.Cmd {
			return func() tea.Msg { return restartMsg{} }
		}},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
}

func (s *PlayScreen) restart() (screen.Screen, tea.Cmd) {
	if err := s.session.Restart(); err != nil {
		return s, nil
	}
	s.result = quiz.Result{}
	s.form = newForm(s.opts.Configured)
	return s, s.form.Init()
}
