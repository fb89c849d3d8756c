package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcqgen/internal/quiz"
	"github.com/abhisek/mcqgen/internal/quizgen"
	"github.com/abhisek/mcqgen/internal/ui/components"
	"github.com/abhisek/mcqgen/internal/ui/layout"
	"github.com/abhisek/mcqgen/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	w := layout.ContentWidth(width)

	var body string
	switch s.session.Phase() {
	case quiz.PhaseQuiz:
		body = s.renderQuestion(w)
	case quiz.PhaseResult:
		body = s.renderResult(w)
	default:
		body = s.renderInput(w)
	}

	if banner := s.session.Error(); banner != "" {
		body = theme.Banner.Render(banner) + "\n\n" + body
	}
	return layout.Center(width, "\n"+body)
}

func (s *PlayScreen) renderInput(width int) string {
	f := &s.form
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("AI Quiz Generator"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Generate a multiple-choice quiz on any topic"))
	b.WriteString("\n\n")

	field := func(label string, focused bool, content string) {
		style := theme.Label
		if focused {
			style = theme.Selected
		}
		b.WriteString(style.Render(label))
		b.WriteString("\n")
		b.WriteString(content)
		b.WriteString("\n\n")
	}

	field("Subject", f.focus == fieldSubject, f.subject.View())
	field(fmt.Sprintf("Number of questions (1-%d)", quizgen.MaxCount), f.focus == fieldCount, f.count.View())
	field("Provider", f.focus == fieldProvider, f.providers.View(f.focus == fieldProvider))

	if s.session.IsLoading() {
		b.WriteString(s.spinner.View() + " " + theme.Hint.Render("Generating..."))
	} else {
		b.WriteString(f.submit.View(f.focus == fieldSubmit))
	}

	if f.invalid != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render(f.invalid))
	}

	return theme.Card.Width(width).Render(b.String())
}

func (s *PlayScreen) renderQuestion(width int) string {
	q, ok := s.session.Current()
	if !ok {
		return ""
	}
	inner := width - 6
	total := len(s.session.Questions())

	var b strings.Builder
	b.WriteString(components.QuizProgress(s.session.CurrentIndex(), total, inner))
	b.WriteString("\n\n")
	b.WriteString(components.RenderQuestion(q.Question, inner))
	b.WriteString("\n\n")
	b.WriteString(s.choice.View(inner))
	b.WriteString("\n\n")

	label := "Next Question"
	if s.session.IsLast() {
		label = "Finish Quiz"
	}
	next := components.NewButton(label, nil)
	next.SetEnabled(s.session.CanAdvance(), "Pick an answer")
	b.WriteString(next.View(true))

	return theme.FocusedCard.Width(width).Render(b.String())
}

func (s *PlayScreen) renderResult(width int) string {
	r := s.result
	var b strings.Builder

	b.WriteString(theme.Title.Width(width - 6).Render("Quiz Complete!"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width-6, lipgloss.Center,
		theme.ScoreStyle(r.Percentage).Render(fmt.Sprintf("%d%%", r.Percentage))))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width - 6).Render(
		fmt.Sprintf("You scored %d out of %d", r.Score, r.Total)))
	b.WriteString("\n\n")
	b.WriteString(components.ProgressBar("", float64(r.Percentage)/100, true, width-6))
	b.WriteString("\n\n")
	b.WriteString(s.resultMenu.View(true))

	return theme.Card.Width(width).Render(b.String())
}
