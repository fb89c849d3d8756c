// Package review lists every question of a finished quiz with the user's
// answer and, when it was wrong, the correct one.
package review

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcqgen/internal/quiz"
	"github.com/abhisek/mcqgen/internal/screen"
	"github.com/abhisek/mcqgen/internal/ui/components"
	"github.com/abhisek/mcqgen/internal/ui/layout"
	"github.com/abhisek/mcqgen/internal/ui/theme"
)

// ReviewScreen is a scrollable list of ReviewItems.
type ReviewScreen struct {
	result quiz.Result
	offset int // first visible line
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a ReviewScreen for result.
func New(result quiz.Result) *ReviewScreen {
	return &ReviewScreen{result: result}
}

func (r *ReviewScreen) Init() tea.Cmd { return nil }

func (r *ReviewScreen) Title() string { return "Review" }

func (r *ReviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (r *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return r, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if r.offset > 0 {
			r.offset--
		}
	case "down", "j":
		r.offset++
	case "pgup":
		r.offset = max(0, r.offset-10)
	case "pgdown":
		r.offset += 10
	case "home", "g":
		r.offset = 0
	}
	return r, nil
}

func (r *ReviewScreen) View(width, height int) string {
	w := layout.ContentWidth(width)
	lines := strings.Split(r.render(w), "\n")

	maxOffset := max(0, len(lines)-height)
	if r.offset > maxOffset {
		r.offset = maxOffset
	}
	end := min(len(lines), r.offset+height)
	return layout.Center(width, strings.Join(lines[r.offset:end], "\n"))
}

// render draws the full review, unclipped.
func (r *ReviewScreen) render(width int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render(
		fmt.Sprintf("Score: %d / %d (%d%%)", r.result.Score, r.result.Total, r.result.Percentage)))
	b.WriteString("\n\n")

	for i, item := range r.result.Review {
		b.WriteString(renderItem(i, item, width))
		b.WriteString("\n")
	}
	return b.String()
}

func renderItem(i int, item quiz.ReviewItem, width int) string {
	inner := width - 6

	mark := theme.Correct.Render("✓")
	border := theme.Success
	if !item.Correct {
		mark = theme.Incorrect.Render("✗")
		border = theme.Error
	}

	var b strings.Builder
	b.WriteString(mark + " " + theme.Hint.Render(fmt.Sprintf("Question %d", i+1)))
	b.WriteString("\n")
	b.WriteString(components.RenderQuestion(item.Question, inner))
	b.WriteString("\n\n")

	your := item.YourAnswer
	yourStyle := theme.Correct
	if item.Skipped {
		your = "Skipped"
		yourStyle = theme.Hint
	} else if !item.Correct {
		yourStyle = theme.Incorrect
	}
	b.WriteString(theme.Label.Render("Your Answer: ") + yourStyle.Render(your))
	if !item.Correct {
		b.WriteString("\n")
		b.WriteString(theme.Label.Render("Correct:     ") + theme.Correct.Render(item.CorrectAnswer))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 2).
		Width(width).
		Render(b.String())
}
