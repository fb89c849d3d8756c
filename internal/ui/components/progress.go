package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcqgen/internal/ui/theme"
)

// ProgressBar renders label followed by a bar of the given total width.
// fraction is clamped to [0, 1].
func ProgressBar(label string, fraction float64, showPercent bool, width int) string {
	fraction = max(0, min(fraction, 1))

	var head, tail string
	if label != "" {
		head = theme.Body.Render(label) + "  "
	}
	if showPercent {
		tail = theme.Hint.UnsetItalic().Render(fmt.Sprintf(" %3d%%", int(fraction*100+0.5)))
	}

	cells := max(4, width-lipgloss.Width(head)-lipgloss.Width(tail))
	done := int(float64(cells) * fraction)
	return head +
		theme.ProgressFilled.Render(strings.Repeat(" ", done)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", cells-done)) +
		tail
}

// QuizProgress is the "Question i of n" bar for a zero-based index.
func QuizProgress(index, total, width int) string {
	if total <= 0 {
		return ProgressBar("", 0, false, width)
	}
	return ProgressBar(fmt.Sprintf("Question %d of %d", index+1, total),
		float64(index+1)/float64(total), false, width)
}
