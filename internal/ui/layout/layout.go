// Package layout draws the frame around the active screen.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcqgen/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 20

	maxColumn = 90
	appName   = "MCQ Generator"
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentWidth is the width of the main column: the terminal minus a
// margin, capped so questions stay readable on wide screens.
func ContentWidth(width int) int {
	return max(0, min(width-4, maxColumn))
}

func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small!\n\nResize to at least %d x %d\n(current %d x %d)",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Body.Render(msg))
}

var bar = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(theme.Border)

// RenderHeader splits the bar into three columns: app name, title and
// status (the provider badge).
func RenderHeader(title, status string, width int) string {
	inner := max(0, width-4)
	side := inner / 3
	col := func(w int, align lipgloss.Position) lipgloss.Style {
		return lipgloss.NewStyle().Width(w).MaxHeight(1).Align(align)
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top,
		col(side, lipgloss.Left).Foreground(theme.Primary).Bold(true).Render(" "+appName),
		col(inner-2*side, lipgloss.Center).Foreground(theme.Text).Render(title),
		col(side, lipgloss.Right).Foreground(theme.Accent).Render(status),
	)
	return bar.Width(width).Render(line)
}

func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + theme.Hint.UnsetItalic().Render(h.Description)
	}
	return bar.Width(width).Render(" " + strings.Join(parts, "  ·  "))
}

// RenderFrame stacks header, content and footer, giving content whatever
// height is left.
func RenderFrame(header, content, footer string, width, height int) string {
	rest := max(0, height-lipgloss.Height(header)-lipgloss.Height(footer))
	body := lipgloss.NewStyle().Width(width).Height(rest).MaxHeight(rest).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func Center(width int, block string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
