// Package theme holds the colors and styles shared by every screen.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

var (
	Primary = lipgloss.Color("#7C3AED") // violet: focus and titles
	Accent  = lipgloss.Color("#FBBF24") // amber: provider badge
	Info    = lipgloss.Color("#38BDF8") // sky: labels and progress
	Success = lipgloss.Color("#4ADE80")
	Error   = lipgloss.Color("#FB7185")
	Text    = lipgloss.Color("#F1F5F9")
	TextDim = lipgloss.Color("#8B95A7")
	Border  = lipgloss.Color("#3F4A5C")
	codeBg  = lipgloss.Color("#0F172A")
)

func fg(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func box(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(c)
}

var (
	Title    = fg(Primary).Bold(true).Align(lipgloss.Center)
	Subtitle = fg(TextDim).Align(lipgloss.Center)
	Body     = fg(Text)
	Hint     = fg(TextDim).Italic(true)
	Label    = fg(Info).Bold(true)

	// Code is applied to each line of a fenced block in question text.
	Code = fg(Text).Background(codeBg).Padding(0, 1)
)

var (
	Card        = box(Border).Padding(1, 2)
	FocusedCard = box(Primary).Padding(1, 2)

	// Banner frames generation failures on the form screen.
	Banner = box(Error).Foreground(Error).Padding(0, 2)
)

// Option and answer states.
var (
	Selected   = fg(Primary).Bold(true)
	Unselected = fg(Text)
	Correct    = fg(Success).Bold(true)
	Incorrect  = fg(Error).Bold(true)
)

var (
	ProgressFilled = lipgloss.NewStyle().Background(Info)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)

	ButtonActive   = lipgloss.NewStyle().Background(Primary).Foreground(Text).Bold(true).Padding(0, 2)
	ButtonInactive = box(Border).Foreground(TextDim).Padding(0, 2)
)

// ScoreStyle colors a percentage: green from 80, amber from 50, red below.
func ScoreStyle(percentage int) lipgloss.Style {
	switch {
	case percentage >= 80:
		return Correct
	case percentage >= 50:
		return fg(Accent).Bold(true)
	}
	return Incorrect
}
