package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcqgen/internal/ui/theme"
)

// ButtonPressedMsg is sent when a button without an OnPress is pressed.
type ButtonPressedMsg struct {
	Label string
}

// Button is a form action. While Disabled it ignores input and shows Reason
// beside its label.
type Button struct {
	Label    string
	Disabled bool
	Reason   string
	OnPress  func() tea.Cmd
}

func NewButton(label string, onPress func() tea.Cmd) Button {
	return Button{Label: label, OnPress: onPress}
}

// SetEnabled enables the button, or disables it with reason.
func (b *Button) SetEnabled(enabled bool, reason string) {
	b.Disabled = !enabled
	b.Reason = ""
	if !enabled {
		b.Reason = reason
	}
}

// Update presses the button on Enter or Space.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || b.Disabled {
		return b, nil
	}
	switch kmsg.String() {
	case "enter", "space":
		if b.OnPress != nil {
			return b, b.OnPress()
		}
		label := b.Label
		return b, func() tea.Msg { return ButtonPressedMsg{Label: label} }
	}
	return b, nil
}

func (b Button) View(focused bool) string {
	switch {
	case b.Disabled:
		out := theme.ButtonInactive.Render(b.Label)
		if b.Reason == "" {
			return out
		}
		return lipgloss.JoinHorizontal(lipgloss.Center, out, "  "+theme.Hint.Render(b.Reason))
	case focused:
		return theme.ButtonActive.Render("▸ " + b.Label)
	default:
		return theme.ButtonInactive.Foreground(theme.Text).Render(b.Label)
	}
}
