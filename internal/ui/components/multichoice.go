package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mcqgen/internal/ui/theme"
)

// OptionChosenMsg is emitted when the user picks an option.
type OptionChosenMsg struct {
	Index  int
	Option string
}

// MultiChoice is a vertical option list with a cursor. Chosen marks the
// option recorded as the answer, if any.
type MultiChoice struct {
	Options []string
	Cursor  int
	Chosen  int
}

// NewMultiChoice creates an option list. chosen is -1 when nothing has been
// picked yet; the cursor starts on the chosen option.
func NewMultiChoice(options []string, chosen int) MultiChoice {
	cursor := 0
	if chosen >= 0 && chosen < len(options) {
		cursor = chosen
	} else {
		chosen = -1
	}
	return MultiChoice{Options: options, Cursor: cursor, Chosen: chosen}
}

// OptionLabel returns the letter shown next to option i.
func OptionLabel(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("%d", i+1)
}

// Update moves the cursor and picks options. Enter or space picks the
// option under the cursor. The first nine options can also be picked by
// letter (a-i) or digit (1-9).
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Options) == 0 {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
		return m, nil
	case "enter", "space":
		return m.choose(m.Cursor)
	default:
		if idx, ok := m.indexForKey(key); ok {
			m.Cursor = idx
			return m.choose(idx)
		}
	}
	return m, nil
}

func (m MultiChoice) choose(idx int) (MultiChoice, tea.Cmd) {
	m.Chosen = idx
	opt := m.Options[idx]
	return m, func() tea.Msg { return OptionChosenMsg{Index: idx, Option: opt} }
}

// shortcutCount is how many options have a letter or digit shortcut. It
// stops at i so that j, k and n stay free for navigation.
const shortcutCount = 9

// indexForKey maps "a".."i" and "1".."9" to option indexes.
func (m MultiChoice) indexForKey(key string) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	c := key[0]
	var idx int
	switch {
	case c >= 'a' && c < 'a'+shortcutCount:
		idx = int(c - 'a')
	case c >= 'A' && c < 'A'+shortcutCount:
		idx = int(c - 'A')
	case c >= '1' && c < '1'+shortcutCount:
		idx = int(c - '1')
	default:
		return 0, false
	}
	if idx >= len(m.Options) {
		return 0, false
	}
	return idx, true
}

// View renders the option list.
func (m MultiChoice) View(width int) string {
	var b strings.Builder
	for i, opt := range m.Options {
		marker := "( )"
		if i == m.Chosen {
			marker = "(•)"
		}
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s %s) %s", prefix, marker, OptionLabel(i), opt)

		style := theme.Unselected
		switch {
		case i == m.Chosen:
			style = theme.Correct
		case i == m.Cursor:
			style = theme.Selected
		}
		b.WriteString(style.Width(width).Render(line))
		if i < len(m.Options)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Highlighted returns the option under the cursor.
func (m MultiChoice) Highlighted() string {
	if m.Cursor < 0 || m.Cursor >= len(m.Options) {
		return ""
	}
	return m.Options[m.Cursor]
}
