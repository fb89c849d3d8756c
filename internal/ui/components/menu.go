package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mcqgen/internal/ui/theme"
)

// MenuItem is one row of a Menu. Items without an Action are plain
// choices; the caller reads Menu.Selected.
type MenuItem struct {
	Label    string
	Hint     string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list used for the provider picker and the
// end-of-quiz actions.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu selects the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.step(1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// step moves the selection by dir (±1) to the next enabled item, staying
// put at either end.
func (m *Menu) step(dir int) {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		m.step(-1)
	case "down", "j":
		m.step(1)
	case "enter":
		if it, ok := m.SelectedItem(); ok && !it.Disabled && it.Action != nil {
			return m, it.Action()
		}
	}
	return m, nil
}

// View draws the cursor only when focused; an unfocused menu marks the
// selection with a bullet so the choice stays visible.
func (m Menu) View(focused bool) string {
	var b strings.Builder
	for i, it := range m.Items {
		if i > 0 {
			b.WriteByte('\n')
		}
		if it.Disabled {
			b.WriteString(theme.Hint.Render("    " + it.Label))
			continue
		}

		label := it.Label
		if it.Hint != "" {
			label += theme.Hint.Render("  " + it.Hint)
		}
		switch {
		case i != m.Selected:
			b.WriteString(theme.Unselected.Render("    " + label))
		case focused:
			b.WriteString(theme.Selected.Render("  ▸ " + label))
		default:
			b.WriteString(theme.Body.Render("  • " + label))
		}
	}
	return b.String()
}

func (m Menu) SelectedItem() (MenuItem, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return MenuItem{}, false
	}
	return m.Items[m.Selected], true
}
