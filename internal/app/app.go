// Package app is the root Bubble Tea model of the terminal quiz client.
package app

import (
	"context"
	"fmt"
	"io"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcqgen/internal/quizgen"
	"github.com/abhisek/mcqgen/internal/router"
	"github.com/abhisek/mcqgen/internal/screen"
	"github.com/abhisek/mcqgen/internal/screens/play"
	"github.com/abhisek/mcqgen/internal/ui/layout"
)

type Options struct {
	play.Options

	// Output replaces the terminal, for tests.
	Output io.Writer
}

// keyMap holds the bindings handled above the screens.
type keyMap struct {
	Quit     key.Binding
	Back     key.Binding
	SoftQuit key.Binding
}

var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "Quit")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Back")),
	SoftQuit: key.NewBinding(key.WithKeys("q")),
}

func hint(b key.Binding) layout.KeyHint {
	h := b.Help()
	return layout.KeyHint{Key: h.Key, Description: h.Desc}
}

type AppModel struct {
	router        *router.Router
	width, height int
}

// NewAppModel starts on the quiz screen.
func NewAppModel(gen quizgen.Generator, opts play.Options) AppModel {
	return AppModel{router: router.New(play.New(gen, opts))}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func pop() tea.Msg { return router.PopScreenMsg{} }

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyPressMsg:
		nested := m.router.Depth() > 1
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Back) && nested:
			return m, pop
		case key.Matches(msg, keys.SoftQuit) && !m.typing():
			if nested {
				return m, pop
			}
			return m, tea.Quit
		}
	}

	return m, m.router.Update(msg)
}

// typing reports whether the active screen has a text field focused, in
// which case "q" is a letter and not a shortcut.
func (m AppModel) typing() bool {
	c, ok := m.router.Active().(screen.InputCapturer)
	return ok && c.CapturingInput()
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m AppModel) render() string {
	switch {
	case m.width == 0 || m.height == 0:
		return ""
	case layout.IsTooSmall(m.width, m.height):
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var status string
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}
	header := layout.RenderHeader(active.Title(), status, m.width)

	var hints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		hints = kp.KeyHints()
	} else if m.router.Depth() > 1 {
		hints = []layout.KeyHint{hint(keys.Back), hint(keys.Quit)}
	}
	footer := layout.RenderFooter(hints, m.width)

	room := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(footer))
	return layout.RenderFrame(header, m.router.View(m.width, room), footer, m.width, m.height)
}

// Run blocks until the user quits or ctx ends.
func Run(ctx context.Context, gen quizgen.Generator, opts Options) error {
	if opts.Context == nil {
		opts.Context = ctx
	}

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}

	if _, err := tea.NewProgram(NewAppModel(gen, opts.Options), progOpts...).Run(); err != nil {
		return fmt.Errorf("run terminal client: %w", err)
	}
	return nil
}
