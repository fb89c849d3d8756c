package play

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/quizgen"
	"github.com/abhisek/mcqgen/internal/ui/components"
)

// DefaultCount is the question count the form starts with.
const DefaultCount = 5

// formField is the focused element of the input form.
type formField int

const (
	fieldSubject formField = iota
	fieldCount
	fieldProvider
	fieldSubmit
	numFields
)

// submitMsg is emitted when the form is submitted.
type submitMsg struct{}

// form collects subject, count and provider.
type form struct {
	subject   components.TextInput
	count     components.TextInput
	providers components.Menu
	submit    components.Button
	focus     formField
	invalid   string
}

// newForm builds the form. Providers missing from configured get a hint;
// configured == nil means availability is unknown.
func newForm(configured []llm.ProviderName) form {
	subject := components.NewTextInput("e.g. Advanced Calculus, History of Rome...", false, 120)
	count := components.NewTextInput(strconv.Itoa(DefaultCount), true, 2)
	count.SetValue(strconv.Itoa(DefaultCount))

	var items []components.MenuItem
	for _, p := range llm.AllProviders() {
		item := components.MenuItem{Label: p.DisplayName()}
		if configured != nil && !containsProvider(configured, p) {
			item.Hint = "no API key"
		}
		items = append(items, item)
	}

	f := form{
		subject:   subject,
		count:     count,
		providers: components.NewMenu(items),
		submit: components.NewButton("Generate Quiz", func() tea.Cmd {
			return func() tea.Msg { return submitMsg{} }
		}),
	}
	f.syncSubmit()
	return f
}

func containsProvider(list []llm.ProviderName, p llm.ProviderName) bool {
	for _, c := range list {
		if c == p {
			return true
		}
	}
	return false
}

// Init focuses the subject field.
func (f *form) Init() tea.Cmd {
	return f.setFocus(fieldSubject)
}

func (f *form) setFocus(field formField) tea.Cmd {
	f.focus = field
	f.subject.Blur()
	f.count.Blur()
	switch field {
	case fieldSubject:
		return f.subject.Focus()
	case fieldCount:
		return f.count.Focus()
	}
	return nil
}

// capturingInput reports whether a text field has focus.
func (f *form) capturingInput() bool {
	return f.focus == fieldSubject || f.focus == fieldCount
}

// Update routes keys to the focused field. Tab and Shift+Tab move focus;
// Enter on a field moves to the next one.
func (f *form) Update(msg tea.Msg) tea.Cmd {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return f.forward(msg)
	}

	switch kmsg.String() {
	case "tab":
		return f.setFocus((f.focus + 1) % numFields)
	case "shift+tab":
		return f.setFocus((f.focus + numFields - 1) % numFields)
	case "enter":
		if f.focus != fieldSubmit {
			return f.setFocus(f.focus + 1)
		}
	case "up", "down":
		if f.focus == fieldCount {
			f.stepCount(kmsg.String() == "up")
			return nil
		}
	}

	return f.forward(msg)
}

// syncSubmit disables the submit button while the fields are invalid.
func (f *form) syncSubmit() {
	_, problem := f.request()
	f.submit.SetEnabled(problem == "", problem)
}

func (f *form) forward(msg tea.Msg) tea.Cmd {
	defer f.syncSubmit()
	var cmd tea.Cmd
	switch f.focus {
	case fieldSubject:
		f.subject, cmd = f.subject.Update(msg)
	case fieldCount:
		f.count, cmd = f.count.Update(msg)
	case fieldProvider:
		f.providers, cmd = f.providers.Update(msg)
	case fieldSubmit:
		f.submit, cmd = f.submit.Update(msg)
	}
	return cmd
}

func (f *form) stepCount(up bool) {
	n, err := f.count.NumericValue()
	if err != nil {
		n = DefaultCount
	}
	if up {
		n++
	} else {
		n--
	}
	n = max(1, min(n, quizgen.MaxCount))
	f.count.SetValue(strconv.Itoa(n))
	f.syncSubmit()
}

// provider returns the selected provider.
func (f *form) provider() llm.ProviderName {
	all := llm.AllProviders()
	if f.providers.Selected < 0 || f.providers.Selected >= len(all) {
		return all[0]
	}
	return all[f.providers.Selected]
}

// request validates the fields and builds a generation request. problem
// is the message to show next to the form when a field is invalid.
func (f *form) request() (req quizgen.GenerationRequest, problem string) {
	subject := strings.TrimSpace(f.subject.Value())
	if subject == "" {
		return req, "Enter a subject"
	}
	n, err := f.count.NumericValue()
	if err != nil || n < 1 || n > quizgen.MaxCount {
		return req, fmt.Sprintf("Number of questions must be between 1 and %d", quizgen.MaxCount)
	}
	return quizgen.GenerationRequest{
		Subject:  subject,
		Count:    n,
		Provider: f.provider(),
	}, ""
}
