package components

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestSplitFences(t *testing.T) {
	text := "What does this print?\n```go\nfmt.Println(1 + 1)\n```\nPick one."

	segs := SplitFences(text)
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d: %+v", len(segs), segs)
	}
	if segs[0].Code || segs[0].Text != "What does this print?" {
		t.Errorf("unexpected first segment: %+v", segs[0])
	}
	if !segs[1].Code || segs[1].Lang != "go" || segs[1].Text != "fmt.Println(1 + 1)" {
		t.Errorf("unexpected code segment: %+v", segs[1])
	}
	if segs[2].Code || segs[2].Text != "Pick one." {
		t.Errorf("unexpected last segment: %+v", segs[2])
	}
}

func TestSplitFences_Unterminated(t *testing.T) {
	segs := SplitFences("Look:\n```\nx := 1")
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if !segs[1].Code || segs[1].Text != "x := 1" {
		t.Errorf("expected trailing code block, got %+v", segs[1])
	}
}

func TestSplitFences_SingleLineFence(t *testing.T) {
	segs := SplitFences("```python print(1)```\nWhat is printed?")
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d: %+v", len(segs), segs)
	}
	if !segs[0].Code || segs[0].Lang != "python" || segs[0].Text != "print(1)" {
		t.Errorf("unexpected code segment: %+v", segs[0])
	}
	if segs[1].Code || segs[1].Text != "What is printed?" {
		t.Errorf("expected the question to stay prose, got %+v", segs[1])
	}
}

func TestSplitFences_InlineFenceInProse(t *testing.T) {
	segs := SplitFences("Given ```len(\"go\")``` what is the result?")
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d: %+v", len(segs), segs)
	}
	if segs[0].Text != "Given" || segs[0].Code {
		t.Errorf("unexpected leading prose: %+v", segs[0])
	}
	if !segs[1].Code || segs[1].Lang != "" || segs[1].Text != `len("go")` {
		t.Errorf("unexpected code segment: %+v", segs[1])
	}
	if segs[2].Text != "what is the result?" || segs[2].Code {
		t.Errorf("unexpected trailing prose: %+v", segs[2])
	}
}

func TestSplitFences_CloseAfterCode(t *testing.T) {
	segs := SplitFences("```\nx := 1```\nThen?")
	if len(segs) != 2 || !segs[0].Code || segs[0].Text != "x := 1" || segs[1].Text != "Then?" {
		t.Fatalf("unexpected segments: %+v", segs)
	}
}

func TestSplitFences_PlainText(t *testing.T) {
	segs := SplitFences("Who was the first Roman emperor?")
	if len(segs) != 1 || segs[0].Code {
		t.Fatalf("expected one prose segment, got %+v", segs)
	}
}

func TestRenderQuestion_KeepsCode(t *testing.T) {
	out := RenderQuestion("Output?\n```\nprint('hi')\n```", 40)
	if !strings.Contains(out, "print('hi')") {
		t.Errorf("expected code in output, got %q", out)
	}
	if strings.Contains(out, "```") {
		t.Errorf("expected fences to be stripped, got %q", out)
	}
}

func TestMultiChoice_NavigateAndChoose(t *testing.T) {
	m := NewMultiChoice([]string{"Augustus", "Nero", "Caligula"}, -1)
	if m.Chosen != -1 || m.Cursor != 0 {
		t.Fatalf("unexpected initial state: %+v", m)
	}

	m, _ = m.Update(specialKey(tea.KeyDown))
	m, _ = m.Update(specialKey(tea.KeyDown))
	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Cursor != 2 {
		t.Fatalf("expected cursor clamped at 2, got %d", m.Cursor)
	}

	m, cmd := m.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	msg, ok := cmd().(OptionChosenMsg)
	if !ok {
		t.Fatalf("expected OptionChosenMsg, got %T", cmd())
	}
	if msg.Option != "Caligula" || msg.Index != 2 || m.Chosen != 2 {
		t.Errorf("unexpected choice: %+v chosen=%d", msg, m.Chosen)
	}
}

func TestMultiChoice_LetterAndDigitKeys(t *testing.T) {
	m := NewMultiChoice([]string{"476", "410", "1453", "27"}, -1)

	m, cmd := m.Update(keyPress('b'))
	if cmd == nil {
		t.Fatal("expected a command for letter key")
	}
	if got := cmd().(OptionChosenMsg).Option; got != "410" {
		t.Errorf("expected 410, got %q", got)
	}

	m, cmd = m.Update(keyPress('3'))
	if got := cmd().(OptionChosenMsg).Option; got != "1453" {
		t.Errorf("expected 1453, got %q", got)
	}

	_, cmd = m.Update(keyPress('z'))
	if cmd != nil {
		t.Error("expected no command for out-of-range letter")
	}
}

func TestMultiChoice_ShortcutsStopBeforeNavigationKeys(t *testing.T) {
	opts := make([]string, 12)
	for i := range opts {
		opts[i] = fmt.Sprintf("opt%d", i)
	}
	m := NewMultiChoice(opts, -1)

	m, cmd := m.Update(keyPress('i'))
	if cmd == nil || cmd().(OptionChosenMsg).Index != 8 {
		t.Fatal("expected i to pick the ninth option")
	}

	for _, r := range []rune{'n', 'z', '0'} {
		var c tea.Cmd
		m, c = m.Update(keyPress(r))
		if c != nil {
			t.Errorf("expected no command for %q", r)
		}
	}

	m, cmd = m.Update(keyPress('j'))
	if cmd != nil || m.Cursor != 9 {
		t.Errorf("expected j to move the cursor to 9, got cursor %d", m.Cursor)
	}
	m, _ = m.Update(keyPress('k'))
	if m.Cursor != 8 || m.Chosen != 8 {
		t.Errorf("expected k to move back without changing the answer, got %+v", m)
	}
}

func TestMultiChoice_StartsOnChosen(t *testing.T) {
	m := NewMultiChoice([]string{"a", "b"}, 1)
	if m.Cursor != 1 || m.Chosen != 1 {
		t.Errorf("expected cursor on chosen option, got %+v", m)
	}
	if !strings.Contains(m.View(40), "(•)") {
		t.Error("expected chosen marker in view")
	}
}

func TestTextInput_NumericOnly(t *testing.T) {
	ti := NewTextInput("5", true, 2)
	ti.Focus()

	ti, _ = ti.Update(keyPress('x'))
	ti, _ = ti.Update(keyPress('1'))
	ti, _ = ti.Update(keyPress('2'))

	n, err := ti.NumericValue()
	if err != nil || n != 12 {
		t.Errorf("expected 12, got %d (%v)", n, err)
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a", Disabled: true}, {Label: "b"}, {Label: "c", Disabled: true}, {Label: "d"}})
	if m.Selected != 1 {
		t.Fatalf("expected first enabled item, got %d", m.Selected)
	}
	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("expected to skip disabled item, got %d", m.Selected)
	}
}

func TestQuizProgress(t *testing.T) {
	if out := QuizProgress(1, 4, 60); !strings.Contains(out, "Question 2 of 4") {
		t.Errorf("missing label in %q", out)
	}
	if out := ProgressBar("", 1.7, true, 30); !strings.Contains(out, "100%") {
		t.Errorf("fraction above 1 should clamp to 100%%, got %q", out)
	}
	if out := QuizProgress(0, 0, 30); strings.Contains(out, "Question") {
		t.Errorf("empty quiz should render a bare bar, got %q", out)
	}
}

func TestButton_DisabledIgnoresInput(t *testing.T) {
	pressed := false
	b := NewButton("Generate Quiz", func() tea.Cmd {
		pressed = true
		return nil
	})
	b.SetEnabled(false, "Enter a subject")

	b, _ = b.Update(specialKey(tea.KeyEnter))
	if pressed {
		t.Fatal("expected disabled button to ignore Enter")
	}
	if out := b.View(true); !strings.Contains(out, "Enter a subject") || strings.Contains(out, "▸") {
		t.Errorf("expected reason and no cursor on disabled button, got %q", out)
	}

	b.SetEnabled(true, "ignored")
	b.Update(specialKey(tea.KeyEnter))
	if !pressed {
		t.Fatal("expected enabled button to press on Enter")
	}
	if out := b.View(true); strings.Contains(out, "ignored") || !strings.Contains(out, "▸ Generate Quiz") {
		t.Errorf("unexpected enabled view %q", out)
	}
}

func TestButton_DefaultPressMessage(t *testing.T) {
	b := NewButton("Next Question", nil)
	_, cmd := b.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command on space")
	}
	if msg, ok := cmd().(ButtonPressedMsg); !ok || msg.Label != "Next Question" {
		t.Errorf("expected ButtonPressedMsg, got %#v", cmd())
	}
}
