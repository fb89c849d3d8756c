package components

import (
	"strings"

	"github.com/abhisek/mcqgen/internal/ui/theme"
)

// Segment is a run of question text, either prose or a fenced code block.
type Segment struct {
	Code bool
	Lang string
	Text string
}

// SplitFences splits text on ``` fences. An unterminated fence runs to the
// end of the text. A fence may open and close on one line, with prose on
// either side of it.
func SplitFences(text string) []Segment {
	var (
		segs []Segment
		cur  []string
		code bool
		lang string
	)
	flush := func() {
		body := strings.Join(cur, "\n")
		if code || strings.TrimSpace(body) != "" {
			if !code {
				body = strings.Trim(body, "\n")
			}
			segs = append(segs, Segment{Code: code, Lang: lang, Text: body})
		}
		cur = nil
	}

	for _, line := range strings.Split(text, "\n") {
		rest := line
		for {
			i := strings.Index(rest, fence)
			if i < 0 {
				if rest == line {
					cur = append(cur, line)
				} else if strings.TrimSpace(rest) != "" {
					cur = append(cur, strings.TrimSpace(rest))
				}
				break
			}
			if pre := strings.TrimRight(rest[:i], " \t"); strings.TrimSpace(pre) != "" {
				cur = append(cur, pre)
			}
			flush()
			rest = rest[i+len(fence):]

			if code {
				code, lang = false, ""
				continue
			}
			j := strings.Index(rest, fence)
			if j < 0 {
				code, lang = true, strings.TrimSpace(rest)
				break
			}
			code = true
			lang, cur = inlineFence(rest[:j])
			flush()
			code, lang = false, ""
			rest = rest[j+len(fence):]
		}
	}
	flush()
	return segs
}

const fence = "```"

// inlineFence splits the body of a one-line fence into its language tag and
// code. The first word is a tag only when it looks like one and code follows.
func inlineFence(body string) (string, []string) {
	body = strings.TrimSpace(body)
	tag, code, ok := strings.Cut(body, " ")
	if !ok || !isLangTag(tag) || strings.TrimSpace(code) == "" {
		return "", []string{body}
	}
	return tag, []string{strings.TrimSpace(code)}
}

func isLangTag(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '+' || r == '#' || r == '-') {
			return false
		}
	}
	return s != ""
}

// RenderQuestion renders question text with prose wrapped to width and
// code blocks kept verbatim on a shaded background.
func RenderQuestion(text string, width int) string {
	segs := SplitFences(text)
	parts := make([]string, 0, len(segs))
	for _, s := range segs {
		if s.Code {
			block := theme.Code.Render(s.Text)
			if s.Lang != "" {
				block = theme.Hint.Render(s.Lang) + "\n" + block
			}
			parts = append(parts, block)
			continue
		}
		parts = append(parts, theme.Body.Bold(true).Width(width).Render(s.Text))
	}
	return strings.Join(parts, "\n\n")
}
