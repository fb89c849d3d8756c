// Package router keeps the stack of terminal screens. The quiz screen is
// the base; the answer review is pushed over it and popped with Esc.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mcqgen/internal/screen"
)

// PushScreenMsg asks the router to show Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg asks the router to return to the previous screen.
type PopScreenMsg struct{}

type Router struct {
	stack []screen.Screen
}

func New(base screen.Screen) *Router {
	return &Router{stack: []screen.Screen{base}}
}

// Push shows s and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop drops the top screen. The base screen is never popped.
func (r *Router) Pop() {
	if n := len(r.stack); n > 1 {
		r.stack[n-1] = nil
		r.stack = r.stack[:n-1]
	}
}

func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int { return len(r.stack) }

// Update applies navigation messages itself and hands anything else to
// the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		r.Pop()
		return nil
	}

	top := len(r.stack) - 1
	next, cmd := r.stack[top].Update(msg)
	r.stack[top] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
