package play

import "github.com/abhisek/mcqgen/internal/quizgen"

// generationDoneMsg carries the outcome of a generate call back into the
// update loop.
type generationDoneMsg struct {
	Questions []quizgen.Question
	Err       error
}

// restartMsg is emitted by the "Start a new quiz" menu item.
type restartMsg struct{}
