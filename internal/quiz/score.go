package quiz

import (
	"math"

	"github.com/abhisek/mcqgen/internal/quizgen"
)

// Result is the outcome of a finished quiz.
type Result struct {
	Score      int
	Total      int
	Percentage int
	Review     []ReviewItem
}

// ReviewItem describes one question in the result view.
type ReviewItem struct {
	Question      string
	YourAnswer    string // "" when skipped
	Skipped       bool
	Correct       bool
	CorrectAnswer string
}

// Score counts answers that equal the correct option exactly. Comparison is
// case-sensitive and untrimmed; a nil answer never matches.
func Score(questions []quizgen.Question, answers []*string) Result {
	res := Result{
		Total:  len(questions),
		Review: make([]ReviewItem, len(questions)),
	}

	for i, q := range questions {
		item := ReviewItem{
			Question:      q.Question,
			CorrectAnswer: q.Answer,
			Skipped:       true,
		}
		if i < len(answers) && answers[i] != nil {
			item.YourAnswer = *answers[i]
			item.Skipped = false
			item.Correct = *answers[i] == q.Answer
		}
		if item.Correct {
			res.Score++
		}
		res.Review[i] = item
	}

	res.Percentage = Percentage(res.Score, res.Total)
	return res
}

// Percentage returns round(100*score/total), rounding halves up. A zero
// total yields 0.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(total)))
}
