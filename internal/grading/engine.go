package grading

import (
	"errors"
	"strconv"

	"github.com/mind-engage/mindengage-quiz/internal/quiz"
)

// ErrDegenerateQuiz is returned for a quiz without questions; its
// percentage is undefined.
var ErrDegenerateQuiz = errors.New("quiz has no questions")

// Result is the outcome for a single question.
type Result struct {
	QuestionID  int    `json:"questionId"`
	Answered    bool   `json:"answered"`
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation,omitempty"` // set when not correct
}

type Evaluation struct {
	Results    []Result `json:"results"`
	Correct    int      `json:"correct"`
	Total      int      `json:"total"`
	Percentage float64  `json:"percentage"` // unrounded; this is what the ledger stores
}

// Evaluate grades a submission against the quiz's answer key. Questions are
// visited in quiz order; a missing answer counts as incorrect. Comparison is
// exact string equality against CorrectAnswer, so option order is irrelevant.
func Evaluate(q quiz.Quiz, s quiz.Submission) (Evaluation, error) {
	if len(q.Questions) == 0 {
		return Evaluation{}, ErrDegenerateQuiz
	}
	ev := Evaluation{
		Results: make([]Result, 0, len(q.Questions)),
		Total:   len(q.Questions),
	}
	for _, qq := range q.Questions {
		res := Result{QuestionID: qq.ID}
		if v, ok := s[qq.ID]; ok {
			res.Answered = true
			res.Correct = v == qq.CorrectAnswer
		}
		if res.Correct {
			ev.Correct++
		} else {
			res.Explanation = qq.Explanation
		}
		ev.Results = append(ev.Results, res)
	}
	ev.Percentage = float64(ev.Correct) / float64(ev.Total) * 100
	return ev, nil
}

// Display renders the percentage rounded to two decimals, e.g. "75.00".
func (e Evaluation) Display() string { return FormatPercent(e.Percentage) }

func FormatPercent(p float64) string { return strconv.FormatFloat(p, 'f', 2, 64) }
