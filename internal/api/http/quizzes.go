package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/mind-engage/mindengage-quiz/internal/grading"
	"github.com/mind-engage/mindengage-quiz/internal/quiz"
)

// Catalog is the read side of the quiz catalog the handlers need.
type Catalog interface {
	Titles() []quiz.Title
	Get(id int) (quiz.Quiz, error)
	Len() int
}

const msgQuizNotFound = "Quiz not found"

// GET /quiz-titles
func QuizTitlesHandler(cat Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, cat.Titles())
	}
}

// GET /quizzes/{id}
func GetQuizHandler(cat Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, ok := lookupQuiz(w, r, cat)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, q)
	}
}

type evaluateReq struct {
	Answers map[string]string `json:"answers"` // question id -> option value
}

type evaluateResp struct {
	QuizID  int          `json:"quizId"`
	Display string       `json:"display"`
	Band    grading.Band `json:"band"`
	Summary string       `json:"summary"`
	grading.Evaluation
}

// POST /quizzes/{id}/evaluate
//
// Runs the grading engine server-side. Nothing is recorded in the ledger.
func EvaluateQuizHandler(cat Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, ok := lookupQuiz(w, r, cat)
		if !ok {
			return
		}
		var req evaluateReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}
		sub := make(quiz.Submission, len(req.Answers))
		for k, v := range req.Answers {
			qid, err := strconv.Atoi(strings.TrimSpace(k))
			if err != nil {
				writeError(w, http.StatusBadRequest, "answers: question id "+strconv.Quote(k)+" is not an integer")
				return
			}
			sub[qid] = v
		}
		ev, err := grading.Evaluate(q, sub)
		if errors.Is(err, grading.ErrDegenerateQuiz) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		band := grading.BandFor(ev.Percentage)
		writeJSON(w, http.StatusOK, evaluateResp{
			QuizID:     q.ID,
			Display:    ev.Display(),
			Band:       band,
			Summary:    band.Summary(ev.Percentage),
			Evaluation: ev,
		})
	}
}

func lookupQuiz(w http.ResponseWriter, r *http.Request, cat Catalog) (quiz.Quiz, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, msgQuizNotFound)
		return quiz.Quiz{}, false
	}
	q, err := cat.Get(id)
	switch {
	case errors.Is(err, quiz.ErrNotFound):
		writeError(w, http.StatusNotFound, msgQuizNotFound)
		return quiz.Quiz{}, false
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return quiz.Quiz{}, false
	}
	return q, true
}
