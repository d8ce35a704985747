package http

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/mindengage-quiz/internal/ledger"
)

type API struct {
	Catalog Catalog
	Ledger  *ledger.Ledger
	Submit  SubmitOptions
	Events  EventLister // optional; /events is mounted only when set
}

// Routes mounts the quiz wire protocol on r.
func (a *API) Routes(r chi.Router) {
	r.Get("/quiz-titles", QuizTitlesHandler(a.Catalog))
	r.Get("/quizzes/{id}", GetQuizHandler(a.Catalog))
	r.Post("/quizzes/{id}/evaluate", EvaluateQuizHandler(a.Catalog))
	r.Get("/check-quiz/{id}", CheckQuizHandler(a.Ledger))
	r.Post("/submit-quiz/{id}", SubmitQuizHandler(a.Ledger, a.Submit))
	r.Get("/total", TotalHandler(a.Ledger, a.Catalog))
	if a.Events != nil {
		r.Get("/events", ListEventsHandler(a.Events))
	}
}

// MountStatic serves dir at the router root. It reports false and mounts
// nothing when dir does not exist.
func MountStatic(r chi.Router, dir string) bool {
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return false
	}
	r.Handle("/*", http.FileServer(http.Dir(dir)))
	return true
}
