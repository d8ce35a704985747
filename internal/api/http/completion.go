package http

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/mind-engage/mindengage-quiz/internal/ledger"
)

type checkResp struct {
	Completed bool    `json:"completed"`
	Score     float64 `json:"score"`
}

// GET /check-quiz/{id}
func CheckQuizHandler(l *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		score, completed := l.Lookup(chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, checkResp{Completed: completed, Score: score})
	}
}

type submitReq struct {
	CompletionPercentage *float64 `json:"completionPercentage"`
}

type submitResp struct {
	Message string `json:"message"`
}

type SubmitOptions struct {
	// StrictScores rejects percentages outside [0,100] with 422.
	StrictScores bool
}

// POST /submit-quiz/{id}
//
// The id is not checked against the catalog and, unless StrictScores is set,
// neither is the range of the score.
func SubmitQuizHandler(l *ledger.Ledger, opts SubmitOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req submitReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}
		if req.CompletionPercentage == nil {
			writeError(w, http.StatusBadRequest, "completionPercentage required")
			return
		}
		score := *req.CompletionPercentage
		if opts.StrictScores && (score < 0 || score > 100) {
			writeError(w, http.StatusUnprocessableEntity, "completionPercentage must be within [0,100]")
			return
		}
		l.Record(id, score)
		writeJSON(w, http.StatusOK, submitResp{
			Message: fmt.Sprintf("Quiz %s successfully completed with a score of %s%%", id, formatScore(score)),
		})
	}
}

// formatScore renders score the way the browser client prints a number:
// shortest round-trip digits, plain decimal for 1e-6 <= |score| < 1e21 and
// exponent form ("1e+21", "1.5e-7") outside that range.
func formatScore(score float64) string {
	if score == 0 {
		return "0"
	}
	if a := math.Abs(score); a >= 1e-6 && a < 1e21 {
		return strconv.FormatFloat(score, 'f', -1, 64)
	}
	s := strconv.FormatFloat(score, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + digits
}

type totalResp struct {
	Total float64 `json:"total"`
}

// GET /total
func TotalHandler(l *ledger.Ledger, cat Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, totalResp{Total: l.Aggregate(cat.Len())})
	}
}
