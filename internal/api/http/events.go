package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/mind-engage/mindengage-quiz/internal/eventlog"
)

// EventLister is the read side of the submission audit log.
type EventLister interface {
	List(ctx context.Context, limit int) ([]eventlog.Event, error)
}

const maxEventsLimit = 500

// GET /events?limit=50
//
// Newest submission events first. Read-only; nothing here feeds the ledger.
func ListEventsHandler(events EventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := parseIntDefault(r.URL.Query().Get("limit"), 50)
		if limit <= 0 || limit > maxEventsLimit {
			writeError(w, http.StatusBadRequest, "limit must be within [1,"+strconv.Itoa(maxEventsLimit)+"]")
			return
		}
		list, err := events.List(r.Context(), limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if list == nil {
			list = []eventlog.Event{}
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func parseIntDefault(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}
