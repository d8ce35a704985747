package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/mind-engage/mindengage-quiz/internal/api/http"
	"github.com/mind-engage/mindengage-quiz/internal/db"
	"github.com/mind-engage/mindengage-quiz/internal/eventlog"
	"github.com/mind-engage/mindengage-quiz/internal/ledger"
)

func TestEvents_ListsSubmissionsNewestFirst(t *testing.T) {
	dbh, err := db.Open(context.Background(), db.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbh.Close() })
	repo := eventlog.NewRepo(dbh, "test-site")

	r := chi.NewRouter()
	(&api.API{
		Catalog: twoQuizCatalog(t),
		Ledger:  ledger.New().WithObserver(repo),
		Events:  repo,
	}).Routes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	require.Equal(t, 200, doJSON(t, "POST", srv.URL+"/submit-quiz/1", `{"completionPercentage":50}`, nil))
	require.Equal(t, 200, doJSON(t, "POST", srv.URL+"/submit-quiz/1", `{"completionPercentage":75}`, nil))
	require.Equal(t, 200, doJSON(t, "POST", srv.URL+"/submit-quiz/2", `{"completionPercentage":100}`, nil))

	var events []eventlog.Event
	require.Equal(t, 200, doJSON(t, "GET", srv.URL+"/events?limit=2", "", &events))
	require.Len(t, events, 2)
	assert.Equal(t, "2", events[0].Key)
	assert.Equal(t, "1", events[1].Key)
	assert.Equal(t, eventlog.TypeQuizSubmitted, events[1].Type)
	assert.Equal(t, "test-site", events[1].SiteID)

	var sub eventlog.Submission
	require.NoError(t, json.Unmarshal([]byte(events[1].DataJSON), &sub))
	assert.Equal(t, 75.0, sub.Score)
	assert.Equal(t, 50.0, sub.Previous)
	assert.True(t, sub.Replaced)

	var e map[string]string
	assert.Equal(t, http.StatusBadRequest, doJSON(t, "GET", srv.URL+"/events?limit=0", "", &e))
	assert.Equal(t, http.StatusBadRequest, doJSON(t, "GET", srv.URL+"/events?limit=abc", "", &e))
}

func TestEvents_NotMountedWithoutLog(t *testing.T) {
	srv, _ := newServer(t, twoQuizCatalog(t), api.SubmitOptions{})
	resp, err := http.Get(srv.URL + "/events")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
