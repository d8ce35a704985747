package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/mind-engage/mindengage-quiz/internal/api/http"
	"github.com/mind-engage/mindengage-quiz/internal/config"
	"github.com/mind-engage/mindengage-quiz/internal/db"
	"github.com/mind-engage/mindengage-quiz/internal/eventlog"
	"github.com/mind-engage/mindengage-quiz/internal/ledger"
)

// openLedger builds the ledger and, when enabled, the audit log observing
// it. The returned *sql.DB is nil when the event log is off.
func openLedger(ctx context.Context, cfg config.Config) (*ledger.Ledger, *eventlog.Repo, *sql.DB, error) {
	l := ledger.New()
	if !cfg.EnableEventLog {
		return l, nil, nil, nil
	}
	dbCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	dbh, err := db.Open(dbCtx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		return nil, nil, nil, err
	}
	repo := eventlog.NewRepo(dbh, cfg.SiteID)
	l.WithObserver(repo)
	return l, repo, dbh, nil
}

// newRouter assembles middleware, the quiz API, health checks and, last,
// the static file fallback.
func newRouter(cfg config.Config, cat api.Catalog, l *ledger.Ledger, events *eventlog.Repo) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	a := &api.API{
		Catalog: cat,
		Ledger:  l,
		Submit:  api.SubmitOptions{StrictScores: cfg.StrictScores},
	}
	if events != nil {
		a.Events = events
	}
	a.Routes(r)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	if api.MountStatic(r, cfg.PublicDir) {
		log.Printf("serving static assets from %s", cfg.PublicDir)
	}
	return r
}
