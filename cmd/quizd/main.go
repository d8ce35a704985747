package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mind-engage/mindengage-quiz/internal/config"
	"github.com/mind-engage/mindengage-quiz/internal/quiz"
	"github.com/mind-engage/mindengage-quiz/internal/storage"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Catalog ---
	src, err := storage.NewFSSource(cfg.QuizDir)
	if err != nil {
		log.Fatalf("quiz dir: %v", err)
	}
	loadCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	cat, err := quiz.LoadCatalog(loadCtx, src, quiz.LoadOptions{Strict: cfg.StrictCatalog})
	cancel()
	if err != nil {
		log.Fatalf("catalog load failed: %v", err)
	}
	if skipped := cat.Skipped(); skipped != nil {
		log.Printf("catalog: loaded %d quizzes, some entries were skipped: %v", cat.Len(), skipped)
	} else {
		log.Printf("catalog: loaded %d quizzes from %s", cat.Len(), src.Base())
	}

	// --- Ledger (+ optional audit trail) ---
	l, events, dbh, err := openLedger(ctx, cfg)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	if dbh != nil {
		defer dbh.Close()
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           newRouter(cfg, cat, l, events),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()

	log.Printf("quiz server listening on %s (strict_scores=%t, event_log=%t)", cfg.HTTPAddr, cfg.StrictScores, cfg.EnableEventLog)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
