package main

import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mind-engage/mindengage-quiz/internal/client"
	"github.com/mind-engage/mindengage-quiz/internal/session"
)

func main() {
	_ = godotenv.Load()

	server := flag.String("server", getenvOr("QUIZ_SERVER", "http://localhost:3000"), "quiz server base URL")
	quizID := flag.Int("quiz", 0, "quiz id to open first (0: ask)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := client.New(*server)
	r := &runner{
		in:   bufio.NewScanner(os.Stdin),
		out:  os.Stdout,
		api:  c,
		sess: session.New(c),
	}
	if err := r.run(ctx, *quizID); err != nil {
		log.Fatal(err)
	}
}

func getenvOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
