package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mind-engage/mindengage-quiz/internal/grading"
	"github.com/mind-engage/mindengage-quiz/internal/quiz"
	"github.com/mind-engage/mindengage-quiz/internal/session"
)

type titleLister interface {
	Titles(ctx context.Context) ([]quiz.Title, error)
}

type runner struct {
	in   *bufio.Scanner
	out  io.Writer
	api  titleLister
	sess *session.Session
}

// run lists the catalog and plays quizzes until input ends or the user quits.
func (r *runner) run(ctx context.Context, startID int) error {
	titles, err := r.api.Titles(ctx)
	if err != nil {
		return err
	}
	if len(titles) == 0 {
		fmt.Fprintln(r.out, "No quizzes available.")
		return nil
	}
	for _, t := range titles {
		fmt.Fprintf(r.out, "  %d) %s\n", t.ID, t.Title)
	}

	id := startID
	for {
		if id == 0 {
			line, ok := r.prompt("Select quiz (id, q to quit): ")
			if !ok || line == "q" {
				return nil
			}
			n, err := strconv.Atoi(line)
			if err != nil {
				fmt.Fprintf(r.out, "not a quiz id: %q\n", line)
				continue
			}
			id = n
		}
		if err := r.sess.Select(ctx, id); err != nil {
			fmt.Fprintf(r.out, "Error loading quiz %d: %v\n", id, err)
			id = 0
			continue
		}
		if err := r.play(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			fmt.Fprintf(r.out, "Error: %v\n", err)
		}
		r.printTotal(ctx)
		id = 0
	}
}

func (r *runner) play(ctx context.Context) error {
	q, _ := r.sess.Quiz()
	fmt.Fprintf(r.out, "\n== %s ==\n", q.Title)

	if r.sess.State() == session.AlreadyCompleted {
		score := r.sess.Score()
		fmt.Fprintln(r.out, grading.BandFor(score).Summary(score))
		return nil
	}

	for _, qq := range q.Questions {
		fmt.Fprintf(r.out, "\n%d. %s\n", qq.ID, qq.Prompt)
		for _, o := range qq.Options {
			fmt.Fprintf(r.out, "   [%s] %s\n", o.Value, o.Text)
		}
		for {
			line, ok := r.prompt("answer (blank to skip): ")
			if !ok {
				return io.EOF
			}
			if line == "" {
				break
			}
			err := r.sess.Answer(qq.ID, line)
			if err == nil {
				break
			}
			if !errors.Is(err, session.ErrUnknownOption) {
				return err
			}
			fmt.Fprintf(r.out, "no option %q\n", line)
		}
	}

	ev, err := r.sess.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out)
	for _, res := range ev.Results {
		switch {
		case !res.Answered:
			fmt.Fprintf(r.out, "%d. No answer selected!\n", res.QuestionID)
		case res.Correct:
			fmt.Fprintf(r.out, "%d. Correct!\n", res.QuestionID)
		default:
			fmt.Fprintf(r.out, "%d. Incorrect!\n", res.QuestionID)
		}
		if !res.Correct && res.Explanation != "" {
			fmt.Fprintf(r.out, "   Explanation: %s\n", res.Explanation)
		}
	}
	fmt.Fprintln(r.out, grading.BandFor(ev.Percentage).Summary(ev.Percentage))
	return nil
}

func (r *runner) printTotal(ctx context.Context) {
	total, err := r.sess.Total(ctx)
	if err != nil {
		fmt.Fprintf(r.out, "Error fetching total score: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "Total: (%s%%)\n", grading.FormatPercent(total))
}

func (r *runner) prompt(label string) (string, bool) {
	fmt.Fprint(r.out, label)
	if !r.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}
