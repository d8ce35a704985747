package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mind-engage/mindengage-quiz/internal/client"
	"github.com/mind-engage/mindengage-quiz/internal/grading"
	"github.com/mind-engage/mindengage-quiz/internal/quiz"
)

type State int

const (
	NoQuizSelected State = iota
	QuizLoaded
	Answering
	Submitted
	AlreadyCompleted
)

func (s State) String() string {
	switch s {
	case NoQuizSelected:
		return "no-quiz-selected"
	case QuizLoaded:
		return "quiz-loaded"
	case Answering:
		return "answering"
	case Submitted:
		return "submitted"
	case AlreadyCompleted:
		return "already-completed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	ErrNoQuiz           = errors.New("no quiz selected")
	ErrSubmissionClosed = errors.New("quiz already submitted")
	ErrUnknownQuestion  = errors.New("unknown question")
	ErrUnknownOption    = errors.New("unknown option")
)

// Backend is the subset of the server protocol a session drives.
type Backend interface {
	Quiz(ctx context.Context, id int) (quiz.Quiz, error)
	Check(ctx context.Context, id int) (client.Completion, error)
	Submit(ctx context.Context, id int, percentage float64) (string, error)
	Total(ctx context.Context) (float64, error)
}

// Session is one quiz view: select a quiz, answer, grade locally, submit.
// Every operation either completes fully or leaves the session untouched.
type Session struct {
	mu sync.Mutex
	be Backend

	state   State
	quizID  int // as selected; the payload's own id is not trusted
	quiz    quiz.Quiz
	answers quiz.Submission
	score   float64
	eval    *grading.Evaluation
}

func New(be Backend) *Session {
	return &Session{be: be, state: NoQuizSelected}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Quiz returns the loaded quiz, if any.
func (s *Session) Quiz() (quiz.Quiz, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quiz, s.state != NoQuizSelected
}

func (s *Session) Answers() quiz.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(quiz.Submission, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// Score is the recorded score in AlreadyCompleted and the submitted score in
// Submitted; 0 otherwise.
func (s *Session) Score() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Evaluation returns the local grading result once the quiz was submitted
// from this session.
func (s *Session) Evaluation() (grading.Evaluation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.eval == nil {
		return grading.Evaluation{}, false
	}
	return *s.eval, true
}

// Select loads quiz id and asks the server whether it was already completed.
// Re-selecting the current quiz re-runs both queries.
func (s *Session) Select(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := s.be.Quiz(ctx, id)
	if err != nil {
		return err
	}
	c, err := s.be.Check(ctx, id)
	if err != nil {
		return err
	}

	s.quizID = id
	s.quiz = q
	s.answers = quiz.Submission{}
	s.eval = nil
	if c.Completed {
		s.state = AlreadyCompleted
		s.score = c.Score
	} else {
		s.state = QuizLoaded
		s.score = 0
	}
	return nil
}

// Answer sets (or changes) the answer to one question.
func (s *Session) Answer(questionID int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case NoQuizSelected:
		return ErrNoQuiz
	case Submitted, AlreadyCompleted:
		return ErrSubmissionClosed
	}
	qq, ok := s.quiz.Question(questionID)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownQuestion, questionID)
	}
	if !qq.HasOption(value) {
		return fmt.Errorf("%w: %q for question %d", ErrUnknownOption, value, questionID)
	}
	s.answers[questionID] = value
	s.state = Answering
	return nil
}

// Clear removes the answer to one question, making it unanswered again.
func (s *Session) Clear(questionID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case NoQuizSelected:
		return ErrNoQuiz
	case Submitted, AlreadyCompleted:
		return ErrSubmissionClosed
	}
	delete(s.answers, questionID)
	return nil
}

// Submit grades the answers locally and records the unrounded percentage on
// the server. Only one submission per selected quiz is accepted.
func (s *Session) Submit(ctx context.Context) (grading.Evaluation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case NoQuizSelected:
		return grading.Evaluation{}, ErrNoQuiz
	case Submitted, AlreadyCompleted:
		return grading.Evaluation{}, ErrSubmissionClosed
	}
	ev, err := grading.Evaluate(s.quiz, s.answers)
	if err != nil {
		return grading.Evaluation{}, err
	}
	if _, err := s.be.Submit(ctx, s.quizID, ev.Percentage); err != nil {
		return grading.Evaluation{}, err
	}
	s.state = Submitted
	s.score = ev.Percentage
	s.eval = &ev
	return ev, nil
}

func (s *Session) Total(ctx context.Context) (float64, error) {
	return s.be.Total(ctx)
}
