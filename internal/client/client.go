package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/imroc/req/v3"
	"github.com/pkg/errors"

	"github.com/mind-engage/mindengage-quiz/internal/quiz"
)

const defaultTimeout = 10 * time.Second

// Client speaks the quiz server's JSON protocol. Failed calls are never
// retried.
type Client struct {
	http *req.Client
}

func New(baseURL string) *Client {
	c := req.C().
		SetBaseURL(baseURL).
		SetTimeout(defaultTimeout).
		SetJsonMarshal(json.Marshal).
		SetJsonUnmarshal(json.Unmarshal).
		SetCommonHeader("Accept", "application/json")
	return &Client{http: c}
}

// APIError is a non-2xx answer carrying the server's {"error":...} body.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// Is lets a 404 match quiz.ErrNotFound.
func (e *APIError) Is(target error) bool {
	return target == quiz.ErrNotFound && e.Status == http.StatusNotFound
}

type Completion struct {
	Completed bool    `json:"completed"`
	Score     float64 `json:"score"`
}

func (c *Client) Titles(ctx context.Context) ([]quiz.Title, error) {
	var out []quiz.Title
	if err := c.do(ctx, http.MethodGet, "/quiz-titles", nil, nil, &out); err != nil {
		return nil, errors.Wrap(err, "fetch quiz titles")
	}
	return out, nil
}

func (c *Client) Quiz(ctx context.Context, id int) (quiz.Quiz, error) {
	var out quiz.Quiz
	if err := c.do(ctx, http.MethodGet, "/quizzes/{id}", pathID(id), nil, &out); err != nil {
		return quiz.Quiz{}, errors.Wrapf(err, "fetch quiz %d", id)
	}
	return out, nil
}

func (c *Client) Check(ctx context.Context, id int) (Completion, error) {
	var out Completion
	if err := c.do(ctx, http.MethodGet, "/check-quiz/{id}", pathID(id), nil, &out); err != nil {
		return Completion{}, errors.Wrapf(err, "check quiz %d", id)
	}
	return out, nil
}

// Submit records percentage for quiz id and returns the server's message.
func (c *Client) Submit(ctx context.Context, id int, percentage float64) (string, error) {
	body := map[string]float64{"completionPercentage": percentage}
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/submit-quiz/{id}", pathID(id), body, &out); err != nil {
		return "", errors.Wrapf(err, "submit quiz %d", id)
	}
	return out.Message, nil
}

func (c *Client) Total(ctx context.Context) (float64, error) {
	var out struct {
		Total float64 `json:"total"`
	}
	if err := c.do(ctx, http.MethodGet, "/total", nil, nil, &out); err != nil {
		return 0, errors.Wrap(err, "fetch total")
	}
	return out.Total, nil
}

func pathID(id int) map[string]string { return map[string]string{"id": strconv.Itoa(id)} }

func (c *Client) do(ctx context.Context, method, path string, params map[string]string, body, out any) error {
	apiErr := &APIError{}
	r := c.http.R().
		SetContext(ctx).
		SetPathParams(params).
		SetSuccessResult(out).
		SetErrorResult(apiErr)
	if body != nil {
		r.SetBodyJsonMarshal(body)
	}
	resp, err := r.Send(method, path)
	if err != nil {
		return err
	}
	if resp.IsErrorState() {
		apiErr.Status = resp.GetStatusCode()
		return apiErr
	}
	if !resp.IsSuccessState() {
		return errors.Errorf("unexpected status %d", resp.GetStatusCode())
	}
	return nil
}
