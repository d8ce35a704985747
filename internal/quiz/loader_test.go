package quiz_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/mindengage-quiz/internal/quiz"
	"github.com/mind-engage/mindengage-quiz/internal/storage"
)

const goBasicsJSON = `{
  "title": "Go basics",
  "questions": [
    {"id": 1, "prompt": "Zero value of int?", "options": [{"value": "a", "text": "0"}, {"value": "b", "text": "nil"}], "correctAnswer": "a", "explanation": "Numeric zero values are 0."},
    {"id": 2, "prompt": "Keyword for goroutines?", "options": [{"value": "a", "text": "async"}, {"value": "b", "text": "go"}], "correctAnswer": "b", "explanation": "The go statement starts a goroutine."}
  ]
}`

const channelsYAML = `
title: Channels
questions:
  - id: 1
    prompt: Reading from a closed channel
    options:
      - {value: a, text: panics}
      - {value: b, text: returns the zero value}
    correctAnswer: b
    explanation: Receives on a closed channel never block.
`

func writeFiles(t *testing.T, files map[string]string) storage.Source {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	src, err := storage.NewFSSource(dir)
	require.NoError(t, err)
	return src
}

func quietLog(string, ...any) {}

func TestLoadCatalog_NaturalOrderAndFormats(t *testing.T) {
	src := writeFiles(t, map[string]string{
		"quiz10.json": `{"title":"Ten","questions":[]}`,
		"quiz2.yaml":  channelsYAML,
		"quiz1.json":  goBasicsJSON,
		"notes.txt":   "ignored",
	})

	cat, err := quiz.LoadCatalog(context.Background(), src, quiz.LoadOptions{Logf: quietLog})
	require.NoError(t, err)
	require.NoError(t, cat.Skipped())

	assert.Equal(t, []quiz.Title{
		{ID: 1, Title: "Go basics"},
		{ID: 2, Title: "Channels"},
		{ID: 3, Title: "Ten"},
	}, cat.Titles())

	q, err := cat.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 2, q.ID)
	require.Len(t, q.Questions, 1)
	assert.Equal(t, "b", q.Questions[0].CorrectAnswer)
	assert.Equal(t, "returns the zero value", q.Questions[0].Options[1].Text)
}

func TestLoadCatalog_SkipsMalformedEntries(t *testing.T) {
	src := writeFiles(t, map[string]string{
		"quiz1.json": goBasicsJSON,
		"quiz2.json": `{"title": "broken", "questions": [`,
		"quiz3.json": `{"title":"Bad key","questions":[{"id":1,"prompt":"?","options":[{"value":"a","text":"A"}],"correctAnswer":"z"}]}`,
		"quiz4.yaml": channelsYAML,
	})
	var logged []string
	logf := func(format string, args ...any) { logged = append(logged, format) }

	cat, err := quiz.LoadCatalog(context.Background(), src, quiz.LoadOptions{Logf: logf})
	require.NoError(t, err)

	assert.Equal(t, 2, cat.Len())
	assert.Equal(t, []quiz.Title{{ID: 1, Title: "Go basics"}, {ID: 2, Title: "Channels"}}, cat.Titles())
	assert.Len(t, logged, 2)

	skipped := cat.Skipped()
	require.Error(t, skipped)
	var le *quiz.LoadError
	require.True(t, errors.As(skipped, &le))
	assert.Equal(t, "quiz2.json", le.File)
	assert.Contains(t, skipped.Error(), "quiz3.json")
}

func TestLoadCatalog_StrictAborts(t *testing.T) {
	src := writeFiles(t, map[string]string{
		"quiz1.json": goBasicsJSON,
		"quiz2.json": `not json`,
	})
	_, err := quiz.LoadCatalog(context.Background(), src, quiz.LoadOptions{Strict: true, Logf: quietLog})
	var le *quiz.LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "quiz2.json", le.File)
}

func TestLoadCatalog_Manifest(t *testing.T) {
	const manifest = `
quizzes:
  - file: b.yaml
  - file: a.json
    id: 7
`
	src := writeFiles(t, map[string]string{
		"a.json":          goBasicsJSON,
		"b.yaml":          channelsYAML,
		"extra.json":      `{"title":"Not listed","questions":[]}`,
		quiz.ManifestName: manifest,
	})
	cat, err := quiz.LoadCatalog(context.Background(), src, quiz.LoadOptions{Logf: quietLog})
	require.NoError(t, err)
	assert.Equal(t, []quiz.Title{{ID: 1, Title: "Channels"}, {ID: 7, Title: "Go basics"}}, cat.Titles())

	_, err = cat.Get(2)
	assert.ErrorIs(t, err, quiz.ErrNotFound)
}

func TestLoadCatalog_ManifestDuplicateID(t *testing.T) {
	const manifest = `
quizzes:
  - file: a.json
    id: 2
  - file: b.yaml
`
	src := writeFiles(t, map[string]string{
		"a.json":          goBasicsJSON,
		"b.yaml":          channelsYAML,
		quiz.ManifestName: manifest,
	})
	_, err := quiz.LoadCatalog(context.Background(), src, quiz.LoadOptions{Logf: quietLog})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id 2")
}

func TestLoadCatalog_Empty(t *testing.T) {
	src := writeFiles(t, nil)
	cat, err := quiz.LoadCatalog(context.Background(), src, quiz.LoadOptions{Logf: quietLog})
	require.NoError(t, err)
	assert.Equal(t, 0, cat.Len())
	assert.NotNil(t, cat.Titles())
	assert.Empty(t, cat.Titles())
}

func TestLoadCatalog_IgnoresIDInFile(t *testing.T) {
	src := writeFiles(t, map[string]string{
		"quiz1.json": `{"id": 99, "title":"T","questions":[]}`,
	})
	cat, err := quiz.LoadCatalog(context.Background(), src, quiz.LoadOptions{Logf: quietLog})
	require.NoError(t, err)
	q, err := cat.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 1, q.ID)
}
