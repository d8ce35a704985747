package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"HTTP_ADDR", "QUIZ_DIR", "PUBLIC_DIR", "STRICT_CATALOG", "STRICT_SCORES",
		"CORS_ORIGINS", "EVENT_LOG", "DB_DRIVER", "DB_DSN", "SITE_ID",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	c := FromEnv()
	assert.Equal(t, ":3000", c.HTTPAddr)
	assert.Equal(t, "./quizzes", c.QuizDir)
	assert.Equal(t, "./public", c.PublicDir)
	assert.False(t, c.StrictCatalog)
	assert.False(t, c.StrictScores)
	assert.Equal(t, []string{"http://localhost:3000"}, c.CORSOrigins)
	assert.True(t, c.EnableEventLog)
	assert.Equal(t, "sqlite", c.DBDriver)
	assert.Equal(t, "", c.DBDSN)
	assert.Equal(t, "local", c.SiteID)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("STRICT_SCORES", "yes")
	t.Setenv("EVENT_LOG", "0")
	t.Setenv("CORS_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("STRICT_CATALOG", "maybe")

	c := FromEnv()
	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.True(t, c.StrictScores)
	assert.False(t, c.EnableEventLog)
	assert.False(t, c.StrictCatalog)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.CORSOrigins)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("QUIZ_DIR")
	os.Unsetenv("HTTP_ADDR")
	t.Setenv("SITE_ID", "from-env")

	f := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(f, []byte("QUIZ_DIR=/srv/quizzes\nSITE_ID=from-file\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("QUIZ_DIR") })

	c := Load(f)
	assert.Equal(t, "/srv/quizzes", c.QuizDir)
	assert.Equal(t, "from-env", c.SiteID)
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	clearEnv(t)
	c := Load(filepath.Join(t.TempDir(), "nope.env"))
	assert.Equal(t, ":3000", c.HTTPAddr)
}
