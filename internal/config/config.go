package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr  string
	QuizDir   string
	PublicDir string // static assets; skipped when missing

	StrictCatalog bool // abort startup on a malformed quiz file
	StrictScores  bool // reject completionPercentage outside [0,100]

	CORSOrigins []string

	EnableEventLog bool
	DBDriver       string
	DBDSN          string
	SiteID         string
}

// Load reads an optional .env file (existing environment wins) and then
// builds the config from the environment.
func Load(envFiles ...string) Config {
	_ = godotenv.Load(envFiles...)
	return FromEnv()
}

func FromEnv() Config {
	return Config{
		HTTPAddr:       envOr("HTTP_ADDR", ":3000"),
		QuizDir:        envOr("QUIZ_DIR", "./quizzes"),
		PublicDir:      envOr("PUBLIC_DIR", "./public"),
		StrictCatalog:  envBool("STRICT_CATALOG", false),
		StrictScores:   envBool("STRICT_SCORES", false),
		CORSOrigins:    csvOr("CORS_ORIGINS", "http://localhost:3000"),
		EnableEventLog: envBool("EVENT_LOG", true),
		DBDriver:       envOr("DB_DRIVER", "sqlite"),
		DBDSN:          envOr("DB_DSN", ""),
		SiteID:         envOr("SITE_ID", "local"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}
func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
