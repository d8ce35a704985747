package eventlog

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const TypeQuizSubmitted = "QuizSubmitted"

type Event struct {
	Seq       int64  `json:"seq"`
	SiteID    string `json:"siteId"`
	Type      string `json:"type"`
	Key       string `json:"key"` // quiz id
	DataJSON  string `json:"data"`
	CreatedAt int64  `json:"createdAt"`
}

// Submission is the payload stored for TypeQuizSubmitted.
type Submission struct {
	ID       string  `json:"id"`
	QuizID   string  `json:"quizId"`
	Score    float64 `json:"score"`
	Previous float64 `json:"previous,omitempty"`
	Replaced bool    `json:"replaced"`
}

// Repo is an append-only audit trail of ledger writes. It is never read back
// into the ledger.
type Repo struct {
	db     *sql.DB
	siteID string
	now    func() time.Time
}

func NewRepo(db *sql.DB, siteID string) *Repo {
	if siteID == "" {
		siteID = "local"
	}
	return &Repo{db: db, siteID: siteID, now: time.Now}
}

func (r *Repo) Append(ctx context.Context, e Event) error {
	if e.SiteID == "" {
		e.SiteID = r.siteID
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO event_log (site_id, typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		e.SiteID, e.Type, e.Key, e.DataJSON, r.now().Unix())
	return err
}

// List returns up to limit events, newest first.
func (r *Repo) List(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT seq, site_id, typ, key, data, created_at FROM event_log ORDER BY seq DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Seq, &e.SiteID, &e.Type, &e.Key, &e.DataJSON, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Recorded implements ledger.Observer. Failures are logged only; the ledger
// write has already happened.
func (r *Repo) Recorded(quizID string, score, previous float64, replaced bool) {
	data, err := json.Marshal(Submission{
		ID:       uuid.NewString(),
		QuizID:   quizID,
		Score:    score,
		Previous: previous,
		Replaced: replaced,
	})
	if err != nil {
		log.Printf("eventlog: encode submission for quiz %s: %v", quizID, err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Append(ctx, Event{Type: TypeQuizSubmitted, Key: quizID, DataJSON: string(data)}); err != nil {
		log.Printf("eventlog: append submission for quiz %s: %v", quizID, err)
	}
}
