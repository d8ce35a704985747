package ledger

import (
	"math"
	"sync"
)

// Observer is notified after every Record. It runs outside the ledger lock.
type Observer interface {
	Recorded(quizID string, score, previous float64, replaced bool)
}

// Ledger holds the last submitted score per quiz id for the lifetime of the
// process. Keys are quiz ids exactly as they appear on the wire.
type Ledger struct {
	mu     sync.RWMutex
	scores map[string]float64
	obs    Observer
}

func New() *Ledger {
	return &Ledger{scores: map[string]float64{}}
}

// WithObserver attaches o; call before the ledger is shared.
func (l *Ledger) WithObserver(o Observer) *Ledger {
	l.obs = o
	return l
}

func (l *Ledger) IsCompleted(quizID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.scores[quizID]
	return ok
}

// ScoreOf returns the recorded score, or 0 when the quiz was never submitted.
func (l *Ledger) ScoreOf(quizID string) float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.scores[quizID]
}

// Lookup combines IsCompleted and ScoreOf under one read lock.
func (l *Ledger) Lookup(quizID string) (score float64, completed bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	score, completed = l.scores[quizID]
	return score, completed
}

// Record upserts the score for quizID. Last write wins; neither the id nor
// the score range is checked here.
func (l *Ledger) Record(quizID string, score float64) {
	l.mu.Lock()
	prev, replaced := l.scores[quizID]
	l.scores[quizID] = score
	l.mu.Unlock()

	if l.obs != nil {
		l.obs.Recorded(quizID, score, prev, replaced)
	}
}

// Aggregate is the sum of recorded scores divided by catalogSize, so
// unattempted quizzes count as zero. An empty catalog yields 0, and so does
// a sum that overflows to a non-finite value.
func (l *Ledger) Aggregate(catalogSize int) float64 {
	if catalogSize <= 0 {
		return 0
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	sum := 0.0
	for _, s := range l.scores {
		sum += s
	}
	avg := sum / float64(catalogSize)
	if math.IsInf(avg, 0) || math.IsNaN(avg) {
		return 0
	}
	return avg
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.scores)
}
