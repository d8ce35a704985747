package quiz

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("quiz not found")

// Catalog is the read-only set of quizzes loaded at startup. It is safe for
// concurrent readers because nothing mutates it after construction.
type Catalog struct {
	quizzes []Quiz // ordered by ID
	byID    map[int]int
	skipped *multierror.Error
}

// NewCatalog builds a catalog from already-validated quizzes. IDs must be
// positive and unique.
func NewCatalog(quizzes ...Quiz) (*Catalog, error) {
	c := &Catalog{
		quizzes: make([]Quiz, 0, len(quizzes)),
		byID:    make(map[int]int, len(quizzes)),
	}
	for _, q := range quizzes {
		if q.ID <= 0 {
			return nil, fmt.Errorf("quiz %q: id must be positive, got %d", q.Title, q.ID)
		}
		if _, dup := c.byID[q.ID]; dup {
			return nil, fmt.Errorf("quiz %q: duplicate id %d", q.Title, q.ID)
		}
		c.byID[q.ID] = -1
		c.quizzes = append(c.quizzes, q)
	}
	sort.SliceStable(c.quizzes, func(i, j int) bool { return c.quizzes[i].ID < c.quizzes[j].ID })
	for i, q := range c.quizzes {
		c.byID[q.ID] = i
	}
	return c, nil
}

// Titles lists {id,title} in catalog order. Never nil.
func (c *Catalog) Titles() []Title {
	out := make([]Title, 0, len(c.quizzes))
	for _, q := range c.quizzes {
		out = append(out, Title{ID: q.ID, Title: q.Title})
	}
	return out
}

// Get returns a copy of the quiz, answers included.
func (c *Catalog) Get(id int) (Quiz, error) {
	i, ok := c.byID[id]
	if !ok {
		return Quiz{}, ErrNotFound
	}
	return clone(c.quizzes[i]), nil
}

func (c *Catalog) Len() int { return len(c.quizzes) }

// Skipped returns the aggregated load errors of entries that were dropped
// while loading, or nil.
func (c *Catalog) Skipped() error { return c.skipped.ErrorOrNil() }

func clone(q Quiz) Quiz {
	out := q
	out.Questions = make([]Question, len(q.Questions))
	for i, qq := range q.Questions {
		qq.Options = append([]Option(nil), qq.Options...)
		out.Questions[i] = qq
	}
	return out
}
