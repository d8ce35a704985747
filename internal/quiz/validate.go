package quiz

import (
	"fmt"
	"strings"
)

// Validate checks a decoded quiz against the catalog schema. A quiz with no
// questions passes; grading rejects it instead.
func Validate(q Quiz) error {
	if strings.TrimSpace(q.Title) == "" {
		return fmt.Errorf("title is required")
	}
	seenQ := make(map[int]struct{}, len(q.Questions))
	for i, qq := range q.Questions {
		if qq.ID <= 0 {
			return fmt.Errorf("question #%d: id must be positive", i+1)
		}
		if _, dup := seenQ[qq.ID]; dup {
			return fmt.Errorf("question %d: duplicate id", qq.ID)
		}
		seenQ[qq.ID] = struct{}{}

		if len(qq.Options) == 0 {
			return fmt.Errorf("question %d: no options", qq.ID)
		}
		seenO := make(map[string]struct{}, len(qq.Options))
		for _, o := range qq.Options {
			if o.Value == "" {
				return fmt.Errorf("question %d: option with empty value", qq.ID)
			}
			if _, dup := seenO[o.Value]; dup {
				return fmt.Errorf("question %d: duplicate option value %q", qq.ID, o.Value)
			}
			seenO[o.Value] = struct{}{}
		}
		if _, ok := seenO[qq.CorrectAnswer]; !ok {
			return fmt.Errorf("question %d: correctAnswer %q matches no option", qq.ID, qq.CorrectAnswer)
		}
	}
	return nil
}
