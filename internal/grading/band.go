package grading

type Band string

const (
	BandFailed    Band = "failed"
	BandPassed    Band = "passed"
	BandExcellent Band = "excellent"
)

const (
	PassThreshold      = 75.0
	ExcellentThreshold = 90.0
)

func BandFor(score float64) Band {
	switch {
	case score < PassThreshold:
		return BandFailed
	case score < ExcellentThreshold:
		return BandPassed
	default:
		return BandExcellent
	}
}

// Summary is the one-line completion message shown once a quiz is done.
func (b Band) Summary(score float64) string {
	if b == BandFailed {
		return "Quiz has been completed. Score: " + FormatPercent(score) + "%"
	}
	return "Quiz has been successfully completed. Score: " + FormatPercent(score) + "%"
}
