package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandFor(t *testing.T) {
	cases := []struct {
		score float64
		want  Band
	}{
		{0, BandFailed},
		{74.99, BandFailed},
		{75, BandPassed},
		{89.99, BandPassed},
		{90, BandExcellent},
		{100, BandExcellent},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, BandFor(c.score), "score %v", c.score)
	}
}

func TestBandSummary(t *testing.T) {
	assert.Equal(t, "Quiz has been completed. Score: 50.00%", BandFor(50).Summary(50))
	assert.Equal(t, "Quiz has been successfully completed. Score: 75.00%", BandFor(75).Summary(75))
}
