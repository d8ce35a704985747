package http

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatScore(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{75, "75"},
		{66.66666666666667, "66.66666666666667"},
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{-10, "-10"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.5e21, "1.5e+21"},
		{1e308, "1e+308"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{-2.5e-7, "-2.5e-7"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, formatScore(c.in), "%v", c.in)
	}
}
