package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatioIdentical(t *testing.T) {
	assert.Equal(t, 1.0, Ratio("the quick brown fox", "the quick brown fox"))
}

func TestRatioDisjoint(t *testing.T) {
	assert.Equal(t, 0.0, Ratio("aaaa", "bbbb"))
}

func TestRatioEmptySides(t *testing.T) {
	assert.Equal(t, 0.0, Ratio("", "something"))
	assert.Equal(t, 0.0, Ratio("something", ""))
}

func TestRatioKnownValue(t *testing.T) {
	// 3 matching characters out of 8 total: 2*3/8.
	assert.InDelta(t, 0.75, Ratio("abcd", "bcde"), 1e-9)
}

func TestRatioRange(t *testing.T) {
	pairs := [][2]string{
		{"hello world", "hello there"},
		{"a", "ab"},
		{"paragraph one", "paragraph two"},
	}
	for _, p := range pairs {
		r := Ratio(p[0], p[1])
		assert.GreaterOrEqual(t, r, 0.0)
		assert.LessOrEqual(t, r, 1.0)
	}
}
