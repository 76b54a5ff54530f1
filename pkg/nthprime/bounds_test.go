package nthprime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundsBracketKnownPrimes(t *testing.T) {
	// k (1-based) -> p_k
	cases := []struct {
		k uint64
		p uint64
	}{
		{1, 2},
		{10, 29},
		{100, 541},
		{1000, 7919},
		{10000, 104729},
		{100000, 1299709},
		{1000000, 15485863},
	}
	for _, c := range cases {
		lo := lowerBound(c.k)
		hi := upperBound(c.k)
		assert.LessOrEqualf(t, lo, c.p, "lowerBound(%d) undershoot check", c.k)
		assert.LessOrEqualf(t, c.p, hi, "upperBound(%d) overshoot check", c.k)
	}
}

func TestUpperBoundSmallK(t *testing.T) {
	assert.Equal(t, uint64(30), upperBound(1))
	assert.Equal(t, uint64(30), upperBound(5))
	assert.Equal(t, uint64(90), upperBound(6))
	assert.Equal(t, uint64(1485), upperBound(99))
}

func TestLowerBoundSmallK(t *testing.T) {
	assert.Equal(t, uint64(2), lowerBound(1))
	assert.Equal(t, uint64(2), lowerBound(5))
}
