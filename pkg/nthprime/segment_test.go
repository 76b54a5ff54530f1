package nthprime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentPrimesMatchesOddsSieve(t *testing.T) {
	const hi = 1000
	base, err := oddsPrimes(100) // covers floor(sqrt(1000))=31
	require.NoError(t, err)

	want32, err := oddsPrimes(hi)
	require.NoError(t, err)
	want := make([]uint64, len(want32))
	for i, p := range want32 {
		want[i] = uint64(p)
	}

	got := segmentPrimes(2, hi, base)
	assert.Equal(t, want, got)
}

func TestSegmentPrimesWindowNotStartingAtTwo(t *testing.T) {
	base, err := oddsPrimes(100)
	require.NoError(t, err)

	got := segmentPrimes(900, 1000, base)
	want := []uint64{907, 911, 919, 929, 937, 941, 947, 953, 967, 971, 977, 983, 991, 997}
	assert.Equal(t, want, got)
}

func TestSegmentPrimesEmptyWindow(t *testing.T) {
	base, err := oddsPrimes(16)
	require.NoError(t, err)
	got := segmentPrimes(24, 28, base)
	assert.Empty(t, got)
}

func TestSegmentPrimesSingleEvenLo(t *testing.T) {
	base, err := oddsPrimes(16)
	require.NoError(t, err)
	got := segmentPrimes(2, 2, base)
	assert.Equal(t, []uint64{2}, got)
}

func TestSegmentPrimesNoDuplicatesAscending(t *testing.T) {
	base, err := oddsPrimes(400)
	require.NoError(t, err)
	got := segmentPrimes(1, 100000, base)
	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i], got[i-1])
	}
}
